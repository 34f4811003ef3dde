package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/haryoiro/golha/internal/constants"
	"github.com/haryoiro/golha/internal/structures"
	"github.com/pelletier/go-toml/v2"
)

// Load loads the configuration from a TOML file
func Load(path string) (*structures.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	normalize(cfg)

	return cfg, nil
}

// Save saves the configuration to a TOML file
func Save(cfg *structures.Config, path string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// normalize replaces out-of-range values with defaults
func normalize(cfg *structures.Config) {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = constants.DefaultBatchSize
	}
	if cfg.SearchDebounceMs < 0 {
		cfg.SearchDebounceMs = constants.DefaultSearchDebounceMs
	}
	if cfg.MaxConcurrentDownloads <= 0 {
		cfg.MaxConcurrentDownloads = 1
	}
	if cfg.DefaultVolume < 0 || cfg.DefaultVolume > 1 {
		cfg.DefaultVolume = 0.7
	}
	switch cfg.AutoAdvance {
	case constants.AutoAdvanceNext, constants.AutoAdvanceRandom, constants.AutoAdvanceOff:
	default:
		cfg.AutoAdvance = constants.AutoAdvanceNext
	}
}

// Default returns the default configuration
func Default() *structures.Config {
	return &structures.Config{
		CatalogSource:          constants.DefaultCatalogSource,
		BatchSize:              constants.DefaultBatchSize,
		SearchDebounceMs:       constants.DefaultSearchDebounceMs,
		MaxConcurrentDownloads: 2,
		DefaultVolume:          0.7,
		SeekSeconds:            10,
		AutoAdvance:            constants.AutoAdvanceNext,
		Theme: structures.Theme{
			Foreground:       "#c0caf5",  // Tokyo Night foreground
			Selected:         "#7aa2f7",  // Tokyo Night blue
			Playing:          "#9ece6a",  // Tokyo Night green
			Border:           "#3b4261",  // Tokyo Night border
			Error:            "#f7768e",  // Tokyo Night red
			ProgressBar:      "#565f89",  // Tokyo Night dark gray
			ProgressBarFill:  "#7aa2f7",  // Tokyo Night blue
			ProgressBarStyle: "gradient",
		},
		KeyBindings: structures.KeyBindings{
			// Global controls
			PlayPause:    "space",
			Quit:         "ctrl+c",
			VolumeUp:     []string{"+", "="},
			VolumeDown:   []string{"-", "_"},
			SeekForward:  "right",
			SeekBackward: "left",
			Next:         "n",
			Previous:     "p",
			Random:       "r",

			// Navigation
			MoveUp:   []string{"up", "k"},
			MoveDown: []string{"down", "j"},
			Select:   []string{"enter"},
			Back:     []string{"esc"},

			// Actions
			Search:     "/",
			ShowMore:   "m",
			Download:   "d",
			OpenSource: "o",
		},
	}
}
