package structures

import (
	"time"
)

// UntitledLabel is shown for programs without a name
const UntitledLabel = "بدون نام"

// Program represents one entry of the catalog
type Program struct {
	Name      string `json:"Program Name"`
	MediaURL  string `json:"MP3 URL"`
	SourceURL string `json:"Source"`

	// SearchKey is derived at load time and never serialized
	SearchKey string `json:"-"`
}

// DisplayName returns the program name or the untitled placeholder
func (p *Program) DisplayName() string {
	if p == nil || p.Name == "" {
		return UntitledLabel
	}
	return p.Name
}

// MusicDownloadStatus represents the download status of a program's media
type MusicDownloadStatus int

const (
	NotDownloaded MusicDownloadStatus = iota
	Downloading
	Downloaded
	DownloadFailed
)

// PlaybackState is the state of the playback controller
type PlaybackState int

const (
	Idle PlaybackState = iota
	Loaded
	Playing
	Paused
)

func (s PlaybackState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loaded:
		return "loaded"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	}
	return "unknown"
}

// SoundAction represents actions that can be sent to the player
type SoundAction interface{}

// Player actions
type PlayPauseAction struct{}
type VolumeUpAction struct{}
type VolumeDownAction struct{}
type ForwardAction struct{}
type BackwardAction struct{}
type NextAction struct{}
type PreviousAction struct{}
type RandomNextAction struct{}
type PlayIndexAction struct {
	Index     int
	AutoStart bool
}
type SeekFractionAction struct{ Fraction float64 }
type SetViewAction struct{ View []*Program }
type RestoreAction struct {
	Index    int
	Position time.Duration
	Resume   bool
}
type TrackStatusUpdateAction struct {
	MediaURL string
	Status   MusicDownloadStatus
}

// PlayerState is the snapshot of the player the UI renders from
type PlayerState struct {
	State       PlaybackState
	Cursor      int
	CurrentURL  string
	CurrentName string
	NowPlaying  string
	IsPlaying   bool
	CurrentTime time.Duration
	TotalTime   time.Duration
	Progress    float64 // percent, 0..100
	Volume      float64
	LastError   string
	MusicStatus map[string]MusicDownloadStatus
}

// SavedState is the persisted resume record
type SavedState struct {
	TrackURL string  `json:"trackUrl"`
	Time     float64 `json:"time"`
	Playing  bool    `json:"playing"`
}

// Config represents the application configuration
type Config struct {
	Theme       Theme       `toml:"theme"`
	KeyBindings KeyBindings `toml:"key_bindings"`

	// Catalog Configuration
	CatalogSource    string `toml:"catalog_source"`     // URL or local path of the programs JSON
	BatchSize        int    `toml:"batch_size"`         // Rows appended per "show more"
	SearchDebounceMs int    `toml:"search_debounce_ms"` // Delay before a typed query is evaluated

	// Download Configuration
	DownloadDir            string `toml:"download_dir"`
	MaxConcurrentDownloads int    `toml:"max_concurrent_downloads"`

	// Player Configuration
	DefaultVolume float64 `toml:"default_volume"`
	SeekSeconds   int     `toml:"seek_seconds"`
	AutoAdvance   string  `toml:"auto_advance"` // next, random or off

	// UI Configuration
	DisableAltScreen bool `toml:"disable_alt_screen"`
}

// Theme represents the UI theme configuration
type Theme struct {
	Foreground       string `toml:"foreground"`
	Selected         string `toml:"selected"`
	Playing          string `toml:"playing"`
	Border           string `toml:"border"`
	Error            string `toml:"error"`
	ProgressBar      string `toml:"progress_bar"`
	ProgressBarFill  string `toml:"progress_bar_fill"`
	ProgressBarStyle string `toml:"progress_bar_style"` // "line", "block", "gradient"
}

// KeyBindings represents configurable keyboard shortcuts
type KeyBindings struct {
	// Global controls
	PlayPause    string   `toml:"play_pause"`
	Quit         string   `toml:"quit"`
	VolumeUp     []string `toml:"volume_up"`
	VolumeDown   []string `toml:"volume_down"`
	SeekForward  string   `toml:"seek_forward"`
	SeekBackward string   `toml:"seek_backward"`
	Next         string   `toml:"next"`
	Previous     string   `toml:"previous"`
	Random       string   `toml:"random"`

	// Navigation
	MoveUp   []string `toml:"move_up"`
	MoveDown []string `toml:"move_down"`
	Select   []string `toml:"select"`
	Back     []string `toml:"back"`

	// Actions
	Search     string `toml:"search"`
	ShowMore   string `toml:"show_more"`
	Download   string `toml:"download"`
	OpenSource string `toml:"open_source"`
}

// DatabaseEntry is a downloaded program stored in the database
type DatabaseEntry struct {
	Program  Program
	AddedAt  time.Time
	FilePath string
	FileSize int64
}
