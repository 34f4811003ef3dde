package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/haryoiro/golha/internal/constants"
)

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestSaveThenLoadKeepsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg := Default()
	cfg.CatalogSource = "https://example.org/programs.json"
	cfg.BatchSize = 20
	cfg.AutoAdvance = constants.AutoAdvanceRandom

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.CatalogSource != cfg.CatalogSource {
		t.Errorf("catalog source = %q, want %q", loaded.CatalogSource, cfg.CatalogSource)
	}
	if loaded.BatchSize != 20 {
		t.Errorf("batch size = %d, want 20", loaded.BatchSize)
	}
	if loaded.AutoAdvance != constants.AutoAdvanceRandom {
		t.Errorf("auto advance = %q, want random", loaded.AutoAdvance)
	}
	if len(loaded.KeyBindings.VolumeUp) != 2 {
		t.Errorf("expected default volume up bindings to survive, got %v", loaded.KeyBindings.VolumeUp)
	}
}

func TestLoadFillsDefaultsForInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "batch_size = 0\nauto_advance = \"sideways\"\nmax_concurrent_downloads = -3\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BatchSize != constants.DefaultBatchSize {
		t.Errorf("batch size = %d, want %d", cfg.BatchSize, constants.DefaultBatchSize)
	}
	if cfg.AutoAdvance != constants.AutoAdvanceNext {
		t.Errorf("auto advance = %q, want next", cfg.AutoAdvance)
	}
	if cfg.MaxConcurrentDownloads != 1 {
		t.Errorf("max downloads = %d, want 1", cfg.MaxConcurrentDownloads)
	}
}

func TestLoadRejectsBrokenTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("batch_size = [\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
