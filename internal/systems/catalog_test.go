package systems

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/haryoiro/golha/internal/api"
)

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "programs.json")
	data := `[
		{"Program Name": "Golha-ye Rangarang 101", "MP3 URL": "u1", "Source": "s1"},
		{"Program Name": "Barg-e Sabz 12", "MP3 URL": "u2", "Source": "s2"},
		{"Program Name": "Yek Shakh-e Gol 12", "MP3 URL": "u3", "Source": "s3"}
	]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCatalogSystemLoadAndSearch(t *testing.T) {
	cs := NewCatalogSystem(api.NewClient(nil), writeCatalog(t), rand.New(rand.NewSource(3)))

	if _, err := cs.Search("x"); !errors.Is(err, ErrCatalogNotLoaded) {
		t.Errorf("search before load = %v", err)
	}

	view, err := cs.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(view) != 3 || cs.Size() != 3 || !cs.Loaded() {
		t.Fatalf("view %d size %d", len(view), cs.Size())
	}

	got, err := cs.Search("12")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].MediaURL != "u2" || got[1].MediaURL != "u3" {
		t.Errorf("search 12 = %v", got)
	}
	if len(cs.View()) != 2 {
		t.Errorf("view not replaced")
	}
}

func TestCatalogSystemLoadFailure(t *testing.T) {
	cs := NewCatalogSystem(api.NewClient(nil), filepath.Join(t.TempDir(), "missing.json"), nil)
	if _, err := cs.Load(context.Background()); err == nil {
		t.Fatal("expected load failure")
	}
	if cs.Loaded() || cs.View() != nil {
		t.Error("failed load left a catalog behind")
	}
}
