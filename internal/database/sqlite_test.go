package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/haryoiro/golha/internal/structures"
)

func openTestDB(t *testing.T) *SQLiteDatabase {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestAddGetRemove(t *testing.T) {
	db := openTestDB(t)

	entry := structures.DatabaseEntry{
		Program: structures.Program{
			Name:      "برگ سبز ۱۲",
			MediaURL:  "https://example.org/bs12.mp3",
			SourceURL: "https://example.org/bs12",
		},
		AddedAt:  time.Now().UTC().Truncate(time.Second),
		FilePath: "/tmp/bs12.mp3",
		FileSize: 1234,
	}
	if err := db.Add(entry); err != nil {
		t.Fatalf("Add: %v", err)
	}

	got, ok := db.Get(entry.Program.MediaURL)
	if !ok {
		t.Fatal("Get: entry not found")
	}
	if got.Program.Name != entry.Program.Name || got.FilePath != entry.FilePath || got.FileSize != 1234 {
		t.Errorf("Get = %+v", got)
	}

	if all := db.GetAll(); len(all) != 1 {
		t.Errorf("GetAll returned %d entries", len(all))
	}

	if err := db.Remove(entry.Program.MediaURL); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	got, ok = db.Get(entry.Program.MediaURL)
	if !ok || got.FilePath != "" {
		t.Errorf("after Remove: %+v, %v", got, ok)
	}
	if all := db.GetAll(); len(all) != 0 {
		t.Errorf("GetAll still lists %d downloads", len(all))
	}
}

func TestGetMissing(t *testing.T) {
	db := openTestDB(t)
	if _, ok := db.Get("nope"); ok {
		t.Error("expected missing entry")
	}
}

func TestPlayStatsAndHistory(t *testing.T) {
	db := openTestDB(t)

	a := &structures.Program{Name: "a", MediaURL: "u-a"}
	b := &structures.Program{Name: "b", MediaURL: "u-b"}
	for _, p := range []*structures.Program{a, b, a} {
		if err := db.UpdatePlayStats(p); err != nil {
			t.Fatalf("UpdatePlayStats(%s): %v", p.MediaURL, err)
		}
	}

	recent := db.GetRecentlyPlayed(10)
	if len(recent) != 2 {
		t.Fatalf("recent = %d entries, want 2", len(recent))
	}
	if recent[0].Program.MediaURL != "u-a" || recent[1].Program.MediaURL != "u-b" {
		t.Errorf("recent order = %s, %s", recent[0].Program.MediaURL, recent[1].Program.MediaURL)
	}

	// played but not downloaded
	if all := db.GetAll(); len(all) != 0 {
		t.Errorf("GetAll included %d streamed programs", len(all))
	}

	var count int
	if err := db.db.QueryRow("SELECT play_count FROM programs WHERE media_url = ?", "u-a").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("play_count = %d, want 2", count)
	}
}

func TestAddKeepsPlayCount(t *testing.T) {
	db := openTestDB(t)
	p := &structures.Program{Name: "a", MediaURL: "u-a"}
	if err := db.UpdatePlayStats(p); err != nil {
		t.Fatal(err)
	}
	if err := db.Add(structures.DatabaseEntry{Program: *p, AddedAt: time.Now(), FilePath: "/x.mp3"}); err != nil {
		t.Fatal(err)
	}

	var count int
	if err := db.db.QueryRow("SELECT play_count FROM programs WHERE media_url = ?", "u-a").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("play_count = %d, want 1", count)
	}
}

func TestAppState(t *testing.T) {
	db := openTestDB(t)

	if _, ok := db.GetAppState("k"); ok {
		t.Error("unexpected value for missing key")
	}
	if err := db.SaveAppState("k", "v1"); err != nil {
		t.Fatal(err)
	}
	if err := db.SaveAppState("k", "v2"); err != nil {
		t.Fatal(err)
	}
	if v, ok := db.GetAppState("k"); !ok || v != "v2" {
		t.Errorf("GetAppState = %q, %v", v, ok)
	}
}
