package systems

import (
	"errors"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/haryoiro/golha/internal/config"
	"github.com/haryoiro/golha/internal/database"
	"github.com/haryoiro/golha/internal/structures"
)

type fakeAudio struct {
	url     string
	paused  bool
	pos     time.Duration
	total   time.Duration
	volume  float64
	closed  bool
	loadErr error
}

func (a *fakeAudio) Load(url string) error {
	a.url, a.paused, a.pos = url, true, 0
	if url == "" {
		return errors.New("empty media url")
	}
	return a.loadErr
}
func (a *fakeAudio) Play() error                     { a.paused = false; return nil }
func (a *fakeAudio) Pause() error                    { a.paused = true; return nil }
func (a *fakeAudio) Paused() bool                    { return a.paused }
func (a *fakeAudio) Ended() bool                     { return false }
func (a *fakeAudio) Position() time.Duration         { return a.pos }
func (a *fakeAudio) Duration() (time.Duration, bool) { return a.total, a.total > 0 }
func (a *fakeAudio) Seek(pos time.Duration) error    { a.pos = pos; return nil }
func (a *fakeAudio) SetVolume(v float64)             { a.volume = v }
func (a *fakeAudio) GetVolume() float64              { return a.volume }
func (a *fakeAudio) Close() error                    { a.closed = true; return nil }

func openDB(t *testing.T) *database.SQLiteDatabase {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "golha.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testView(urls ...string) []*structures.Program {
	out := make([]*structures.Program, len(urls))
	for i, u := range urls {
		out[i] = &structures.Program{Name: "n-" + u, MediaURL: u}
	}
	return out
}

func newTestPlayerSystem(t *testing.T) (*PlayerSystem, *fakeAudio, *database.SQLiteDatabase) {
	t.Helper()
	cfg := config.Default()
	db := openDB(t)
	audio := &fakeAudio{volume: 0.5, total: time.Minute}
	return NewPlayerSystem(cfg, db, audio, rand.New(rand.NewSource(1))), audio, db
}

func TestPlayerSystemPlayAndPause(t *testing.T) {
	ps, audio, db := newTestPlayerSystem(t)

	ps.handleAction(structures.SetViewAction{View: testView("a", "b")})
	ps.handleAction(structures.PlayIndexAction{Index: 1, AutoStart: true})
	if audio.url != "b" || audio.paused {
		t.Fatalf("expected b playing, got %q paused=%v", audio.url, audio.paused)
	}

	audio.pos = 12 * time.Second
	ps.handleAction(structures.PlayPauseAction{})

	saved, ok := ps.Persistence().Load()
	if !ok {
		t.Fatal("no state saved on pause")
	}
	if saved.TrackURL != "b" || saved.Time != 12 || saved.Playing {
		t.Errorf("saved = %+v", saved)
	}

	if recent := db.GetRecentlyPlayed(5); len(recent) != 1 || recent[0].Program.MediaURL != "b" {
		t.Errorf("history = %+v", recent)
	}
}

func TestPlayerSystemSnapshot(t *testing.T) {
	ps, _, _ := newTestPlayerSystem(t)

	ps.handleAction(structures.SetViewAction{View: testView("a")})
	ps.handleAction(structures.PlayIndexAction{Index: 0, AutoStart: true})
	ps.handleAction(structures.VolumeUpAction{})
	ps.handleAction(structures.TrackStatusUpdateAction{MediaURL: "a", Status: structures.Downloaded})
	ps.refreshSnapshot()

	s := ps.GetState()
	if s.State != structures.Playing || s.Cursor != 0 || s.CurrentURL != "a" {
		t.Errorf("state = %+v", s)
	}
	if s.Volume <= 0.5 {
		t.Errorf("volume = %v, want raised", s.Volume)
	}
	if s.MusicStatus["a"] != structures.Downloaded {
		t.Errorf("music status = %v", s.MusicStatus)
	}

	s.MusicStatus["a"] = structures.NotDownloaded
	if ps.GetState().MusicStatus["a"] != structures.Downloaded {
		t.Error("GetState leaked its internal map")
	}
}

func TestPlayerSystemRestore(t *testing.T) {
	ps, audio, db := newTestPlayerSystem(t)
	view := testView("a", "b", "c")

	if err := ps.Persistence().Save("c", 30, true); err != nil {
		t.Fatal(err)
	}
	index, seconds, playing, ok := ps.Persistence().Restore(view)
	if !ok {
		t.Fatal("no restore")
	}

	ps.handleAction(structures.SetViewAction{View: view})
	ps.handleAction(structures.RestoreAction{
		Index:    index,
		Position: time.Duration(seconds * float64(time.Second)),
		Resume:   playing,
	})

	if audio.url != "c" || audio.pos != 30*time.Second || audio.paused {
		t.Errorf("restored url=%q pos=%v paused=%v", audio.url, audio.pos, audio.paused)
	}

	saved, ok := ps.Persistence().Load()
	if !ok || saved.TrackURL != "c" || saved.Time != 30 || !saved.Playing {
		t.Errorf("saved after restore = %+v, %v", saved, ok)
	}
	if recent := db.GetRecentlyPlayed(5); len(recent) != 0 {
		t.Errorf("restore counted as a play: %+v", recent)
	}
}

func TestPlayerSystemFailedRestoreKeepsRecord(t *testing.T) {
	ps, audio, db := newTestPlayerSystem(t)
	audio.loadErr = errors.New("404 Not Found")

	if err := ps.Persistence().Save("b", 1234, true); err != nil {
		t.Fatal(err)
	}

	ps.handleAction(structures.SetViewAction{View: testView("a", "b")})
	ps.handleAction(structures.RestoreAction{Index: 1, Position: 1234 * time.Second, Resume: true})
	ps.Stop()

	saved, ok := ps.Persistence().Load()
	if !ok || saved.TrackURL != "b" || saved.Time != 1234 || !saved.Playing {
		t.Errorf("resume record after failed restore = %+v, %v", saved, ok)
	}
	if recent := db.GetRecentlyPlayed(5); len(recent) != 0 {
		t.Errorf("failed restore counted as a play: %+v", recent)
	}
}

func TestPlayerSystemSkipsStatsWithoutMedia(t *testing.T) {
	ps, _, db := newTestPlayerSystem(t)
	view := []*structures.Program{{Name: "no media"}}

	ps.handleAction(structures.SetViewAction{View: view})
	ps.handleAction(structures.PlayIndexAction{Index: 0, AutoStart: true})

	if _, ok := db.Get(""); ok {
		t.Error("program row stored for an empty media url")
	}
	if recent := db.GetRecentlyPlayed(5); len(recent) != 0 {
		t.Errorf("history = %+v", recent)
	}
	if _, ok := ps.Persistence().Load(); ok {
		t.Error("state saved for a program that never loaded")
	}
}

func TestPlayerSystemStopSaves(t *testing.T) {
	ps, audio, _ := newTestPlayerSystem(t)
	if err := ps.Start(); err != nil {
		t.Fatal(err)
	}

	ps.SendAction(structures.SetViewAction{View: testView("a")})
	ps.SendAction(structures.PlayIndexAction{Index: 0, AutoStart: true})

	deadline := time.Now().Add(2 * time.Second)
	for ps.GetState().CurrentURL != "a" {
		if time.Now().After(deadline) {
			t.Fatal("player never picked up the actions")
		}
		time.Sleep(10 * time.Millisecond)
	}

	ps.Stop()
	ps.Stop()

	if !audio.closed {
		t.Error("audio not closed")
	}
	saved, ok := ps.Persistence().Load()
	if !ok || saved.TrackURL != "a" || !saved.Playing {
		t.Errorf("saved on stop = %+v, %v", saved, ok)
	}
}
