package systems

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/haryoiro/golha/internal/api"
	"github.com/haryoiro/golha/internal/config"
	"github.com/haryoiro/golha/internal/structures"
)

func TestDownloadSystem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.mp3" {
			http.NotFound(w, r)
			return
		}
		io.WriteString(w, "fake mp3 bytes")
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.DownloadDir = t.TempDir()
	db := openDB(t)
	ds := NewDownloadSystem(cfg, db, api.NewClient(srv.Client()), t.TempDir())

	var mu sync.Mutex
	final := make(map[string]structures.MusicDownloadStatus)
	done := make(chan struct{}, 4)
	ds.SetStatusCallback(func(url string, status structures.MusicDownloadStatus) {
		mu.Lock()
		final[url] = status
		mu.Unlock()
		if status == structures.Downloaded || status == structures.DownloadFailed {
			done <- struct{}{}
		}
	})

	if err := ds.Start(); err != nil {
		t.Fatal(err)
	}
	defer ds.Stop()

	ok := &structures.Program{Name: "ok", MediaURL: srv.URL + "/ok.mp3"}
	bad := &structures.Program{Name: "bad", MediaURL: srv.URL + "/missing.mp3"}
	if !ds.QueueDownload(ok) || !ds.QueueDownload(bad) {
		t.Fatal("queue rejected downloads")
	}

	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("downloads did not finish")
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if final[ok.MediaURL] != structures.Downloaded || final[bad.MediaURL] != structures.DownloadFailed {
		t.Errorf("statuses = %v", final)
	}

	path, found := ds.LocalPath(ok.MediaURL)
	if !found || path != ds.PathFor(ok.MediaURL) {
		t.Fatalf("LocalPath = %q, %v", path, found)
	}
	if data, _ := os.ReadFile(path); string(data) != "fake mp3 bytes" {
		t.Errorf("file content = %q", data)
	}
	if ds.QueueDownload(ok) {
		t.Error("re-queued an existing download")
	}
}

func TestLocalPathForgetsMissingFile(t *testing.T) {
	cfg := config.Default()
	db := openDB(t)
	ds := NewDownloadSystem(cfg, db, api.NewClient(nil), t.TempDir())

	p := structures.Program{MediaURL: "u"}
	if err := db.Add(structures.DatabaseEntry{Program: p, AddedAt: time.Now(), FilePath: "/nonexistent/file.mp3"}); err != nil {
		t.Fatal(err)
	}

	if _, ok := ds.LocalPath("u"); ok {
		t.Fatal("missing file reported as downloaded")
	}
	if entry, _ := db.Get("u"); entry == nil || entry.FilePath != "" {
		t.Errorf("stale entry kept: %+v", entry)
	}
}
