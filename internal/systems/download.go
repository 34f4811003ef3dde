package systems

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/haryoiro/golha/internal/api"
	"github.com/haryoiro/golha/internal/constants"
	"github.com/haryoiro/golha/internal/database"
	"github.com/haryoiro/golha/internal/logger"
	"github.com/haryoiro/golha/internal/structures"
)

// DownloadSystem saves program media to disk on request
type DownloadSystem struct {
	mu             sync.Mutex
	config         *structures.Config
	database       database.DB
	client         *api.Client
	dir            string
	queue          chan *structures.Program
	inFlight       map[string]bool
	statusCallback func(mediaURL string, status structures.MusicDownloadStatus)
	ctx            context.Context
	cancel         context.CancelFunc
	wg             sync.WaitGroup
}

// NewDownloadSystem creates a download system writing below cacheDir
func NewDownloadSystem(cfg *structures.Config, db database.DB, client *api.Client, cacheDir string) *DownloadSystem {
	dir := cfg.DownloadDir
	if dir == "" {
		dir = filepath.Join(cacheDir, "downloads")
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &DownloadSystem{
		config:   cfg,
		database: db,
		client:   client,
		dir:      dir,
		queue:    make(chan *structures.Program, constants.DefaultQueueSize),
		inFlight: make(map[string]bool),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// SetStatusCallback sets the function notified of status changes
func (ds *DownloadSystem) SetStatusCallback(callback func(mediaURL string, status structures.MusicDownloadStatus)) {
	ds.statusCallback = callback
}

// Start launches the workers
func (ds *DownloadSystem) Start() error {
	if err := os.MkdirAll(ds.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create download directory: %w", err)
	}

	workers := ds.config.MaxConcurrentDownloads
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		ds.wg.Add(1)
		go ds.worker()
	}
	logger.Debug("Download system started with %d workers", workers)
	return nil
}

// Stop cancels running downloads and waits for the workers
func (ds *DownloadSystem) Stop() {
	ds.cancel()
	ds.wg.Wait()
}

// PathFor returns where the media at mediaURL is stored
func (ds *DownloadSystem) PathFor(mediaURL string) string {
	sum := sha1.Sum([]byte(mediaURL))
	return filepath.Join(ds.dir, hex.EncodeToString(sum[:])+".mp3")
}

// LocalPath returns the downloaded file for mediaURL if it still exists
func (ds *DownloadSystem) LocalPath(mediaURL string) (string, bool) {
	entry, ok := ds.database.Get(mediaURL)
	if !ok || entry.FilePath == "" {
		return "", false
	}

	if _, err := os.Stat(entry.FilePath); err != nil {
		logger.Warn("Downloaded file missing for %s, streaming instead", mediaURL)
		if err := ds.database.Remove(mediaURL); err != nil {
			logger.Error("Failed to forget missing download: %v", err)
		}
		ds.notify(mediaURL, structures.NotDownloaded)
		return "", false
	}
	return entry.FilePath, true
}

// QueueDownload schedules p for download. It reports false when p is
// already downloaded, already queued, or the queue is full.
func (ds *DownloadSystem) QueueDownload(p *structures.Program) bool {
	if p == nil || p.MediaURL == "" {
		return false
	}
	if _, ok := ds.LocalPath(p.MediaURL); ok {
		return false
	}

	ds.mu.Lock()
	defer ds.mu.Unlock()

	if ds.inFlight[p.MediaURL] {
		return false
	}

	select {
	case ds.queue <- p:
		ds.inFlight[p.MediaURL] = true
	default:
		logger.Warn("Download queue full, dropping %s", p.MediaURL)
		return false
	}

	ds.notify(p.MediaURL, structures.Downloading)
	return true
}

func (ds *DownloadSystem) worker() {
	defer ds.wg.Done()
	for {
		select {
		case p := <-ds.queue:
			status := structures.Downloaded
			if err := ds.download(p); err != nil {
				logger.Error("Download failed for %s: %v", p.DisplayName(), err)
				status = structures.DownloadFailed
			}

			ds.mu.Lock()
			delete(ds.inFlight, p.MediaURL)
			ds.mu.Unlock()
			ds.notify(p.MediaURL, status)

		case <-ds.ctx.Done():
			return
		}
	}
}

func (ds *DownloadSystem) download(p *structures.Program) error {
	path := ds.PathFor(p.MediaURL)
	tmp := path + ".part"

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	start := time.Now()
	n, err := ds.client.Download(ds.ctx, p.MediaURL, f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp)
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to move download into place: %w", err)
	}

	entry := structures.DatabaseEntry{
		Program:  *p,
		AddedAt:  time.Now(),
		FilePath: path,
		FileSize: n,
	}
	if err := ds.database.Add(entry); err != nil {
		return err
	}

	logger.Info("Downloaded %s (%s in %s)", p.DisplayName(), humanize.Bytes(uint64(n)), time.Since(start).Round(time.Millisecond))
	return nil
}

func (ds *DownloadSystem) notify(mediaURL string, status structures.MusicDownloadStatus) {
	if ds.statusCallback != nil {
		ds.statusCallback(mediaURL, status)
	}
}
