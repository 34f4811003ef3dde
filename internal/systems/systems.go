package systems

import (
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/haryoiro/golha/internal/api"
	"github.com/haryoiro/golha/internal/database"
	"github.com/haryoiro/golha/internal/logger"
	"github.com/haryoiro/golha/internal/player"
	"github.com/haryoiro/golha/internal/structures"
)

// Systems contains all the core systems of the application
type Systems struct {
	Config   *structures.Config
	Database database.DB
	CacheDir string
	Client   *api.Client
	Catalog  *CatalogSystem
	Player   *PlayerSystem
	Download *DownloadSystem
}

// New creates a new Systems instance
func New(cfg *structures.Config, db database.DB, cacheDir string) *Systems {
	s := &Systems{
		Config:   cfg,
		Database: db,
		CacheDir: cacheDir,
		Client:   api.NewClient(nil),
	}

	// *rand.Rand is not safe for concurrent use, one per goroutine owner
	seed := time.Now().UnixNano()
	catalogRng := rand.New(rand.NewSource(seed))
	playerRng := rand.New(rand.NewSource(seed + 1))

	s.Download = NewDownloadSystem(cfg, db, s.Client, cacheDir)
	s.Catalog = NewCatalogSystem(s.Client, cfg.CatalogSource, catalogRng)
	s.Player = NewPlayerSystem(cfg, db, player.New(s.openMedia, cfg.DefaultVolume), playerRng)

	return s
}

// openMedia prefers a downloaded copy over the network
func (s *Systems) openMedia(url string) (io.ReadSeekCloser, error) {
	if path, ok := s.Download.LocalPath(url); ok {
		logger.Debug("Playing downloaded copy: %s", path)
		return s.Client.OpenMedia(context.Background(), path)
	}
	return s.Client.OpenMedia(context.Background(), url)
}

// Start starts all systems
func (s *Systems) Start() error {
	s.Download.SetStatusCallback(func(mediaURL string, status structures.MusicDownloadStatus) {
		s.Player.SendAction(structures.TrackStatusUpdateAction{
			MediaURL: mediaURL,
			Status:   status,
		})
	})

	for _, entry := range s.Database.GetAll() {
		s.Player.SetMusicStatus(entry.Program.MediaURL, structures.Downloaded)
	}

	if err := s.Player.Start(); err != nil {
		return err
	}

	if err := s.Download.Start(); err != nil {
		return err
	}

	return nil
}

// Stop stops all systems
func (s *Systems) Stop() error {
	s.Download.Stop()
	s.Player.Stop()
	return nil
}
