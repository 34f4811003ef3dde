package systems

import (
	"math/rand"
	"sync"
	"time"

	"github.com/haryoiro/golha/internal/constants"
	"github.com/haryoiro/golha/internal/database"
	"github.com/haryoiro/golha/internal/logger"
	"github.com/haryoiro/golha/internal/persistence"
	"github.com/haryoiro/golha/internal/playback"
	"github.com/haryoiro/golha/internal/structures"
)

// Audio is the media element plus the controls the controller does not own
type Audio interface {
	playback.Media
	SetVolume(volume float64)
	GetVolume() float64
	Close() error
}

// PlayerSystem runs the playback controller on its own goroutine
type PlayerSystem struct {
	mu          sync.Mutex
	config      *structures.Config
	database    database.DB
	audio       Audio
	controller  *playback.Controller
	persist     *persistence.Store
	musicStatus map[string]structures.MusicDownloadStatus
	actionChan  chan structures.SoundAction
	stopChan    chan struct{}
	stopOnce    sync.Once
	done        sync.WaitGroup

	snapMu   sync.RWMutex
	snapshot structures.PlayerState
}

// NewPlayerSystem creates a new player system
func NewPlayerSystem(cfg *structures.Config, db database.DB, audio Audio, rng *rand.Rand) *PlayerSystem {
	ps := &PlayerSystem{
		config:      cfg,
		database:    db,
		audio:       audio,
		controller:  playback.NewController(audio, rng),
		persist:     persistence.NewStore(db),
		musicStatus: make(map[string]structures.MusicDownloadStatus),
		actionChan:  make(chan structures.SoundAction, constants.DefaultActionQueueSize),
		stopChan:    make(chan struct{}),
	}

	ps.controller.SetAutoAdvance(cfg.AutoAdvance)
	ps.controller.SetHooks(playback.Hooks{
		TrackChanged: ps.onTrackChanged,
		Paused:       ps.saveState,
		Restored:     ps.saveState,
	})
	ps.refreshSnapshot()

	return ps
}

// Start starts the player system
func (ps *PlayerSystem) Start() error {
	ps.done.Add(2)
	go ps.run()
	go ps.updateLoop()
	return nil
}

// Stop saves the resume record and releases the audio device
func (ps *PlayerSystem) Stop() {
	ps.stopOnce.Do(func() {
		close(ps.stopChan)
		ps.done.Wait()

		ps.mu.Lock()
		defer ps.mu.Unlock()
		ps.saveState()
		if err := ps.audio.Close(); err != nil {
			logger.Warn("Failed to close audio: %v", err)
		}
	})
}

// SendAction queues an action; it is dropped when the queue is full
func (ps *PlayerSystem) SendAction(action structures.SoundAction) {
	select {
	case ps.actionChan <- action:
	default:
		logger.Warn("Player action queue full, dropping %T", action)
	}
}

// SetMusicStatus records the download status of a program
func (ps *PlayerSystem) SetMusicStatus(mediaURL string, status structures.MusicDownloadStatus) {
	ps.mu.Lock()
	ps.musicStatus[mediaURL] = status
	ps.mu.Unlock()
	ps.refreshSnapshot()
}

// Persistence returns the resume record store
func (ps *PlayerSystem) Persistence() *persistence.Store {
	return ps.persist
}

// GetState returns a copy of the latest player snapshot. It never waits
// for a media load in progress.
func (ps *PlayerSystem) GetState() structures.PlayerState {
	ps.snapMu.RLock()
	defer ps.snapMu.RUnlock()

	s := ps.snapshot
	s.MusicStatus = make(map[string]structures.MusicDownloadStatus, len(ps.snapshot.MusicStatus))
	for k, v := range ps.snapshot.MusicStatus {
		s.MusicStatus[k] = v
	}
	return s
}

func (ps *PlayerSystem) refreshSnapshot() {
	ps.mu.Lock()
	s := ps.controller.Status()
	s.Volume = ps.audio.GetVolume()
	s.MusicStatus = make(map[string]structures.MusicDownloadStatus, len(ps.musicStatus))
	for k, v := range ps.musicStatus {
		s.MusicStatus[k] = v
	}
	ps.mu.Unlock()

	ps.snapMu.Lock()
	ps.snapshot = s
	ps.snapMu.Unlock()
}

func (ps *PlayerSystem) run() {
	defer ps.done.Done()
	for {
		select {
		case action := <-ps.actionChan:
			ps.handleAction(action)
			ps.refreshSnapshot()

		case <-ps.stopChan:
			return
		}
	}
}

func (ps *PlayerSystem) updateLoop() {
	defer ps.done.Done()
	ticker := time.NewTicker(constants.PlayerUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ps.mu.Lock()
			ps.controller.OnTick()
			ps.mu.Unlock()
			ps.refreshSnapshot()

		case <-ps.stopChan:
			return
		}
	}
}

func (ps *PlayerSystem) handleAction(action structures.SoundAction) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	seek := time.Duration(ps.config.SeekSeconds) * time.Second

	switch a := action.(type) {
	case structures.PlayPauseAction:
		ps.controller.TogglePlayPause()

	case structures.PlayIndexAction:
		ps.controller.Play(a.Index, a.AutoStart)

	case structures.NextAction:
		ps.controller.Next()

	case structures.PreviousAction:
		ps.controller.Prev()

	case structures.RandomNextAction:
		ps.controller.PlayRandomNext()

	case structures.ForwardAction:
		ps.controller.SeekBy(seek)

	case structures.BackwardAction:
		ps.controller.SeekBy(-seek)

	case structures.SeekFractionAction:
		ps.controller.Seek(a.Fraction)

	case structures.VolumeUpAction:
		ps.audio.SetVolume(ps.audio.GetVolume() + constants.VolumeStep)

	case structures.VolumeDownAction:
		ps.audio.SetVolume(ps.audio.GetVolume() - constants.VolumeStep)

	case structures.SetViewAction:
		ps.controller.SetView(a.View)

	case structures.RestoreAction:
		ps.controller.Restore(a.Index, a.Position, a.Resume)

	case structures.TrackStatusUpdateAction:
		ps.musicStatus[a.MediaURL] = a.Status

	default:
		logger.Warn("Unknown player action %T", action)
	}
}

// onTrackChanged runs with ps.mu held
func (ps *PlayerSystem) onTrackChanged(p *structures.Program) {
	if p.MediaURL == "" {
		return
	}
	if err := ps.database.UpdatePlayStats(p); err != nil {
		logger.Error("Failed to update play stats: %v", err)
	}
	ps.saveState()
}

// saveState runs with ps.mu held
func (ps *PlayerSystem) saveState() {
	// a failed load or an unapplied restore must not replace the saved record
	if !ps.controller.HasPosition() {
		return
	}
	current := ps.controller.Current()

	playing := ps.controller.State() == structures.Playing
	if err := ps.persist.Save(current.MediaURL, ps.audio.Position().Seconds(), playing); err != nil {
		logger.Error("Failed to save player state: %v", err)
	}
}
