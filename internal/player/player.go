package player

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/haryoiro/golha/internal/logger"
)

// ErrNoMedia is returned by transport calls made before anything was loaded
var ErrNoMedia = errors.New("no media loaded")

// OpenFunc resolves a media URL into a seekable MP3 stream
type OpenFunc func(url string) (io.ReadSeekCloser, error)

// Player is the audio element. It decodes MP3 with beep and plays it
// through the shared speaker.
type Player struct {
	mu                 sync.RWMutex
	open               OpenFunc
	streamer           beep.StreamSeekCloser
	ctrl               *beep.Ctrl
	tracker            *drainTracker
	volume             *effects.Volume
	format             beep.Format
	duration           time.Duration
	level              float64
	speakerInitialized bool
	currentSampleRate  beep.SampleRate
}

// New creates a player that opens media through open
func New(open OpenFunc, volume float64) *Player {
	logger.Debug("Audio player created (speaker will be initialized on first load)")
	return &Player{
		open:  open,
		level: clampVolume(volume),
	}
}

// Load replaces the current media with url. The new media starts paused.
func (p *Player) Load(url string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.unloadLocked()

	rc, err := p.open(url)
	if err != nil {
		return fmt.Errorf("failed to open media: %w", err)
	}

	streamer, format, err := mp3.Decode(rc)
	if err != nil {
		rc.Close()
		return fmt.Errorf("failed to decode MP3: %w", err)
	}

	volume := &effects.Volume{
		Streamer: streamer,
		Base:     2,
	}
	applyLevel(volume, p.level)

	ctrl := &beep.Ctrl{
		Streamer: volume,
		Paused:   true,
	}

	if !p.speakerInitialized || p.currentSampleRate != format.SampleRate {
		if p.speakerInitialized {
			speaker.Close()
		}
		if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
			streamer.Close()
			p.speakerInitialized = false
			return fmt.Errorf("failed to initialize speaker for sample rate %d: %w", format.SampleRate, err)
		}
		p.speakerInitialized = true
		p.currentSampleRate = format.SampleRate
		logger.Debug("Speaker initialized with sample rate: %d Hz", format.SampleRate)
	}

	p.streamer = streamer
	p.ctrl = ctrl
	p.tracker = &drainTracker{Streamer: ctrl}
	p.volume = volume
	p.format = format
	p.duration = format.SampleRate.D(streamer.Len())

	speaker.Play(p.tracker)

	logger.Debug("Loaded %s, duration: %v, format: %v", url, p.duration, format)
	return nil
}

func (p *Player) unloadLocked() {
	if p.speakerInitialized {
		speaker.Clear()
	}
	if p.streamer != nil {
		p.streamer.Close()
	}
	p.streamer = nil
	p.ctrl = nil
	p.tracker = nil
	p.volume = nil
	p.duration = 0
}

// Play resumes playback
func (p *Player) Play() error {
	return p.setPaused(false)
}

// Pause pauses playback
func (p *Player) Pause() error {
	return p.setPaused(true)
}

func (p *Player) setPaused(paused bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctrl == nil {
		return ErrNoMedia
	}

	speaker.Lock()
	p.ctrl.Paused = paused
	speaker.Unlock()
	return nil
}

// Paused reports whether playback is halted
func (p *Player) Paused() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.ctrl == nil {
		return true
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.ctrl.Paused
}

// Ended reports whether the media played to its end
func (p *Player) Ended() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.streamer == nil {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	n := p.streamer.Len()
	return n > 0 && p.streamer.Position() >= n
}

// Position returns the current playback position
func (p *Player) Position() time.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.format.SampleRate.D(p.streamer.Position())
}

// Duration returns the media length; false while nothing is loaded
func (p *Player) Duration() (time.Duration, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.streamer == nil || p.duration <= 0 {
		return 0, false
	}
	return p.duration, true
}

// Seek moves the playback position
func (p *Player) Seek(pos time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil {
		return ErrNoMedia
	}

	if pos < 0 {
		pos = 0
	}
	if pos > p.duration {
		pos = p.duration
	}

	n := p.format.SampleRate.N(pos)
	if length := p.streamer.Len(); n >= length {
		n = length - 1
	}
	if n < 0 {
		n = 0
	}

	speaker.Lock()
	err := p.streamer.Seek(n)
	rearm := err == nil && p.tracker.rearm()
	speaker.Unlock()

	if err != nil {
		return fmt.Errorf("failed to seek to %v: %w", pos, err)
	}
	// a drained stream was dropped by the mixer
	if rearm {
		speaker.Play(p.tracker)
	}
	logger.Debug("Seeked to %v", pos)
	return nil
}

// SetVolume sets the volume (0.0 to 1.0)
func (p *Player) SetVolume(volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.level = clampVolume(volume)
	if p.volume == nil {
		return
	}

	speaker.Lock()
	applyLevel(p.volume, p.level)
	speaker.Unlock()
}

// GetVolume returns the current volume (0.0 to 1.0)
func (p *Player) GetVolume() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.level
}

// Close releases the media and the speaker
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.unloadLocked()
	if p.speakerInitialized {
		speaker.Close()
		p.speakerInitialized = false
	}
	return nil
}

func clampVolume(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// applyLevel maps a linear 0..1 level onto the volume effect's exponent
func applyLevel(v *effects.Volume, level float64) {
	if level <= 0 {
		v.Silent = true
		return
	}
	v.Silent = false
	v.Volume = math.Log2(level)
}
