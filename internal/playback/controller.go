// Package playback implements the cursor and transport state machine over
// the current catalog view.
package playback

import (
	"math/rand"
	"time"

	"github.com/haryoiro/golha/internal/catalog"
	"github.com/haryoiro/golha/internal/constants"
	"github.com/haryoiro/golha/internal/logger"
	"github.com/haryoiro/golha/internal/structures"
)

// Labels shown in the now-playing line
const (
	NowPlayingPrefix = "در حال پخش : "
	ErrorSuffix      = " (خطا در پخش)"
)

// Hooks are invoked synchronously from controller transitions
type Hooks struct {
	// TrackChanged runs after a program was loaded into the media by a
	// play request. Restores and failed loads do not fire it.
	TrackChanged func(p *structures.Program)
	// Paused runs after playback was paused by the user
	Paused func()
	// Restored runs once a pending restore was applied to the media
	Restored func()
}

type pendingRestore struct {
	position time.Duration
	resume   bool
}

// Controller owns the playback cursor into the current view. The cursor is
// derived from the identity (media URL) of the loaded program, so replacing
// the view never leaves it pointing at a different program.
type Controller struct {
	media       Media
	rng         *rand.Rand
	hooks       Hooks
	autoAdvance string

	view    []*structures.Program
	cursor  int
	current *structures.Program
	state   structures.PlaybackState
	lastErr string
	loadErr bool
	pending *pendingRestore
}

// NewController creates an idle controller over media
func NewController(media Media, rng *rand.Rand) *Controller {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Controller{
		media:       media,
		rng:         rng,
		cursor:      -1,
		state:       structures.Idle,
		autoAdvance: constants.AutoAdvanceNext,
	}
}

// SetHooks installs transition hooks
func (c *Controller) SetHooks(h Hooks) {
	c.hooks = h
}

// SetAutoAdvance selects what happens when a program ends
func (c *Controller) SetAutoAdvance(policy string) {
	c.autoAdvance = policy
}

// SetView replaces the view and re-derives the cursor from the loaded program
func (c *Controller) SetView(view []*structures.Program) {
	c.view = view
	c.cursor = -1
	if c.current != nil {
		c.cursor = catalog.IndexOf(view, c.current.MediaURL)
	}
}

func (c *Controller) View() []*structures.Program { return c.view }
func (c *Controller) Cursor() int                   { return c.cursor }
func (c *Controller) State() structures.PlaybackState {
	return c.state
}

// Current returns the program assigned to the media, or nil
func (c *Controller) Current() *structures.Program {
	return c.current
}

// Play assigns view[index] to the media and optionally starts it.
// Out-of-range indices are ignored.
func (c *Controller) Play(index int, autoStart bool) {
	if !c.load(index) {
		return
	}
	if autoStart {
		c.start()
	}

	if c.hooks.TrackChanged != nil {
		c.hooks.TrackChanged(c.current)
	}
}

// load assigns view[index] to the media and reports whether it loaded
func (c *Controller) load(index int) bool {
	if index < 0 || index >= len(c.view) {
		logger.Debug("Ignoring play request for index %d (view size %d)", index, len(c.view))
		return false
	}

	p := c.view[index]
	c.cursor = index
	c.current = p
	c.pending = nil
	c.lastErr = ""
	c.loadErr = false
	c.state = structures.Loaded

	logger.Info("Loading program: %s", p.DisplayName())
	if err := c.media.Load(p.MediaURL); err != nil {
		c.fail("load", err)
		c.loadErr = true
		return false
	}
	return true
}

// HasPosition reports whether the media holds a loaded program whose
// position is meaningful, i.e. it loaded and no restore is still pending
func (c *Controller) HasPosition() bool {
	return c.current != nil && !c.loadErr && c.pending == nil
}

// start requests playback; failures only mark the status
func (c *Controller) start() {
	if c.media.Ended() {
		if err := c.media.Seek(0); err != nil {
			logger.Debug("Rewind before replay failed: %v", err)
		}
	}
	if err := c.media.Play(); err != nil {
		c.fail("play", err)
		c.state = structures.Loaded
		return
	}
	c.lastErr = ""
	c.state = structures.Playing
}

func (c *Controller) fail(op string, err error) {
	logger.Warn("Playback %s failed for %s: %v", op, c.current.MediaURL, err)
	c.lastErr = err.Error()
}

// TogglePlayPause starts the first program when idle, otherwise flips
// between playing and paused based on the media's own state
func (c *Controller) TogglePlayPause() {
	if c.state == structures.Idle {
		c.Play(0, true)
		return
	}

	if c.media.Paused() || c.media.Ended() {
		c.start()
		return
	}

	if err := c.media.Pause(); err != nil {
		logger.Warn("Pause failed: %v", err)
		return
	}
	c.state = structures.Paused
	if c.hooks.Paused != nil {
		c.hooks.Paused()
	}
}

// Next plays the following program, wrapping to the first
func (c *Controller) Next() {
	n := len(c.view)
	if n == 0 {
		return
	}
	next := 0
	if c.cursor >= 0 && c.cursor < n-1 {
		next = c.cursor + 1
	}
	c.Play(next, true)
}

// Prev plays the preceding program, wrapping to the last
func (c *Controller) Prev() {
	n := len(c.view)
	if n == 0 {
		return
	}
	prev := n - 1
	if c.cursor > 0 && c.cursor < n {
		prev = c.cursor - 1
	}
	c.Play(prev, true)
}

// PlayRandomNext plays a uniformly random program other than the current one
func (c *Controller) PlayRandomNext() {
	n := len(c.view)
	if n <= 1 {
		return
	}
	// only one value is excluded, so this terminates quickly
	i := c.rng.Intn(n)
	for i == c.cursor {
		i = c.rng.Intn(n)
	}
	c.Play(i, true)
}

// Seek moves to fraction of the duration; ignored while the duration is unknown
func (c *Controller) Seek(fraction float64) {
	if c.state == structures.Idle {
		return
	}
	total, ok := c.media.Duration()
	if !ok || total <= 0 {
		return
	}
	if fraction < 0 {
		fraction = 0
	} else if fraction > 1 {
		fraction = 1
	}
	if err := c.media.Seek(time.Duration(fraction * float64(total))); err != nil {
		logger.Warn("Seek failed: %v", err)
	}
}

// SeekBy moves relative to the current position
func (c *Controller) SeekBy(delta time.Duration) {
	if c.state == structures.Idle {
		return
	}
	total, ok := c.media.Duration()
	if !ok || total <= 0 {
		return
	}
	c.Seek(float64(c.media.Position()+delta) / float64(total))
}

// Restore loads view[index] without starting it and defers the seek (and
// optional resume) until the media reports its duration
func (c *Controller) Restore(index int, position time.Duration, resume bool) {
	if !c.load(index) {
		return
	}
	c.pending = &pendingRestore{position: position, resume: resume}
	c.OnMetadata()
}

// OnMetadata applies a pending restore once the duration is known
func (c *Controller) OnMetadata() {
	if c.pending == nil {
		return
	}
	if _, ok := c.media.Duration(); !ok {
		return
	}

	pending := c.pending
	c.pending = nil
	if pending.position > 0 {
		if err := c.media.Seek(pending.position); err != nil {
			logger.Warn("Restore seek failed: %v", err)
		}
	}
	if pending.resume {
		c.start()
	}
	if c.hooks.Restored != nil {
		c.hooks.Restored()
	}
}

// OnTick reconciles controller state with the media and handles the end
// of a program
func (c *Controller) OnTick() {
	if c.state == structures.Idle {
		return
	}
	c.OnMetadata()

	if c.state != structures.Playing {
		return
	}
	if c.media.Ended() {
		c.state = structures.Paused
		c.advance()
		return
	}
	if c.media.Paused() {
		c.state = structures.Paused
	}
}

func (c *Controller) advance() {
	switch c.autoAdvance {
	case constants.AutoAdvanceOff:
	case constants.AutoAdvanceRandom:
		if len(c.view) > 1 {
			c.PlayRandomNext()
			return
		}
		c.Next()
	default:
		c.Next()
	}
}

// NowPlaying returns the now-playing label
func (c *Controller) NowPlaying() string {
	if c.current == nil {
		return ""
	}
	label := NowPlayingPrefix + c.current.DisplayName()
	if c.lastErr != "" {
		label += ErrorSuffix
	}
	return label
}

// Status fills the playback part of a player snapshot
func (c *Controller) Status() structures.PlayerState {
	s := structures.PlayerState{
		State:      c.state,
		Cursor:     c.cursor,
		NowPlaying: c.NowPlaying(),
		LastError:  c.lastErr,
		IsPlaying:  c.state == structures.Playing,
	}
	if c.current == nil {
		return s
	}

	s.CurrentURL = c.current.MediaURL
	s.CurrentName = c.current.DisplayName()
	s.CurrentTime = c.media.Position()
	if total, ok := c.media.Duration(); ok && total > 0 {
		s.TotalTime = total
		s.Progress = float64(s.CurrentTime) / float64(total) * 100
		if s.Progress > 100 {
			s.Progress = 100
		}
	}
	return s
}
