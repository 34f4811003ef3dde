package ui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// searchMsg carries a query whose debounce delay elapsed
type searchMsg struct {
	seq  int
	term string
}

// SearchDebouncer defers query evaluation until typing pauses. Scheduling a
// new query cancels the pending one.
type SearchDebouncer struct {
	delay  time.Duration
	seq    int
	cancel chan struct{}
}

// NewSearchDebouncer creates a debouncer with the given delay
func NewSearchDebouncer(delay time.Duration) *SearchDebouncer {
	return &SearchDebouncer{delay: delay}
}

// Schedule cancels any pending query and returns a command that delivers
// term after the delay
func (d *SearchDebouncer) Schedule(term string) tea.Cmd {
	d.Cancel()

	d.seq++
	seq := d.seq
	cancel := make(chan struct{})
	d.cancel = cancel
	delay := d.delay

	return func() tea.Msg {
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-timer.C:
			return searchMsg{seq: seq, term: term}
		case <-cancel:
			return nil
		}
	}
}

// Cancel drops the pending query, if any
func (d *SearchDebouncer) Cancel() {
	if d.cancel != nil {
		close(d.cancel)
		d.cancel = nil
	}
}

// Accept reports whether msg belongs to the latest scheduled query
func (d *SearchDebouncer) Accept(msg searchMsg) bool {
	if msg.seq != d.seq {
		return false
	}
	d.cancel = nil
	return true
}

// KeyDebouncer helps prevent key repeat flooding.
type KeyDebouncer struct {
	mu              sync.Mutex
	lastKeyTime     map[string]time.Time
	repeatDelay     time.Duration
	initialDelay    time.Duration
	consecutiveKeys map[string]int
	now             func() time.Time
}

// NewKeyDebouncer creates a new key debouncer.
func NewKeyDebouncer() *KeyDebouncer {
	return &KeyDebouncer{
		lastKeyTime:     make(map[string]time.Time),
		repeatDelay:     50 * time.Millisecond,
		initialDelay:    300 * time.Millisecond,
		consecutiveKeys: make(map[string]int),
		now:             time.Now,
	}
}

// ShouldProcess returns true if the key event should be processed.
func (kd *KeyDebouncer) ShouldProcess(key string) bool {
	kd.mu.Lock()
	defer kd.mu.Unlock()

	now := kd.now()
	lastTime, exists := kd.lastKeyTime[key]
	if !exists || now.Sub(lastTime) > 500*time.Millisecond {
		kd.lastKeyTime[key] = now
		kd.consecutiveKeys[key] = 1
		return true
	}

	requiredDelay := kd.repeatDelay
	if kd.consecutiveKeys[key] < 3 {
		requiredDelay = kd.initialDelay
	}

	if now.Sub(lastTime) >= requiredDelay {
		kd.consecutiveKeys[key]++
		kd.lastKeyTime[key] = now
		return true
	}

	return false
}
