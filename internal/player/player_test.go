package player

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/faiface/beep/effects"
)

func TestTransportBeforeLoad(t *testing.T) {
	p := New(func(string) (io.ReadSeekCloser, error) { return nil, errors.New("unused") }, 0.5)

	if err := p.Play(); !errors.Is(err, ErrNoMedia) {
		t.Errorf("Play() = %v, want ErrNoMedia", err)
	}
	if err := p.Seek(0); !errors.Is(err, ErrNoMedia) {
		t.Errorf("Seek() = %v, want ErrNoMedia", err)
	}
	if !p.Paused() || p.Ended() {
		t.Error("unloaded player should be paused and not ended")
	}
	if _, ok := p.Duration(); ok {
		t.Error("duration known before load")
	}
}

func TestLoadOpenError(t *testing.T) {
	openErr := errors.New("offline")
	p := New(func(string) (io.ReadSeekCloser, error) { return nil, openErr }, 0.5)

	if err := p.Load("https://example.org/a.mp3"); !errors.Is(err, openErr) {
		t.Errorf("Load() = %v, want wrapped %v", err, openErr)
	}
	if err := p.Play(); !errors.Is(err, ErrNoMedia) {
		t.Errorf("Play() after failed load = %v", err)
	}
}

func TestVolumeLevel(t *testing.T) {
	p := New(nil, 3)
	if got := p.GetVolume(); got != 1 {
		t.Errorf("volume = %v, want clamped 1", got)
	}
	p.SetVolume(-1)
	if got := p.GetVolume(); got != 0 {
		t.Errorf("volume = %v, want clamped 0", got)
	}
}

func TestApplyLevel(t *testing.T) {
	v := &effects.Volume{Base: 2}

	applyLevel(v, 0)
	if !v.Silent {
		t.Error("zero level should silence")
	}

	applyLevel(v, 0.5)
	if v.Silent || math.Abs(v.Volume+1) > 1e-9 {
		t.Errorf("level 0.5 -> silent=%v volume=%v, want -1", v.Silent, v.Volume)
	}

	applyLevel(v, 1)
	if v.Volume != 0 {
		t.Errorf("level 1 -> volume %v, want 0", v.Volume)
	}
}
