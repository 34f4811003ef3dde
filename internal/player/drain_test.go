package player

import (
	"testing"

	"github.com/faiface/beep"
)

func drain(s beep.Streamer) {
	buf := make([][2]float64, 4)
	for {
		if _, ok := s.Stream(buf); !ok {
			return
		}
	}
}

func TestDrainTrackerRearmsAfterEnd(t *testing.T) {
	tracker := &drainTracker{Streamer: &beep.Ctrl{Streamer: beep.Silence(10)}}

	if tracker.rearm() {
		t.Fatal("fresh stream reported as drained")
	}

	drain(tracker)
	if !tracker.rearm() {
		t.Fatal("drained stream not reported")
	}
	if tracker.rearm() {
		t.Error("rearm did not clear the flag")
	}
}

func TestDrainTrackerPausedNeverDrains(t *testing.T) {
	tracker := &drainTracker{Streamer: &beep.Ctrl{Streamer: beep.Silence(10), Paused: true}}

	buf := make([][2]float64, 4)
	for i := 0; i < 10; i++ {
		if _, ok := tracker.Stream(buf); !ok {
			t.Fatal("paused stream ended")
		}
	}
	if tracker.rearm() {
		t.Error("paused stream reported as drained")
	}
}
