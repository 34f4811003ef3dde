package player

import "github.com/faiface/beep"

// drainTracker records when its streamer runs out. The speaker's mixer drops
// a drained streamer, so it has to be handed to the speaker again before it
// can play after a seek.
type drainTracker struct {
	beep.Streamer
	drained bool
}

func (d *drainTracker) Stream(samples [][2]float64) (int, bool) {
	n, ok := d.Streamer.Stream(samples)
	if !ok {
		d.drained = true
	}
	return n, ok
}

// rearm reports whether the streamer drained since the last call and clears
// the flag. Callers hold the speaker lock.
func (d *drainTracker) rearm() bool {
	if !d.drained {
		return false
	}
	d.drained = false
	return true
}
