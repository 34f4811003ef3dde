package playback

import "time"

// Media is the single audio element the controller drives.
// Duration reports false until the media's length is known.
type Media interface {
	Load(url string) error
	Play() error
	Pause() error
	Paused() bool
	Ended() bool
	Position() time.Duration
	Duration() (time.Duration, bool)
	Seek(pos time.Duration) error
}
