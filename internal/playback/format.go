package playback

import (
	"fmt"
	"math"
	"time"
)

// FormatSeconds renders seconds as mm:ss; unknown or non-positive values are 00:00
func FormatSeconds(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds <= 0 {
		return "00:00"
	}
	total := int(math.Floor(seconds))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// FormatTime renders d as mm:ss
func FormatTime(d time.Duration) string {
	return FormatSeconds(d.Seconds())
}
