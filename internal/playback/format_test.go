package playback

import (
	"math"
	"testing"
	"time"
)

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "00:00"},
		{-3, "00:00"},
		{math.NaN(), "00:00"},
		{math.Inf(1), "00:00"},
		{5.9, "00:05"},
		{65, "01:05"},
		{3599, "59:59"},
		{3725, "62:05"},
	}
	for _, tt := range tests {
		if got := FormatSeconds(tt.in); got != tt.want {
			t.Errorf("FormatSeconds(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatTime(t *testing.T) {
	if got := FormatTime(90 * time.Second); got != "01:30" {
		t.Errorf("FormatTime = %q", got)
	}
}
