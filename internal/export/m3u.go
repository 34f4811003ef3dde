// Package export writes catalog views as playlists other players can open.
package export

import (
	"fmt"
	"io"

	"github.com/grafov/m3u8"
	"github.com/haryoiro/golha/internal/structures"
)

// WriteM3U writes view as an M3U media playlist. Programs without a media
// URL are skipped. It returns the number of entries written.
func WriteM3U(w io.Writer, view []*structures.Program) (int, error) {
	capacity := uint(len(view))
	if capacity == 0 {
		capacity = 1
	}

	playlist, err := m3u8.NewMediaPlaylist(0, capacity)
	if err != nil {
		return 0, fmt.Errorf("failed to create playlist: %w", err)
	}

	count := 0
	for _, p := range view {
		if p == nil || p.MediaURL == "" {
			continue
		}
		if err := playlist.Append(p.MediaURL, 0, p.DisplayName()); err != nil {
			return count, fmt.Errorf("failed to add %s: %w", p.MediaURL, err)
		}
		count++
	}
	playlist.Close()

	if _, err := playlist.Encode().WriteTo(w); err != nil {
		return count, fmt.Errorf("failed to write playlist: %w", err)
	}
	return count, nil
}
