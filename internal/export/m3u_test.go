package export

import (
	"bytes"
	"testing"

	"github.com/grafov/m3u8"
	"github.com/haryoiro/golha/internal/structures"
)

func TestWriteM3U(t *testing.T) {
	view := []*structures.Program{
		{Name: "گلهای رنگارنگ ۱", MediaURL: "https://example.com/1.mp3"},
		{Name: "no media"},
		{MediaURL: "https://example.com/2.mp3"},
	}

	var buf bytes.Buffer
	n, err := WriteM3U(&buf, view)
	if err != nil {
		t.Fatalf("WriteM3U: %v", err)
	}
	if n != 2 {
		t.Fatalf("wrote %d entries, want 2", n)
	}

	decoded, listType, err := m3u8.DecodeFrom(&buf, true)
	if err != nil {
		t.Fatalf("DecodeFrom: %v", err)
	}
	if listType != m3u8.MEDIA {
		t.Fatalf("list type = %v, want MEDIA", listType)
	}

	playlist := decoded.(*m3u8.MediaPlaylist)
	var uris, titles []string
	for _, seg := range playlist.Segments {
		if seg == nil {
			continue
		}
		uris = append(uris, seg.URI)
		titles = append(titles, seg.Title)
	}
	if len(uris) != 2 || uris[0] != view[0].MediaURL || uris[1] != view[2].MediaURL {
		t.Errorf("uris = %v", uris)
	}
	if len(titles) != 2 || titles[1] != structures.UntitledLabel {
		t.Errorf("titles = %v", titles)
	}
}

func TestWriteM3UEmptyView(t *testing.T) {
	var buf bytes.Buffer
	n, err := WriteM3U(&buf, nil)
	if err != nil {
		t.Fatalf("WriteM3U: %v", err)
	}
	if n != 0 {
		t.Errorf("wrote %d entries", n)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("#EXTM3U")) {
		t.Errorf("missing header: %q", buf.String())
	}
}
