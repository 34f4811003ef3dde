// Package catalog holds the full program list and its derived current view.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/haryoiro/golha/internal/logger"
	"github.com/haryoiro/golha/internal/normalize"
	"github.com/haryoiro/golha/internal/structures"
)

// ErrNotArray is returned when the catalog resource is not a JSON array
var ErrNotArray = errors.New("catalog is not a JSON array")

// Record keys of the catalog resource
const (
	KeyName   = "Program Name"
	KeyMedia  = "MP3 URL"
	KeySource = "Source"
)

// Store holds the catalog loaded once per run and the current view over it.
// View elements always point into All.
type Store struct {
	All  []*structures.Program
	View []*structures.Program
}

// NewStore wraps programs, annotating their search keys
func NewStore(programs []*structures.Program) *Store {
	Annotate(programs)
	return &Store{
		All:  programs,
		View: programs,
	}
}

// SetView replaces the current view
func (s *Store) SetView(view []*structures.Program) {
	s.View = view
}

// IndexOf returns the position of the program with mediaURL in view, or -1
func IndexOf(view []*structures.Program, mediaURL string) int {
	if mediaURL == "" {
		return -1
	}
	for i, p := range view {
		if p.MediaURL == mediaURL {
			return i
		}
	}
	return -1
}

// Annotate computes the normalized search key for every program
func Annotate(programs []*structures.Program) {
	for _, p := range programs {
		p.SearchKey = normalize.Text(p.Name + " " + p.SourceURL)
	}
}

// Decode reads a JSON array of program records. Missing or non-string
// fields become empty strings and elements that are not objects are
// skipped instead of failing the whole load.
func Decode(r io.Reader) ([]*structures.Program, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotArray, err)
	}

	programs := make([]*structures.Program, 0, len(elements))
	for i, element := range elements {
		var rec map[string]json.RawMessage
		// null decodes into a nil map without an error
		if err := json.Unmarshal(element, &rec); err != nil || rec == nil {
			logger.Debug("Skipping catalog element %d: not an object", i)
			continue
		}
		programs = append(programs, &structures.Program{
			Name:      stringField(rec, KeyName),
			MediaURL:  stringField(rec, KeyMedia),
			SourceURL: stringField(rec, KeySource),
		})
	}
	return programs, nil
}

func stringField(rec map[string]json.RawMessage, key string) string {
	v, ok := rec[key]
	if !ok {
		return ""
	}

	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return strings.TrimSpace(s)
	}

	// numeric names are kept as their literal text
	var n json.Number
	if err := json.Unmarshal(v, &n); err == nil {
		return n.String()
	}
	return ""
}
