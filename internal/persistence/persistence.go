// Package persistence keeps the resume record of the last played program.
package persistence

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/haryoiro/golha/internal/catalog"
	"github.com/haryoiro/golha/internal/constants"
	"github.com/haryoiro/golha/internal/logger"
	"github.com/haryoiro/golha/internal/structures"
)

// KV is a string key/value backing store
type KV interface {
	SaveAppState(key, value string) error
	GetAppState(key string) (string, bool)
}

// Store reads and writes the SavedState record
type Store struct {
	kv  KV
	key string
}

// NewStore returns a store writing under the default key
func NewStore(kv KV) *Store {
	return &Store{kv: kv, key: constants.StorageKey}
}

// Save records the current program and position. Empty urls are ignored.
func (s *Store) Save(url string, seconds float64, playing bool) error {
	if url == "" {
		return nil
	}
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		seconds = 0
	}

	data, err := json.Marshal(structures.SavedState{
		TrackURL: url,
		Time:     seconds,
		Playing:  playing,
	})
	if err != nil {
		return fmt.Errorf("failed to encode player state: %w", err)
	}

	if err := s.kv.SaveAppState(s.key, string(data)); err != nil {
		return fmt.Errorf("failed to save player state: %w", err)
	}
	return nil
}

// Load returns the stored record. Missing or malformed records report false.
func (s *Store) Load() (structures.SavedState, bool) {
	var state structures.SavedState

	raw, ok := s.kv.GetAppState(s.key)
	if !ok || raw == "" {
		return state, false
	}

	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		logger.Warn("Discarding malformed player state: %v", err)
		return structures.SavedState{}, false
	}
	if state.TrackURL == "" {
		return structures.SavedState{}, false
	}
	if math.IsNaN(state.Time) || state.Time < 0 {
		state.Time = 0
	}

	return state, true
}

// Restore locates the stored program in view. It reports false when there
// is no record or the program is not part of view.
func (s *Store) Restore(view []*structures.Program) (index int, seconds float64, playing bool, ok bool) {
	state, found := s.Load()
	if !found {
		return -1, 0, false, false
	}

	index = catalog.IndexOf(view, state.TrackURL)
	if index < 0 {
		logger.Info("Saved program %s is no longer in the catalog", state.TrackURL)
		return -1, 0, false, false
	}

	return index, state.Time, state.Playing, true
}
