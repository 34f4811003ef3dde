// Package search filters the catalog by normalized token match.
package search

import (
	"math/rand"
	"strings"

	"github.com/haryoiro/golha/internal/normalize"
	"github.com/haryoiro/golha/internal/structures"
)

// Search returns the view for term over all.
//
// An empty term yields the whole catalog in a fresh random order. Otherwise
// an entry matches when its SearchKey contains every token of the normalized
// term, and matches keep catalog order.
func Search(term string, all []*structures.Program, rng *rand.Rand) []*structures.Program {
	tokens := normalize.Tokens(term)
	if len(tokens) == 0 {
		return Shuffle(all, rng)
	}

	view := make([]*structures.Program, 0)
	for _, p := range all {
		if Matches(p, tokens) {
			view = append(view, p)
		}
	}
	return view
}

// Matches reports whether p's search key contains every token
func Matches(p *structures.Program, tokens []string) bool {
	for _, token := range tokens {
		if !strings.Contains(p.SearchKey, token) {
			return false
		}
	}
	return true
}

// Shuffle returns a shuffled copy of view; the elements are shared
func Shuffle(view []*structures.Program, rng *rand.Rand) []*structures.Program {
	out := make([]*structures.Program, len(view))
	copy(out, view)
	if rng == nil {
		rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
		return out
	}
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
