package systems

import (
	"context"
	"errors"
	"math/rand"
	"sync"

	"github.com/haryoiro/golha/internal/api"
	"github.com/haryoiro/golha/internal/catalog"
	"github.com/haryoiro/golha/internal/search"
	"github.com/haryoiro/golha/internal/structures"
)

// ErrCatalogNotLoaded is returned by searches issued before Load succeeded
var ErrCatalogNotLoaded = errors.New("catalog not loaded")

// CatalogSystem loads the program list once and answers searches over it
type CatalogSystem struct {
	mu     sync.RWMutex
	client *api.Client
	source string
	rng    *rand.Rand
	store  *catalog.Store
}

// NewCatalogSystem creates a catalog system reading from source
func NewCatalogSystem(client *api.Client, source string, rng *rand.Rand) *CatalogSystem {
	return &CatalogSystem{
		client: client,
		source: source,
		rng:    rng,
	}
}

// Source returns where the catalog is loaded from
func (cs *CatalogSystem) Source() string {
	return cs.source
}

// Load fetches the catalog. The initial view is the empty-term search.
func (cs *CatalogSystem) Load(ctx context.Context) ([]*structures.Program, error) {
	programs, err := cs.client.FetchCatalog(ctx, cs.source)
	if err != nil {
		return nil, err
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.store = catalog.NewStore(programs)
	cs.store.SetView(search.Search("", cs.store.All, cs.rng))
	return cs.store.View, nil
}

// Loaded reports whether Load succeeded
func (cs *CatalogSystem) Loaded() bool {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.store != nil
}

// Size returns the number of programs in the catalog
func (cs *CatalogSystem) Size() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	if cs.store == nil {
		return 0
	}
	return len(cs.store.All)
}

// Search replaces the current view with the results for term
func (cs *CatalogSystem) Search(term string) ([]*structures.Program, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.store == nil {
		return nil, ErrCatalogNotLoaded
	}
	cs.store.SetView(search.Search(term, cs.store.All, cs.rng))
	return cs.store.View, nil
}

// View returns the current view
func (cs *CatalogSystem) View() []*structures.Program {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	if cs.store == nil {
		return nil
	}
	return cs.store.View
}
