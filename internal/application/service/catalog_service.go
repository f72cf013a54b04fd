package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/majidkambarath/restaurant-pos/internal/domain/entity"
	"github.com/majidkambarath/restaurant-pos/internal/domain/repository"
	"github.com/majidkambarath/restaurant-pos/pkg/debounce"
)

// searchState is the per-terminal debounce state for one searchable list.
// Rapid keystrokes coalesce into a single trailing upstream fetch, and a
// fetch that was overtaken by a newer search never overwrites the cache.
type searchState[T any] struct {
	mu      sync.Mutex
	deb     *debounce.Debouncer
	seq     debounce.Sequencer
	results []T
}

func (st *searchState[T]) snapshot() []T {
	st.mu.Lock()
	defer st.mu.Unlock()
	out := make([]T, len(st.results))
	copy(out, st.results)
	return out
}

// search debounces fetch and waits for the trailing call. A superseded
// search returns the cache as it stands; its own result is discarded.
func (st *searchState[T]) search(ctx context.Context, wait time.Duration, fetch func() ([]T, error)) []T {
	ticket := st.seq.Next()
	done := make(chan struct{})
	st.deb.Trigger(func() {
		defer close(done)
		results, err := fetch()
		if err != nil {
			log.Printf("search fetch failed: %v", err)
			return
		}
		st.mu.Lock()
		if !st.seq.Stale(ticket) {
			st.results = results
		}
		st.mu.Unlock()
	})

	select {
	case <-done:
	case <-time.After(wait + time.Second):
	case <-ctx.Done():
	}
	return st.snapshot()
}

// CatalogService proxies the menu from the order backend with per-terminal
// debounced item search.
type CatalogService struct {
	gateway repository.CatalogGateway
	wait    time.Duration

	mu        sync.Mutex
	terminals map[string]*searchState[entity.CatalogItem]
}

// NewCatalogService creates a catalog service with the given search
// debounce interval.
func NewCatalogService(gateway repository.CatalogGateway, searchDebounce time.Duration) *CatalogService {
	return &CatalogService{
		gateway:   gateway,
		wait:      searchDebounce,
		terminals: make(map[string]*searchState[entity.CatalogItem]),
	}
}

// Items fetches menu items for a group. Failures degrade to an empty list.
func (s *CatalogService) Items(ctx context.Context, groupID string) []entity.CatalogItem {
	items, err := s.gateway.Items(ctx, repository.ItemQuery{GroupID: groupID})
	if err != nil {
		log.Printf("catalog: items fetch failed: %v", err)
		return []entity.CatalogItem{}
	}
	return items
}

// Categories fetches the menu groups. Failures degrade to an empty list.
func (s *CatalogService) Categories(ctx context.Context) []entity.Category {
	cats, err := s.gateway.Categories(ctx)
	if err != nil {
		log.Printf("catalog: categories fetch failed: %v", err)
		return []entity.Category{}
	}
	return cats
}

// Search runs a debounced item search for the terminal. Consecutive calls
// within the debounce window collapse into one upstream fetch for the
// final query; only the latest search may update the cached list.
func (s *CatalogService) Search(ctx context.Context, terminalID, query string) []entity.CatalogItem {
	st := s.state(terminalID)
	return st.search(ctx, s.wait, func() ([]entity.CatalogItem, error) {
		return s.gateway.Items(context.WithoutCancel(ctx), repository.ItemQuery{Search: query})
	})
}

func (s *CatalogService) state(terminalID string) *searchState[entity.CatalogItem] {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.terminals[terminalID]
	if !ok {
		st = &searchState[entity.CatalogItem]{deb: debounce.New(s.wait)}
		s.terminals[terminalID] = st
	}
	return st
}
