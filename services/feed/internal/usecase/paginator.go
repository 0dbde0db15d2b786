package usecase

import (
	"context"
	"sync"

	"github.com/Chopaholic/MotorAdverts/services/feed/internal/entity"
	"github.com/Chopaholic/MotorAdverts/services/feed/internal/repo/persistent"
)

// Paginator accumulates feed pages for one scrolling client. It owns three
// rules the storefront relies on:
//
//   - at most one load runs at a time; LoadMore during a load is a no-op
//   - LoadMore is a no-op once the stream is exhausted or before any page
//     has been loaded
//   - changing filters bumps a generation counter, and a load that resolves
//     under a stale generation is discarded, so items queried under filter
//     set A never mix with items queried under filter set B
type Paginator struct {
	mu   sync.Mutex
	repo persistent.FeedRepository

	filters    entity.Filters
	items      []entity.Item
	cursor     *persistent.Cursor
	hasMore    bool
	loading    bool
	generation uint64
}

func NewPaginator(repo persistent.FeedRepository, filters entity.Filters) *Paginator {
	return &Paginator{
		repo:    repo,
		filters: filters,
		hasMore: true,
	}
}

// LoadInitial loads the first page, replacing anything accumulated.
func (p *Paginator) LoadInitial(ctx context.Context) error {
	p.mu.Lock()
	if p.loading {
		p.mu.Unlock()
		return nil
	}
	p.loading = true
	p.items = nil
	p.cursor = nil
	p.hasMore = true
	gen := p.generation
	filters := p.filters
	p.mu.Unlock()

	items, next, err := p.repo.ListPage(filters, nil, entity.PageSize)

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.generation {
		return nil
	}
	p.loading = false
	if err != nil {
		return err
	}
	p.items = items
	p.cursor = next
	p.hasMore = len(items) == entity.PageSize
	return nil
}

// LoadMore appends the next page. Calls while a load is in flight, after
// exhaustion or before the initial load quietly do nothing.
func (p *Paginator) LoadMore(ctx context.Context) error {
	p.mu.Lock()
	if p.loading || !p.hasMore || p.cursor == nil {
		p.mu.Unlock()
		return nil
	}
	p.loading = true
	gen := p.generation
	filters := p.filters
	cursor := p.cursor
	p.mu.Unlock()

	items, next, err := p.repo.ListPage(filters, cursor, entity.PageSize)

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.generation {
		return nil
	}
	p.loading = false
	if err != nil {
		return err
	}
	p.items = append(p.items, items...)
	if next != nil {
		p.cursor = next
	}
	p.hasMore = len(items) == entity.PageSize
	return nil
}

// SetFilters resets the accumulator for a new filter set. Any load still in
// flight resolves against the old generation and is dropped.
func (p *Paginator) SetFilters(filters entity.Filters) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.generation++
	p.filters = filters
	p.items = nil
	p.cursor = nil
	p.hasMore = true
	p.loading = false
}

// Snapshot returns the accumulated sequence tagged for rendering.
func (p *Paginator) Snapshot() *entity.Page {
	p.mu.Lock()
	defer p.mu.Unlock()

	return &entity.Page{
		Nodes:      Interleave(p.items),
		NextCursor: persistent.EncodeCursor(p.cursor),
		HasMore:    p.hasMore,
	}
}

// Filters returns the active filter set.
func (p *Paginator) Filters() entity.Filters {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.filters
}
