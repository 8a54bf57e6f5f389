package workflow

import (
	"context"
	"sync"

	"github.com/gestorverde/gestorverde/internal/models"
)

// FetchFunc loads one page of size items.
type FetchFunc[T any] func(ctx context.Context, page, size int) (*models.Page[T], error)

// Pager serializes a paginated view over independent, unordered round
// trips. Every Load is tagged with a sequence number; a response belonging
// to an older request than the newest applied one is dropped instead of
// overwriting fresher data.
type Pager[T any] struct {
	mu      sync.Mutex
	fetch   FetchFunc[T]
	size    int
	seq     uint64
	applied uint64
	current *models.Page[T]
}

func NewPager[T any](fetch FetchFunc[T], size int) *Pager[T] {
	return &Pager[T]{fetch: fetch, size: size}
}

// Load fetches the requested page. The returned bool reports whether the
// response was applied; false means a newer response landed first and this
// one was discarded.
func (p *Pager[T]) Load(ctx context.Context, page int) (*models.Page[T], bool, error) {
	p.mu.Lock()
	p.seq++
	mySeq := p.seq
	p.mu.Unlock()

	result, err := p.fetch(ctx, page, p.size)
	if err != nil {
		return nil, false, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if mySeq < p.applied {
		// Stale: a later request already finished.
		return nil, false, nil
	}
	p.applied = mySeq
	p.current = result
	return result, true, nil
}

// Current returns the last applied page, or nil before the first Load.
func (p *Pager[T]) Current() *models.Page[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Reload refetches the last applied page (or the first page when nothing
// was loaded yet), used after a mutation so the list reflects the server's
// truth.
func (p *Pager[T]) Reload(ctx context.Context) (*models.Page[T], bool, error) {
	page := 0
	p.mu.Lock()
	if p.current != nil {
		page = p.current.PageNumber
	}
	p.mu.Unlock()
	return p.Load(ctx, page)
}
