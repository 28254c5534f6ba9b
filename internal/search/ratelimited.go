package search

import (
	"context"

	"github.com/ppiankov/verdict/internal/model"
)

// Waiter blocks until a request for key may proceed
type Waiter interface {
	Wait(ctx context.Context, key string) error
}

// RateLimited paces requests to a backend
type RateLimited struct {
	next   Retriever
	waiter Waiter
	key    string
}

// NewRateLimited wraps next; all requests share the bucket named key
func NewRateLimited(next Retriever, waiter Waiter, key string) *RateLimited {
	return &RateLimited{next: next, waiter: waiter, key: key}
}

// Search waits for clearance then delegates
func (r *RateLimited) Search(ctx context.Context, query string, max int) ([]model.EvidenceItem, error) {
	if err := r.waiter.Wait(ctx, r.key); err != nil {
		return nil, err
	}
	return r.next.Search(ctx, query, max)
}
