package worker

import (
	"context"
	"sync/atomic"

	"github.com/ppiankov/verdict/internal/llm"
	"github.com/ppiankov/verdict/internal/model"
	"github.com/ppiankov/verdict/internal/search"
)

// Gate is a counting admission gate bounding concurrent external calls
type Gate struct {
	slots    chan struct{}
	inFlight atomic.Int64
	peak     atomic.Int64
}

// NewGate creates a gate admitting at most n calls at once
func NewGate(n int) *Gate {
	if n <= 0 {
		n = 1
	}
	return &Gate{slots: make(chan struct{}, n)}
}

// Acquire blocks until a slot is free or ctx is done
func (g *Gate) Acquire(ctx context.Context) error {
	select {
	case g.slots <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}

	n := g.inFlight.Add(1)
	for {
		p := g.peak.Load()
		if n <= p || g.peak.CompareAndSwap(p, n) {
			break
		}
	}
	return nil
}

// Release frees a slot taken by Acquire
func (g *Gate) Release() {
	g.inFlight.Add(-1)
	<-g.slots
}

// Capacity returns the number of slots
func (g *Gate) Capacity() int {
	return cap(g.slots)
}

// InFlight returns the number of calls currently admitted
func (g *Gate) InFlight() int {
	return int(g.inFlight.Load())
}

// Peak returns the highest number of calls admitted at once
func (g *Gate) Peak() int {
	return int(g.peak.Load())
}

// Gateway wraps a gateway so every completion holds a slot
func (g *Gate) Gateway(next llm.Gateway) llm.Gateway {
	return llm.GatewayFunc(func(ctx context.Context, system, user string, tier llm.Tier) (string, error) {
		if err := g.Acquire(ctx); err != nil {
			return "", err
		}
		defer g.Release()
		return next.Complete(ctx, system, user, tier)
	})
}

// Retriever wraps a retriever so every search holds a slot
func (g *Gate) Retriever(next search.Retriever) search.Retriever {
	return search.Func(func(ctx context.Context, query string, max int) ([]model.EvidenceItem, error) {
		if err := g.Acquire(ctx); err != nil {
			return nil, err
		}
		defer g.Release()
		return next.Search(ctx, query, max)
	})
}
