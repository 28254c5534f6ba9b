package llm

import (
	"context"
	"time"
)

// Observer receives the outcome of every gateway call
type Observer func(tier Tier, elapsed time.Duration, err error)

// Observe wraps g so that each call is reported to obs
func Observe(g Gateway, obs Observer) Gateway {
	if obs == nil {
		return g
	}
	return GatewayFunc(func(ctx context.Context, system, user string, tier Tier) (string, error) {
		start := time.Now()
		out, err := g.Complete(ctx, system, user, tier)
		obs(tier, time.Since(start), err)
		return out, err
	})
}
