package llm

import (
	"context"
	"time"

	"github.com/ppiankov/verdict/internal/util"
)

// WithRetry repeats calls that fail with a rate limit or a timeout.
// attempts counts the first call; other errors are returned at once.
func WithRetry(g Gateway, attempts int, initial time.Duration) Gateway {
	if attempts <= 1 {
		return g
	}
	if initial <= 0 {
		initial = time.Second
	}
	return GatewayFunc(func(ctx context.Context, system, user string, tier Tier) (string, error) {
		var out string
		err := util.Retry(ctx, attempts, initial, 8*initial, func() error {
			var err error
			out, err = g.Complete(ctx, system, user, tier)
			if err != nil && !Retryable(err) {
				return util.Permanent(err)
			}
			return err
		})
		return out, err
	})
}
