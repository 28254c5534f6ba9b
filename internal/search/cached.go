package search

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/ppiankov/verdict/internal/cache"
	"github.com/ppiankov/verdict/internal/logging"
	"github.com/ppiankov/verdict/internal/model"
	"go.uber.org/zap"
)

// Cached serves repeated queries from a cache.
// Only non-empty successful results are stored.
type Cached struct {
	next   Retriever
	cache  cache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewCached wraps next with the given cache
func NewCached(next Retriever, c cache.Cache, ttl time.Duration, logger *zap.Logger) *Cached {
	return &Cached{next: next, cache: c, ttl: ttl, logger: logging.OrNop(logger)}
}

// Search returns a cached result or delegates to the wrapped retriever
func (c *Cached) Search(ctx context.Context, query string, max int) ([]model.EvidenceItem, error) {
	key := cache.Key("search", query, strconv.Itoa(max))

	if data, ok := c.cache.Get(key); ok {
		var items []model.EvidenceItem
		if err := json.Unmarshal(data, &items); err == nil {
			c.logger.Debug("search cache hit", zap.String("query", query))
			return limit(items, max), nil
		}
		_ = c.cache.Delete(key)
	}

	items, err := c.next.Search(ctx, query, max)
	if err != nil {
		return nil, err
	}

	if len(items) > 0 {
		data, err := json.Marshal(items)
		if err == nil {
			err = c.cache.Set(key, data, c.ttl)
		}
		if err != nil {
			c.logger.Warn("search cache write failed", zap.String("query", query), zap.Error(err))
		}
	}

	return items, nil
}
