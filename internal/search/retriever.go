// Package search retrieves web evidence for claims.
package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ppiankov/verdict/internal/model"
	"github.com/ppiankov/verdict/internal/util"
)

// Retriever returns up to max evidence items for a query.
// No results is an empty, non-nil slice and a nil error.
type Retriever interface {
	Search(ctx context.Context, query string, max int) ([]model.EvidenceItem, error)
}

// Func adapts a function to the Retriever interface
type Func func(ctx context.Context, query string, max int) ([]model.EvidenceItem, error)

// Search calls f
func (f Func) Search(ctx context.Context, query string, max int) ([]model.EvidenceItem, error) {
	return f(ctx, query, max)
}

// Config configures a search backend
type Config struct {
	Backend    string
	APIKey     string
	BaseURL    string
	Region     string
	Language   string
	Timeout    time.Duration
	UserAgent  string
	MaxRetries int
	Proxy      util.ProxyConfig
}

// ConfigFromModel converts model.SearchConfig to search.Config
func ConfigFromModel(mc model.SearchConfig, proxy util.ProxyConfig) Config {
	return Config{
		Backend:    mc.Backend,
		APIKey:     mc.APIKey,
		BaseURL:    mc.BaseURL,
		Region:     mc.Region,
		Language:   mc.Language,
		Timeout:    time.Duration(mc.Timeout) * time.Second,
		UserAgent:  mc.UserAgent,
		MaxRetries: mc.MaxRetries,
		Proxy:      proxy,
	}
}

// New creates the backend named by cfg.Backend
func New(cfg Config) (Retriever, error) {
	switch strings.ToLower(cfg.Backend) {
	case "duckduckgo", "ddg", "":
		return NewDuckDuckGo(cfg), nil
	case "serper", "google":
		return NewSerper(cfg)
	case "none", "off":
		return None{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown search backend: %s (supported: duckduckgo, serper, none)", model.ErrConfiguration, cfg.Backend)
	}
}

// Query builds the search query for a claim
func Query(claim, suffix string) string {
	return strings.TrimSpace(model.CleanText(claim) + suffix)
}

// None never returns evidence
type None struct{}

// Search returns an empty result
func (None) Search(ctx context.Context, query string, max int) ([]model.EvidenceItem, error) {
	return []model.EvidenceItem{}, nil
}

// limit trims items to max and guarantees a non-nil slice
func limit(items []model.EvidenceItem, max int) []model.EvidenceItem {
	items = model.DedupeEvidence(items)
	if max > 0 && len(items) > max {
		items = items[:max]
	}
	if items == nil {
		items = []model.EvidenceItem{}
	}
	return items
}

// retryableStatus reports whether an HTTP status is worth another attempt
func retryableStatus(status int) bool {
	return status == 429 || status >= 500
}
