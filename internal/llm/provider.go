package llm

import (
	"context"
	"fmt"
	"strings"
)

// Tier selects a model class for a call
type Tier string

const (
	TierFast     Tier = "fast"     // short structured answers (classification)
	TierBalanced Tier = "balanced" // verification
	TierStrong   Tier = "strong"   // reserved for long reasoning
)

// Gateway sends one system+user prompt pair to a language model and returns its text
type Gateway interface {
	Complete(ctx context.Context, system, user string, tier Tier) (string, error)
}

// Provider is a Gateway backed by a concrete vendor API
type Provider interface {
	Gateway

	// Name returns the provider name
	Name() string

	// Model returns the model used for the given tier
	Model(tier Tier) string
}

// GatewayFunc adapts a function to the Gateway interface
type GatewayFunc func(ctx context.Context, system, user string, tier Tier) (string, error)

// Complete calls f
func (f GatewayFunc) Complete(ctx context.Context, system, user string, tier Tier) (string, error) {
	return f(ctx, system, user, tier)
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "mistral", "anthropic", "gemini", "ollama"
	Provider string

	// Model names per tier; Model is the balanced tier and the fallback for the others
	FastModel   string
	Model       string
	StrongModel string

	// APIKey for hosted providers
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama, proxies, tests)
	BaseURL string

	// Timeout for one API request
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// Temperature for generation
	Temperature float64

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:    "openai",
		Timeout:     30,
		MaxTokens:   1000,
		Temperature: 0.1,
	}
}

// defaultModels lists the tier models used when the configuration names none
var defaultModels = map[string][3]string{
	"openai":    {"gpt-4o-mini", "gpt-4o-mini", "gpt-4o"},
	"mistral":   {"mistral-small-latest", "mistral-medium-latest", "mistral-large-latest"},
	"anthropic": {"claude-3-5-haiku-20241022", "claude-3-5-sonnet-20241022", "claude-3-5-sonnet-20241022"},
	"gemini":    {"gemini-2.0-flash", "gemini-2.5-flash", "gemini-2.5-pro"},
}

// ModelFor resolves the model name for a tier
func (c Config) ModelFor(tier Tier) string {
	var chosen string
	switch tier {
	case TierFast:
		chosen = c.FastModel
	case TierStrong:
		chosen = c.StrongModel
	}
	if chosen == "" {
		chosen = c.Model
	}
	if chosen != "" {
		return chosen
	}

	defaults, ok := defaultModels[strings.ToLower(c.Provider)]
	if !ok {
		return ""
	}
	switch tier {
	case TierFast:
		return defaults[0]
	case TierStrong:
		return defaults[2]
	default:
		return defaults[1]
	}
}

func (c Config) maxTokens() int {
	if c.MaxTokens > 0 {
		return c.MaxTokens
	}
	return 1000
}

// ParseTier converts a tier name, defaulting to balanced
func ParseTier(name string) (Tier, error) {
	switch Tier(strings.ToLower(strings.TrimSpace(name))) {
	case TierFast:
		return TierFast, nil
	case TierBalanced, "":
		return TierBalanced, nil
	case TierStrong:
		return TierStrong, nil
	default:
		return "", fmt.Errorf("unknown tier %q (supported: fast, balanced, strong)", name)
	}
}
