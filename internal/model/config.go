package model

import (
	"errors"
	"os"
	"strings"
)

// ErrConfiguration marks a fatal setup problem (missing credential, unknown provider).
// It is the only error that terminates the process.
var ErrConfiguration = errors.New("configuration error")

// Config is the complete verdict configuration
type Config struct {
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
	Search      SearchConfig      `yaml:"search" mapstructure:"search"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Claims      ClaimLimits       `yaml:"claims" mapstructure:"claims"`
	History     HistoryConfig     `yaml:"history" mapstructure:"history"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// LLMConfig selects the language-model provider and per-tier models
type LLMConfig struct {
	Provider    string  `yaml:"provider" mapstructure:"provider"` // openai, mistral, anthropic, gemini, ollama
	APIKey      string  `yaml:"api_key,omitempty" mapstructure:"api_key"`
	BaseURL     string  `yaml:"base_url,omitempty" mapstructure:"base_url"`
	FastModel   string  `yaml:"fast_model,omitempty" mapstructure:"fast_model"`
	Model       string  `yaml:"model,omitempty" mapstructure:"model"` // balanced tier
	StrongModel string  `yaml:"strong_model,omitempty" mapstructure:"strong_model"`
	Timeout     int     `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens   int     `yaml:"max_tokens" mapstructure:"max_tokens"`
	Temperature float64 `yaml:"temperature" mapstructure:"temperature"`
	MaxRetries  int     `yaml:"max_retries" mapstructure:"max_retries"` // attempts per call on rate limit or timeout
	VerifyTier  string  `yaml:"verify_tier" mapstructure:"verify_tier"` // fast, balanced or strong

	// StrictEvidence logs sources cited by the model that were not retrieved
	StrictEvidence bool `yaml:"strict_evidence" mapstructure:"strict_evidence"`

	HTTPProxy  string `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy string `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
	NoProxy    string `yaml:"no_proxy,omitempty" mapstructure:"no_proxy"`
}

// SearchConfig configures the evidence retriever
type SearchConfig struct {
	Backend     string  `yaml:"backend" mapstructure:"backend"` // duckduckgo, serper, none
	APIKey      string  `yaml:"api_key,omitempty" mapstructure:"api_key"`
	BaseURL     string  `yaml:"base_url,omitempty" mapstructure:"base_url"`
	MaxResults  int     `yaml:"max_results" mapstructure:"max_results"`
	QuerySuffix string  `yaml:"query_suffix" mapstructure:"query_suffix"`
	Region      string  `yaml:"region" mapstructure:"region"`
	Language    string  `yaml:"language" mapstructure:"language"`
	Timeout     int     `yaml:"timeout" mapstructure:"timeout"` // seconds
	RateLimit   float64 `yaml:"rate_limit" mapstructure:"rate_limit"` // requests per second
	Burst       int     `yaml:"burst" mapstructure:"burst"`
	UserAgent   string  `yaml:"user_agent" mapstructure:"user_agent"`
	MaxRetries  int     `yaml:"max_retries" mapstructure:"max_retries"`

	// Source authority labels; empty lists use the built-in domains
	PrimaryDomains   []string `yaml:"primary_domains,omitempty" mapstructure:"primary_domains"`
	SecondaryDomains []string `yaml:"secondary_domains,omitempty" mapstructure:"secondary_domains"`
}

// CacheConfig configures the evidence cache
type CacheConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Dir     string `yaml:"dir" mapstructure:"dir"`
	TTL     string `yaml:"ttl" mapstructure:"ttl"` // Go duration, e.g. "24h"
}

// ConcurrencyConfig bounds the batch orchestrator
type ConcurrencyConfig struct {
	MaxClaims    int    `yaml:"max_claims" mapstructure:"max_claims"`       // claims in flight
	MaxCalls     int    `yaml:"max_calls" mapstructure:"max_calls"`         // external calls in flight
	Pacing       string `yaml:"pacing" mapstructure:"pacing"`               // Go duration between claims
	ClaimTimeout int    `yaml:"claim_timeout" mapstructure:"claim_timeout"` // seconds per external call
}

// HistoryConfig configures the history ring buffer
type HistoryConfig struct {
	Path     string `yaml:"path" mapstructure:"path"`
	Capacity int    `yaml:"capacity" mapstructure:"capacity"`
}

// OutputConfig configures report files
type OutputConfig struct {
	ResultsDir string `yaml:"results_dir" mapstructure:"results_dir"`
	Color      bool   `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		LLM: LLMConfig{
			Provider:       "openai",
			Timeout:        30,
			MaxTokens:      1000,
			Temperature:    0.1,
			MaxRetries:     2,
			VerifyTier:     "balanced",
			StrictEvidence: true,
		},
		Search: SearchConfig{
			Backend:     "duckduckgo",
			MaxResults:  3,
			QuerySuffix: " vérification",
			Region:      "fr",
			Language:    "fr",
			Timeout:     10,
			RateLimit:   1.0,
			Burst:       1,
			UserAgent:   "verdict/0.1 (+https://github.com/ppiankov/verdict)",
			MaxRetries:  3,
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     defaultCacheDir(),
			TTL:     "24h",
		},
		Concurrency: ConcurrencyConfig{
			MaxClaims:    3,
			MaxCalls:     3,
			Pacing:       "1s",
			ClaimTimeout: 30,
		},
		Claims: DefaultClaimLimits(),
		History: HistoryConfig{
			Path:     "results/history.json",
			Capacity: 100,
		},
		Output: OutputConfig{
			ResultsDir: "results",
			Color:      true,
		},
	}
}

// APIKeyEnv returns the environment variable holding the provider credential.
// Providers without a credential return "".
func APIKeyEnv(provider string) string {
	switch strings.ToLower(provider) {
	case "openai":
		return "OPENAI_API_KEY"
	case "mistral":
		return "MISTRAL_API_KEY"
	case "anthropic", "claude":
		return "ANTHROPIC_API_KEY"
	case "gemini", "google":
		return "GEMINI_API_KEY"
	default:
		return ""
	}
}

// ResolveAPIKey fills missing credentials from the environment
func (c *Config) ResolveAPIKey() {
	if c.LLM.APIKey == "" {
		if env := APIKeyEnv(c.LLM.Provider); env != "" {
			c.LLM.APIKey = os.Getenv(env)
		}
	}
	if c.LLM.BaseURL == "" && strings.EqualFold(c.LLM.Provider, "ollama") {
		c.LLM.BaseURL = os.Getenv("OLLAMA_BASE_URL")
	}
	if c.Search.APIKey == "" && strings.EqualFold(c.Search.Backend, "serper") {
		c.Search.APIKey = os.Getenv("SERPER_API_KEY")
	}
}

func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".verdict/cache"
	}
	return home + "/.verdict/cache"
}
