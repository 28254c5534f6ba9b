// Package classify maps a claim to one category of the closed taxonomy.
package classify

import (
	"context"
	"errors"
	"fmt"

	"github.com/ppiankov/verdict/internal/llm"
	"github.com/ppiankov/verdict/internal/logging"
	"github.com/ppiankov/verdict/internal/model"
	"go.uber.org/zap"
)

// ErrClassification wraps any gateway failure during classification
var ErrClassification = errors.New("classification failed")

// Result is the outcome of classifying one claim
type Result struct {
	Category model.Category
	Raw      string // Model response as received
	Label    string // Normalized label parsed from Raw
	Remapped bool
	Rule     string // Remap rule that fired, if any
}

// RemapHook is called every time a label had to be remapped
type RemapHook func(label string, to model.Category, rule string)

// Classifier asks the gateway for a category and normalizes the answer
type Classifier struct {
	gateway llm.Gateway
	limits  model.ClaimLimits
	logger  *zap.Logger
	onRemap RemapHook
}

// Option configures a Classifier
type Option func(*Classifier)

// WithLimits overrides the claim length bounds
func WithLimits(l model.ClaimLimits) Option {
	return func(c *Classifier) { c.limits = l }
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(c *Classifier) { c.logger = logging.OrNop(l) }
}

// WithRemapHook registers a callback for remap events
func WithRemapHook(h RemapHook) Option {
	return func(c *Classifier) { c.onRemap = h }
}

// New creates a classifier
func New(gateway llm.Gateway, opts ...Option) *Classifier {
	c := &Classifier{
		gateway: gateway,
		limits:  model.DefaultClaimLimits(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify validates the claim and returns its category.
// The returned category is always a member of the taxonomy.
func (c *Classifier) Classify(ctx context.Context, claim string) (Result, error) {
	text, err := c.limits.Validate(claim)
	if err != nil {
		return Result{}, err
	}

	raw, err := c.gateway.Complete(ctx, systemPrompt, userPrompt(text), llm.TierFast)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrClassification, err)
	}

	return c.interpret(raw), nil
}

func (c *Classifier) interpret(raw string) Result {
	label := ParseLabel(raw)
	category, remapped, rule := Resolve(label)

	res := Result{Category: category, Raw: raw, Label: label, Remapped: remapped, Rule: rule}
	if remapped {
		c.logger.Warn("category remapped",
			zap.String("raw", model.Truncate(raw, 80)),
			zap.String("from", label),
			zap.String("to", string(category)),
			zap.String("rule", rule),
		)
		if c.onRemap != nil {
			c.onRemap(label, category, rule)
		}
	}
	return res
}
