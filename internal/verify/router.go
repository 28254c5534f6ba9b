// Package verify routes a classified claim to its verification strategy and
// turns the model response into a verdict.
package verify

import (
	"context"
	"errors"
	"fmt"

	"github.com/ppiankov/verdict/internal/llm"
	"github.com/ppiankov/verdict/internal/logging"
	"github.com/ppiankov/verdict/internal/model"
	"go.uber.org/zap"
)

// ErrVerification wraps any gateway failure during verification
var ErrVerification = errors.New("verification failed")

// Outcome is the verdict produced for one claim
type Outcome struct {
	Category     model.Category // Routed category, or ANALYSE_BRUTE for unstructured output
	Verdict      string
	Text         string
	Evidence     []model.EvidenceItem
	Branch       Branch
	Unstructured bool
}

// Apply copies the outcome into a record and marks it successful
func (o Outcome) Apply(r *model.VerdictRecord) {
	r.Category = o.Category
	r.Label = o.Category.Description()
	r.Verdict = o.Verdict
	r.VerdictText = o.Text
	r.Evidence = o.Evidence
	r.Status = model.StatusSuccess
	r.Stage = ""
	r.Error = ""
	r.ErrorType = ""
}

// Router dispatches categories to their strategies
type Router struct {
	gateway llm.Gateway
	tier    llm.Tier
	strict  bool
	logger  *zap.Logger
}

// Option configures a Router
type Option func(*Router)

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(r *Router) { r.logger = logging.OrNop(l) }
}

// WithTier overrides the model tier used for verification (default balanced)
func WithTier(t llm.Tier) Option {
	return func(r *Router) { r.tier = t }
}

// WithStrictEvidence logs sources cited by the model that were not retrieved
func WithStrictEvidence(strict bool) Option {
	return func(r *Router) { r.strict = strict }
}

// New creates a router
func New(gateway llm.Gateway, opts ...Option) *Router {
	r := &Router{
		gateway: gateway,
		tier:    llm.TierBalanced,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Route produces the verdict of a claim for its category.
// Non-factual categories never reach the gateway.
func (r *Router) Route(ctx context.Context, claim string, evidence []model.EvidenceItem, category model.Category) (Outcome, error) {
	strategy, routed := StrategyFor(category)

	switch strategy.Branch {
	case BranchAcknowledge:
		return Outcome{
			Category: routed,
			Verdict:  strategy.FixedVerdict,
			Text:     strategy.Ack,
			Branch:   BranchAcknowledge,
		}, nil
	case BranchFallback:
		r.logger.Warn("unknown category, forcing strongest verification",
			zap.String("category", string(category)),
			zap.String("forced", string(routed)),
		)
	}

	system := strategy.Instruction + outputFormat(routed, strategy.VerdictHint)
	response, err := r.gateway.Complete(ctx, system, buildUserPrompt(claim, evidence), r.tier)
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: %w", ErrVerification, err)
	}

	if r.strict {
		r.checkCitations(response, evidence)
	}

	out := Outcome{
		Category: routed,
		Evidence: evidence,
		Branch:   strategy.Branch,
	}

	parsed, err := ParseResponse(response)
	if errors.Is(err, ErrUnstructured) {
		r.logger.Debug("unstructured verification output",
			zap.String("category", string(routed)),
			zap.String("response", model.Truncate(response, 120)),
		)
		out.Category = model.CategoryUnstructured
		out.Text = parsed.Text
		out.Unstructured = true
		return out, nil
	}

	out.Text = parsed.Text
	out.Verdict = parsed.Verdict
	if strategy.FixedVerdict != "" {
		out.Verdict = strategy.FixedVerdict
	}
	return out, nil
}

// Flash runs the concise ask-mode report on a claim already classified as factual
func (r *Router) Flash(ctx context.Context, claim string, category model.Category) (Outcome, error) {
	response, err := r.gateway.Complete(ctx, flashInstruction, "Affirmation : "+claim, r.tier)
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: %w", ErrVerification, err)
	}
	return Outcome{
		Category: category,
		Verdict:  FindVerdict(response),
		Text:     response,
		Branch:   BranchVerify,
	}, nil
}

func (r *Router) checkCitations(response string, evidence []model.EvidenceItem) {
	for _, u := range uncitedSources(response, evidence) {
		r.logger.Warn("model cited a source that was not retrieved", zap.String("url", u))
	}
}
