// Package pipeline runs one claim through validation, classification,
// evidence retrieval and verdict routing.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ppiankov/verdict/internal/classify"
	"github.com/ppiankov/verdict/internal/llm"
	"github.com/ppiankov/verdict/internal/logging"
	"github.com/ppiankov/verdict/internal/model"
	"github.com/ppiankov/verdict/internal/search"
	"github.com/ppiankov/verdict/internal/verify"
	"go.uber.org/zap"
)

// Classifier maps a claim to a category
type Classifier interface {
	Classify(ctx context.Context, claim string) (classify.Result, error)
}

// Router produces a verdict for a classified claim
type Router interface {
	Route(ctx context.Context, claim string, evidence []model.EvidenceItem, category model.Category) (verify.Outcome, error)
	Flash(ctx context.Context, claim string, category model.Category) (verify.Outcome, error)
}

// Pipeline processes single claims. It is safe for concurrent use when its
// collaborators are.
type Pipeline struct {
	classifier  Classifier
	router      Router
	retriever   search.Retriever
	limits      model.ClaimLimits
	maxResults  int
	querySuffix string
	callTimeout time.Duration
	modelName   string
	logger      *zap.Logger
}

// Option configures a Pipeline
type Option func(*Pipeline)

// WithRetriever sets the evidence retriever (default: none)
func WithRetriever(r search.Retriever) Option {
	return func(p *Pipeline) { p.retriever = r }
}

// WithEvidence sets the result cap and the query suffix
func WithEvidence(maxResults int, querySuffix string) Option {
	return func(p *Pipeline) {
		p.maxResults = maxResults
		p.querySuffix = querySuffix
	}
}

// WithLimits overrides the claim length bounds
func WithLimits(l model.ClaimLimits) Option {
	return func(p *Pipeline) { p.limits = l }
}

// WithCallTimeout bounds every external call made for a claim
func WithCallTimeout(d time.Duration) Option {
	return func(p *Pipeline) { p.callTimeout = d }
}

// WithModelName records the verification model in every record
func WithModelName(name string) Option {
	return func(p *Pipeline) { p.modelName = name }
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) { p.logger = logging.OrNop(l) }
}

// New creates a claim pipeline
func New(classifier Classifier, router Router, opts ...Option) *Pipeline {
	p := &Pipeline{
		classifier: classifier,
		router:     router,
		retriever:  search.None{},
		limits:     model.DefaultClaimLimits(),
		maxResults: 3,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process runs the full classify, evidence, route flow for one claim.
// It never fails: every problem becomes an error record naming its stage.
func (p *Pipeline) Process(ctx context.Context, claim model.Claim) (rec model.VerdictRecord) {
	rec = model.NewRecord(claim)
	stage := model.StageValidate

	defer func() {
		if r := recover(); r != nil {
			p.fail(&rec, stage, fmt.Errorf("panic: %v", r))
		}
	}()

	text, err := p.limits.Validate(claim.Text)
	if err != nil {
		p.fail(&rec, stage, err)
		return rec
	}
	rec.Claim = text

	stage = model.StageClassify
	res, err := p.classify(ctx, text)
	if err != nil {
		p.fail(&rec, stage, err)
		return rec
	}
	rec.Category = res.Category
	rec.RawCategory = res.Label
	rec.Remapped = res.Remapped

	stage = model.StageVerify
	evidence := []model.EvidenceItem{}
	if verify.NeedsEvidence(res.Category) {
		evidence = p.gatherEvidence(ctx, text)
	}

	callCtx, cancel := p.callContext(ctx)
	out, err := p.router.Route(callCtx, text, evidence, res.Category)
	cancel()
	if err != nil {
		p.fail(&rec, stage, err)
		return rec
	}

	out.Apply(&rec)
	if out.Branch != verify.BranchAcknowledge {
		rec.Model = p.modelName
	}
	return rec
}

// Ask is the compact mode: classify, then one concise report for factual claims.
// Non-factual claims stop after classification.
func (p *Pipeline) Ask(ctx context.Context, claim model.Claim) (rec model.VerdictRecord) {
	rec = model.NewRecord(claim)
	stage := model.StageValidate

	defer func() {
		if r := recover(); r != nil {
			p.fail(&rec, stage, fmt.Errorf("panic: %v", r))
		}
	}()

	text, err := p.limits.Validate(claim.Text)
	if err != nil {
		p.fail(&rec, stage, err)
		return rec
	}
	rec.Claim = text

	stage = model.StageClassify
	res, err := p.classify(ctx, text)
	if err != nil {
		p.fail(&rec, stage, err)
		return rec
	}
	rec.Category = res.Category
	rec.RawCategory = res.Label
	rec.Remapped = res.Remapped

	stage = model.StageVerify
	callCtx, cancel := p.callContext(ctx)
	defer cancel()

	var out verify.Outcome
	if res.Category.IsFactual() {
		out, err = p.router.Flash(callCtx, text, res.Category)
	} else {
		out, err = p.router.Route(callCtx, text, nil, res.Category)
	}
	if err != nil {
		p.fail(&rec, stage, err)
		return rec
	}

	out.Apply(&rec)
	if res.Category.IsFactual() {
		rec.Model = p.modelName
	}
	return rec
}

func (p *Pipeline) classify(ctx context.Context, text string) (classify.Result, error) {
	callCtx, cancel := p.callContext(ctx)
	defer cancel()
	return p.classifier.Classify(callCtx, text)
}

// gatherEvidence never fails: a retriever error degrades to an empty list
func (p *Pipeline) gatherEvidence(ctx context.Context, text string) []model.EvidenceItem {
	callCtx, cancel := p.callContext(ctx)
	defer cancel()

	items, err := p.retriever.Search(callCtx, search.Query(text, p.querySuffix), p.maxResults)
	if err != nil {
		p.logger.Warn("evidence lookup failed, verifying without sources",
			zap.String("claim", model.Truncate(text, 60)),
			zap.Error(err),
		)
		return []model.EvidenceItem{}
	}
	if items == nil {
		return []model.EvidenceItem{}
	}
	return items
}

func (p *Pipeline) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.callTimeout)
}

func (p *Pipeline) fail(rec *model.VerdictRecord, stage model.Stage, err error) {
	rec.Status = model.StatusError
	rec.Stage = stage
	rec.Error = fmt.Sprintf("%s stage: %v", stageName(stage), err)
	rec.ErrorType = ErrorType(err)

	p.logger.Warn("claim failed",
		zap.Int("index", rec.Index),
		zap.String("stage", string(stage)),
		zap.String("claim", model.Truncate(rec.Claim, 60)),
		zap.Error(err),
	)
}

func stageName(stage model.Stage) string {
	switch stage {
	case model.StageValidate:
		return "validation"
	case model.StageClassify:
		return "classification"
	case model.StageVerify:
		return "verification"
	case model.StageCanceled:
		return "canceled"
	default:
		return string(stage)
	}
}

// ErrorType names the sentinel behind a failure for reports
func ErrorType(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, model.ErrInvalidClaim):
		return "invalid_claim"
	case errors.Is(err, llm.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, llm.ErrRateLimit):
		return "rate_limit"
	case errors.Is(err, llm.ErrAuth):
		return "auth"
	case errors.Is(err, llm.ErrEmptyResponse):
		return "empty_response"
	case errors.Is(err, classify.ErrClassification):
		return "classification"
	case errors.Is(err, verify.ErrVerification):
		return "verification"
	default:
		return "internal"
	}
}
