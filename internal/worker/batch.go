package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/ppiankov/verdict/internal/logging"
	"github.com/ppiankov/verdict/internal/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ProcessFunc turns one claim into exactly one record
type ProcessFunc func(ctx context.Context, claim model.Claim) model.VerdictRecord

// Sink receives every finished record
type Sink interface {
	Append(rec model.VerdictRecord) error
}

// Batch runs claims with bounded concurrency
type Batch struct {
	process     ProcessFunc
	concurrency int
	pacing      time.Duration
	sink        Sink
	onRecord    func(model.VerdictRecord)
	logger      *zap.Logger
}

// BatchOption configures a Batch
type BatchOption func(*Batch)

// WithConcurrency sets the maximum number of claims in flight (default 3)
func WithConcurrency(n int) BatchOption {
	return func(b *Batch) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// WithPacing sets the delay observed after each claim before its slot is freed
func WithPacing(d time.Duration) BatchOption {
	return func(b *Batch) { b.pacing = d }
}

// WithSink appends every record to s
func WithSink(s Sink) BatchOption {
	return func(b *Batch) { b.sink = s }
}

// WithRecordHook calls fn for every record, including canceled ones
func WithRecordHook(fn func(model.VerdictRecord)) BatchOption {
	return func(b *Batch) { b.onRecord = fn }
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) BatchOption {
	return func(b *Batch) { b.logger = logging.OrNop(l) }
}

// NewBatch creates a batch runner
func NewBatch(process ProcessFunc, opts ...BatchOption) *Batch {
	b := &Batch{
		process:     process,
		concurrency: 3,
		pacing:      time.Second,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run processes claims and returns one record per claim in input order.
// When ctx is canceled, claims that did not start are reported as canceled.
func (b *Batch) Run(ctx context.Context, claims []model.Claim) []model.VerdictRecord {
	if len(claims) == 0 {
		return []model.VerdictRecord{}
	}

	records := make([]model.VerdictRecord, len(claims))
	started := make([]bool, len(claims))

	var g errgroup.Group
	g.SetLimit(b.concurrency)

	for i, claim := range claims {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			started[i] = true

			rec := b.process(ctx, claim)
			records[i] = rec
			b.finish(rec)
			b.pace(ctx)
			return nil
		})
	}
	_ = g.Wait()

	for i, claim := range claims {
		if !started[i] {
			rec := canceledRecord(claim, ctx.Err())
			records[i] = rec
			b.finish(rec)
		}
	}

	return records
}

func (b *Batch) finish(rec model.VerdictRecord) {
	if b.onRecord != nil {
		b.onRecord(rec)
	}
	if b.sink == nil {
		return
	}
	if err := b.sink.Append(rec); err != nil {
		b.logger.Warn("history append failed", zap.String("id", rec.ID), zap.Error(err))
	}
}

func (b *Batch) pace(ctx context.Context) {
	if b.pacing <= 0 {
		return
	}
	timer := time.NewTimer(b.pacing)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func canceledRecord(claim model.Claim, cause error) model.VerdictRecord {
	if cause == nil {
		cause = context.Canceled
	}
	rec := model.NewRecord(claim)
	rec.Status = model.StatusError
	rec.Stage = model.StageCanceled
	rec.Error = fmt.Sprintf("canceled before processing: %v", cause)
	rec.ErrorType = "canceled"
	return rec
}
