// Package metrics exposes Prometheus counters for claim processing.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ppiankov/verdict/internal/llm"
	"github.com/ppiankov/verdict/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const namespace = "verdict"

// GateStats is the read side of an admission gate
type GateStats interface {
	InFlight() int
	Peak() int
}

// Metrics holds every collector on a private registry
type Metrics struct {
	registry   *prometheus.Registry
	claims     *prometheus.CounterVec
	remaps     *prometheus.CounterVec
	llmCalls   *prometheus.CounterVec
	llmLatency *prometheus.HistogramVec
}

// New creates and registers the collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		claims: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "claims_total",
			Help:      "Claims processed, by status and final category",
		}, []string{"status", "category"}),
		remaps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "category_remaps_total",
			Help:      "Classifier labels outside the taxonomy, by remap rule",
		}, []string{"rule", "to"}),
		llmCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "llm_calls_total",
			Help:      "Language model calls, by tier and outcome",
		}, []string{"tier", "outcome"}),
		llmLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "llm_call_duration_seconds",
			Help:      "Language model call latency",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 30, 60},
		}, []string{"tier"}),
	}
	m.registry.MustRegister(m.claims, m.remaps, m.llmCalls, m.llmLatency)
	return m
}

// Registry returns the registry holding every collector
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveRecord counts a finished claim
func (m *Metrics) ObserveRecord(rec model.VerdictRecord) {
	category := string(rec.Category)
	if category == "" {
		category = "none"
	}
	m.claims.WithLabelValues(string(rec.Status), category).Inc()
}

// ObserveRemap counts a classifier remap
func (m *Metrics) ObserveRemap(label string, to model.Category, rule string) {
	m.remaps.WithLabelValues(rule, string(to)).Inc()
}

// ObserveCall records one gateway call
func (m *Metrics) ObserveCall(tier llm.Tier, elapsed time.Duration, err error) {
	m.llmCalls.WithLabelValues(string(tier), outcome(err)).Inc()
	m.llmLatency.WithLabelValues(string(tier)).Observe(elapsed.Seconds())
}

// TrackGate exports the gate's in-flight and peak counters
func (m *Metrics) TrackGate(g GateStats) {
	m.registry.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "external_calls_in_flight",
			Help:      "External calls currently holding an admission slot",
		}, func() float64 { return float64(g.InFlight()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "external_calls_peak",
			Help:      "Highest number of external calls admitted at once",
		}, func() float64 { return float64(g.Peak()) }),
	)
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done
func (m *Metrics) Serve(ctx context.Context, addr string, logger *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("metrics endpoint listening", zap.String("addr", addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, llm.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, llm.ErrRateLimit):
		return "rate_limit"
	case errors.Is(err, llm.ErrAuth):
		return "auth"
	case errors.Is(err, llm.ErrEmptyResponse):
		return "empty"
	default:
		return "error"
	}
}
