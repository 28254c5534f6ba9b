package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/verdict/internal/cache"
	"github.com/ppiankov/verdict/internal/classify"
	"github.com/ppiankov/verdict/internal/history"
	"github.com/ppiankov/verdict/internal/llm"
	"github.com/ppiankov/verdict/internal/logging"
	"github.com/ppiankov/verdict/internal/metrics"
	"github.com/ppiankov/verdict/internal/model"
	"github.com/ppiankov/verdict/internal/pipeline"
	"github.com/ppiankov/verdict/internal/search"
	"github.com/ppiankov/verdict/internal/util"
	"github.com/ppiankov/verdict/internal/verify"
	"github.com/ppiankov/verdict/internal/worker"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app holds the wired components shared by every mode
type app struct {
	cfg        model.Config
	logger     *zap.Logger
	provider   llm.Provider
	verifyTier llm.Tier
	gate       *worker.Gate
	metrics    *metrics.Metrics
	pipeline   *pipeline.Pipeline
	batch      *worker.Batch
	history    *history.Log
}

// loadConfig layers the config file, VERDICT_* variables and flags over the defaults
func loadConfig() (model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("%w: parse config: %v", model.ErrConfiguration, err)
	}
	cfg.ResolveAPIKey()
	return cfg, nil
}

// historyOnly opens the history log without building the pipeline
func historyOnly() (model.Config, *history.Log, error) {
	cfg, err := loadConfig()
	if err != nil {
		return cfg, nil, err
	}
	return cfg, history.Open(cfg.History.Path, cfg.History.Capacity), nil
}

// newApp builds the gateway, retriever, pipeline and batch orchestrator.
// Every configuration problem is reported here, before any claim is processed.
func newApp(ctx context.Context, cfg model.Config) (*app, error) {
	logger, err := logging.New(verbose)
	if err != nil {
		return nil, err
	}

	if env := model.APIKeyEnv(cfg.LLM.Provider); env != "" && cfg.LLM.APIKey == "" {
		return nil, fmt.Errorf("%w: %s environment variable not set", model.ErrConfiguration, env)
	}

	pacing, err := parseDuration("concurrency.pacing", cfg.Concurrency.Pacing)
	if err != nil {
		return nil, err
	}
	cacheTTL, err := parseDuration("cache.ttl", cfg.Cache.TTL)
	if err != nil {
		return nil, err
	}

	verifyTier, err := llm.ParseTier(cfg.LLM.VerifyTier)
	if err != nil {
		return nil, fmt.Errorf("%w: llm.verify_tier: %v", model.ErrConfiguration, err)
	}

	provider, err := llm.NewProvider(ctx, llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		return nil, err
	}

	m := metrics.New()
	gate := worker.NewGate(cfg.Concurrency.MaxCalls)
	m.TrackGate(gate)

	// Retries wait outside the gate so that backoff does not hold a call slot
	gateway := llm.WithRetry(gate.Gateway(llm.Observe(provider, m.ObserveCall)), cfg.LLM.MaxRetries, time.Second)

	retriever, err := newRetriever(cfg, cacheTTL, logger)
	if err != nil {
		return nil, err
	}

	classifier := classify.New(gateway,
		classify.WithLimits(cfg.Claims),
		classify.WithLogger(logger),
		classify.WithRemapHook(m.ObserveRemap),
	)
	router := verify.New(gateway,
		verify.WithLogger(logger),
		verify.WithStrictEvidence(cfg.LLM.StrictEvidence),
		verify.WithTier(verifyTier),
	)

	p := pipeline.New(classifier, router,
		pipeline.WithRetriever(gate.Retriever(retriever)),
		pipeline.WithEvidence(cfg.Search.MaxResults, cfg.Search.QuerySuffix),
		pipeline.WithLimits(cfg.Claims),
		pipeline.WithCallTimeout(time.Duration(cfg.Concurrency.ClaimTimeout)*time.Second),
		pipeline.WithModelName(provider.Model(verifyTier)),
		pipeline.WithLogger(logger),
	)

	hist := history.Open(cfg.History.Path, cfg.History.Capacity)

	batch := worker.NewBatch(p.Process,
		worker.WithConcurrency(cfg.Concurrency.MaxClaims),
		worker.WithPacing(pacing),
		worker.WithSink(hist),
		worker.WithRecordHook(m.ObserveRecord),
		worker.WithLogger(logger),
	)

	return &app{
		cfg:        cfg,
		logger:     logger,
		provider:   provider,
		verifyTier: verifyTier,
		gate:       gate,
		metrics:    m,
		pipeline:   p,
		batch:      batch,
		history:    hist,
	}, nil
}

// newRetriever builds backend -> rate limiter -> cache -> authority labels; cache hits skip the limiter
func newRetriever(cfg model.Config, cacheTTL time.Duration, logger *zap.Logger) (search.Retriever, error) {
	proxy := util.ProxyConfig{
		HTTPProxy:  cfg.LLM.HTTPProxy,
		HTTPSProxy: cfg.LLM.HTTPSProxy,
		NoProxy:    cfg.LLM.NoProxy,
	}
	backend, err := search.New(search.ConfigFromModel(cfg.Search, proxy))
	if err != nil {
		return nil, err
	}
	if _, ok := backend.(search.None); ok {
		return backend, nil
	}

	limiter := worker.NewLimiter(cfg.Search.RateLimit, cfg.Search.Burst)
	var retriever search.Retriever = search.NewRateLimited(backend, limiter, cfg.Search.Backend)

	if cfg.Cache.Enabled {
		layered := cache.NewLayeredCache(cacheTTL, cfg.Cache.Dir, cacheTTL)
		retriever = search.NewCached(retriever, layered, cacheTTL, logger)
	}

	authority := search.NewAuthorityClassifier(nonEmpty(cfg.Search.PrimaryDomains), nonEmpty(cfg.Search.SecondaryDomains))
	return search.NewAnnotated(retriever, authority), nil
}

// record persists and counts a record produced outside the batch orchestrator
func (a *app) record(rec model.VerdictRecord) {
	a.metrics.ObserveRecord(rec)
	if err := a.history.Append(rec); err != nil {
		a.logger.Warn("history append failed", zap.String("path", a.history.Path()), zap.Error(err))
	}
}

// serveMetrics exposes /metrics in the background when addr is set
func (a *app) serveMetrics(ctx context.Context, addr string) {
	if addr == "" {
		return
	}
	go func() {
		if err := a.metrics.Serve(ctx, addr, a.logger); err != nil {
			a.logger.Error("metrics endpoint failed", zap.String("addr", addr), zap.Error(err))
		}
	}()
	fmt.Fprintf(os.Stderr, "  Metrics:      http://%s/metrics\n", addr)
}

// close flushes the logger
func (a *app) close() {
	_ = a.logger.Sync()
}

// nonEmpty maps an empty list to nil so that defaults apply
func nonEmpty(list []string) []string {
	if len(list) == 0 {
		return nil
	}
	return list
}

func parseDuration(key, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", model.ErrConfiguration, key, err)
	}
	return d, nil
}
