package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/verdict/internal/llm"
	"github.com/ppiankov/verdict/internal/model"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedGate struct{ inFlight, peak int }

func (g fixedGate) InFlight() int { return g.inFlight }
func (g fixedGate) Peak() int     { return g.peak }

func TestObserveRecord(t *testing.T) {
	m := New()

	ok := model.VerdictRecord{Status: model.StatusSuccess, Category: model.CategoryStatistic}
	failed := model.VerdictRecord{Status: model.StatusError}
	m.ObserveRecord(ok)
	m.ObserveRecord(ok)
	m.ObserveRecord(failed)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.claims.WithLabelValues("success", "STATISTIQUE")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.claims.WithLabelValues("error", "none")))
}

func TestObserveRemap(t *testing.T) {
	m := New()
	m.ObserveRemap("FAUX", model.StrongestCategory, "verdict-word")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.remaps.WithLabelValues("verdict-word", "CONSENSUS_HISTO")))
}

func TestObserveCall(t *testing.T) {
	m := New()
	m.ObserveCall(llm.TierFast, 200*time.Millisecond, nil)
	m.ObserveCall(llm.TierBalanced, time.Second, llm.ErrRateLimit)
	m.ObserveCall(llm.TierBalanced, time.Second, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.llmCalls.WithLabelValues("fast", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.llmCalls.WithLabelValues("balanced", "rate_limit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.llmCalls.WithLabelValues("balanced", "error")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.llmLatency))
}

func TestHandlerExposesGate(t *testing.T) {
	m := New()
	m.TrackGate(fixedGate{inFlight: 2, peak: 3})
	m.ObserveRecord(model.VerdictRecord{Status: model.StatusSuccess, Category: model.CategoryPoliteness})

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	text := string(body)
	assert.Contains(t, text, "verdict_external_calls_in_flight 2")
	assert.Contains(t, text, "verdict_external_calls_peak 3")
	assert.True(t, strings.Contains(text, `verdict_claims_total{category="POLITESSE",status="success"} 1`))
}
