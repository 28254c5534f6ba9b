package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/verdict/internal/classify"
	"github.com/ppiankov/verdict/internal/history"
	"github.com/ppiankov/verdict/internal/llm"
	"github.com/ppiankov/verdict/internal/metrics"
	"github.com/ppiankov/verdict/internal/model"
	"github.com/ppiankov/verdict/internal/pipeline"
	"github.com/ppiankov/verdict/internal/verify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewApp_MissingCredentialIsConfigurationError(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	cfg := model.DefaultConfig()
	cfg.LLM.Provider = "openai"
	cfg.ResolveAPIKey()

	_, err := newApp(context.Background(), cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrConfiguration))
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestNewApp_BadPacingIsConfigurationError(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.LLM.Provider = "ollama"
	cfg.Concurrency.Pacing = "soon"

	_, err := newApp(context.Background(), cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrConfiguration))
}

func TestNewApp_UnknownVerifyTierIsConfigurationError(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.LLM.Provider = "ollama"
	cfg.LLM.VerifyTier = "huge"

	_, err := newApp(context.Background(), cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrConfiguration))
	assert.Contains(t, err.Error(), "verify_tier")
}

func TestParseDuration(t *testing.T) {
	d, err := parseDuration("concurrency.pacing", "1500ms")
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, d)

	d, err = parseDuration("concurrency.pacing", "")
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestMaskSecrets(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.LLM.APIKey = "sk-1234567890abcdef"
	cfg.Search.APIKey = "short"

	masked := maskSecrets(cfg)
	assert.Equal(t, "sk-1****cdef", masked.LLM.APIKey)
	assert.Equal(t, "****", masked.Search.APIKey)
	assert.Equal(t, "sk-1234567890abcdef", cfg.LLM.APIKey, "original config must be untouched")
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, writeDefaultConfig(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Verdict Configuration File")
	assert.Contains(t, string(data), "max_claims: 3")

	err = writeDefaultConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestWriteResults(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	records := []model.VerdictRecord{{
		Claim:    "Paris est la capitale de la France.",
		Category: model.CategoryHistoryConsensus,
		Verdict:  model.VerdictTrue,
		Status:   model.StatusSuccess,
	}}

	require.NoError(t, writeResults(dir, "batch", records, now, true, true))

	for _, name := range []string{
		"resultats_batch_20240301_093000.json",
		"resultats_batch_20240301_093000.md",
		"resultats_batch_20240301_093000.html",
	} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestREPL(t *testing.T) {
	var verifyCalls int
	gateway := llm.GatewayFunc(func(ctx context.Context, system, user string, tier llm.Tier) (string, error) {
		if tier == llm.TierFast {
			return "[POLITESSE]", nil
		}
		verifyCalls++
		return "", errors.New("unexpected verification call")
	})

	hist := history.Open(filepath.Join(t.TempDir(), "history.json"), 10)
	a := &app{
		cfg:      model.DefaultConfig(),
		logger:   zap.NewNop(),
		metrics:  metrics.New(),
		pipeline: pipeline.New(classify.New(gateway), verify.New(gateway)),
		history:  hist,
	}
	a.cfg.Output.Color = false

	in := strings.NewReader("Bonjour à tous !\n\nhistory\nquit\nLa Terre est plate.\n")
	var out bytes.Buffer
	require.NoError(t, a.repl(context.Background(), in, &out))

	assert.Zero(t, verifyCalls)
	assert.Contains(t, out.String(), "Politesse (POLITESSE)")
	assert.Contains(t, out.String(), "Au revoir.")
	assert.NotContains(t, out.String(), "La Terre est plate.")

	records, err := hist.Load()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, model.VerdictAdmitted, records[0].Verdict)
}

func TestREPL_ClearAndEOF(t *testing.T) {
	hist := history.Open(filepath.Join(t.TempDir(), "history.json"), 10)
	require.NoError(t, hist.Append(model.VerdictRecord{Claim: "old", Status: model.StatusSuccess}))

	a := &app{
		cfg:     model.DefaultConfig(),
		logger:  zap.NewNop(),
		metrics: metrics.New(),
		history: hist,
	}

	var out bytes.Buffer
	require.NoError(t, a.repl(context.Background(), strings.NewReader("clear\nhistory\n"), &out))

	assert.Contains(t, out.String(), "Historique effacé.")
	assert.Contains(t, out.String(), "Historique vide.")
}
