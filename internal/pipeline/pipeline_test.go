package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ppiankov/verdict/internal/classify"
	"github.com/ppiankov/verdict/internal/llm"
	"github.com/ppiankov/verdict/internal/model"
	"github.com/ppiankov/verdict/internal/search"
	"github.com/ppiankov/verdict/internal/verify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedGateway answers classification (fast tier) and verification
// (balanced tier) calls with fixed responses
type scriptedGateway struct {
	mu       sync.Mutex
	classify func(ctx context.Context) (string, error)
	verdict  string
	users    []string
	tiers    []llm.Tier
}

func (g *scriptedGateway) Complete(ctx context.Context, system, user string, tier llm.Tier) (string, error) {
	g.mu.Lock()
	g.users = append(g.users, user)
	g.tiers = append(g.tiers, tier)
	g.mu.Unlock()

	if tier == llm.TierFast {
		return g.classify(ctx)
	}
	return g.verdict, nil
}

func (g *scriptedGateway) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.tiers)
}

func answer(label string) func(context.Context) (string, error) {
	return func(context.Context) (string, error) { return label, nil }
}

func newPipeline(gw llm.Gateway, opts ...Option) *Pipeline {
	return New(classify.New(gw), verify.New(gw), opts...)
}

var wikipedia = search.Func(func(ctx context.Context, query string, max int) ([]model.EvidenceItem, error) {
	return []model.EvidenceItem{
		{Title: "Paris", URL: "https://fr.wikipedia.org/wiki/Paris"},
	}, nil
})

func TestProcess_FactualClaim(t *testing.T) {
	gw := &scriptedGateway{
		classify: answer("[CONSENSUS_HISTO]"),
		verdict:  "[CONSENSUS_HISTO] VRAI : Paris est la capitale de la France [Source: https://fr.wikipedia.org/wiki/Paris]",
	}
	var gotQuery string
	retriever := search.Func(func(ctx context.Context, query string, max int) ([]model.EvidenceItem, error) {
		gotQuery = query
		assert.Equal(t, 3, max)
		return wikipedia(ctx, query, max)
	})
	p := newPipeline(gw, WithRetriever(retriever), WithEvidence(3, " vérification"), WithModelName("gpt-4o"))

	rec := p.Process(context.Background(), model.Claim{Text: "  Paris est la capitale   de la France. ", Index: 4})

	require.True(t, rec.IsSuccess(), rec.Error)
	assert.Equal(t, 4, rec.Index)
	assert.Equal(t, "Paris est la capitale de la France.", rec.Claim)
	assert.Equal(t, model.CategoryHistoryConsensus, rec.Category)
	assert.Equal(t, model.VerdictTrue, rec.Verdict)
	assert.Len(t, rec.Evidence, 1)
	assert.Equal(t, "gpt-4o", rec.Model)
	assert.False(t, rec.Remapped)
	assert.Equal(t, "Paris est la capitale de la France. vérification", gotQuery)
	assert.Equal(t, []llm.Tier{llm.TierFast, llm.TierBalanced}, gw.tiers)
}

func TestProcess_PolitenessMakesNoSecondCall(t *testing.T) {
	gw := &scriptedGateway{classify: answer("[POLITESSE]")}
	searched := false
	retriever := search.Func(func(ctx context.Context, query string, max int) ([]model.EvidenceItem, error) {
		searched = true
		return nil, nil
	})
	p := newPipeline(gw, WithRetriever(retriever))

	rec := p.Process(context.Background(), model.Claim{Text: "Bonjour, merci."})

	require.True(t, rec.IsSuccess(), rec.Error)
	assert.Equal(t, model.CategoryPoliteness, rec.Category)
	assert.Equal(t, model.VerdictAdmitted, rec.Verdict)
	assert.Equal(t, 1, gw.calls())
	assert.False(t, searched, "non-factual claims must not trigger a search")
	assert.Empty(t, rec.Model)
}

func TestProcess_ClassificationTimeout(t *testing.T) {
	gw := &scriptedGateway{
		classify: func(ctx context.Context) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		},
	}
	p := newPipeline(gw, WithCallTimeout(20*time.Millisecond))

	rec := p.Process(context.Background(), model.Claim{Text: "Le chômage est de 7% en France."})

	assert.Equal(t, model.StatusError, rec.Status)
	assert.Equal(t, model.StageClassify, rec.Stage)
	assert.Empty(t, rec.Category)
	assert.Contains(t, rec.Error, "classification")
	assert.Equal(t, "timeout", rec.ErrorType)
	assert.Equal(t, 1, gw.calls())
}

func TestProcess_VerdictWordForcesStrongest(t *testing.T) {
	gw := &scriptedGateway{
		classify: answer("FAUX"),
		verdict:  "[CONSENSUS_HISTO] FAUX : la bataille a été perdue",
	}
	p := newPipeline(gw, WithRetriever(wikipedia))

	rec := p.Process(context.Background(), model.Claim{Text: "Napoléon a gagné la bataille de Waterloo."})

	require.True(t, rec.IsSuccess(), rec.Error)
	assert.Equal(t, model.StrongestCategory, rec.Category)
	assert.True(t, rec.Remapped)
	assert.Equal(t, "FAUX", rec.RawCategory)
	assert.Equal(t, model.VerdictFalse, rec.Verdict)
	assert.Equal(t, 2, gw.calls())
}

func TestProcess_EvidenceFailureDegrades(t *testing.T) {
	gw := &scriptedGateway{
		classify: answer("[STATISTIQUE]"),
		verdict:  "[STATISTIQUE] NON_VERIFIABLE : aucune source",
	}
	broken := search.Func(func(ctx context.Context, query string, max int) ([]model.EvidenceItem, error) {
		return nil, errors.New("connection refused")
	})
	p := newPipeline(gw, WithRetriever(broken))

	rec := p.Process(context.Background(), model.Claim{Text: "Le chômage est de 7% en France."})

	require.True(t, rec.IsSuccess(), rec.Error)
	assert.Empty(t, rec.Evidence)
	require.Len(t, gw.users, 2)
	assert.Contains(t, gw.users[1], "AUCUNE SOURCE WEB UTILE")
}

func TestProcess_InvalidClaimNeverReachesGateway(t *testing.T) {
	gw := &scriptedGateway{classify: answer("[POLITESSE]")}
	p := newPipeline(gw)

	rec := p.Process(context.Background(), model.Claim{Text: "Oui"})

	assert.Equal(t, model.StatusError, rec.Status)
	assert.Equal(t, model.StageValidate, rec.Stage)
	assert.Equal(t, "invalid_claim", rec.ErrorType)
	assert.Contains(t, rec.Error, "validation")
	assert.Equal(t, 0, gw.calls())
}

func TestProcess_VerificationFailure(t *testing.T) {
	gw := llm.GatewayFunc(func(ctx context.Context, system, user string, tier llm.Tier) (string, error) {
		if tier == llm.TierFast {
			return "[JURIDIQUE]", nil
		}
		return "", llm.ErrRateLimit
	})
	p := newPipeline(gw)

	rec := p.Process(context.Background(), model.Claim{Text: "Cette pratique est illégale en France."})

	assert.Equal(t, model.StatusError, rec.Status)
	assert.Equal(t, model.StageVerify, rec.Stage)
	assert.Equal(t, model.CategoryLegal, rec.Category)
	assert.Equal(t, "rate_limit", rec.ErrorType)
	assert.Contains(t, rec.Error, "verification")
}

type panickyClassifier struct{}

func (panickyClassifier) Classify(ctx context.Context, claim string) (classify.Result, error) {
	panic("boom")
}

func TestProcess_PanicBecomesErrorRecord(t *testing.T) {
	p := New(panickyClassifier{}, verify.New(llm.GatewayFunc(func(ctx context.Context, s, u string, tier llm.Tier) (string, error) {
		return "", nil
	})))

	rec := p.Process(context.Background(), model.Claim{Text: "Le chômage est de 7% en France."})

	assert.Equal(t, model.StatusError, rec.Status)
	assert.Equal(t, model.StageClassify, rec.Stage)
	assert.Contains(t, rec.Error, "panic: boom")
}

func TestAsk(t *testing.T) {
	t.Run("factual claim gets a flash report", func(t *testing.T) {
		gw := &scriptedGateway{
			classify: answer("[CONSENSUS_SCIENCE]"),
			verdict:  "1. Verdict : INFONDÉ\n2. Synthèse : la Terre est sphérique.\n3. Source : NASA",
		}
		rec := newPipeline(gw, WithModelName("mistral-small-latest")).Ask(context.Background(), model.Claim{Text: "La Terre est plate."})

		require.True(t, rec.IsSuccess(), rec.Error)
		assert.Equal(t, model.CategoryScienceConsensus, rec.Category)
		assert.Equal(t, model.VerdictUnfounded, rec.Verdict)
		assert.Equal(t, "mistral-small-latest", rec.Model)
		assert.Equal(t, 2, gw.calls())
	})

	t.Run("non-factual claim stops after classification", func(t *testing.T) {
		gw := &scriptedGateway{classify: answer("[OPINION]")}
		rec := newPipeline(gw).Ask(context.Background(), model.Claim{Text: "Ce film est magnifique."})

		require.True(t, rec.IsSuccess(), rec.Error)
		assert.Equal(t, model.VerdictAdmitted, rec.Verdict)
		assert.Equal(t, 1, gw.calls())
	})
}

func TestErrorType(t *testing.T) {
	assert.Equal(t, "", ErrorType(nil))
	assert.Equal(t, "timeout", ErrorType(context.DeadlineExceeded))
	assert.Equal(t, "canceled", ErrorType(context.Canceled))
	assert.Equal(t, "auth", ErrorType(llm.ErrAuth))
	assert.Equal(t, "internal", ErrorType(errors.New("boom")))
}
