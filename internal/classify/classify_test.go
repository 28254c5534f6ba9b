package classify

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/ppiankov/verdict/internal/llm"
	"github.com/ppiankov/verdict/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// stubGateway returns a fixed response and counts calls
type stubGateway struct {
	response string
	err      error
	calls    int32
	lastTier llm.Tier
}

func (s *stubGateway) Complete(ctx context.Context, system, user string, tier llm.Tier) (string, error) {
	atomic.AddInt32(&s.calls, 1)
	s.lastTier = tier
	return s.response, s.err
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"[CONSENSUS_HISTO]", "CONSENSUS_HISTO"},
		{"Voici la catégorie : [Statistique] car il y a un chiffre", "STATISTIQUE"},
		{"**POLITESSE**", "POLITESSE"},
		{"Catégorie : JURIDIQUE", "JURIDIQUE"},
		{"RÉPONSE UNIQUE : [NON-VÉRIFIABLE]", "NON_VERIFIABLE"},
		{"RÉPONSE UNIQUE : POLITESSE", "POLITESSE"},
		{"Réponse unique : NON_FAIT", "NON_FAIT"},
		{"**Réponse unique** : OPINION", "OPINION"},
		{"RÉPONSE : CONSEIL", "CONSEIL"},
		{"## LOGIQUE\nC'est un sophisme.", "LOGIQUE"},
		{"[] HUMOUR", "HUMOUR"},
		{"   ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLabel(tt.in), "input %q", tt.in)
	}
}

func TestResolve_KnownCategoriesPassThrough(t *testing.T) {
	for _, c := range model.AllCategories() {
		got, remapped, _ := Resolve(string(c))
		assert.Equal(t, c, got)
		assert.False(t, remapped, "%s should not be remapped", c)
	}
}

func TestRemap(t *testing.T) {
	tests := []struct {
		label string
		want  model.Category
		rule  string
	}{
		{"FAUX", model.StrongestCategory, "verdict-word"},
		{"VRAI", model.StrongestCategory, "verdict-word"},
		{"CONTESTE", model.StrongestCategory, "verdict-word"},
		{"VRAI_MAIS_NUANCE", model.StrongestCategory, "verdict-word"},
		{"RECOMMANDATION", model.CategoryAdvice, "advice"},
		{"RELIGION", model.CategoryDoctrine, "doctrine"},
		{"IDEOLOGIE_POLITIQUE", model.CategoryDoctrine, "doctrine"},
		{"DROIT_DU_TRAVAIL", model.CategoryLegal, "legal"},
		{"LOI_TRAVAIL", model.CategoryLegal, "legal"},
		{"CHIFFRE", model.CategoryStatistic, "statistic"},
		{"ECONOMIE", model.CategoryStatistic, "statistic"},
		{"SOPHISME", model.CategoryFallacy, "fallacy"},
		{"ERREUR_LOGIQUE", model.CategoryFallacy, "fallacy"},
		{"BIAIS_COGNITIF", model.StrongestCategory, "verdict-word"},
		{"SCIENCES_BIOLOGIQUES", model.CategoryScienceConsensus, "science"},
		{"BIOLOGIQUE", model.StrongestCategory, "fallback"},
		{"SANTE_PUBLIQUE", model.CategoryScienceConsensus, "science"},
		{"HISTOIRE", model.CategoryHistoryConsensus, "history"},
		{"GEOGRAPHIE", model.CategoryHistoryConsensus, "history"},
		{"SALUTATIONS", model.CategoryPoliteness, "politeness"},
		{"BLAGUE", model.CategoryHumor, "humor"},
		{"AVIS_PERSONNEL", model.CategoryOpinion, "opinion"},
		{"PROMESSE_ELECTORALE", model.CategoryIntention, "intention"},
		{"ANECDOTE", model.CategoryUnverifiable, "unverifiable"},
		{"XYZZY", model.StrongestCategory, "fallback"},
		{"", model.StrongestCategory, "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, rule := Remap(tt.label)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.rule, rule)

			// Deterministic: same input, same output
			again, _ := Remap(tt.label)
			assert.Equal(t, got, again)
		})
	}
}

func TestRemapTargetsAreValid(t *testing.T) {
	for _, r := range Rules {
		assert.True(t, r.Target.IsValid(), "rule %s targets %s", r.Name, r.Target)
	}
}

func TestClassify_BracketPassthrough(t *testing.T) {
	gw := &stubGateway{response: "[CONSENSUS_HISTO]"}
	c := New(gw)

	res, err := c.Classify(context.Background(), "Paris est la capitale de la France.")
	require.NoError(t, err)
	assert.Equal(t, model.CategoryHistoryConsensus, res.Category)
	assert.False(t, res.Remapped)
	assert.Equal(t, llm.TierFast, gw.lastTier)
}

func TestClassify_AnswerPrefixWithoutBrackets(t *testing.T) {
	gw := &stubGateway{response: "RÉPONSE UNIQUE : POLITESSE"}
	var hookCalls int
	c := New(gw, WithRemapHook(func(string, model.Category, string) { hookCalls++ }))

	res, err := c.Classify(context.Background(), "Bonjour à tous et merci !")
	require.NoError(t, err)
	assert.Equal(t, model.CategoryPoliteness, res.Category)
	assert.False(t, res.Remapped)
	assert.Zero(t, hookCalls)
}

func TestClassify_RemapLoggedAtWarn(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	c := New(&stubGateway{response: "FAUX"}, WithLogger(zap.New(core)))

	_, err := c.Classify(context.Background(), "La Terre est plate depuis toujours.")
	require.NoError(t, err)

	entries := logs.FilterMessage("category remapped").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "verdict-word", entries[0].ContextMap()["rule"])
}

func TestClassify_VerdictWordForcesStrongest(t *testing.T) {
	var hookLabel string
	var hookTarget model.Category
	gw := &stubGateway{response: "FAUX"}
	c := New(gw, WithRemapHook(func(label string, to model.Category, rule string) {
		hookLabel, hookTarget = label, to
	}))

	res, err := c.Classify(context.Background(), "La Terre est plate depuis toujours.")
	require.NoError(t, err)
	assert.Equal(t, model.StrongestCategory, res.Category)
	assert.True(t, res.Remapped)
	assert.Equal(t, "FAUX", hookLabel)
	assert.Equal(t, model.StrongestCategory, hookTarget)
}

func TestClassify_InvalidClaimNeverReachesGateway(t *testing.T) {
	gw := &stubGateway{response: "[POLITESSE]"}
	c := New(gw)

	_, err := c.Classify(context.Background(), "Oui")
	require.ErrorIs(t, err, model.ErrInvalidClaim)
	assert.Equal(t, int32(0), atomic.LoadInt32(&gw.calls))
}

func TestClassify_GatewayFailure(t *testing.T) {
	gw := &stubGateway{err: llm.ErrTimeout}
	c := New(gw)

	_, err := c.Classify(context.Background(), "Le chômage est de 7% en France.")
	require.ErrorIs(t, err, ErrClassification)
	require.ErrorIs(t, err, llm.ErrTimeout)
	assert.Equal(t, int32(1), atomic.LoadInt32(&gw.calls))
}

func TestClassify_CustomLimits(t *testing.T) {
	gw := &stubGateway{response: "[POLITESSE]"}
	c := New(gw, WithLimits(model.ClaimLimits{MinLength: 2, MaxLength: 20}))

	res, err := c.Classify(context.Background(), "Merci")
	require.NoError(t, err)
	assert.Equal(t, model.CategoryPoliteness, res.Category)

	_, err = c.Classify(context.Background(), "Une phrase bien trop longue pour cette limite")
	require.True(t, errors.Is(err, model.ErrInvalidClaim))
}
