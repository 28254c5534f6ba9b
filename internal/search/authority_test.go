package search

import (
	"context"
	"errors"
	"testing"

	"github.com/ppiankov/verdict/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorityClassifier_Classify(t *testing.T) {
	a := NewAuthorityClassifier(nil, nil)

	tests := []struct {
		url  string
		want string
	}{
		{"https://www.insee.fr/fr/statistiques/1892117", AuthorityPrimary},
		{"https://www.legifrance.gouv.fr/loda/id/JORFTEXT000000886460", AuthorityPrimary},
		{"https://www.economie.gouv.fr/budget", AuthorityPrimary},
		{"https://eur-lex.europa.eu/eli/reg/2016/679/oj", AuthorityPrimary},
		{"https://www.nasa.gov/moon", AuthorityPrimary},
		{"https://www.ox.ac.uk/research", AuthorityPrimary},
		{"https://fr.wikipedia.org/wiki/Paris", AuthoritySecondary},
		{"https://www.lemonde.fr/les-decodeurs/", AuthoritySecondary},
		{"https://blog.example.com/paris", AuthorityTertiary},
		{"https://notwikipedia.org/wiki/Paris", AuthorityTertiary},
		{"://broken", AuthorityTertiary},
		{"", AuthorityTertiary},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Classify(tt.url))
		})
	}
}

func TestAuthorityClassifier_CustomDomains(t *testing.T) {
	a := NewAuthorityClassifier([]string{"www.example.org"}, []string{})

	assert.Equal(t, AuthorityPrimary, a.Classify("https://data.example.org/x"))
	assert.Equal(t, AuthorityTertiary, a.Classify("https://fr.wikipedia.org/wiki/Paris"))
	assert.Equal(t, AuthorityPrimary, a.Classify("http://localhost.edu:8080/"))
}

func TestAuthorityClassifier_AnnotateKeepsOrder(t *testing.T) {
	a := NewAuthorityClassifier(nil, nil)
	items := []model.EvidenceItem{
		{Title: "blog", URL: "https://blog.example.com/1"},
		{Title: "wiki", URL: "https://fr.wikipedia.org/wiki/SMIC"},
		{Title: "insee", URL: "https://www.insee.fr/smic"},
	}

	got := a.Annotate(items)

	require.Len(t, got, 3)
	assert.Equal(t, "blog", got[0].Title)
	assert.Equal(t, AuthorityTertiary, got[0].Authority)
	assert.Equal(t, AuthoritySecondary, got[1].Authority)
	assert.Equal(t, AuthorityPrimary, got[2].Authority)
	assert.Empty(t, items[2].Authority, "input must not be modified")
}

func TestAnnotated(t *testing.T) {
	next := Func(func(ctx context.Context, query string, max int) ([]model.EvidenceItem, error) {
		return []model.EvidenceItem{
			{Title: "blog", URL: "https://blog.example.com/"},
			{Title: "who", URL: "https://www.who.int/news"},
		}, nil
	})

	items, err := NewAnnotated(next, NewAuthorityClassifier(nil, nil)).Search(context.Background(), "q", 3)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "blog", items[0].Title)
	assert.Equal(t, AuthorityPrimary, items[1].Authority)

	empty, err := NewAnnotated(None{}, NewAuthorityClassifier(nil, nil)).Search(context.Background(), "q", 3)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	failing := Func(func(ctx context.Context, query string, max int) ([]model.EvidenceItem, error) {
		return nil, errors.New("boom")
	})
	_, err = NewAnnotated(failing, NewAuthorityClassifier(nil, nil)).Search(context.Background(), "q", 3)
	assert.Error(t, err)
}
