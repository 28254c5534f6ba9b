package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/verdict/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []model.VerdictRecord {
	ok := model.NewRecord(model.Claim{Text: "Paris est la capitale de la France.", Index: 0})
	ok.Status = model.StatusSuccess
	ok.Category = model.CategoryHistoryConsensus
	ok.Verdict = model.VerdictTrue
	ok.VerdictText = "VRAI : Paris est la capitale."
	ok.Evidence = []model.EvidenceItem{{Title: "Paris", URL: "https://fr.wikipedia.org/wiki/Paris"}}

	remapped := model.NewRecord(model.Claim{Text: "La Terre est plate | vraiment.", Index: 1})
	remapped.Status = model.StatusSuccess
	remapped.Category = model.StrongestCategory
	remapped.Remapped = true
	remapped.RawCategory = "FAUX"
	remapped.Verdict = model.VerdictFalse

	failed := model.NewRecord(model.Claim{Text: "Le chômage est de 7% en France.", Index: 2})
	failed.Status = model.StatusError
	failed.Stage = model.StageClassify
	failed.Error = "classification stage: request timed out"

	return []model.VerdictRecord{ok, remapped, failed}
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, sampleRecords(), false))
	out := buf.String()

	assert.Contains(t, out, "[1] Paris est la capitale de la France.")
	assert.Contains(t, out, "Verdict   : VRAI")
	assert.Contains(t, out, "<https://fr.wikipedia.org/wiki/Paris>")
	assert.Contains(t, out, "[réponse brute : FAUX]")
	assert.Contains(t, out, "ERREUR (classify) : classification stage: request timed out")
	assert.True(t, strings.HasSuffix(out, "STATISTIQUES: 2 réussites, 1 erreurs sur 3 analyses\n"))
}

func TestRecord(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Record(&buf, sampleRecords()[0], false))
	assert.Contains(t, buf.String(), "Consensus historique / géographique (CONSENSUS_HISTO)")
	assert.NotContains(t, buf.String(), "STATISTIQUES")
}

func TestResultsPath(t *testing.T) {
	now := time.Date(2026, 3, 9, 14, 5, 7, 0, time.UTC)
	assert.Equal(t, filepath.Join("results", "resultats_batch_20260309_140507.json"), ResultsPath("results", "batch", "json", now))
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "resultats_file.json")
	results := NewResults("file", sampleRecords(), time.Now())
	require.NoError(t, WriteJSON(path, results))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded struct {
		Mode    string                   `json:"mode"`
		Summary model.Summary            `json:"summary"`
		Records []map[string]interface{} `json:"resultats"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "file", decoded.Mode)
	assert.Equal(t, model.Summary{Total: 3, Successes: 2, Errors: 1}, decoded.Summary)
	require.Len(t, decoded.Records, 3)
	assert.Equal(t, "Paris est la capitale de la France.", decoded.Records[0]["affirmation"])
	assert.Equal(t, "error", decoded.Records[2]["status"])
}

func TestNewResults_NilRecords(t *testing.T) {
	r := NewResults("demo", nil, time.Now())
	assert.NotNil(t, r.Records)
	assert.Equal(t, 0, r.Summary.Total)
}

func TestMarkdown(t *testing.T) {
	md := Markdown(NewResults("demo", sampleRecords(), time.Now()))

	assert.Contains(t, md, "# Rapport de vérification (demo)")
	assert.Contains(t, md, `| 2 | La Terre est plate \| vraiment. | CONSENSUS_HISTO | FAUX |`)
	assert.Contains(t, md, "| 3 | Le chômage est de 7% en France. |  | ERREUR |")
	assert.Contains(t, md, "- [Paris](https://fr.wikipedia.org/wiki/Paris)")
	assert.Contains(t, md, "**Erreur (classify)**")
	assert.Contains(t, md, "STATISTIQUES: 2 réussites, 1 erreurs sur 3 analyses")
}

func TestHTML(t *testing.T) {
	html, err := HTML(NewResults("demo", sampleRecords(), time.Now()))
	require.NoError(t, err)

	assert.Contains(t, html, "<title>Rapport de vérification (demo)</title>")
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, `<a href="https://fr.wikipedia.org/wiki/Paris">Paris</a>`)
}

func TestWriteMarkdownAndHTML(t *testing.T) {
	dir := t.TempDir()
	results := NewResults("batch", sampleRecords(), time.Now())

	require.NoError(t, WriteMarkdown(filepath.Join(dir, "r.md"), results))
	require.NoError(t, WriteHTML(filepath.Join(dir, "r.html"), results))

	for _, name := range []string{"r.md", "r.html"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}
