package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ppiankov/verdict/internal/model"
)

// Results is the document written to the results file of a run
type Results struct {
	Mode        string                `json:"mode"`
	GeneratedAt time.Time             `json:"generated_at"`
	Summary     model.Summary         `json:"summary"`
	Records     []model.VerdictRecord `json:"resultats"`
}

// NewResults wraps the records of a run
func NewResults(mode string, records []model.VerdictRecord, now time.Time) Results {
	if records == nil {
		records = []model.VerdictRecord{}
	}
	return Results{
		Mode:        mode,
		GeneratedAt: now.UTC(),
		Summary:     model.Summarize(records),
		Records:     records,
	}
}

// ResultsPath returns <dir>/resultats_<mode>_<YYYYMMDD_HHMMSS>.<ext>
func ResultsPath(dir, mode, ext string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("resultats_%s_%s.%s", mode, now.Format("20060102_150405"), ext))
}

// WriteJSON writes the results document, creating parent directories
func WriteJSON(path string, results Results) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	return writeFile(path, data)
}

// WriteMarkdown writes the Markdown report
func WriteMarkdown(path string, results Results) error {
	return writeFile(path, []byte(Markdown(results)))
}

// WriteHTML writes the HTML report
func WriteHTML(path string, results Results) error {
	html, err := HTML(results)
	if err != nil {
		return err
	}
	return writeFile(path, []byte(html))
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
