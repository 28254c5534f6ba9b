package verify

import (
	"errors"
	"strings"

	"github.com/ppiankov/verdict/internal/model"
)

// ErrUnstructured means the response did not follow the [LABEL] rest format.
// It is always recovered into an ANALYSE_BRUTE outcome.
var ErrUnstructured = errors.New("unstructured verification output")

// Parsed is a verification response split into its parts
type Parsed struct {
	Label   string // Normalized bracketed label
	Verdict string // Known verdict word, or ""
	Text    string // Everything after the label
}

// ParseResponse extracts the leading "[LABEL] rest" of a verification response.
// A missing bracket, or a bracket holding a verdict word instead of a category,
// returns ErrUnstructured with the whole response as Text.
func ParseResponse(response string) (Parsed, error) {
	trimmed := strings.TrimSpace(response)
	raw := Parsed{Text: trimmed}

	body := strings.TrimLeft(trimmed, "*#> \t")
	if !strings.HasPrefix(body, "[") {
		return raw, ErrUnstructured
	}
	end := strings.Index(body, "]")
	if end < 0 {
		return raw, ErrUnstructured
	}

	label := model.NormalizeLabel(body[1:end])
	if label == "" || model.IsKnownVerdict(label) {
		return raw, ErrUnstructured
	}

	rest := strings.TrimSpace(strings.TrimLeft(body[end+1:], "*:- \t"))
	return Parsed{
		Label:   label,
		Verdict: leadingVerdict(rest),
		Text:    rest,
	}, nil
}

// leadingVerdict returns the verdict word opening the first ":" segment.
// Up to three leading words are tried so "Plutôt vrai, ..." is recognized.
func leadingVerdict(rest string) string {
	segment := rest
	if i := strings.Index(rest, ":"); i >= 0 {
		segment = rest[:i]
	}
	if v := model.NormalizeLabel(segment); model.IsKnownVerdict(v) {
		return v
	}

	fields := strings.Fields(segment)
	for n := min(3, len(fields)); n > 0; n-- {
		if v := model.NormalizeLabel(strings.Join(fields[:n], " ")); model.IsKnownVerdict(v) {
			return v
		}
	}
	return ""
}

// FindVerdict returns the first known verdict word anywhere in text.
// Used for free-form flash reports.
func FindVerdict(text string) string {
	for _, field := range strings.Fields(text) {
		word := model.NormalizeLabel(strings.Trim(field, "*_:.,;()[]"))
		if model.IsKnownVerdict(word) {
			return word
		}
	}
	return ""
}
