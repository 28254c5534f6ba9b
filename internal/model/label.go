package model

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeLabel upper-cases a raw label, folds accents and joins words with "_".
// "Contesté" and "non-vérifiable" become "CONTESTE" and "NON_VERIFIABLE".
func NormalizeLabel(raw string) string {
	// transform.Chain is stateful, so build one per call
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, raw)
	if err != nil {
		folded = raw
	}

	var sb strings.Builder
	lastUnderscore := true
	for _, r := range strings.ToUpper(folded) {
		switch {
		case (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			sb.WriteRune(r)
			lastUnderscore = false
		case r == '_' || r == '-' || r == '\'' || unicode.IsSpace(r):
			if !lastUnderscore {
				sb.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimSuffix(sb.String(), "_")
}
