package verify

import (
	"fmt"
	"strings"

	"github.com/ppiankov/verdict/internal/model"
)

// FormatEvidence renders the evidence block of the verification prompt.
// An empty list yields the conservative no-source block.
func FormatEvidence(items []model.EvidenceItem) string {
	if len(items) == 0 {
		return noEvidence
	}

	var sb strings.Builder
	for i, it := range items {
		if i > 0 {
			sb.WriteString("\n")
		}
		title := it.Title
		if title == "" {
			title = it.Host()
		}
		fmt.Fprintf(&sb, "- Titre: %s\n  URL: %s", title, it.URL)
		if label, ok := authorityLabels[it.Authority]; ok {
			fmt.Fprintf(&sb, "\n  Type de source: %s", label)
		}
		if it.Snippet != "" {
			fmt.Fprintf(&sb, "\n  Extrait: %s", model.Truncate(it.Snippet, 300))
		}
	}
	return sb.String()
}

var authorityLabels = map[string]string{
	"primary":   "officielle / institutionnelle",
	"secondary": "ouvrage de référence / presse",
	"tertiary":  "autre",
}

func buildUserPrompt(claim string, evidence []model.EvidenceItem) string {
	return fmt.Sprintf("Affirmation à vérifier : %q\n\nSources et liens trouvés :\n%s", claim, FormatEvidence(evidence))
}

// citedURLs returns the http(s) URLs that appear in text
func citedURLs(text string) []string {
	var urls []string
	for _, field := range strings.Fields(text) {
		start := strings.Index(field, "http://")
		if start < 0 {
			start = strings.Index(field, "https://")
		}
		if start < 0 {
			continue
		}
		u := strings.TrimRight(field[start:], ".,;:!?)]}>\"'*")
		if len(u) > len("https://") {
			urls = append(urls, u)
		}
	}
	return urls
}

// uncitedSources returns URLs cited in text that are not among the evidence.
// Matching ignores a trailing slash.
func uncitedSources(text string, evidence []model.EvidenceItem) []string {
	known := make(map[string]bool, len(evidence))
	for _, e := range evidence {
		known[strings.TrimSuffix(e.URL, "/")] = true
	}

	var unknown []string
	for _, u := range citedURLs(text) {
		if !known[strings.TrimSuffix(u, "/")] {
			unknown = append(unknown, u)
		}
	}
	return unknown
}
