package model

import (
	"net/url"
	"strings"
)

// EvidenceItem is a web search hit retrieved for a claim
type EvidenceItem struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet,omitempty"`

	// Authority tier of the source (primary, secondary, tertiary); empty when unranked
	Authority string `json:"authority,omitempty"`
}

// Host returns the hostname of the evidence URL, or "" if it cannot be parsed
func (e EvidenceItem) Host() string {
	parsed, err := url.Parse(e.URL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(parsed.Hostname(), "www.")
}

// DedupeEvidence drops items with an empty or repeated URL, keeping the first occurrence
func DedupeEvidence(items []EvidenceItem) []EvidenceItem {
	seen := make(map[string]bool, len(items))
	out := make([]EvidenceItem, 0, len(items))
	for _, it := range items {
		u := strings.TrimSpace(it.URL)
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		it.URL = u
		it.Title = strings.TrimSpace(it.Title)
		out = append(out, it)
	}
	return out
}
