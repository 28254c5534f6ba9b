package classify

import (
	"strings"

	"github.com/ppiankov/verdict/internal/model"
)

// leadIns are words a model sometimes writes before the label itself.
// Multi-word lead-ins are matched token pair by token pair.
var leadIns = map[string]bool{
	"CATEGORIE":      true,
	"CATEGORY":       true,
	"REPONSE":        true,
	"REPONSE_UNIQUE": true,
	"LABEL":          true,
}

// ParseLabel extracts the normalized label from a classifier response.
// The text inside the first [...] wins; otherwise the first token that is not
// markdown decoration or a lead-in word is used.
func ParseLabel(response string) string {
	if open := strings.Index(response, "["); open >= 0 {
		if end := strings.Index(response[open+1:], "]"); end >= 0 {
			if label := model.NormalizeLabel(response[open+1 : open+1+end]); label != "" {
				return label
			}
		}
	}

	prev := ""
	for _, field := range strings.Fields(response) {
		token := strings.Trim(field, "*_#>`~-:.,;!?\"'()")
		if token == "" {
			continue
		}
		label := model.NormalizeLabel(token)
		if label == "" || leadIns[label] || (prev != "" && leadIns[prev+"_"+label]) {
			prev = label
			continue
		}
		return label
	}
	return ""
}
