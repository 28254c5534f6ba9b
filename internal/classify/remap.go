package classify

import (
	"strings"

	"github.com/ppiankov/verdict/internal/model"
)

// Rule maps labels matching a predicate to a category
type Rule struct {
	Name   string
	Match  func(label string) bool
	Target model.Category
}

// Rules is the ordered remap table. The first matching rule wins.
var Rules = []Rule{
	{"verdict-word", isVerdictLabel, model.StrongestCategory},
	{"advice", containsAny("CONSEIL", "RECOMMAN"), model.CategoryAdvice},
	{"doctrine", containsAny("RELIG", "DOCTRIN", "IDEOLOG", "PHILOSOPH", "MORAL"), model.CategoryDoctrine},
	{"legal", containsAny("JURIDIQ", "DROIT", "LEGAL", "LOI_"), model.CategoryLegal},
	{"statistic", containsAny("STATIST", "CHIFFR", "ECONOM", "BUDGET"), model.CategoryStatistic},
	{"fallacy", anySegmentPrefix("SOPHISM", "FALLAC", "LOGIQ"), model.CategoryFallacy},
	{"science", containsAny("SCIEN", "SANTE", "MEDIC"), model.CategoryScienceConsensus},
	{"history", containsAny("HISTO", "GEOGRAPH", "CULTUR"), model.CategoryHistoryConsensus},
	{"politeness", containsAny("POLITESSE", "SALUTATION", "REMERCI"), model.CategoryPoliteness},
	{"humor", containsAny("HUMOUR", "HUMOR", "BLAGUE", "IRONI"), model.CategoryHumor},
	{"opinion", containsAny("OPINION", "AVIS", "TONALITE"), model.CategoryOpinion},
	{"intention", containsAny("FUTUR", "PROJET", "INTENTION", "PROMESSE"), model.CategoryIntention},
	{"unverifiable", containsAny("PERSONNEL", "ANECDOT", "INVERIFIABLE"), model.CategoryUnverifiable},
}

// Remap maps a normalized label that is not in the taxonomy to a category.
// It returns the rule name, or "fallback" when no rule matched.
func Remap(label string) (model.Category, string) {
	for _, r := range Rules {
		if r.Match(label) {
			return r.Target, r.Name
		}
	}
	return model.StrongestCategory, "fallback"
}

// Resolve returns the category for a normalized label and whether it was remapped
func Resolve(label string) (model.Category, bool, string) {
	if c := model.Category(label); c.IsValid() {
		return c, false, ""
	}
	c, rule := Remap(label)
	return c, true, rule
}

// isVerdictLabel matches verdict words exactly or as a prefix (VRAI_MAIS..., FAUX_CAR...)
func isVerdictLabel(label string) bool {
	if model.IsVerdictWord(label) {
		return true
	}
	for _, w := range []string{
		model.VerdictTrue, model.VerdictFalse, model.VerdictBias, model.VerdictContested,
		model.VerdictUnfounded, model.VerdictAdmitted, "NUANCE", "TROMPEUR", "INEXACT", "EXACT",
	} {
		if strings.HasPrefix(label, w+"_") {
			return true
		}
	}
	return false
}

func containsAny(subs ...string) func(string) bool {
	return func(label string) bool {
		for _, s := range subs {
			if strings.Contains(label, s) {
				return true
			}
		}
		return false
	}
}

// anySegmentPrefix matches when one "_"-separated word starts with a prefix,
// so BIOLOGIQUE does not count as LOGIQUE
func anySegmentPrefix(prefixes ...string) func(string) bool {
	return func(label string) bool {
		for _, seg := range strings.Split(label, "_") {
			for _, p := range prefixes {
				if strings.HasPrefix(seg, p) {
					return true
				}
			}
		}
		return false
	}
}
