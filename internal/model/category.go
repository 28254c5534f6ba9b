package model

// Category is one label of the closed claim taxonomy
type Category string

// Factual categories: each one is verified against evidence by the language model.
const (
	CategoryStatistic        Category = "STATISTIQUE"       // Official figures, rates, budgets
	CategoryLegal            Category = "JURIDIQUE"         // Legality, interpretation of a law
	CategoryDoctrine         Category = "DOCTRINE"          // Religious, ideological or philosophical positions
	CategoryScienceConsensus Category = "CONSENSUS_SCIENCE" // Scientific/medical consensus, pseudoscience
	CategoryHistoryConsensus Category = "CONSENSUS_HISTO"   // Historical, geographic and cultural facts
	CategoryFallacy          Category = "LOGIQUE"           // Logical fallacy or cognitive bias
)

// Non-factual categories: acknowledged without verification.
const (
	CategoryOpinion      Category = "OPINION"        // Opinion or tone
	CategoryAdvice       Category = "CONSEIL"        // Advice, recommendation
	CategoryPoliteness   Category = "POLITESSE"      // Greetings, thanks
	CategoryUnverifiable Category = "NON_VERIFIABLE" // Personal, unfalsifiable statements
	CategoryHumor        Category = "HUMOUR"         // Nonsense, jokes, absurd proverbs
	CategoryIntention    Category = "NON_FAIT"       // Intentions, promises, future events
)

// CategoryUnstructured tags verification output that did not follow the
// requested format. It is never returned by the classifier.
const CategoryUnstructured Category = "ANALYSE_BRUTE"

// StrongestCategory is the fallback used whenever a label cannot be mapped.
// It goes through evidence-bound verification with the strictest verdict rules.
const StrongestCategory = CategoryHistoryConsensus

// FactualCategories lists the factual categories in prompt order
var FactualCategories = []Category{
	CategoryFallacy,
	CategoryStatistic,
	CategoryLegal,
	CategoryScienceConsensus,
	CategoryHistoryConsensus,
	CategoryDoctrine,
}

// NonFactualCategories lists the non-factual categories in prompt order
var NonFactualCategories = []Category{
	CategoryIntention,
	CategoryPoliteness,
	CategoryUnverifiable,
	CategoryHumor,
	CategoryOpinion,
	CategoryAdvice,
}

// AllCategories returns every member of the taxonomy
func AllCategories() []Category {
	all := make([]Category, 0, len(FactualCategories)+len(NonFactualCategories))
	all = append(all, FactualCategories...)
	return append(all, NonFactualCategories...)
}

// IsValid reports whether c belongs to the taxonomy
func (c Category) IsValid() bool {
	return c.IsFactual() || c.IsNonFactual()
}

// IsFactual reports whether c requires evidence-bound verification
func (c Category) IsFactual() bool {
	for _, f := range FactualCategories {
		if c == f {
			return true
		}
	}
	return false
}

// IsNonFactual reports whether c is acknowledged without verification
func (c Category) IsNonFactual() bool {
	for _, f := range NonFactualCategories {
		if c == f {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// Description returns the French label shown in reports
func (c Category) Description() string {
	switch c {
	case CategoryStatistic:
		return "Donnée chiffrée"
	case CategoryLegal:
		return "Juridique"
	case CategoryDoctrine:
		return "Doctrine / idéologie"
	case CategoryScienceConsensus:
		return "Consensus scientifique"
	case CategoryHistoryConsensus:
		return "Consensus historique / géographique"
	case CategoryFallacy:
		return "Sophisme / biais"
	case CategoryOpinion:
		return "Opinion"
	case CategoryAdvice:
		return "Conseil"
	case CategoryPoliteness:
		return "Politesse"
	case CategoryUnverifiable:
		return "Non vérifiable"
	case CategoryHumor:
		return "Humour"
	case CategoryIntention:
		return "Intention / futur"
	case CategoryUnstructured:
		return "Analyse non structurée"
	default:
		return "Non déterminée"
	}
}

// Verdict words the language model is allowed to emit
const (
	VerdictTrue         = "VRAI"
	VerdictFalse        = "FAUX"
	VerdictBias         = "BIAIS"
	VerdictContested    = "CONTESTE"
	VerdictUnfounded    = "INFONDE"
	VerdictUnverifiable = "NON_VERIFIABLE"
	VerdictAdmitted     = "ADMIS"
)

// verdictWords are raw labels that denote a conclusion rather than a category.
// NON_VERIFIABLE is excluded because it is also a category name.
var verdictWords = map[string]bool{
	VerdictTrue:          true,
	VerdictFalse:         true,
	VerdictBias:          true,
	VerdictContested:     true,
	VerdictUnfounded:     true,
	VerdictAdmitted:      true,
	"NUANCE":             true,
	"TROMPEUR":           true,
	"INEXACT":            true,
	"EXACT":              true,
	"PARTIELLEMENT_VRAI": true,
	"PLUTOT_VRAI":        true,
	"PLUTOT_FAUX":        true,
}

// IsVerdictWord reports whether a normalized label is a verdict word
func IsVerdictWord(label string) bool {
	return verdictWords[label]
}

// IsKnownVerdict reports whether a normalized label is a verdict the report can display
func IsKnownVerdict(label string) bool {
	return verdictWords[label] || label == VerdictUnverifiable
}
