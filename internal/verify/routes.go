package verify

import "github.com/ppiankov/verdict/internal/model"

// Branch identifies how a category is handled
type Branch string

const (
	// BranchAcknowledge returns a fixed acknowledgment without any model call
	BranchAcknowledge Branch = "A"
	// BranchVerify runs one evidence-bound verification call
	BranchVerify Branch = "B"
	// BranchFallback handles a category outside the taxonomy as the strongest one
	BranchFallback Branch = "C"
)

// Strategy is the dispatch entry of one category
type Strategy struct {
	Branch       Branch
	Instruction  string // System instruction for BranchVerify
	Ack          string // Acknowledgment text for BranchAcknowledge
	FixedVerdict string // Verdict word enforced on the result, if any
	VerdictHint  string // Verdict words shown in the output format
}

const defaultHint = "VRAI|FAUX|CONTESTÉ|NON_VERIFIABLE"

// strategies has exactly one entry per category of the taxonomy
var strategies = map[model.Category]Strategy{
	model.CategoryStatistic: {
		Branch:      BranchVerify,
		Instruction: statisticInstruction,
		VerdictHint: "VRAI|FAUX|BIAIS",
	},
	model.CategoryLegal: {
		Branch:      BranchVerify,
		Instruction: defaultInstruction,
		VerdictHint: defaultHint,
	},
	model.CategoryDoctrine: {
		Branch:       BranchVerify,
		Instruction:  doctrineInstruction,
		FixedVerdict: model.VerdictContested,
		VerdictHint:  "CONTESTÉ : [Position majoritaire] / [Position minoritaire]",
	},
	model.CategoryScienceConsensus: {
		Branch:      BranchVerify,
		Instruction: defaultInstruction,
		VerdictHint: defaultHint + "|INFONDÉ",
	},
	model.CategoryHistoryConsensus: {
		Branch:      BranchVerify,
		Instruction: defaultInstruction,
		VerdictHint: defaultHint,
	},
	model.CategoryFallacy: {
		Branch:       BranchVerify,
		Instruction:  fallacyInstruction,
		FixedVerdict: model.VerdictBias,
		VerdictHint:  "BIAIS : [Sophisme précis tiré de la liste]",
	},

	model.CategoryOpinion: {
		Branch:       BranchAcknowledge,
		Ack:          "Opinion personnelle : jugement de valeur sans prétention factuelle, pris en compte sans vérification.",
		FixedVerdict: model.VerdictAdmitted,
	},
	model.CategoryAdvice: {
		Branch:       BranchAcknowledge,
		Ack:          "Conseil ou recommandation : ne relève pas de la vérification factuelle.",
		FixedVerdict: model.VerdictAdmitted,
	},
	model.CategoryPoliteness: {
		Branch:       BranchAcknowledge,
		Ack:          "Formule de politesse : aucun contenu informatif à vérifier.",
		FixedVerdict: model.VerdictAdmitted,
	},
	model.CategoryUnverifiable: {
		Branch:       BranchAcknowledge,
		Ack:          "Affirmation personnelle ou invérifiable : aucune source publique ne permet de la confirmer ou de l'infirmer.",
		FixedVerdict: model.VerdictAdmitted,
	},
	model.CategoryHumor: {
		Branch:       BranchAcknowledge,
		Ack:          "Trait d'humour ou non-sens : sans visée factuelle.",
		FixedVerdict: model.VerdictAdmitted,
	},
	model.CategoryIntention: {
		Branch:       BranchAcknowledge,
		Ack:          "Intention, promesse ou événement futur : ne peut pas encore être vérifié.",
		FixedVerdict: model.VerdictAdmitted,
	},
}

// StrategyFor returns the dispatch entry of a category.
// Unknown categories get the strongest category's entry with BranchFallback.
func StrategyFor(category model.Category) (Strategy, model.Category) {
	if s, ok := strategies[category]; ok {
		return s, category
	}
	s := strategies[model.StrongestCategory]
	s.Branch = BranchFallback
	return s, model.StrongestCategory
}

// NeedsEvidence reports whether routing the category will use web evidence
func NeedsEvidence(category model.Category) bool {
	s, _ := StrategyFor(category)
	return s.Branch != BranchAcknowledge
}
