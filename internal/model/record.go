package model

import (
	"time"

	"github.com/google/uuid"
)

// Status is the outcome of one claim pipeline run
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Stage names the pipeline step that produced an error record
type Stage string

const (
	StageValidate Stage = "validate"
	StageClassify Stage = "classify"
	StageVerify   Stage = "verify"
	StageCanceled Stage = "canceled"
)

// VerdictRecord is the outcome of processing a single claim.
// Records are immutable once created and are appended to the history log.
type VerdictRecord struct {
	ID          string         `json:"id"`
	Index       int            `json:"index"`                  // Position in the submitted batch
	Claim       string         `json:"affirmation"`            // Claim text as submitted
	Category    Category       `json:"category,omitempty"`     // Final category (ANALYSE_BRUTE for unstructured output)
	Label       string         `json:"label,omitempty"`        // Human-readable category label
	Verdict     string         `json:"verdict,omitempty"`      // Verdict word (VRAI, FAUX, ADMIS...)
	VerdictText string         `json:"verdict_text,omitempty"` // Full verdict text
	Evidence    []EvidenceItem `json:"evidence,omitempty"`     // Sources shown to the model
	Status      Status         `json:"status"`
	Stage       Stage          `json:"stage,omitempty"`         // Failing stage (error records only)
	Error       string         `json:"error_message,omitempty"` // Human-readable failure
	ErrorType   string         `json:"error_type,omitempty"`    // Sentinel name of the failure
	Remapped    bool           `json:"remapped,omitempty"`      // Classifier label had to be remapped
	RawCategory string         `json:"raw_category,omitempty"`  // Label as returned by the model
	Model       string         `json:"model,omitempty"`
	Timestamp   time.Time      `json:"timestamp"`
}

// NewRecord creates a record with a fresh ID and timestamp
func NewRecord(claim Claim) VerdictRecord {
	return VerdictRecord{
		ID:        uuid.NewString(),
		Index:     claim.Index,
		Claim:     claim.Text,
		Timestamp: time.Now().UTC(),
	}
}

// IsSuccess reports whether the record holds a verdict
func (r VerdictRecord) IsSuccess() bool {
	return r.Status == StatusSuccess
}

// Summary counts records by status
type Summary struct {
	Total     int `json:"total"`
	Successes int `json:"successes"`
	Errors    int `json:"errors"`
}

// Summarize counts successes and errors
func Summarize(records []VerdictRecord) Summary {
	s := Summary{Total: len(records)}
	for _, r := range records {
		if r.IsSuccess() {
			s.Successes++
		} else {
			s.Errors++
		}
	}
	return s
}
