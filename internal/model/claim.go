package model

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidClaim is returned when a claim fails text validation.
// Invalid claims are never sent to a language model.
var ErrInvalidClaim = errors.New("invalid claim")

// Claim is a single statement submitted for verification
type Claim struct {
	Text   string `json:"text"`             // Normalized claim text
	Source string `json:"source,omitempty"` // Where it came from (e.g., "stdin", "file:claims.txt:3")
	Index  int    `json:"index"`            // Position in the submitted batch (0-based)
}

// ClaimLimits bounds the accepted claim length in runes
type ClaimLimits struct {
	MinLength int `json:"min_length" yaml:"min_length" mapstructure:"min_length"`
	MaxLength int `json:"max_length" yaml:"max_length" mapstructure:"max_length"`
}

// DefaultClaimLimits returns the standard bounds (10..500 runes)
func DefaultClaimLimits() ClaimLimits {
	return ClaimLimits{MinLength: 10, MaxLength: 500}
}

// CleanText collapses runs of whitespace and trims the result
func CleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Validate checks the claim text against the limits and returns the cleaned text.
func (l ClaimLimits) Validate(text string) (string, error) {
	cleaned := CleanText(text)
	if cleaned == "" {
		return "", fmt.Errorf("%w: empty text", ErrInvalidClaim)
	}

	n := utf8.RuneCountInString(cleaned)
	if l.MinLength > 0 && n < l.MinLength {
		return "", fmt.Errorf("%w: %d characters, minimum is %d", ErrInvalidClaim, n, l.MinLength)
	}
	if l.MaxLength > 0 && n > l.MaxLength {
		return "", fmt.Errorf("%w: %d characters, maximum is %d", ErrInvalidClaim, n, l.MaxLength)
	}

	return cleaned, nil
}

// NewClaims wraps raw texts into indexed claims without validating them.
// Validation happens inside each claim pipeline so that an invalid line still
// produces a record in the report.
func NewClaims(texts []string, source string) []Claim {
	claims := make([]Claim, len(texts))
	for i, t := range texts {
		claims[i] = Claim{Text: strings.TrimSpace(t), Source: source, Index: i}
	}
	return claims
}

// Truncate shortens text for log lines
func Truncate(text string, max int) string {
	if max <= 0 || utf8.RuneCountInString(text) <= max {
		return text
	}
	runes := []rune(text)
	return string(runes[:max]) + "..."
}
