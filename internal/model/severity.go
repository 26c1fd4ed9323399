package model

import "fmt"

// Severity represents how serious an identified gap is.
// The order is total: critical > high > medium > low.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// ParseSeverity converts a raw string into a Severity. Unknown values are
// rejected so a malformed model response surfaces as a parse failure instead
// of an unscoreable gap.
func ParseSeverity(s string) (Severity, error) {
	switch Severity(s) {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return Severity(s), nil
	default:
		return "", fmt.Errorf("unknown severity %q", s)
	}
}

// Rank returns the sort rank of the severity: critical=0 ... low=3.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	default:
		return 3
	}
}

// Penalty returns the score penalty a gap of this severity contributes to the
// overall compliance score.
func (s Severity) Penalty() int {
	switch s {
	case SeverityCritical:
		return 20
	case SeverityHigh:
		return 10
	case SeverityMedium:
		return 5
	default:
		return 2
	}
}
