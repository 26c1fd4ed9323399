package guardrails

import "regexp"

// Redactor removes common PII (emails, phone numbers, SSNs, credit card
// numbers) from generated text before it leaves the service.
type Redactor struct {
	patterns []piiPattern
}

type piiPattern struct {
	name    string
	pattern *regexp.Regexp
}

func NewRedactor() *Redactor {
	return &Redactor{
		patterns: []piiPattern{
			{"EMAIL", regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)},
			{"PHONE", regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)},
			{"SSN", regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`)},
			{"CREDIT_CARD", regexp.MustCompile(`\b\d{4}[- ]?\d{4}[- ]?\d{4}[- ]?\d{4}\b`)},
		},
	}
}

// Redact replaces every PII occurrence with a typed placeholder.
func (r *Redactor) Redact(text string) string {
	redacted := text
	for _, p := range r.patterns {
		redacted = p.pattern.ReplaceAllString(redacted, "["+p.name+"_REDACTED]")
	}
	return redacted
}

// ContainsPII reports whether the text matches any known PII pattern.
func (r *Redactor) ContainsPII(text string) bool {
	for _, p := range r.patterns {
		if p.pattern.MatchString(text) {
			return true
		}
	}
	return false
}
