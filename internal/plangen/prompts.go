package plangen

import (
	"fmt"
	"strings"

	"github.com/ksamaarora/vciso-backend/internal/model"
)

const systemPrompt = `You are a cybersecurity expert specializing in Incident Response (IR) planning for small to medium-sized businesses.

Your task is to generate a clear, actionable Incident Response Plan tailored to the user's specific context.

Guidelines:
1. Use plain language (avoid jargon unless explained)
2. Be specific to their industry, size, and tools
3. Prioritize their stated concerns
4. Include concrete steps, not generic advice
5. Format in Markdown with clear sections
6. Do not include any personally identifiable information (PII) in the output
7. Do not give advice that could violate laws or regulations

Output Structure (REQUIRED):
# Incident Response Plan for [Company Name]

## 1. Executive Summary
- Brief overview (2-3 sentences)

## 2. Incident Response Team
- Who's responsible (based on their input)
- Contact info (placeholders)

## 3. Incident Classification
- What qualifies as an incident
- Severity levels (Critical/High/Medium/Low)

## 4. Response Procedures
### Ransomware
- Detection
- Containment
- Eradication
- Recovery

### Phishing Attack
- Detection
- Containment
- Eradication
- Recovery

### Data Breach
- Detection
- Containment
- Eradication
- Recovery

(Prioritize based on user's "main concerns")

## 5. Communication Plan
- Internal notifications
- External notifications (customers, partners, authorities)

## 6. Post-Incident Review
- What to document
- Lessons learned process

## 7. Appendices
- Vendor contacts (IT support, cybersecurity consultants)
- Legal/compliance requirements (specific to industry)

Remember: This plan should be immediately usable by a non-technical person during a crisis.
`

// buildPrompt injects the onboarding context into the user prompt.
func buildPrompt(data model.OnboardingData) string {
	securityPosture := "None currently implemented"
	if len(data.CurrentSecurity) > 0 {
		securityPosture = strings.Join(data.CurrentSecurity, ", ")
	}

	return fmt.Sprintf(`Generate a customized Incident Response Plan with the following context:

**Company Details:**
- Name: %s
- Industry: %s
- Size: %s employees

**Technology Stack:**
- Email: %s
- File Storage: %s
- Communication: %s

**Current Security Measures:**
%s

**Primary Security Concerns (prioritize these):**
%s

**Security Lead:**
%s

Please generate a comprehensive IR plan tailored to this specific business. Focus especially on their stated concerns: %s.
`,
		data.CompanyName,
		titleCase(data.Industry),
		data.EmployeeCount,
		strings.Join(data.Tools.Email, ", "),
		strings.Join(data.Tools.Storage, ", "),
		strings.Join(data.Tools.Communication, ", "),
		securityPosture,
		strings.Join(data.MainConcerns, ", "),
		formatSecurityLead(data.SecurityLead),
		strings.Join(data.MainConcerns, ", "),
	)
}

func formatSecurityLead(lead model.SecurityLead) string {
	switch lead.Type {
	case model.SecurityLeadDedicated:
		name := lead.Name
		if name == "" {
			name = "[Name]"
		}
		return "Dedicated IT person: " + name
	case model.SecurityLeadConsultant:
		return "External IT consultant (contact info to be added)"
	case model.SecurityLeadOwner:
		return "CEO/Business Owner"
	default:
		return "No designated security lead (will need to assign one)"
	}
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
