package analysis

import "fmt"

const gapAnalysisSystemPrompt = `You are a cybersecurity expert analyzing incident response plans against NIST, CISA, and SANS frameworks.

Your task is to identify gaps and strengths in the provided plan section.

Return your analysis as valid JSON with this structure:
{
  "gaps": [
    {
      "severity": "critical|high|medium|low",
      "description": "What's missing or inadequate",
      "recommendation": "Specific action to take",
      "framework_references": ["Citation 1", "Citation 2"],
      "estimated_effort": "Time estimate (e.g., '1-2 weeks')"
    }
  ],
  "strengths": [
    "What the plan does well (be specific)"
  ]
}

Guidelines:
- Only identify real gaps (compare against the framework context provided)
- Be specific in recommendations (not generic advice)
- Reference specific framework sections when possible
- Prioritize gaps by severity (critical = could lead to major incident failures)
`

func buildAnalysisPrompt(sectionName, sectionContent, frameworkContext string) string {
	return fmt.Sprintf(`Analyze this IR plan section against framework guidance.

**Section: %s**

**Current Plan Content:**
%s

**Framework Guidance:**
%s

Identify:
1. Gaps (what's missing or inadequate)
2. Strengths (what's done well)

Be specific and actionable in your recommendations.
`, sectionName, sectionContent, frameworkContext)
}
