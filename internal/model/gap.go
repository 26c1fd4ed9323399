package model

// Gap is a single deficiency identified in one section of an IR plan.
// Gaps are created once while parsing the model's judgment for a section and
// never mutated afterwards; they live only for the duration of one analysis run.
type Gap struct {
	ID                  string   `json:"id"`
	Section             string   `json:"section"`
	Severity            Severity `json:"severity"`
	Description         string   `json:"description"`
	Recommendation      string   `json:"recommendation"`
	FrameworkReferences []string `json:"framework_references"`
	EstimatedEffort     string   `json:"estimated_effort"`
}

// AnalysisResult is the complete outcome of one gap-analysis run.
// Overall and per-framework scores are clamped to [0,100]; priority actions
// are the recommendations of the first five gaps by severity.
type AnalysisResult struct {
	CompanyName         string         `json:"company_name"`
	AnalysisTimestamp   string         `json:"analysis_timestamp"`
	OverallScore        int            `json:"overall_score"`
	Gaps                []Gap          `json:"gaps"`
	Strengths           []string       `json:"strengths"`
	PriorityActions     []string       `json:"priority_actions"`
	FrameworkCompliance map[string]int `json:"framework_compliance"`
}
