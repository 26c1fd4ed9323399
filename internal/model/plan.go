package model

// ToolsData lists the technology tools a company uses, grouped by purpose.
type ToolsData struct {
	Email         []string `json:"email"`
	Storage       []string `json:"storage"`
	Communication []string `json:"communication"`
	CRM           []string `json:"crm"`
}

// SecurityLeadType identifies who handles security for the company.
type SecurityLeadType string

const (
	SecurityLeadDedicated  SecurityLeadType = "dedicated"
	SecurityLeadConsultant SecurityLeadType = "consultant"
	SecurityLeadOwner      SecurityLeadType = "owner"
	SecurityLeadNone       SecurityLeadType = "none"
)

// SecurityLead describes the person responsible for security, if any.
type SecurityLead struct {
	Type SecurityLeadType `json:"type"`
	Name string           `json:"name,omitempty"`
}

// OnboardingData is the business context collected from the user, used to
// tailor a generated IR plan.
type OnboardingData struct {
	CompanyName     string       `json:"companyName"`
	EmployeeCount   string       `json:"employeeCount"`
	Industry        string       `json:"industry"`
	Tools           ToolsData    `json:"tools"`
	CurrentSecurity []string     `json:"currentSecurity"`
	MainConcerns    []string     `json:"mainConcerns"`
	SecurityLead    SecurityLead `json:"securityLead"`
}

// PlanMetadata describes the context a plan was generated in.
type PlanMetadata struct {
	Company       string `json:"company"`
	Industry      string `json:"industry"`
	EmployeeCount string `json:"employee_count"`
	GeneratedAt   string `json:"generated_at"`
}

// GeneratedPlan is a rendered IR plan with its metadata.
type GeneratedPlan struct {
	Markdown string       `json:"markdown"`
	Metadata PlanMetadata `json:"metadata"`
}
