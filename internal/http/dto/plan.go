package dto

import "github.com/ksamaarora/vciso-backend/internal/model"

// Onboarding payloads keep the frontend's camelCase field names.

type ToolsDataRequest struct {
	Email         []string `json:"email"`
	Storage       []string `json:"storage"`
	Communication []string `json:"communication"`
	CRM           []string `json:"crm"`
}

type SecurityLeadRequest struct {
	Type string `json:"type" binding:"required,oneof=dedicated consultant owner none"`
	Name string `json:"name,omitempty"`
}

type OnboardingRequest struct {
	CompanyName     string              `json:"companyName" binding:"required,min=2"`
	EmployeeCount   string              `json:"employeeCount" binding:"required"`
	Industry        string              `json:"industry" binding:"required"`
	Tools           ToolsDataRequest    `json:"tools" binding:"required"`
	CurrentSecurity []string            `json:"currentSecurity"`
	MainConcerns    []string            `json:"mainConcerns" binding:"required,min=1"`
	SecurityLead    SecurityLeadRequest `json:"securityLead" binding:"required"`
}

func (r OnboardingRequest) ToOnboardingData() model.OnboardingData {
	return model.OnboardingData{
		CompanyName:   r.CompanyName,
		EmployeeCount: r.EmployeeCount,
		Industry:      r.Industry,
		Tools: model.ToolsData{
			Email:         r.Tools.Email,
			Storage:       r.Tools.Storage,
			Communication: r.Tools.Communication,
			CRM:           r.Tools.CRM,
		},
		CurrentSecurity: r.CurrentSecurity,
		MainConcerns:    r.MainConcerns,
		SecurityLead: model.SecurityLead{
			Type: model.SecurityLeadType(r.SecurityLead.Type),
			Name: r.SecurityLead.Name,
		},
	}
}

type PlanResponse struct {
	Success  bool               `json:"success"`
	Plan     string             `json:"plan"`
	Metadata model.PlanMetadata `json:"metadata"`
}
