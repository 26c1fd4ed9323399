package dto

import "github.com/ksamaarora/vciso-backend/internal/model"

type AnalyzeRequest struct {
	PlanMarkdown string `json:"plan_markdown" binding:"required,min=100"`
	CompanyName  string `json:"company_name" binding:"required,min=2"`
}

type AnalyzeResponse struct {
	Success     bool                  `json:"success"`
	GapAnalysis *model.AnalysisResult `json:"gap_analysis"`
}

type GapAnalysisHealthResponse struct {
	Status         string `json:"status"`
	VectorDBStatus string `json:"vector_db_status"`
	TotalVectors   int64  `json:"total_vectors"`
}
