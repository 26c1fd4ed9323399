package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ksamaarora/vciso-backend/internal/analysis"
	"github.com/ksamaarora/vciso-backend/internal/http/dto"
	"github.com/ksamaarora/vciso-backend/internal/model"
	"github.com/ksamaarora/vciso-backend/internal/vectordb"
)

// AnalysisService runs a full gap analysis for one plan.
type AnalysisService interface {
	Analyze(ctx context.Context, planMarkdown, companyName string) (*model.AnalysisResult, error)
}

// RetrievalProber exposes the vector index statistics used by the readiness probe.
type RetrievalProber interface {
	Stats(ctx context.Context) (vectordb.Stats, error)
}

type GapAnalysisHandler struct {
	service AnalysisService
	prober  RetrievalProber
}

func NewGapAnalysisHandler(service AnalysisService, prober RetrievalProber) *GapAnalysisHandler {
	return &GapAnalysisHandler{service: service, prober: prober}
}

func (h *GapAnalysisHandler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Analyze(ctx, req.PlanMarkdown, req.CompanyName)
	if err != nil {
		if errors.Is(err, analysis.ErrPlanTooShort) || errors.Is(err, analysis.ErrCompanyNameRequired) {
			slog.WarnContext(ctx, "analysis rejected", "error", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.ErrorContext(ctx, "gap analysis failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to analyze plan"})
		return
	}

	c.JSON(http.StatusOK, dto.AnalyzeResponse{
		Success:     true,
		GapAnalysis: result,
	})
}

func (h *GapAnalysisHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.prober.Stats(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "retrieval health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "gap analysis service unhealthy"})
		return
	}

	c.JSON(http.StatusOK, dto.GapAnalysisHealthResponse{
		Status:         "healthy",
		VectorDBStatus: "connected",
		TotalVectors:   stats.NumDocuments,
	})
}
