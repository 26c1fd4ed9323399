package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ksamaarora/vciso-backend/internal/http/dto"
	"github.com/ksamaarora/vciso-backend/internal/model"
)

// PlanService generates IR plans from onboarding data.
type PlanService interface {
	Generate(ctx context.Context, data model.OnboardingData) (*model.GeneratedPlan, error)
}

type PlanHandler struct {
	service PlanService
}

func NewPlanHandler(service PlanService) *PlanHandler {
	return &PlanHandler{service: service}
}

func (h *PlanHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.service.Generate(ctx, req.ToOnboardingData())
	if err != nil {
		slog.ErrorContext(ctx, "plan generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate plan"})
		return
	}

	c.JSON(http.StatusOK, dto.PlanResponse{
		Success:  true,
		Plan:     plan.Markdown,
		Metadata: plan.Metadata,
	})
}
