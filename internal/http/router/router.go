package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ksamaarora/vciso-backend/internal/http/handler"
)

type Dependencies struct {
	Analysis handler.AnalysisService
	Prober   handler.RetrievalProber
	Plans    handler.PlanService
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "vCISO API - Incident Response Plan Generator",
			"version": "1.0.0",
		})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	v1 := router.Group("/api/v1")
	{
		planHandler := handler.NewPlanHandler(deps.Plans)
		plans := v1.Group("/plans")
		plans.POST("/generate", planHandler.Generate)

		gapHandler := handler.NewGapAnalysisHandler(deps.Analysis, deps.Prober)
		gap := v1.Group("/gap-analysis")
		gap.POST("/analyze", gapHandler.Analyze)
		gap.GET("/health", gapHandler.Health)
	}
}
