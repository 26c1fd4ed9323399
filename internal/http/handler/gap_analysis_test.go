package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ksamaarora/vciso-backend/internal/analysis"
	"github.com/ksamaarora/vciso-backend/internal/http/handler"
	"github.com/ksamaarora/vciso-backend/internal/model"
	"github.com/ksamaarora/vciso-backend/internal/vectordb"
)

var validPlan = "## Executive Summary\n" + strings.Repeat("We respond to incidents quickly. ", 5)

func analyzeBody(plan, company string) *bytes.Buffer {
	body, _ := json.Marshal(map[string]string{
		"plan_markdown": plan,
		"company_name":  company,
	})
	return bytes.NewBuffer(body)
}

var _ = Describe("GapAnalysisHandler", func() {
	var (
		router *gin.Engine
		svc    *mockAnalysisService
		prober *mockRetrievalProber
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockAnalysisService{}
		prober = &mockRetrievalProber{}
		h := handler.NewGapAnalysisHandler(svc, prober)
		router.POST("/analyze", h.Analyze)
		router.GET("/health", h.Health)
	})

	Describe("Analyze", func() {
		It("returns 200 with the analysis result", func() {
			svc.analyzeFn = func(_ context.Context, _, companyName string) (*model.AnalysisResult, error) {
				return &model.AnalysisResult{
					CompanyName:  companyName,
					OverallScore: 85,
					Gaps: []model.Gap{{
						ID:       "executive-summary-gap-0",
						Severity: model.SeverityMedium,
					}},
					FrameworkCompliance: map[string]int{"NIST": 95, "CISA": 100, "SANS": 100},
				}, nil
			}

			req := httptest.NewRequest(http.MethodPost, "/analyze", analyzeBody(validPlan, "Acme Corp"))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["success"]).To(BeTrue())
			ga, ok := resp["gap_analysis"].(map[string]any)
			Expect(ok).To(BeTrue())
			Expect(ga["overall_score"]).To(BeNumerically("==", 85))
			Expect(ga["company_name"]).To(Equal("Acme Corp"))
		})

		It("returns 400 on malformed JSON", func() {
			req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewBufferString(`{`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 400 when the plan is too short for the binding", func() {
			req := httptest.NewRequest(http.MethodPost, "/analyze", analyzeBody("## Short\ntiny", "Acme Corp"))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 400 when the service rejects the plan", func() {
			svc.analyzeFn = func(_ context.Context, _, _ string) (*model.AnalysisResult, error) {
				return nil, analysis.ErrPlanTooShort
			}

			req := httptest.NewRequest(http.MethodPost, "/analyze", analyzeBody(validPlan, "Acme Corp"))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 500 when the analysis fails", func() {
			svc.analyzeFn = func(_ context.Context, _, _ string) (*model.AnalysisResult, error) {
				return nil, errors.New("model unavailable")
			}

			req := httptest.NewRequest(http.MethodPost, "/analyze", analyzeBody(validPlan, "Acme Corp"))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["error"]).To(Equal("failed to analyze plan"))
		})
	})

	Describe("Health", func() {
		It("returns 200 with index statistics", func() {
			prober.statsFn = func(_ context.Context) (vectordb.Stats, error) {
				return vectordb.Stats{NumDocuments: 1234}, nil
			}

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["status"]).To(Equal("healthy"))
			Expect(resp["vector_db_status"]).To(Equal("connected"))
			Expect(resp["total_vectors"]).To(BeNumerically("==", 1234))
		})

		It("returns 503 when the index is unreachable", func() {
			prober.statsFn = func(_ context.Context) (vectordb.Stats, error) {
				return vectordb.Stats{}, errors.New("connection refused")
			}

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
		})
	})
})
