package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ksamaarora/vciso-backend/internal/http/handler"
	"github.com/ksamaarora/vciso-backend/internal/model"
)

func onboardingBody() *bytes.Buffer {
	body, _ := json.Marshal(map[string]any{
		"companyName":   "Acme Dental",
		"employeeCount": "11-50",
		"industry":      "healthcare",
		"tools": map[string]any{
			"email":         []string{"Google Workspace"},
			"storage":       []string{"Google Drive"},
			"communication": []string{"Slack"},
		},
		"currentSecurity": []string{"MFA"},
		"mainConcerns":    []string{"ransomware"},
		"securityLead":    map[string]string{"type": "dedicated", "name": "Sam"},
	})
	return bytes.NewBuffer(body)
}

var _ = Describe("PlanHandler", func() {
	var (
		router *gin.Engine
		svc    *mockPlanService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockPlanService{}
		h := handler.NewPlanHandler(svc)
		router.POST("/generate", h.Generate)
	})

	It("returns 200 with the generated plan", func() {
		svc.generateFn = func(_ context.Context, data model.OnboardingData) (*model.GeneratedPlan, error) {
			Expect(data.CompanyName).To(Equal("Acme Dental"))
			Expect(data.SecurityLead.Type).To(Equal(model.SecurityLeadDedicated))
			return &model.GeneratedPlan{
				Markdown: "# Incident Response Plan for Acme Dental",
				Metadata: model.PlanMetadata{Company: "Acme Dental"},
			}, nil
		}

		req := httptest.NewRequest(http.MethodPost, "/generate", onboardingBody())
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["success"]).To(BeTrue())
		Expect(resp["plan"]).To(Equal("# Incident Response Plan for Acme Dental"))
	})

	It("returns 400 when required fields are missing", func() {
		body, _ := json.Marshal(map[string]any{"companyName": "Acme Dental"})
		req := httptest.NewRequest(http.MethodPost, "/generate", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 400 for an unknown security lead type", func() {
		body, _ := json.Marshal(map[string]any{
			"companyName":   "Acme Dental",
			"employeeCount": "11-50",
			"industry":      "healthcare",
			"tools":         map[string]any{},
			"mainConcerns":  []string{"ransomware"},
			"securityLead":  map[string]string{"type": "intern"},
		})
		req := httptest.NewRequest(http.MethodPost, "/generate", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 500 when generation fails", func() {
		svc.generateFn = func(_ context.Context, _ model.OnboardingData) (*model.GeneratedPlan, error) {
			return nil, errors.New("rate limited")
		}

		req := httptest.NewRequest(http.MethodPost, "/generate", onboardingBody())
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["error"]).To(Equal("failed to generate plan"))
	})
})
