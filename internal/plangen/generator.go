package plangen

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ksamaarora/vciso-backend/common/logger"
	"github.com/ksamaarora/vciso-backend/internal/guardrails"
	"github.com/ksamaarora/vciso-backend/internal/llm"
	"github.com/ksamaarora/vciso-backend/internal/model"
)

// Sections every generated plan must contain. A miss is logged, not fatal:
// the model occasionally renames a heading and the plan is still usable.
var requiredSections = []string{
	"Executive Summary",
	"Incident Response Team",
	"Response Procedures",
	"Communication Plan",
}

// Generator produces tailored IR plans from onboarding data.
type Generator struct {
	oracle   llm.Client
	redactor *guardrails.Redactor
}

func New(oracle llm.Client, redactor *guardrails.Redactor) *Generator {
	return &Generator{oracle: oracle, redactor: redactor}
}

// Generate renders one IR plan: meta-prompt, single model call at the
// configured default temperature, PII redaction, structure check.
func (g *Generator) Generate(ctx context.Context, data model.OnboardingData) (*model.GeneratedPlan, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Company:   logger.Ptr(data.CompanyName),
		Component: "vciso.plangen.generator",
	})
	slog.InfoContext(ctx, "generating plan", "industry", data.Industry, "employee_count", data.EmployeeCount)

	markdown, err := g.oracle.Complete(ctx, llm.Request{
		SystemPrompt: systemPrompt,
		UserPrompt:   buildPrompt(data),
	})
	if err != nil {
		return nil, fmt.Errorf("generating plan: %w", err)
	}

	clean := g.redactor.Redact(markdown)
	g.checkStructure(ctx, clean)

	return &model.GeneratedPlan{
		Markdown: clean,
		Metadata: model.PlanMetadata{
			Company:       data.CompanyName,
			Industry:      data.Industry,
			EmployeeCount: data.EmployeeCount,
			GeneratedAt:   time.Now().UTC().Format(time.RFC3339),
		},
	}, nil
}

func (g *Generator) checkStructure(ctx context.Context, plan string) {
	var missing []string
	for _, section := range requiredSections {
		if !strings.Contains(plan, section) {
			missing = append(missing, section)
		}
	}
	if len(missing) > 0 {
		slog.WarnContext(ctx, "generated plan missing sections", "missing", missing)
	}
}
