package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/ksamaarora/vciso-backend/common/id"
	"github.com/ksamaarora/vciso-backend/common/logger"
	"github.com/ksamaarora/vciso-backend/internal/llm"
	"github.com/ksamaarora/vciso-backend/internal/model"
	"github.com/ksamaarora/vciso-backend/internal/rag"
)

var (
	ErrPlanTooShort        = errors.New("plan text must be at least 100 characters")
	ErrCompanyNameRequired = errors.New("company name must be at least 2 characters")
)

const (
	minPlanLength    = 100
	minCompanyLength = 2

	// Per-section retrieval settings. Top-k is a deliberate override,
	// independent of the retriever's configured default.
	sectionQueryChars = 500
	sectionTopK       = 5

	// Low temperature favors consistent judgments over creative variation.
	analysisTemperature = 0.3

	sectionConcurrency = 4
)

// Analyzer compares an IR plan against indexed framework guidance section by
// section and aggregates the findings into a scored report.
type Analyzer struct {
	retriever rag.Retriever
	oracle    llm.Client
}

func New(retriever rag.Retriever, oracle llm.Client) *Analyzer {
	return &Analyzer{retriever: retriever, oracle: oracle}
}

// sectionPayload is the wire shape the model is asked to return for one
// section. It is untrusted input: fields are validated before any Gap is built.
type sectionPayload struct {
	Gaps      []gapPayload `json:"gaps"`
	Strengths []string     `json:"strengths"`
}

type gapPayload struct {
	Severity            string   `json:"severity" jsonschema:"enum=critical,enum=high,enum=medium,enum=low"`
	Description         string   `json:"description"`
	Recommendation      string   `json:"recommendation"`
	FrameworkReferences []string `json:"framework_references"`
	EstimatedEffort     string   `json:"estimated_effort"`
}

type sectionOutcome struct {
	gaps      []model.Gap
	strengths []string
}

// Analyze runs the full gap analysis for one plan. Section failures are
// isolated: a section that cannot be retrieved, prompted, or parsed
// contributes nothing, and the run still returns a complete result.
func (a *Analyzer) Analyze(ctx context.Context, planMarkdown, companyName string) (*model.AnalysisResult, error) {
	if len(strings.TrimSpace(planMarkdown)) < minPlanLength {
		return nil, ErrPlanTooShort
	}
	if len(strings.TrimSpace(companyName)) < minCompanyLength {
		return nil, ErrCompanyNameRequired
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		RunID:     logger.Ptr(id.New()),
		Company:   logger.Ptr(companyName),
		Component: "vciso.analysis.analyzer",
	})

	sections := SplitSections(planMarkdown)
	slog.InfoContext(ctx, "starting gap analysis", "sections", len(sections))

	// Sections are independent: each owns its retrieval, oracle call and
	// parse. Outcomes land in an index-addressed slice so the final gap list
	// keeps document order no matter which section finishes first.
	outcomes := make([]sectionOutcome, len(sections))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(sectionConcurrency)
	for i, section := range sections {
		g.Go(func() error {
			outcome, err := a.analyzeSection(gctx, section)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				slog.ErrorContext(gctx, "section analysis failed",
					"section", section.Title, "error", err)
				return nil
			}
			outcomes[i] = outcome
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("gap analysis aborted: %w", err)
	}

	var (
		allGaps      = make([]model.Gap, 0)
		allStrengths = make([]string, 0)
	)
	for _, o := range outcomes {
		allGaps = append(allGaps, o.gaps...)
		allStrengths = append(allStrengths, o.strengths...)
	}

	result := &model.AnalysisResult{
		CompanyName:         companyName,
		AnalysisTimestamp:   time.Now().UTC().Format(time.RFC3339),
		OverallScore:        overallScore(allGaps),
		Gaps:                allGaps,
		Strengths:           allStrengths,
		PriorityActions:     priorityActions(allGaps),
		FrameworkCompliance: frameworkCompliance(allGaps),
	}

	slog.InfoContext(ctx, "gap analysis complete",
		"overall_score", result.OverallScore,
		"gaps", len(result.Gaps),
		"strengths", len(result.Strengths))

	return result, nil
}

func (a *Analyzer) analyzeSection(ctx context.Context, section Section) (sectionOutcome, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{Section: logger.Ptr(section.Title)})

	query := fmt.Sprintf("%s: %s", section.Title, firstChars(section.Content, sectionQueryChars))
	passages, err := a.retriever.Retrieve(ctx, query, sectionTopK, "")
	if err != nil {
		return sectionOutcome{}, fmt.Errorf("retrieving guidance: %w", err)
	}

	// No guidance is a valid outcome, not an error: the section is skipped.
	if len(passages) == 0 {
		slog.WarnContext(ctx, "no guidance found for section, skipping")
		return sectionOutcome{}, nil
	}

	frameworkContext := rag.FormatContext(passages)

	response, err := a.oracle.Complete(ctx, llm.Request{
		SystemPrompt: gapAnalysisSystemPrompt,
		UserPrompt:   buildAnalysisPrompt(section.Title, section.Content, frameworkContext),
		SchemaName:   "section_gap_analysis",
		Schema:       llm.GenerateSchema[sectionPayload](),
		Temperature:  llm.Temp(analysisTemperature),
	})
	if err != nil {
		return sectionOutcome{}, fmt.Errorf("prompting model: %w", err)
	}

	outcome, err := parseSectionResponse(section.Title, response)
	if err != nil {
		return sectionOutcome{}, fmt.Errorf("parsing model response: %w", err)
	}

	slog.DebugContext(ctx, "section analyzed",
		"passages", len(passages),
		"gaps", len(outcome.gaps),
		"strengths", len(outcome.strengths))

	return outcome, nil
}

// parseSectionResponse validates the model's raw text as a section judgment.
// A malformed document or any malformed gap entry fails the whole section.
func parseSectionResponse(sectionTitle, raw string) (sectionOutcome, error) {
	var payload sectionPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return sectionOutcome{}, fmt.Errorf("invalid JSON: %w", err)
	}

	slug := strings.ReplaceAll(strings.ToLower(sectionTitle), " ", "-")
	gaps := make([]model.Gap, 0, len(payload.Gaps))
	for i, g := range payload.Gaps {
		severity, err := model.ParseSeverity(g.Severity)
		if err != nil {
			return sectionOutcome{}, fmt.Errorf("gap %d: %w", i, err)
		}
		if g.Description == "" || g.Recommendation == "" {
			return sectionOutcome{}, fmt.Errorf("gap %d: missing description or recommendation", i)
		}
		refs := g.FrameworkReferences
		if refs == nil {
			refs = []string{}
		}
		gaps = append(gaps, model.Gap{
			ID:                  fmt.Sprintf("%s-gap-%d", slug, i),
			Section:             sectionTitle,
			Severity:            severity,
			Description:         g.Description,
			Recommendation:      g.Recommendation,
			FrameworkReferences: refs,
			EstimatedEffort:     g.EstimatedEffort,
		})
	}

	return sectionOutcome{gaps: gaps, strengths: payload.Strengths}, nil
}

// firstChars truncates without splitting a multi-byte rune at the cut.
func firstChars(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
