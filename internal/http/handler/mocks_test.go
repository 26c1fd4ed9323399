package handler_test

import (
	"context"

	"github.com/ksamaarora/vciso-backend/internal/model"
	"github.com/ksamaarora/vciso-backend/internal/vectordb"
)

type mockAnalysisService struct {
	analyzeFn func(ctx context.Context, planMarkdown, companyName string) (*model.AnalysisResult, error)
}

func (m *mockAnalysisService) Analyze(ctx context.Context, planMarkdown, companyName string) (*model.AnalysisResult, error) {
	if m.analyzeFn != nil {
		return m.analyzeFn(ctx, planMarkdown, companyName)
	}
	return nil, nil
}

type mockRetrievalProber struct {
	statsFn func(ctx context.Context) (vectordb.Stats, error)
}

func (m *mockRetrievalProber) Stats(ctx context.Context) (vectordb.Stats, error) {
	if m.statsFn != nil {
		return m.statsFn(ctx)
	}
	return vectordb.Stats{}, nil
}

type mockPlanService struct {
	generateFn func(ctx context.Context, data model.OnboardingData) (*model.GeneratedPlan, error)
}

func (m *mockPlanService) Generate(ctx context.Context, data model.OnboardingData) (*model.GeneratedPlan, error) {
	if m.generateFn != nil {
		return m.generateFn(ctx, data)
	}
	return nil, nil
}
