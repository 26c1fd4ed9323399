package rag_test

import (
	"context"

	"github.com/ksamaarora/vciso-backend/internal/vectordb"
)

type mockEmbedder struct {
	embedFn      func(ctx context.Context, text string) ([]float64, error)
	embedBatchFn func(ctx context.Context, texts []string) ([][]float64, error)
}

func (m *mockEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	if m.embedFn != nil {
		return m.embedFn(ctx, text)
	}
	return []float64{0.1, 0.2, 0.3}, nil
}

func (m *mockEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	if m.embedBatchFn != nil {
		return m.embedBatchFn(ctx, texts)
	}
	return nil, nil
}

type mockIndex struct {
	upsertFn func(ctx context.Context, records []vectordb.Record) error
	queryFn  func(ctx context.Context, vector []float64, topK int, sourceFilter string) ([]vectordb.Match, error)
	statsFn  func(ctx context.Context) (vectordb.Stats, error)
}

func (m *mockIndex) Upsert(ctx context.Context, records []vectordb.Record) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, records)
	}
	return nil
}

func (m *mockIndex) Query(ctx context.Context, vector []float64, topK int, sourceFilter string) ([]vectordb.Match, error) {
	if m.queryFn != nil {
		return m.queryFn(ctx, vector, topK, sourceFilter)
	}
	return nil, nil
}

func (m *mockIndex) Stats(ctx context.Context) (vectordb.Stats, error) {
	if m.statsFn != nil {
		return m.statsFn(ctx)
	}
	return vectordb.Stats{}, nil
}
