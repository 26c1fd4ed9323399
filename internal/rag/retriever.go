package rag

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ksamaarora/vciso-backend/common/logger"
	"github.com/ksamaarora/vciso-backend/internal/embedding"
	"github.com/ksamaarora/vciso-backend/internal/model"
	"github.com/ksamaarora/vciso-backend/internal/vectordb"
)

// Retriever finds framework guidance passages relevant to a query.
// An empty result is a valid outcome ("no guidance found"), distinct from a
// retrieval failure.
type Retriever interface {
	// Retrieve returns passages ranked by similarity, restricted to the given
	// framework source when framework is non-empty, and filtered to passages
	// scoring at or above the similarity threshold.
	Retrieve(ctx context.Context, query string, topK int, framework string) ([]model.Passage, error)
}

type Config struct {
	TopK                int
	SimilarityThreshold float64
}

type retriever struct {
	embedder  embedding.Provider
	index     vectordb.Index
	topK      int
	threshold float64
}

func New(embedder embedding.Provider, index vectordb.Index, cfg Config) Retriever {
	topK := cfg.TopK
	if topK == 0 {
		topK = 5
	}
	return &retriever{
		embedder:  embedder,
		index:     index,
		topK:      topK,
		threshold: cfg.SimilarityThreshold,
	}
}

func (r *retriever) Retrieve(ctx context.Context, query string, topK int, framework string) ([]model.Passage, error) {
	if topK <= 0 {
		topK = r.topK
	}

	vector, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	matches, err := r.index.Query(ctx, vector, topK, framework)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}

	// Threshold is inclusive: a passage scoring exactly at the threshold stays.
	passages := make([]model.Passage, 0, len(matches))
	for _, m := range matches {
		if m.Score < r.threshold {
			continue
		}
		passages = append(passages, model.Passage{
			ID:      m.ID,
			Source:  m.Metadata.Source,
			Section: m.Metadata.Section,
			Page:    m.Metadata.Page,
			Text:    m.Metadata.Text,
			Score:   m.Score,
		})
	}

	if len(passages) == 0 {
		slog.WarnContext(ctx, "no passages above similarity threshold",
			"threshold", r.threshold,
			"query", logger.Truncate(query, 120))
	}

	return passages, nil
}
