// Command indexer chunks the framework PDFs, embeds the chunks and uploads
// them to the vector index.
//
// Usage:
//
//	indexer [-dir data/frameworks] [-recreate]
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/ksamaarora/vciso-backend/common/logger"
	"github.com/ksamaarora/vciso-backend/core/config"
	"github.com/ksamaarora/vciso-backend/internal/embedding"
	"github.com/ksamaarora/vciso-backend/internal/ingest"
	"github.com/ksamaarora/vciso-backend/internal/vectordb"
)

func main() {
	var (
		dir      = flag.String("dir", "", "frameworks directory (default from config)")
		recreate = flag.Bool("recreate", false, "drop and recreate the collection before indexing")
	)
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}
	logger.Setup(cfg)

	frameworksDir := cfg.Frameworks.Dir
	if *dir != "" {
		frameworksDir = *dir
	}

	embedder, err := embedding.New(embedding.Config{
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
		Model:   cfg.Embedding.Model,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create embedding provider", "error", err)
		os.Exit(1)
	}

	index := vectordb.NewTypesense(vectordb.Config{
		URL:        cfg.Typesense.URL,
		APIKey:     cfg.Typesense.APIKey,
		Collection: cfg.Typesense.Collection,
		Dimension:  cfg.Embedding.Dimension,
	})

	if *recreate {
		slog.InfoContext(ctx, "dropping collection", "collection", cfg.Typesense.Collection)
		if err := index.Drop(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to drop collection", "error", err)
			os.Exit(1)
		}
	}
	if err := index.EnsureCollection(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to ensure collection", "error", err)
		os.Exit(1)
	}

	indexer := ingest.NewIndexer(embedder, index, frameworksDir)
	if err := indexer.IndexAll(ctx); err != nil {
		slog.ErrorContext(ctx, "indexing failed", "error", err)
		os.Exit(1)
	}

	slog.InfoContext(ctx, "indexing complete")
}
