package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/ksamaarora/vciso-backend/common/id"
	"github.com/ksamaarora/vciso-backend/common/logger"
	"github.com/ksamaarora/vciso-backend/common/otel"
	"github.com/ksamaarora/vciso-backend/core/config"
	"github.com/ksamaarora/vciso-backend/internal/analysis"
	"github.com/ksamaarora/vciso-backend/internal/embedding"
	"github.com/ksamaarora/vciso-backend/internal/guardrails"
	"github.com/ksamaarora/vciso-backend/internal/http/middleware"
	httprouter "github.com/ksamaarora/vciso-backend/internal/http/router"
	"github.com/ksamaarora/vciso-backend/internal/llm"
	"github.com/ksamaarora/vciso-backend/internal/plangen"
	"github.com/ksamaarora/vciso-backend/internal/rag"
	"github.com/ksamaarora/vciso-backend/internal/vectordb"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	slog.InfoContext(ctx, "vciso backend starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)

	if err := id.Init(1); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	oracle, err := llm.New(llm.Config{
		APIKey:      cfg.OpenAI.APIKey,
		BaseURL:     cfg.OpenAI.BaseURL,
		Model:       cfg.OpenAI.Model,
		MaxTokens:   cfg.OpenAI.MaxTokens,
		Temperature: cfg.OpenAI.Temperature,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create llm client", "error", err)
		os.Exit(1)
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
	if err := index.EnsureCollection(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to ensure vector collection", "error", err)
		os.Exit(1)
	}
	slog.InfoContext(ctx, "vector index ready", "collection", cfg.Typesense.Collection)

	retriever := rag.New(embedder, index, rag.Config{
		TopK:                cfg.RAG.TopK,
		SimilarityThreshold: cfg.RAG.SimilarityThreshold,
	})
	analyzer := analysis.New(retriever, oracle)
	generator := plangen.New(oracle, guardrails.NewRedactor())

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	httprouter.SetupRoutes(router, httprouter.Dependencies{
		Analysis: analyzer,
		Prober:   index,
		Plans:    generator,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}
