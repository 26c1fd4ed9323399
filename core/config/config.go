package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env        string
	Port       string
	OTel       OTelConfig
	OpenAI     OpenAIConfig
	Embedding  EmbeddingConfig
	Typesense  TypesenseConfig
	RAG        RAGConfig
	Frameworks FrameworksConfig
}

type OTelConfig struct {
	Endpoint       string
	Headers        string
	ServiceName    string
	ServiceVersion string
	Environment    string
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

type OpenAIConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float64
}

type EmbeddingConfig struct {
	Model     string
	Dimension int
}

type TypesenseConfig struct {
	URL        string
	APIKey     string
	Collection string
}

type RAGConfig struct {
	TopK                int
	SimilarityThreshold float64
}

type FrameworksConfig struct {
	Dir string
}

// Load loads configuration from environment variables.
// In development it also reads a .env file if one is present.
func Load() (Config, error) {
	if getEnv("VCISO_ENV", "development") == "development" {
		_ = godotenv.Load(".env")
	}

	cfg := Config{
		Env:  getEnv("VCISO_ENV", "development"),
		Port: getEnv("PORT", "8000"),
		OTel: OTelConfig{
			Endpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:        getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "vciso-backend"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "dev"),
			Environment:    getEnv("VCISO_ENV", "development"),
		},
		OpenAI: OpenAIConfig{
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			BaseURL:     getEnv("OPENAI_BASE_URL", ""),
			Model:       getEnv("OPENAI_MODEL", "gpt-4o"),
			MaxTokens:   getEnvInt("OPENAI_MAX_TOKENS", 4000),
			Temperature: getEnvFloat("OPENAI_TEMPERATURE", 0.7),
		},
		Embedding: EmbeddingConfig{
			Model:     getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
			Dimension: getEnvInt("EMBEDDING_DIMENSION", 1536),
		},
		Typesense: TypesenseConfig{
			URL:        getEnv("TYPESENSE_URL", "http://localhost:8108"),
			APIKey:     getEnv("TYPESENSE_API_KEY", ""),
			Collection: getEnv("TYPESENSE_COLLECTION", "vciso-frameworks"),
		},
		RAG: RAGConfig{
			TopK:                getEnvInt("RAG_TOP_K", 5),
			SimilarityThreshold: getEnvFloat("RAG_SIMILARITY_THRESHOLD", 0.7),
		},
		Frameworks: FrameworksConfig{
			Dir: getEnv("FRAMEWORKS_DIR", "data/frameworks"),
		},
	}

	if cfg.OpenAI.APIKey == "" {
		return Config{}, fmt.Errorf("OPENAI_API_KEY is required")
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
