package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// ErrEmptyResponse is returned when the completion call succeeds but yields
// no usable text.
var ErrEmptyResponse = errors.New("empty response from model")

// Client wraps exactly one completion round-trip: system prompt + user prompt
// in, free-form text out. Responses are untrusted; callers own parsing and
// validation of whatever comes back.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
	Model() string
}

type Request struct {
	SystemPrompt string
	UserPrompt   string
	SchemaName   string   // Optional: name for the structured response format
	Schema       any      // Optional: JSON schema to request structured output
	MaxTokens    int      // 0 = configured default
	Temperature  *float64 // nil = configured default
}

type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float64
}

type client struct {
	openai      openai.Client
	model       string
	maxTokens   int
	temperature float64
}

func New(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o"
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 4000
	}

	return &client{
		openai:      openai.NewClient(opts...),
		model:       model,
		maxTokens:   maxTokens,
		temperature: cfg.Temperature,
	}, nil
}

func (c *client) Complete(ctx context.Context, req Request) (string, error) {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.maxTokens
	}
	temperature := c.temperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	params := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.SystemPrompt),
			openai.UserMessage(req.UserPrompt),
		},
		MaxTokens:   openai.Int(int64(maxTokens)),
		Temperature: openai.Float(temperature),
	}

	if req.Schema != nil {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        req.SchemaName,
					Description: openai.String("Structured response schema"),
					Schema:      req.Schema,
					Strict:      openai.Bool(true),
				},
			},
		}
	}

	start := time.Now()
	resp, err := c.openai.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai chat: %w", err)
	}

	logUsage(ctx, c.model, resp.Usage, time.Since(start))

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", ErrEmptyResponse
	}

	return content, nil
}

func (c *client) Model() string {
	return c.model
}

// logUsage records token counts and a cost estimate. Informational only;
// never affects control flow.
func logUsage(ctx context.Context, model string, usage openai.CompletionUsage, elapsed time.Duration) {
	slog.InfoContext(ctx, "llm usage",
		"model", model,
		"duration_ms", elapsed.Milliseconds(),
		"prompt_tokens", usage.PromptTokens,
		"completion_tokens", usage.CompletionTokens,
		"total_tokens", usage.TotalTokens,
		"estimated_cost_usd", fmt.Sprintf("%.4f", EstimateCost(model, usage.PromptTokens, usage.CompletionTokens)))
}

// GenerateSchema reflects a JSON schema from T for structured response formats.
func GenerateSchema[T any]() any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

// Temp returns a pointer to t, for per-call temperature overrides.
func Temp(t float64) *float64 {
	return &t
}
