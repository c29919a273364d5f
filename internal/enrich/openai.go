package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"designmentor.app/api/core/config"
	"designmentor.app/api/internal/model"
)

type openaiGenerator struct {
	client    openai.Client
	model     string
	maxTokens int
}

func newOpenAIGenerator(cfg config.EnrichmentConfig) (Generator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	m := cfg.Model
	if m == "" {
		m = "gpt-4o-mini"
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 2000
	}

	return &openaiGenerator{
		client:    openai.NewClient(opts...),
		model:     m,
		maxTokens: maxTokens,
	}, nil
}

func (g *openaiGenerator) Explain(ctx context.Context, design string, gaps []model.Suggestion) (map[model.SuggestionCategory]Explanation, error) {
	schemaParam := openai.ResponseFormatJSONSchemaJSONSchemaParam{
		Name:        "design_explanations",
		Description: openai.String("Structured response schema"),
		Schema:      generateSchema[ExplanationSet](),
		Strict:      openai.Bool(true),
	}

	params := openai.ChatCompletionNewParams{
		Model: g.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(buildUserPrompt(design, gaps)),
		},
		MaxTokens: openai.Int(int64(g.maxTokens)),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: schemaParam,
			},
		},
	}

	start := time.Now()
	resp, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai chat: %w", err)
	}

	slog.DebugContext(ctx, "enrichment chat completed",
		"model", g.model,
		"duration_ms", time.Since(start).Milliseconds(),
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens)

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	var set ExplanationSet
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &set); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return mapByCategory(set), nil
}

func (g *openaiGenerator) Model() string {
	return g.model
}

func generateSchema[T any]() any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}
