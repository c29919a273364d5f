package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"designmentor.app/api/core/config"
	"designmentor.app/api/internal/model"
)

type anthropicGenerator struct {
	client    anthropic.Client
	model     string
	maxTokens int
}

func newAnthropicGenerator(cfg config.EnrichmentConfig) (Generator, error) {
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
		m = "claude-sonnet-4-5-20250514"
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 2000
	}

	return &anthropicGenerator{
		client:    anthropic.NewClient(opts...),
		model:     m,
		maxTokens: maxTokens,
	}, nil
}

func (g *anthropicGenerator) Explain(ctx context.Context, design string, gaps []model.Suggestion) (map[model.SuggestionCategory]Explanation, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: int64(g.maxTokens),
		System: []anthropic.TextBlockParam{
			{Type: "text", Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			{
				Role: anthropic.MessageParamRoleUser,
				Content: []anthropic.ContentBlockParamUnion{
					anthropic.NewTextBlock(buildUserPrompt(design, gaps)),
				},
			},
		},
	}

	start := time.Now()
	resp, err := g.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic chat: %w", err)
	}

	slog.DebugContext(ctx, "enrichment chat completed",
		"model", g.model,
		"duration_ms", time.Since(start).Milliseconds(),
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens)

	var content string
	for _, block := range resp.Content {
		if block.Type == "text" {
			content += block.Text
		}
	}
	if content == "" {
		return nil, fmt.Errorf("empty response")
	}

	var set ExplanationSet
	if err := json.Unmarshal([]byte(content), &set); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return mapByCategory(set), nil
}

func (g *anthropicGenerator) Model() string {
	return g.model
}
