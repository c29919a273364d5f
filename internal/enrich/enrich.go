// Package enrich attaches LLM-generated explanations to rule-based
// suggestions. It is strictly optional: the analysis outcome is decided
// before enrichment runs, and any failure here leaves suggestions with
// their rule-based content only.
package enrich

import (
	"context"
	"fmt"

	"designmentor.app/api/core/config"
	"designmentor.app/api/internal/model"
)

// Provider constants for generator selection.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Explanation is the supplementary mentor text for one category.
type Explanation struct {
	Category        string `json:"category"`
	WhyItMatters    string `json:"why_it_matters"`
	InterviewAngle  string `json:"interview_angle"`
	ProductionAngle string `json:"production_angle"`
}

// ExplanationSet is the structured response schema for the LLM call.
type ExplanationSet struct {
	Explanations []Explanation `json:"explanations"`
}

// Generator produces explanations for a batch of missing components.
type Generator interface {
	Explain(ctx context.Context, design string, gaps []model.Suggestion) (map[model.SuggestionCategory]Explanation, error)
	Model() string
}

// New creates a Generator for the configured provider. Defaults to
// OpenAI when no provider is set.
func New(cfg config.EnrichmentConfig) (Generator, error) {
	provider := cfg.Provider
	if provider == "" {
		provider = ProviderOpenAI
	}

	switch provider {
	case ProviderOpenAI:
		return newOpenAIGenerator(cfg)
	case ProviderAnthropic:
		return newAnthropicGenerator(cfg)
	default:
		return nil, fmt.Errorf("unsupported enrichment provider: %s", provider)
	}
}

// Apply appends explanations to matching suggestion drafts in place
// and returns how many were enriched. Suggestions whose category has
// no explanation are left untouched.
func Apply(suggestions []model.Suggestion, explanations map[model.SuggestionCategory]Explanation) int {
	enriched := 0
	for i := range suggestions {
		exp, ok := explanations[suggestions[i].Category]
		if !ok {
			continue
		}
		suggestions[i].Description = fmt.Sprintf(
			"%s\n\n**Why It Matters:** %s\n\n**Interview Perspective:** %s\n\n**Production Reality:** %s",
			suggestions[i].Description,
			exp.WhyItMatters,
			exp.InterviewAngle,
			exp.ProductionAngle,
		)
		enriched++
	}
	return enriched
}
