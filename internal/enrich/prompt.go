package enrich

import (
	"fmt"
	"strings"

	"designmentor.app/api/internal/model"
)

const systemPrompt = `You are a system design expert and mentor. Your role is to explain WHY certain components matter in system design, helping students understand the reasoning behind best practices.

CRITICAL RULES:
1. You ONLY explain components that are already identified as missing (provided to you).
2. You NEVER invent or suggest additional missing components.
3. You ALWAYS respond with valid JSON only - no markdown, no extra text.
4. Your explanations should be educational, not generic.
5. Focus on interview preparation and production realities.

If you cannot provide explanations, return: {"explanations": []}`

// maxDesignExcerpt bounds how much of the design text goes into the
// prompt.
const maxDesignExcerpt = 2000

func buildUserPrompt(design string, gaps []model.Suggestion) string {
	var components strings.Builder
	for _, s := range gaps {
		fmt.Fprintf(&components, "- %s: %s\n", s.Category, s.Title)
	}

	excerpt := design
	if len(excerpt) > maxDesignExcerpt {
		excerpt = excerpt[:maxDesignExcerpt] + "... [truncated]"
	}

	return fmt.Sprintf(`Analyze the following system design and explain why the identified missing components are important.

## User's System Design:
%s

## Missing Components (identified by rule-based analysis):
%s
## Your Task:
For EACH missing component listed above, provide:
1. why_it_matters: Why is this component important? (educational explanation)
2. interview_angle: How might an interviewer ask about this?
3. production_angle: What happens in production without this?

RESPOND WITH VALID JSON ONLY. No markdown, no explanations outside JSON.`, excerpt, components.String())
}

// mapByCategory indexes explanations by suggestion category, dropping
// entries with categories the model invented.
func mapByCategory(set ExplanationSet) map[model.SuggestionCategory]Explanation {
	valid := map[model.SuggestionCategory]bool{
		model.CategoryCaching:     true,
		model.CategoryScalability: true,
		model.CategorySecurity:    true,
		model.CategoryDatabase:    true,
		model.CategoryReliability: true,
		model.CategoryPerformance: true,
		model.CategoryAPIDesign:   true,
	}

	out := make(map[model.SuggestionCategory]Explanation, len(set.Explanations))
	for _, exp := range set.Explanations {
		cat := model.SuggestionCategory(exp.Category)
		if valid[cat] {
			out[cat] = exp
		}
	}
	return out
}
