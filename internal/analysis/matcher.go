// Package analysis implements the design-analysis engine: keyword
// matching, maturity scoring, and suggestion reconciliation. Everything
// here is pure computation; persistence is the caller's job.
package analysis

import (
	"strings"

	"designmentor.app/api/internal/catalog"
)

// RuleMatch reports whether a concept bucket's keywords appear in the
// design text.
type RuleMatch struct {
	Rule    catalog.Rule
	Present bool
	Matched []string
}

// MatchResult is the outcome of scanning a design against the catalog.
type MatchResult struct {
	// Rules holds one entry per catalog bucket, in catalog order.
	Rules []RuleMatch
	// Concepts maps maturity concept name to presence.
	Concepts map[string]bool
}

// Match scans content against every catalog bucket and maturity
// concept. Matching is a case-insensitive substring test: a keyword is
// present if it occurs anywhere in the text. An empty blob matches
// nothing.
func Match(content string) MatchResult {
	lower := strings.ToLower(content)

	result := MatchResult{
		Concepts: make(map[string]bool),
	}

	for _, rule := range catalog.Rules() {
		matched := matchedKeywords(lower, rule.Keywords)
		result.Rules = append(result.Rules, RuleMatch{
			Rule:    rule,
			Present: len(matched) > 0,
			Matched: matched,
		})
	}

	for _, concept := range catalog.MaturityConcepts() {
		_, found := ContainsAny(lower, concept.Keywords)
		result.Concepts[concept.Name] = found
	}

	return result
}

// ContainsAny reports the first keyword found in the lowercased text.
func ContainsAny(lowerContent string, keywords []string) (string, bool) {
	if lowerContent == "" {
		return "", false
	}
	for _, kw := range keywords {
		if strings.Contains(lowerContent, kw) {
			return kw, true
		}
	}
	return "", false
}

func matchedKeywords(lowerContent string, keywords []string) []string {
	if lowerContent == "" {
		return nil
	}
	var matched []string
	for _, kw := range keywords {
		if strings.Contains(lowerContent, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}
