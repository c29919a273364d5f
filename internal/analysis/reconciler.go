package analysis

import (
	"strings"
	"time"

	"designmentor.app/api/internal/catalog"
	"designmentor.app/api/internal/model"
)

// Decision is the outcome of reconciling a project's suggestion set
// against a new design revision. Addressed holds updated copies of the
// suggestions that transitioned to ADDRESSED during this run only;
// Created holds new OPEN suggestion drafts (without IDs, which the
// store assigns on insert).
type Decision struct {
	Addressed []model.Suggestion
	Created   []model.Suggestion
}

// Reconcile runs the two reconciliation passes.
//
// Auto-resolution: every OPEN suggestion whose trigger keywords now
// appear in the text becomes ADDRESSED, stamped with the new version.
// ADDRESSED and IGNORED are terminal for automatic processing, so
// re-running on unchanged text is a no-op.
//
// Gap detection: for every catalog bucket absent from the text, a new
// OPEN suggestion is drafted unless the project already has a
// suggestion for that bucket in any status. An IGNORED bucket is never
// re-flagged.
func Reconcile(content string, matches MatchResult, existing []model.Suggestion, newVersion int32, now time.Time) Decision {
	lower := strings.ToLower(content)
	var decision Decision

	for _, s := range existing {
		if s.Status != model.SuggestionStatusOpen {
			continue
		}
		keywords := s.TriggerKeywords
		if len(keywords) == 0 {
			// Older rows may predate keyword storage; fall back
			// to the current catalog entry.
			if rule, ok := catalog.ByKey(s.RuleKey); ok {
				keywords = rule.Keywords
			}
		}
		if _, found := ContainsAny(lower, keywords); found {
			addressed := s
			addressed.Status = model.SuggestionStatusAddressed
			addressed.AddressedVersion = &newVersion
			addressedAt := now
			addressed.AddressedAt = &addressedAt
			decision.Addressed = append(decision.Addressed, addressed)
		}
	}

	covered := make(map[string]bool, len(existing))
	for _, s := range existing {
		covered[s.RuleKey] = true
	}

	for _, rm := range matches.Rules {
		if rm.Present || covered[rm.Rule.Key] {
			continue
		}
		decision.Created = append(decision.Created, model.Suggestion{
			RuleKey:         rm.Rule.Key,
			Title:           rm.Rule.Title,
			Description:     rm.Rule.Description,
			Category:        rm.Rule.Category,
			Severity:        rm.Rule.Severity,
			Status:          model.SuggestionStatusOpen,
			TriggerKeywords: rm.Rule.Keywords,
			CreatedVersion:  newVersion,
		})
	}

	return decision
}
