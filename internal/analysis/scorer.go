package analysis

import (
	"fmt"
	"strings"

	"designmentor.app/api/internal/catalog"
)

// Maturity is the bounded design score plus a reason string suitable
// for showing directly to the user.
type Maturity struct {
	Score  int32
	Reason string
}

// Score counts how many maturity concepts the design covers. Each
// present concept contributes one point, so the score is always in
// [0,5]. The reason enumerates detected concepts in fixed catalog
// order.
func Score(matches MatchResult) Maturity {
	var score int32
	var present []string

	for _, concept := range catalog.MaturityConcepts() {
		if matches.Concepts[concept.Name] {
			score++
			present = append(present, "✓ "+concept.Label)
		}
	}

	var reason string
	switch {
	case score == 0:
		reason = "Needs work (0/5): no key architectural concepts detected yet. Start by adding API and database layers."
	case score <= 1:
		reason = fmt.Sprintf("Needs work (%d/5): %s", score, strings.Join(present, ", "))
	case score <= 3:
		reason = fmt.Sprintf("Good design (%d/5): %s", score, strings.Join(present, ", "))
	default:
		reason = fmt.Sprintf("Excellent design (%d/5): %s", score, strings.Join(present, ", "))
	}

	return Maturity{Score: score, Reason: reason}
}
