package analysis_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"designmentor.app/api/internal/analysis"
)

var _ = Describe("Score", func() {
	It("scores an empty design as 0 with no checkmarks", func() {
		m := analysis.Score(analysis.Match(""))
		Expect(m.Score).To(BeEquivalentTo(0))
		Expect(m.Reason).To(HavePrefix("Needs work (0/5)"))
		Expect(m.Reason).NotTo(ContainSubstring("✓"))
	})

	It("adds one point per present concept", func() {
		m := analysis.Score(analysis.Match("a REST API storing data in Postgres"))
		Expect(m.Score).To(BeEquivalentTo(2))
		Expect(m.Reason).To(HavePrefix("Good design (2/5)"))
		Expect(m.Reason).To(ContainSubstring("✓ API/Communication layer defined"))
		Expect(m.Reason).To(ContainSubstring("✓ Storage strategy present"))
	})

	It("caps the score at 5", func() {
		full := "REST API, Postgres database, Redis cache, horizontal scaling with a load balancer, JWT auth and rate limiting"
		m := analysis.Score(analysis.Match(full))
		Expect(m.Score).To(BeEquivalentTo(5))
		Expect(m.Reason).To(HavePrefix("Excellent design (5/5)"))
	})

	It("lists concepts in fixed catalog order", func() {
		m := analysis.Score(analysis.Match("JWT auth in front of a Redis cache"))
		// CACHE precedes SAFETY in catalog order.
		cacheIdx := indexOf(m.Reason, "Caching layer considered")
		safetyIdx := indexOf(m.Reason, "Safety & Integrity measures")
		Expect(cacheIdx).To(BeNumerically(">=", 0))
		Expect(safetyIdx).To(BeNumerically(">", cacheIdx))
	})

	It("labels a single concept as needing work", func() {
		m := analysis.Score(analysis.Match("we cache hot data in Redis"))
		Expect(m.Score).To(BeEquivalentTo(1))
		Expect(m.Reason).To(HavePrefix("Needs work (1/5)"))
	})
})

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
