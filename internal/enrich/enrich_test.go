package enrich_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"designmentor.app/api/internal/enrich"
	"designmentor.app/api/internal/model"
)

var _ = Describe("Apply", func() {
	var drafts []model.Suggestion

	BeforeEach(func() {
		drafts = []model.Suggestion{
			{RuleKey: "caching", Category: model.CategoryCaching, Description: "Add a cache."},
			{RuleKey: "scaling", Category: model.CategoryScalability, Description: "Scale out."},
		}
	})

	It("appends explanation sections to matching categories", func() {
		explanations := map[model.SuggestionCategory]enrich.Explanation{
			model.CategoryCaching: {
				Category:        "CACHING",
				WhyItMatters:    "Hot reads stay off the database.",
				InterviewAngle:  "Expect cache invalidation questions.",
				ProductionAngle: "Latency spikes under load.",
			},
		}

		enriched := enrich.Apply(drafts, explanations)

		Expect(enriched).To(Equal(1))
		Expect(drafts[0].Description).To(ContainSubstring("Add a cache."))
		Expect(drafts[0].Description).To(ContainSubstring("**Why It Matters:** Hot reads stay off the database."))
		Expect(drafts[0].Description).To(ContainSubstring("**Interview Perspective:** Expect cache invalidation questions."))
		Expect(drafts[0].Description).To(ContainSubstring("**Production Reality:** Latency spikes under load."))
	})

	It("leaves suggestions without an explanation untouched", func() {
		enriched := enrich.Apply(drafts, nil)
		Expect(enriched).To(Equal(0))
		Expect(drafts[1].Description).To(Equal("Scale out."))
	})
})
