package analysis_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"designmentor.app/api/internal/analysis"
	"designmentor.app/api/internal/catalog"
	"designmentor.app/api/internal/model"
)

var _ = Describe("Reconcile", func() {
	var now time.Time

	BeforeEach(func() {
		now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	})

	reconcile := func(content string, existing []model.Suggestion, version int32) analysis.Decision {
		return analysis.Reconcile(content, analysis.Match(content), existing, version, now)
	}

	Context("on a brand new project with empty text", func() {
		It("creates one OPEN suggestion per bucket and addresses none", func() {
			decision := reconcile("", nil, 1)

			Expect(decision.Addressed).To(BeEmpty())
			Expect(decision.Created).To(HaveLen(len(catalog.Rules())))
			for _, s := range decision.Created {
				Expect(s.Status).To(Equal(model.SuggestionStatusOpen))
				Expect(s.CreatedVersion).To(BeEquivalentTo(1))
				Expect(s.TriggerKeywords).NotTo(BeEmpty())
			}
		})
	})

	Context("auto-resolution", func() {
		var open model.Suggestion

		BeforeEach(func() {
			open = model.Suggestion{
				ID:              100,
				ProjectID:       1,
				RuleKey:         "caching",
				Title:           "Consider Adding Caching Layer",
				Status:          model.SuggestionStatusOpen,
				TriggerKeywords: []string{"cache", "redis", "memcached"},
				CreatedVersion:  1,
			}
		})

		It("addresses an open suggestion whose keywords now appear", func() {
			content := "We use Redis for caching and a PostgreSQL database with indexes"
			decision := reconcile(content, []model.Suggestion{open}, 2)

			Expect(decision.Addressed).To(HaveLen(1))
			addressed := decision.Addressed[0]
			Expect(addressed.ID).To(Equal(open.ID))
			Expect(addressed.Status).To(Equal(model.SuggestionStatusAddressed))
			Expect(*addressed.AddressedVersion).To(BeEquivalentTo(2))
			Expect(*addressed.AddressedAt).To(Equal(now))
		})

		It("leaves the suggestion open when no keyword appears", func() {
			decision := reconcile("a plain design with nothing relevant", []model.Suggestion{open}, 2)
			Expect(decision.Addressed).To(BeEmpty())
		})

		It("falls back to catalog keywords when none are stored", func() {
			open.TriggerKeywords = nil
			decision := reconcile("redis sits in front of the db", []model.Suggestion{open}, 2)
			Expect(decision.Addressed).To(HaveLen(1))
		})

		It("never re-addresses an already addressed suggestion", func() {
			v := int32(2)
			open.Status = model.SuggestionStatusAddressed
			open.AddressedVersion = &v

			decision := reconcile("redis everywhere", []model.Suggestion{open}, 3)
			Expect(decision.Addressed).To(BeEmpty())
		})

		It("never flips an ignored suggestion", func() {
			open.Status = model.SuggestionStatusIgnored
			decision := reconcile("redis everywhere", []model.Suggestion{open}, 3)
			Expect(decision.Addressed).To(BeEmpty())
		})
	})

	Context("gap detection", func() {
		It("skips buckets whose concept is present in the text", func() {
			decision := reconcile("we cache hot data in redis", nil, 1)
			keys := createdKeys(decision)
			Expect(keys).NotTo(ContainElement("caching"))
			Expect(keys).To(ContainElement("scaling"))
		})

		It("does not duplicate a bucket that already has a suggestion in any status", func() {
			existing := []model.Suggestion{
				{RuleKey: "caching", Status: model.SuggestionStatusOpen},
				{RuleKey: "scaling", Status: model.SuggestionStatusAddressed},
				{RuleKey: "rate-limiting", Status: model.SuggestionStatusIgnored},
			}
			decision := reconcile("", existing, 2)
			keys := createdKeys(decision)
			Expect(keys).NotTo(ContainElement("caching"))
			Expect(keys).NotTo(ContainElement("scaling"))
			Expect(keys).NotTo(ContainElement("rate-limiting"))
			Expect(keys).To(ContainElement("indexing"))
		})

		It("never recreates a suggestion for an ignored bucket", func() {
			ignored := model.Suggestion{
				RuleKey:         "rate-limiting",
				Status:          model.SuggestionStatusIgnored,
				TriggerKeywords: []string{"rate limit", "throttle"},
			}
			decision := reconcile("we enforce a rate limit per user", []model.Suggestion{ignored}, 2)
			Expect(decision.Addressed).To(BeEmpty())
			Expect(createdKeys(decision)).NotTo(ContainElement("rate-limiting"))
		})

		It("creates nothing for a concept that was always present", func() {
			decision := reconcile("redis cache only", nil, 1)
			Expect(decision.Addressed).To(BeEmpty())
			Expect(createdKeys(decision)).NotTo(ContainElement("caching"))
		})
	})

	Context("idempotence", func() {
		It("is a no-op when re-run on unchanged text", func() {
			content := "We use Redis for caching and a PostgreSQL database with indexes"

			first := reconcile(content, nil, 1)
			state := append([]model.Suggestion{}, first.Created...)

			second := reconcile(content, state, 2)
			Expect(second.Addressed).To(BeEmpty())
			Expect(second.Created).To(BeEmpty())
		})
	})
})

func createdKeys(d analysis.Decision) []string {
	keys := make([]string, 0, len(d.Created))
	for _, s := range d.Created {
		keys = append(keys, s.RuleKey)
	}
	return keys
}
