package service_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"designmentor.app/api/core/config"
	"designmentor.app/api/internal/catalog"
	"designmentor.app/api/internal/enrich"
	"designmentor.app/api/internal/lock"
	"designmentor.app/api/internal/model"
	"designmentor.app/api/internal/service"
	"designmentor.app/api/internal/store"
)

var _ = Describe("AnalysisService", func() {
	var (
		svc             service.AnalysisService
		projectStore    *mockProjectStore
		designStore     *mockDesignStore
		suggestionStore *mockSuggestionStore
		txRunner        *mockTxRunner
		locker          *mockLocker
		generator       *mockGenerator
		ctx             context.Context

		created   []model.Suggestion
		addressed []int64
	)

	newService := func(gen enrich.Generator) service.AnalysisService {
		return service.NewAnalysisService(
			projectStore, designStore, suggestionStore,
			txRunner, locker, gen,
			config.EnrichmentConfig{Timeout: time.Second},
		)
	}

	BeforeEach(func() {
		ctx = context.Background()
		projectStore = &mockProjectStore{}
		designStore = &mockDesignStore{}
		suggestionStore = &mockSuggestionStore{}
		locker = &mockLocker{}
		generator = &mockGenerator{}
		txRunner = &mockTxRunner{provider: &mockStoreProvider{
			projects:    projectStore,
			designs:     designStore,
			suggestions: suggestionStore,
		}}

		created = nil
		addressed = nil

		projectStore.getByIDFn = func(_ context.Context, id int64) (*model.Project, error) {
			return &model.Project{ID: id, OwnerID: 1, Status: model.ProjectStatusInProgress}, nil
		}
		designStore.getByProjectFn = func(_ context.Context, projectID int64) (*model.DesignDetail, error) {
			return &model.DesignDetail{ProjectID: projectID, Content: ""}, nil
		}
		suggestionStore.createFn = func(_ context.Context, s *model.Suggestion) error {
			created = append(created, *s)
			return nil
		}
		suggestionStore.markAddressedFn = func(_ context.Context, id int64, version int32, at time.Time) (*model.Suggestion, error) {
			addressed = append(addressed, id)
			return &model.Suggestion{ID: id, Status: model.SuggestionStatusAddressed}, nil
		}

		svc = newService(nil)
	})

	Describe("Run", func() {
		Context("first analysis of an empty design", func() {
			It("creates a suggestion per bucket and version 1", func() {
				var version *model.DesignVersion
				designStore.createVersionFn = func(_ context.Context, v *model.DesignVersion) error {
					version = v
					return nil
				}
				suggestionStore.countOpenFn = func(_ context.Context, _ int64) (int64, error) {
					return int64(len(created)), nil
				}

				result, err := svc.Run(ctx, 1, 10)

				Expect(err).NotTo(HaveOccurred())
				Expect(result.DesignVersion).To(BeEquivalentTo(1))
				Expect(result.MaturityScore).To(BeEquivalentTo(0))
				Expect(result.NewlyAddressedCount).To(BeZero())
				Expect(result.NewSuggestionCount).To(Equal(len(catalog.Rules())))
				Expect(created).To(HaveLen(len(catalog.Rules())))
				for _, s := range created {
					Expect(s.ID).NotTo(BeZero())
					Expect(s.ProjectID).To(BeEquivalentTo(10))
					Expect(s.CreatedVersion).To(BeEquivalentTo(1))
				}

				Expect(version).NotTo(BeNil())
				Expect(version.VersionNumber).To(BeEquivalentTo(1))
				Expect(version.SuggestionCount).To(BeEquivalentTo(len(catalog.Rules())))
			})
		})

		Context("re-analysis after the design improves", func() {
			BeforeEach(func() {
				designStore.getByProjectFn = func(_ context.Context, projectID int64) (*model.DesignDetail, error) {
					return &model.DesignDetail{
						ProjectID: projectID,
						Content:   "We use Redis for caching and a PostgreSQL database with indexes",
						Version:   1,
					}, nil
				}
				designStore.maxVersionFn = func(_ context.Context, _ int64) (int32, error) {
					return 1, nil
				}
				suggestionStore.listByProjectFn = func(_ context.Context, projectID int64) ([]model.Suggestion, error) {
					return []model.Suggestion{
						{
							ID: 100, ProjectID: projectID, RuleKey: "caching",
							Status:          model.SuggestionStatusOpen,
							TriggerKeywords: []string{"cache", "redis"},
							CreatedVersion:  1,
						},
					}, nil
				}
			})

			It("addresses the caching suggestion at version 2", func() {
				result, err := svc.Run(ctx, 1, 10)

				Expect(err).NotTo(HaveOccurred())
				Expect(result.DesignVersion).To(BeEquivalentTo(2))
				Expect(result.NewlyAddressedCount).To(Equal(1))
				Expect(addressed).To(Equal([]int64{100}))

				// caching and indexing are present, so no new
				// suggestions for those buckets
				for _, s := range created {
					Expect(s.RuleKey).NotTo(Equal("caching"))
					Expect(s.RuleKey).NotTo(Equal("indexing"))
				}
			})

			It("leaves a manually resolved suggestion alone", func() {
				// The user ignored the suggestion after the run read it
				// but before the transaction; the store reports no OPEN
				// row to transition.
				suggestionStore.markAddressedFn = func(_ context.Context, id int64, _ int32, _ time.Time) (*model.Suggestion, error) {
					return nil, store.ErrNotFound
				}

				result, err := svc.Run(ctx, 1, 10)

				Expect(err).NotTo(HaveOccurred())
				Expect(result.NewlyAddressedCount).To(BeZero())
				Expect(result.SummaryMessage).NotTo(ContainSubstring("suggestion(s) addressed"))
			})

			It("marks the project analyzed with the new score", func() {
				var gotStatus model.ProjectStatus
				var gotScore int32
				projectStore.updateAnalysisFn = func(_ context.Context, _ int64, status model.ProjectStatus, score int32, _ string) error {
					gotStatus = status
					gotScore = score
					return nil
				}

				_, err := svc.Run(ctx, 1, 10)

				Expect(err).NotTo(HaveOccurred())
				Expect(gotStatus).To(Equal(model.ProjectStatusAnalyzed))
				Expect(gotScore).To(BeEquivalentTo(2))
			})
		})

		Context("concurrency", func() {
			It("fails fast when another analysis holds the lock", func() {
				locker.acquireFn = func(_ context.Context, _ int64) (func(), error) {
					return nil, lock.ErrHeld
				}

				_, err := svc.Run(ctx, 1, 10)
				Expect(err).To(MatchError(service.ErrAnalysisInFlight))
			})

			It("surfaces a version collision as a conflict", func() {
				designStore.createVersionFn = func(_ context.Context, _ *model.DesignVersion) error {
					return store.ErrConflict
				}

				_, err := svc.Run(ctx, 1, 10)
				Expect(errors.Is(err, store.ErrConflict)).To(BeTrue())
			})
		})

		Context("enrichment", func() {
			It("decorates new suggestions when the generator succeeds", func() {
				generator.explainFn = func(_ context.Context, _ string, _ []model.Suggestion) (map[model.SuggestionCategory]enrich.Explanation, error) {
					return map[model.SuggestionCategory]enrich.Explanation{
						model.CategoryCaching: {
							WhyItMatters:    "w",
							InterviewAngle:  "i",
							ProductionAngle: "p",
						},
					}, nil
				}
				svc = newService(generator)

				_, err := svc.Run(ctx, 1, 10)

				Expect(err).NotTo(HaveOccurred())
				Expect(generator.calls).To(Equal(1))
				var cachingDesc string
				for _, s := range created {
					if s.RuleKey == "caching" {
						cachingDesc = s.Description
					}
				}
				Expect(cachingDesc).To(ContainSubstring("**Why It Matters:** w"))
			})

			It("keeps rule-based content when the generator fails", func() {
				generator.explainFn = func(_ context.Context, _ string, _ []model.Suggestion) (map[model.SuggestionCategory]enrich.Explanation, error) {
					return nil, errors.New("llm unavailable")
				}
				svc = newService(generator)

				result, err := svc.Run(ctx, 1, 10)

				Expect(err).NotTo(HaveOccurred())
				Expect(result.NewSuggestionCount).To(Equal(len(catalog.Rules())))
				for _, s := range created {
					Expect(s.Description).NotTo(ContainSubstring("**Why It Matters:**"))
				}
			})

			It("skips the generator when nothing was created", func() {
				designStore.getByProjectFn = func(_ context.Context, projectID int64) (*model.DesignDetail, error) {
					return &model.DesignDetail{ProjectID: projectID, Content: "anything"}, nil
				}
				suggestionStore.listByProjectFn = func(_ context.Context, projectID int64) ([]model.Suggestion, error) {
					var all []model.Suggestion
					for _, r := range catalog.Rules() {
						all = append(all, model.Suggestion{RuleKey: r.Key, Status: model.SuggestionStatusIgnored})
					}
					return all, nil
				}
				svc = newService(generator)

				_, err := svc.Run(ctx, 1, 10)

				Expect(err).NotTo(HaveOccurred())
				Expect(generator.calls).To(BeZero())
			})
		})

		It("rejects a non-owner", func() {
			_, err := svc.Run(ctx, 99, 10)
			Expect(err).To(MatchError(service.ErrForbidden))
		})
	})

	Describe("Evolution", func() {
		It("summarizes progress across versions", func() {
			designStore.listVersionsFn = func(_ context.Context, _ int64) ([]model.DesignVersion, error) {
				return []model.DesignVersion{
					{VersionNumber: 1, MaturityScore: 1, SuggestionCount: 10},
					{VersionNumber: 2, MaturityScore: 3, SuggestionCount: 6},
				}, nil
			}
			designStore.getByProjectFn = func(_ context.Context, projectID int64) (*model.DesignDetail, error) {
				return &model.DesignDetail{ProjectID: projectID, Version: 2}, nil
			}

			evolution, err := svc.Evolution(ctx, 1, 10)

			Expect(err).NotTo(HaveOccurred())
			Expect(evolution.CurrentVersion).To(BeEquivalentTo(2))
			Expect(evolution.Versions).To(HaveLen(2))
			Expect(evolution.ProgressSummary).To(ContainSubstring("Addressed 4 suggestions"))
			Expect(evolution.ProgressSummary).To(ContainSubstring("Improved maturity by 2 points"))
		})

		It("reports an empty history", func() {
			evolution, err := svc.Evolution(ctx, 1, 10)

			Expect(err).NotTo(HaveOccurred())
			Expect(evolution.ProgressSummary).To(Equal("No analysis history yet. Run your first analysis!"))
		})

		It("surfaces a design load failure", func() {
			designStore.getByProjectFn = func(_ context.Context, _ int64) (*model.DesignDetail, error) {
				return nil, errors.New("connection reset")
			}

			_, err := svc.Evolution(ctx, 1, 10)
			Expect(err).To(MatchError(ContainSubstring("connection reset")))
		})
	})

	Describe("UpdateSuggestionStatus", func() {
		BeforeEach(func() {
			suggestionStore.getByIDFn = func(_ context.Context, id int64) (*model.Suggestion, error) {
				return &model.Suggestion{ID: id, ProjectID: 10, Status: model.SuggestionStatusOpen}, nil
			}
		})

		It("stamps version and timestamp on a manual ADDRESSED", func() {
			designStore.getByProjectFn = func(_ context.Context, projectID int64) (*model.DesignDetail, error) {
				return &model.DesignDetail{ProjectID: projectID, Version: 3}, nil
			}
			var gotVersion *int32
			var gotAt *time.Time
			suggestionStore.updateStatusFn = func(_ context.Context, id int64, status model.SuggestionStatus, version *int32, at *time.Time) (*model.Suggestion, error) {
				gotVersion = version
				gotAt = at
				return &model.Suggestion{ID: id, Status: status}, nil
			}

			updated, err := svc.UpdateSuggestionStatus(ctx, 1, 500, model.SuggestionStatusAddressed)

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(model.SuggestionStatusAddressed))
			Expect(gotVersion).NotTo(BeNil())
			Expect(*gotVersion).To(BeEquivalentTo(3))
			Expect(gotAt).NotTo(BeNil())
		})

		It("omits the version stamp before the first analysis", func() {
			designStore.getByProjectFn = func(_ context.Context, projectID int64) (*model.DesignDetail, error) {
				return &model.DesignDetail{ProjectID: projectID, Version: 0}, nil
			}
			var gotVersion *int32
			var gotAt *time.Time
			suggestionStore.updateStatusFn = func(_ context.Context, id int64, status model.SuggestionStatus, version *int32, at *time.Time) (*model.Suggestion, error) {
				gotVersion = version
				gotAt = at
				return &model.Suggestion{ID: id, Status: status}, nil
			}

			_, err := svc.UpdateSuggestionStatus(ctx, 1, 500, model.SuggestionStatusAddressed)

			Expect(err).NotTo(HaveOccurred())
			Expect(gotVersion).To(BeNil())
			Expect(gotAt).NotTo(BeNil())
		})

		It("leaves stamps empty on IGNORED", func() {
			var gotVersion *int32
			suggestionStore.updateStatusFn = func(_ context.Context, id int64, status model.SuggestionStatus, version *int32, _ *time.Time) (*model.Suggestion, error) {
				gotVersion = version
				return &model.Suggestion{ID: id, Status: status}, nil
			}

			updated, err := svc.UpdateSuggestionStatus(ctx, 1, 500, model.SuggestionStatusIgnored)

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(model.SuggestionStatusIgnored))
			Expect(gotVersion).To(BeNil())
		})

		It("returns not found for an unknown suggestion", func() {
			suggestionStore.getByIDFn = nil

			_, err := svc.UpdateSuggestionStatus(ctx, 1, 999, model.SuggestionStatusIgnored)
			Expect(errors.Is(err, store.ErrNotFound)).To(BeTrue())
		})
	})
})
