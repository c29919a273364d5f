package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"designmentor.app/api/internal/model"
	"designmentor.app/api/internal/service"
	"designmentor.app/api/internal/store"
)

var _ = Describe("ProjectService", func() {
	var (
		svc             service.ProjectService
		projectStore    *mockProjectStore
		designStore     *mockDesignStore
		suggestionStore *mockSuggestionStore
		ctx             context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		projectStore = &mockProjectStore{}
		designStore = &mockDesignStore{}
		suggestionStore = &mockSuggestionStore{}
		svc = service.NewProjectService(projectStore, designStore, suggestionStore)
	})

	Describe("Create", func() {
		It("creates a project with a slug and an empty design document", func() {
			var capturedProject *model.Project
			var capturedDetail *model.DesignDetail
			projectStore.createFn = func(_ context.Context, p *model.Project) error {
				capturedProject = p
				return nil
			}
			designStore.createFn = func(_ context.Context, d *model.DesignDetail) error {
				capturedDetail = d
				return nil
			}

			project, err := svc.Create(ctx, 42, "URL Shortener", nil, nil)

			Expect(err).NotTo(HaveOccurred())
			Expect(project.ID).NotTo(BeZero())
			Expect(project.Slug).To(Equal("url-shortener"))
			Expect(capturedProject.OwnerID).To(BeEquivalentTo(42))
			Expect(capturedDetail.ProjectID).To(Equal(project.ID))
			Expect(capturedDetail.Content).To(BeEmpty())
		})

		It("seeds the design document with initial content", func() {
			var capturedDetail *model.DesignDetail
			designStore.createFn = func(_ context.Context, d *model.DesignDetail) error {
				capturedDetail = d
				return nil
			}

			content := "We cache hot URLs in Redis"
			_, err := svc.Create(ctx, 42, "URL Shortener", nil, &content)

			Expect(err).NotTo(HaveOccurred())
			Expect(capturedDetail.Content).To(Equal(content))
		})

		It("probes for a free slug on collision", func() {
			existing := &model.Project{Slug: "url-shortener"}
			projectStore.getByOwnerAndSlugFn = func(_ context.Context, _ int64, slug string) (*model.Project, error) {
				if slug == "url-shortener" {
					return existing, nil
				}
				return nil, store.ErrNotFound
			}

			project, err := svc.Create(ctx, 42, "URL Shortener", nil, nil)

			Expect(err).NotTo(HaveOccurred())
			Expect(project.Slug).To(Equal("url-shortener-1"))
		})
	})

	Describe("Get", func() {
		It("rejects access by a non-owner", func() {
			projectStore.getByIDFn = func(_ context.Context, id int64) (*model.Project, error) {
				return &model.Project{ID: id, OwnerID: 1}, nil
			}

			_, err := svc.Get(ctx, 2, 10)
			Expect(err).To(MatchError(service.ErrForbidden))
		})

		It("propagates not found", func() {
			_, err := svc.Get(ctx, 1, 10)
			Expect(errors.Is(err, store.ErrNotFound)).To(BeTrue())
		})
	})

	Describe("GetFull", func() {
		It("bundles the project with its design and suggestions", func() {
			projectStore.getByIDFn = func(_ context.Context, id int64) (*model.Project, error) {
				return &model.Project{ID: id, OwnerID: 1, Title: "Chat App"}, nil
			}
			designStore.getByProjectFn = func(_ context.Context, projectID int64) (*model.DesignDetail, error) {
				return &model.DesignDetail{ID: 3, ProjectID: projectID, Content: "websockets", Version: 1}, nil
			}
			suggestionStore.listByProjectFn = func(_ context.Context, projectID int64) ([]model.Suggestion, error) {
				return []model.Suggestion{
					{ID: 100, ProjectID: projectID, RuleKey: "caching", Status: model.SuggestionStatusOpen},
				}, nil
			}

			full, err := svc.GetFull(ctx, 1, 10)

			Expect(err).NotTo(HaveOccurred())
			Expect(full.Project.Title).To(Equal("Chat App"))
			Expect(full.Design.Content).To(Equal("websockets"))
			Expect(full.Suggestions).To(HaveLen(1))
		})

		It("rejects access by a non-owner", func() {
			projectStore.getByIDFn = func(_ context.Context, id int64) (*model.Project, error) {
				return &model.Project{ID: id, OwnerID: 1}, nil
			}

			_, err := svc.GetFull(ctx, 2, 10)
			Expect(err).To(MatchError(service.ErrForbidden))
		})
	})

	Describe("UpdateDesign", func() {
		BeforeEach(func() {
			projectStore.getByIDFn = func(_ context.Context, id int64) (*model.Project, error) {
				return &model.Project{ID: id, OwnerID: 1, Status: model.ProjectStatusDraft}, nil
			}
		})

		It("saves new content and moves a draft to in progress", func() {
			var updated *model.Project
			projectStore.updateFn = func(_ context.Context, p *model.Project) error {
				updated = p
				return nil
			}

			detail, err := svc.UpdateDesign(ctx, 1, 10, "clients call a REST API")

			Expect(err).NotTo(HaveOccurred())
			Expect(detail.Content).To(Equal("clients call a REST API"))
			Expect(updated).NotTo(BeNil())
			Expect(updated.Status).To(Equal(model.ProjectStatusInProgress))
		})

		It("keeps an analyzed project's status", func() {
			projectStore.getByIDFn = func(_ context.Context, id int64) (*model.Project, error) {
				return &model.Project{ID: id, OwnerID: 1, Status: model.ProjectStatusAnalyzed}, nil
			}
			projectStore.updateFn = func(_ context.Context, _ *model.Project) error {
				Fail("project status should not be updated")
				return nil
			}

			_, err := svc.UpdateDesign(ctx, 1, 10, "new content")
			Expect(err).NotTo(HaveOccurred())
		})
	})
})
