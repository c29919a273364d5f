package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"designmentor.app/api/common"
	"designmentor.app/api/common/id"
	"designmentor.app/api/internal/model"
	"designmentor.app/api/internal/store"
)

// ErrForbidden is returned when a caller touches a project they do not own.
var ErrForbidden = errors.New("forbidden")

const defaultPageSize = 50

// ProjectFull bundles a project with its design and suggestion history.
type ProjectFull struct {
	Project     *model.Project
	Design      *model.DesignDetail
	Suggestions []model.Suggestion
}

type ProjectService interface {
	Create(ctx context.Context, ownerID int64, title string, description, designContent *string) (*model.Project, error)
	Get(ctx context.Context, ownerID, projectID int64) (*model.Project, error)
	GetFull(ctx context.Context, ownerID, projectID int64) (*ProjectFull, error)
	List(ctx context.Context, ownerID int64, limit, offset int32) ([]model.Project, error)
	Update(ctx context.Context, ownerID, projectID int64, title string, description *string) (*model.Project, error)
	Delete(ctx context.Context, ownerID, projectID int64) error
	GetDesign(ctx context.Context, ownerID, projectID int64) (*model.DesignDetail, error)
	UpdateDesign(ctx context.Context, ownerID, projectID int64, content string) (*model.DesignDetail, error)
}

type projectService struct {
	projectStore    store.ProjectStore
	designStore     store.DesignStore
	suggestionStore store.SuggestionStore
}

func NewProjectService(projectStore store.ProjectStore, designStore store.DesignStore, suggestionStore store.SuggestionStore) ProjectService {
	return &projectService{
		projectStore:    projectStore,
		designStore:     designStore,
		suggestionStore: suggestionStore,
	}
}

func (s *projectService) Create(ctx context.Context, ownerID int64, title string, description, designContent *string) (*model.Project, error) {
	slug, err := s.ensureSlug(ctx, ownerID, title)
	if err != nil {
		return nil, err
	}

	project := &model.Project{
		ID:          id.New(),
		OwnerID:     ownerID,
		Title:       title,
		Slug:        slug,
		Description: description,
	}

	if err := s.projectStore.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	// Every project starts with a design document, seeded with the
	// initial content when one was provided.
	content := ""
	if designContent != nil {
		content = *designContent
	}
	detail := &model.DesignDetail{
		ID:        id.New(),
		ProjectID: project.ID,
		Content:   content,
	}
	if err := s.designStore.Create(ctx, detail); err != nil {
		return nil, fmt.Errorf("creating design detail: %w", err)
	}

	slog.InfoContext(ctx, "project created",
		"project_id", project.ID,
		"owner_id", ownerID,
		"slug", slug,
	)

	return project, nil
}

func (s *projectService) Get(ctx context.Context, ownerID, projectID int64) (*model.Project, error) {
	return s.getOwned(ctx, ownerID, projectID)
}

func (s *projectService) GetFull(ctx context.Context, ownerID, projectID int64) (*ProjectFull, error) {
	project, err := s.getOwned(ctx, ownerID, projectID)
	if err != nil {
		return nil, err
	}

	design, err := s.designStore.GetByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading design detail: %w", err)
	}

	suggestions, err := s.suggestionStore.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading suggestions: %w", err)
	}

	return &ProjectFull{Project: project, Design: design, Suggestions: suggestions}, nil
}

func (s *projectService) List(ctx context.Context, ownerID int64, limit, offset int32) ([]model.Project, error) {
	if limit <= 0 || limit > 200 {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.projectStore.ListByOwner(ctx, ownerID, limit, offset)
}

func (s *projectService) Update(ctx context.Context, ownerID, projectID int64, title string, description *string) (*model.Project, error) {
	project, err := s.getOwned(ctx, ownerID, projectID)
	if err != nil {
		return nil, err
	}

	project.Title = title
	project.Description = description

	if err := s.projectStore.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}
	return project, nil
}

func (s *projectService) Delete(ctx context.Context, ownerID, projectID int64) error {
	if _, err := s.getOwned(ctx, ownerID, projectID); err != nil {
		return err
	}
	if err := s.projectStore.Delete(ctx, projectID); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	slog.InfoContext(ctx, "project deleted", "project_id", projectID, "owner_id", ownerID)
	return nil
}

func (s *projectService) GetDesign(ctx context.Context, ownerID, projectID int64) (*model.DesignDetail, error) {
	if _, err := s.getOwned(ctx, ownerID, projectID); err != nil {
		return nil, err
	}
	return s.designStore.GetByProject(ctx, projectID)
}

func (s *projectService) UpdateDesign(ctx context.Context, ownerID, projectID int64, content string) (*model.DesignDetail, error) {
	project, err := s.getOwned(ctx, ownerID, projectID)
	if err != nil {
		return nil, err
	}

	detail, err := s.designStore.UpdateContent(ctx, projectID, content)
	if err != nil {
		return nil, fmt.Errorf("updating design content: %w", err)
	}

	// Editing a draft moves the project out of DRAFT; an analyzed
	// project keeps its status until the next analysis run.
	if project.Status == model.ProjectStatusDraft {
		project.Status = model.ProjectStatusInProgress
		if err := s.projectStore.Update(ctx, project); err != nil {
			return nil, fmt.Errorf("updating project status: %w", err)
		}
	}

	return detail, nil
}

func (s *projectService) getOwned(ctx context.Context, ownerID, projectID int64) (*model.Project, error) {
	project, err := s.projectStore.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return project, nil
}

func (s *projectService) ensureSlug(ctx context.Context, ownerID int64, title string) (string, error) {
	base, err := common.Slugify(title, "project")
	if err != nil {
		return "", fmt.Errorf("generating slug: %w", err)
	}

	// Fast path
	if _, err := s.projectStore.GetByOwnerAndSlug(ctx, ownerID, base); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return base, nil
		}
		return "", fmt.Errorf("checking slug availability: %w", err)
	}

	// Add numeric suffix until available
	for i := 1; i <= 20; i++ {
		candidate := common.SlugWithSuffix(base, i)
		_, err := s.projectStore.GetByOwnerAndSlug(ctx, ownerID, candidate)
		if errors.Is(err, store.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("checking slug availability: %w", err)
		}
	}

	return "", fmt.Errorf("unable to find available slug for %q", base)
}
