package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"designmentor.app/api/core/db/sqlc"
	"designmentor.app/api/internal/model"
)

type projectStore struct {
	queries *sqlc.Queries
}

func newProjectStore(queries *sqlc.Queries) ProjectStore {
	return &projectStore{queries: queries}
}

func (s *projectStore) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	row, err := s.queries.GetProject(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toProjectModel(row), nil
}

func (s *projectStore) GetByIDForUpdate(ctx context.Context, id int64) (*model.Project, error) {
	row, err := s.queries.GetProjectForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toProjectModel(row), nil
}

func (s *projectStore) GetByOwnerAndSlug(ctx context.Context, ownerID int64, slug string) (*model.Project, error) {
	row, err := s.queries.GetProjectByOwnerAndSlug(ctx, sqlc.GetProjectByOwnerAndSlugParams{
		OwnerID: ownerID,
		Slug:    slug,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toProjectModel(row), nil
}

func (s *projectStore) ListByOwner(ctx context.Context, ownerID int64, limit, offset int32) ([]model.Project, error) {
	rows, err := s.queries.ListProjectsByOwner(ctx, sqlc.ListProjectsByOwnerParams{
		OwnerID: ownerID,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		return nil, err
	}
	projects := make([]model.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, *toProjectModel(row))
	}
	return projects, nil
}

func (s *projectStore) Create(ctx context.Context, project *model.Project) error {
	row, err := s.queries.CreateProject(ctx, sqlc.CreateProjectParams{
		ID:          project.ID,
		OwnerID:     project.OwnerID,
		Title:       project.Title,
		Description: project.Description,
		Slug:        project.Slug,
	})
	if err != nil {
		return asConflict(err)
	}
	*project = *toProjectModel(row)
	return nil
}

func (s *projectStore) Update(ctx context.Context, project *model.Project) error {
	row, err := s.queries.UpdateProject(ctx, sqlc.UpdateProjectParams{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		Status:      sqlc.ProjectStatus(project.Status),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*project = *toProjectModel(row)
	return nil
}

func (s *projectStore) UpdateAnalysis(ctx context.Context, id int64, status model.ProjectStatus, score int32, reason string) error {
	return s.queries.UpdateProjectAnalysis(ctx, sqlc.UpdateProjectAnalysisParams{
		ID:             id,
		Status:         sqlc.ProjectStatus(status),
		MaturityScore:  score,
		MaturityReason: &reason,
	})
}

func (s *projectStore) Delete(ctx context.Context, id int64) error {
	return s.queries.DeleteProject(ctx, id)
}

func toProjectModel(row sqlc.Project) *model.Project {
	return &model.Project{
		ID:             row.ID,
		OwnerID:        row.OwnerID,
		Title:          row.Title,
		Slug:           row.Slug,
		Description:    row.Description,
		Status:         model.ProjectStatus(row.Status),
		MaturityScore:  row.MaturityScore,
		MaturityReason: row.MaturityReason,
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}
