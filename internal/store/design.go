package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"designmentor.app/api/core/db/sqlc"
	"designmentor.app/api/internal/model"
)

type designStore struct {
	queries *sqlc.Queries
}

func newDesignStore(queries *sqlc.Queries) DesignStore {
	return &designStore{queries: queries}
}

func (s *designStore) GetByProject(ctx context.Context, projectID int64) (*model.DesignDetail, error) {
	row, err := s.queries.GetDesignDetailByProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toDesignDetailModel(row), nil
}

func (s *designStore) Create(ctx context.Context, detail *model.DesignDetail) error {
	row, err := s.queries.CreateDesignDetail(ctx, sqlc.CreateDesignDetailParams{
		ID:        detail.ID,
		ProjectID: detail.ProjectID,
		Content:   detail.Content,
	})
	if err != nil {
		return asConflict(err)
	}
	*detail = *toDesignDetailModel(row)
	return nil
}

func (s *designStore) UpdateContent(ctx context.Context, projectID int64, content string) (*model.DesignDetail, error) {
	row, err := s.queries.UpdateDesignContent(ctx, sqlc.UpdateDesignContentParams{
		ProjectID: projectID,
		Content:   content,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toDesignDetailModel(row), nil
}

func (s *designStore) SetVersion(ctx context.Context, projectID int64, version int32) error {
	return s.queries.SetDesignVersion(ctx, sqlc.SetDesignVersionParams{
		ProjectID: projectID,
		Version:   version,
	})
}

func (s *designStore) CreateVersion(ctx context.Context, version *model.DesignVersion) error {
	row, err := s.queries.CreateDesignVersion(ctx, sqlc.CreateDesignVersionParams{
		ID:              version.ID,
		ProjectID:       version.ProjectID,
		VersionNumber:   version.VersionNumber,
		Content:         version.Content,
		MaturityScore:   version.MaturityScore,
		SuggestionCount: version.SuggestionCount,
	})
	if err != nil {
		return asConflict(err)
	}
	*version = *toDesignVersionModel(row)
	return nil
}

func (s *designStore) ListVersions(ctx context.Context, projectID int64) ([]model.DesignVersion, error) {
	rows, err := s.queries.ListDesignVersions(ctx, projectID)
	if err != nil {
		return nil, err
	}
	versions := make([]model.DesignVersion, 0, len(rows))
	for _, row := range rows {
		versions = append(versions, *toDesignVersionModel(row))
	}
	return versions, nil
}

func (s *designStore) MaxVersion(ctx context.Context, projectID int64) (int32, error) {
	return s.queries.GetMaxDesignVersion(ctx, projectID)
}

func toDesignDetailModel(row sqlc.DesignDetail) *model.DesignDetail {
	return &model.DesignDetail{
		ID:        row.ID,
		ProjectID: row.ProjectID,
		Content:   row.Content,
		Version:   row.Version,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}

func toDesignVersionModel(row sqlc.DesignVersion) *model.DesignVersion {
	return &model.DesignVersion{
		ID:              row.ID,
		ProjectID:       row.ProjectID,
		VersionNumber:   row.VersionNumber,
		Content:         row.Content,
		MaturityScore:   row.MaturityScore,
		SuggestionCount: row.SuggestionCount,
		CreatedAt:       row.CreatedAt.Time,
	}
}
