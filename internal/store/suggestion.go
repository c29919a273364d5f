package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"designmentor.app/api/core/db/sqlc"
	"designmentor.app/api/internal/model"
)

type suggestionStore struct {
	queries *sqlc.Queries
}

func newSuggestionStore(queries *sqlc.Queries) SuggestionStore {
	return &suggestionStore{queries: queries}
}

func (s *suggestionStore) GetByID(ctx context.Context, id int64) (*model.Suggestion, error) {
	row, err := s.queries.GetSuggestion(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toSuggestionModel(row), nil
}

func (s *suggestionStore) ListByProject(ctx context.Context, projectID int64) ([]model.Suggestion, error) {
	rows, err := s.queries.ListSuggestionsByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return toSuggestionModels(rows), nil
}

func (s *suggestionStore) CountOpen(ctx context.Context, projectID int64) (int64, error) {
	return s.queries.CountOpenSuggestions(ctx, projectID)
}

func (s *suggestionStore) Create(ctx context.Context, suggestion *model.Suggestion) error {
	row, err := s.queries.CreateSuggestion(ctx, sqlc.CreateSuggestionParams{
		ID:              suggestion.ID,
		ProjectID:       suggestion.ProjectID,
		RuleKey:         suggestion.RuleKey,
		Title:           suggestion.Title,
		Description:     suggestion.Description,
		Category:        sqlc.SuggestionCategory(suggestion.Category),
		Severity:        sqlc.SuggestionSeverity(suggestion.Severity),
		TriggerKeywords: suggestion.TriggerKeywords,
		Status:          sqlc.SuggestionStatus(suggestion.Status),
		CreatedVersion:  suggestion.CreatedVersion,
	})
	if err != nil {
		return asConflict(err)
	}
	*suggestion = *toSuggestionModel(row)
	return nil
}

func (s *suggestionStore) MarkAddressed(ctx context.Context, id int64, version int32, at time.Time) (*model.Suggestion, error) {
	row, err := s.queries.MarkSuggestionAddressed(ctx, sqlc.MarkSuggestionAddressedParams{
		ID:               id,
		AddressedVersion: &version,
		AddressedAt:      &at,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toSuggestionModel(row), nil
}

func (s *suggestionStore) UpdateStatus(ctx context.Context, id int64, status model.SuggestionStatus, version *int32, at *time.Time) (*model.Suggestion, error) {
	row, err := s.queries.UpdateSuggestionStatus(ctx, sqlc.UpdateSuggestionStatusParams{
		ID:               id,
		Status:           sqlc.SuggestionStatus(status),
		AddressedVersion: version,
		AddressedAt:      at,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toSuggestionModel(row), nil
}

func toSuggestionModels(rows []sqlc.Suggestion) []model.Suggestion {
	suggestions := make([]model.Suggestion, 0, len(rows))
	for _, row := range rows {
		suggestions = append(suggestions, *toSuggestionModel(row))
	}
	return suggestions
}

func toSuggestionModel(row sqlc.Suggestion) *model.Suggestion {
	return &model.Suggestion{
		ID:               row.ID,
		ProjectID:        row.ProjectID,
		RuleKey:          row.RuleKey,
		Title:            row.Title,
		Description:      row.Description,
		Category:         model.SuggestionCategory(row.Category),
		Severity:         model.SuggestionSeverity(row.Severity),
		Status:           model.SuggestionStatus(row.Status),
		TriggerKeywords:  row.TriggerKeywords,
		CreatedVersion:   row.CreatedVersion,
		AddressedVersion: row.AddressedVersion,
		AddressedAt:      row.AddressedAt,
		CreatedAt:        row.CreatedAt.Time,
		UpdatedAt:        row.UpdatedAt.Time,
	}
}
