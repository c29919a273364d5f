package dto

import (
	"time"

	"designmentor.app/api/internal/model"
)

type UpdateSuggestionStatusRequest struct {
	Status model.SuggestionStatus `json:"status" binding:"required,oneof=ADDRESSED IGNORED"`
}

type SuggestionResponse struct {
	ID               int64                    `json:"id,string"`
	ProjectID        int64                    `json:"project_id,string"`
	RuleKey          string                   `json:"rule_key"`
	Title            string                   `json:"title"`
	Description      string                   `json:"description"`
	Category         model.SuggestionCategory `json:"category"`
	Severity         model.SuggestionSeverity `json:"severity"`
	Status           model.SuggestionStatus   `json:"status"`
	TriggerKeywords  []string                 `json:"trigger_keywords"`
	CreatedVersion   int32                    `json:"created_version"`
	AddressedVersion *int32                   `json:"addressed_version,omitempty"`
	AddressedAt      *time.Time               `json:"addressed_at,omitempty"`
	CreatedAt        time.Time                `json:"created_at"`
	UpdatedAt        time.Time                `json:"updated_at"`
}

func ToSuggestionResponse(s *model.Suggestion) *SuggestionResponse {
	return &SuggestionResponse{
		ID:               s.ID,
		ProjectID:        s.ProjectID,
		RuleKey:          s.RuleKey,
		Title:            s.Title,
		Description:      s.Description,
		Category:         s.Category,
		Severity:         s.Severity,
		Status:           s.Status,
		TriggerKeywords:  s.TriggerKeywords,
		CreatedVersion:   s.CreatedVersion,
		AddressedVersion: s.AddressedVersion,
		AddressedAt:      s.AddressedAt,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func ToSuggestionResponses(suggestions []model.Suggestion) []SuggestionResponse {
	out := make([]SuggestionResponse, len(suggestions))
	for i := range suggestions {
		out[i] = *ToSuggestionResponse(&suggestions[i])
	}
	return out
}

type ListSuggestionsResponse struct {
	Suggestions []SuggestionResponse `json:"suggestions"`
}
