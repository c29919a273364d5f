package dto

import (
	"time"

	"designmentor.app/api/internal/model"
	"designmentor.app/api/internal/service"
)

type AnalysisResponse struct {
	DesignVersion       int32                `json:"design_version"`
	MaturityScore       int32                `json:"maturity_score"`
	MaturityReason      string               `json:"maturity_reason"`
	NewlyAddressedCount int                  `json:"newly_addressed_count"`
	NewSuggestionCount  int                  `json:"new_suggestion_count"`
	SummaryMessage      string               `json:"summary_message"`
	Suggestions         []SuggestionResponse `json:"suggestions"`
}

func ToAnalysisResponse(result *service.AnalysisResult) *AnalysisResponse {
	return &AnalysisResponse{
		DesignVersion:       result.DesignVersion,
		MaturityScore:       result.MaturityScore,
		MaturityReason:      result.MaturityReason,
		NewlyAddressedCount: result.NewlyAddressedCount,
		NewSuggestionCount:  result.NewSuggestionCount,
		SummaryMessage:      result.SummaryMessage,
		Suggestions:         ToSuggestionResponses(result.Suggestions),
	}
}

type DesignVersionResponse struct {
	ID              int64     `json:"id,string"`
	VersionNumber   int32     `json:"version_number"`
	Content         string    `json:"content"`
	MaturityScore   int32     `json:"maturity_score"`
	SuggestionCount int32     `json:"suggestion_count"`
	CreatedAt       time.Time `json:"created_at"`
}

type EvolutionResponse struct {
	ProjectID            int64                   `json:"project_id,string"`
	CurrentVersion       int32                   `json:"current_version"`
	CurrentMaturityScore int32                   `json:"current_maturity_score"`
	Versions             []DesignVersionResponse `json:"versions"`
	ProgressSummary      string                  `json:"progress_summary"`
}

func ToEvolutionResponse(evo *service.Evolution) *EvolutionResponse {
	versions := make([]DesignVersionResponse, len(evo.Versions))
	for i, v := range evo.Versions {
		versions[i] = toDesignVersionResponse(v)
	}
	return &EvolutionResponse{
		ProjectID:            evo.ProjectID,
		CurrentVersion:       evo.CurrentVersion,
		CurrentMaturityScore: evo.CurrentMaturityScore,
		Versions:             versions,
		ProgressSummary:      evo.ProgressSummary,
	}
}

func toDesignVersionResponse(v model.DesignVersion) DesignVersionResponse {
	return DesignVersionResponse{
		ID:              v.ID,
		VersionNumber:   v.VersionNumber,
		Content:         v.Content,
		MaturityScore:   v.MaturityScore,
		SuggestionCount: v.SuggestionCount,
		CreatedAt:       v.CreatedAt,
	}
}
