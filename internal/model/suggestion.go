package model

import "time"

type SuggestionStatus string

const (
	SuggestionStatusOpen      SuggestionStatus = "OPEN"
	SuggestionStatusAddressed SuggestionStatus = "ADDRESSED"
	SuggestionStatusIgnored   SuggestionStatus = "IGNORED"
)

type SuggestionSeverity string

const (
	SeverityInfo     SuggestionSeverity = "INFO"
	SeverityWarning  SuggestionSeverity = "WARNING"
	SeverityCritical SuggestionSeverity = "CRITICAL"
)

type SuggestionCategory string

const (
	CategoryCaching     SuggestionCategory = "CACHING"
	CategoryScalability SuggestionCategory = "SCALABILITY"
	CategorySecurity    SuggestionCategory = "SECURITY"
	CategoryDatabase    SuggestionCategory = "DATABASE"
	CategoryReliability SuggestionCategory = "RELIABILITY"
	CategoryPerformance SuggestionCategory = "PERFORMANCE"
	CategoryAPIDesign   SuggestionCategory = "API_DESIGN"
)

type Suggestion struct {
	ID               int64              `json:"id"`
	ProjectID        int64              `json:"project_id"`
	RuleKey          string             `json:"rule_key"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	Category         SuggestionCategory `json:"category"`
	Severity         SuggestionSeverity `json:"severity"`
	Status           SuggestionStatus   `json:"status"`
	TriggerKeywords  []string           `json:"trigger_keywords,omitempty"`
	CreatedVersion   int32              `json:"created_version"`
	AddressedVersion *int32             `json:"addressed_version,omitempty"`
	AddressedAt      *time.Time         `json:"addressed_at,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}
