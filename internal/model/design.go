package model

import "time"

// DesignDetail is the mutable working copy of a project's design text.
// Version tracks the latest analyzed snapshot; 0 means never analyzed.
type DesignDetail struct {
	ID        int64     `json:"id"`
	ProjectID int64     `json:"project_id"`
	Content   string    `json:"content"`
	Version   int32     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DesignVersion is an immutable snapshot taken at analysis time.
type DesignVersion struct {
	ID              int64     `json:"id"`
	ProjectID       int64     `json:"project_id"`
	VersionNumber   int32     `json:"version_number"`
	Content         string    `json:"content"`
	MaturityScore   int32     `json:"maturity_score"`
	SuggestionCount int32     `json:"suggestion_count"`
	CreatedAt       time.Time `json:"created_at"`
}
