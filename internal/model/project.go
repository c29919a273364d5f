package model

import "time"

type ProjectStatus string

const (
	ProjectStatusDraft      ProjectStatus = "DRAFT"
	ProjectStatusInProgress ProjectStatus = "IN_PROGRESS"
	ProjectStatusAnalyzed   ProjectStatus = "ANALYZED"
)

type Project struct {
	ID             int64         `json:"id"`
	OwnerID        int64         `json:"owner_id"`
	Title          string        `json:"title"`
	Slug           string        `json:"slug"`
	Description    *string       `json:"description,omitempty"`
	Status         ProjectStatus `json:"status"`
	MaturityScore  int32         `json:"maturity_score"`
	MaturityReason *string       `json:"maturity_reason,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
