package dto

import (
	"time"

	"designmentor.app/api/internal/model"
)

type CreateProjectRequest struct {
	Title         string  `json:"title" binding:"required,min=1,max=255"`
	Description   *string `json:"description,omitempty" binding:"omitempty,max=4000"`
	DesignContent *string `json:"design_content,omitempty" binding:"omitempty,max=100000"`
}

type UpdateProjectRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=255"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=4000"`
}

type ProjectResponse struct {
	ID             int64               `json:"id,string"`
	Title          string              `json:"title"`
	Slug           string              `json:"slug"`
	Description    *string             `json:"description,omitempty"`
	Status         model.ProjectStatus `json:"status"`
	MaturityScore  int32               `json:"maturity_score"`
	MaturityReason *string             `json:"maturity_reason,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

func ToProjectResponse(p *model.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:             p.ID,
		Title:          p.Title,
		Slug:           p.Slug,
		Description:    p.Description,
		Status:         p.Status,
		MaturityScore:  p.MaturityScore,
		MaturityReason: p.MaturityReason,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

type ListProjectsResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

// UpdateDesignRequest carries the working design text. Empty content is
// valid: a cleared-out design can still be saved and analyzed.
type UpdateDesignRequest struct {
	Content string `json:"content" binding:"max=100000"`
}

type DesignResponse struct {
	ID        int64     `json:"id,string"`
	ProjectID int64     `json:"project_id,string"`
	Content   string    `json:"content"`
	Version   int32     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProjectFullResponse struct {
	Project     ProjectResponse      `json:"project"`
	Design      DesignResponse       `json:"design"`
	Suggestions []SuggestionResponse `json:"suggestions"`
}

func ToDesignResponse(d *model.DesignDetail) *DesignResponse {
	return &DesignResponse{
		ID:        d.ID,
		ProjectID: d.ProjectID,
		Content:   d.Content,
		Version:   d.Version,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
