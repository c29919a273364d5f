package store

import (
	"context"
	"errors"
	"time"

	"designmentor.app/api/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when an insert violates a uniqueness
// constraint, e.g. two analyses racing to create the same version.
var ErrConflict = errors.New("conflict")

// UserStore defines the contract for user data access
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	UpsertByWorkOSID(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id int64) error
}

// SessionStore defines the contract for session data access
type SessionStore interface {
	GetByID(ctx context.Context, id int64) (*model.Session, error)
	GetValid(ctx context.Context, id int64) (*model.Session, error) // checks expiry
	Create(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id int64) error
	DeleteByUser(ctx context.Context, userID int64) error
	DeleteExpired(ctx context.Context) error
}

// ProjectStore defines the contract for project data access
type ProjectStore interface {
	GetByID(ctx context.Context, id int64) (*model.Project, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*model.Project, error) // row lock inside a tx
	GetByOwnerAndSlug(ctx context.Context, ownerID int64, slug string) (*model.Project, error)
	ListByOwner(ctx context.Context, ownerID int64, limit, offset int32) ([]model.Project, error)
	Create(ctx context.Context, project *model.Project) error
	Update(ctx context.Context, project *model.Project) error
	UpdateAnalysis(ctx context.Context, id int64, status model.ProjectStatus, score int32, reason string) error
	Delete(ctx context.Context, id int64) error
}

// DesignStore defines the contract for design detail and version data access
type DesignStore interface {
	GetByProject(ctx context.Context, projectID int64) (*model.DesignDetail, error)
	Create(ctx context.Context, detail *model.DesignDetail) error
	UpdateContent(ctx context.Context, projectID int64, content string) (*model.DesignDetail, error)
	SetVersion(ctx context.Context, projectID int64, version int32) error
	CreateVersion(ctx context.Context, version *model.DesignVersion) error
	ListVersions(ctx context.Context, projectID int64) ([]model.DesignVersion, error)
	MaxVersion(ctx context.Context, projectID int64) (int32, error)
}

// SuggestionStore defines the contract for suggestion data access
type SuggestionStore interface {
	GetByID(ctx context.Context, id int64) (*model.Suggestion, error)
	ListByProject(ctx context.Context, projectID int64) ([]model.Suggestion, error)
	CountOpen(ctx context.Context, projectID int64) (int64, error)
	Create(ctx context.Context, suggestion *model.Suggestion) error
	// MarkAddressed transitions an OPEN suggestion to ADDRESSED. It
	// returns ErrNotFound when the row is missing or no longer OPEN,
	// so a concurrent manual status change is never overwritten.
	MarkAddressed(ctx context.Context, id int64, version int32, at time.Time) (*model.Suggestion, error)
	UpdateStatus(ctx context.Context, id int64, status model.SuggestionStatus, version *int32, at *time.Time) (*model.Suggestion, error)
}
