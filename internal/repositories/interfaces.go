package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/Mallqui258/Automatizacion2/internal/models"
)

var (
	ErrNotFound         = errors.New("session not found")
	ErrAlreadyCompleted = errors.New("session already completed")
)

// ===== SHARED FILTER STRUCTS =====

type SessionFilters struct {
	Sex       *models.Sex `json:"sex"`
	Completed *bool       `json:"completed"`
	DateFrom  *time.Time  `json:"date_from"`
	DateTo    *time.Time  `json:"date_to"`
	Limit     int         `json:"limit"`
	Offset    int         `json:"offset"`
	SortBy    string      `json:"sort_by"`    // "created_at", "completed_at"
	SortOrder string      `json:"sort_order"` // "asc", "desc"
}

// Sort columns accepted by SessionFilters.SortBy
const (
	SortByCreatedAt   = "created_at"
	SortByCompletedAt = "completed_at"
)

// Normalized returns a copy with unknown sort settings replaced by the
// defaults: oldest first, by creation time.
func (f SessionFilters) Normalized() SessionFilters {
	switch f.SortBy {
	case SortByCreatedAt, SortByCompletedAt:
	default:
		f.SortBy = SortByCreatedAt
	}
	if f.SortOrder != "desc" {
		f.SortOrder = "asc"
	}
	if f.Limit < 0 {
		f.Limit = 0
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

// Matches reports whether session passes the non-paging filters.
func (f SessionFilters) Matches(session *models.TestSession) bool {
	if f.Sex != nil && session.Sex != *f.Sex {
		return false
	}
	if f.Completed != nil && session.Completed != *f.Completed {
		return false
	}
	if f.DateFrom != nil && session.CreatedAt.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && session.CreatedAt.After(*f.DateTo) {
		return false
	}
	return true
}

// ===== REPOSITORIES =====

// SessionRepository stores questionnaire sessions and their responses.
// Lookups of unknown sessions return ErrNotFound.
type SessionRepository interface {
	Create(ctx context.Context, session *models.TestSession) error
	GetByID(ctx context.Context, id string) (*models.TestSession, error)
	GetWithResponses(ctx context.Context, id string) (*models.TestSession, error)

	// UpsertResponse stores the response for (session, question); a later
	// write for the same question replaces the earlier one.
	UpsertResponse(ctx context.Context, response *models.SessionResponse) error
	CountResponses(ctx context.Context, sessionID string) (int64, error)

	// MarkCompleted flips the session to completed exactly once. A second
	// call returns ErrAlreadyCompleted.
	MarkCompleted(ctx context.Context, id string, at time.Time) error

	List(ctx context.Context, filters SessionFilters) ([]*models.TestSession, int64, error)
	ListWithResponses(ctx context.Context, filters SessionFilters) ([]*models.TestSession, int64, error)
}

// Repository is the storage backend handed to the service layer
type Repository interface {
	Session() SessionRepository
	Migrate(ctx context.Context) error
}
