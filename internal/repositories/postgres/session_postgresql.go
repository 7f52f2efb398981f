package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Mallqui258/Automatizacion2/internal/models"
	"github.com/Mallqui258/Automatizacion2/internal/repositories"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionPostgreSQL struct {
	db *gorm.DB
}

func NewSessionPostgreSQL(db *gorm.DB) repositories.SessionRepository {
	return &SessionPostgreSQL{db: db}
}

func (s *SessionPostgreSQL) Create(ctx context.Context, session *models.TestSession) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Create(session).Error
}

func (s *SessionPostgreSQL) GetByID(ctx context.Context, id string) (*models.TestSession, error) {
	var session models.TestSession
	if err := s.db.WithContext(ctx).First(&session, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &session, nil
}

func (s *SessionPostgreSQL) GetWithResponses(ctx context.Context, id string) (*models.TestSession, error) {
	var session models.TestSession
	if err := s.db.WithContext(ctx).
		Preload("Responses", orderResponses).
		First(&session, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &session, nil
}

func (s *SessionPostgreSQL) UpsertResponse(ctx context.Context, response *models.SessionResponse) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}, {Name: "question_number"}},
			DoUpdates: clause.AssignmentColumns([]string{"options", "updated_at"}),
		}).
		Create(response).Error
}

func (s *SessionPostgreSQL) CountResponses(ctx context.Context, sessionID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.SessionResponse{}).
		Where("session_id = ?", sessionID).
		Count(&count).Error
	return count, err
}

func (s *SessionPostgreSQL) MarkCompleted(ctx context.Context, id string, at time.Time) error {
	result := s.db.WithContext(ctx).
		Model(&models.TestSession{}).
		Where("id = ? AND completed = ?", id, false).
		Updates(map[string]interface{}{
			"completed":    true,
			"completed_at": at,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// Nothing updated: either the session is missing or it was completed before.
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return repositories.ErrAlreadyCompleted
}

func (s *SessionPostgreSQL) List(ctx context.Context, filters repositories.SessionFilters) ([]*models.TestSession, int64, error) {
	return s.list(ctx, filters, false)
}

func (s *SessionPostgreSQL) ListWithResponses(ctx context.Context, filters repositories.SessionFilters) ([]*models.TestSession, int64, error) {
	return s.list(ctx, filters, true)
}

func (s *SessionPostgreSQL) list(ctx context.Context, filters repositories.SessionFilters, withResponses bool) ([]*models.TestSession, int64, error) {
	var sessions []*models.TestSession
	var total int64
	filters = filters.Normalized()

	// apply filter first
	query := s.applyFilters(s.db.WithContext(ctx).Model(&models.TestSession{}), filters)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// then apply pagination and sorting
	query = s.applyPaginationAndSort(query, filters)
	if withResponses {
		query = query.Preload("Responses", orderResponses)
	}

	if err := query.Find(&sessions).Error; err != nil {
		return nil, 0, err
	}
	return sessions, total, nil
}

func (s *SessionPostgreSQL) applyFilters(query *gorm.DB, filters repositories.SessionFilters) *gorm.DB {
	if filters.Sex != nil {
		query = query.Where("sex = ?", *filters.Sex)
	}
	if filters.Completed != nil {
		query = query.Where("completed = ?", *filters.Completed)
	}
	if filters.DateFrom != nil {
		query = query.Where("created_at >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("created_at <= ?", *filters.DateTo)
	}
	return query
}

func (s *SessionPostgreSQL) applyPaginationAndSort(query *gorm.DB, filters repositories.SessionFilters) *gorm.DB {
	query = query.Order(clause.OrderByColumn{
		Column: clause.Column{Name: filters.SortBy},
		Desc:   filters.SortOrder == "desc",
	})
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}
	return query
}

func orderResponses(db *gorm.DB) *gorm.DB {
	return db.Order("question_number ASC")
}

func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repositories.ErrNotFound
	}
	return fmt.Errorf("session query failed: %w", err)
}
