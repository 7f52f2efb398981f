package postgres

import (
	"context"
	"fmt"

	"github.com/Mallqui258/Automatizacion2/internal/models"
	"github.com/Mallqui258/Automatizacion2/internal/repositories"
	"gorm.io/gorm"
)

type Repository struct {
	db       *gorm.DB
	sessions repositories.SessionRepository
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:       db,
		sessions: NewSessionPostgreSQL(db),
	}
}

func (r *Repository) Session() repositories.SessionRepository {
	return r.sessions
}

// Migrate creates or updates the session tables.
func (r *Repository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&models.TestSession{}, &models.SessionResponse{}); err != nil {
		return fmt.Errorf("failed to migrate session tables: %w", err)
	}
	return nil
}
