package pkg

import (
	"fmt"
	"time"

	"github.com/Mallqui258/Automatizacion2/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDatabase(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required for %s storage", config.StoragePostgres)
	}
	return OpenDatabase(postgres.Open(cfg.DatabaseURL), cfg.IsProduction())
}

// OpenDatabase opens gorm over any dialector and sizes the connection pool.
func OpenDatabase(dialector gorm.Dialector, production bool) (*gorm.DB, error) {
	logLevel := logger.Warn
	if production {
		logLevel = logger.Error
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logLevel),
		SkipDefaultTransaction: true,
		NowFunc:                func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}
