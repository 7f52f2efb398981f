package pkg

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Mallqui258/Automatizacion2/internal/config"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
)

func TestNewRedisClient(t *testing.T) {
	ctx := context.Background()

	client, err := NewRedisClient(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, client)

	mr := miniredis.RunT(t)
	client, err = NewRedisClient(ctx, "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	require.NotNil(t, client)
	defer client.Close()
	assert.NoError(t, client.Set(ctx, "k", "v", 0).Err())

	_, err = NewRedisClient(ctx, "not a url")
	assert.Error(t, err)

	mr.Close()
	_, err = NewRedisClient(ctx, "redis://"+mr.Addr()+"/0")
	assert.Error(t, err)
}

func TestOpenDatabase(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := OpenDatabase(postgres.New(postgres.Config{Conn: sqlDB}), false)
	require.NoError(t, err)

	mock.ExpectExec(`SELECT 1`).WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, db.Exec("SELECT 1").Error)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitDatabase_RequiresURL(t *testing.T) {
	_, err := InitDatabase(&config.Config{Storage: config.StoragePostgres})
	assert.Error(t, err)
}
