package services

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/Mallqui258/Automatizacion2/internal/events"
	"github.com/Mallqui258/Automatizacion2/internal/repositories/memory"
	"github.com/stretchr/testify/mock"
)

// MockCacheService is a mock implementation of cache.CacheService
type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheService) Get(ctx context.Context, key string, dest interface{}) error {
	args := m.Called(ctx, key, dest)
	return args.Error(0)
}

func (m *MockCacheService) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheService) DeletePattern(ctx context.Context, pattern string) error {
	args := m.Called(ctx, pattern)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of events.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishSessionEvent(ctx context.Context, event *events.SessionEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testEnv struct {
	manager   ServiceManager
	repo      *memory.Repository
	publisher *events.MockEventPublisher
}

func newTestEnv() *testEnv {
	logger := discardLogger()
	repo := memory.NewRepository()
	publisher := events.NewMockEventPublisher(logger)
	return &testEnv{
		manager: NewServiceManager(Dependencies{
			Repository: repo,
			Publisher:  publisher,
			CacheTTL:   time.Hour,
			Logger:     logger,
		}),
		repo:      repo,
		publisher: publisher,
	}
}
