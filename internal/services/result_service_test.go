package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Mallqui258/Automatizacion2/internal/cache"
	apperrors "github.com/Mallqui258/Automatizacion2/internal/errors"
	"github.com/Mallqui258/Automatizacion2/internal/models"
	"github.com/Mallqui258/Automatizacion2/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResultService_GetProfile_OpenSessionIsNotCached(t *testing.T) {
	cacheMock := new(MockCacheService)
	cacheMock.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(cache.ErrCacheMiss)
	cacheMock.On("Delete", mock.Anything, mock.Anything).Return(nil)

	manager := NewServiceManager(Dependencies{Repository: memory.NewRepository(), Cache: cacheMock, Logger: discardLogger()})
	ctx := context.Background()

	started, err := manager.Session().Start(ctx, &StartSessionRequest{Sex: "masculino"})
	require.NoError(t, err)
	_, err = manager.Session().SaveResponse(ctx, &SaveResponseRequest{SessionID: started.SessionID, QuestionNumber: 1, Response: []string{"A", "B"}})
	require.NoError(t, err)

	profile, err := manager.Result().GetProfile(ctx, started.SessionID)
	require.NoError(t, err)
	assert.Equal(t, started.SessionID, profile.SessionID)
	assert.Equal(t, 2, profile.Scores.Get(models.ScaleCCFM).Score, "item 1 sits in both the column and the row of CCFM")
	assert.Equal(t, 1, profile.AnsweredQuestions)
	assert.Equal(t, models.TotalQuestions, profile.TotalQuestions)

	cacheMock.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestResultService_GetProfile_CompletedSessionIsCached(t *testing.T) {
	cacheMock := new(MockCacheService)
	cacheMock.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(cache.ErrCacheMiss)
	cacheMock.On("Set", mock.Anything, mock.Anything, mock.AnythingOfType("*models.Profile"), 30*time.Minute).Return(nil)

	manager := NewServiceManager(Dependencies{
		Repository: memory.NewRepository(),
		Cache:      cacheMock,
		CacheTTL:   30 * time.Minute,
		Logger:     discardLogger(),
	})
	ctx := context.Background()

	started, err := manager.Session().Start(ctx, &StartSessionRequest{Sex: "femenino"})
	require.NoError(t, err)
	_, err = manager.Session().Complete(ctx, &CompleteSessionRequest{SessionID: started.SessionID})
	require.NoError(t, err)
	_, err = manager.Result().GetProfile(ctx, started.SessionID)
	require.NoError(t, err)

	cacheMock.AssertCalled(t, "Set", mock.Anything, cache.ProfileKey(started.SessionID), mock.AnythingOfType("*models.Profile"), 30*time.Minute)
}

func TestResultService_GetProfile_CacheHit(t *testing.T) {
	cached := models.Profile{SessionID: "cached", Sex: models.SexFemenino, TotalQuestions: models.TotalQuestions, AnsweredQuestions: 99}

	cacheMock := new(MockCacheService)
	cacheMock.On("Get", mock.Anything, cache.ProfileKey("cached"), mock.Anything).
		Run(func(args mock.Arguments) {
			*args.Get(2).(*models.Profile) = cached
		}).
		Return(nil)

	// The session does not exist in storage; a hit must not reach the repository.
	manager := NewServiceManager(Dependencies{Repository: memory.NewRepository(), Cache: cacheMock, Logger: discardLogger()})

	profile, err := manager.Result().GetProfile(context.Background(), "cached")
	require.NoError(t, err)
	assert.Equal(t, 99, profile.AnsweredQuestions)
}

func TestResultService_GetProfile_CacheErrorFallsBack(t *testing.T) {
	cacheMock := new(MockCacheService)
	cacheMock.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	manager := NewServiceManager(Dependencies{Repository: memory.NewRepository(), Cache: cacheMock, Logger: discardLogger()})
	ctx := context.Background()

	started, err := manager.Session().Start(ctx, &StartSessionRequest{Sex: "femenino"})
	require.NoError(t, err)

	profile, err := manager.Result().GetProfile(ctx, started.SessionID)
	require.NoError(t, err)
	assert.Zero(t, profile.AnsweredQuestions)
	assert.NotNil(t, profile.Recommendations.TopScales)
}

func TestResultService_GetProfile_MissingSession(t *testing.T) {
	env := newTestEnv()

	_, err := env.manager.Result().GetProfile(context.Background(), "missing")
	assert.True(t, IsNotFound(err))
}

func TestResultService_ScoreAnswers(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	// All eleven column items of ARTE marked A.
	answers := map[int][]string{}
	for k := 0; k < models.ItemsPerSide; k++ {
		answers[5+13*k] = []string{"A"}
	}

	profile, err := env.manager.Result().ScoreAnswers(ctx, &ScoreRequest{Sex: "femenino", Answers: answers})
	require.NoError(t, err)
	assert.Equal(t, models.ItemsPerSide, profile.Scores.Get(models.ScaleARTE).Score)
	assert.Equal(t, models.ItemsPerSide, profile.AnsweredQuestions)
	assert.Empty(t, profile.SessionID)

	tests := []struct {
		name string
		req  *ScoreRequest
		want apperrors.InputKind
	}{
		{"unknown sex", &ScoreRequest{Sex: "x", Answers: answers}, apperrors.KindUnknownSex},
		{"unknown question", &ScoreRequest{Sex: "femenino", Answers: map[int][]string{0: {"A"}}}, apperrors.KindUnknownQuestion},
		{"malformed answer", &ScoreRequest{Sex: "femenino", Answers: map[int][]string{4: {"a"}}}, apperrors.KindMalformedAnswer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.manager.Result().ScoreAnswers(ctx, tt.req)
			assert.True(t, IsValidation(err), "got %v", err)
			kind, ok := apperrors.InputKindOf(err)
			require.True(t, ok, "got %v", err)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestResultService_FlushProfiles(t *testing.T) {
	cacheMock := new(MockCacheService)
	cacheMock.On("DeletePattern", mock.Anything, cache.ProfilePattern).Return(nil).Once()

	manager := NewServiceManager(Dependencies{Repository: memory.NewRepository(), Cache: cacheMock, Logger: discardLogger()})
	require.NoError(t, manager.Result().FlushProfiles(context.Background()))
	cacheMock.AssertExpectations(t)

	failing := new(MockCacheService)
	failing.On("DeletePattern", mock.Anything, cache.ProfilePattern).Return(errors.New("connection refused"))
	manager = NewServiceManager(Dependencies{Repository: memory.NewRepository(), Cache: failing, Logger: discardLogger()})
	err := manager.Result().FlushProfiles(context.Background())
	assert.ErrorContains(t, err, "connection refused")
}
