package cache

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Mallqui258/Automatizacion2/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (CacheService, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisCache(client, slog.New(slog.NewTextHandler(io.Discard, nil))), server
}

func TestRedisCache_SetGetProfile(t *testing.T) {
	cache, server := newTestCache(t)
	ctx := context.Background()

	profile := models.Profile{
		SessionID:         "abc",
		Sex:               models.SexFemenino,
		TotalQuestions:    models.TotalQuestions,
		AnsweredQuestions: 10,
		Recommendations:   models.Recommendations{TopScales: []models.Recommendation{}},
	}
	for i := range profile.Scores {
		profile.Scores[i] = models.ScaleScore{Scale: models.ScaleCode(i), Name: "n", Score: i, MaxScore: models.MaxScaleScore, Interpretation: models.LevelPromedio}
	}
	profile.Recommendations.AllScores = profile.Scores

	require.NoError(t, cache.Set(ctx, ProfileKey("abc"), profile, time.Hour))
	assert.True(t, server.Exists("profile:abc"))
	assert.Equal(t, time.Hour, server.TTL("profile:abc"))

	var got models.Profile
	require.NoError(t, cache.Get(ctx, ProfileKey("abc"), &got))
	assert.Equal(t, profile, got)
}

func TestRedisCache_MissAndExpiry(t *testing.T) {
	cache, server := newTestCache(t)
	ctx := context.Background()

	var dest map[string]int
	assert.ErrorIs(t, cache.Get(ctx, "profile:none", &dest), ErrCacheMiss)

	require.NoError(t, cache.Set(ctx, "profile:short", map[string]int{"a": 1}, time.Minute))
	server.FastForward(2 * time.Minute)
	assert.ErrorIs(t, cache.Get(ctx, "profile:short", &dest), ErrCacheMiss)
}

func TestRedisCache_UndecodableEntryIsDropped(t *testing.T) {
	cache, server := newTestCache(t)
	require.NoError(t, server.Set("profile:bad", "not json"))

	var dest models.Profile
	assert.ErrorIs(t, cache.Get(context.Background(), "profile:bad", &dest), ErrCacheMiss)
	assert.False(t, server.Exists("profile:bad"))
}

func TestRedisCache_DeleteAndDeletePattern(t *testing.T) {
	cache, server := newTestCache(t)
	ctx := context.Background()

	for i := 0; i < 250; i++ {
		require.NoError(t, server.Set(ProfileKey(fmt.Sprintf("s-%d", i)), "{}"))
	}
	require.NoError(t, server.Set("other:1", "{}"))

	require.NoError(t, cache.Delete(ctx, "other:1"))
	assert.False(t, server.Exists("other:1"))

	require.NoError(t, cache.DeletePattern(ctx, "profile:*"))
	assert.Empty(t, server.Keys())
}

func TestRedisCache_ServerDown(t *testing.T) {
	cache, server := newTestCache(t)
	server.Close()

	err := cache.Set(context.Background(), "k", 1, time.Minute)
	assert.Error(t, err)

	var dest int
	err = cache.Get(context.Background(), "k", &dest)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}

func TestNoopCache(t *testing.T) {
	cache := NewNoopCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", 1, time.Minute))
	var dest int
	assert.ErrorIs(t, cache.Get(ctx, "k", &dest), ErrCacheMiss)
	assert.NoError(t, cache.Delete(ctx, "k"))
	assert.NoError(t, cache.DeletePattern(ctx, "*"))
}
