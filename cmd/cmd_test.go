package cmd

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Mallqui258/Automatizacion2/internal/models"
	"github.com/Mallqui258/Automatizacion2/internal/repositories"
	"github.com/Mallqui258/Automatizacion2/internal/repositories/memory"
	"github.com/Mallqui258/Automatizacion2/internal/services"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSeedSessions(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()
	manager := services.NewServiceManager(services.Dependencies{Repository: repo, Logger: discardSlog()})

	ids, err := seedSessions(ctx, manager.Session(), 2, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.Len(t, ids, 4)

	completed := true
	sessions, total, err := repo.Session().ListWithResponses(ctx, repositories.SessionFilters{Completed: &completed})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	for _, s := range sessions {
		assert.Len(t, s.Responses, models.TotalQuestions, "every item gets a stored response")
	}

	female := models.SexFemenino
	_, total, err = repo.Session().List(ctx, repositories.SessionFilters{Sex: &female})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestScoreCommand(t *testing.T) {
	out, err := execute(t, `{"1": ["A", "B"], "2": []}`, "score", "--sex", "femenino", "--answers", "-")
	require.NoError(t, err)

	var profile models.Profile
	require.NoError(t, json.Unmarshal([]byte(out), &profile))
	assert.Equal(t, models.SexFemenino, profile.Sex)
	assert.Equal(t, 2, profile.Scores.Get(models.ScaleCCFM).Score)
	assert.Equal(t, 1, profile.AnsweredQuestions)

	path := filepath.Join(t.TempDir(), "answers.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"200": ["A"]}`), 0o600))
	_, err = execute(t, "", "score", "--sex", "femenino", "--answers", path)
	assert.Error(t, err)
}

func TestExportCommand_MemoryStorage(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	for _, key := range []string{"REDIS_URL", "EVENTS_ENABLED", "STORAGE", "CACHE_TTL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	target := filepath.Join(dir, "sessions.csv")
	out, err := execute(t, "", "export", "--storage", "memory", "--format", "csv", "--out", target)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+target)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "empty store exports only the header")
	assert.Equal(t, "session_id", records[0][0])
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "casm83 (devel)\n", out)
}

func TestFlushCacheCommand(t *testing.T) {
	chdir(t, t.TempDir())
	for _, key := range []string{"EVENTS_ENABLED", "STORAGE", "CACHE_TTL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	mr := miniredis.RunT(t)
	require.NoError(t, mr.Set("profile:a", "{}"))
	require.NoError(t, mr.Set("profile:b", "{}"))
	require.NoError(t, mr.Set("other", "kept"))
	t.Setenv("REDIS_URL", "redis://"+mr.Addr())

	out, err := execute(t, "", "flush-cache", "--storage", "memory")
	require.NoError(t, err)
	assert.Contains(t, out, "profile cache flushed")

	assert.False(t, mr.Exists("profile:a"))
	assert.False(t, mr.Exists("profile:b"))
	assert.True(t, mr.Exists("other"))
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
