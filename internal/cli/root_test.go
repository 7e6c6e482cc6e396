package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FinScreen/internal/di"
	"FinScreen/internal/service/fmp"
	"FinScreen/internal/service/symbolcache"
	"FinScreen/internal/service/throttle"
	"FinScreen/pkg/config"
	"FinScreen/pkg/logger"
)

func testState(t *testing.T, path string) *di.AppState {
	t.Helper()
	symbols := symbolcache.New()
	h, err := symbols.GetOrCreate(context.Background(), "AAPL")
	require.NoError(t, err)
	h.Release()

	return &di.AppState{
		Config:  &config.Config{Cache: config.Cache{Path: path}},
		Logger:  logger.Nop(),
		Symbols: symbols,
		Fetcher: fmp.NewFetcher(nil, throttle.New(), logger.Nop()),
	}
}

func TestPersistWritesCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	s := testState(t, path)

	require.NoError(t, persist(s, nil))
	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), "AAPL")

	runErr := errors.New("screen failed")
	assert.ErrorIs(t, persist(s, runErr), runErr)
}

func TestPersistSaveFailureKeepsCommandResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "cache.json")
	s := testState(t, path)

	assert.NoError(t, persist(s, nil))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	runErr := errors.New("prefetch failed")
	assert.ErrorIs(t, persist(s, runErr), runErr)
}
