package di

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FinScreen/pkg/cache"
	"FinScreen/pkg/config"
	applogger "FinScreen/pkg/logger"
)

type sizeRecorder struct{ last int }

func (s *sizeRecorder) RecordFetch(string, bool, float64)  {}
func (s *sizeRecorder) RecordCacheSize(n int)              { s.last = n }
func (s *sizeRecorder) RecordScreenOutcome(string, string) {}
func (s *sizeRecorder) RecordError(string)                 {}

func TestDisabledIntegrationsProvideNothing(t *testing.T) {
	cfg := config.Default()
	l := applogger.Nop()

	producer, cleanup, err := ProvideKafkaProducer(cfg, l)
	require.NoError(t, err)
	assert.Nil(t, producer)
	cleanup()
	assert.Empty(t, ProvideFetchObservers(cfg, producer, l))

	client, cleanup2, err := ProvideClickHouseClient(cfg, l)
	require.NoError(t, err)
	assert.Nil(t, client)
	cleanup2()

	archive, err := ProvideScreenArchive(cfg, client, l)
	require.NoError(t, err)
	assert.Nil(t, archive)
}

func TestProvideMemoInMemory(t *testing.T) {
	cfg := config.Default()
	memo, cleanup, err := ProvideMemo(cfg, applogger.Nop())
	require.NoError(t, err)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, memo.Set(ctx, "k", []byte("v"), time.Minute))
	got, err := memo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	_, err = memo.Get(ctx, "missing")
	assert.ErrorIs(t, err, cache.ErrCacheMiss)
}

func TestProvideSymbolCacheReportsSize(t *testing.T) {
	cfg := config.Default()
	cfg.Cache.Path = filepath.Join(t.TempDir(), "cache.json")
	rec := &sizeRecorder{last: -1}

	c := ProvideSymbolCache(cfg, applogger.Nop(), rec)
	assert.Equal(t, 0, rec.last)

	h, err := c.GetOrCreate(context.Background(), "AAPL")
	require.NoError(t, err)
	h.Release()
	assert.Equal(t, 1, rec.last)
}
