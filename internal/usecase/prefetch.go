package usecase

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"FinScreen/internal/domain/service"
	"FinScreen/internal/service/symbolcache"
	"FinScreen/pkg/logger"
)

// PrefetchUseCase ensures every series for a set of symbols.
type PrefetchUseCase struct {
	cache       *symbolcache.Cache
	ensurer     service.DataEnsurer
	concurrency int
	l           *logger.Logger
}

func NewPrefetchUseCase(cache *symbolcache.Cache, ensurer service.DataEnsurer, concurrency int, l *logger.Logger) *PrefetchUseCase {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &PrefetchUseCase{
		cache:       cache,
		ensurer:     ensurer,
		concurrency: concurrency,
		l:           l.With(logger.String("component", "prefetch")),
	}
}

// Run ensures all data for each index, logging whole-percent progress.
// It returns the number of symbols processed.
func (uc *PrefetchUseCase) Run(ctx context.Context, indices []int) (int, error) {
	total := len(indices)
	if total == 0 {
		return 0, nil
	}
	start := time.Now()

	var done, lastPct atomic.Int64
	lastPct.Store(-1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency)
	for _, idx := range indices {
		g.Go(func() error {
			h, err := uc.cache.ByIndex(gctx, idx)
			if err != nil {
				return fmt.Errorf("prefetch index %d: %w", idx, err)
			}
			rec := h.Record()
			uc.ensurer.All(gctx, rec)
			ticker := rec.Ticker
			h.Release()

			n := done.Add(1)
			pct := n * 100 / int64(total)
			if prev := lastPct.Load(); pct > prev && lastPct.CompareAndSwap(prev, pct) {
				uc.l.Info("prefetch progress",
					logger.Int64("percent", pct),
					logger.Int64("done", n),
					logger.Int("total", total),
					logger.String("ticker", ticker),
				)
			}
			return gctx.Err()
		})
	}
	err := g.Wait()

	uc.l.Info("prefetch finished",
		logger.Int64("done", done.Load()),
		logger.Int("total", total),
		logger.Duration("duration_ms", time.Since(start)),
	)
	return int(done.Load()), err
}
