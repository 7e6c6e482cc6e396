package usecase

import (
	"context"
	"fmt"

	"FinScreen/internal/domain/models"
	"FinScreen/internal/domain/service"
	"FinScreen/internal/service/symbolcache"
	"FinScreen/pkg/logger"
)

const stockType = "stock"

// UniverseUseCase resolves the screenable symbol set from the provider's
// traded-symbol list.
type UniverseUseCase struct {
	fetcher   service.RemoteFetcher
	cache     *symbolcache.Cache
	exchanges map[string]struct{}
	l         *logger.Logger
}

func NewUniverseUseCase(f service.RemoteFetcher, cache *symbolcache.Cache, exchanges []string, l *logger.Logger) *UniverseUseCase {
	set := make(map[string]struct{}, len(exchanges))
	for _, ex := range exchanges {
		set[ex] = struct{}{}
	}
	return &UniverseUseCase{
		fetcher:   f,
		cache:     cache,
		exchanges: set,
		l:         l.With(logger.String("component", "universe")),
	}
}

// Candidates fetches the traded list, keeps stocks on the configured
// exchanges and returns their cache indices, creating records as needed.
func (uc *UniverseUseCase) Candidates(ctx context.Context) ([]int, error) {
	var listed []models.AvailableTraded
	if err := uc.fetcher.Fetch(ctx, models.EndpointAvailableTraded, "", models.NotApplicable(), &listed); err != nil {
		return nil, fmt.Errorf("fetch traded symbols: %w", err)
	}

	indices := make([]int, 0, len(listed))
	for _, s := range listed {
		if s.Type != stockType || s.Symbol == "" {
			continue
		}
		if _, ok := uc.exchanges[s.ExchangeShortName]; !ok {
			continue
		}
		h, err := uc.cache.GetOrCreate(ctx, s.Symbol)
		if err != nil {
			return nil, err
		}
		indices = append(indices, h.Record().Index())
		h.Release()
	}

	uc.l.Info("universe resolved",
		logger.Int("listed", len(listed)),
		logger.Int("candidates", len(indices)),
	)
	return indices, nil
}
