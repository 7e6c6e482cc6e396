package usecase

import (
	"context"
	"errors"
	"strings"

	"FinScreen/internal/domain/models"
	"FinScreen/internal/domain/service"
	"FinScreen/internal/service/symbolcache"
	"FinScreen/pkg/logger"
)

var ErrEmptyTicker = errors.New("empty ticker")

// StocksUseCase serves single-symbol lookups.
type StocksUseCase struct {
	cache   *symbolcache.Cache
	ensurer service.DataEnsurer
	l       *logger.Logger
}

func NewStocksUseCase(cache *symbolcache.Cache, ensurer service.DataEnsurer, l *logger.Logger) *StocksUseCase {
	return &StocksUseCase{cache: cache, ensurer: ensurer, l: l.With(logger.String("component", "stocks"))}
}

// Get returns a copy of ticker's record with every series ensured.
func (uc *StocksUseCase) Get(ctx context.Context, ticker string) (models.SymbolRecord, error) {
	ticker = strings.TrimSpace(ticker)
	if ticker == "" {
		return models.SymbolRecord{}, ErrEmptyTicker
	}

	h, err := uc.cache.GetOrCreate(ctx, ticker)
	if err != nil {
		return models.SymbolRecord{}, err
	}
	defer h.Release()

	rec := h.Record()
	uc.ensurer.All(ctx, rec)
	if err := ctx.Err(); err != nil {
		return models.SymbolRecord{}, err
	}
	uc.l.Debug("stock served", logger.String("ticker", ticker), logger.Int("index", rec.Index()))
	return rec.Clone(), nil
}
