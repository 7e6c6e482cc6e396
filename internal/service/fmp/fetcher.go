package fmp

import (
	"context"
	"net/http"
	"time"

	"FinScreen/internal/domain/models"
	"FinScreen/internal/domain/repository"
	"FinScreen/internal/service/throttle"
	xhttp "FinScreen/pkg/http"
	"FinScreen/pkg/logger"
)

// RemoteCaller performs one unthrottled provider call.
type RemoteCaller interface {
	Call(ctx context.Context, endpoint models.Endpoint, symbol string, period models.TimePeriod, dest any) error
}

// Fetcher is the only path to the provider. Every call waits on the shared
// throttle, is counted, and is reported to the metrics sink and observers.
type Fetcher struct {
	caller    RemoteCaller
	throttle  *throttle.Throttle
	metrics   repository.Metrics
	observers []repository.FetchObserver
	logger    *logger.Logger
}

type FetcherOption func(*Fetcher)

func WithMetrics(m repository.Metrics) FetcherOption {
	return func(f *Fetcher) { f.metrics = m }
}

func WithObservers(obs ...repository.FetchObserver) FetcherOption {
	return func(f *Fetcher) {
		for _, o := range obs {
			if o != nil {
				f.observers = append(f.observers, o)
			}
		}
	}
}

func NewFetcher(caller RemoteCaller, th *throttle.Throttle, l *logger.Logger, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		caller:   caller,
		throttle: th,
		logger:   l.With(logger.String("component", "fetcher")),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch waits for its turn, calls the provider and decodes into dest.
// On error dest may be partially written; callers should discard it.
func (f *Fetcher) Fetch(ctx context.Context, endpoint models.Endpoint, symbol string, period models.TimePeriod, dest any) error {
	seq, err := f.throttle.Wait(ctx)
	if err != nil {
		return err
	}

	start := time.Now()
	err = f.caller.Call(ctx, endpoint, symbol, period, dest)
	elapsed := time.Since(start)

	switch {
	case err != nil && ctx.Err() != nil:
		// abandoned by the caller, not a provider failure
		f.logger.Debug("fetch abandoned",
			logger.String("endpoint", endpoint.String()),
			logger.String("ticker", symbol),
			logger.Uint64("seq", seq),
			logger.Error(err),
		)
		if f.metrics != nil {
			f.metrics.RecordError("fetch_cancelled")
		}
	case err != nil:
		failures := f.throttle.RecordFailure()
		f.logger.Warn("fetch failed",
			logger.String("endpoint", endpoint.String()),
			logger.String("ticker", symbol),
			logger.String("period", period.String()),
			logger.Uint64("seq", seq),
			logger.Uint64("failures", failures),
			logger.Error(err),
		)
		if f.metrics != nil {
			f.metrics.RecordError(failureKind(err))
		}
	default:
		f.logger.Debug("fetched",
			logger.String("endpoint", endpoint.String()),
			logger.String("ticker", symbol),
			logger.String("period", period.String()),
			logger.Uint64("seq", seq),
			logger.Duration("duration_ms", elapsed),
		)
	}

	if f.metrics != nil {
		f.metrics.RecordFetch(endpoint.String(), err == nil, elapsed.Seconds())
	}
	if len(f.observers) > 0 {
		ev := repository.FetchEvent{
			Seq:      seq,
			Endpoint: endpoint.String(),
			Ticker:   symbol,
			Period:   period.String(),
			At:       start,
			Duration: elapsed,
			Err:      err,
		}
		for _, o := range f.observers {
			o.ObserveFetch(ctx, ev)
		}
	}
	return err
}

func failureKind(err error) string {
	switch {
	case xhttp.IsStatus(err, http.StatusUnauthorized), xhttp.IsStatus(err, http.StatusForbidden):
		return "fetch_auth"
	case xhttp.IsStatus(err, http.StatusTooManyRequests):
		return "fetch_rate_limited"
	default:
		return "fetch"
	}
}

// Stats exposes the throttle counters.
func (f *Fetcher) Stats() throttle.Stats { return f.throttle.Stats() }
