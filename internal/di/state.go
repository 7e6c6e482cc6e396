package di

import (
	"context"

	"FinScreen/internal/handler/api"
	"FinScreen/internal/service/fmp"
	"FinScreen/internal/service/ratelimit"
	"FinScreen/internal/service/symbolcache"
	"FinScreen/internal/usecase"
	"FinScreen/pkg/cache"
	"FinScreen/pkg/config"
	xhttp "FinScreen/pkg/http"
	applogger "FinScreen/pkg/logger"
	"FinScreen/pkg/metrics"
	"FinScreen/pkg/server"
)

// AppState is built once per process and handed to whichever command runs.
type AppState struct {
	Config   *config.Config
	Logger   *applogger.Logger
	Metrics  *metrics.Recorder
	Symbols  *symbolcache.Cache
	Fetcher  *fmp.Fetcher
	Stocks   *usecase.StocksUseCase
	Screener *usecase.ScreenerUseCase
	Universe *usecase.UniverseUseCase
	Prefetch *usecase.PrefetchUseCase
	Memo     cache.Service
}

// SaveCache snapshots the symbol cache to the configured path.
func (s *AppState) SaveCache() error {
	return s.Symbols.Save(s.Config.Cache.Path)
}

// LogFetchStats reports the throttle counters.
func (s *AppState) LogFetchStats() {
	st := s.Fetcher.Stats()
	s.Logger.Info("fetch stats",
		applogger.Uint64("attempts", st.Attempts),
		applogger.Uint64("failures", st.Failures),
	)
}

// Server assembles the HTTP application. The cache is snapshotted after
// the listener stops.
func (s *AppState) Server() *server.App {
	sc := s.Config.Server

	handler := api.NewStocksHandler(s.Logger, s.Stocks, s.Screener, s.Universe, s.Memo, s.Config.Memo.TTL)

	opts := []xhttp.ServerOption{
		xhttp.WithHost(sc.Host),
		xhttp.WithPort(sc.Port),
		xhttp.WithTimeouts(sc.ReadTimeout, sc.WriteTimeout, sc.ShutdownTimeout),
		xhttp.WithCORS(sc.CORS),
	}
	if sc.RateLimit > 0 {
		opts = append(opts, xhttp.WithRateLimit(ratelimit.New(float64(sc.RateBurst), sc.RateLimit)))
	}
	httpServer := xhttp.NewServer(s.Logger, []xhttp.Handler{handler}, opts...)

	return server.New(s.Logger, httpServer,
		server.WithShutdownTimeout(sc.ShutdownTimeout),
		server.WithShutdownHook("cache snapshot", func(context.Context) error {
			s.LogFetchStats()
			return s.SaveCache()
		}),
	)
}
