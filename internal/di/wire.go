//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"FinScreen/internal/domain/repository"
	"FinScreen/internal/service/fmp"
	"FinScreen/pkg/config"
	"FinScreen/pkg/metrics"
)

// InitializeAppState wires up all dependencies. The returned cleanup closes
// external clients in reverse order.
func InitializeAppState(cfg *config.Config) (*AppState, func(), error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,
		wire.Bind(new(repository.Metrics), new(*metrics.Recorder)),

		// Provider access
		ProvideSymbolCache,
		ProvideThrottle,
		ProvideFMPClient,
		wire.Bind(new(fmp.RemoteCaller), new(*fmp.Client)),
		ProvideKafkaProducer,
		ProvideFetchObservers,
		ProvideFetcher,
		ProvideEnsurer,

		// Archive and memo
		ProvideClickHouseClient,
		ProvideScreenArchive,
		ProvideMemo,

		// Use cases
		ProvideStocksUseCase,
		ProvideScreenerUseCase,
		ProvideUniverseUseCase,
		ProvidePrefetchUseCase,

		wire.Struct(new(AppState), "*"),
	)
	return nil, nil, nil
}
