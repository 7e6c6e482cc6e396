package di

import (
	"context"
	"fmt"
	"time"

	"FinScreen/internal/domain/repository"
	internalrepo "FinScreen/internal/repository"
	"FinScreen/internal/service/fmp"
	"FinScreen/internal/service/store"
	"FinScreen/internal/service/symbolcache"
	"FinScreen/internal/service/throttle"
	"FinScreen/internal/usecase"
	"FinScreen/pkg/cache"
	pkgch "FinScreen/pkg/clickhouse"
	"FinScreen/pkg/config"
	pkgkafka "FinScreen/pkg/kafka"
	applogger "FinScreen/pkg/logger"
	"FinScreen/pkg/metrics"
)

// ProvideLogger builds the process logger from the log section.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l.With(applogger.String("env", cfg.Environment)), nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() *metrics.Recorder {
	return metrics.New()
}

// ProvideSymbolCache restores the persisted cache, or starts empty.
func ProvideSymbolCache(cfg *config.Config, l *applogger.Logger, m repository.Metrics) *symbolcache.Cache {
	c := symbolcache.Load(cfg.Cache.Path,
		symbolcache.WithLogger(l),
		symbolcache.WithSizeObserver(m.RecordCacheSize),
	)
	m.RecordCacheSize(c.Len())
	return c
}

func ProvideThrottle(cfg *config.Config) *throttle.Throttle {
	return throttle.New(throttle.WithInterval(cfg.FMP.ThrottleInterval, cfg.FMP.ThrottleTicks))
}

func ProvideFMPClient(cfg *config.Config) *fmp.Client {
	return fmp.NewClient(cfg.FMP.APIKey, cfg.FMP.Timeout, fmp.WithBaseURL(cfg.FMP.BaseURL))
}

// ProvideKafkaProducer returns nil when kafka is disabled.
func ProvideKafkaProducer(cfg *config.Config, l *applogger.Logger) (*pkgkafka.Producer, func(), error) {
	if !cfg.Kafka.Enabled {
		return nil, func() {}, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithAsync(true),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("kafka producer: %w", err)
	}
	cleanup := func() {
		if err := producer.Close(); err != nil {
			l.Warn("kafka producer close error", applogger.Error(err))
		}
	}
	return producer, cleanup, nil
}

// ProvideFetchObservers lists the sinks every provider call is reported to.
func ProvideFetchObservers(cfg *config.Config, producer *pkgkafka.Producer, l *applogger.Logger) []repository.FetchObserver {
	if producer == nil {
		return nil
	}
	return []repository.FetchObserver{
		internalrepo.NewKafkaFetchPublisher(producer, cfg.Kafka.Topic, l),
	}
}

func ProvideFetcher(
	caller fmp.RemoteCaller,
	th *throttle.Throttle,
	m repository.Metrics,
	observers []repository.FetchObserver,
	l *applogger.Logger,
) *fmp.Fetcher {
	return fmp.NewFetcher(caller, th, l, fmp.WithMetrics(m), fmp.WithObservers(observers...))
}

func ProvideEnsurer(f *fmp.Fetcher, l *applogger.Logger) *store.Ensurer {
	return store.NewEnsurer(f, l)
}

// ProvideClickHouseClient returns nil when the archive is disabled.
func ProvideClickHouseClient(cfg *config.Config, l *applogger.Logger) (*pkgch.Client, func(), error) {
	if !cfg.ClickHouse.Enabled {
		return nil, func() {}, nil
	}
	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(4, 2),
		pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
		pkgch.WithAsyncInsert(cfg.ClickHouse.AsyncInsert),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, 30*time.Second),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("clickhouse client: %w", err)
	}
	cleanup := func() {
		if err := client.Close(); err != nil {
			l.Warn("clickhouse close error", applogger.Error(err))
		}
	}
	return client, cleanup, nil
}

// ProvideScreenArchive creates the outcome table and returns the archive,
// or nil without a ClickHouse client.
func ProvideScreenArchive(cfg *config.Config, client *pkgch.Client, l *applogger.Logger) (repository.ScreenArchive, error) {
	if client == nil {
		return nil, nil
	}
	archive := internalrepo.NewCHScreenArchive(client.DB(), cfg.ClickHouse.Table, l)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := archive.Init(ctx); err != nil {
		return nil, fmt.Errorf("clickhouse schema: %w", err)
	}
	return archive, nil
}

// ProvideMemo builds the HTTP response memo: in-memory, optionally in
// front of Redis.
func ProvideMemo(cfg *config.Config, l *applogger.Logger) (cache.Service, func(), error) {
	memOpts := []cache.MemoryOption{cache.WithMemoryMaxSize(cfg.Memo.Size)}

	var svc cache.Service
	if cfg.Memo.Redis.Enabled {
		r := cfg.Memo.Redis
		remote, err := cache.NewRedisCache(
			cache.WithRedisHost(r.Host),
			cache.WithRedisPort(r.Port),
			cache.WithRedisPassword(r.Password),
			cache.WithRedisDB(r.DB),
			cache.WithRedisPrefix(r.Prefix),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("redis memo: %w", err)
		}
		svc = cache.NewLayeredCache(remote, cfg.Memo.TTL, memOpts...)
	} else {
		svc = cache.NewMemoryCache(memOpts...)
	}

	cleanup := func() {
		if err := svc.Close(); err != nil {
			l.Warn("memo close error", applogger.Error(err))
		}
	}
	return svc, cleanup, nil
}

func ProvideStocksUseCase(c *symbolcache.Cache, e *store.Ensurer, l *applogger.Logger) *usecase.StocksUseCase {
	return usecase.NewStocksUseCase(c, e, l)
}

func ProvideScreenerUseCase(
	cfg *config.Config,
	c *symbolcache.Cache,
	e *store.Ensurer,
	archive repository.ScreenArchive,
	m repository.Metrics,
	l *applogger.Logger,
) *usecase.ScreenerUseCase {
	return usecase.NewScreenerUseCase(c, e, l,
		usecase.WithConcurrency(cfg.Screener.Concurrency),
		usecase.WithArchive(archive),
		usecase.WithScreenMetrics(m),
	)
}

func ProvideUniverseUseCase(cfg *config.Config, f *fmp.Fetcher, c *symbolcache.Cache, l *applogger.Logger) *usecase.UniverseUseCase {
	return usecase.NewUniverseUseCase(f, c, cfg.Screener.Exchanges, l)
}

func ProvidePrefetchUseCase(cfg *config.Config, c *symbolcache.Cache, e *store.Ensurer, l *applogger.Logger) *usecase.PrefetchUseCase {
	return usecase.NewPrefetchUseCase(c, e, cfg.Screener.Concurrency, l)
}
