package repository

import (
	"context"
	"time"

	"FinScreen/internal/domain/models"
)

// FetchEvent describes one completed remote call.
type FetchEvent struct {
	Seq      uint64
	Endpoint string
	Ticker   string
	Period   string
	At       time.Time
	Duration time.Duration
	Err      error
}

// FetchObserver is notified after every remote call, successful or not.
// Implementations must not block the caller for long.
type FetchObserver interface {
	ObserveFetch(ctx context.Context, ev FetchEvent)
}

// ScreenArchive stores screen verdicts for later analysis.
type ScreenArchive interface {
	Init(ctx context.Context) error
	StoreOutcomes(ctx context.Context, outcomes []models.ScreenOutcome) error
	Close() error
}

type Metrics interface {
	RecordFetch(endpoint string, ok bool, seconds float64)
	RecordCacheSize(n int)
	RecordScreenOutcome(screen, step string)
	RecordError(kind string)
}
