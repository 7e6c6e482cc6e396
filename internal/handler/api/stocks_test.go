package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FinScreen/internal/domain/models"
	"FinScreen/internal/service/store"
	"FinScreen/internal/service/symbolcache"
	"FinScreen/internal/usecase"
	"FinScreen/pkg/cache"
	xlogger "FinScreen/pkg/logger"
)

type countingProvider struct {
	mu     sync.Mutex
	bodies map[models.Endpoint]string
	calls  map[models.Endpoint]int
	before func(endpoint models.Endpoint)
}

func (p *countingProvider) Fetch(ctx context.Context, endpoint models.Endpoint, _ string, _ models.TimePeriod, dest any) error {
	if p.before != nil {
		p.before(endpoint)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls[endpoint]++
	body, ok := p.bodies[endpoint]
	if !ok {
		body = "[]"
	}
	return json.Unmarshal([]byte(body), dest)
}

func (p *countingProvider) count(endpoint models.Endpoint) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[endpoint]
}

func newTestServer(t *testing.T, p *countingProvider) *echo.Echo {
	t.Helper()
	l := xlogger.Nop()
	symbols := symbolcache.New()
	ensurer := store.NewEnsurer(p, l, store.WithClock(func() models.Date {
		return models.NewDate(2025, time.March, 1)
	}))
	memo := cache.NewMemoryCache()
	t.Cleanup(func() { _ = memo.Close() })

	h := NewStocksHandler(l,
		usecase.NewStocksUseCase(symbols, ensurer, l),
		usecase.NewScreenerUseCase(symbols, ensurer, l),
		usecase.NewUniverseUseCase(p, symbols, []string{"NYSE", "NASDAQ"}, l),
		memo, time.Hour,
	)
	e := echo.New()
	h.RegisterRoutes(e)
	return e
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestStockReturnsSingleRecordAndMemoizes(t *testing.T) {
	p := &countingProvider{
		bodies: map[models.Endpoint]string{
			models.EndpointProfile: `[{"symbol":"AAPL","companyName":"Apple Inc."}]`,
		},
		calls: map[models.Endpoint]int{},
	}
	e := newTestServer(t, p)

	rec := get(e, "/api/stock/AAPL")
	require.Equal(t, http.StatusOK, rec.Code)

	var body []models.SymbolRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "AAPL", body[0].Ticker)
	assert.Equal(t, 1, body[0].Profile.Len())

	again := get(e, "/api/stock/AAPL")
	assert.Equal(t, http.StatusOK, again.Code)
	assert.Equal(t, rec.Body.String(), again.Body.String())
	assert.Equal(t, 1, p.count(models.EndpointProfile))
}

func TestCancelledStockRequestIsNotMemoized(t *testing.T) {
	p := &countingProvider{
		bodies: map[models.Endpoint]string{
			models.EndpointProfile: `[{"symbol":"AAPL","companyName":"Apple Inc."}]`,
		},
		calls: map[models.Endpoint]int{},
	}
	e := newTestServer(t, p)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.before = func(endpoint models.Endpoint) {
		if endpoint == models.EndpointProfile {
			cancel()
		}
	}
	req := httptest.NewRequest(http.MethodGet, "/api/stock/AAPL", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Zero(t, p.count(models.EndpointProfile))

	p.before = nil
	next := get(e, "/api/stock/AAPL")
	require.Equal(t, http.StatusOK, next.Code)
	var body []models.SymbolRecord
	require.NoError(t, json.Unmarshal(next.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, 1, body[0].Profile.Len())
	assert.Equal(t, 1, p.count(models.EndpointProfile))
}

func TestStockRejectsOverlongTicker(t *testing.T) {
	p := &countingProvider{calls: map[models.Endpoint]int{}}
	e := newTestServer(t, p)

	rec := get(e, "/api/stock/ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, p.count(models.EndpointProfile))
}

func TestUnknownScreenerIsEmpty(t *testing.T) {
	p := &countingProvider{calls: map[models.Endpoint]int{}}
	e := newTestServer(t, p)

	rec := get(e, "/api/screeners/graham")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	assert.Zero(t, p.count(models.EndpointAvailableTraded))
}

func TestBuffetologyScreenerRunsOverUniverse(t *testing.T) {
	p := &countingProvider{
		bodies: map[models.Endpoint]string{
			models.EndpointAvailableTraded: `[
				{"symbol":"AAPL","type":"stock","exchangeShortName":"NASDAQ"},
				{"symbol":"SPY","type":"etf","exchangeShortName":"NYSE"}
			]`,
			models.EndpointIncomeStatement: `[{"date":"2024-12-31","eps":1}]`,
		},
		calls: map[models.Endpoint]int{},
	}
	e := newTestServer(t, p)

	rec := get(e, "/api/screeners/Buffetology")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	assert.Equal(t, 1, p.count(models.EndpointAvailableTraded))
	assert.Equal(t, 1, p.count(models.EndpointIncomeStatement))
	assert.Zero(t, p.count(models.EndpointKeyMetrics))

	get(e, "/api/screeners/buffetology")
	assert.Equal(t, 1, p.count(models.EndpointAvailableTraded))
}
