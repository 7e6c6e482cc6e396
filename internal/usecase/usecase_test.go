package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FinScreen/internal/domain/models"
	"FinScreen/internal/service/store"
	"FinScreen/internal/service/symbolcache"
	"FinScreen/pkg/logger"
)

var testToday = models.NewDate(2025, time.March, 1)

type callKey struct {
	endpoint models.Endpoint
	symbol   string
}

// providerStub answers fetches from canned per-symbol payloads.
type providerStub struct {
	mu        sync.Mutex
	responses map[callKey]any
	calls     map[callKey]int
	// before runs ahead of every fetch.
	before func(endpoint models.Endpoint, symbol string)
}

func newProviderStub() *providerStub {
	return &providerStub{responses: map[callKey]any{}, calls: map[callKey]int{}}
}

func (p *providerStub) set(endpoint models.Endpoint, symbol string, payload any) {
	p.responses[callKey{endpoint, symbol}] = payload
}

func (p *providerStub) Fetch(ctx context.Context, endpoint models.Endpoint, symbol string, _ models.TimePeriod, dest any) error {
	if p.before != nil {
		p.before(endpoint, symbol)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	k := callKey{endpoint, symbol}
	p.calls[k]++
	payload, ok := p.responses[k]
	if !ok {
		payload = []any{}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, dest)
}

func (p *providerStub) count(endpoint models.Endpoint, symbol string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[callKey{endpoint, symbol}]
}

func annualDates(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%d-12-31", 2024-i)
	}
	return out
}

func incomeRows(eps []float64, netIncome float64) []map[string]any {
	dates := annualDates(len(eps))
	rows := make([]map[string]any, len(eps))
	for i, v := range eps {
		rows[i] = map[string]any{"date": dates[i], "eps": v, "netIncome": netIncome}
	}
	return rows
}

func constantRows(n int, field string, v float64) []map[string]any {
	dates := annualDates(n)
	rows := make([]map[string]any, n)
	for i := range rows {
		rows[i] = map[string]any{"date": dates[i], field: v}
	}
	return rows
}

// seedPassing loads data that clears every step.
func seedPassing(p *providerStub, symbol string) {
	p.set(models.EndpointIncomeStatement, symbol, incomeRows([]float64{3, 2, 2, 2, 2, 1, 1, 1, 1, 1}, 1000))
	p.set(models.EndpointKeyMetrics, symbol, constantRows(10, "roic", 0.15))
	p.set(models.EndpointRatios, symbol, constantRows(10, "returnOnEquity", 0.18))
	p.set(models.EndpointKeyMetricsTTM, symbol, []map[string]any{{"earningsYieldTTM": 0.05}})
	p.set(models.EndpointBalanceSheet, symbol, []map[string]any{{"date": "2024-12-28", "longTermDebt": 2000}})
}

type fixture struct {
	provider *providerStub
	cache    *symbolcache.Cache
	ensurer  *store.Ensurer
}

func newFixture() *fixture {
	p := newProviderStub()
	return &fixture{
		provider: p,
		cache:    symbolcache.New(),
		ensurer: store.NewEnsurer(p, logger.Nop(), store.WithClock(func() models.Date {
			return testToday
		})),
	}
}

func (f *fixture) index(t *testing.T, ticker string) int {
	t.Helper()
	h, err := f.cache.GetOrCreate(context.Background(), ticker)
	require.NoError(t, err)
	defer h.Release()
	return h.Record().Index()
}

type metricsStub struct {
	mu       sync.Mutex
	outcomes map[string]int
}

func (m *metricsStub) RecordFetch(string, bool, float64) {}
func (m *metricsStub) RecordCacheSize(int)               {}
func (m *metricsStub) RecordError(string)                {}
func (m *metricsStub) RecordScreenOutcome(screen, step string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.outcomes == nil {
		m.outcomes = map[string]int{}
	}
	m.outcomes[screen+"/"+step]++
}

type archiveStub struct {
	stored []models.ScreenOutcome
}

func (a *archiveStub) Init(context.Context) error { return nil }
func (a *archiveStub) StoreOutcomes(_ context.Context, o []models.ScreenOutcome) error {
	a.stored = append(a.stored, o...)
	return nil
}
func (a *archiveStub) Close() error { return nil }

func TestScreenerShortCircuitsOnIncomeHistory(t *testing.T) {
	f := newFixture()
	eps := []float64{8, 7, 6, 5, 4, 3, 2, 1}
	f.provider.set(models.EndpointIncomeStatement, "SHORT", incomeRows(eps, 10))
	uc := NewScreenerUseCase(f.cache, f.ensurer, logger.Nop())

	out, err := uc.Screen(context.Background(), f.index(t, "SHORT"))
	require.NoError(t, err)

	assert.False(t, out.Passed)
	assert.Equal(t, int(StepIncomeHistory), out.FailedStep)
	assert.Equal(t, 1, f.provider.count(models.EndpointIncomeStatement, "SHORT"))
	assert.Zero(t, f.provider.count(models.EndpointKeyMetrics, "SHORT"))
	assert.Zero(t, f.provider.count(models.EndpointRatios, "SHORT"))
	assert.Zero(t, f.provider.count(models.EndpointBalanceSheet, "SHORT"))
}

func TestScreenerPassesQualifyingSymbol(t *testing.T) {
	f := newFixture()
	seedPassing(f.provider, "GOOD")
	uc := NewScreenerUseCase(f.cache, f.ensurer, logger.Nop())

	out, err := uc.Screen(context.Background(), f.index(t, "GOOD"))
	require.NoError(t, err)

	assert.True(t, out.Passed, out.Reason)
	assert.Equal(t, "GOOD", out.Ticker)
	assert.Equal(t, BuffetologyScreen, out.Screen)
	assert.Zero(t, out.FailedStep)
}

func TestScreenerRejectsNegativeEPS(t *testing.T) {
	f := newFixture()
	seedPassing(f.provider, "NEG")
	f.provider.set(models.EndpointIncomeStatement, "NEG", incomeRows([]float64{3, 2, 2, 2, 2, 1, 1, -0.5, 1, 1}, 1000))
	uc := NewScreenerUseCase(f.cache, f.ensurer, logger.Nop())

	out, err := uc.Screen(context.Background(), f.index(t, "NEG"))
	require.NoError(t, err)

	assert.False(t, out.Passed)
	assert.Equal(t, int(StepEPSPositive), out.FailedStep)
	assert.Equal(t, "eps_positive", out.StepName)
	assert.Zero(t, f.provider.count(models.EndpointKeyMetrics, "NEG"))
}

func TestScreenerRejectionSteps(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *providerStub, symbol string)
		want   Step
	}{
		{
			name: "eps declining",
			mutate: func(p *providerStub, s string) {
				p.set(models.EndpointIncomeStatement, s, incomeRows([]float64{1, 1, 1, 1, 1, 2, 2, 2, 2, 3}, 1000))
			},
			want: StepEPSGrowth,
		},
		{
			name: "low roic",
			mutate: func(p *providerStub, s string) {
				p.set(models.EndpointKeyMetrics, s, constantRows(10, "roic", 0.05))
			},
			want: StepROIC,
		},
		{
			name: "roic missing counts as zero",
			mutate: func(p *providerStub, s string) {
				p.set(models.EndpointKeyMetrics, s, constantRows(10, "revenuePerShare", 1))
			},
			want: StepROIC,
		},
		{
			name: "low roe",
			mutate: func(p *providerStub, s string) {
				p.set(models.EndpointRatios, s, constantRows(10, "returnOnEquity", 0.10))
			},
			want: StepROE,
		},
		{
			name: "no ttm metrics",
			mutate: func(p *providerStub, s string) {
				p.set(models.EndpointKeyMetricsTTM, s, []map[string]any{})
			},
			want: StepEarningsYield,
		},
		{
			name: "low earnings yield",
			mutate: func(p *providerStub, s string) {
				p.set(models.EndpointKeyMetricsTTM, s, []map[string]any{{"earningsYieldTTM": 0.01}})
			},
			want: StepEarningsYield,
		},
		{
			name: "too much debt",
			mutate: func(p *providerStub, s string) {
				p.set(models.EndpointBalanceSheet, s, []map[string]any{{"date": "2024-12-28", "longTermDebt": 6000}})
			},
			want: StepDebt,
		},
		{
			name: "debt missing",
			mutate: func(p *providerStub, s string) {
				p.set(models.EndpointBalanceSheet, s, []map[string]any{{"date": "2024-12-28"}})
			},
			want: StepDebt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			seedPassing(f.provider, "X")
			tt.mutate(f.provider, "X")
			uc := NewScreenerUseCase(f.cache, f.ensurer, logger.Nop())

			out, err := uc.Screen(context.Background(), f.index(t, "X"))
			require.NoError(t, err)
			assert.False(t, out.Passed)
			assert.Equal(t, int(tt.want), out.FailedStep, out.Reason)
		})
	}
}

func TestScreenerRunRecordsAndArchives(t *testing.T) {
	f := newFixture()
	seedPassing(f.provider, "GOOD")
	f.provider.set(models.EndpointIncomeStatement, "SHORT", incomeRows([]float64{1, 1}, 1))
	idx := []int{f.index(t, "GOOD"), f.index(t, "SHORT")}

	m := &metricsStub{}
	a := &archiveStub{}
	uc := NewScreenerUseCase(f.cache, f.ensurer, logger.Nop(),
		WithConcurrency(2), WithScreenMetrics(m), WithArchive(a))

	passing, err := uc.Passing(context.Background(), idx)
	require.NoError(t, err)

	require.Len(t, passing, 1)
	assert.Equal(t, "GOOD", passing[0].Ticker)
	assert.Equal(t, 10, passing[0].Statements.AnnualIncome.Len())
	assert.Len(t, a.stored, 2)
	assert.Equal(t, 1, m.outcomes["buffetology/passed"])
	assert.Equal(t, 1, m.outcomes["buffetology/income_history"])
}

func TestScreenerRunCancelled(t *testing.T) {
	f := newFixture()
	idx := f.index(t, "AAPL")
	h, err := f.cache.ByIndex(context.Background(), idx)
	require.NoError(t, err)
	defer h.Release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	uc := NewScreenerUseCase(f.cache, f.ensurer, logger.Nop())

	_, err = uc.Run(ctx, []int{idx})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestScreenerCancelledDuringEvaluation(t *testing.T) {
	f := newFixture()
	seedPassing(f.provider, "GOOD")
	idx := []int{f.index(t, "GOOD")}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f.provider.before = func(endpoint models.Endpoint, _ string) {
		if endpoint == models.EndpointKeyMetrics {
			cancel()
		}
	}

	m := &metricsStub{}
	a := &archiveStub{}
	uc := NewScreenerUseCase(f.cache, f.ensurer, logger.Nop(), WithScreenMetrics(m), WithArchive(a))

	passing, err := uc.Passing(ctx, idx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, passing)
	assert.Empty(t, a.stored)
	assert.Empty(t, m.outcomes)

	// nothing was committed for the abandoned step
	f.provider.before = nil
	out, err := uc.Screen(context.Background(), idx[0])
	require.NoError(t, err)
	assert.True(t, out.Passed, out.Reason)
	assert.Equal(t, 1, f.provider.count(models.EndpointKeyMetrics, "GOOD"))
	assert.Equal(t, 1, f.provider.count(models.EndpointIncomeStatement, "GOOD"))
}

func TestIsKnownScreen(t *testing.T) {
	assert.True(t, IsKnownScreen("Buffetology"))
	assert.True(t, IsKnownScreen("buffetology"))
	assert.False(t, IsKnownScreen("graham"))
}

func TestStocksGetEnsuresEverything(t *testing.T) {
	f := newFixture()
	seedPassing(f.provider, "AAPL")
	uc := NewStocksUseCase(f.cache, f.ensurer, logger.Nop())

	rec, err := uc.Get(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", rec.Ticker)
	assert.Equal(t, 10, rec.Statements.AnnualIncome.Len())
	assert.Equal(t, 1, f.provider.count(models.EndpointProfile, "AAPL"))

	again, err := uc.Get(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, rec.Index(), again.Index())
	assert.Equal(t, 1, f.provider.count(models.EndpointProfile, "AAPL"))
	assert.Equal(t, 1, f.cache.Len())

	_, err = uc.Get(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrEmptyTicker)
}

func TestStocksGetCancelled(t *testing.T) {
	f := newFixture()
	seedPassing(f.provider, "AAPL")
	uc := NewStocksUseCase(f.cache, f.ensurer, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f.provider.before = func(endpoint models.Endpoint, _ string) {
		if endpoint == models.EndpointRatios {
			cancel()
		}
	}
	_, err := uc.Get(ctx, "AAPL")
	assert.ErrorIs(t, err, context.Canceled)

	f.provider.before = nil
	rec, err := uc.Get(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, 10, rec.Metrics.AnnualRatios.Len())
	assert.Equal(t, 1, f.provider.count(models.EndpointProfile, "AAPL"))
}

func TestUniverseFiltersStocksOnExchanges(t *testing.T) {
	f := newFixture()
	f.provider.set(models.EndpointAvailableTraded, "", []map[string]any{
		{"symbol": "AAPL", "type": "stock", "exchangeShortName": "NASDAQ"},
		{"symbol": "KO", "type": "stock", "exchangeShortName": "NYSE"},
		{"symbol": "SPY", "type": "etf", "exchangeShortName": "NYSE"},
		{"symbol": "VOD.L", "type": "stock", "exchangeShortName": "LSE"},
	})
	uc := NewUniverseUseCase(f.provider, f.cache, []string{"NYSE", "NASDAQ"}, logger.Nop())

	idx, err := uc.Candidates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, idx)
	assert.Equal(t, []string{"AAPL", "KO"}, f.cache.Tickers())

	idx, err = uc.Candidates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, idx)
	assert.Equal(t, 2, f.cache.Len())
}

func TestPrefetchEnsuresEverySymbol(t *testing.T) {
	f := newFixture()
	idx := []int{f.index(t, "AAPL"), f.index(t, "MSFT")}
	uc := NewPrefetchUseCase(f.cache, f.ensurer, 2, logger.Nop())

	n, err := uc.Run(context.Background(), idx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	for _, s := range []string{"AAPL", "MSFT"} {
		assert.Equal(t, 1, f.provider.count(models.EndpointProfile, s))
		assert.Equal(t, 2, f.provider.count(models.EndpointIncomeStatement, s))
	}

	n, err = uc.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}
