package fmp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FinScreen/internal/domain/models"
	"FinScreen/internal/domain/repository"
	"FinScreen/internal/service/throttle"
	xhttp "FinScreen/pkg/http"
	"FinScreen/pkg/logger"
)

func TestRequestShape(t *testing.T) {
	c := NewClient("KEY", time.Second, WithBaseURL("https://example.test/"))

	req, err := c.Request(models.EndpointIncomeStatement, "AAPL", models.Annual(10))
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/api/v3/income-statement/AAPL", req.URL)
	assert.Equal(t, []string{"KEY"}, req.QueryParams["apikey"])
	assert.Equal(t, []string{"10"}, req.QueryParams["limit"])
	assert.Equal(t, []string{"annual"}, req.QueryParams["period"])

	req, err = c.Request(models.EndpointKeyMetricsTTM, "MSFT", models.TTM())
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/api/v3/key-metrics-ttm/MSFT", req.URL)
	assert.Equal(t, []string{""}, req.QueryParams["limit"])
	assert.Equal(t, []string{""}, req.QueryParams["period"])

	req, err = c.Request(models.EndpointAvailableTraded, "", models.NotApplicable())
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/api/v3/available-traded/list", req.URL)

	_, err = c.Request(models.Endpoint(99), "X", models.TTM())
	assert.ErrorIs(t, err, ErrUnknownEndpoint)
}

func TestCallDecodesArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/income-statement/AAPL", r.URL.Path)
		assert.Equal(t, "quarter", r.URL.Query().Get("period"))
		assert.Equal(t, "8", r.URL.Query().Get("limit"))
		assert.Equal(t, "KEY", r.URL.Query().Get("apikey"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"date":"2024-06-29","revenue":85777000000,"eps":1.4},{"date":"2024-03-30","revenue":90753000000,"eps":null}]`))
	}))
	defer srv.Close()

	c := NewClient("KEY", time.Second, WithBaseURL(srv.URL))
	var out []models.IncomeStatement
	require.NoError(t, c.Call(context.Background(), models.EndpointIncomeStatement, "AAPL", models.Quarter(8), &out))

	require.Len(t, out, 2)
	assert.Equal(t, "2024-06-29", out[0].Date)
	require.NotNil(t, out[0].EPS)
	assert.InDelta(t, 1.4, *out[0].EPS, 1e-9)
	assert.Nil(t, out[1].EPS)
}

func TestCallReportsStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "limit reached", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient("KEY", time.Second, WithBaseURL(srv.URL))
	var out []models.Profile
	err := c.Call(context.Background(), models.EndpointProfile, "AAPL", models.NotApplicable(), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.True(t, xhttp.IsStatus(err, http.StatusTooManyRequests))
	assert.Equal(t, "fetch_rate_limited", failureKind(err))
	assert.Equal(t, "fetch", failureKind(assert.AnError))
}

type recordingObserver struct {
	mu     sync.Mutex
	events []repository.FetchEvent
}

func (o *recordingObserver) ObserveFetch(_ context.Context, ev repository.FetchEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, ev)
}

type stubMetrics struct {
	mu     sync.Mutex
	ok     int
	failed int
	kinds  []string
}

func (m *stubMetrics) RecordFetch(_ string, ok bool, _ float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ok {
		m.ok++
	} else {
		m.failed++
	}
}
func (m *stubMetrics) RecordCacheSize(int)                {}
func (m *stubMetrics) RecordScreenOutcome(string, string) {}
func (m *stubMetrics) RecordError(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.kinds = append(m.kinds, kind)
}

type failingCaller struct{ err error }

func (c failingCaller) Call(context.Context, models.Endpoint, string, models.TimePeriod, any) error {
	return c.err
}

func TestFetcherCountsAndNotifies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"symbol":"AAPL","companyName":"Apple Inc."}]`))
	}))
	defer srv.Close()

	obs := &recordingObserver{}
	m := &stubMetrics{}
	th := throttle.New(throttle.WithInterval(time.Millisecond, 1))
	f := NewFetcher(NewClient("KEY", time.Second, WithBaseURL(srv.URL)), th, logger.Nop(),
		WithMetrics(m), WithObservers(obs))

	var out []models.Profile
	require.NoError(t, f.Fetch(context.Background(), models.EndpointProfile, "AAPL", models.NotApplicable(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "Apple Inc.", out[0].CompanyName)

	require.Len(t, obs.events, 1)
	assert.Equal(t, uint64(1), obs.events[0].Seq)
	assert.Equal(t, "profile", obs.events[0].Endpoint)
	assert.NoError(t, obs.events[0].Err)
	assert.Equal(t, 1, m.ok)
	assert.Equal(t, throttle.Stats{Attempts: 1}, f.Stats())
}

func TestFetcherRecordsFailure(t *testing.T) {
	th := throttle.New(throttle.WithInterval(time.Millisecond, 1))
	m := &stubMetrics{}
	f := NewFetcher(failingCaller{err: assert.AnError}, th, logger.Nop(), WithMetrics(m))

	var out []models.Profile
	err := f.Fetch(context.Background(), models.EndpointProfile, "AAPL", models.NotApplicable(), &out)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, throttle.Stats{Attempts: 1, Failures: 1}, f.Stats())
	assert.Equal(t, 1, m.failed)
	assert.Equal(t, []string{"fetch"}, m.kinds)
}

// cancellingCaller stands in for a client that disconnects mid-call.
type cancellingCaller struct{ cancel context.CancelFunc }

func (c cancellingCaller) Call(ctx context.Context, _ models.Endpoint, _ string, _ models.TimePeriod, _ any) error {
	c.cancel()
	return ctx.Err()
}

func TestFetcherDoesNotCountCancelledCallAsFailure(t *testing.T) {
	th := throttle.New(throttle.WithInterval(time.Millisecond, 1))
	m := &stubMetrics{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f := NewFetcher(cancellingCaller{cancel: cancel}, th, logger.Nop(), WithMetrics(m))

	var out []models.Profile
	err := f.Fetch(ctx, models.EndpointProfile, "AAPL", models.NotApplicable(), &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, throttle.Stats{Attempts: 1, Failures: 0}, f.Stats())
	assert.Equal(t, []string{"fetch_cancelled"}, m.kinds)
}
