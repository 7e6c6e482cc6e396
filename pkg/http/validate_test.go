package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tickerRequest struct {
	Ticker string `param:"ticker" validate:"required,max=5"`
	Limit  int    `query:"limit" default:"10" validate:"gte=1,lte=100"`
}

func bindTicker(t *testing.T, target, ticker string) (*tickerRequest, interface{}) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("ticker")
	c.SetParamValues(ticker)

	r := &tickerRequest{}
	return r, ReadAndValidateRequest(c, r)
}

func TestReadAndValidateRequestAppliesDefaults(t *testing.T) {
	r, verr := bindTicker(t, "/api/stock/AAPL", "AAPL")
	require.Nil(t, verr)
	assert.Equal(t, "AAPL", r.Ticker)
	assert.Equal(t, 10, r.Limit)
}

func TestReadAndValidateRequestReportsTagNames(t *testing.T) {
	_, verr := bindTicker(t, "/api/stock/TOOLONG?limit=500", "TOOLONG")
	errs, ok := verr.([]ValidationError)
	require.True(t, ok)
	require.Len(t, errs, 2)

	assert.Equal(t, "ERR_MAX", errs[0].Code)
	assert.Equal(t, "ticker", errs[0].Field)
	assert.Equal(t, "ticker must be at most 5 characters", errs[0].Message)
	assert.Equal(t, "ERR_LTE", errs[1].Code)
	assert.Equal(t, "limit", errs[1].Field)
}

func TestReadAndValidateRequestBindFailure(t *testing.T) {
	_, verr := bindTicker(t, "/api/stock/AAPL?limit=abc", "AAPL")
	errs, ok := verr.([]ValidationError)
	require.True(t, ok)
	require.Len(t, errs, 1)
	assert.Equal(t, "ERR_BIND", errs[0].Code)
}
