// Package fmp talks to the Financial Modeling Prep REST API.
package fmp

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"FinScreen/internal/domain/models"
	xhttp "FinScreen/pkg/http"
)

const DefaultBaseURL = "https://financialmodelingprep.com"

var ErrUnknownEndpoint = errors.New("fmp: unknown endpoint")

type route struct {
	path string
	// symbolless endpoints take no ticker in the path
	symbolless bool
}

var routes = map[models.Endpoint]route{
	models.EndpointIncomeStatement: {path: "income-statement"},
	models.EndpointBalanceSheet:    {path: "balance-sheet-statement"},
	models.EndpointCashFlow:        {path: "cash-flow-statement"},
	models.EndpointRatios:          {path: "ratios"},
	models.EndpointRatiosTTM:       {path: "ratios-ttm"},
	models.EndpointKeyMetrics:      {path: "key-metrics"},
	models.EndpointKeyMetricsTTM:   {path: "key-metrics-ttm"},
	models.EndpointProfile:         {path: "profile"},
	models.EndpointAvailableTraded: {path: "available-traded/list", symbolless: true},
}

// Client implements RemoteCaller backed by the FMP v3 API.
type Client struct {
	baseURL string
	apiKey  string
	http    *xhttp.Client
}

type ClientOption func(*Client)

func WithBaseURL(u string) ClientOption {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

func WithHTTPClient(hc *xhttp.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

func NewClient(apiKey string, timeout time.Duration, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = xhttp.NewClient(xhttp.WithTimeout(timeout), xhttp.WithUserAgent("finscreen"))
	}
	return c
}

// Request builds the URL and query for one call.
func (c *Client) Request(endpoint models.Endpoint, symbol string, period models.TimePeriod) (*xhttp.RequestOptions, error) {
	r, ok := routes[endpoint]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEndpoint, int(endpoint))
	}

	u := c.baseURL + "/api/v3/" + r.path
	if !r.symbolless {
		u += "/" + symbol
	}

	limit := ""
	if period.Kind == models.PeriodAnnual || period.Kind == models.PeriodQuarter {
		limit = strconv.Itoa(period.N)
	}

	return &xhttp.RequestOptions{
		URL: u,
		QueryParams: map[string][]string{
			"apikey": {c.apiKey},
			"limit":  {limit},
			"period": {period.Keyword()},
		},
	}, nil
}

// Call performs the GET and decodes the JSON array into dest.
func (c *Client) Call(ctx context.Context, endpoint models.Endpoint, symbol string, period models.TimePeriod, dest any) error {
	req, err := c.Request(endpoint, symbol, period)
	if err != nil {
		return err
	}
	if err := c.http.SendAndParse(ctx, req, dest); err != nil {
		return fmt.Errorf("fmp %s %s: %w", endpoint, symbol, err)
	}
	return nil
}
