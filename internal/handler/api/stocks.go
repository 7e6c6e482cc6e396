package api

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"FinScreen/internal/domain/models"
	"FinScreen/internal/usecase"
	"FinScreen/pkg/cache"
	xhttp "FinScreen/pkg/http"
	xlogger "FinScreen/pkg/logger"
)

// StocksHandler serves symbol records and screen results. Encoded
// responses are memoized per endpoint and parameter.
type StocksHandler struct {
	logger   *xlogger.Logger
	stocks   *usecase.StocksUseCase
	screener *usecase.ScreenerUseCase
	universe *usecase.UniverseUseCase
	memo     cache.Service
	memoTTL  time.Duration
}

func NewStocksHandler(
	logger *xlogger.Logger,
	stocks *usecase.StocksUseCase,
	screener *usecase.ScreenerUseCase,
	universe *usecase.UniverseUseCase,
	memo cache.Service,
	memoTTL time.Duration,
) *StocksHandler {
	return &StocksHandler{
		logger:   logger.With(xlogger.String("component", "stocks_handler")),
		stocks:   stocks,
		screener: screener,
		universe: universe,
		memo:     memo,
		memoTTL:  memoTTL,
	}
}

func (h *StocksHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/stock/:ticker", h.Stock)
	g.GET("/screeners/:name", h.Screener)
}

// Stock returns a one-element array holding the ticker's full record.
func (h *StocksHandler) Stock(c echo.Context) error {
	req := &models.StockRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	ctx := c.Request().Context()

	body, err := h.memoized(ctx, cache.Key("stock", req.Ticker), func() (any, error) {
		rec, err := h.stocks.Get(ctx, req.Ticker)
		if err != nil {
			return nil, err
		}
		return []models.SymbolRecord{rec}, nil
	})
	if err != nil {
		return h.fail(c, "stock request failed", err)
	}
	return xhttp.RawJSONResponse(c, body)
}

// Screener returns the records passing the named screen. Unknown names
// produce an empty array.
func (h *StocksHandler) Screener(c echo.Context) error {
	req := &models.ScreenerRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	ctx := c.Request().Context()
	name := strings.ToLower(req.Name)

	body, err := h.memoized(ctx, cache.Key("screener", name), func() (any, error) {
		if !usecase.IsKnownScreen(name) {
			return []models.SymbolRecord{}, nil
		}
		indices, err := h.universe.Candidates(ctx)
		if err != nil {
			return nil, err
		}
		return h.screener.Passing(ctx, indices)
	})
	if err != nil {
		return h.fail(c, "screener request failed", err)
	}
	return xhttp.RawJSONResponse(c, body)
}

func (h *StocksHandler) memoized(ctx context.Context, key string, compute func() (any, error)) ([]byte, error) {
	if body, err := h.memo.Get(ctx, key); err == nil {
		return body, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		h.logger.Warn("memo read failed", xlogger.String("key", key), xlogger.Error(err))
	}

	v, err := compute()
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if err := h.memo.Set(ctx, key, body, h.memoTTL); err != nil {
		h.logger.Warn("memo write failed", xlogger.String("key", key), xlogger.Error(err))
	}
	return body, nil
}

func (h *StocksHandler) fail(c echo.Context, msg string, err error) error {
	switch {
	case errors.Is(err, usecase.ErrEmptyTicker):
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError("ticker is required").WithParam("ticker", c.Param("ticker")).WithError(err))
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return xhttp.AppErrorResponse(c, xhttp.UnavailableError("request cancelled").WithError(err))
	}
	h.logger.Error(msg, xlogger.Error(err))
	return xhttp.AppErrorResponse(c, xhttp.InternalError(msg).WithError(err))
}
