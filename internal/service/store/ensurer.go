// Package store keeps a symbol record's cached series fresh.
package store

import (
	"context"

	"FinScreen/internal/domain/models"
	"FinScreen/internal/domain/service"
	"FinScreen/internal/service/staleness"
	"FinScreen/pkg/logger"
)

// Ensurer implements service.DataEnsurer. It holds no per-record state;
// callers serialize access to a record through the symbol cache.
type Ensurer struct {
	fetcher service.RemoteFetcher
	today   func() models.Date
	logger  *logger.Logger
}

type Option func(*Ensurer)

// WithClock overrides how the current day is determined.
func WithClock(today func() models.Date) Option {
	return func(e *Ensurer) { e.today = today }
}

func NewEnsurer(f service.RemoteFetcher, l *logger.Logger, opts ...Option) *Ensurer {
	e := &Ensurer{
		fetcher: f,
		today:   models.Today,
		logger:  l.With(logger.String("component", "store")),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Ensurer) Ensure(ctx context.Context, rec *models.SymbolRecord, kind models.StatementKind, period models.TimePeriod) bool {
	s, ok := slots[slotKey{kind, period.Kind}]
	if !ok {
		e.logger.Warn("unsupported series requested",
			logger.String("ticker", rec.Ticker),
			logger.String("kind", kind.String()),
			logger.String("period", period.String()),
		)
		return false
	}
	if s.aggregate == aggregateQuarterSum {
		return e.ensureTTMIncome(ctx, rec)
	}
	return e.refresh(ctx, rec.Ticker, s.series(rec), s.endpoint, period)
}

func (e *Ensurer) All(ctx context.Context, rec *models.SymbolRecord) {
	for _, req := range everything {
		if ctx.Err() != nil {
			return
		}
		e.Ensure(ctx, rec, req.kind, req.period)
	}
}

func (e *Ensurer) refresh(ctx context.Context, ticker string, series models.Refreshable, endpoint models.Endpoint, period models.TimePeriod) bool {
	today := e.today()
	if !staleness.NeedsRefresh(staleness.StateOf(series), period, today) {
		return false
	}

	buf := series.NewBuffer()
	err := e.fetcher.Fetch(ctx, endpoint, ticker, period, buf)
	if err != nil && ctx.Err() != nil {
		// abandoned, not failed: keep what we had
		return false
	}
	if err != nil {
		buf = series.NewBuffer()
	}
	series.Commit(buf, models.FetchProvenance{LastPullLength: period.Horizon(), LastPullDate: &today})

	e.logger.Debug("series refreshed",
		logger.String("ticker", ticker),
		logger.String("endpoint", endpoint.String()),
		logger.String("period", period.String()),
		logger.Int("records", series.Len()),
		logger.Bool("failed", err != nil),
	)
	return true
}

// ensureTTMIncome synthesizes the TTM income statement from the last eight
// quarters. It recomputes whenever the quarterly series has been refreshed
// since the TTM statement was built, whichever call did the refresh.
func (e *Ensurer) ensureTTMIncome(ctx context.Context, rec *models.SymbolRecord) bool {
	refreshed := e.Ensure(ctx, rec, models.KindIncome, models.Quarter(8))
	st := &rec.Statements
	if !refreshed && !ttmOutdated(st) {
		return false
	}

	today := e.today()
	prov := models.FetchProvenance{LastPullLength: 1, LastPullDate: &today}
	if ttm, ok := SumQuarters(st.QuarterIncome.Data); ok {
		st.TTMIncome.Data = []models.IncomeStatement{ttm}
	} else {
		st.TTMIncome.Data = nil
	}
	st.TTMIncome.Provenance = prov
	return true
}

// ttmOutdated reports whether the TTM statement no longer reflects the
// quarterly series it was summed from.
func ttmOutdated(st *models.Statements) bool {
	ttm, quarters := &st.TTMIncome, &st.QuarterIncome
	built := ttm.Provenance.LastPullDate
	if built == nil {
		return true
	}
	if pulled := quarters.Provenance.LastPullDate; pulled != nil && built.Before(*pulled) {
		return true
	}
	if ttm.Len() == 0 {
		return quarters.Len() >= quartersPerYear
	}
	return quarters.Len() < quartersPerYear || ttm.LatestDate() != quarters.LatestDate()
}

// Income ensures the income statements for period and returns them.
func (e *Ensurer) Income(ctx context.Context, rec *models.SymbolRecord, period models.TimePeriod) []models.IncomeStatement {
	e.Ensure(ctx, rec, models.KindIncome, period)
	switch period.Kind {
	case models.PeriodAnnual:
		return rec.Statements.AnnualIncome.Data
	case models.PeriodQuarter:
		return rec.Statements.QuarterIncome.Data
	case models.PeriodTTM:
		return rec.Statements.TTMIncome.Data
	default:
		return nil
	}
}

var _ service.DataEnsurer = (*Ensurer)(nil)
