package store

import "FinScreen/internal/domain/models"

type aggregation int

const (
	aggregateNone aggregation = iota
	// aggregateQuarterSum derives the series from the last four quarters
	// instead of fetching it.
	aggregateQuarterSum
)

type slot struct {
	endpoint  models.Endpoint
	aggregate aggregation
	series    func(*models.SymbolRecord) models.Refreshable
}

type slotKey struct {
	kind   models.StatementKind
	period models.PeriodKind
}

// slots maps every supported (kind, period) pair to its endpoint and the
// record field that caches it.
var slots = map[slotKey]slot{
	{models.KindIncome, models.PeriodAnnual}: {
		endpoint: models.EndpointIncomeStatement,
		series:   func(r *models.SymbolRecord) models.Refreshable { return &r.Statements.AnnualIncome },
	},
	{models.KindIncome, models.PeriodQuarter}: {
		endpoint: models.EndpointIncomeStatement,
		series:   func(r *models.SymbolRecord) models.Refreshable { return &r.Statements.QuarterIncome },
	},
	{models.KindIncome, models.PeriodTTM}: {
		endpoint:  models.EndpointIncomeStatement,
		aggregate: aggregateQuarterSum,
		series:    func(r *models.SymbolRecord) models.Refreshable { return &r.Statements.TTMIncome },
	},
	{models.KindBalance, models.PeriodAnnual}: {
		endpoint: models.EndpointBalanceSheet,
		series:   func(r *models.SymbolRecord) models.Refreshable { return &r.Statements.AnnualBalance },
	},
	{models.KindBalance, models.PeriodQuarter}: {
		endpoint: models.EndpointBalanceSheet,
		series:   func(r *models.SymbolRecord) models.Refreshable { return &r.Statements.QuarterBalance },
	},
	{models.KindCashFlow, models.PeriodAnnual}: {
		endpoint: models.EndpointCashFlow,
		series:   func(r *models.SymbolRecord) models.Refreshable { return &r.Statements.AnnualCashFlow },
	},
	{models.KindCashFlow, models.PeriodQuarter}: {
		endpoint: models.EndpointCashFlow,
		series:   func(r *models.SymbolRecord) models.Refreshable { return &r.Statements.QuarterCashFlow },
	},
	{models.KindRatios, models.PeriodAnnual}: {
		endpoint: models.EndpointRatios,
		series:   func(r *models.SymbolRecord) models.Refreshable { return &r.Metrics.AnnualRatios },
	},
	{models.KindRatios, models.PeriodQuarter}: {
		endpoint: models.EndpointRatios,
		series:   func(r *models.SymbolRecord) models.Refreshable { return &r.Metrics.QuarterRatios },
	},
	{models.KindRatios, models.PeriodTTM}: {
		endpoint: models.EndpointRatiosTTM,
		series:   func(r *models.SymbolRecord) models.Refreshable { return &r.Metrics.TTMRatios },
	},
	{models.KindKeyMetrics, models.PeriodAnnual}: {
		endpoint: models.EndpointKeyMetrics,
		series:   func(r *models.SymbolRecord) models.Refreshable { return &r.Metrics.AnnualKeyMetrics },
	},
	{models.KindKeyMetrics, models.PeriodQuarter}: {
		endpoint: models.EndpointKeyMetrics,
		series:   func(r *models.SymbolRecord) models.Refreshable { return &r.Metrics.QuarterKeyMetrics },
	},
	{models.KindKeyMetrics, models.PeriodTTM}: {
		endpoint: models.EndpointKeyMetricsTTM,
		series:   func(r *models.SymbolRecord) models.Refreshable { return &r.Metrics.TTMKeyMetrics },
	},
	{models.KindProfile, models.PeriodNA}: {
		endpoint: models.EndpointProfile,
		series:   func(r *models.SymbolRecord) models.Refreshable { return &r.Profile },
	},
}

// Supported reports whether Ensure knows how to serve kind for period.
func Supported(kind models.StatementKind, period models.PeriodKind) bool {
	_, ok := slots[slotKey{kind, period}]
	return ok
}

type request struct {
	kind   models.StatementKind
	period models.TimePeriod
}

// everything is what All ensures, in order.
var everything = []request{
	{models.KindIncome, models.Annual(10)},
	{models.KindIncome, models.Quarter(8)},
	{models.KindIncome, models.TTM()},
	{models.KindBalance, models.Annual(10)},
	{models.KindBalance, models.Quarter(8)},
	{models.KindCashFlow, models.Annual(10)},
	{models.KindCashFlow, models.Quarter(8)},
	{models.KindRatios, models.Annual(10)},
	{models.KindRatios, models.TTM()},
	{models.KindKeyMetrics, models.Annual(10)},
	{models.KindKeyMetrics, models.TTM()},
	{models.KindProfile, models.NotApplicable()},
}
