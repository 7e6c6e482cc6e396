package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"FinScreen/internal/domain/models"
	domrepo "FinScreen/internal/domain/repository"
	"FinScreen/internal/domain/service"
	"FinScreen/internal/service/symbolcache"
	"FinScreen/pkg/logger"
)

const BuffetologyScreen = "buffetology"

// Step identifies the Buffetology check that decided a verdict.
type Step int

const (
	StepPassed Step = iota
	StepIncomeHistory
	StepEPSGrowth
	StepEPSPositive
	StepROIC
	StepROE
	StepEarningsYield
	StepDebt
)

func (s Step) String() string {
	switch s {
	case StepPassed:
		return "passed"
	case StepIncomeHistory:
		return "income_history"
	case StepEPSGrowth:
		return "eps_growth"
	case StepEPSPositive:
		return "eps_positive"
	case StepROIC:
		return "roic"
	case StepROE:
		return "roe"
	case StepEarningsYield:
		return "earnings_yield"
	case StepDebt:
		return "debt"
	default:
		return "unknown"
	}
}

// BuffetologyCriteria holds the screen thresholds.
type BuffetologyCriteria struct {
	Years            int
	MinROIC          float64
	MinROE           float64
	MinEarningsYield float64
	MaxDebtToIncome  float64
}

func DefaultBuffetology() BuffetologyCriteria {
	return BuffetologyCriteria{
		Years:            10,
		MinROIC:          0.12,
		MinROE:           0.15,
		MinEarningsYield: 0.03,
		MaxDebtToIncome:  5,
	}
}

// Verdict is the result of evaluating one record.
type Verdict struct {
	Step   Step
	Reason string
}

func (v Verdict) Passed() bool { return v.Step == StepPassed }

func reject(step Step, format string, args ...any) Verdict {
	return Verdict{Step: step, Reason: fmt.Sprintf(format, args...)}
}

// ScreenerUseCase runs the Buffetology screen over cached symbols. Each
// step ensures only the data it needs, so an early rejection skips the
// fetches of later steps.
type ScreenerUseCase struct {
	cache       *symbolcache.Cache
	ensurer     service.DataEnsurer
	criteria    BuffetologyCriteria
	concurrency int
	archive     domrepo.ScreenArchive
	metrics     domrepo.Metrics
	l           *logger.Logger
	now         func() time.Time
}

type ScreenerOption func(*ScreenerUseCase)

func WithCriteria(c BuffetologyCriteria) ScreenerOption {
	return func(uc *ScreenerUseCase) { uc.criteria = c }
}

func WithConcurrency(n int) ScreenerOption {
	return func(uc *ScreenerUseCase) {
		if n > 0 {
			uc.concurrency = n
		}
	}
}

// WithArchive stores every run's outcomes.
func WithArchive(a domrepo.ScreenArchive) ScreenerOption {
	return func(uc *ScreenerUseCase) { uc.archive = a }
}

func WithScreenMetrics(m domrepo.Metrics) ScreenerOption {
	return func(uc *ScreenerUseCase) { uc.metrics = m }
}

func NewScreenerUseCase(cache *symbolcache.Cache, ensurer service.DataEnsurer, l *logger.Logger, opts ...ScreenerOption) *ScreenerUseCase {
	uc := &ScreenerUseCase{
		cache:       cache,
		ensurer:     ensurer,
		criteria:    DefaultBuffetology(),
		concurrency: 1,
		l:           l.With(logger.String("component", "screener")),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Evaluate applies the screen to rec. The caller must hold rec's handle.
// A context error while ensuring data is returned instead of a verdict.
func (uc *ScreenerUseCase) Evaluate(ctx context.Context, rec *models.SymbolRecord) (Verdict, error) {
	c := uc.criteria
	years := c.Years

	if err := uc.ensure(ctx, rec, models.KindIncome, models.Annual(years)); err != nil {
		return Verdict{}, err
	}
	income := rec.Statements.AnnualIncome.Data
	if len(income) < years {
		return reject(StepIncomeHistory, "%d annual income statements, need %d", len(income), years), nil
	}
	income = income[:years]

	latest, mid, oldest := income[0].EPS, income[(years-1)/2].EPS, income[years-1].EPS
	if latest == nil || mid == nil || oldest == nil {
		return reject(StepEPSGrowth, "eps missing at a checkpoint"), nil
	}
	if *latest < *mid || *mid < *oldest {
		return reject(StepEPSGrowth, "eps %.2f, %.2f, %.2f is not non-decreasing", *oldest, *mid, *latest), nil
	}

	for _, s := range income {
		if s.EPS == nil {
			return reject(StepEPSPositive, "eps missing for %s", s.Date), nil
		}
		if *s.EPS < 0 {
			return reject(StepEPSPositive, "negative eps %.2f for %s", *s.EPS, s.Date), nil
		}
	}

	if err := uc.ensure(ctx, rec, models.KindKeyMetrics, models.Annual(years)); err != nil {
		return Verdict{}, err
	}
	km := rec.Metrics.AnnualKeyMetrics.Data
	if len(km) < years {
		return reject(StepROIC, "%d annual key metrics, need %d", len(km), years), nil
	}
	roic := make([]float64, years)
	for i := range roic {
		roic[i] = valueOrZero(km[i].ROIC)
	}
	if m := stat.Mean(roic, nil); m < c.MinROIC {
		return reject(StepROIC, "mean roic %.4f below %.2f", m, c.MinROIC), nil
	}

	if err := uc.ensure(ctx, rec, models.KindRatios, models.Annual(years)); err != nil {
		return Verdict{}, err
	}
	ratios := rec.Metrics.AnnualRatios.Data
	if len(ratios) < years {
		return reject(StepROE, "%d annual ratios, need %d", len(ratios), years), nil
	}
	roe := make([]float64, years)
	for i := range roe {
		roe[i] = valueOrZero(ratios[i].ReturnOnEquity)
	}
	if m := stat.Mean(roe, nil); m < c.MinROE {
		return reject(StepROE, "mean roe %.4f below %.2f", m, c.MinROE), nil
	}

	if err := uc.ensure(ctx, rec, models.KindKeyMetrics, models.TTM()); err != nil {
		return Verdict{}, err
	}
	ttm, ok := rec.Metrics.TTMKeyMetrics.Latest()
	if !ok {
		return reject(StepEarningsYield, "no ttm key metrics"), nil
	}
	if ttm.EarningsYieldTTM == nil || *ttm.EarningsYieldTTM < c.MinEarningsYield {
		return reject(StepEarningsYield, "ttm earnings yield below %.2f", c.MinEarningsYield), nil
	}

	if err := uc.ensure(ctx, rec, models.KindBalance, models.Quarter(1)); err != nil {
		return Verdict{}, err
	}
	bal, ok := rec.Statements.QuarterBalance.Latest()
	if !ok {
		return reject(StepDebt, "no quarterly balance sheet"), nil
	}
	netIncome := income[0].NetIncome
	if bal.LongTermDebt == nil || netIncome == nil {
		return reject(StepDebt, "long-term debt or net income missing"), nil
	}
	if *bal.LongTermDebt > c.MaxDebtToIncome*(*netIncome) {
		return reject(StepDebt, "long-term debt %.0f exceeds %.0fx net income %.0f", *bal.LongTermDebt, c.MaxDebtToIncome, *netIncome), nil
	}

	return Verdict{Step: StepPassed}, nil
}

func (uc *ScreenerUseCase) ensure(ctx context.Context, rec *models.SymbolRecord, kind models.StatementKind, period models.TimePeriod) error {
	uc.ensurer.Ensure(ctx, rec, kind, period)
	return ctx.Err()
}

// Screen evaluates the symbol at cache index i.
func (uc *ScreenerUseCase) Screen(ctx context.Context, i int) (models.ScreenOutcome, error) {
	h, err := uc.cache.ByIndex(ctx, i)
	if err != nil {
		return models.ScreenOutcome{}, err
	}
	defer h.Release()

	rec := h.Record()
	v, err := uc.Evaluate(ctx, rec)
	if err != nil {
		return models.ScreenOutcome{}, err
	}
	out := models.ScreenOutcome{
		Screen:      BuffetologyScreen,
		Ticker:      rec.Ticker,
		CacheIndex:  rec.Index(),
		Passed:      v.Passed(),
		EvaluatedAt: uc.now().UTC(),
	}
	if !v.Passed() {
		out.FailedStep = int(v.Step)
		out.StepName = v.Step.String()
		out.Reason = v.Reason
	}
	return out, nil
}

// Run screens every index with bounded concurrency and returns outcomes in
// input order.
func (uc *ScreenerUseCase) Run(ctx context.Context, indices []int) ([]models.ScreenOutcome, error) {
	start := time.Now()
	outcomes := make([]models.ScreenOutcome, len(indices))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency)
	for pos, idx := range indices {
		g.Go(func() error {
			o, err := uc.Screen(gctx, idx)
			if err != nil {
				return fmt.Errorf("screen index %d: %w", idx, err)
			}
			outcomes[pos] = o
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	passed := 0
	for _, o := range outcomes {
		step := StepPassed.String()
		if o.Passed {
			passed++
		} else {
			step = o.StepName
		}
		if uc.metrics != nil {
			uc.metrics.RecordScreenOutcome(o.Screen, step)
		}
	}
	uc.l.Info("screen finished",
		logger.String("screen", BuffetologyScreen),
		logger.Int("candidates", len(indices)),
		logger.Int("passed", passed),
		logger.Duration("duration_ms", time.Since(start)),
	)

	if uc.archive != nil {
		if err := uc.archive.StoreOutcomes(ctx, outcomes); err != nil {
			uc.l.Warn("archive screen outcomes failed", logger.Error(err))
		}
	}
	return outcomes, nil
}

// Passing runs the screen and returns copies of the passing records.
func (uc *ScreenerUseCase) Passing(ctx context.Context, indices []int) ([]models.SymbolRecord, error) {
	outcomes, err := uc.Run(ctx, indices)
	if err != nil {
		return nil, err
	}
	out := make([]models.SymbolRecord, 0)
	for _, o := range outcomes {
		if !o.Passed {
			continue
		}
		h, err := uc.cache.ByIndex(ctx, o.CacheIndex)
		if err != nil {
			return nil, err
		}
		out = append(out, h.Record().Clone())
		h.Release()
	}
	return out, nil
}

// IsKnownScreen reports whether name selects a screen this service runs.
func IsKnownScreen(name string) bool {
	return strings.EqualFold(name, BuffetologyScreen)
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
