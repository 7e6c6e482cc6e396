package models

// Statements holds the per-period statement series of one symbol.
// TTMIncome is synthesized locally from the quarterly series.
type Statements struct {
	AnnualIncome    Slice[IncomeStatement]       `json:"annualIncome"`
	QuarterIncome   Slice[IncomeStatement]       `json:"quarterIncome"`
	TTMIncome       Slice[IncomeStatement]       `json:"ttmIncome"`
	AnnualBalance   Slice[BalanceSheetStatement] `json:"annualBalance"`
	QuarterBalance  Slice[BalanceSheetStatement] `json:"quarterBalance"`
	AnnualCashFlow  Slice[CashFlowStatement]     `json:"annualCashFlow"`
	QuarterCashFlow Slice[CashFlowStatement]     `json:"quarterCashFlow"`
}

type Metrics struct {
	AnnualRatios      Slice[Ratios]        `json:"annualRatios"`
	QuarterRatios     Slice[Ratios]        `json:"quarterRatios"`
	TTMRatios         Slice[RatiosTTM]     `json:"ttmRatios"`
	AnnualKeyMetrics  Slice[KeyMetrics]    `json:"annualKeyMetrics"`
	QuarterKeyMetrics Slice[KeyMetrics]    `json:"quarterKeyMetrics"`
	TTMKeyMetrics     Slice[KeyMetricsTTM] `json:"ttmKeyMetrics"`
}

// SymbolRecord is everything cached for one ticker.
type SymbolRecord struct {
	Ticker     string         `json:"ticker"`
	CacheIndex *int           `json:"cacheIndex"`
	Statements Statements     `json:"statements"`
	Metrics    Metrics        `json:"metrics"`
	Profile    Slice[Profile] `json:"profile"`
}

func NewSymbolRecord(ticker string, index int) *SymbolRecord {
	return &SymbolRecord{Ticker: ticker, CacheIndex: &index}
}

// Index returns the cache position, or -1 when unassigned.
func (r *SymbolRecord) Index() int {
	if r.CacheIndex == nil {
		return -1
	}
	return *r.CacheIndex
}

func (r *SymbolRecord) SetIndex(i int) {
	r.CacheIndex = &i
}

// Clone returns a copy that is safe to hand out after the record's lock is
// released. Series are replaced wholesale on refresh and never mutated in
// place, so sharing their backing arrays is fine.
func (r *SymbolRecord) Clone() SymbolRecord {
	c := *r
	if r.CacheIndex != nil {
		i := *r.CacheIndex
		c.CacheIndex = &i
	}
	return c
}
