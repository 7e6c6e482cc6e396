package models

// StatementKind names a family of per-symbol financial data.
type StatementKind int

const (
	KindIncome StatementKind = iota
	KindBalance
	KindCashFlow
	KindRatios
	KindKeyMetrics
	KindProfile
)

func (k StatementKind) String() string {
	switch k {
	case KindIncome:
		return "income"
	case KindBalance:
		return "balance"
	case KindCashFlow:
		return "cash_flow"
	case KindRatios:
		return "ratios"
	case KindKeyMetrics:
		return "key_metrics"
	case KindProfile:
		return "profile"
	default:
		return "unknown"
	}
}

// Endpoint identifies a remote dataset. The transport layer owns the
// mapping from endpoint to URL.
type Endpoint int

const (
	EndpointIncomeStatement Endpoint = iota
	EndpointBalanceSheet
	EndpointCashFlow
	EndpointRatios
	EndpointRatiosTTM
	EndpointKeyMetrics
	EndpointKeyMetricsTTM
	EndpointProfile
	EndpointAvailableTraded
)

var endpointNames = map[Endpoint]string{
	EndpointIncomeStatement: "income-statement",
	EndpointBalanceSheet:    "balance-sheet-statement",
	EndpointCashFlow:        "cash-flow-statement",
	EndpointRatios:          "ratios",
	EndpointRatiosTTM:       "ratios-ttm",
	EndpointKeyMetrics:      "key-metrics",
	EndpointKeyMetricsTTM:   "key-metrics-ttm",
	EndpointProfile:         "profile",
	EndpointAvailableTraded: "available-traded",
}

func (e Endpoint) String() string {
	if name, ok := endpointNames[e]; ok {
		return name
	}
	return "unknown"
}
