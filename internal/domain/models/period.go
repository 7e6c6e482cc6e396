package models

import "strconv"

type PeriodKind int

const (
	PeriodNA PeriodKind = iota
	PeriodAnnual
	PeriodQuarter
	PeriodTTM
)

func (k PeriodKind) String() string {
	switch k {
	case PeriodAnnual:
		return "annual"
	case PeriodQuarter:
		return "quarter"
	case PeriodTTM:
		return "ttm"
	default:
		return "na"
	}
}

// TimePeriod selects which series of a statement kind is wanted and,
// for Annual and Quarter, how many periods back.
type TimePeriod struct {
	Kind PeriodKind
	N    int
}

func Annual(n int) TimePeriod  { return TimePeriod{Kind: PeriodAnnual, N: n} }
func Quarter(n int) TimePeriod { return TimePeriod{Kind: PeriodQuarter, N: n} }
func TTM() TimePeriod          { return TimePeriod{Kind: PeriodTTM} }
func NotApplicable() TimePeriod {
	return TimePeriod{Kind: PeriodNA}
}

// Horizon is the number of records a fetch for p asks for.
func (p TimePeriod) Horizon() int {
	switch p.Kind {
	case PeriodAnnual, PeriodQuarter:
		return p.N
	default:
		return 1
	}
}

// Keyword is the provider's "period" query value.
func (p TimePeriod) Keyword() string {
	switch p.Kind {
	case PeriodAnnual:
		return "annual"
	case PeriodQuarter:
		return "quarter"
	default:
		return ""
	}
}

func (p TimePeriod) String() string {
	switch p.Kind {
	case PeriodAnnual, PeriodQuarter:
		return p.Kind.String() + "(" + strconv.Itoa(p.N) + ")"
	default:
		return p.Kind.String()
	}
}
