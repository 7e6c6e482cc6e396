// Package staleness decides whether a cached series must be pulled again.
package staleness

import "FinScreen/internal/domain/models"

const (
	// AnnualExtensionDays is how long an annual series stays fresh past the
	// period date of its newest record.
	AnnualExtensionDays = 355
	// QuarterExtensionDays applies to quarterly, TTM and undated series.
	QuarterExtensionDays = 80
)

// State is what the decision looks at.
type State struct {
	Length int
	// MostRecent is the period date of the newest record, "" if the
	// records carry none.
	MostRecent string
	Provenance models.FetchProvenance
}

func StateOf(s models.Refreshable) State {
	return State{
		Length:     s.Len(),
		MostRecent: s.LatestDate(),
		Provenance: s.LastFetch(),
	}
}

// NeedsRefresh reports whether a series in state st must be fetched to
// satisfy a request for period on day today.
func NeedsRefresh(st State, period models.TimePeriod, today models.Date) bool {
	return LengthStale(st, period) || CalendarStale(st, period, today)
}

// LengthStale is true when fewer records are held than requested and the
// last pull asked for fewer than that. A pull that already asked for at
// least n records and got fewer is not retried on length alone.
func LengthStale(st State, period models.TimePeriod) bool {
	n := period.Horizon()
	return st.Length < n && n > st.Provenance.LastPullLength
}

// CalendarStale is true when the newest record is older than the extension
// window for period and the last pull was not today. Empty series are never
// calendar-stale. Series without period dates age from their last pull.
func CalendarStale(st State, period models.TimePeriod, today models.Date) bool {
	if st.Length == 0 {
		return false
	}
	ref, ok := referenceDate(st)
	if !ok {
		return false
	}
	if !ref.AddDays(ExtensionDays(period)).Before(today) {
		return false
	}
	last := st.Provenance.LastPullDate
	return last == nil || today.DaysSince(*last) > 0
}

func ExtensionDays(period models.TimePeriod) int {
	if period.Kind == models.PeriodAnnual {
		return AnnualExtensionDays
	}
	return QuarterExtensionDays
}

func referenceDate(st State) (models.Date, bool) {
	if st.MostRecent != "" {
		d, err := models.ParseDate(st.MostRecent)
		if err != nil {
			return models.Date{}, false
		}
		return d, true
	}
	if st.Provenance.LastPullDate != nil {
		return *st.Provenance.LastPullDate, true
	}
	return models.Date{}, false
}
