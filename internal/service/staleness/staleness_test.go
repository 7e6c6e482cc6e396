package staleness

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"FinScreen/internal/domain/models"
)

func day(y int, m time.Month, d int) models.Date { return models.NewDate(y, m, d) }

func pulled(n int, d models.Date) models.FetchProvenance {
	return models.FetchProvenance{LastPullLength: n, LastPullDate: &d}
}

func TestAnnualCalendarWindow(t *testing.T) {
	today := day(2025, time.June, 1)
	lastPull := today.AddDays(-10)

	fresh := State{Length: 10, MostRecent: today.AddDays(-300).String(), Provenance: pulled(10, lastPull)}
	assert.False(t, NeedsRefresh(fresh, models.Annual(10), today))

	stale := State{Length: 10, MostRecent: today.AddDays(-360).String(), Provenance: pulled(10, lastPull)}
	assert.True(t, NeedsRefresh(stale, models.Annual(10), today))
}

func TestCalendarStaleSkipsSameDayPull(t *testing.T) {
	today := day(2025, time.June, 1)
	st := State{Length: 10, MostRecent: today.AddDays(-400).String(), Provenance: pulled(10, today)}
	assert.False(t, NeedsRefresh(st, models.Annual(10), today))
}

func TestCalendarStaleAfterYesterdaysPull(t *testing.T) {
	today := day(2025, time.June, 1)
	yesterday := today.AddDays(-1)

	stale := State{Length: 10, MostRecent: today.AddDays(-360).String(), Provenance: pulled(10, yesterday)}
	assert.True(t, CalendarStale(stale, models.Annual(10), today))
	assert.True(t, NeedsRefresh(stale, models.Annual(10), today))

	fresh := State{Length: 10, MostRecent: today.AddDays(-300).String(), Provenance: pulled(10, yesterday)}
	assert.False(t, NeedsRefresh(fresh, models.Annual(10), today))

	// the same record pulled today waits until tomorrow
	assert.False(t, CalendarStale(State{Length: 10, MostRecent: stale.MostRecent, Provenance: pulled(10, today)}, models.Annual(10), today))
}

func TestQuarterWindow(t *testing.T) {
	today := day(2025, time.June, 1)
	lastPull := today.AddDays(-30)

	assert.False(t, CalendarStale(State{Length: 8, MostRecent: today.AddDays(-79).String(), Provenance: pulled(8, lastPull)}, models.Quarter(8), today))
	assert.True(t, CalendarStale(State{Length: 8, MostRecent: today.AddDays(-81).String(), Provenance: pulled(8, lastPull)}, models.Quarter(8), today))
}

func TestLengthRuleDoesNotRetryShortPull(t *testing.T) {
	today := day(2025, time.June, 1)
	st := State{Length: 3, MostRecent: today.AddDays(-10).String(), Provenance: pulled(10, today.AddDays(-1))}
	assert.False(t, NeedsRefresh(st, models.Annual(10), today))

	// asking for more than was ever pulled does fetch
	assert.True(t, NeedsRefresh(st, models.Annual(12), today))
}

func TestEmptyNeverPulled(t *testing.T) {
	today := day(2025, time.June, 1)
	assert.True(t, NeedsRefresh(State{}, models.Annual(10), today))
	assert.True(t, NeedsRefresh(State{}, models.TTM(), today))
	assert.True(t, NeedsRefresh(State{}, models.NotApplicable(), today))
}

func TestEmptyAfterFailedPull(t *testing.T) {
	today := day(2025, time.June, 1)
	st := State{Provenance: pulled(1, today)}
	assert.False(t, NeedsRefresh(st, models.TTM(), today))
	assert.False(t, NeedsRefresh(st, models.TTM(), today.AddDays(365)))
}

func TestUndatedSeriesAgeFromLastPull(t *testing.T) {
	today := day(2025, time.June, 1)
	recent := State{Length: 1, Provenance: pulled(1, today.AddDays(-20))}
	assert.False(t, NeedsRefresh(recent, models.TTM(), today))

	old := State{Length: 1, Provenance: pulled(1, today.AddDays(-90))}
	assert.True(t, NeedsRefresh(old, models.TTM(), today))
	assert.True(t, NeedsRefresh(old, models.NotApplicable(), today))
}

func TestUnparseableDateIsNotCalendarStale(t *testing.T) {
	today := day(2025, time.June, 1)
	st := State{Length: 10, MostRecent: "garbage", Provenance: pulled(10, today.AddDays(-500))}
	assert.False(t, NeedsRefresh(st, models.Annual(10), today))
}

func TestStateOf(t *testing.T) {
	s := &models.Slice[models.IncomeStatement]{
		Data:       []models.IncomeStatement{{Date: "2024-12-31"}, {Date: "2023-12-31"}},
		Provenance: models.FetchProvenance{LastPullLength: 10},
	}
	st := StateOf(s)
	assert.Equal(t, 2, st.Length)
	assert.Equal(t, "2024-12-31", st.MostRecent)
	assert.Equal(t, 10, st.Provenance.LastPullLength)
}
