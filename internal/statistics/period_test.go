package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Wednesday afternoon in a month that starts mid-week.
var testNow = time.Date(2027, time.September, 15, 14, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNormalizePeriod(t *testing.T) {
	cases := map[string]Period{
		"day":        PeriodDay,
		"week":       PeriodWeek,
		"month":      PeriodMonth,
		"year":       PeriodYear,
		"lastmonth":  PeriodLastMonth,
		"lastyear":   PeriodLastYear,
		" Week ":     PeriodWeek,
		"MONTH":      PeriodMonth,
		"today":      PeriodDay,
		"last_month": PeriodLastMonth,
		"last_year":  PeriodLastYear,
		"quarter":    PeriodMonth,
		"":           PeriodMonth,
	}
	for raw, want := range cases {
		assert.Equal(t, want, normalizePeriod(raw), "raw %q", raw)
	}
}

func TestRevenueWindow(t *testing.T) {
	cases := []struct {
		period   Period
		from, to time.Time
	}{
		{PeriodDay, day(2027, time.September, 15), testNow},
		{PeriodWeek, day(2027, time.September, 13), testNow},
		{PeriodMonth, day(2027, time.September, 1), day(2027, time.October, 1)},
		{PeriodYear, day(2027, time.January, 1), day(2028, time.January, 1)},
		{PeriodLastMonth, day(2027, time.August, 1), day(2027, time.September, 1)},
		{PeriodLastYear, day(2026, time.January, 1), day(2027, time.January, 1)},
	}
	for _, c := range cases {
		from, to := revenueWindow(testNow, c.period)
		assert.Equal(t, c.from, from, "period %s", c.period)
		assert.Equal(t, c.to, to, "period %s", c.period)
	}
}

func TestStatusWindow(t *testing.T) {
	cases := []struct {
		period   Period
		from, to time.Time
	}{
		{PeriodDay, day(2027, time.September, 15), testNow},
		{PeriodWeek, day(2027, time.September, 13), testNow},
		{PeriodMonth, day(2027, time.September, 1), testNow},
		{PeriodYear, day(2027, time.January, 1), testNow},
		// trailing windows are not supported here and fall back to month
		{PeriodLastMonth, day(2027, time.September, 1), testNow},
		{PeriodLastYear, day(2027, time.September, 1), testNow},
	}
	for _, c := range cases {
		from, to := statusWindow(testNow, c.period)
		assert.Equal(t, c.from, from, "period %s", c.period)
		assert.Equal(t, c.to, to, "period %s", c.period)
	}
}

func TestWeekBounds(t *testing.T) {
	// 2027-09-19 is a Sunday, 2027-09-13 the Monday before it
	sunday := day(2027, time.September, 19)
	monday := day(2027, time.September, 13)

	assert.Equal(t, monday, mondayOf(sunday))
	assert.Equal(t, monday, mondayOf(monday))
	assert.Equal(t, monday, mondayOf(day(2027, time.September, 15)))

	assert.Equal(t, sunday, sundayOf(sunday))
	assert.Equal(t, sunday, sundayOf(monday))
	assert.Equal(t, sunday, sundayOf(day(2027, time.September, 15)))
}

func TestStartOfDay(t *testing.T) {
	assert.Equal(t, day(2027, time.September, 15), startOfDay(testNow))
}
