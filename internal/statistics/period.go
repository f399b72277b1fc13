package statistics

import (
	"strings"
	"time"

	"log/slog"
)

// Period is a reporting window token.
type Period string

const (
	PeriodDay       Period = "day"
	PeriodWeek      Period = "week"
	PeriodMonth     Period = "month"
	PeriodYear      Period = "year"
	PeriodLastMonth Period = "lastmonth"
	PeriodLastYear  Period = "lastyear"
)

// normalizePeriod maps a raw token to a known period. Alias tokens resolve
// to their canonical period, unknown tokens fall back to month so report
// endpoints never reject input.
func normalizePeriod(raw string) Period {
	switch p := Period(strings.ToLower(strings.TrimSpace(raw))); p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear, PeriodLastMonth, PeriodLastYear:
		return p
	case "today":
		return PeriodDay
	case "last_month":
		return PeriodLastMonth
	case "last_year":
		return PeriodLastYear
	default:
		slog.Default().Warn("unknown period token, defaulting to month",
			slog.String("period", raw),
		)
		return PeriodMonth
	}
}

// startOfDay truncates t to midnight in its location.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// mondayOf returns the Monday of the week containing day.
func mondayOf(day time.Time) time.Time {
	wd := int(day.Weekday())
	if wd == 0 {
		wd = 7
	}
	return day.AddDate(0, 0, -(wd - 1))
}

// revenueWindow resolves the half-open [from, to) window of a revenue
// report. Month and year windows run to the start of the next period,
// day and week windows end at now.
func revenueWindow(now time.Time, p Period) (time.Time, time.Time) {
	today := startOfDay(now)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())

	switch p {
	case PeriodDay:
		return today, now
	case PeriodWeek:
		return mondayOf(today), now
	case PeriodYear:
		return yearStart, yearStart.AddDate(1, 0, 0)
	case PeriodLastMonth:
		return monthStart.AddDate(0, -1, 0), monthStart
	case PeriodLastYear:
		return yearStart.AddDate(-1, 0, 0), yearStart
	default:
		return monthStart, monthStart.AddDate(0, 1, 0)
	}
}

// statusWindow resolves the [from, to) window of the status distribution
// report. Every window ends at now and only day, week, month and year are
// supported. Anything else falls back to the month window.
func statusWindow(now time.Time, p Period) (time.Time, time.Time) {
	today := startOfDay(now)

	switch p {
	case PeriodDay:
		return today, now
	case PeriodWeek:
		return mondayOf(today), now
	case PeriodYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), now
	case PeriodMonth:
	default:
		slog.Default().Warn("period not supported for status distribution, defaulting to month",
			slog.String("period", string(p)),
		)
	}
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), now
}
