package statistics

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/jekabolt/retail-stats/internal/entity"
	"github.com/shopspring/decimal"
)

// WeeklyRevenue partitions the current month into Monday-aligned weeks and
// sums non-cancelled order revenue per week. The first and last buckets
// are clipped to the month. Orders match a bucket by calendar date,
// inclusive on both ends.
func (s *Service) WeeklyRevenue(ctx context.Context) []entity.WeeklyRevenue {
	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	orders, err := s.repo.Order().GetOrdersInRangeExcludingCancelled(ctx, monthStart, monthEnd)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't get orders for weekly revenue",
			slog.String("err", err.Error()),
		)
		return []entity.WeeklyRevenue{}
	}

	lastDay := monthEnd.AddDate(0, 0, -1)

	weeks := make([]entity.WeeklyRevenue, 0, 6)
	cursor := monthStart
	for week := 1; cursor.Before(monthEnd); week++ {
		weekStart := cursor
		if monday := mondayOf(weekStart); monday.After(monthStart) {
			weekStart = monday
		}

		weekEnd := sundayOf(weekStart)
		if weekEnd.After(lastDay) {
			weekEnd = lastDay
		}
		if weekStart.After(weekEnd) {
			break
		}

		revenue := decimal.Zero
		count := 0
		for i := range orders {
			day := startOfDay(orders[i].Placed)
			if day.Before(weekStart) || day.After(weekEnd) {
				continue
			}
			revenue = revenue.Add(orders[i].TotalAmountDecimal())
			count++
		}

		weeks = append(weeks, entity.WeeklyRevenue{
			Label:     fmt.Sprintf("Week %d", week),
			StartDate: weekStart,
			EndDate:   weekEnd,
			Revenue:   revenue,
			Orders:    count,
		})

		cursor = weekEnd.AddDate(0, 0, 1)
	}
	return weeks
}

// sundayOf returns the Sunday ending the week containing day.
func sundayOf(day time.Time) time.Time {
	if day.Weekday() == time.Sunday {
		return day
	}
	return day.AddDate(0, 0, 7-int(day.Weekday()))
}
