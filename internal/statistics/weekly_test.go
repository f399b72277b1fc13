package statistics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jekabolt/retail-stats/internal/entity"
)

func TestWeeklyRevenue(t *testing.T) {
	svc, rm := newTestService(t)

	monthStart := day(2027, time.September, 1)
	monthEnd := day(2027, time.October, 1)

	// September 2027 starts on a Wednesday and splits into five buckets:
	// 1-5, 6-12, 13-19, 20-26 and 27-30.
	rm.order.EXPECT().GetOrdersInRangeExcludingCancelled(mock.Anything, monthStart, monthEnd).
		Return([]entity.Order{
			testOrder(entity.StatusDelivered, day(2027, time.September, 1), "10.00", 1),
			testOrder(entity.StatusDelivered, time.Date(2027, time.September, 5, 23, 59, 0, 0, time.UTC), "20.00", 1),
			testOrder(entity.StatusShipping, day(2027, time.September, 6), "40.00", 1),
			testOrder(entity.StatusPending, day(2027, time.September, 19), "80.00", 1),
			testOrder(entity.StatusDelivered, day(2027, time.September, 30), "160.00", 1),
		}, nil)

	weeks := svc.WeeklyRevenue(context.Background())

	assert.Len(t, weeks, 5)

	assert.Equal(t, "Week 1", weeks[0].Label)
	assert.Equal(t, day(2027, time.September, 1), weeks[0].StartDate)
	assert.Equal(t, day(2027, time.September, 5), weeks[0].EndDate)
	assert.True(t, weeks[0].Revenue.Equal(decimal.RequireFromString("30.00")), "got %s", weeks[0].Revenue)
	assert.Equal(t, 2, weeks[0].Orders)

	assert.Equal(t, "Week 2", weeks[1].Label)
	assert.Equal(t, day(2027, time.September, 6), weeks[1].StartDate)
	assert.Equal(t, day(2027, time.September, 12), weeks[1].EndDate)
	assert.True(t, weeks[1].Revenue.Equal(decimal.RequireFromString("40.00")))
	assert.Equal(t, 1, weeks[1].Orders)

	assert.Equal(t, "Week 3", weeks[2].Label)
	assert.Equal(t, day(2027, time.September, 13), weeks[2].StartDate)
	assert.Equal(t, day(2027, time.September, 19), weeks[2].EndDate)
	assert.True(t, weeks[2].Revenue.Equal(decimal.RequireFromString("80.00")))

	assert.Equal(t, "Week 4", weeks[3].Label)
	assert.Equal(t, day(2027, time.September, 20), weeks[3].StartDate)
	assert.Equal(t, day(2027, time.September, 26), weeks[3].EndDate)
	assert.True(t, weeks[3].Revenue.IsZero())
	assert.Equal(t, 0, weeks[3].Orders)

	assert.Equal(t, "Week 5", weeks[4].Label)
	assert.Equal(t, day(2027, time.September, 27), weeks[4].StartDate)
	assert.Equal(t, day(2027, time.September, 30), weeks[4].EndDate)
	assert.True(t, weeks[4].Revenue.Equal(decimal.RequireFromString("160.00")))
	assert.Equal(t, 1, weeks[4].Orders)
}

func TestWeeklyRevenueMondayStart(t *testing.T) {
	svc, rm := newTestService(t)

	// November 2027 starts on a Monday, so the first bucket is a full week
	svc.WithNow(func() time.Time {
		return time.Date(2027, time.November, 10, 9, 0, 0, 0, time.UTC)
	})

	rm.order.EXPECT().GetOrdersInRangeExcludingCancelled(mock.Anything, day(2027, time.November, 1), day(2027, time.December, 1)).
		Return([]entity.Order{}, nil)

	weeks := svc.WeeklyRevenue(context.Background())

	assert.Len(t, weeks, 5)
	assert.Equal(t, day(2027, time.November, 1), weeks[0].StartDate)
	assert.Equal(t, day(2027, time.November, 7), weeks[0].EndDate)
	assert.Equal(t, day(2027, time.November, 29), weeks[4].StartDate)
	assert.Equal(t, day(2027, time.November, 30), weeks[4].EndDate)
}

func TestWeeklyRevenueError(t *testing.T) {
	svc, rm := newTestService(t)

	rm.order.EXPECT().GetOrdersInRangeExcludingCancelled(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("db gone"))

	weeks := svc.WeeklyRevenue(context.Background())

	assert.NotNil(t, weeks)
	assert.Empty(t, weeks)
}
