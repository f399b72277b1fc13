package statistics

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jekabolt/retail-stats/internal/dependency/mocks"
	"github.com/jekabolt/retail-stats/internal/entity"
)

type repoMocks struct {
	repo      *mocks.Repository
	order     *mocks.Order
	orderLine *mocks.OrderLine
	products  *mocks.Products
}

func newRepoMocks(t *testing.T) *repoMocks {
	rm := &repoMocks{
		repo:      mocks.NewRepository(t),
		order:     mocks.NewOrder(t),
		orderLine: mocks.NewOrderLine(t),
		products:  mocks.NewProducts(t),
	}
	rm.repo.EXPECT().Order().Return(rm.order).Maybe()
	rm.repo.EXPECT().OrderLine().Return(rm.orderLine).Maybe()
	rm.repo.EXPECT().Products().Return(rm.products).Maybe()
	return rm
}

func newTestService(t *testing.T) (*Service, *repoMocks) {
	rm := newRepoMocks(t)
	svc := New(rm.repo).WithNow(func() time.Time { return testNow })
	return svc, rm
}

func testOrder(status entity.OrderStatusCode, placed time.Time, amount string, items int) entity.Order {
	return entity.Order{
		UUID:        uuid.NewString(),
		Status:      status,
		Placed:      placed,
		TotalAmount: decimal.NewNullDecimal(decimal.RequireFromString(amount)),
		ItemCount:   sql.NullInt32{Int32: int32(items), Valid: true},
	}
}

func expectOrderCounts(rm *repoMocks, total, nonCancelled int) {
	rm.order.EXPECT().CountOrders(mock.Anything).Return(total, nil)
	rm.order.EXPECT().CountOrdersExcludingCancelled(mock.Anything).Return(nonCancelled, nil)
}

func TestPeriodStatistics(t *testing.T) {
	svc, rm := newTestService(t)
	expectOrderCounts(rm, 3, 2)

	monthStart := day(2027, time.September, 1)
	nextMonth := day(2027, time.October, 1)
	rm.order.EXPECT().GetOrdersInRangeExcludingCancelled(mock.Anything, monthStart, nextMonth).
		Return([]entity.Order{
			testOrder(entity.StatusDelivered, day(2027, time.September, 3), "100.25", 3),
			testOrder(entity.StatusShipping, day(2027, time.September, 10), "50.25", 2),
		}, nil)

	res := svc.PeriodStatistics(context.Background(), "month")

	assert.Equal(t, "month", res.Period)
	assert.True(t, res.Revenue.Equal(decimal.RequireFromString("150.50")), "got %s", res.Revenue)
	assert.Equal(t, 5, res.UnitsSold)
	assert.Equal(t, 2, res.Orders)
}

func TestPeriodStatisticsUnknownPeriod(t *testing.T) {
	svc, rm := newTestService(t)
	expectOrderCounts(rm, 0, 0)

	// unknown tokens resolve to the month window but the raw token is echoed
	rm.order.EXPECT().GetOrdersInRangeExcludingCancelled(mock.Anything, day(2027, time.September, 1), day(2027, time.October, 1)).
		Return([]entity.Order{}, nil)

	res := svc.PeriodStatistics(context.Background(), "quarter")

	assert.Equal(t, "quarter", res.Period)
	assert.True(t, res.Revenue.IsZero())
	assert.Equal(t, 0, res.Orders)
}

func TestPeriodStatisticsError(t *testing.T) {
	svc, rm := newTestService(t)
	expectOrderCounts(rm, 3, 2)

	rm.order.EXPECT().GetOrdersInRangeExcludingCancelled(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("db gone"))

	res := svc.PeriodStatistics(context.Background(), "week")

	assert.Equal(t, "week", res.Period)
	assert.True(t, res.Revenue.IsZero())
	assert.Equal(t, 0, res.UnitsSold)
	assert.Equal(t, 0, res.Orders)
}

func TestPeriodStatisticsCountFailureDoesNotAffectReport(t *testing.T) {
	svc, rm := newTestService(t)

	// the count preflight is diagnostic only
	rm.order.EXPECT().CountOrders(mock.Anything).Return(0, errors.New("db gone"))
	rm.order.EXPECT().GetOrdersInRangeExcludingCancelled(mock.Anything, mock.Anything, mock.Anything).
		Return([]entity.Order{
			testOrder(entity.StatusDelivered, day(2027, time.September, 3), "100.25", 3),
		}, nil)

	res := svc.PeriodStatistics(context.Background(), "month")

	assert.True(t, res.Revenue.Equal(decimal.RequireFromString("100.25")))
	assert.Equal(t, 1, res.Orders)
}

func TestTotalStatistics(t *testing.T) {
	svc, rm := newTestService(t)

	rm.order.EXPECT().GetAllOrders(mock.Anything).Return([]entity.Order{
		testOrder(entity.StatusDelivered, day(2027, time.June, 1), "1000.00", 4),
		testOrder(entity.StatusPending, day(2027, time.August, 20), "100.25", 1),
		testOrder(entity.StatusCancelled, day(2027, time.September, 2), "50.25", 2),
	}, nil)

	res := svc.TotalStatistics(context.Background())

	assert.Equal(t, "all", res.Period)
	assert.True(t, res.Revenue.Equal(decimal.RequireFromString("1150.50")), "got %s", res.Revenue)
	assert.Equal(t, 3, res.Orders)
	assert.Equal(t, 0, res.UnitsSold)
}

func TestTotalStatisticsNullAmount(t *testing.T) {
	svc, rm := newTestService(t)

	rm.order.EXPECT().GetAllOrders(mock.Anything).Return([]entity.Order{
		{UUID: uuid.NewString(), Status: entity.StatusDelivered, Placed: day(2027, time.May, 5)},
		testOrder(entity.StatusDelivered, day(2027, time.May, 6), "10.00", 1),
	}, nil)

	res := svc.TotalStatistics(context.Background())

	assert.True(t, res.Revenue.Equal(decimal.RequireFromString("10.00")))
	assert.Equal(t, 2, res.Orders)
}

func TestOrderStatusDistribution(t *testing.T) {
	svc, rm := newTestService(t)

	rm.order.EXPECT().GetOrdersInRange(mock.Anything, day(2027, time.September, 1), testNow).
		Return([]entity.Order{
			testOrder(entity.StatusPending, day(2027, time.September, 2), "10.00", 1),
			testOrder(entity.StatusPending, day(2027, time.September, 3), "10.00", 1),
			testOrder(entity.StatusDelivered, day(2027, time.September, 4), "10.00", 1),
			testOrder("REFUNDED", day(2027, time.September, 5), "10.00", 1),
		}, nil)

	res := svc.OrderStatusDistribution(context.Background(), "month")

	assert.Len(t, res, 5)
	assert.Equal(t, entity.StatusPending, res[0].StatusCode)
	assert.Equal(t, "Pending confirmation", res[0].Label)
	assert.Equal(t, "#f472b6", res[0].Color)
	assert.Equal(t, 2, res[0].Count)

	assert.Equal(t, entity.StatusConfirmed, res[1].StatusCode)
	assert.Equal(t, 0, res[1].Count)
	assert.Equal(t, entity.StatusShipping, res[2].StatusCode)
	assert.Equal(t, 0, res[2].Count)

	assert.Equal(t, entity.StatusDelivered, res[3].StatusCode)
	assert.Equal(t, "Completed", res[3].Label)
	assert.Equal(t, 1, res[3].Count)

	assert.Equal(t, entity.StatusCancelled, res[4].StatusCode)
	assert.Equal(t, "#ef4444", res[4].Color)
	assert.Equal(t, 0, res[4].Count)
}

func TestOrderStatusDistributionError(t *testing.T) {
	svc, rm := newTestService(t)

	rm.order.EXPECT().GetOrdersInRange(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("db gone"))

	res := svc.OrderStatusDistribution(context.Background(), "week")

	// the chart keeps its shape even when the fetch fails
	assert.Len(t, res, 5)
	for _, st := range res {
		assert.Equal(t, 0, st.Count)
	}
}

func TestChannelStatistics(t *testing.T) {
	svc, rm := newTestService(t)

	rm.order.EXPECT().CountOnlineOrders(mock.Anything).Return(7, nil)
	rm.order.EXPECT().CountInStoreOrders(mock.Anything).Return(3, nil)

	res := svc.ChannelStatistics(context.Background())

	assert.Len(t, res, 2)
	assert.Equal(t, entity.ChannelOnline, res[0].Channel)
	assert.Equal(t, 7, res[0].Count)
	assert.Equal(t, entity.ChannelOnlineColor, res[0].Color)
	assert.Equal(t, entity.ChannelInStore, res[1].Channel)
	assert.Equal(t, 3, res[1].Count)
	assert.Equal(t, entity.ChannelInStoreColor, res[1].Color)
}

func TestChannelStatisticsError(t *testing.T) {
	svc, rm := newTestService(t)

	rm.order.EXPECT().CountOnlineOrders(mock.Anything).Return(7, nil)
	rm.order.EXPECT().CountInStoreOrders(mock.Anything).Return(0, errors.New("db gone"))

	res := svc.ChannelStatistics(context.Background())

	// one failed count zeroes both channels
	assert.Len(t, res, 2)
	assert.Equal(t, 0, res[0].Count)
	assert.Equal(t, 0, res[1].Count)
}

func testProduct(id int, name string, stock int32, active bool) entity.Product {
	return entity.Product{
		ID:     id,
		Name:   name,
		Stock:  sql.NullInt32{Int32: stock, Valid: true},
		Active: sql.NullBool{Bool: active, Valid: true},
	}
}

func TestLowStockProducts(t *testing.T) {
	svc, rm := newTestService(t)

	rm.products.EXPECT().GetAllProducts(mock.Anything).Return([]entity.Product{
		testProduct(1, "Scarf", 5, true),
		testProduct(2, "Hat", 0, true),
		testProduct(3, "Gloves", 2, true),
		testProduct(4, "Coat", 1, false),
		{ID: 5, Name: "Boots", Active: sql.NullBool{Bool: true, Valid: true}},
		testProduct(6, "Belt", 9, true),
	}, nil)

	res := svc.LowStockProducts(context.Background(), -1, 0)

	// inactive, missing-stock and over-threshold rows drop out
	assert.Len(t, res, 3)
	assert.Equal(t, "Hat", res[0].Name)
	assert.Equal(t, 0, res[0].Stock)
	assert.Equal(t, "Gloves", res[1].Name)
	assert.Equal(t, 2, res[1].Stock)
	assert.Equal(t, "Scarf", res[2].Name)
	assert.Equal(t, 5, res[2].Stock)
}

func TestLowStockProductsLimit(t *testing.T) {
	svc, rm := newTestService(t)

	rm.products.EXPECT().GetAllProducts(mock.Anything).Return([]entity.Product{
		testProduct(1, "Scarf", 3, true),
		testProduct(2, "Hat", 1, true),
		testProduct(3, "Gloves", 2, true),
	}, nil)

	res := svc.LowStockProducts(context.Background(), 10, 2)

	assert.Len(t, res, 2)
	assert.Equal(t, "Hat", res[0].Name)
	assert.Equal(t, "Gloves", res[1].Name)
}

func TestLowStockProductsError(t *testing.T) {
	svc, rm := newTestService(t)

	rm.products.EXPECT().GetAllProducts(mock.Anything).Return(nil, errors.New("db gone"))

	res := svc.LowStockProducts(context.Background(), -1, 0)

	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func manufacturerLine(variant, product, manufacturer int64, name string, qty int) entity.OrderLineDetail {
	return entity.OrderLineDetail{
		Quantity:         qty,
		UnitPrice:        decimal.RequireFromString("20.00"),
		VariantID:        sql.NullInt64{Int64: variant, Valid: true},
		ProductID:        sql.NullInt64{Int64: product, Valid: true},
		ManufacturerID:   sql.NullInt64{Int64: manufacturer, Valid: true},
		ManufacturerName: sql.NullString{String: name, Valid: name != ""},
	}
}

func TestTopManufacturers(t *testing.T) {
	svc, rm := newTestService(t)

	broken := manufacturerLine(9, 9, 9, "Ghost", 50)
	broken.VariantID = sql.NullInt64{}

	rm.orderLine.EXPECT().GetLineDetailsExcludingCancelled(mock.Anything).
		Return([]entity.OrderLineDetail{
			manufacturerLine(1, 1, 10, "Acme", 2),
			manufacturerLine(2, 2, 20, "Globex", 5),
			manufacturerLine(3, 3, 10, "Acme", 1),
			manufacturerLine(4, 4, 30, " ", 8),
			broken,
			manufacturerLine(5, 5, 40, "Initech", 1),
		}, nil)

	res := svc.TopManufacturers(context.Background(), 0)

	assert.Len(t, res, 3)
	assert.Equal(t, "Globex", res[0].Name)
	assert.Equal(t, 5, res[0].QuantitySold)
	assert.Equal(t, "Acme", res[1].Name)
	assert.Equal(t, int64(10), res[1].ManufacturerID)
	assert.Equal(t, 3, res[1].QuantitySold)
	assert.Equal(t, "Initech", res[2].Name)
	assert.Equal(t, 1, res[2].QuantitySold)

	// a second run over unchanged data yields the same report
	assert.Equal(t, res, svc.TopManufacturers(context.Background(), 0))
}

func TestTopManufacturersError(t *testing.T) {
	svc, rm := newTestService(t)

	rm.orderLine.EXPECT().GetLineDetailsExcludingCancelled(mock.Anything).
		Return(nil, errors.New("db gone"))

	res := svc.TopManufacturers(context.Background(), 3)

	assert.NotNil(t, res)
	assert.Empty(t, res)
}
