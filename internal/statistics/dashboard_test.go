package statistics

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jekabolt/retail-stats/internal/entity"
)

func TestDashboard(t *testing.T) {
	svc, rm := newTestService(t)

	orders := []entity.Order{
		testOrder(entity.StatusDelivered, day(2027, time.September, 3), "100.25", 3),
		testOrder(entity.StatusPending, day(2027, time.September, 10), "50.25", 2),
	}
	rm.order.EXPECT().GetOrdersInRangeExcludingCancelled(mock.Anything, mock.Anything, mock.Anything).
		Return(orders, nil)
	rm.order.EXPECT().GetOrdersInRange(mock.Anything, mock.Anything, mock.Anything).
		Return(orders, nil)
	rm.order.EXPECT().GetAllOrders(mock.Anything).Return(orders, nil)
	rm.order.EXPECT().CountOnlineOrders(mock.Anything).Return(2, nil)
	rm.order.EXPECT().CountInStoreOrders(mock.Anything).Return(0, nil)
	rm.order.EXPECT().CountOrders(mock.Anything).Return(2, nil)
	rm.order.EXPECT().CountOrdersExcludingCancelled(mock.Anything).Return(2, nil)

	rm.orderLine.EXPECT().CountLines(mock.Anything).Return(2, nil)
	rm.orderLine.EXPECT().CountLinesExcludingCancelled(mock.Anything).Return(2, nil)
	rm.orderLine.EXPECT().GetLineDetailsExcludingCancelled(mock.Anything).
		Return([]entity.OrderLineDetail{
			manufacturerLine(1, 10, 100, "Acme", 3),
			manufacturerLine(2, 20, 200, "Globex", 2),
		}, nil)

	rm.products.EXPECT().GetAllProducts(mock.Anything).Return([]entity.Product{
		testProduct(1, "Hat", 1, true),
		testProduct(2, "Belt", 9, true),
	}, nil)

	d := svc.Dashboard(context.Background(), "month")

	assert.Equal(t, "month", d.Period.Period)
	assert.True(t, d.Period.Revenue.Equal(decimal.RequireFromString("150.50")))
	assert.Equal(t, 2, d.Period.Orders)

	assert.Equal(t, "all", d.Totals.Period)
	assert.Equal(t, 2, d.Totals.Orders)
	assert.Equal(t, 0, d.Totals.UnitsSold)

	assert.Len(t, d.BestSellers, 2)
	assert.Len(t, d.Weekly, 5)
	assert.Len(t, d.OrderStatuses, 5)
	assert.Len(t, d.Channels, 2)
	assert.Equal(t, 2, d.Channels[0].Count)

	assert.Len(t, d.LowStock, 1)
	assert.Equal(t, "Hat", d.LowStock[0].Name)

	assert.Len(t, d.TopManufacturers, 2)
	assert.Equal(t, "Acme", d.TopManufacturers[0].Name)
}
