package statistics

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jekabolt/retail-stats/internal/entity"
)

func sellerLine(variant, product int64, name, color, style string, qty int, price string) entity.OrderLineDetail {
	return entity.OrderLineDetail{
		Quantity:    qty,
		UnitPrice:   decimal.RequireFromString(price),
		VariantID:   sql.NullInt64{Int64: variant, Valid: true},
		ProductID:   sql.NullInt64{Int64: product, Valid: true},
		ProductName: sql.NullString{String: name, Valid: true},
		Color:       sql.NullString{String: color, Valid: color != ""},
		StyleName:   sql.NullString{String: style, Valid: style != ""},
	}
}

func expectLineCounts(rm *repoMocks, total, nonCancelled int) {
	rm.orderLine.EXPECT().CountLines(mock.Anything).Return(total, nil)
	rm.orderLine.EXPECT().CountLinesExcludingCancelled(mock.Anything).Return(nonCancelled, nil)
}

func TestBestSellers(t *testing.T) {
	svc, rm := newTestService(t)
	expectLineCounts(rm, 5, 4)

	rm.orderLine.EXPECT().GetLineDetailsExcludingCancelled(mock.Anything).
		Return([]entity.OrderLineDetail{
			sellerLine(1, 10, "Tee", "Black", "Casual", 2, "25.00"),
			sellerLine(2, 20, "Jeans", "", "Denim", 4, "60.00"),
			sellerLine(1, 10, "Tee", "Black", "Casual", 3, "25.00"),
			{Quantity: 9, UnitPrice: decimal.RequireFromString("5.00")},
		}, nil)

	res := svc.BestSellers(context.Background(), 0)

	assert.Len(t, res, 2)
	assert.Equal(t, int64(1), res[0].VariantID)
	assert.Equal(t, int64(10), res[0].ProductID)
	assert.Equal(t, "Tee", res[0].ProductName)
	assert.Equal(t, 5, res[0].QuantitySold)
	if assert.NotNil(t, res[0].Color) {
		assert.Equal(t, "Black", *res[0].Color)
	}
	if assert.NotNil(t, res[0].Style) {
		assert.Equal(t, "Casual", *res[0].Style)
	}
	assert.True(t, res[0].UnitPrice.Equal(decimal.RequireFromString("25.00")))

	assert.Equal(t, int64(2), res[1].VariantID)
	assert.Equal(t, 4, res[1].QuantitySold)
	assert.Nil(t, res[1].Color)
}

func TestBestSellersRoundsUnitPrice(t *testing.T) {
	svc, rm := newTestService(t)
	expectLineCounts(rm, 1, 1)

	rm.orderLine.EXPECT().GetLineDetailsExcludingCancelled(mock.Anything).
		Return([]entity.OrderLineDetail{
			sellerLine(1, 10, "Tee", "", "", 1, "19.999"),
		}, nil)

	res := svc.BestSellers(context.Background(), 5)

	assert.Len(t, res, 1)
	assert.True(t, res[0].UnitPrice.Equal(decimal.RequireFromString("20.00")), "got %s", res[0].UnitPrice)
}

func TestBestSellersTieKeepsFirstSeenOrder(t *testing.T) {
	svc, rm := newTestService(t)
	expectLineCounts(rm, 3, 3)

	rm.orderLine.EXPECT().GetLineDetailsExcludingCancelled(mock.Anything).
		Return([]entity.OrderLineDetail{
			sellerLine(1, 10, "Tee", "", "", 5, "25.00"),
			sellerLine(2, 20, "Jeans", "", "", 3, "60.00"),
			sellerLine(3, 30, "Cap", "", "", 3, "15.00"),
		}, nil)

	res := svc.BestSellers(context.Background(), 2)

	assert.Len(t, res, 2)
	assert.Equal(t, "Tee", res[0].ProductName)
	assert.Equal(t, "Jeans", res[1].ProductName)
}

func TestBestSellersPrimaryErrorFallsBackToDateBounded(t *testing.T) {
	svc, rm := newTestService(t)
	expectLineCounts(rm, 2, 2)

	rm.orderLine.EXPECT().GetLineDetailsExcludingCancelled(mock.Anything).
		Return(nil, errors.New("db gone"))
	rm.orderLine.EXPECT().GetLineDetailsInRange(mock.Anything, testNow.AddDate(-1, 0, 0), testNow).
		Return([]entity.OrderLineDetail{
			sellerLine(1, 10, "Tee", "", "", 2, "25.00"),
		}, nil)

	res := svc.BestSellers(context.Background(), 5)

	assert.Len(t, res, 1)
	assert.Equal(t, "Tee", res[0].ProductName)
	assert.Equal(t, 2, res[0].QuantitySold)
}

func TestBestSellersEmptyPrimaryUsesBackup(t *testing.T) {
	svc, rm := newTestService(t)
	expectLineCounts(rm, 2, 2)

	rm.orderLine.EXPECT().GetLineDetailsExcludingCancelled(mock.Anything).
		Return([]entity.OrderLineDetail{}, nil)
	rm.orderLine.EXPECT().GetLineDetailsExcludingCancelledBackup(mock.Anything).
		Return([]entity.OrderLineDetail{
			sellerLine(7, 70, "Socks", "", "", 6, "8.00"),
		}, nil)

	res := svc.BestSellers(context.Background(), 5)

	assert.Len(t, res, 1)
	assert.Equal(t, int64(7), res[0].VariantID)
	assert.Equal(t, 6, res[0].QuantitySold)
}

func TestBestSellersBackupErrorRunsDiagnostic(t *testing.T) {
	svc, rm := newTestService(t)
	expectLineCounts(rm, 2, 2)

	rm.orderLine.EXPECT().GetLineDetailsExcludingCancelled(mock.Anything).
		Return([]entity.OrderLineDetail{}, nil)
	rm.orderLine.EXPECT().GetLineDetailsExcludingCancelledBackup(mock.Anything).
		Return(nil, errors.New("db gone"))
	// the unfiltered fetch is only counted, its rows never surface
	rm.orderLine.EXPECT().GetLineDetailsAllStatuses(mock.Anything).
		Return([]entity.OrderLineDetail{
			sellerLine(1, 10, "Tee", "", "", 2, "25.00"),
		}, nil)

	res := svc.BestSellers(context.Background(), 5)

	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestBestSellersBothEmpty(t *testing.T) {
	svc, rm := newTestService(t)
	expectLineCounts(rm, 0, 0)

	rm.orderLine.EXPECT().GetLineDetailsExcludingCancelled(mock.Anything).
		Return([]entity.OrderLineDetail{}, nil)
	rm.orderLine.EXPECT().GetLineDetailsExcludingCancelledBackup(mock.Anything).
		Return([]entity.OrderLineDetail{}, nil)

	res := svc.BestSellers(context.Background(), 5)

	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestBestSellersCountFailureDoesNotAffectReport(t *testing.T) {
	svc, rm := newTestService(t)

	rm.orderLine.EXPECT().CountLines(mock.Anything).Return(0, errors.New("db gone"))
	rm.orderLine.EXPECT().GetLineDetailsExcludingCancelled(mock.Anything).
		Return([]entity.OrderLineDetail{
			sellerLine(1, 10, "Tee", "", "", 1, "25.00"),
		}, nil)

	res := svc.BestSellers(context.Background(), 5)

	assert.Len(t, res, 1)
}

func TestBestSellersDefaultLimit(t *testing.T) {
	svc, rm := newTestService(t)
	expectLineCounts(rm, 12, 12)

	lines := make([]entity.OrderLineDetail, 0, 12)
	for i := int64(1); i <= 12; i++ {
		lines = append(lines, sellerLine(i, i, "Item", "", "", int(i), "10.00"))
	}
	rm.orderLine.EXPECT().GetLineDetailsExcludingCancelled(mock.Anything).Return(lines, nil)

	res := svc.BestSellers(context.Background(), -3)

	assert.Len(t, res, 10)
	assert.Equal(t, 12, res[0].QuantitySold)
}
