package entity

import (
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStatusDisplay(t *testing.T) {
	d := StatusPending.Display()
	assert.Equal(t, "Pending confirmation", d.Label)
	assert.Equal(t, "#f472b6", d.Color)

	d = StatusDelivered.Display()
	assert.Equal(t, "Completed", d.Label)

	// unknown codes keep the raw code with a neutral color
	d = OrderStatusCode("REFUNDED").Display()
	assert.Equal(t, "REFUNDED", d.Label)
	assert.Equal(t, "#9ca3af", d.Color)
}

func TestOrderHelpers(t *testing.T) {
	o := Order{
		TotalAmount: decimal.NewNullDecimal(decimal.RequireFromString("19.99")),
		ItemCount:   sql.NullInt32{Int32: 3, Valid: true},
	}
	assert.True(t, o.TotalAmountDecimal().Equal(decimal.RequireFromString("19.99")))
	assert.Equal(t, 3, o.ItemCountInt())
	assert.True(t, o.IsOnline())

	empty := Order{StaffID: sql.NullInt32{Int32: 7, Valid: true}}
	assert.True(t, empty.TotalAmountDecimal().IsZero())
	assert.Equal(t, 0, empty.ItemCountInt())
	assert.False(t, empty.IsOnline())
}

func TestUnitPriceDecimal(t *testing.T) {
	d := OrderLineDetail{UnitPrice: decimal.RequireFromString("19.999")}
	assert.True(t, d.UnitPriceDecimal().Equal(decimal.RequireFromString("20.00")))

	exact := OrderLineDetail{UnitPrice: decimal.RequireFromString("25.00")}
	assert.True(t, exact.UnitPriceDecimal().Equal(decimal.RequireFromString("25.00")))
}

func TestProductIsActive(t *testing.T) {
	active := Product{Active: sql.NullBool{Bool: true, Valid: true}}
	assert.True(t, active.IsActive())

	inactive := Product{Active: sql.NullBool{Bool: false, Valid: true}}
	assert.False(t, inactive.IsActive())

	unknown := Product{}
	assert.False(t, unknown.IsActive())
}
