package entity

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatusCode is the custom type to enforce enum-like behavior
type OrderStatusCode string

func (c OrderStatusCode) String() string {
	return string(c)
}

const (
	StatusPending   OrderStatusCode = "PENDING"
	StatusConfirmed OrderStatusCode = "CONFIRMED"
	StatusShipping  OrderStatusCode = "SHIPPING"
	StatusDelivered OrderStatusCode = "DELIVERED"
	StatusCancelled OrderStatusCode = "CANCELLED"
)

// StatusDisplayOrder fixes the order in which statuses appear in reports,
// regardless of counts.
var StatusDisplayOrder = []OrderStatusCode{
	StatusPending,
	StatusConfirmed,
	StatusShipping,
	StatusDelivered,
	StatusCancelled,
}

// OrderStatusDisplay carries the presentation metadata of a status.
type OrderStatusDisplay struct {
	Label string
	Color string
}

var statusDisplays = map[OrderStatusCode]OrderStatusDisplay{
	StatusPending:   {Label: "Pending confirmation", Color: "#f472b6"},
	StatusConfirmed: {Label: "Awaiting shipment", Color: "#fbbf24"},
	StatusShipping:  {Label: "Shipping", Color: "#14b8a6"},
	StatusDelivered: {Label: "Completed", Color: "#a855f7"},
	StatusCancelled: {Label: "Cancelled", Color: "#ef4444"},
}

// Display returns the label and color for the status. Unknown codes fall
// back to the raw code with a neutral color.
func (c OrderStatusCode) Display() OrderStatusDisplay {
	if d, ok := statusDisplays[c]; ok {
		return d
	}
	return OrderStatusDisplay{Label: string(c), Color: "#9ca3af"}
}

// Order represents the customer_order table
type Order struct {
	ID          int                 `db:"id"`
	UUID        string              `db:"uuid"`
	Status      OrderStatusCode     `db:"status"`
	Placed      time.Time           `db:"placed"`
	TotalAmount decimal.NullDecimal `db:"total_amount"`
	ItemCount   sql.NullInt32       `db:"item_count"`
	StaffID     sql.NullInt32       `db:"staff_id"`
}

func (o *Order) TotalAmountDecimal() decimal.Decimal {
	if o.TotalAmount.Valid {
		return o.TotalAmount.Decimal
	}
	return decimal.Zero
}

func (o *Order) ItemCountInt() int {
	if o.ItemCount.Valid {
		return int(o.ItemCount.Int32)
	}
	return 0
}

// IsOnline reports whether the order came through the online channel.
// Orders rung up by a staff member are in-store sales.
func (o *Order) IsOnline() bool {
	return !o.StaffID.Valid
}

// OrderLineDetail is the denormalized read model of one order line joined
// through variant, product, style and manufacturer. Every column past
// unit_price comes from a LEFT JOIN and can be missing.
type OrderLineDetail struct {
	ID               int             `db:"id"`
	OrderID          int             `db:"order_id"`
	Quantity         int             `db:"quantity"`
	UnitPrice        decimal.Decimal `db:"unit_price"`
	VariantID        sql.NullInt64   `db:"variant_id"`
	Color            sql.NullString  `db:"color"`
	ProductID        sql.NullInt64   `db:"product_id"`
	ProductName      sql.NullString  `db:"product_name"`
	StyleName        sql.NullString  `db:"style_name"`
	ManufacturerID   sql.NullInt64   `db:"manufacturer_id"`
	ManufacturerName sql.NullString  `db:"manufacturer_name"`
}

func (d *OrderLineDetail) UnitPriceDecimal() decimal.Decimal {
	return d.UnitPrice.Round(2)
}
