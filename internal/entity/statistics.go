package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sales channel labels and colors used by the channel split report.
const (
	ChannelOnline  = "Online"
	ChannelInStore = "In-store"

	ChannelOnlineColor  = "#f472b6"
	ChannelInStoreColor = "#3b82f6"
)

// BestSellingProduct is one row of the best-sellers report, aggregated per
// product variant.
type BestSellingProduct struct {
	VariantID    int64           `json:"variantId"`
	ProductID    int64           `json:"productId"`
	ProductName  string          `json:"productName"`
	Color        *string         `json:"color,omitempty"`
	Style        *string         `json:"style,omitempty"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	QuantitySold int             `json:"quantitySold"`
}

// PeriodStatistics carries revenue, units sold and order count for one
// reporting window. The all-time totals variant reports UnitsSold as zero.
type PeriodStatistics struct {
	Period    string          `json:"period"`
	Revenue   decimal.Decimal `json:"revenue"`
	UnitsSold int             `json:"unitsSold"`
	Orders    int             `json:"orders"`
}

// WeeklyRevenue is one Monday-aligned bucket of the current month.
type WeeklyRevenue struct {
	Label     string          `json:"weekLabel"`
	StartDate time.Time       `json:"startDate"`
	EndDate   time.Time       `json:"endDate"`
	Revenue   decimal.Decimal `json:"totalRevenue"`
	Orders    int             `json:"totalOrders"`
}

// OrderStatusStatistics is one entry of the status distribution report.
type OrderStatusStatistics struct {
	StatusCode OrderStatusCode `json:"statusCode"`
	Label      string          `json:"label"`
	Count      int             `json:"count"`
	Color      string          `json:"color"`
}

// ChannelStatistics is one entry of the sales channel split.
type ChannelStatistics struct {
	Channel string `json:"channel"`
	Count   int    `json:"count"`
	Color   string `json:"color"`
}

// LowStockProduct is one row of the low-stock report.
type LowStockProduct struct {
	ProductID int    `json:"productId"`
	Name      string `json:"productName"`
	Stock     int    `json:"stock"`
}

// ManufacturerStatistics is one row of the top-manufacturers report.
type ManufacturerStatistics struct {
	ManufacturerID int64  `json:"manufacturerId"`
	Name           string `json:"manufacturerName"`
	QuantitySold   int    `json:"quantitySold"`
}

// Dashboard bundles every report for a single admin round trip.
type Dashboard struct {
	Period           PeriodStatistics         `json:"period"`
	Totals           PeriodStatistics         `json:"totals"`
	BestSellers      []BestSellingProduct     `json:"bestSellers"`
	Weekly           []WeeklyRevenue          `json:"weeklyRevenue"`
	OrderStatuses    []OrderStatusStatistics  `json:"orderStatuses"`
	Channels         []ChannelStatistics      `json:"channels"`
	LowStock         []LowStockProduct        `json:"lowStock"`
	TopManufacturers []ManufacturerStatistics `json:"topManufacturers"`
}
