package statistics

import (
	"context"
	"sort"
	"strings"
	"time"

	"log/slog"

	"github.com/jekabolt/retail-stats/internal/dependency"
	"github.com/jekabolt/retail-stats/internal/entity"
	"github.com/shopspring/decimal"
)

const (
	defaultBestSellersLimit   = 10
	defaultLowStockThreshold  = 5
	defaultLowStockLimit      = 10
	defaultManufacturersLimit = 3
)

// Service computes sales reports over the read-only repository. Every
// public method soft-fails: data access errors are logged and the method
// returns the documented default shape, never an error.
type Service struct {
	repo dependency.Repository
	now  func() time.Time
}

// New creates a new statistics service.
func New(repo dependency.Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// WithNow replaces the service clock. Used by tests.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

// PeriodStatistics returns revenue, units sold and order count for the
// window named by period. Cancelled orders are excluded.
func (s *Service) PeriodStatistics(ctx context.Context, period string) entity.PeriodStatistics {
	res := entity.PeriodStatistics{
		Period:  period,
		Revenue: decimal.Zero,
	}

	s.logOrderCounts(ctx)

	from, to := revenueWindow(s.now(), normalizePeriod(period))
	orders, err := s.repo.Order().GetOrdersInRangeExcludingCancelled(ctx, from, to)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't get orders for period statistics",
			slog.String("period", period),
			slog.String("err", err.Error()),
		)
		return res
	}

	revenue := decimal.Zero
	units := 0
	for i := range orders {
		revenue = revenue.Add(orders[i].TotalAmountDecimal())
		units += orders[i].ItemCountInt()
	}

	res.Revenue = revenue
	res.UnitsSold = units
	res.Orders = len(orders)
	return res
}

// logOrderCounts logs order totals before the period fetch. Failures here
// never affect the report.
func (s *Service) logOrderCounts(ctx context.Context) {
	o := s.repo.Order()

	total, err := o.CountOrders(ctx)
	if err != nil {
		slog.Default().WarnContext(ctx, "can't count orders",
			slog.String("err", err.Error()),
		)
		return
	}
	nonCancelled, err := o.CountOrdersExcludingCancelled(ctx)
	if err != nil {
		slog.Default().WarnContext(ctx, "can't count non-cancelled orders",
			slog.String("err", err.Error()),
		)
		return
	}
	slog.Default().DebugContext(ctx, "order counts",
		slog.Int("total", total),
		slog.Int("excluding_cancelled", nonCancelled),
	)
}

// TotalStatistics returns all-time revenue and order count across every
// order, cancelled included. UnitsSold is always zero in this report.
func (s *Service) TotalStatistics(ctx context.Context) entity.PeriodStatistics {
	res := entity.PeriodStatistics{
		Period:  "all",
		Revenue: decimal.Zero,
	}

	orders, err := s.repo.Order().GetAllOrders(ctx)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't get orders for total statistics",
			slog.String("err", err.Error()),
		)
		return res
	}

	revenue := decimal.Zero
	for i := range orders {
		revenue = revenue.Add(orders[i].TotalAmountDecimal())
	}

	res.Revenue = revenue
	res.Orders = len(orders)
	return res
}

// OrderStatusDistribution counts orders per status over the window named
// by period. The result always holds the five statuses in display order,
// zero counts included, so charts keep a stable shape.
func (s *Service) OrderStatusDistribution(ctx context.Context, period string) []entity.OrderStatusStatistics {
	from, to := statusWindow(s.now(), normalizePeriod(period))

	counts := make(map[entity.OrderStatusCode]int, len(entity.StatusDisplayOrder))
	orders, err := s.repo.Order().GetOrdersInRange(ctx, from, to)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't get orders for status distribution",
			slog.String("period", period),
			slog.String("err", err.Error()),
		)
	}
	for i := range orders {
		counts[orders[i].Status]++
	}

	out := make([]entity.OrderStatusStatistics, 0, len(entity.StatusDisplayOrder))
	for _, code := range entity.StatusDisplayOrder {
		d := code.Display()
		out = append(out, entity.OrderStatusStatistics{
			StatusCode: code,
			Label:      d.Label,
			Count:      counts[code],
			Color:      d.Color,
		})
	}
	return out
}

// ChannelStatistics splits the all-time order count into online and
// in-store sales. Both channels are always present.
func (s *Service) ChannelStatistics(ctx context.Context) []entity.ChannelStatistics {
	online, onlineErr := s.repo.Order().CountOnlineOrders(ctx)
	inStore, inStoreErr := s.repo.Order().CountInStoreOrders(ctx)
	if onlineErr != nil || inStoreErr != nil {
		slog.Default().ErrorContext(ctx, "can't count orders per channel",
			slog.Any("online_err", onlineErr),
			slog.Any("in_store_err", inStoreErr),
		)
		online, inStore = 0, 0
	}

	return []entity.ChannelStatistics{
		{Channel: entity.ChannelOnline, Count: online, Color: entity.ChannelOnlineColor},
		{Channel: entity.ChannelInStore, Count: inStore, Color: entity.ChannelInStoreColor},
	}
}

// LowStockProducts lists active products at or under the stock threshold,
// ascending by stock. Products without a stock figure or an active flag
// are excluded.
func (s *Service) LowStockProducts(ctx context.Context, threshold, limit int) []entity.LowStockProduct {
	if threshold < 0 {
		threshold = defaultLowStockThreshold
	}
	if limit <= 0 {
		limit = defaultLowStockLimit
	}

	products, err := s.repo.Products().GetAllProducts(ctx)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't get products for low stock report",
			slog.String("err", err.Error()),
		)
		return []entity.LowStockProduct{}
	}

	out := make([]entity.LowStockProduct, 0, limit)
	for i := range products {
		p := &products[i]
		if !p.IsActive() || !p.Stock.Valid {
			continue
		}
		if int(p.Stock.Int32) > threshold {
			continue
		}
		out = append(out, entity.LowStockProduct{
			ProductID: p.ID,
			Name:      p.Name,
			Stock:     int(p.Stock.Int32),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Stock < out[j].Stock
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// TopManufacturers ranks manufacturers by units sold across non-cancelled
// orders. Lines with a broken variant chain or a blank manufacturer name
// are skipped.
func (s *Service) TopManufacturers(ctx context.Context, limit int) []entity.ManufacturerStatistics {
	if limit <= 0 {
		limit = defaultManufacturersLimit
	}

	lines, err := s.repo.OrderLine().GetLineDetailsExcludingCancelled(ctx)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't get order lines for manufacturer report",
			slog.String("err", err.Error()),
		)
		return []entity.ManufacturerStatistics{}
	}

	groups := make(map[int64]*entity.ManufacturerStatistics)
	seen := make([]int64, 0)
	for i := range lines {
		ln := &lines[i]
		if !ln.VariantID.Valid || !ln.ProductID.Valid || !ln.ManufacturerID.Valid {
			continue
		}
		if strings.TrimSpace(ln.ManufacturerName.String) == "" {
			continue
		}
		key := ln.ManufacturerID.Int64
		g, ok := groups[key]
		if !ok {
			g = &entity.ManufacturerStatistics{
				ManufacturerID: key,
				Name:           ln.ManufacturerName.String,
			}
			groups[key] = g
			seen = append(seen, key)
		}
		g.QuantitySold += ln.Quantity
	}

	out := make([]entity.ManufacturerStatistics, 0, len(seen))
	for _, key := range seen {
		out = append(out, *groups[key])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].QuantitySold > out[j].QuantitySold
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
