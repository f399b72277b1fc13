package statistics

import (
	"context"

	"github.com/jekabolt/retail-stats/internal/entity"
	"golang.org/x/sync/errgroup"
)

// Dashboard bundles every report into one response, fetched concurrently.
// Each report keeps its own soft-fail contract, so the dashboard always
// succeeds.
func (s *Service) Dashboard(ctx context.Context, period string) entity.Dashboard {
	var d entity.Dashboard

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d.Period = s.PeriodStatistics(ctx, period)
		return nil
	})
	g.Go(func() error {
		d.Totals = s.TotalStatistics(ctx)
		return nil
	})
	g.Go(func() error {
		d.BestSellers = s.BestSellers(ctx, defaultBestSellersLimit)
		return nil
	})
	g.Go(func() error {
		d.Weekly = s.WeeklyRevenue(ctx)
		return nil
	})
	g.Go(func() error {
		d.OrderStatuses = s.OrderStatusDistribution(ctx, period)
		return nil
	})
	g.Go(func() error {
		d.Channels = s.ChannelStatistics(ctx)
		return nil
	})
	g.Go(func() error {
		d.LowStock = s.LowStockProducts(ctx, defaultLowStockThreshold, defaultLowStockLimit)
		return nil
	})
	g.Go(func() error {
		d.TopManufacturers = s.TopManufacturers(ctx, defaultManufacturersLimit)
		return nil
	})
	_ = g.Wait()

	return d
}
