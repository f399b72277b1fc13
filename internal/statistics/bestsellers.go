package statistics

import (
	"context"
	"sort"

	"log/slog"

	"github.com/jekabolt/retail-stats/internal/entity"
)

// lineFetchStrategy is one tier of the best-sellers fetch chain. Strategies
// run in order until one yields rows. A failing strategy hands control to
// its onError fallback instead of aborting the report.
type lineFetchStrategy struct {
	name    string
	fetch   func(context.Context) ([]entity.OrderLineDetail, error)
	onError func(context.Context) []entity.OrderLineDetail
}

// BestSellers ranks product variants by units sold across non-cancelled
// orders. Lines whose variant or product link is missing are skipped. The
// first line seen for a variant seeds its name, color, style and unit
// price.
func (s *Service) BestSellers(ctx context.Context, limit int) []entity.BestSellingProduct {
	if limit <= 0 {
		limit = defaultBestSellersLimit
	}

	s.logLineCounts(ctx)

	lines := s.fetchLineDetails(ctx)
	if len(lines) == 0 {
		slog.Default().InfoContext(ctx, "no order lines found for best sellers")
		return []entity.BestSellingProduct{}
	}

	groups := make(map[int64]*entity.BestSellingProduct)
	seen := make([]int64, 0)
	skipped := 0
	for i := range lines {
		ln := &lines[i]
		if !ln.VariantID.Valid || !ln.ProductID.Valid {
			skipped++
			continue
		}
		key := ln.VariantID.Int64
		g, ok := groups[key]
		if !ok {
			g = &entity.BestSellingProduct{
				VariantID:   key,
				ProductID:   ln.ProductID.Int64,
				ProductName: ln.ProductName.String,
				UnitPrice:   ln.UnitPriceDecimal(),
			}
			if ln.Color.Valid {
				color := ln.Color.String
				g.Color = &color
			}
			if ln.StyleName.Valid {
				style := ln.StyleName.String
				g.Style = &style
			}
			groups[key] = g
			seen = append(seen, key)
		}
		g.QuantitySold += ln.Quantity
	}
	if skipped > 0 {
		slog.Default().DebugContext(ctx, "skipped order lines with broken product links",
			slog.Int("count", skipped),
		)
	}

	out := make([]entity.BestSellingProduct, 0, len(seen))
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

// fetchLineDetails walks the fetch strategy chain: the primary join first,
// then the backup join when the primary comes back empty. A primary
// failure retries once with a date-bounded fetch over the trailing year, a
// backup failure triggers a diagnostic unfiltered fetch whose result is
// discarded.
func (s *Service) fetchLineDetails(ctx context.Context) []entity.OrderLineDetail {
	ol := s.repo.OrderLine()

	strategies := []lineFetchStrategy{
		{
			name:    "excluding cancelled",
			fetch:   ol.GetLineDetailsExcludingCancelled,
			onError: s.fetchLineDetailsDateBounded,
		},
		{
			name:  "backup join",
			fetch: ol.GetLineDetailsExcludingCancelledBackup,
			onError: func(ctx context.Context) []entity.OrderLineDetail {
				s.diagnoseEmptyLines(ctx)
				return nil
			},
		},
	}

	for _, st := range strategies {
		lines, err := st.fetch(ctx)
		if err != nil {
			slog.Default().WarnContext(ctx, "line fetch strategy failed",
				slog.String("strategy", st.name),
				slog.String("err", err.Error()),
			)
			return st.onError(ctx)
		}
		if len(lines) > 0 {
			return lines
		}
		slog.Default().InfoContext(ctx, "line fetch strategy returned no rows",
			slog.String("strategy", st.name),
		)
	}
	return nil
}

func (s *Service) fetchLineDetailsDateBounded(ctx context.Context) []entity.OrderLineDetail {
	to := s.now()
	from := to.AddDate(-1, 0, 0)

	lines, err := s.repo.OrderLine().GetLineDetailsInRange(ctx, from, to)
	if err != nil {
		slog.Default().ErrorContext(ctx, "date-bounded line fetch failed",
			slog.String("err", err.Error()),
		)
		return nil
	}
	return lines
}

// diagnoseEmptyLines fetches lines without the status filter to tell an
// empty table apart from over-restrictive filtering. The rows are only
// counted, never reported.
func (s *Service) diagnoseEmptyLines(ctx context.Context) {
	all, err := s.repo.OrderLine().GetLineDetailsAllStatuses(ctx)
	if err != nil {
		slog.Default().ErrorContext(ctx, "unfiltered line fetch failed",
			slog.String("err", err.Error()),
		)
		return
	}
	slog.Default().InfoContext(ctx, "unfiltered line fetch for diagnosis",
		slog.Int("count", len(all)),
	)
}

// logLineCounts logs line totals before the best-sellers fetch. Failures
// here never affect the report.
func (s *Service) logLineCounts(ctx context.Context) {
	ol := s.repo.OrderLine()

	total, err := ol.CountLines(ctx)
	if err != nil {
		slog.Default().WarnContext(ctx, "can't count order lines",
			slog.String("err", err.Error()),
		)
		return
	}
	nonCancelled, err := ol.CountLinesExcludingCancelled(ctx)
	if err != nil {
		slog.Default().WarnContext(ctx, "can't count non-cancelled order lines",
			slog.String("err", err.Error()),
		)
		return
	}
	slog.Default().DebugContext(ctx, "order line counts",
		slog.Int("total", total),
		slog.Int("excluding_cancelled", nonCancelled),
	)
}
