package stockalert

import (
	"context"
	"fmt"
	"time"

	"log/slog"
)

func (w *Worker) worker(ctx context.Context) {
	ticker := time.NewTicker(w.c.WorkerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.checkStock(ctx); err != nil {
				slog.Default().ErrorContext(ctx, "can't send low stock alert",
					slog.String("err", err.Error()),
				)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (w *Worker) checkStock(ctx context.Context) error {
	products := w.svc.LowStockProducts(ctx, w.c.Threshold, w.c.Limit)
	if len(products) == 0 {
		return nil
	}

	if err := w.mailer.SendLowStockAlert(ctx, products); err != nil {
		return fmt.Errorf("can't mail low stock products: %w", err)
	}
	slog.Default().InfoContext(ctx, "sent low stock alert",
		slog.Int("products", len(products)),
	)
	return nil
}
