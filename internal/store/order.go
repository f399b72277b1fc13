package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jekabolt/retail-stats/internal/dependency"
	"github.com/jekabolt/retail-stats/internal/entity"
)

type orderStore struct {
	*MYSQLStore
}

// Order returns an object implementing order interface
func (ms *MYSQLStore) Order() dependency.Order {
	return &orderStore{
		MYSQLStore: ms,
	}
}

const orderSelect = `
	SELECT id, uuid, status, placed, total_amount, item_count, staff_id
	FROM customer_order`

func (ms *MYSQLStore) GetOrdersInRange(ctx context.Context, from, to time.Time) ([]entity.Order, error) {
	query := orderSelect + `
	WHERE placed >= :from AND placed < :to
	ORDER BY placed`

	orders, err := QueryListNamed[entity.Order](ctx, ms.DB(), query, map[string]any{
		"from": from,
		"to":   to,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get orders in range: %w", err)
	}
	return orders, nil
}

func (ms *MYSQLStore) GetOrdersInRangeExcludingCancelled(ctx context.Context, from, to time.Time) ([]entity.Order, error) {
	query := orderSelect + `
	WHERE placed >= :from AND placed < :to AND status != :cancelled
	ORDER BY placed`

	orders, err := QueryListNamed[entity.Order](ctx, ms.DB(), query, map[string]any{
		"from":      from,
		"to":        to,
		"cancelled": entity.StatusCancelled,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get orders in range excluding cancelled: %w", err)
	}
	return orders, nil
}

func (ms *MYSQLStore) GetAllOrders(ctx context.Context) ([]entity.Order, error) {
	query := orderSelect + `
	ORDER BY placed`

	orders, err := QueryListNamed[entity.Order](ctx, ms.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get all orders: %w", err)
	}
	return orders, nil
}

func (ms *MYSQLStore) CountOrders(ctx context.Context) (int, error) {
	return QueryCountNamed(ctx, ms.DB(),
		`SELECT COUNT(*) FROM customer_order`, map[string]any{})
}

func (ms *MYSQLStore) CountOrdersExcludingCancelled(ctx context.Context) (int, error) {
	return QueryCountNamed(ctx, ms.DB(),
		`SELECT COUNT(*) FROM customer_order WHERE status != :cancelled`, map[string]any{
			"cancelled": entity.StatusCancelled,
		})
}

func (ms *MYSQLStore) CountOnlineOrders(ctx context.Context) (int, error) {
	return QueryCountNamed(ctx, ms.DB(),
		`SELECT COUNT(*) FROM customer_order WHERE staff_id IS NULL`, map[string]any{})
}

func (ms *MYSQLStore) CountInStoreOrders(ctx context.Context) (int, error) {
	return QueryCountNamed(ctx, ms.DB(),
		`SELECT COUNT(*) FROM customer_order WHERE staff_id IS NOT NULL`, map[string]any{})
}
