package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jekabolt/retail-stats/internal/dependency"
	"github.com/jekabolt/retail-stats/internal/entity"
)

type orderLineStore struct {
	*MYSQLStore
}

// OrderLine returns an object implementing order line interface
func (ms *MYSQLStore) OrderLine() dependency.OrderLine {
	return &orderLineStore{
		MYSQLStore: ms,
	}
}

// lineDetailSelect drives from the line side and tolerates broken links,
// aggregators skip rows with missing variant or product columns.
const lineDetailSelect = `
	SELECT
		ol.id,
		ol.order_id,
		ol.quantity,
		ol.unit_price,
		pv.id AS variant_id,
		c.name AS color,
		p.id AS product_id,
		p.name AS product_name,
		st.name AS style_name,
		mf.id AS manufacturer_id,
		mf.name AS manufacturer_name
	FROM order_line ol
	INNER JOIN customer_order co ON ol.order_id = co.id
	LEFT JOIN product_variant pv ON ol.variant_id = pv.id
	LEFT JOIN color c ON pv.color_id = c.id
	LEFT JOIN product p ON pv.product_id = p.id
	LEFT JOIN style st ON p.style_id = st.id
	LEFT JOIN manufacturer mf ON p.manufacturer_id = mf.id`

func (ms *MYSQLStore) GetLineDetailsExcludingCancelled(ctx context.Context) ([]entity.OrderLineDetail, error) {
	query := lineDetailSelect + `
	WHERE co.status != :cancelled
	ORDER BY ol.id`

	lines, err := QueryListNamed[entity.OrderLineDetail](ctx, ms.DB(), query, map[string]any{
		"cancelled": entity.StatusCancelled,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get line details: %w", err)
	}
	return lines, nil
}

// GetLineDetailsExcludingCancelledBackup walks the joins from the order side
// and demands complete variant and product links. It recovers rows the
// primary fetch loses when an order points at orphaned lines.
func (ms *MYSQLStore) GetLineDetailsExcludingCancelledBackup(ctx context.Context) ([]entity.OrderLineDetail, error) {
	query := `
	SELECT
		ol.id,
		ol.order_id,
		ol.quantity,
		ol.unit_price,
		pv.id AS variant_id,
		c.name AS color,
		p.id AS product_id,
		p.name AS product_name,
		st.name AS style_name,
		mf.id AS manufacturer_id,
		mf.name AS manufacturer_name
	FROM customer_order co
	INNER JOIN order_line ol ON ol.order_id = co.id
	INNER JOIN product_variant pv ON ol.variant_id = pv.id
	INNER JOIN product p ON pv.product_id = p.id
	LEFT JOIN color c ON pv.color_id = c.id
	LEFT JOIN style st ON p.style_id = st.id
	LEFT JOIN manufacturer mf ON p.manufacturer_id = mf.id
	WHERE co.status != :cancelled
	ORDER BY ol.id`

	lines, err := QueryListNamed[entity.OrderLineDetail](ctx, ms.DB(), query, map[string]any{
		"cancelled": entity.StatusCancelled,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get line details via backup join: %w", err)
	}
	return lines, nil
}

func (ms *MYSQLStore) GetLineDetailsAllStatuses(ctx context.Context) ([]entity.OrderLineDetail, error) {
	query := lineDetailSelect + `
	ORDER BY ol.id`

	lines, err := QueryListNamed[entity.OrderLineDetail](ctx, ms.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get line details for all statuses: %w", err)
	}
	return lines, nil
}

func (ms *MYSQLStore) GetLineDetailsInRange(ctx context.Context, from, to time.Time) ([]entity.OrderLineDetail, error) {
	query := lineDetailSelect + `
	WHERE co.status != :cancelled AND co.placed >= :from AND co.placed < :to
	ORDER BY ol.id`

	lines, err := QueryListNamed[entity.OrderLineDetail](ctx, ms.DB(), query, map[string]any{
		"cancelled": entity.StatusCancelled,
		"from":      from,
		"to":        to,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get line details in range: %w", err)
	}
	return lines, nil
}

func (ms *MYSQLStore) CountLines(ctx context.Context) (int, error) {
	return QueryCountNamed(ctx, ms.DB(),
		`SELECT COUNT(*) FROM order_line`, map[string]any{})
}

func (ms *MYSQLStore) CountLinesExcludingCancelled(ctx context.Context) (int, error) {
	return QueryCountNamed(ctx, ms.DB(),
		`SELECT COUNT(*)
		FROM order_line ol
		INNER JOIN customer_order co ON ol.order_id = co.id
		WHERE co.status != :cancelled`, map[string]any{
			"cancelled": entity.StatusCancelled,
		})
}
