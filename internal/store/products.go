package store

import (
	"context"
	"fmt"

	"github.com/jekabolt/retail-stats/internal/dependency"
	"github.com/jekabolt/retail-stats/internal/entity"
)

type productStore struct {
	*MYSQLStore
}

// Products returns an object implementing products interface
func (ms *MYSQLStore) Products() dependency.Products {
	return &productStore{
		MYSQLStore: ms,
	}
}

func (ms *MYSQLStore) GetAllProducts(ctx context.Context) ([]entity.Product, error) {
	query := `
	SELECT id, name, stock, active, manufacturer_id, style_id, sku
	FROM product
	ORDER BY id`

	products, err := QueryListNamed[entity.Product](ctx, ms.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get products: %w", err)
	}
	return products, nil
}
