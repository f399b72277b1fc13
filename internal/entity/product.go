package entity

import (
	"database/sql"
)

// Product represents the product table
type Product struct {
	ID             int            `db:"id"`
	Name           string         `db:"name"`
	Stock          sql.NullInt32  `db:"stock"`
	Active         sql.NullBool   `db:"active"`
	ManufacturerID sql.NullInt64  `db:"manufacturer_id"`
	StyleID        sql.NullInt64  `db:"style_id"`
	SKU            sql.NullString `db:"sku"`
}

// IsActive treats a missing active flag as inactive.
func (p *Product) IsActive() bool {
	return p.Active.Valid && p.Active.Bool
}
