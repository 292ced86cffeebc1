package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog product row.
// Price is stored as decimal(15,2); DTOs expose it as a plain number.
type Product struct {
	ID         int             `db:"id" json:"id"`
	Name       string          `db:"name" json:"name"`
	Code       string          `db:"code" json:"code"`
	CategoryID int             `db:"category_id" json:"categoryId"`
	Stock      int             `db:"stock" json:"stock"`
	Price      decimal.Decimal `db:"price" json:"price"`
	CreatedAt  time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time       `db:"updated_at" json:"updatedAt"`
}
