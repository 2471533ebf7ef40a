package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Gig is a sellable service listing owned by a seller.
type Gig struct {
	ID          string          `json:"id" validate:"required"`
	SellerID    string          `json:"seller_id" validate:"required"`
	CategoryID  string          `json:"category_id"`
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type Category struct {
	ID        string    `json:"id" validate:"required"`
	Name      string    `json:"name" validate:"required"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}
