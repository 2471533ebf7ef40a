package gigs

import "github.com/shopspring/decimal"

// ListFilter narrows the gig list query. Zero-valued fields add no filter.
type ListFilter struct {
	CategoryID string
	SellerID   string
	ActiveOnly bool
}

type CreateGigRequest struct {
	SellerID    string          `json:"seller_id" validate:"required"`
	CategoryID  string          `json:"category_id"`
	Title       string          `json:"title" validate:"required,min=3"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

type UpdateGigRequest struct {
	Title       *string          `json:"title,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	CategoryID  *string          `json:"category_id,omitempty"`
	IsActive    *bool            `json:"is_active,omitempty"`
}
