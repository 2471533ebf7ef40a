package orders

import "github.com/shopspring/decimal"

type CreateOrderRequest struct {
	BuyerID  string          `json:"buyer_id" validate:"required"`
	SellerID string          `json:"seller_id" validate:"required"`
	GigID    string          `json:"gig_id" validate:"required"`
	Amount   decimal.Decimal `json:"amount"`
}

type RevisionRequest struct {
	OrderID string `json:"order_id" validate:"required"`
	Reason  string `json:"reason" validate:"required"`
}
