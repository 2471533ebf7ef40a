package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

// Order lifecycle. Transitions are one-way writes triggered by buyer/seller
// actions; the remote store is the authority on which writes are legal, the
// client performs no transition validation of its own.
const (
	OrderPending           OrderStatus = "pending"
	OrderInProgress        OrderStatus = "in_progress"
	OrderDelivered         OrderStatus = "delivered"
	OrderRevisionRequested OrderStatus = "revision_requested"
	OrderCompleted         OrderStatus = "completed"
	OrderCancelled         OrderStatus = "cancelled"
	OrderDisputed          OrderStatus = "disputed"
	OrderRefunded          OrderStatus = "refunded"
)

type Order struct {
	ID            string          `json:"id" validate:"required"`
	BuyerID       string          `json:"buyer_id" validate:"required"`
	SellerID      string          `json:"seller_id" validate:"required"`
	GigID         string          `json:"gig_id"`
	Amount        decimal.Decimal `json:"amount"`
	Status        OrderStatus     `json:"status"`
	DeliveryFiles []string        `json:"delivery_files,omitempty"`
	DeliveredAt   *time.Time      `json:"delivered_at,omitempty"`
	CompletedAt   *time.Time      `json:"completed_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// OrderRevision is a buyer's revision request attached to a delivered order.
type OrderRevision struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id" validate:"required"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

type Dispute struct {
	ID         string    `json:"id" validate:"required"`
	OrderID    string    `json:"order_id"`
	OpenedBy   string    `json:"opened_by"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status"`
	Resolution string    `json:"resolution,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
