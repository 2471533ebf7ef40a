package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	WithdrawalPending   = "pending"
	WithdrawalApproved  = "approved"
	WithdrawalDeclined  = "declined"
	WithdrawalCompleted = "completed"
)

// Wallet is a seller's accumulated-earnings ledger, owned 1:1 by the seller.
type Wallet struct {
	ID               string          `json:"id" validate:"required"`
	SellerID         string          `json:"seller_id" validate:"required"`
	AvailableBalance decimal.Decimal `json:"available_balance"`
	PendingBalance   decimal.Decimal `json:"pending_balance"`
	TotalEarned      decimal.Decimal `json:"total_earned"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type WithdrawalRequest struct {
	ID        string          `json:"id"`
	WalletID  string          `json:"wallet_id" validate:"required"`
	SellerID  string          `json:"seller_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method,omitempty"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

type Transaction struct {
	ID          string          `json:"id"`
	WalletID    string          `json:"wallet_id"`
	OrderID     string          `json:"order_id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

type PaymentMethod struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id" validate:"required"`
	Provider  string    `json:"provider"`
	Label     string    `json:"label,omitempty"`
	Last4     string    `json:"last4,omitempty"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}
