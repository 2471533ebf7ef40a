package domain

import "time"

// Conversation groups messages between a buyer and a seller, usually around
// an order.
type Conversation struct {
	ID            string    `json:"id" validate:"required"`
	BuyerID       string    `json:"buyer_id"`
	SellerID      string    `json:"seller_id"`
	OrderID       string    `json:"order_id,omitempty"`
	LastMessageAt time.Time `json:"last_message_at"`
	CreatedAt     time.Time `json:"created_at"`
}

type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id" validate:"required"`
	SenderID       string    `json:"sender_id" validate:"required"`
	Body           string    `json:"body"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// SellerVerification mirrors a row of "seller_verifications".
type SellerVerification struct {
	ID           string    `json:"id"`
	SellerID     string    `json:"seller_id" validate:"required"`
	DocumentType string    `json:"document_type"`
	DocumentURL  string    `json:"document_url"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserPreference mirrors a row of "user_preferences".
type UserPreference struct {
	UserID             string    `json:"user_id" validate:"required"`
	EmailNotifications bool      `json:"email_notifications"`
	PushNotifications  bool      `json:"push_notifications"`
	MarketingEmails    bool      `json:"marketing_emails"`
	UpdatedAt          time.Time `json:"updated_at"`
}
