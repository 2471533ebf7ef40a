package admin

import (
	"time"

	"github.com/google/uuid"

	"gigmarket/internal/domain"
)

// The support queue is a local fixture list: the console renders it, but no
// remote synchronization exists for these records.
func seedSupportTickets() []domain.SupportTicket {
	now := time.Now()
	return []domain.SupportTicket{
		{
			ID:        uuid.NewString(),
			Subject:   "Withdrawal stuck in pending",
			UserEmail: "seller.one@example.com",
			Status:    "open",
			CreatedAt: now.Add(-48 * time.Hour),
		},
		{
			ID:        uuid.NewString(),
			Subject:   "Buyer unresponsive after delivery",
			UserEmail: "seller.two@example.com",
			Status:    "open",
			CreatedAt: now.Add(-20 * time.Hour),
		},
		{
			ID:        uuid.NewString(),
			Subject:   "Cannot update payment method",
			UserEmail: "buyer.three@example.com",
			Status:    "resolved",
			CreatedAt: now.Add(-3 * time.Hour),
		},
	}
}
