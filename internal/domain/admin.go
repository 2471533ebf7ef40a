package domain

import "time"

type AdminRole string

const (
	AdminSuper   AdminRole = "super_admin"
	AdminFinance AdminRole = "finance_admin"
	AdminSupport AdminRole = "support_agent"
	AdminModer   AdminRole = "moderator"
)

// AdminUser is the back-office actor. It is a separate actor type, never
// derived from the main session Actor.
type AdminUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      AdminRole `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// CanActOnPayouts gates destructive payout actions client-side. Advisory
// only: the same check must exist server-side.
func (a AdminUser) CanActOnPayouts() bool {
	return a.Role == AdminSuper || a.Role == AdminFinance
}

type ActivityLog struct {
	ID        string    `json:"id"`
	AdminID   string    `json:"admin_id"`
	Action    string    `json:"action"`
	TargetID  string    `json:"target_id,omitempty"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type SupportTicket struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	UserEmail string    `json:"user_email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
