package domain

import "time"

type ActorType string

const (
	ActorAnonymous ActorType = "anonymous"
	ActorGuest     ActorType = "guest"
	ActorBuyer     ActorType = "buyer"
	ActorSeller    ActorType = "seller"
)

type VerificationStatus string

const (
	VerificationNone     VerificationStatus = ""
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

// ParseVerificationStatus never returns "approved" for an unrecognized value.
// Role-dependent navigation trusts this: unknown means "needs verification".
func ParseVerificationStatus(s string) VerificationStatus {
	switch VerificationStatus(s) {
	case VerificationNone, VerificationPending, VerificationApproved, VerificationRejected:
		return VerificationStatus(s)
	default:
		return VerificationPending
	}
}

// Actor is the current user of the app: anonymous, guest, or authenticated
// with a buyer/seller role derived from the profile row.
type Actor struct {
	Type         ActorType          `json:"type"`
	ID           string             `json:"id,omitempty"`
	Email        string             `json:"email,omitempty"`
	FullName     string             `json:"full_name,omitempty"`
	Verification VerificationStatus `json:"verification_status,omitempty"`
}

func (a Actor) IsAuthenticated() bool {
	return a.Type == ActorBuyer || a.Type == ActorSeller
}

func (a Actor) IsGuest() bool  { return a.Type == ActorGuest }
func (a Actor) IsBuyer() bool  { return a.Type == ActorBuyer }
func (a Actor) IsSeller() bool { return a.Type == ActorSeller }

type UserRole string

const (
	RoleBuyer  UserRole = "buyer"
	RoleSeller UserRole = "seller"
)

// Profile mirrors a row of the remote "profiles" table.
type Profile struct {
	ID                 string    `json:"id" validate:"required"`
	Email              string    `json:"email" validate:"required,email"`
	FullName           string    `json:"full_name"`
	Phone              string    `json:"phone,omitempty"`
	AvatarURL          string    `json:"avatar_url,omitempty"`
	UserType           string    `json:"user_type" validate:"required"`
	VerificationStatus string    `json:"verification_status,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ActorFromProfile derives the session actor from a profile row.
func ActorFromProfile(p *Profile) Actor {
	t := ActorBuyer
	if UserRole(p.UserType) == RoleSeller {
		t = ActorSeller
	}
	return Actor{
		Type:         t,
		ID:           p.ID,
		Email:        p.Email,
		FullName:     p.FullName,
		Verification: ParseVerificationStatus(p.VerificationStatus),
	}
}
