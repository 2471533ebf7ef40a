package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVerificationStatusKnownValues(t *testing.T) {
	assert.Equal(t, VerificationNone, ParseVerificationStatus(""))
	assert.Equal(t, VerificationPending, ParseVerificationStatus("pending"))
	assert.Equal(t, VerificationApproved, ParseVerificationStatus("approved"))
	assert.Equal(t, VerificationRejected, ParseVerificationStatus("rejected"))
}

func TestParseVerificationStatusUnknownNeverApproved(t *testing.T) {
	for _, raw := range []string{"APPROVED", "Approved", "in_review", "verified", "done", "1"} {
		got := ParseVerificationStatus(raw)
		assert.Equal(t, VerificationPending, got, raw)
		assert.NotEqual(t, VerificationApproved, got, raw)
	}
}

func TestActorFromProfileDerivesType(t *testing.T) {
	buyer := ActorFromProfile(&Profile{ID: "u1", Email: "b@example.com", UserType: "buyer"})
	assert.Equal(t, ActorBuyer, buyer.Type)
	assert.True(t, buyer.IsAuthenticated())
	assert.False(t, buyer.IsSeller())

	seller := ActorFromProfile(&Profile{ID: "u2", Email: "s@example.com", UserType: "seller", VerificationStatus: "approved"})
	assert.Equal(t, ActorSeller, seller.Type)
	assert.Equal(t, VerificationApproved, seller.Verification)

	unknown := ActorFromProfile(&Profile{ID: "u3", Email: "x@example.com", UserType: "superuser"})
	assert.Equal(t, ActorBuyer, unknown.Type, "unrecognized profile roles read as buyer")
}

func TestAdminRolePayoutGate(t *testing.T) {
	assert.True(t, AdminUser{Role: AdminSuper}.CanActOnPayouts())
	assert.True(t, AdminUser{Role: AdminFinance}.CanActOnPayouts())
	assert.False(t, AdminUser{Role: AdminSupport}.CanActOnPayouts())
	assert.False(t, AdminUser{Role: AdminModer}.CanActOnPayouts())
}
