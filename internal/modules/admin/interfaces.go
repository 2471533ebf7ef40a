package admin

import (
	"context"

	"gigmarket/internal/localstore"
)

// AccountStore reads the seeded back-office credentials in the local store.
type AccountStore interface {
	AdminByEmail(ctx context.Context, email string) (*localstore.AdminAccount, error)
}
