package session

import (
	"context"

	"gigmarket/internal/domain"
	"gigmarket/internal/remote"
)

// AuthAPI is the slice of credential operations the session store uses.
type AuthAPI interface {
	SignUp(ctx context.Context, email, password string, metadata map[string]any) (*remote.Session, error)
	SignInWithPassword(ctx context.Context, email, password string) (*remote.Session, error)
	SignOut(ctx context.Context, accessToken string) error
	User(ctx context.Context, accessToken string) (*remote.AuthUser, error)
}

// ProfileStore covers the profile reads/writes backing actor derivation.
type ProfileStore interface {
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	Upsert(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	UpdateRole(ctx context.Context, id string, role domain.UserRole) (*domain.Profile, error)
}

// TokenSink receives the active access token so table queries run under the
// session's credentials. The remote client implements it.
type TokenSink interface {
	SetAccessToken(tok string)
}

// KV is the slice of the local store the rate limiter persists through.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
