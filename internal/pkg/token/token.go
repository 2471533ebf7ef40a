// Package token decodes access tokens issued by the remote auth service.
//
// The anon client never holds the signing secret, so claims are parsed
// without signature verification and only the expiry is enforced locally.
// The remote service re-verifies the signature on every request.
package token

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed = errors.New("malformed access token")
	ErrExpired   = errors.New("access token expired")
)

type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwtlib.RegisteredClaims
}

// Decode extracts the claims from an access token and checks expiry.
func Decode(tokenStr string) (*Claims, error) {
	parser := jwtlib.NewParser()
	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(tokenStr, claims); err != nil {
		return nil, ErrMalformed
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, ErrExpired
	}
	if claims.Subject == "" {
		return nil, ErrMalformed
	}
	return claims, nil
}

// Encode signs a token for tests and the seed tool.
func Encode(secret string, userID, email, role string, ttl time.Duration) (string, error) {
	claims := Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		},
	}
	t := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}
