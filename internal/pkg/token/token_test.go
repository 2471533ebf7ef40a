package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRoundTrip(t *testing.T) {
	raw, err := Encode("test-secret", "user-1", "u@example.com", "seller", time.Hour)
	require.NoError(t, err)

	claims, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "u@example.com", claims.Email)
	assert.Equal(t, "seller", claims.Role)
}

func TestDecodeExpired(t *testing.T) {
	raw, err := Encode("test-secret", "user-1", "u@example.com", "buyer", -time.Minute)
	require.NoError(t, err)

	_, err = Decode(raw)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestDecodeGarbage(t *testing.T) {
	for _, raw := range []string{"", "nope", "a.b", "a.b.c"} {
		_, err := Decode(raw)
		assert.ErrorIs(t, err, ErrMalformed, raw)
	}
}

func TestDecodeMissingSubject(t *testing.T) {
	raw, err := Encode("test-secret", "", "u@example.com", "buyer", time.Hour)
	require.NoError(t, err)

	_, err = Decode(raw)
	assert.ErrorIs(t, err, ErrMalformed)
}
