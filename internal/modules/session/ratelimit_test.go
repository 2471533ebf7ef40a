package session

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memKV struct {
	values map[string]string
}

func newMemKV() *memKV { return &memKV{values: map[string]string{}} }

func (m *memKV) Get(_ context.Context, key string) (string, error) {
	v, ok := m.values[key]
	if !ok {
		return "", assert.AnError
	}
	return v, nil
}

func (m *memKV) Set(_ context.Context, key, value string) error {
	m.values[key] = value
	return nil
}

func (m *memKV) Delete(_ context.Context, key string) error {
	delete(m.values, key)
	return nil
}

func TestRateLimiter_FreshDeviceAllowed(t *testing.T) {
	limiter := NewRateLimiter(newMemKV())
	assert.True(t, limiter.Allow(context.Background()))
}

func TestRateLimiter_FourthAttemptDenied(t *testing.T) {
	ctx := context.Background()
	limiter := NewRateLimiter(newMemKV())

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow(ctx))
		require.NoError(t, limiter.Record(ctx))
	}

	assert.False(t, limiter.Allow(ctx))
}

func TestRateLimiter_WindowElapseResetsToOne(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	limiter := NewRateLimiter(kv)

	now := time.Now()
	limiter.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		require.NoError(t, limiter.Record(ctx))
	}
	assert.False(t, limiter.Allow(ctx))

	// Jump past the 5 minute window: next check allows, next record starts a
	// fresh window at count 1.
	limiter.now = func() time.Time { return now.Add(signupWindow + time.Second) }
	assert.True(t, limiter.Allow(ctx))
	require.NoError(t, limiter.Record(ctx))

	var state attemptState
	require.NoError(t, json.Unmarshal([]byte(kv.values[signupAttemptsKey]), &state))
	assert.Equal(t, 1, state.Count)
}

func TestRateLimiter_CorruptStateSelfHeals(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	kv.values[signupAttemptsKey] = "{not json"

	limiter := NewRateLimiter(kv)
	assert.True(t, limiter.Allow(ctx))

	_, exists := kv.values[signupAttemptsKey]
	assert.False(t, exists, "corrupt key should be cleared")
}

func TestRateLimiter_ClearDeletesKey(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	limiter := NewRateLimiter(kv)

	require.NoError(t, limiter.Record(ctx))
	require.NoError(t, limiter.Clear(ctx))

	_, exists := kv.values[signupAttemptsKey]
	assert.False(t, exists)
}
