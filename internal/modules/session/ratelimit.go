package session

import (
	"context"
	"encoding/json"
	"time"
)

// Signup rate limiting is keyed globally per device, not per attempted
// email. Device granularity is the anti-abuse unit here.
const (
	signupAttemptsKey = "signup_attempts"
	maxSignupAttempts = 3
	signupWindow      = 5 * time.Minute
)

type attemptState struct {
	Count            int   `json:"count"`
	FirstAttemptTime int64 `json:"first_attempt_time"`
}

// RateLimiter is a local-storage sliding window: max 3 signup attempts per
// 5 minutes. The window resets lazily, on the first check after it elapses.
type RateLimiter struct {
	kv  KV
	now func() time.Time
}

func NewRateLimiter(kv KV) *RateLimiter {
	return &RateLimiter{kv: kv, now: time.Now}
}

// Allow reports whether another signup attempt may proceed. Corrupt stored
// state self-heals: the key is cleared and the attempt allowed.
func (r *RateLimiter) Allow(ctx context.Context) bool {
	state, ok := r.load(ctx)
	if !ok {
		return true
	}

	if r.windowElapsed(state) {
		return true
	}
	return state.Count < maxSignupAttempts
}

// Record counts one attempt: increments within the live window, or starts a
// fresh window at count 1 once the old one elapsed.
func (r *RateLimiter) Record(ctx context.Context) error {
	state, ok := r.load(ctx)
	if !ok || r.windowElapsed(state) {
		state = attemptState{Count: 1, FirstAttemptTime: r.now().UnixMilli()}
	} else {
		state.Count++
	}

	buf, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, signupAttemptsKey, string(buf))
}

// Clear deletes the key outright, used after a known-good signup.
func (r *RateLimiter) Clear(ctx context.Context) error {
	return r.kv.Delete(ctx, signupAttemptsKey)
}

func (r *RateLimiter) load(ctx context.Context) (attemptState, bool) {
	raw, err := r.kv.Get(ctx, signupAttemptsKey)
	if err != nil {
		return attemptState{}, false
	}

	var state attemptState
	if err := json.Unmarshal([]byte(raw), &state); err != nil || state.Count < 0 {
		_ = r.kv.Delete(ctx, signupAttemptsKey)
		return attemptState{}, false
	}
	return state, true
}

func (r *RateLimiter) windowElapsed(state attemptState) bool {
	first := time.UnixMilli(state.FirstAttemptTime)
	return r.now().Sub(first) >= signupWindow
}
