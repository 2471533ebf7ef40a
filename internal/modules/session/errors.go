package session

import "gigmarket/internal/remote"

// isRateLimit matches rate-limit class remote errors so they collapse into
// the same friendly message the local limiter uses.
func isRateLimit(err error) bool {
	return remote.IsRateLimit(err)
}
