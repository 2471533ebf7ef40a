package remote

import (
	"errors"
	"net/http"
	"strings"
)

// ErrNotFound reports a single-row fetch that came back with no row and no
// remote error. Callers rely on the error channel to render not-found
// states, so the condition is promoted here instead of returning nil data.
var ErrNotFound = errors.New("record not found")

// Error carries the remote service's failure payload. Message is shown to
// users as-is; details and hint are concatenated for diagnostics.
type Error struct {
	Status  int
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Details != "" {
		b.WriteString(": ")
		b.WriteString(e.Details)
	}
	if e.Hint != "" {
		b.WriteString(" (")
		b.WriteString(e.Hint)
		b.WriteString(")")
	}
	return b.String()
}

// IsRateLimit classifies rate-limit style rejections from the remote
// service, either by status or by message text.
func IsRateLimit(err error) bool {
	var re *Error
	if !errors.As(err, &re) {
		return false
	}
	if re.Status == http.StatusTooManyRequests {
		return true
	}
	msg := strings.ToLower(re.Message)
	return strings.Contains(msg, "rate limit") || strings.Contains(msg, "too many requests")
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
