package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gigmarket/internal/pkg/response"
	"gigmarket/internal/pkg/token"
)

// Auth decodes the remote access token from the Authorization header and
// exposes the identity to handlers. The remote service re-verifies the
// signature on every query this gateway forwards.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			abortUnauthorized(c, "Missing Authorization header")
			return
		}
		if !strings.HasPrefix(h, "Bearer ") {
			abortUnauthorized(c, "Invalid Authorization header")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			abortUnauthorized(c, "Empty token")
			return
		}

		claims, err := token.Decode(tokenStr)
		if err != nil {
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set("user_id", claims.Subject)
		c.Set("email", claims.Email)
		c.Set("access_token", tokenStr)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", msg)
	c.Abort()
}
