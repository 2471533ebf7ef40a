package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"gigmarket/internal/pkg/response"
)

// RequestLogger logs each request and recovers panics into a JSON 500.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		defer func() {
			if recovered := recover(); recovered != nil {
				log.Error().
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Str("panic", fmt.Sprintf("%v", recovered)).
					Bytes("stack", debug.Stack()).
					Msg("request panicked")
				response.Error(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal Server Error")
				c.Abort()
				return
			}

			event := log.Info()
			if c.Writer.Status() >= http.StatusInternalServerError {
				event = log.Error()
			}
			event.
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Str("query", c.Request.URL.RawQuery).
				Int("status", c.Writer.Status()).
				Str("client_ip", c.ClientIP()).
				Str("user_id", c.GetString("user_id")).
				Dur("latency", time.Since(start)).
				Msg("request")
		}()

		c.Next()
	}
}
