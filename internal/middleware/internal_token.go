package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dnfapi/internal/pkg/response"
)

const (
	codeAuthMissing = "AUTH_MISSING"
	codeAuthInvalid = "AUTH_INVALID"
)

// InternalTokenAuth protects operator endpoints such as /metrics with a
// static bearer token and an optional client IP allowlist. An empty token
// leaves the endpoint open.
func InternalTokenAuth(token string, allowedIPs []string, log *slog.Logger) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedIPs))
	for _, ip := range allowedIPs {
		allowed[ip] = true
	}

	return func(c *gin.Context) {
		if len(allowed) > 0 && !allowed[c.ClientIP()] {
			logAuthFailure(log, c, http.StatusForbidden, "ip_not_allowed")
			response.Error(c, http.StatusForbidden, codeAuthInvalid, "IP not allowed")
			c.Abort()
			return
		}
		if token == "" {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logAuthFailure(log, c, http.StatusUnauthorized, "missing_auth")
			response.Error(c, http.StatusUnauthorized, codeAuthMissing, "Authorization header is required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logAuthFailure(log, c, http.StatusUnauthorized, "invalid_auth_format")
			response.Error(c, http.StatusUnauthorized, codeAuthInvalid, "Authorization header must be 'Bearer <token>'")
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(parts[1]), []byte(token)) != 1 {
			logAuthFailure(log, c, http.StatusForbidden, "invalid_token")
			response.Error(c, http.StatusForbidden, codeAuthInvalid, "Invalid internal token")
			c.Abort()
			return
		}

		c.Next()
	}
}

func logAuthFailure(log *slog.Logger, c *gin.Context, status int, reason string) {
	log.Warn("internal_auth", "status", status, "request_id", requestID(c), "reason", reason)
}
