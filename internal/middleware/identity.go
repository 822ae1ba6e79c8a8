package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/freshcut-app/freshcut-api/internal/token"
)

const (
	ContextUserEmail = "userEmail"
	ContextUserRole  = "userRole"

	// AuthCookie is the HttpOnly cookie fallback for browser navigation.
	AuthCookie = "AUTH_TOKEN"
)

// Identity runs once per request. It resolves a token from the
// Authorization header first, then from the AUTH_TOKEN cookie, and attaches
// subject and role to the request context. Any parse failure leaves the
// request anonymous; it never aborts and never keeps a stale identity.
func Identity(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			if cookie, err := c.Cookie(AuthCookie); err == nil {
				raw = cookie
			}
		}

		if raw != "" {
			claims, err := tokens.Parse(raw)
			if err == nil {
				c.Set(ContextUserEmail, claims.Subject)
				c.Set(ContextUserRole, claims.Role)
			}
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// CurrentEmail returns the authenticated subject, or "" when anonymous.
func CurrentEmail(c *gin.Context) string {
	return c.GetString(ContextUserEmail)
}

func CurrentRole(c *gin.Context) string {
	return c.GetString(ContextUserRole)
}
