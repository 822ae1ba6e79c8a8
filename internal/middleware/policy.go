package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/freshcut-app/freshcut-api/internal/httperr"
)

// Access levels a route prefix can demand. Role rules are matched
// case-sensitively against the token's role claim.
const (
	Public        = "PUBLIC"
	Authenticated = "AUTHENTICATED"
)

type Rule struct {
	// Method restricts the rule to one HTTP method; empty matches all.
	Method string
	// PathPrefix is compared against the raw request path.
	PathPrefix string
	// Access is Public, Authenticated, or a concrete role name.
	Access string
}

// DefaultPolicy mirrors the route table: auth, AI, avatar reads and public
// catalog reads are open; barber and admin prefixes are role-gated;
// everything else needs some authenticated identity.
func DefaultPolicy() []Rule {
	return []Rule{
		{Method: http.MethodOptions, PathPrefix: "/", Access: Public},
		{PathPrefix: "/api/auth/", Access: Public},
		{PathPrefix: "/api/ai/", Access: Public},
		{Method: http.MethodGet, PathPrefix: "/api/profile/avatar/", Access: Public},
		{Method: http.MethodGet, PathPrefix: "/api/barbers", Access: Public},
		{Method: http.MethodGet, PathPrefix: "/api/services", Access: Public},
		{PathPrefix: "/api/barber/", Access: "BARBER"},
		{PathPrefix: "/api/admin/", Access: "ADMIN"},
	}
}

// Authorize evaluates the policy table: first matching rule wins, default
// is "authenticated with some role". Anonymous access to an authenticated
// path yields 401; a role-gated path yields 403 for anonymous and
// wrong-role requests alike.
func Authorize(rules []Rule) gin.HandlerFunc {
	return func(c *gin.Context) {
		access := Authenticated
		for _, r := range rules {
			if r.Method != "" && r.Method != c.Request.Method {
				continue
			}
			if !strings.HasPrefix(c.Request.URL.Path, r.PathPrefix) {
				continue
			}
			access = r.Access
			break
		}

		switch access {
		case Public:
		case Authenticated:
			if CurrentRole(c) == "" {
				httperr.Unauthorized(c, "unauthenticated", "authentication required")
				c.Abort()
				return
			}
		default:
			if CurrentRole(c) != access {
				httperr.Forbidden(c, "forbidden", "insufficient role")
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
