package mw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Ivin-Mathew/DBMS-HostelManagement/internal/auth"
)

// Context keys set by the auth middleware.
const (
	CtxAccountID = "account_id"
	CtxRole      = "account_role"
)

// RequireAuth verifies the bearer token and stores the caller's identity on
// the request context. With a non-empty role, callers holding a different
// role are rejected.
func RequireAuth(m *auth.Manager, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		id, err := m.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}
		if role != "" && id.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}

		c.Set(CtxAccountID, id.ID)
		c.Set(CtxRole, id.Role)
		c.Next()
	}
}

// AccountID returns the authenticated account id set by RequireAuth.
func AccountID(c *gin.Context) string {
	return c.GetString(CtxAccountID)
}
