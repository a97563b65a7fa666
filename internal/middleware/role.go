package middleware

import (
	"net/http"

	"crewhub/internal/domain"
	"crewhub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole ensures the authenticated caller has the given role.
func RequireRole(required domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			return
		}

		if role.(string) != string(required) {
			response.AbortError(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			return
		}

		c.Next()
	}
}

func CustomerOnly() gin.HandlerFunc { return RequireRole(domain.RoleCustomer) }

func WorkerOnly() gin.HandlerFunc { return RequireRole(domain.RoleWorker) }

func AdminOnly() gin.HandlerFunc { return RequireRole(domain.RoleAdmin) }
