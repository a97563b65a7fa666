package middleware

import (
	"context"
	"net/http"
	"strings"

	"crewhub/internal/domain"
	"crewhub/internal/pkg/jwt"
	"crewhub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type SessionResolver interface {
	ResolveSession(ctx context.Context, rawToken string) (*domain.User, error)
}

type TokenValidator interface {
	ValidateToken(tokenStr string) (*jwt.Claims, error)
}

// Authenticate resolves the caller's identity from the session cookie or,
// failing that, a Bearer access token, and stores user_id and role in the
// request context. Requests with neither are rejected with 401.
func Authenticate(sessions SessionResolver, cookieName string, tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, err := c.Cookie(cookieName); err == nil && raw != "" {
			user, err := sessions.ResolveSession(c.Request.Context(), raw)
			if err == nil {
				c.Set("user_id", user.ID)
				c.Set("role", string(user.Role))
				c.Next()
				return
			}
		}

		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			tokenStr := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			if tokenStr != "" {
				claims, err := tokens.ValidateToken(tokenStr)
				if err == nil {
					c.Set("user_id", claims.UserID)
					c.Set("role", claims.Role)
					c.Next()
					return
				}
			}
		}

		response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	}
}
