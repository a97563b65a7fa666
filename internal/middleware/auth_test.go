package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crewhub/internal/domain"
	"crewhub/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const testCookieName = "crewhub_session"

type fakeSessionResolver struct {
	token string
	user  *domain.User
}

func (f *fakeSessionResolver) ResolveSession(_ context.Context, rawToken string) (*domain.User, error) {
	if f.user != nil && rawToken == f.token {
		return f.user, nil
	}
	return nil, errors.New("invalid session")
}

func protectedRouter(sessions SessionResolver, tokens TokenValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Authenticate(sessions, testCookieName, tokens))
	r.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetInt64("user_id"),
			"role":    c.GetString("role"),
		})
	})
	return r
}

func TestAuthenticate_SessionCookie(t *testing.T) {
	sessions := &fakeSessionResolver{
		token: "raw-session-token",
		user:  &domain.User{ID: 42, Role: domain.RoleCustomer},
	}
	router := protectedRouter(sessions, jwt.New("secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "raw-session-token"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
	assert.Contains(t, w.Body.String(), "customer")
}

func TestAuthenticate_BearerFallback(t *testing.T) {
	jwtService := jwt.New("secret", time.Hour)
	token, err := jwtService.GenerateToken(7, "worker")
	assert.NoError(t, err)

	router := protectedRouter(&fakeSessionResolver{}, jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "worker")
}

func TestAuthenticate_BadCookieFallsThroughToBearer(t *testing.T) {
	jwtService := jwt.New("secret", time.Hour)
	token, err := jwtService.GenerateToken(7, "worker")
	assert.NoError(t, err)

	router := protectedRouter(&fakeSessionResolver{}, jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "stale-token"})
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticate_NoCredentials(t *testing.T) {
	router := protectedRouter(&fakeSessionResolver{}, jwt.New("secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestAuthenticate_TokenSignedWithOtherSecret(t *testing.T) {
	other := jwt.New("other-secret", time.Hour)
	token, err := other.GenerateToken(7, "worker")
	assert.NoError(t, err)

	router := protectedRouter(&fakeSessionResolver{}, jwt.New("secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", int64(1))
		c.Set("role", "customer")
	})
	r.GET("/admin", AdminOnly(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/customer", CustomerOnly(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/admin", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/customer", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
