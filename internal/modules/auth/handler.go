package auth

import (
	"errors"
	"net/http"

	"crewhub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// CookieSettings controls how the session cookie is written.
type CookieSettings struct {
	Name     string
	Path     string
	Secure   bool
	SameSite string
	MaxAge   int
}

// Handler manages the HTTP surface for registration, login and the current
// identity.
type Handler struct {
	service *Service
	cookie  CookieSettings
}

func NewHandler(service *Service, cookie CookieSettings) *Handler {
	return &Handler{service: service, cookie: cookie}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/logout", h.Logout)
	rg.GET("/user", h.Me)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Register(c.Request.Context(), req, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		var ve *ValidationError
		switch {
		case errors.As(err, &ve):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", ve.Message)
		case errors.Is(err, ErrUsernameTaken):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Username already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register")
		}
		return
	}

	h.setSessionCookie(c, result.SessionToken)
	response.Success(c, http.StatusCreated, gin.H{
		"user":  result.User,
		"token": result.AccessToken,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to login")
		return
	}

	h.setSessionCookie(c, result.SessionToken)
	response.Success(c, http.StatusOK, gin.H{
		"user":  result.User,
		"token": result.AccessToken,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	if raw, err := c.Cookie(h.cookie.Name); err == nil && raw != "" {
		if err := h.service.Logout(c.Request.Context(), raw); err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to logout")
			return
		}
	}

	h.applySameSite(c)
	c.SetCookie(h.cookie.Name, "", -1, h.cookie.Path, "", h.cookie.Secure, true)
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *Handler) Me(c *gin.Context) {
	userID := c.GetInt64("user_id")

	user, err := h.service.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Session user no longer exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load user")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	h.applySameSite(c)
	c.SetCookie(h.cookie.Name, token, h.cookie.MaxAge, h.cookie.Path, "", h.cookie.Secure, true)
}

func (h *Handler) applySameSite(c *gin.Context) {
	switch h.cookie.SameSite {
	case "Strict":
		c.SetSameSite(http.SameSiteStrictMode)
	case "None":
		c.SetSameSite(http.SameSiteNoneMode)
	default:
		c.SetSameSite(http.SameSiteLaxMode)
	}
}
