package worker

import (
	"errors"
	"net/http"
	"strconv"

	"crewhub/internal/middleware"
	"crewhub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

type availabilityRequest struct {
	IsAvailable *bool `json:"isAvailable" binding:"required"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Discovery endpoints are public; availability requires a worker session.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/workers", h.List)
	rg.GET("/workers/:id", h.Get)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.PATCH("/workers/availability", middleware.WorkerOnly(), h.SetAvailability)
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), c.Query("pincode"), c.Query("workerType"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list workers")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"workers": items})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid worker ID")
		return
	}

	details, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Worker not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load worker")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"worker": details})
}

func (h *Handler) SetAvailability(c *gin.Context) {
	var req availabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "isAvailable is required")
		return
	}

	user, err := h.service.SetAvailability(c.Request.Context(), c.GetInt64("user_id"), *req.IsAvailable)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Worker profile not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update availability")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"worker": user})
}
