package review

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

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/workers/:id/reviews", h.ListByWorker)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/reviews", middleware.CustomerOnly(), h.Create)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rv, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRating):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rating must be between 1 and 5")
		case errors.Is(err, ErrWorkerMismatch):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Worker does not match the appointment")
		case errors.Is(err, ErrAppointmentNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Appointment not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can review only your own appointments")
		case errors.Is(err, ErrNotCompleted):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can review only completed appointments")
		case errors.Is(err, ErrDuplicate):
			response.Error(c, http.StatusConflict, "CONFLICT", "This appointment already has a review")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create review")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"review": rv})
}

func (h *Handler) ListByWorker(c *gin.Context) {
	workerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || workerID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid worker ID")
		return
	}

	items, err := h.service.ListByWorker(c.Request.Context(), workerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list reviews")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reviews": items})
}
