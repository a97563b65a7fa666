package appointment

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"crewhub/internal/domain"
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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/appointments", middleware.CustomerOnly(), h.Create)
	rg.GET("/appointments", h.List)
	rg.PATCH("/appointments/:id/status", h.UpdateStatus)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Issue description and address are required")
		case errors.Is(err, ErrWorkerNotFound):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Referenced worker does not exist")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create appointment")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"appointment": a})
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("user_id")
	role := domain.UserRole(c.GetString("role"))

	items, err := h.service.List(c.Request.Context(), userID, role)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list appointments")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"appointments": items})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid appointment ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	var visitTime *time.Time
	if req.VisitTime != "" {
		t, err := time.Parse(time.RFC3339, req.VisitTime)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "visitTime must be RFC 3339")
			return
		}
		visitTime = &t
	}

	a, err := h.service.UpdateStatus(
		c.Request.Context(),
		c.GetInt64("user_id"),
		domain.UserRole(c.GetString("role")),
		id,
		domain.AppointmentStatus(req.Status),
		visitTime,
	)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown target status")
		case errors.Is(err, ErrVisitTimeRequired):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "visitTime is required to accept an appointment")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Appointment not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the assigned worker can update this appointment")
		case errors.Is(err, ErrInvalidStatusTransition):
			response.Error(c, http.StatusConflict, "INVALID_STATUS_TRANSITION", "Appointment is not in a state that allows this transition")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update appointment")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"appointment": a})
}
