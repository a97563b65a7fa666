package report

import (
	"errors"
	"net/http"
	"strconv"

	"crewhub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/reports", h.Create)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.PATCH("/reports/:id/resolve", h.Resolve)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rp, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req.WorkerID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, ErrReasonRequired):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Reason is required")
		case errors.Is(err, ErrWorkerNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Worker not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create report")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"report": rp})
}

func (h *Handler) Resolve(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid report ID")
		return
	}

	rp, err := h.service.Resolve(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Report not found")
		case errors.Is(err, ErrAlreadyResolved):
			response.Error(c, http.StatusConflict, "INVALID_STATUS_TRANSITION", "Report is already resolved")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to resolve report")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"report": rp})
}
