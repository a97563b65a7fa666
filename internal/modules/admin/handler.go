package admin

import (
	"net/http"

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
	rg.GET("/stats", h.Stats)
	rg.GET("/reports", h.Reports)
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load stats")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

func (h *Handler) Reports(c *gin.Context) {
	items, err := h.service.Reports(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load reports")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reports": items})
}
