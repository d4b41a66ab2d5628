package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scottwatt/ITGportal-sub000/internal/dto"
	"github.com/scottwatt/ITGportal-sub000/internal/service"
	"github.com/scottwatt/ITGportal-sub000/pkg/response"
)

// CoachHandler exposes the coach roster and per-date availability updates.
type CoachHandler struct {
	coaches *service.CoachService
}

// NewCoachHandler constructs the handler.
func NewCoachHandler(coaches *service.CoachService) *CoachHandler {
	return &CoachHandler{coaches: coaches}
}

// ListCoaches returns the active roster.
func (h *CoachHandler) ListCoaches(c *gin.Context) {
	coaches, err := h.coaches.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, coaches)
}

// SetAvailability records a coach's status for one date.
func (h *CoachHandler) SetAvailability(c *gin.Context) {
	var req dto.SetCoachAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	status, err := h.coaches.SetDayStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, status)
}
