package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scottwatt/ITGportal-sub000/internal/dto"
	"github.com/scottwatt/ITGportal-sub000/internal/service"
	"github.com/scottwatt/ITGportal-sub000/pkg/response"
)

// SchedulerHandler exposes the slot catalog, day board, and booking flow.
type SchedulerHandler struct {
	availability *service.AvailabilityService
	booking      *service.BookingService
}

// NewSchedulerHandler constructs the handler.
func NewSchedulerHandler(availability *service.AvailabilityService, booking *service.BookingService) *SchedulerHandler {
	return &SchedulerHandler{availability: availability, booking: booking}
}

// ListTimeSlots returns the static slot catalog.
func (h *SchedulerHandler) ListTimeSlots(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.booking.Catalog().Slots())
}

// DayBoard returns the computed availability board for one date.
func (h *SchedulerHandler) DayBoard(c *gin.Context) {
	board, err := h.availability.DayBoard(c.Request.Context(), c.Param("date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, board)
}

// ListAssignments returns every assignment on one date.
func (h *SchedulerHandler) ListAssignments(c *gin.Context) {
	assignments, err := h.availability.Assignments(c.Request.Context(), c.Param("date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assignments)
}

// Classify previews the special-scheduling classification for a candidate.
func (h *SchedulerHandler) Classify(c *gin.Context) {
	query := dto.ClassifyQuery{
		Date:       c.Param("date"),
		ClientID:   c.Query("clientId"),
		TimeSlotID: c.Query("slotId"),
	}
	result, err := h.booking.Classify(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Book creates an assignment for the posted candidate tuple.
func (h *SchedulerHandler) Book(c *gin.Context) {
	var req dto.BookSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.booking.BookSlot(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Unassign removes an assignment; removing a missing id still succeeds.
func (h *SchedulerHandler) Unassign(c *gin.Context) {
	if err := h.booking.RemoveAssignment(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
