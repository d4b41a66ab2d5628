package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scottwatt/ITGportal-sub000/internal/dto"
	"github.com/scottwatt/ITGportal-sub000/internal/service"
	"github.com/scottwatt/ITGportal-sub000/pkg/response"
)

// ReplicatorHandler exposes the copy/paste day replication flow.
type ReplicatorHandler struct {
	replicator *service.ReplicatorService
}

// NewReplicatorHandler constructs the handler.
func NewReplicatorHandler(replicator *service.ReplicatorService) *ReplicatorHandler {
	return &ReplicatorHandler{replicator: replicator}
}

// CopyDay snapshots the date's assignments for a later paste.
func (h *ReplicatorHandler) CopyDay(c *gin.Context) {
	copied, err := h.replicator.CopyDay(c.Request.Context(), c.Param("date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, copied)
}

// PastePreview validates a copied day against the requested target dates.
func (h *ReplicatorHandler) PastePreview(c *gin.Context) {
	var req dto.PastePreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	previews, err := h.replicator.BuildPastePreview(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, previews)
}

// ApplyPaste creates the previewed assignments and reports successes and
// skips; partial failure is expected and surfaced, not rolled back.
func (h *ReplicatorHandler) ApplyPaste(c *gin.Context) {
	var req dto.ApplyPasteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	outcome, err := h.replicator.ApplyPaste(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, outcome)
}
