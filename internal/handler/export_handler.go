package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scottwatt/ITGportal-sub000/internal/dto"
	"github.com/scottwatt/ITGportal-sub000/internal/service"
	appErrors "github.com/scottwatt/ITGportal-sub000/pkg/errors"
	"github.com/scottwatt/ITGportal-sub000/pkg/response"
)

// ExportHandler serves downloadable day-plan exports, both synchronous and
// via background jobs.
type ExportHandler struct {
	exports *service.ExportService
	jobs    *service.ExportJobService
}

// NewExportHandler constructs the handler.
func NewExportHandler(exports *service.ExportService, jobs *service.ExportJobService) *ExportHandler {
	return &ExportHandler{exports: exports, jobs: jobs}
}

// ExportDay streams the rendered day plan as csv or pdf.
func (h *ExportHandler) ExportDay(c *gin.Context) {
	result, err := h.exports.ExportDay(c.Request.Context(), c.Param("date"), c.DefaultQuery("format", service.ExportFormatCSV))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	c.Data(http.StatusOK, result.ContentType, result.Payload)
}

// CreateExportJob queues a background export and returns the pending job.
func (h *ExportHandler) CreateExportJob(c *gin.Context) {
	var req dto.CreateExportJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	job, err := h.jobs.Enqueue(req.Date, req.Format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusAccepted, job)
}

// ExportJobStatus reports a job's progress and, once completed, its
// signed download token.
func (h *ExportHandler) ExportJobStatus(c *gin.Context) {
	job, err := h.jobs.Status(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, job)
}

// DownloadExport streams an archived export identified by a signed token.
func (h *ExportHandler) DownloadExport(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "token query parameter is required"))
		return
	}
	result, err := h.jobs.Download(token)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	c.Data(http.StatusOK, result.ContentType, result.Payload)
}
