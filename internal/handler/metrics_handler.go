package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scottwatt/ITGportal-sub000/internal/service"
	"github.com/scottwatt/ITGportal-sub000/pkg/response"
)

// MetricsHandler exposes Prometheus scrape output and a JSON summary.
type MetricsHandler struct {
	metrics *service.MetricsService
}

// NewMetricsHandler constructs the handler.
func NewMetricsHandler(metrics *service.MetricsService) *MetricsHandler {
	return &MetricsHandler{metrics: metrics}
}

// Prometheus serves the scrape endpoint.
func (h *MetricsHandler) Prometheus(c *gin.Context) {
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// Summary returns aggregated scheduling counters.
func (h *MetricsHandler) Summary(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.metrics.Snapshot())
}
