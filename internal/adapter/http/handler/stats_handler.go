package handler

import (
	"storefront-events/internal/core/ports"
	"storefront-events/pkg/response"

	"github.com/gin-gonic/gin"
)

// StatsHandler handles the operator stats endpoint.
type StatsHandler struct {
	statsSvc ports.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsSvc ports.StatsService) *StatsHandler {
	return &StatsHandler{statsSvc: statsSvc}
}

// GetStats handles GET /stats.
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.statsSvc.GetPipelineStats(c.Request.Context())
	if err != nil {
		response.Reject(c, err)
		return
	}
	response.OK(c, stats)
}
