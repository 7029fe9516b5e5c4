package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Status godoc
// @Summary      Service status
// @Description  Returns the service status, the current analysis period and the available endpoints
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /status [get]
func (h *Handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":              "btc-pulse",
		"status":               "running",
		"analysis_period_days": h.analysis.Period().Days(),
		"endpoints": gin.H{
			"health":   "GET /health",
			"status":   "GET /status",
			"analyze":  "GET /analyze",
			"analysis": "POST /api/bitcoin-analysis",
		},
	})
}
