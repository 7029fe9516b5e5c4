package handler

import (
	"context"
	"log"
	"net/http"

	"btc-pulse/internal/domain"
	"btc-pulse/internal/service"

	"github.com/gin-gonic/gin"
)

type analysisRequest struct {
	AmountDays int `json:"amount_days"`
}

// Analyze godoc
// @Summary      Run a Bitcoin analysis
// @Description  Runs the full collect/process/decide pipeline over the requested number of days
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        request  body      analysisRequest  true  "Analysis period in days (1-365)"
// @Success      200      {object}  domain.AnalysisResult
// @Failure      400      {object}  map[string]string
// @Router       /api/bitcoin-analysis [post]
func (h *Handler) Analyze(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.bitcoin-analysis")
	defer span.End()

	var req analysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.AmountDays < 1 || req.AmountDays > 365 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount_days must be between 1 and 365"})
		return
	}

	h.analysis.Period().Set(req.AmountDays)
	h.runAnalysis(ctx, c)
}

// AnalyzeDefault godoc
// @Summary      Run a Bitcoin analysis with the default period
// @Description  Runs the full pipeline over the default seven day period
// @Tags         analysis
// @Produce      json
// @Success      200  {object}  domain.AnalysisResult
// @Router       /analyze [get]
func (h *Handler) AnalyzeDefault(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.analyze-default")
	defer span.End()

	h.analysis.Period().Set(service.DefaultPeriodDays)
	h.runAnalysis(ctx, c)
}

// Pipeline failures are reported in the response body rather than via
// HTTP status: clients get 200 with status "error" and a stage-derived
// error_type they can branch on.
func (h *Handler) runAnalysis(ctx context.Context, c *gin.Context) {
	result, err := h.analysis.Run(ctx)
	if err != nil {
		log.Printf("analysis failed: %v", err)
		c.JSON(http.StatusOK, gin.H{
			"status":     "error",
			"message":    err.Error(),
			"error_type": domain.ErrorType(err),
		})
		return
	}
	c.JSON(http.StatusOK, result)
}
