// Package handler exposes the analysis pipeline over HTTP.
package handler

import (
	"context"

	"btc-pulse/internal/domain"
	"btc-pulse/internal/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

// AnalysisRunner is what the HTTP layer needs from the service layer.
type AnalysisRunner interface {
	Run(ctx context.Context) (domain.AnalysisResult, error)
	Period() *service.Period
}

type Handler struct {
	tracer   trace.Tracer
	analysis AnalysisRunner
}

func New(tracer trace.Tracer, analysis AnalysisRunner) *Handler {
	return &Handler{
		tracer:   tracer,
		analysis: analysis,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
	r.GET("/status", h.Status)
	r.GET("/analyze", h.AnalyzeDefault)
	r.POST("/api/bitcoin-analysis", h.Analyze)
}
