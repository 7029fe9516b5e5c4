package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"btc-pulse/internal/domain"
	"btc-pulse/internal/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

type stubRunner struct {
	result domain.AnalysisResult
	err    error
	period *service.Period
	runs   int
}

func (s *stubRunner) Run(ctx context.Context) (domain.AnalysisResult, error) {
	s.runs++
	return s.result, s.err
}

func (s *stubRunner) Period() *service.Period { return s.period }

func newTestRouter(runner *stubRunner) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if runner.period == nil {
		runner.period = service.NewPeriod()
	}
	tracer := trace.NewNoopTracerProvider().Tracer("test")
	New(tracer, runner).RegisterRoutes(r)
	return r
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&stubRunner{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"healthy"`) {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestStatusReportsCurrentPeriod(t *testing.T) {
	runner := &stubRunner{period: service.NewPeriod()}
	runner.period.Set(30)
	r := newTestRouter(runner)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/status", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["analysis_period_days"] != float64(30) {
		t.Errorf("expected period 30, got %v", body["analysis_period_days"])
	}
	if _, ok := body["endpoints"]; !ok {
		t.Error("expected endpoints in status body")
	}
}

func TestAnalyzeSetsPeriodAndReturnsReport(t *testing.T) {
	runner := &stubRunner{
		result: domain.AnalysisResult{AnalysisPeriodDays: 14, MarketSentiment: domain.SentimentBullish},
	}
	r := newTestRouter(runner)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/bitcoin-analysis", strings.NewReader(`{"amount_days": 14}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if runner.runs != 1 {
		t.Fatalf("expected one pipeline run, got %d", runner.runs)
	}
	if got := runner.period.Days(); got != 14 {
		t.Errorf("expected period set to 14, got %d", got)
	}
	var result domain.AnalysisResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if result.MarketSentiment != domain.SentimentBullish {
		t.Errorf("expected bullish sentiment, got %q", result.MarketSentiment)
	}
}

func TestAnalyzeRejectsOutOfRangePeriod(t *testing.T) {
	for _, body := range []string{`{"amount_days": 0}`, `{"amount_days": 366}`, `{"amount_days": -5}`} {
		runner := &stubRunner{}
		r := newTestRouter(runner)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/bitcoin-analysis", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected status 400, got %d", body, w.Code)
		}
		if runner.runs != 0 {
			t.Errorf("body %s: pipeline must not run on invalid input", body)
		}
	}
}

func TestAnalyzeRejectsMalformedBody(t *testing.T) {
	r := newTestRouter(&stubRunner{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/bitcoin-analysis", strings.NewReader(`{"amount_days": `))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestAnalyzeReportsPipelineFailureInBody(t *testing.T) {
	runner := &stubRunner{
		err: &domain.StageError{Stage: domain.StageCollection, Err: errors.New("all price sources exhausted")},
	}
	r := newTestRouter(runner)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/bitcoin-analysis", strings.NewReader(`{"amount_days": 7}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 with error body, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["status"] != "error" {
		t.Errorf("expected status error, got %q", body["status"])
	}
	if body["error_type"] != "data_collection_error" {
		t.Errorf("expected data_collection_error, got %q", body["error_type"])
	}
	if body["message"] == "" {
		t.Error("expected a non-empty error message")
	}
}

func TestAnalyzeDefaultUsesSevenDays(t *testing.T) {
	runner := &stubRunner{period: service.NewPeriod()}
	runner.period.Set(90)
	r := newTestRouter(runner)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/analyze", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if got := runner.period.Days(); got != service.DefaultPeriodDays {
		t.Errorf("expected period reset to %d, got %d", service.DefaultPeriodDays, got)
	}
}
