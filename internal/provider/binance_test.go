package provider

import (
	"context"
	"net/http"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
)

func TestBinanceFetchPrices(t *testing.T) {
	open := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	klines := []any{
		[]any{float64(open.UnixMilli()), "64000", "68000", "63000", "67000.5", "1000"},
		[]any{float64(open.AddDate(0, 0, 1).UnixMilli()), "67000", "69000", "66000", "68250.25", "900"},
	}

	p := NewBinance(trace.NewNoopTracerProvider().Tracer("test"))
	p.client = &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, klines), nil
	})}

	samples, err := p.FetchPrices(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(samples))
	}
	if samples[0].Price != 67000.5 || samples[1].Price != 68250.25 {
		t.Fatalf("expected close prices, got %+v", samples)
	}
	if !samples[0].Date.Equal(open) {
		t.Fatalf("unexpected date: %v", samples[0].Date)
	}
}

func TestBinanceFetchPricesMalformedClose(t *testing.T) {
	klines := []any{
		[]any{float64(1000), "1", "2", "3", "not-a-number", "5"},
	}

	p := NewBinance(trace.NewNoopTracerProvider().Tracer("test"))
	p.client = &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, klines), nil
	})}

	if _, err := p.FetchPrices(context.Background(), 1); err == nil {
		t.Fatal("expected error for unparseable close price")
	}
}

func TestBinanceFetchPricesEmpty(t *testing.T) {
	p := NewBinance(trace.NewNoopTracerProvider().Tracer("test"))
	p.client = &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, []any{}), nil
	})}

	if _, err := p.FetchPrices(context.Background(), 7); err == nil {
		t.Fatal("expected error for empty kline set")
	}
}
