package provider

import (
	"context"
	"net/http"
	"testing"

	"go.opentelemetry.io/otel/trace"
)

func newsAPIPayload(articles ...map[string]any) map[string]any {
	return map[string]any{"status": "ok", "articles": articles}
}

func TestNewsAPIFetchNewsFiltersKeywords(t *testing.T) {
	payload := newsAPIPayload(
		map[string]any{
			"title":       "Bitcoin surges past resistance",
			"content":     "Institutional demand grows.",
			"url":         "https://news.example/1",
			"publishedAt": "2026-08-30T10:00:00Z",
		},
		map[string]any{
			"title":   "Weather report",
			"content": "Sunny with a chance of rain.",
		},
		map[string]any{
			"title":   "Altcoin roundup",
			"content": "BTC dominance is rising again.",
		},
	)

	p, err := NewNewsAPI(trace.NewNoopTracerProvider().Tracer("test"),
		"https://newsapi.test/v2/everything", "key", []string{"bitcoin", "btc"}, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.client = &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		q := req.URL.Query()
		if q.Get("q") != "bitcoin OR btc" {
			t.Fatalf("unexpected query: %q", q.Get("q"))
		}
		if q.Get("apiKey") != "key" {
			t.Fatal("missing api key")
		}
		return jsonResponse(http.StatusOK, payload), nil
	})}

	items, err := p.FetchNews(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 keyword-matched items, got %d", len(items))
	}
	if items[0].Sentiment != nil {
		t.Fatal("expected sentiment unset on collected items")
	}
	if items[0].URL == nil || *items[0].URL != "https://news.example/1" {
		t.Fatalf("unexpected url: %v", items[0].URL)
	}
}

func TestNewsAPIFetchNewsCapsArticles(t *testing.T) {
	articles := make([]map[string]any, 0, 10)
	for i := 0; i < 10; i++ {
		articles = append(articles, map[string]any{"title": "bitcoin news", "content": "btc"})
	}

	p, err := NewNewsAPI(trace.NewNoopTracerProvider().Tracer("test"),
		"https://newsapi.test/v2/everything", "key", []string{"bitcoin"}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.client = &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, newsAPIPayload(articles...)), nil
	})}

	items, err := p.FetchNews(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected cap of 3 items, got %d", len(items))
	}
}

func TestNewsAPIFetchNewsNon2xx(t *testing.T) {
	p, err := NewNewsAPI(trace.NewNoopTracerProvider().Tracer("test"),
		"https://newsapi.test/v2/everything", "key", []string{"bitcoin"}, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.client = &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusUnauthorized, map[string]any{"status": "error"}), nil
	})}

	if _, err := p.FetchNews(context.Background(), 7); err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}
