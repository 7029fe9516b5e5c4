package provider

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	"go.opentelemetry.io/otel/trace"
)

const testFeedXML = `<?xml version="1.0"?><rss version="2.0"><channel><title>Crypto Feed</title>
<item><title>Bitcoin adoption accelerates</title><link>https://news.example/btc</link><description>Institutions keep buying bitcoin.</description><pubDate>Fri, 28 Aug 2026 10:00:00 +0000</pubDate></item>
<item><title>Celebrity gossip</title><link>https://news.example/gossip</link><description>Nothing about crypto here.</description></item>
</channel></rss>`

func TestRSSFeedsFetchNews(t *testing.T) {
	p, err := NewRSSFeeds(trace.NewNoopTracerProvider().Tracer("test"),
		[]string{"https://feed.example/rss"}, []string{"bitcoin"}, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.client = &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewBufferString(testFeedXML)),
			Header:     make(http.Header),
		}, nil
	})}

	items, err := p.FetchNews(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 keyword-matched item, got %d", len(items))
	}
	if items[0].Title != "Bitcoin adoption accelerates" {
		t.Fatalf("unexpected title: %q", items[0].Title)
	}
	if items[0].PublishedAt == nil {
		t.Fatal("expected published timestamp")
	}
}

func TestRSSFeedsPerFeedFailureIsNotFatal(t *testing.T) {
	calls := 0
	p, err := NewRSSFeeds(trace.NewNoopTracerProvider().Tracer("test"),
		[]string{"https://broken.example/rss", "https://ok.example/rss"}, []string{"bitcoin"}, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.client = &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		calls++
		if req.URL.Host == "broken.example" {
			return &http.Response{
				StatusCode: http.StatusInternalServerError,
				Body:       io.NopCloser(bytes.NewBufferString("boom")),
				Header:     make(http.Header),
			}, nil
		}
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewBufferString(testFeedXML)),
			Header:     make(http.Header),
		}, nil
	})}

	items, err := p.FetchNews(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected both feeds attempted, got %d calls", calls)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item from healthy feed, got %d", len(items))
	}
}

func TestRSSFeedsAllFeedsFail(t *testing.T) {
	p, err := NewRSSFeeds(trace.NewNoopTracerProvider().Tracer("test"),
		[]string{"https://broken.example/rss"}, []string{"bitcoin"}, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.client = &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Body:       io.NopCloser(bytes.NewBufferString("down")),
			Header:     make(http.Header),
		}, nil
	})}

	if _, err := p.FetchNews(context.Background(), 7); err == nil {
		t.Fatal("expected error when every feed fails")
	}
}
