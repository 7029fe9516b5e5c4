// Package provider implements the upstream price and news sources the
// collector falls through in priority order.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"btc-pulse/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

const coingeckoBaseURL = "https://api.coingecko.com/api/v3"

// CoinGecko fetches daily Bitcoin prices from the CoinGecko free API.
// Primary price source.
type CoinGecko struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
	limiter *RateLimiter
}

// NewCoinGecko creates the provider with built-in rate limiting.
// Rate limited to 8 requests per minute (one token every 7.5 seconds).
func NewCoinGecko(tracer trace.Tracer) *CoinGecko {
	return &CoinGecko{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: coingeckoBaseURL,
		tracer:  tracer,
		limiter: NewRateLimiter(8, 7500*time.Millisecond),
	}
}

func (p *CoinGecko) Name() string { return "coingecko" }

// FetchPrices fetches the market_chart time series for the given period,
// groups the points by calendar day keeping the last price of each day,
// and returns the samples in ascending date order.
func (p *CoinGecko) FetchPrices(ctx context.Context, days int) ([]domain.PriceSample, error) {
	ctx, span := p.tracer.Start(ctx, "coingecko.fetch-prices")
	defer span.End()

	url := fmt.Sprintf("%s/coins/bitcoin/market_chart?vs_currency=usd&days=%d&interval=daily",
		p.baseURL, days)

	body, err := p.doRequest(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch market chart: %w", err)
	}

	// Response shape: {"prices": [[timestamp_ms, price], ...]}
	var raw struct {
		Prices [][]float64 `json:"prices"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse market chart: %w", err)
	}
	if len(raw.Prices) == 0 {
		return nil, fmt.Errorf("market chart returned no prices")
	}

	daily := make(map[time.Time]float64)
	for _, pt := range raw.Prices {
		if len(pt) < 2 {
			return nil, fmt.Errorf("malformed price point: %v", pt)
		}
		ts := time.UnixMilli(int64(pt[0])).UTC()
		day := ts.Truncate(24 * time.Hour)
		daily[day] = pt[1] // later points in the same day win
	}

	dates := make([]time.Time, 0, len(daily))
	for d := range daily {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	samples := make([]domain.PriceSample, 0, len(dates))
	for _, d := range dates {
		samples = append(samples, domain.PriceSample{Date: d, Price: daily[d]})
	}
	return samples, nil
}

func (p *CoinGecko) doRequest(ctx context.Context, url string) ([]byte, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("coingecko API error %d: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}
