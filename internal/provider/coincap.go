package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"btc-pulse/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

const coincapBaseURL = "https://api.coincap.io/v2"

// CoinCap fetches daily Bitcoin history from the CoinCap aggregator.
// Tertiary price source.
type CoinCap struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
	now     func() time.Time
}

func NewCoinCap(tracer trace.Tracer) *CoinCap {
	return &CoinCap{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: coincapBaseURL,
		tracer:  tracer,
		now:     time.Now,
	}
}

func (p *CoinCap) Name() string { return "coincap" }

func (p *CoinCap) FetchPrices(ctx context.Context, days int) ([]domain.PriceSample, error) {
	_, span := p.tracer.Start(ctx, "coincap.fetch-prices")
	defer span.End()

	end := p.now().UnixMilli()
	start := end - int64(days)*24*int64(time.Hour/time.Millisecond)
	url := fmt.Sprintf("%s/assets/bitcoin/history?interval=d1&start=%d&end=%d", p.baseURL, start, end)

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
		return nil, fmt.Errorf("coincap API error %d: %s", resp.StatusCode, string(body))
	}

	// Response shape: {"data": [{"time": ms, "priceUsd": "67000.12"}, ...]}
	var raw struct {
		Data []struct {
			Time     int64  `json:"time"`
			PriceUSD string `json:"priceUsd"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse history: %w", err)
	}
	if len(raw.Data) == 0 {
		return nil, fmt.Errorf("history returned no records")
	}

	samples := make([]domain.PriceSample, 0, len(raw.Data))
	for _, rec := range raw.Data {
		price, err := strconv.ParseFloat(rec.PriceUSD, 64)
		if err != nil {
			return nil, fmt.Errorf("parse priceUsd %q: %w", rec.PriceUSD, err)
		}
		samples = append(samples, domain.PriceSample{
			Date:  time.UnixMilli(rec.Time).UTC().Truncate(24 * time.Hour),
			Price: price,
		})
	}
	return samples, nil
}
