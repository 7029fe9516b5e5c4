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

const binanceBaseURL = "https://api.binance.com/api/v3"

// Binance fetches daily BTCUSDT candles from the Binance klines API.
// Secondary price source; each candle contributes its close price.
type Binance struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
}

func NewBinance(tracer trace.Tracer) *Binance {
	return &Binance{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: binanceBaseURL,
		tracer:  tracer,
	}
}

func (p *Binance) Name() string { return "binance" }

func (p *Binance) FetchPrices(ctx context.Context, days int) ([]domain.PriceSample, error) {
	_, span := p.tracer.Start(ctx, "binance.fetch-prices")
	defer span.End()

	url := fmt.Sprintf("%s/klines?symbol=BTCUSDT&interval=1d&limit=%d", p.baseURL, days)

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
		return nil, fmt.Errorf("binance API error %d: %s", resp.StatusCode, string(body))
	}

	// Each kline is a mixed-type array: index 0 is the open time in ms,
	// index 4 the string-encoded close price.
	var klines [][]any
	if err := json.NewDecoder(resp.Body).Decode(&klines); err != nil {
		return nil, fmt.Errorf("parse klines: %w", err)
	}
	if len(klines) == 0 {
		return nil, fmt.Errorf("klines returned no candles")
	}

	samples := make([]domain.PriceSample, 0, len(klines))
	for _, k := range klines {
		if len(k) < 5 {
			continue
		}
		openMs, ok := k[0].(float64)
		if !ok {
			return nil, fmt.Errorf("malformed kline open time: %v", k[0])
		}
		closeStr, ok := k[4].(string)
		if !ok {
			return nil, fmt.Errorf("malformed kline close price: %v", k[4])
		}
		closePrice, err := strconv.ParseFloat(closeStr, 64)
		if err != nil {
			return nil, fmt.Errorf("parse close price %q: %w", closeStr, err)
		}
		samples = append(samples, domain.PriceSample{
			Date:  time.UnixMilli(int64(openMs)).UTC().Truncate(24 * time.Hour),
			Price: closePrice,
		})
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("klines contained no usable candles")
	}
	return samples, nil
}
