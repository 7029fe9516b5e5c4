package provider

import (
	"context"
	"math"
	"time"

	"btc-pulse/internal/domain"
)

const syntheticBasePrice = 67000.0

// Synthetic generates a deterministic daily price series when every
// external price source is down, so a run never fails purely from absent
// price data. The series is bounded and non-monotonic: three phase-shifted
// sinusoids applied as a multiplicative daily delta, with exponential
// smoothing of the running base.
type Synthetic struct {
	base float64
	now  func() time.Time
}

func NewSynthetic() *Synthetic {
	return &Synthetic{base: syntheticBasePrice, now: time.Now}
}

func (p *Synthetic) Name() string { return "synthetic" }

func (p *Synthetic) FetchPrices(_ context.Context, days int) ([]domain.PriceSample, error) {
	end := p.now().UTC().Truncate(24 * time.Hour)
	base := p.base

	samples := make([]domain.PriceSample, 0, days)
	for i := 0; i < days; i++ {
		x := float64(i)
		delta := math.Sin(x*0.1)*0.03 +
			math.Cos(x*0.7)*0.015 +
			math.Sin(math.Pow(x, 1.2)*0.01)*0.01

		price := base * (1 + delta)
		base = price*0.98 + base*0.02

		samples = append(samples, domain.PriceSample{
			Date:  end.AddDate(0, 0, -(days - i - 1)),
			Price: price,
		})
	}
	return samples, nil
}
