// Package decision implements the third pipeline stage: statistics over
// the filtered stores and assembly of the final report.
package decision

import (
	"context"
	"fmt"
	"math"
	"time"

	"btc-pulse/internal/domain"
	"btc-pulse/internal/store"

	"go.opentelemetry.io/otel/trace"
)

const maxKeyNews = 5

// Blend weights for the combined market-sentiment score.
const (
	priceWeight = 0.6
	newsWeight  = 0.4
)

type Maker struct {
	tracer trace.Tracer
	prices *store.PriceStore
	news   *store.NewsStore
	now    func() time.Time
}

func New(tracer trace.Tracer, prices *store.PriceStore, news *store.NewsStore) *Maker {
	return &Maker{tracer: tracer, prices: prices, news: news, now: time.Now}
}

// Make computes the report from whatever remains in the stores after
// processing. Fails with ErrPriceDataUnavailable when the price store is
// empty.
func (m *Maker) Make(ctx context.Context, days int) (domain.AnalysisResult, error) {
	_, span := m.tracer.Start(ctx, "decision.make")
	defer span.End()

	samples := m.prices.All()
	start, startOK := m.prices.FirstPrice()
	end, endOK := m.prices.LastPrice()
	if len(samples) == 0 || !startOK || !endOK {
		return domain.AnalysisResult{}, domain.ErrPriceDataUnavailable
	}

	priceStats := priceStatistics(samples, start, end)

	items := m.news.All()
	newsStats := newsStatistics(items)
	keyNews := formatKeyNews(items)

	sentiment := marketSentiment(priceStats, newsStats)
	confidence := confidenceLevel(priceStats, newsStats)

	return domain.AnalysisResult{
		AnalysisPeriodDays: days,
		Timestamp:          m.now().UTC().Format(time.RFC3339),
		Status:             "success",
		PriceStatistics:    priceStats,
		NewsStatistics:     newsStats,
		KeyNews:            keyNews,
		MarketSentiment:    sentiment,
		ConfidenceLevel:    confidence,
		Summary:            summarize(priceStats, newsStats, sentiment),
	}, nil
}

func priceStatistics(samples []domain.PriceSample, start, end float64) domain.PriceStatistics {
	highest := math.Inf(-1)
	lowest := math.Inf(1)
	sum := 0.0
	for _, s := range samples {
		highest = math.Max(highest, s.Price)
		lowest = math.Min(lowest, s.Price)
		sum += s.Price
	}
	average := sum / float64(len(samples))

	changeAbs := end - start
	changePct := changeAbs / start * 100

	variance := 0.0
	for _, s := range samples {
		variance += (s.Price - average) * (s.Price - average)
	}
	volatility := math.Sqrt(variance / float64(len(samples)))

	trend := domain.TrendSideways
	switch {
	case changePct > 2.0:
		trend = domain.TrendBullish
	case changePct < -2.0:
		trend = domain.TrendBearish
	}

	return domain.PriceStatistics{
		StartPrice:            start,
		EndPrice:              end,
		PriceChangeAbsolute:   changeAbs,
		PriceChangePercentage: changePct,
		HighestPrice:          highest,
		LowestPrice:           lowest,
		AveragePrice:          average,
		Volatility:            volatility,
		Trend:                 trend,
	}
}

func newsStatistics(items []domain.NewsItem) domain.NewsStatistics {
	total := len(items)
	positive, negative := 0, 0
	for _, item := range items {
		switch {
		case item.Sentiment == nil:
		case *item.Sentiment:
			positive++
		default:
			negative++
		}
	}

	stats := domain.NewsStatistics{
		TotalAnalyzed: total,
		PositiveCount: positive,
		NegativeCount: negative,
		NeutralCount:  total - positive - negative,
	}
	if total > 0 {
		stats.PositivePercentage = float64(positive) / float64(total) * 100
		stats.NegativePercentage = float64(negative) / float64(total) * 100
		stats.SentimentScore = float64(positive-negative) / float64(total)
	}
	return stats
}

func formatKeyNews(items []domain.NewsItem) []domain.NewsSummary {
	summaries := make([]domain.NewsSummary, 0, maxKeyNews)
	for _, item := range items {
		if len(summaries) == maxKeyNews {
			break
		}
		sentiment := domain.SentimentNeutral
		if item.Sentiment != nil {
			if *item.Sentiment {
				sentiment = "positive"
			} else {
				sentiment = "negative"
			}
		}

		// Coarse confidence proxy from content length.
		confidence := 0.4
		switch {
		case len(item.Content) > 100:
			confidence = 0.8
		case len(item.Content) > 50:
			confidence = 0.6
		}

		summaries = append(summaries, domain.NewsSummary{
			Title:       item.Title,
			Sentiment:   sentiment,
			Confidence:  confidence,
			PublishedAt: item.PublishedAt,
			URL:         item.URL,
		})
	}
	return summaries
}

func marketSentiment(price domain.PriceStatistics, news domain.NewsStatistics) string {
	priceScore := 0.0
	switch {
	case price.PriceChangePercentage > 5.0:
		priceScore = 1.0
	case price.PriceChangePercentage > 2.0:
		priceScore = 0.5
	case price.PriceChangePercentage < -5.0:
		priceScore = -1.0
	case price.PriceChangePercentage < -2.0:
		priceScore = -0.5
	}

	combined := priceScore*priceWeight + news.SentimentScore*newsWeight

	switch {
	case combined > 0.6:
		return domain.SentimentVeryBullish
	case combined > 0.2:
		return domain.SentimentBullish
	case combined < -0.6:
		return domain.SentimentVeryBearish
	case combined < -0.2:
		return domain.SentimentBearish
	default:
		return domain.SentimentNeutral
	}
}

func confidenceLevel(price domain.PriceStatistics, news domain.NewsStatistics) string {
	sufficientNews := news.TotalAnalyzed >= 3
	significantChange := math.Abs(price.PriceChangePercentage) > 1.0
	lowVolatility := price.Volatility < price.AveragePrice*0.05

	switch {
	case sufficientNews && significantChange && lowVolatility:
		return domain.ConfidenceHigh
	case sufficientNews || significantChange:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}

func summarize(price domain.PriceStatistics, news domain.NewsStatistics, sentiment string) string {
	direction := "rose"
	if price.PriceChangePercentage < 0 {
		direction = "fell"
	}

	tone := "mixed"
	switch sentiment {
	case domain.SentimentVeryBullish:
		tone = "strongly positive"
	case domain.SentimentBullish:
		tone = "positive"
	case domain.SentimentNeutral:
		tone = "neutral"
	case domain.SentimentBearish:
		tone = "negative"
	case domain.SentimentVeryBearish:
		tone = "strongly negative"
	}

	return fmt.Sprintf(
		"Over the analysis period the Bitcoin price %s by %.2f%% (from $%.2f to $%.2f). "+
			"%d news items were analyzed, %.0f%% positive and %.0f%% negative. "+
			"Overall market mood: %s. Volatility was $%.2f.",
		direction,
		math.Abs(price.PriceChangePercentage),
		price.StartPrice,
		price.EndPrice,
		news.TotalAnalyzed,
		math.Round(news.PositivePercentage),
		math.Round(news.NegativePercentage),
		tone,
		price.Volatility,
	)
}
