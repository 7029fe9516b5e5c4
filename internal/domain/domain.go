package domain

import "time"

// PriceSample is one daily Bitcoin price point. Date carries no
// time-of-day; the store's ordering is the caller's chronology.
type PriceSample struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}

// NewsItem is a collected news article. Sentiment stays nil until the
// processor classifies the item.
type NewsItem struct {
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	Sentiment   *bool   `json:"is_positive"`
	URL         *string `json:"url,omitempty"`
	PublishedAt *string `json:"published_at,omitempty"`
}

// Trend labels derived from percentage change over the analysis period.
const (
	TrendBullish  = "bullish"
	TrendBearish  = "bearish"
	TrendSideways = "sideways"
)

// Blended market sentiment labels.
const (
	SentimentVeryBullish = "very_bullish"
	SentimentBullish     = "bullish"
	SentimentNeutral     = "neutral"
	SentimentBearish     = "bearish"
	SentimentVeryBearish = "very_bearish"
)

// Report confidence labels.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

type PriceStatistics struct {
	StartPrice            float64 `json:"start_price"`
	EndPrice              float64 `json:"end_price"`
	PriceChangeAbsolute   float64 `json:"price_change_absolute"`
	PriceChangePercentage float64 `json:"price_change_percentage"`
	HighestPrice          float64 `json:"highest_price"`
	LowestPrice           float64 `json:"lowest_price"`
	AveragePrice          float64 `json:"average_price"`
	Volatility            float64 `json:"volatility"`
	Trend                 string  `json:"trend"`
}

type NewsStatistics struct {
	TotalAnalyzed      int     `json:"total_analyzed"`
	PositiveCount      int     `json:"positive_count"`
	NegativeCount      int     `json:"negative_count"`
	NeutralCount       int     `json:"neutral_count"`
	PositivePercentage float64 `json:"positive_percentage"`
	NegativePercentage float64 `json:"negative_percentage"`
	SentimentScore     float64 `json:"sentiment_score"`
}

// NewsSummary is one entry of the report's key-news section. Confidence is
// a coarse content-length heuristic, not a calibrated probability.
type NewsSummary struct {
	Title       string  `json:"title"`
	Sentiment   string  `json:"sentiment"`
	Confidence  float64 `json:"confidence"`
	PublishedAt *string `json:"published_at,omitempty"`
	URL         *string `json:"url,omitempty"`
}

// AnalysisResult is the final report assembled by the decision stage.
type AnalysisResult struct {
	AnalysisPeriodDays int             `json:"analysis_period_days"`
	Timestamp          string          `json:"timestamp"`
	Status             string          `json:"status"`
	PriceStatistics    PriceStatistics `json:"price_statistics"`
	NewsStatistics     NewsStatistics  `json:"news_statistics"`
	KeyNews            []NewsSummary   `json:"key_news"`
	MarketSentiment    string          `json:"market_sentiment"`
	ConfidenceLevel    string          `json:"confidence_level"`
	Summary            string          `json:"summary"`
}
