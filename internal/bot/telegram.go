// Package bot serves analysis reports over Telegram.
package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"btc-pulse/internal/domain"
	"btc-pulse/internal/service"

	tele "gopkg.in/telebot.v3"
)

type analysisRunner interface {
	Run(ctx context.Context) (domain.AnalysisResult, error)
	Period() *service.Period
}

// StartTelegramBot starts a long-polling bot serving /ping and
// /analyze [days]. An empty token disables the bot.
func StartTelegramBot(token string, analysis analysisRunner) {
	if token == "" {
		log.Println("TELEGRAM_BOT_TOKEN not set, skipping Telegram bot startup")
		return
	}
	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		log.Fatalf("failed to create Telegram bot: %v", err)
	}

	b.Handle("/ping", func(c tele.Context) error {
		return c.Send("pong")
	})

	b.Handle("/analyze", func(c tele.Context) error {
		days := service.DefaultPeriodDays
		if args := c.Args(); len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 || n > 365 {
				return c.Send("Usage: /analyze [days]\ndays must be between 1 and 365")
			}
			days = n
		}

		analysis.Period().Set(days)
		result, err := analysis.Run(context.Background())
		if err != nil {
			return c.Send(fmt.Sprintf("Analysis failed: %v", err))
		}
		return c.Send(formatReport(result))
	})

	log.Println("Telegram bot started")
	go b.Start()
}

func formatReport(r domain.AnalysisResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Bitcoin analysis, last %d days\n\n", r.AnalysisPeriodDays)
	fmt.Fprintf(&sb, "Price: $%.2f -> $%.2f (%+.2f%%)\n",
		r.PriceStatistics.StartPrice, r.PriceStatistics.EndPrice, r.PriceStatistics.PriceChangePercentage)
	fmt.Fprintf(&sb, "Range: $%.2f - $%.2f\n", r.PriceStatistics.LowestPrice, r.PriceStatistics.HighestPrice)
	fmt.Fprintf(&sb, "Trend: %s\n", r.PriceStatistics.Trend)
	fmt.Fprintf(&sb, "News analyzed: %d (%d positive, %d negative)\n",
		r.NewsStatistics.TotalAnalyzed, r.NewsStatistics.PositiveCount, r.NewsStatistics.NegativeCount)
	fmt.Fprintf(&sb, "Market sentiment: %s (confidence %s)\n\n", r.MarketSentiment, r.ConfidenceLevel)
	sb.WriteString(r.Summary)
	return sb.String()
}
