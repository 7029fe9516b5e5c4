package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

const (
	defaultNewsAPIURL     = "https://newsapi.org/v2/everything"
	defaultHuggingFaceURL = "https://api-inference.huggingface.co/models/distilbert-base-uncased-finetuned-sst-2-english"
)

var defaultKeywords = []string{"bitcoin", "btc", "cryptocurrency", "crypto"}

type Config struct {
	NewsAPIURL     string
	NewsAPIKey     string
	HuggingFaceURL string
	HuggingFaceKey string

	BitcoinKeywords []string
	MaxArticles     int
	MaxConcurrent   int
	RSSFeeds        []string

	RedisURL         string
	TelegramBotToken string
	HTTPPort         int
}

func Load() *Config {
	cfg := &Config{
		NewsAPIKey:       os.Getenv("NEWSAPI_KEY"),
		HuggingFaceKey:   os.Getenv("HUGGINGFACE_API_KEY"),
		RedisURL:         os.Getenv("REDIS_URL"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}

	if cfg.NewsAPIKey == "" {
		log.Println("Warning: NEWSAPI_KEY not set, news collection will rely on RSS feeds")
	}
	if cfg.HuggingFaceKey == "" {
		log.Println("Warning: HUGGINGFACE_API_KEY not set, sentiment will use the local heuristic")
	}
	if cfg.TelegramBotToken == "" {
		log.Println("Warning: TELEGRAM_BOT_TOKEN not set, Telegram bot disabled")
	}
	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set, report caching disabled")
	}

	cfg.NewsAPIURL = strings.TrimSpace(os.Getenv("NEWSAPI_URL"))
	if cfg.NewsAPIURL == "" {
		cfg.NewsAPIURL = defaultNewsAPIURL
	}

	cfg.HuggingFaceURL = strings.TrimSpace(os.Getenv("HUGGINGFACE_API_URL"))
	if cfg.HuggingFaceURL == "" {
		cfg.HuggingFaceURL = defaultHuggingFaceURL
	}

	cfg.BitcoinKeywords = splitList(os.Getenv("BITCOIN_KEYWORDS"))
	if len(cfg.BitcoinKeywords) == 0 {
		cfg.BitcoinKeywords = defaultKeywords
	}

	cfg.RSSFeeds = splitList(os.Getenv("RSS_FEEDS"))

	cfg.MaxArticles = 50
	if v := strings.TrimSpace(os.Getenv("MAX_ARTICLES")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxArticles = n
		}
	}

	cfg.MaxConcurrent = 10
	if v := strings.TrimSpace(os.Getenv("MAX_CONCURRENT_REQUESTS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxConcurrent = n
		}
	}

	cfg.HTTPPort = 8080
	if v := strings.TrimSpace(os.Getenv("HTTP_PORT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HTTPPort = n
		}
	}

	return cfg
}

// Validate rejects configurations the pipeline cannot run with. It runs
// once at startup, before any analysis.
func (c *Config) Validate() error {
	if len(c.BitcoinKeywords) == 0 {
		return fmt.Errorf("bitcoin keywords cannot be empty")
	}
	if c.MaxArticles < 1 || c.MaxArticles > 1000 {
		return fmt.Errorf("max articles must be between 1 and 1000, got %d", c.MaxArticles)
	}
	if c.MaxConcurrent < 1 || c.MaxConcurrent > 50 {
		return fmt.Errorf("max concurrent requests must be between 1 and 50, got %d", c.MaxConcurrent)
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
