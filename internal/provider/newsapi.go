package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"btc-pulse/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

// NewsAPI queries the NewsAPI "everything" endpoint for keyword-matched
// articles published within the analysis period. Primary news source.
type NewsAPI struct {
	client      *http.Client
	baseURL     string
	apiKey      string
	keywords    []string
	matcher     *regexp.Regexp
	maxArticles int
	tracer      trace.Tracer
	now         func() time.Time
}

func NewNewsAPI(tracer trace.Tracer, baseURL, apiKey string, keywords []string, maxArticles int) (*NewsAPI, error) {
	matcher, err := NewKeywordMatcher(keywords)
	if err != nil {
		return nil, err
	}
	if maxArticles <= 0 {
		maxArticles = 50
	}
	return &NewsAPI{
		client:      &http.Client{Timeout: 10 * time.Second},
		baseURL:     baseURL,
		apiKey:      apiKey,
		keywords:    keywords,
		matcher:     matcher,
		maxArticles: maxArticles,
		tracer:      tracer,
		now:         time.Now,
	}, nil
}

func (p *NewsAPI) Name() string { return "newsapi" }

func (p *NewsAPI) FetchNews(ctx context.Context, days int) ([]domain.NewsItem, error) {
	_, span := p.tracer.Start(ctx, "newsapi.fetch-news")
	defer span.End()

	from := p.now().UTC().AddDate(0, 0, -days).Format("2006-01-02")
	query := strings.Join(p.keywords, " OR ")

	reqURL := fmt.Sprintf("%s?q=%s&from=%s&language=en&sortBy=publishedAt&pageSize=%d&apiKey=%s",
		p.baseURL, url.QueryEscape(query), from, p.maxArticles, p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
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
		return nil, fmt.Errorf("newsapi error %d: %s", resp.StatusCode, string(body))
	}

	var raw struct {
		Articles []struct {
			Title       string  `json:"title"`
			Content     string  `json:"content"`
			URL         *string `json:"url"`
			PublishedAt *string `json:"publishedAt"`
		} `json:"articles"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse articles: %w", err)
	}

	items := make([]domain.NewsItem, 0, len(raw.Articles))
	for _, a := range raw.Articles {
		if len(items) >= p.maxArticles {
			break
		}
		if !p.matcher.MatchString(a.Title) && !p.matcher.MatchString(a.Content) {
			continue
		}
		items = append(items, domain.NewsItem{
			Title:       a.Title,
			Content:     a.Content,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
		})
	}
	return items, nil
}
