package provider

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"time"

	"btc-pulse/internal/domain"

	"github.com/mmcdole/gofeed"
	"go.opentelemetry.io/otel/trace"
)

// DefaultRSSFeeds is the fallback news tier, consulted when NewsAPI fails.
var DefaultRSSFeeds = []string{
	"https://cointelegraph.com/rss",
	"https://coindesk.com/arc/outboundfeeds/rss/",
	"https://decrypt.co/feed",
}

// RSSFeeds fetches and parses a fixed list of syndication feeds. A broken
// feed is logged and skipped; the source fails only when no feed yields a
// single keyword-matched item.
type RSSFeeds struct {
	client     *http.Client
	feeds      []string
	matcher    *regexp.Regexp
	maxPerFeed int
	tracer     trace.Tracer
}

func NewRSSFeeds(tracer trace.Tracer, feeds []string, keywords []string, maxPerFeed int) (*RSSFeeds, error) {
	matcher, err := NewKeywordMatcher(keywords)
	if err != nil {
		return nil, err
	}
	if len(feeds) == 0 {
		feeds = DefaultRSSFeeds
	}
	if maxPerFeed <= 0 {
		maxPerFeed = 20
	}
	return &RSSFeeds{
		client:     &http.Client{Timeout: 10 * time.Second},
		feeds:      feeds,
		matcher:    matcher,
		maxPerFeed: maxPerFeed,
		tracer:     tracer,
	}, nil
}

func (p *RSSFeeds) Name() string { return "rss" }

func (p *RSSFeeds) FetchNews(ctx context.Context, _ int) ([]domain.NewsItem, error) {
	ctx, span := p.tracer.Start(ctx, "rss.fetch-news")
	defer span.End()

	parser := gofeed.NewParser()
	parser.Client = p.client

	var items []domain.NewsItem
	for _, feedURL := range p.feeds {
		feedItems, err := p.fetchFeed(ctx, parser, feedURL)
		if err != nil {
			log.Printf("rss feed %s failed: %v", feedURL, err)
			continue
		}
		log.Printf("collected %d items from %s", len(feedItems), feedURL)
		items = append(items, feedItems...)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("no items from any rss feed")
	}
	return items, nil
}

func (p *RSSFeeds) fetchFeed(ctx context.Context, parser *gofeed.Parser, feedURL string) ([]domain.NewsItem, error) {
	feed, err := parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, err
	}

	var items []domain.NewsItem
	for _, entry := range feed.Items {
		if len(items) >= p.maxPerFeed {
			break
		}
		content := entry.Description
		if content == "" {
			content = entry.Content
		}
		if !p.matcher.MatchString(entry.Title) && !p.matcher.MatchString(content) {
			continue
		}

		var link *string
		if entry.Link != "" {
			l := entry.Link
			link = &l
		}
		var published *string
		if entry.PublishedParsed != nil {
			ts := entry.PublishedParsed.UTC().Format(time.RFC3339)
			published = &ts
		} else if entry.Published != "" {
			ts := entry.Published
			published = &ts
		}

		items = append(items, domain.NewsItem{
			Title:       entry.Title,
			Content:     content,
			URL:         link,
			PublishedAt: published,
		})
	}
	return items, nil
}
