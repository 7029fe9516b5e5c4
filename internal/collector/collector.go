// Package collector implements the first pipeline stage: filling the
// shared stores from prioritized, unreliable upstream sources.
package collector

import (
	"context"
	"fmt"
	"log"

	"btc-pulse/internal/domain"
	"btc-pulse/internal/store"

	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// PriceSource is one upstream price tier. Sources are tried strictly in
// slice order; the first one returning a non-empty series wins.
type PriceSource interface {
	Name() string
	FetchPrices(ctx context.Context, days int) ([]domain.PriceSample, error)
}

// NewsSource is one upstream news tier, same fallback contract.
type NewsSource interface {
	Name() string
	FetchNews(ctx context.Context, days int) ([]domain.NewsItem, error)
}

type Collector struct {
	tracer       trace.Tracer
	prices       *store.PriceStore
	news         *store.NewsStore
	priceSources []PriceSource
	newsSources  []NewsSource
}

// New wires the collector. priceSources is expected to end with the
// synthetic generator so price collection cannot fail terminally; news has
// no such backstop.
func New(tracer trace.Tracer, prices *store.PriceStore, news *store.NewsStore,
	priceSources []PriceSource, newsSources []NewsSource) *Collector {
	return &Collector{
		tracer:       tracer,
		prices:       prices,
		news:         news,
		priceSources: priceSources,
		newsSources:  newsSources,
	}
}

// Collect clears both stores and repopulates them for the given period.
// Price and news acquisition run concurrently; collection completes when
// both finish and fails if either fails.
func (c *Collector) Collect(ctx context.Context, days int) error {
	ctx, span := c.tracer.Start(ctx, "collector.collect")
	defer span.End()

	c.prices.Clear()
	c.news.Clear()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.collectPrices(ctx, days) })
	g.Go(func() error { return c.collectNews(ctx, days) })
	return g.Wait()
}

func (c *Collector) collectPrices(ctx context.Context, days int) error {
	ctx, span := c.tracer.Start(ctx, "collector.collect-prices")
	defer span.End()

	for _, src := range c.priceSources {
		samples, err := src.FetchPrices(ctx, days)
		if err != nil {
			log.Printf("price source %s unavailable: %v", src.Name(), err)
			continue
		}
		if len(samples) == 0 {
			log.Printf("price source %s returned no samples", src.Name())
			continue
		}
		for _, s := range samples {
			c.prices.Add(s)
		}
		log.Printf("collected %d price samples from %s", len(samples), src.Name())
		return nil
	}
	return fmt.Errorf("all price sources exhausted: %w", domain.ErrNoDataSources)
}

func (c *Collector) collectNews(ctx context.Context, days int) error {
	ctx, span := c.tracer.Start(ctx, "collector.collect-news")
	defer span.End()

	for _, src := range c.newsSources {
		items, err := src.FetchNews(ctx, days)
		if err != nil {
			log.Printf("news source %s unavailable: %v", src.Name(), err)
			continue
		}
		if len(items) == 0 {
			log.Printf("news source %s returned no items", src.Name())
			continue
		}
		for _, item := range items {
			c.news.Add(item)
		}
		log.Printf("collected %d news items from %s", len(items), src.Name())
		return nil
	}
	return fmt.Errorf("all news sources exhausted: %w", domain.ErrNoDataSources)
}
