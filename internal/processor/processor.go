// Package processor implements the second pipeline stage: text cleanup,
// sentiment classification under bounded concurrency, and the
// price-direction filter.
package processor

import (
	"context"
	"log"
	"regexp"
	"strings"
	"sync"

	"btc-pulse/internal/classifier"
	"btc-pulse/internal/domain"
	"btc-pulse/internal/store"

	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// maxClassifierInput bounds the text sent to the remote classifier, in
// bytes, cut at word boundaries.
const maxClassifierInput = 512

const defaultMaxConcurrent = 10

var (
	htmlTagRE    = regexp.MustCompile(`<[^>]+>`)
	urlRE        = regexp.MustCompile(`http\S+|www\.\S+`)
	whitespaceRE = regexp.MustCompile(`\s+`)
)

type Processor struct {
	tracer        trace.Tracer
	prices        *store.PriceStore
	news          *store.NewsStore
	classifier    classifier.Classifier
	maxConcurrent int
}

func New(tracer trace.Tracer, prices *store.PriceStore, news *store.NewsStore,
	cls classifier.Classifier, maxConcurrent int) *Processor {
	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrent
	}
	return &Processor{
		tracer:        tracer,
		prices:        prices,
		news:          news,
		classifier:    cls,
		maxConcurrent: maxConcurrent,
	}
}

// Process classifies every stored news item and keeps only those whose
// sentiment agrees with the realized price direction. The store is
// repopulated in classification completion order, which is unordered.
func (p *Processor) Process(ctx context.Context) error {
	ctx, span := p.tracer.Start(ctx, "processor.process")
	defer span.End()

	end, endOK := p.prices.LastPrice()
	start, startOK := p.prices.FirstPrice()
	priceIncreased := endOK && startOK && end > start

	items := p.news.All()

	type classified struct {
		item     domain.NewsItem
		positive bool
	}

	var mu sync.Mutex
	results := make([]classified, 0, len(items))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.maxConcurrent)
	for _, item := range items {
		item := item
		g.Go(func() error {
			title := CleanText(item.Title)
			content := CleanText(item.Content)
			if title == "" && content == "" {
				log.Printf("skipping news with empty cleaned text: %q", item.Title)
				return nil
			}

			text := TruncateWords(strings.TrimSpace(title+" "+content), maxClassifierInput)
			positive, err := p.classifier.Classify(ctx, text)
			if err != nil {
				// The fallback decorator absorbs remote failures; an error
				// here means even the heuristic path broke.
				return err
			}

			processed := item
			processed.Content = content
			processed.Sentiment = &positive

			mu.Lock()
			results = append(results, classified{item: processed, positive: positive})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	p.news.Clear()
	for _, r := range results {
		if r.positive == priceIncreased {
			p.news.Add(r.item)
		}
	}

	log.Printf("processed %d news items, %d agree with price direction", len(items), p.news.Len())
	return nil
}

// CleanText strips HTML-like tags and URLs, collapses whitespace, and
// trims the result.
func CleanText(text string) string {
	cleaned := htmlTagRE.ReplaceAllString(text, " ")
	cleaned = urlRE.ReplaceAllString(cleaned, " ")
	cleaned = whitespaceRE.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// TruncateWords cuts text to at most max bytes without splitting words.
func TruncateWords(text string, max int) string {
	if len(text) <= max {
		return text
	}
	var b strings.Builder
	for _, word := range strings.Fields(text) {
		need := len(word)
		if b.Len() > 0 {
			need++
		}
		if b.Len()+need > max {
			break
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(word)
	}
	return b.String()
}
