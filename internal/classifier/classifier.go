// Package classifier provides the sentiment-classification capability used
// by the processor: a remote model, a local lexicon heuristic, and a
// decorator composing the two.
package classifier

import (
	"context"
	"log"
)

// Classifier labels a text as positive (true) or negative (false) market
// tone.
type Classifier interface {
	Classify(ctx context.Context, text string) (bool, error)
}

type fallbackClassifier struct {
	primary  Classifier
	fallback Classifier
}

// WithFallback returns a classifier that tries primary first and
// downgrades to fallback on any error. Remote failures never propagate to
// the caller.
func WithFallback(primary, fallback Classifier) Classifier {
	return &fallbackClassifier{primary: primary, fallback: fallback}
}

func (c *fallbackClassifier) Classify(ctx context.Context, text string) (bool, error) {
	positive, err := c.primary.Classify(ctx, text)
	if err == nil {
		return positive, nil
	}
	log.Printf("remote classifier failed, using local heuristic: %v", err)
	return c.fallback.Classify(ctx, text)
}
