package store

import (
	"fmt"
	"sync"

	"btc-pulse/internal/domain"
)

// NewsStore holds collected news items. The processor clears and
// repopulates it with the surviving items after classification.
type NewsStore struct {
	mu    sync.Mutex
	items []domain.NewsItem
}

func NewNewsStore() *NewsStore {
	return &NewsStore{}
}

func (s *NewsStore) Add(item domain.NewsItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
}

func (s *NewsStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = s.items[:0]
}

// All returns an independent snapshot of the stored items.
func (s *NewsStore) All() []domain.NewsItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.NewsItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *NewsStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// SetSentiment records the classification for the item at index i. An
// out-of-range index returns domain.ErrIndexOutOfRange and leaves the
// store unchanged.
func (s *NewsStore) SetSentiment(i int, positive bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.items) {
		return fmt.Errorf("news item %d: %w", i, domain.ErrIndexOutOfRange)
	}
	s.items[i].Sentiment = &positive
	return nil
}
