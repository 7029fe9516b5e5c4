// Package store holds the mutable, concurrency-safe containers shared by
// the three pipeline stages for the duration of one analysis run.
package store

import (
	"sync"

	"btc-pulse/internal/domain"
)

// PriceStore is an insertion-ordered price series. The collector inserts
// in ascending date order, which is what gives FirstPrice/LastPrice their
// start/end meaning; the store itself imposes no ordering.
type PriceStore struct {
	mu      sync.Mutex
	samples []domain.PriceSample
}

func NewPriceStore() *PriceStore {
	return &PriceStore{}
}

func (s *PriceStore) Add(sample domain.PriceSample) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.samples = append(s.samples, sample)
}

func (s *PriceStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.samples = s.samples[:0]
}

// All returns an independent snapshot; concurrent mutation does not affect
// the returned slice.
func (s *PriceStore) All() []domain.PriceSample {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.PriceSample, len(s.samples))
	copy(out, s.samples)
	return out
}

func (s *PriceStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.samples)
}

// FirstPrice returns the earliest inserted price. ok is false on an empty
// store.
func (s *PriceStore) FirstPrice() (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.samples) == 0 {
		return 0, false
	}
	return s.samples[0].Price, true
}

// LastPrice returns the most recently inserted price. ok is false on an
// empty store.
func (s *PriceStore) LastPrice() (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.samples) == 0 {
		return 0, false
	}
	return s.samples[len(s.samples)-1].Price, true
}
