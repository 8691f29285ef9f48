package store

import (
	"context"
	"sync"

	"nirvanica/internal/domains/booking/model"
)

// memoryStore holds the ledger document in process memory. Used when no
// backing store is configured and as a test double.
type memoryStore struct {
	mu       sync.RWMutex
	records  []model.BookingRecord
	hasValue bool
}

func NewMemoryStore() DocumentStore {
	return &memoryStore{}
}

func (s *memoryStore) Load(_ context.Context) ([]model.BookingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasValue {
		return []model.BookingRecord{}, nil
	}

	return model.CloneAll(s.records), nil
}

func (s *memoryStore) Save(_ context.Context, records []model.BookingRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = model.CloneAll(records)
	s.hasValue = true

	return nil
}
