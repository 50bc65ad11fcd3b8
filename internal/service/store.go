package service

import (
	"sync"
	"time"

	"github.com/dafibh/loanboard/loanboard-backend/internal/domain"
)

// CustomerStore holds the most recently applied customer collection.
// Reloads are tagged with a generation from Begin; a response is applied
// only if no newer reload has been applied already.
type CustomerStore struct {
	mu         sync.RWMutex
	customers  []domain.Customer
	loadedAt   time.Time
	issuedGen  uint64
	appliedGen uint64
}

func NewCustomerStore() *CustomerStore {
	return &CustomerStore{}
}

// Begin issues the generation for a new reload
func (s *CustomerStore) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issuedGen++
	return s.issuedGen
}

// Apply replaces the collection if gen is newer than the applied one.
// It reports whether the collection was replaced.
func (s *CustomerStore) Apply(gen uint64, customers []domain.Customer, loadedAt time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen <= s.appliedGen {
		return false
	}
	s.customers = append([]domain.Customer(nil), customers...)
	s.loadedAt = loadedAt
	s.appliedGen = gen
	return true
}

// Snapshot returns a copy of the collection, when it was loaded and its
// generation. A zero generation means nothing has been loaded yet.
func (s *CustomerStore) Snapshot() ([]domain.Customer, time.Time, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Customer(nil), s.customers...), s.loadedAt, s.appliedGen
}

// Loaded reports whether any reload has been applied
func (s *CustomerStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.appliedGen > 0
}

// Find looks a customer up in the current collection
func (s *CustomerStore) Find(id int64) (domain.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Customer{}, false
}
