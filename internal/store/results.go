package store

import (
	"sync"
	"time"

	"quantlab/internal/backtest"

	"github.com/google/uuid"
)

// Entry is a stored simulation result.
type Entry struct {
	ID        string
	Result    *backtest.Result
	CreatedAt time.Time
	ExpiresAt time.Time
}

// ResultStore keeps simulation results in memory so a ledger can be fetched
// after the run that produced it. Entries expire after the configured TTL.
type ResultStore struct {
	mu    sync.RWMutex
	store map[string]*Entry
	ttl   time.Duration
	now   func() time.Time

	stop chan struct{}
	once sync.Once
}

// New creates a store. A non-positive ttl defaults to one hour.
func New(ttl time.Duration) *ResultStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &ResultStore{
		store: make(map[string]*Entry),
		ttl:   ttl,
		now:   time.Now,
		stop:  make(chan struct{}),
	}
}

// Put stores res under a fresh ID and returns it.
func (s *ResultStore) Put(res *backtest.Result) string {
	id := uuid.NewString()
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.store[id] = &Entry{
		ID:        id,
		Result:    res,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	return id
}

// Get returns the entry for id if present and not expired.
func (s *ResultStore) Get(id string) (*Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.store[id]
	if !ok || s.now().After(e.ExpiresAt) {
		return nil, false
	}
	return e, true
}

func (s *ResultStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.store)
}

// Sweep deletes expired entries and returns how many were removed.
func (s *ResultStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := 0
	for id, e := range s.store {
		if now.After(e.ExpiresAt) {
			delete(s.store, id)
			n++
		}
	}
	return n
}

// StartSweeper runs Sweep every interval until Close is called.
func (s *ResultStore) StartSweeper(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Sweep()
			case <-s.stop:
				return
			}
		}
	}()
}

func (s *ResultStore) Close() {
	s.once.Do(func() { close(s.stop) })
}
