package index

import (
	"sync"
	"time"

	"github.com/hinatano/liveboard/internal/domain"
)

// Snapshot holds the most recent schedule fetched from the source.
// Every resolution reads an immutable copy from here, so a request never
// observes a half-applied reload. It also acts as the fallback when the
// source is unreachable: the last good item list stays served, flagged
// as stale.
type Snapshot struct {
	mu        sync.RWMutex
	items     []domain.Item
	fetchedAt time.Time
	healthy   bool
}

func NewSnapshot() *Snapshot {
	return &Snapshot{}
}

// Update replaces the snapshot with a freshly fetched item list.
func (s *Snapshot) Update(items []domain.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append([]domain.Item(nil), items...)
	s.fetchedAt = time.Now()
	s.healthy = true
}

// Restore seeds the snapshot from persisted state (e.g. redis on startup).
// The data is served but kept marked stale until a live fetch succeeds.
func (s *Snapshot) Restore(items []domain.Item, fetchedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append([]domain.Item(nil), items...)
	s.fetchedAt = fetchedAt
	s.healthy = false
}

// MarkStale records a failed refresh while keeping the last good items.
func (s *Snapshot) MarkStale() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.healthy = false
}

// Items returns a copy of the current item list and whether it came from a
// successful recent fetch.
func (s *Snapshot) Items() ([]domain.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := append([]domain.Item(nil), s.items...)
	return items, s.healthy
}

// FetchedAt returns when the current items were obtained from the source.
func (s *Snapshot) FetchedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.fetchedAt
}

// Count returns the number of items in the snapshot.
func (s *Snapshot) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}
