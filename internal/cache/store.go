// Package cache provides the in-memory TTL response cache: a mutex-guarded
// store with lazy eviction, deterministic key derivation, and a get-or-compute
// orchestrator used by the service layer.
package cache

import (
	"sync"
	"time"
)

// DefaultTTL selects the store's configured default when passed as the ttl
// argument to Set. Any negative duration behaves the same way; a ttl of zero
// is a real TTL and makes the entry stale on its next read.
const DefaultTTL time.Duration = -1

// entry is a cached value with its absolute expiry. Entries never leave the
// store; callers only see the value.
type entry struct {
	value     any
	expiresAt time.Time
}

// Store is an in-memory key/value cache with per-entry TTL expiry. A single
// mutex guards all state: every operation is a short map lookup or mutation,
// and the lock is never held across a caller's computation. The store is
// volatile; a process restart starts cold.
type Store struct {
	mu         sync.Mutex
	entries    map[string]entry
	defaultTTL time.Duration

	// now is replaceable in tests for deterministic expiry.
	now func() time.Time
}

// New creates an empty store. defaultTTL applies to Set calls that pass a
// negative ttl.
func New(defaultTTL time.Duration) *Store {
	return &Store{
		entries:    make(map[string]entry),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

// Get returns the value stored under key. The second return is false when the
// key is absent or expired; an expired entry is removed as a side effect of
// the read.
func (s *Store) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ent, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if s.now().After(ent.expiresAt) {
		delete(s.entries, key)
		return nil, false
	}
	return ent.value, true
}

// Set stores value under key, unconditionally replacing any existing entry.
// A negative ttl selects the store's default.
func (s *Store) Set(key string, value any, ttl time.Duration) {
	if ttl < 0 {
		ttl = s.defaultTTL
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{value: value, expiresAt: s.now().Add(ttl)}
}

// Delete removes the entry under key. Removing an absent key is a no-op.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// Clear removes all entries.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]entry)
}

// CleanupExpired removes every entry past its expiry and reports how many
// were removed. All entries are checked against a single clock snapshot.
func (s *Store) CleanupExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for key, ent := range s.entries {
		if now.After(ent.expiresAt) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}

// Size reports the current entry count. Entries that have expired but were
// not yet lazily evicted are included in the count.
func (s *Store) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
