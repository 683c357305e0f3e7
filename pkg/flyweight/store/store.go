package store

import "sync"

// Store is a thread-safe key/value store.
// It uses sync.RWMutex for optimal read-heavy workloads.
//
// Mutating methods return the store itself so calls can be chained:
//
//	s.Set("a", 1).Set("b", 2).Remove("a")
type Store[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// New creates a new empty store.
func New[K comparable, V any]() *Store[K, V] {
	return &Store[K, V]{
		entries: make(map[K]V),
	}
}

// Set adds or overwrites the value for a key. It always succeeds.
func (s *Store[K, V]) Set(key K, value V) *Store[K, V] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return s
}

// SetMany adds multiple entries to the store.
func (s *Store[K, V]) SetMany(entries map[K]V) *Store[K, V] {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range entries {
		s.entries[k] = v
	}
	return s
}

// Get returns the value for a key and whether it exists.
func (s *Store[K, V]) Get(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	return v, ok
}

// GetOr returns the value for a key, or fallback if the key is absent.
// A lookup miss is not an error.
func (s *Store[K, V]) GetOr(key K, fallback V) V {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.entries[key]; ok {
		return v
	}
	return fallback
}

// Has returns true if the key exists in the store.
func (s *Store[K, V]) Has(key K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[key]
	return ok
}

// Remove deletes the entry for a key.
// Removing an absent key is a no-op.
func (s *Store[K, V]) Remove(key K) *Store[K, V] {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return s
}

// Clear removes all entries.
func (s *Store[K, V]) Clear() *Store[K, V] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[K]V)
	return s
}

// All returns a copy of all current entries.
// Mutating the returned map does not affect the store.
func (s *Store[K, V]) All() map[K]V {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make(map[K]V, len(s.entries))
	for k, v := range s.entries {
		snapshot[k] = v
	}
	return snapshot
}

// Keys returns all keys in the store.
// The order is not guaranteed.
func (s *Store[K, V]) Keys() []K {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]K, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of entries in the store.
func (s *Store[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// IsEmpty returns true if the store has no entries.
func (s *Store[K, V]) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries) == 0
}

// Range iterates over all entries in the store.
// The function fn is called for each entry. If fn returns false,
// iteration stops.
//
// Range iterates over a snapshot of the store, so it is safe
// to call Set or Remove during iteration without affecting
// the current iteration.
func (s *Store[K, V]) Range(fn func(K, V) bool) {
	snapshot := s.All()
	for k, v := range snapshot {
		if !fn(k, v) {
			return
		}
	}
}

// GetOrCreate returns the value for a key, creating it with the create
// function if it doesn't exist. This operation is atomic - create is
// called at most once per key, even under concurrent access.
func (s *Store[K, V]) GetOrCreate(key K, create func() V) V {
	// Fast path: check if already exists
	s.mu.RLock()
	v, ok := s.entries[key]
	s.mu.RUnlock()
	if ok {
		return v
	}

	// Slow path: create with write lock
	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check after acquiring write lock
	if v, ok := s.entries[key]; ok {
		return v
	}

	v = create()
	s.entries[key] = v
	return v
}
