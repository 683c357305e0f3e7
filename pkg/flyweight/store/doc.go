// Package store provides a generic thread-safe key/value store.
//
// Store is designed for read-heavy workloads using sync.RWMutex. It supports
// any comparable key type and any value type through Go generics, and is
// meant to be composed into types that need simple associative storage, such
// as the flyweight factory's cache.
//
// # Basic Usage
//
// Create a store and chain mutations:
//
//	s := store.New[string, int]()
//	s.Set("one", 1).Set("two", 2)
//
//	value, ok := s.Get("one")
//	if ok {
//	    fmt.Println(value) // Output: 1
//	}
//
// Lookups never fail; a miss reports absence instead:
//
//	v := s.GetOr("three", -1) // -1, store unchanged
//
// # Snapshots
//
// All returns a copy of the current entries. Mutating the returned map has
// no effect on the store, so it is safe to hand to callers:
//
//	for k, v := range s.All() {
//	    fmt.Println(k, v)
//	}
//
// # Thread Safety
//
// All Store methods are safe for concurrent use. The Range method iterates
// over a snapshot of the store, allowing mutations during iteration without
// affecting the iteration itself. GetOrCreate is atomic - the create
// function is called at most once per key, even under concurrent access.
package store
