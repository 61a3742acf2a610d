package store

import (
	"github.com/sasha-s/go-deadlock"
)

// Synchronized serializes every operation on a PropertyBag behind a single
// mutex.
//
// Handlers and hooks run while the lock is held. They must work on the bag
// they are handed (Event.Source) and never call back into the Synchronized
// wrapper; doing so deadlocks, which go-deadlock reports.
type Synchronized struct {
	mu  deadlock.Mutex
	bag *PropertyBag
}

// NewSynchronized wraps b. A nil b is replaced by an empty bag.
func NewSynchronized(b *PropertyBag) *Synchronized {
	if b == nil {
		b = NewPropertyBag()
	}
	return &Synchronized{bag: b}
}

// Do runs fn with exclusive access to the bag.
func (s *Synchronized) Do(fn func(b *PropertyBag)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.bag)
}

// PropertiesCount returns the number of stored properties.
func (s *Synchronized) PropertiesCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bag.PropertiesCount()
}

// Snapshot returns a copy of the current entries in insertion order.
func (s *Synchronized) Snapshot() []Pair {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Pair, 0, s.bag.PropertiesCount())
	for name, value := range s.bag.Properties() {
		out = append(out, Pair{Name: name, Value: value})
	}
	return out
}

// SyncGetValue is GetValue under the lock.
func SyncGetValue[T any](s *Synchronized, name string) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return GetValue[T](s.bag, name)
}

// SyncTryGetValue is TryGetValue under the lock.
func SyncTryGetValue[T any](s *Synchronized, name string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return TryGetValue[T](s.bag, name)
}

// SyncSetValue is SetValue under the lock.
func SyncSetValue[T any](s *Synchronized, name string, value T, opts ...Option[T]) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SetValue(s.bag, name, value, opts...)
}

// SyncGetOrCreateValue is GetOrCreateValue under the lock, so the factory
// runs at most once per name even with concurrent callers.
func SyncGetOrCreateValue[T any](s *Synchronized, name string, factory func() T, opts ...Option[T]) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return GetOrCreateValue(s.bag, name, factory, opts...)
}

// SyncDeleteProperty is DeleteProperty under the lock.
func SyncDeleteProperty[T any](s *Synchronized, name string, opts ...Option[T]) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return DeleteProperty(s.bag, name, opts...)
}
