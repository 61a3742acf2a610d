package store

import (
	"sort"
)

// BagOption configures a PropertyBag at construction time.
type BagOption func(*PropertyBag)

// WithLogger sets the logger mutations are reported to.
func WithLogger(logger Logger) BagOption {
	return func(b *PropertyBag) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// Pair is a single name/value entry.
type Pair struct {
	Name  string
	Value any
}

// WithPairs seeds the bag with entries in the given order. Seeding does not
// raise notifications. A repeated name keeps its first position and the last
// value.
func WithPairs(pairs ...Pair) BagOption {
	return func(b *PropertyBag) {
		for _, p := range pairs {
			b.entries.Set(p.Name, p.Value)
		}
	}
}

// WithEntries seeds the bag from a map. Names are inserted in sorted order
// so that enumeration is deterministic.
func WithEntries(entries map[string]any) BagOption {
	return func(b *PropertyBag) {
		names := make([]string, 0, len(entries))
		for name := range entries {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			b.entries.Set(name, entries[name])
		}
	}
}

// Option customizes a single typed bag operation. Options that do not apply
// to an operation are ignored by it.
type Option[T any] func(*options[T])

type options[T any] struct {
	onChanging   func(oldValue, newValue T)
	onChanged    func(oldValue, newValue T)
	onDeleting   func(oldValue, defaultValue T)
	onDeleted    func(oldValue, defaultValue T)
	onCreated    func(value T)
	equal        func(a, b T) bool
	defaultValue func(name string) T
}

// OnChanging registers a hook run before a value is committed by SetValue or
// GetOrCreateValue.
func OnChanging[T any](fn func(oldValue, newValue T)) Option[T] {
	return func(o *options[T]) { o.onChanging = fn }
}

// OnChanged registers a hook run after a value is committed by SetValue or
// GetOrCreateValue.
func OnChanged[T any](fn func(oldValue, newValue T)) Option[T] {
	return func(o *options[T]) { o.onChanged = fn }
}

// OnDeleting registers a hook run before DeleteProperty removes an entry.
func OnDeleting[T any](fn func(oldValue, defaultValue T)) Option[T] {
	return func(o *options[T]) { o.onDeleting = fn }
}

// OnDeleted registers a hook run after DeleteProperty removed an entry.
func OnDeleted[T any](fn func(oldValue, defaultValue T)) Option[T] {
	return func(o *options[T]) { o.onDeleted = fn }
}

// OnCreated registers a hook run once GetOrCreateValue has stored a value
// produced by its factory.
func OnCreated[T any](fn func(value T)) Option[T] {
	return func(o *options[T]) { o.onCreated = fn }
}

// WithEqual replaces the equality used for change detection. A nil function
// keeps the default.
func WithEqual[T any](fn func(a, b T) bool) Option[T] {
	return func(o *options[T]) { o.equal = fn }
}

// WithDefault supplies the value an absent property is considered to hold.
func WithDefault[T any](fn func(name string) T) Option[T] {
	return func(o *options[T]) { o.defaultValue = fn }
}

func collect[T any](opts []Option[T]) *options[T] {
	o := &options[T]{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

func (o *options[T]) defaultFor(name string) T {
	if o.defaultValue != nil {
		return o.defaultValue(name)
	}
	var zero T
	return zero
}

func (o *options[T]) equals(a, b T) bool {
	if o.equal != nil {
		return o.equal(a, b)
	}
	return defaultEqual(a, b)
}
