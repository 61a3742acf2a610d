package store

import (
	"fmt"
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// PropertyBag is an insertion-ordered, change-notifying map from property
// name to a boxed value.
//
// A PropertyBag is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access themselves, for instance with Synchronized.
type PropertyBag struct {
	entries  *orderedmap.OrderedMap[string, any]
	changing handlerList
	changed  handlerList
	logger   Logger
}

// NewPropertyBag constructs an empty bag.
func NewPropertyBag(opts ...BagOption) *PropertyBag {
	b := &PropertyBag{
		entries: orderedmap.New[string, any](),
		logger:  NewDefaultLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// GetValue retrieves the value stored under name as T.
func GetValue[T any](b *PropertyBag, name string) (T, error) {
	var zero T

	boxed, ok := b.entries.Get(name)
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrKeyNotFound, name)
	}

	value, ok := As[T](boxed)
	if !ok {
		return zero, fmt.Errorf("%w: property %q holds %T, wanted %v",
			ErrInvalidCast, name, boxed, typeOf[T]())
	}
	return value, nil
}

// TryGetValue is GetValue without the error. It returns false both when the
// property is absent and when it holds a non-null value of another type.
func TryGetValue[T any](b *PropertyBag, name string) (T, bool) {
	boxed, ok := b.entries.Get(name)
	if !ok {
		var zero T
		return zero, false
	}
	return As[T](boxed)
}

// SetValue stores value under name and reports whether anything changed.
//
// Creating a property always counts as a change. Replacing one counts only
// when the old and new values differ, using WithEqual or the default
// equality. On change, hooks and notifications run in this order: OnChanging,
// PropertyChanging, commit, OnChanged, PropertyChanged.
func SetValue[T any](b *PropertyBag, name string, value T, opts ...Option[T]) bool {
	return setValue(b, name, value, collect(opts), false)
}

// setValue is the shared commit path. With replaceMismatch set, an existing
// entry of another type is always overwritten.
func setValue[T any](b *PropertyBag, name string, value T, o *options[T], replaceMismatch bool) bool {
	boxed, exists := b.entries.Get(name)

	oldValue, compatible := As[T](boxed)
	if !exists || !compatible {
		oldValue = o.defaultFor(name)
	}

	changed := !exists ||
		(replaceMismatch && !compatible) ||
		!o.equals(oldValue, value)
	if !changed {
		return false
	}

	if o.onChanging != nil {
		o.onChanging(oldValue, value)
	}
	b.raise(name, PropertyChanging)

	b.entries.Set(name, value)
	if exists {
		b.logger.Debug("property %q replaced", name)
	} else {
		b.logger.Debug("property %q created", name)
	}

	if o.onChanged != nil {
		o.onChanged(oldValue, value)
	}
	b.raise(name, PropertyChanged)

	return true
}

// GetOrCreateValue returns the value stored under name, creating it with
// factory on a miss.
//
// The factory runs only when the property is absent or holds a value that
// cannot be read as T; the result is stored through the SetValue path, so
// notifications fire, and OnCreated runs afterwards.
func GetOrCreateValue[T any](b *PropertyBag, name string, factory func() T, opts ...Option[T]) (T, error) {
	if factory == nil {
		var zero T
		return zero, fmt.Errorf("%w: factory for property %q", ErrNilArgument, name)
	}

	if value, ok := TryGetValue[T](b, name); ok {
		return value, nil
	}

	o := collect(opts)
	value := factory()
	setValue(b, name, value, o, true)

	if o.onCreated != nil {
		o.onCreated(value)
	}
	return value, nil
}

// GetOrCreateConst is GetOrCreateValue with a constant in place of a factory.
func GetOrCreateConst[T any](b *PropertyBag, name string, value T, opts ...Option[T]) (T, error) {
	return GetOrCreateValue(b, name, func() T { return value }, opts...)
}

// DeleteProperty removes name and reports whether it was removed.
//
// Only a property readable as T is removed. Hooks receive the current value
// and the default (WithDefault, or T's zero value) and run around the
// PropertyChanging / PropertyChanged notifications like SetValue's.
func DeleteProperty[T any](b *PropertyBag, name string, opts ...Option[T]) bool {
	current, ok := TryGetValue[T](b, name)
	if !ok {
		return false
	}

	o := collect(opts)
	defaultValue := o.defaultFor(name)

	if o.onDeleting != nil {
		o.onDeleting(current, defaultValue)
	}
	b.raise(name, PropertyChanging)

	b.entries.Delete(name)
	b.logger.Debug("property %q deleted", name)

	if o.onDeleted != nil {
		o.onDeleted(current, defaultValue)
	}
	b.raise(name, PropertyChanged)

	return true
}

// ClearProperties deletes every property, one DeleteProperty at a time, in
// insertion order. Names are captured before the first deletion.
func (b *PropertyBag) ClearProperties(defaultValue func(name string) any) {
	var opts []Option[any]
	if defaultValue != nil {
		opts = append(opts, WithDefault(defaultValue))
	}

	names := b.Names()
	for _, name := range names {
		DeleteProperty(b, name, opts...)
	}
	b.logger.Debug("cleared %d properties", len(names))
}

// Properties yields the current entries in insertion order. The sequence is
// evaluated lazily and can be ranged over repeatedly.
//
// The bag may be modified while ranging. Each name is yielded at most once,
// deleted entries are never yielded, and entries added during the range are
// yielded when reached.
func (b *PropertyBag) Properties() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		seen := make(map[string]struct{})
		for pair := b.entries.Oldest(); pair != nil; {
			seen[pair.Key] = struct{}{}
			if !yield(pair.Key, pair.Value) {
				return
			}
			pair = b.successor(pair, seen)
		}
	}
}

// successor returns the live entry after pair that has not been yielded yet.
// A pair removed from the bag no longer links to its neighbours, so the scan
// restarts from the oldest entry in that case.
func (b *PropertyBag) successor(pair *orderedmap.Pair[string, any], seen map[string]struct{}) *orderedmap.Pair[string, any] {
	next := b.entries.Oldest()
	if b.entries.GetPair(pair.Key) == pair {
		next = pair.Next()
	}
	for next != nil {
		if _, ok := seen[next.Key]; !ok {
			return next
		}
		next = next.Next()
	}
	return nil
}

// PropertiesCount returns the number of stored properties.
func (b *PropertyBag) PropertiesCount() int {
	return b.entries.Len()
}

// Has reports whether name is stored, whatever its value.
func (b *PropertyBag) Has(name string) bool {
	_, ok := b.entries.Get(name)
	return ok
}

// Names returns a snapshot of the stored names in insertion order.
func (b *PropertyBag) Names() []string {
	names := make([]string, 0, b.entries.Len())
	for pair := b.entries.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// OnPropertyChanging registers h for notifications raised before a mutation.
func (b *PropertyBag) OnPropertyChanging(h Handler) (*Subscription, error) {
	if h == nil {
		return nil, fmt.Errorf("%w: handler", ErrNilArgument)
	}
	return b.changing.add(h), nil
}

// OnPropertyChanged registers h for notifications raised after a mutation.
func (b *PropertyBag) OnPropertyChanged(h Handler) (*Subscription, error) {
	if h == nil {
		return nil, fmt.Errorf("%w: handler", ErrNilArgument)
	}
	return b.changed.add(h), nil
}

func (b *PropertyBag) raise(name string, kind EventKind) {
	e := Event{Source: b, Name: name, Kind: kind}
	if kind == PropertyChanging {
		b.changing.raise(e)
	} else {
		b.changed.raise(e)
	}
}
