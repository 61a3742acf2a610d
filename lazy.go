package lazyprop

import (
	"fmt"

	"github.com/davidroman0O/lazyprop/store"
)

// Lazy returns the property name of h as T, creating it with factory on the
// first call. The factory is not invoked again until the property is deleted
// or replaced by a value that cannot be read as T.
func Lazy[T any](h Holder, name string, factory func() T) (T, error) {
	var zero T
	if h == nil {
		return zero, fmt.Errorf("%w: holder", store.ErrNilArgument)
	}
	bag := h.Bag()
	if bag == nil {
		return zero, fmt.Errorf("%w: bag of holder", store.ErrNilArgument)
	}
	return store.GetOrCreateValue(bag, name, factory)
}

// LazyValue is Lazy with a constant initial value.
func LazyValue[T any](h Holder, name string, value T) (T, error) {
	return Lazy(h, name, func() T { return value })
}

// MustLazy is Lazy for getters that cannot fail: it panics on error.
func MustLazy[T any](h Holder, name string, factory func() T) T {
	value, err := Lazy(h, name, factory)
	if err != nil {
		panic(err)
	}
	return value
}
