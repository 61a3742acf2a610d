package store

import "errors"

var (
	// ErrKeyNotFound is returned when reading a property that was never set
	// or has been deleted.
	ErrKeyNotFound = errors.New("property not found")

	// ErrInvalidCast is returned when a stored value cannot be read as the
	// requested type and is not a null value.
	ErrInvalidCast = errors.New("invalid cast")

	// ErrNilArgument is returned when a required function argument is nil.
	ErrNilArgument = errors.New("argument cannot be nil")

	// ErrNullValue is returned by operations that need a concrete type but
	// found a null value.
	ErrNullValue = errors.New("property value is null")
)
