package store

import "fmt"

// GetValueAsObject reads name without asserting a type.
func GetValueAsObject(b *PropertyBag, name string) (any, error) {
	return GetValue[any](b, name)
}

// TryGetValueAsObject reads name without asserting a type.
func TryGetValueAsObject(b *PropertyBag, name string) (any, bool) {
	return TryGetValue[any](b, name)
}

// SetValueAsObject stores an untyped value.
func SetValueAsObject(b *PropertyBag, name string, value any, opts ...Option[any]) bool {
	return SetValue(b, name, value, opts...)
}

// DeletePropertyObject removes name whatever the type of its value.
func DeletePropertyObject(b *PropertyBag, name string, opts ...Option[any]) bool {
	return DeleteProperty(b, name, opts...)
}

// GetValueOrDefault returns the value of name, or defaultValue when it is
// absent or of another type.
func GetValueOrDefault[T any](b *PropertyBag, name string, defaultValue T) T {
	if value, ok := TryGetValue[T](b, name); ok {
		return value
	}
	return defaultValue
}

// GetValueOrDefaultFunc is GetValueOrDefault with a lazily computed default.
func GetValueOrDefaultFunc[T any](b *PropertyBag, name string, provider func() T) (T, error) {
	if provider == nil {
		var zero T
		return zero, fmt.Errorf("%w: default value provider", ErrNilArgument)
	}
	if value, ok := TryGetValue[T](b, name); ok {
		return value, nil
	}
	return provider(), nil
}

// GetValueOrDefaultNamed is GetValueOrDefaultFunc with a provider that
// receives the property name.
func GetValueOrDefaultNamed[T any](b *PropertyBag, name string, provider func(name string) T) (T, error) {
	if provider == nil {
		var zero T
		return zero, fmt.Errorf("%w: default value provider", ErrNilArgument)
	}
	if value, ok := TryGetValue[T](b, name); ok {
		return value, nil
	}
	return provider(name), nil
}
