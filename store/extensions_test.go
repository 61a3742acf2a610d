package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func objectValues() []any {
	return []any{0, 1, 2.2, float32(3.3), '4', "five", true, &point{}, time.Unix(1<<40, 0), time.Duration(0)}
}

func TestTryGetValueAsObject(t *testing.T) {
	b := NewPropertyBag()
	const name = "Property-Name"

	_, ok := TryGetValueAsObject(b, name)
	assert.False(t, ok)

	SetValue(b, name, time.Now())
	_, ok = TryGetValueAsObject(b, name)
	assert.True(t, ok)
}

func TestSetAndGetValueAsObject(t *testing.T) {
	b := NewPropertyBag()
	const name = "Property-Name"

	_, err := GetValueAsObject(b, name)
	assert.True(t, errors.Is(err, ErrKeyNotFound))

	for _, value := range objectValues() {
		SetValueAsObject(b, name, value)
		got, err := GetValueAsObject(b, name)
		require.NoError(t, err)
		assert.Equal(t, value, got)
	}
}

func TestSetValueAsObjectTypeChange(t *testing.T) {
	b := NewPropertyBag()

	assert.True(t, SetValueAsObject(b, "v", 1))
	assert.False(t, SetValueAsObject(b, "v", 1))
	assert.True(t, SetValueAsObject(b, "v", int64(1)), "same number, different type")
}

func TestGetValueOrDefault(t *testing.T) {
	b := NewPropertyBag()
	const name = "Property-Name"

	for _, value := range objectValues() {
		got, err := GetValueOrDefaultNamed(b, name, func(key string) any {
			assert.Equal(t, name, key)
			return value
		})
		require.NoError(t, err)
		assert.Equal(t, value, got)

		got, err = GetValueOrDefaultFunc(b, name, func() any { return value })
		require.NoError(t, err)
		assert.Equal(t, value, got)

		assert.Equal(t, value, GetValueOrDefault(b, name, value))
	}

	SetValue(b, name, 7)
	assert.Equal(t, 7, GetValueOrDefault(b, name, 0))
	assert.Equal(t, "fallback", GetValueOrDefault(b, name, "fallback"))
}

func TestGetValueOrDefaultNilProvider(t *testing.T) {
	b := NewPropertyBag()

	_, err := GetValueOrDefaultFunc[int](b, "x", nil)
	assert.True(t, errors.Is(err, ErrNilArgument))

	_, err = GetValueOrDefaultNamed[int](b, "x", nil)
	assert.True(t, errors.Is(err, ErrNilArgument))
}

func TestDeletePropertyObject(t *testing.T) {
	b := NewPropertyBag()
	const name = "Property-Name"

	assert.False(t, DeletePropertyObject(b, name))
	SetValue(b, name, 10)
	assert.True(t, DeletePropertyObject(b, name))
}
