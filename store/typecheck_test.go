package store

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAs(t *testing.T) {
	var nilMap map[string]int
	var nilFunc func()

	tests := []struct {
		name  string
		check func() (any, bool)
		want  any
		ok    bool
	}{
		{"exact", func() (any, bool) { return As[int](5) }, 5, true},
		{"mismatch", func() (any, bool) { return As[string](5) }, "", false},
		{"untyped nil", func() (any, bool) { return As[int](nil) }, 0, true},
		{"typed nil map", func() (any, bool) { return As[string](nilMap) }, "", true},
		{"typed nil func", func() (any, bool) { return As[int](nilFunc) }, 0, true},
		{"interface", func() (any, bool) { return As[fmt.Stringer](stringer("s")) }, stringer("s"), true},
		{"zero is not null", func() (any, bool) { return As[string](0) }, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.check()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

type stringer string

func (s stringer) String() string { return string(s) }

func TestDefaultEqual(t *testing.T) {
	shared := &point{}

	assert.True(t, defaultEqual(1, 1))
	assert.False(t, defaultEqual(1, 2))
	assert.True(t, defaultEqual[any](nil, nil))
	assert.False(t, defaultEqual[any](nil, 0))
	assert.False(t, defaultEqual[any](1, int64(1)))
	assert.True(t, defaultEqual(shared, shared))
	assert.False(t, defaultEqual(&point{}, &point{}))
	assert.True(t, defaultEqual([]int{1}, []int{1}))
	assert.True(t, defaultEqual[any]([]int{1}, []int{1}))
	assert.True(t, defaultEqual(map[string]int{"a": 1}, map[string]int{"a": 1}))
}

func TestDefaultEqualNaN(t *testing.T) {
	assert.True(t, defaultEqual(math.NaN(), math.NaN()))
	assert.True(t, defaultEqual(float32(math.NaN()), float32(math.NaN())))
	assert.True(t, defaultEqual[any](math.NaN(), math.NaN()))
	assert.False(t, defaultEqual(math.NaN(), 0.0))
	assert.False(t, defaultEqual[any](math.NaN(), float32(math.NaN())))
}

func TestSetValueNaNIsNotAChangeTwice(t *testing.T) {
	b := NewPropertyBag()

	assert.True(t, SetValue(b, "ratio", math.NaN()))
	assert.False(t, SetValue(b, "ratio", math.NaN()))
	assert.True(t, SetValue(b, "ratio", 0.5))
}
