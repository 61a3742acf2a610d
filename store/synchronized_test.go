package store

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynchronizedGetOrCreateOnce(t *testing.T) {
	s := NewSynchronized(nil)

	var calls atomic.Int32
	var wg sync.WaitGroup
	results := make([]int, 32)

	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := SyncGetOrCreateValue(s, "shared", func() int {
				return int(calls.Add(1))
			})
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, v := range results {
		assert.Equal(t, 1, v)
	}
}

func TestSynchronizedConcurrentWriters(t *testing.T) {
	b := NewPropertyBag()
	s := NewSynchronized(b)

	var changed atomic.Int32
	_, err := b.OnPropertyChanged(func(Event) { changed.Add(1) })
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("p%d", i%4)
			SyncSetValue(s, name, i)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 4, s.PropertiesCount())
	assert.GreaterOrEqual(t, changed.Load(), int32(4))
	assert.Len(t, s.Snapshot(), 4)
}

func TestSynchronizedOperations(t *testing.T) {
	s := NewSynchronized(NewPropertyBag())

	assert.True(t, SyncSetValue(s, "a", "x"))

	v, err := SyncGetValue[string](s, "a")
	require.NoError(t, err)
	assert.Equal(t, "x", v)

	_, ok := SyncTryGetValue[int](s, "a")
	assert.False(t, ok)

	assert.False(t, SyncDeleteProperty[int](s, "a"))
	assert.True(t, SyncDeleteProperty[string](s, "a"))

	s.Do(func(b *PropertyBag) {
		SetValue(b, "b", 1)
		SetValue(b, "c", 2)
	})
	assert.Equal(t, []Pair{{Name: "b", Value: 1}, {Name: "c", Value: 2}}, s.Snapshot())
}
