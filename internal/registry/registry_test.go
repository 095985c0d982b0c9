package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetOrAdd(t *testing.T) {
	r := New[uintptr, string]()

	v, loaded := r.GetOrAdd(1, func() string { return "first" })
	assert.False(t, loaded)
	assert.Equal(t, "first", v)

	v, loaded = r.GetOrAdd(1, func() string { return "second" })
	assert.True(t, loaded)
	assert.Equal(t, "first", v)

	v, loaded = r.GetOrAdd(2, func() string { return "other" })
	assert.False(t, loaded)
	assert.Equal(t, "other", v)
}

func TestGetOrAddStringKeys(t *testing.T) {
	r := New[string, int]()
	calls := 0
	compute := func() int { calls++; return calls }

	first, _ := r.GetOrAdd("a", compute)
	second, _ := r.GetOrAdd("a", compute)
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
	assert.Equal(t, 1, calls)
}

func TestGetOrAddConcurrent(t *testing.T) {
	r := New[uintptr, *int]()

	const goroutines = 32
	results := make([]*int, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := range goroutines {
		go func() {
			defer wg.Done()
			results[i], _ = r.GetOrAdd(7, func() *int { n := i; return &n })
		}()
	}
	wg.Wait()

	for _, p := range results {
		assert.Same(t, results[0], p)
	}
}
