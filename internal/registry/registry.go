// Package registry provides a concurrent, lock-free lookup table for values that are
// computed once per key and then only read.
package registry

import "github.com/alphadose/haxmap"

// Key is the set of key types a Registry accepts.
type Key interface {
	~uintptr | ~string
}

type Registry[K Key, T any] interface {
	// GetOrAdd returns the value stored under key, computing and storing it when absent.
	// The boolean reports whether the value was already present.
	GetOrAdd(key K, value func() T) (T, bool)
}

type registry[K Key, T any] struct {
	values *haxmap.Map[K, T]
}

func New[K Key, T any]() Registry[K, T] {
	return &registry[K, T]{
		values: haxmap.New[K, T](),
	}
}

func (r *registry[K, T]) GetOrAdd(key K, valueFn func() T) (T, bool) {
	return r.values.GetOrCompute(key, valueFn)
}
