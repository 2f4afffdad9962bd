// Package tunable holds values that are adjusted from outside the simulation
// goroutine (signal handlers, UI hooks) and read once per tick.
package tunable

import "sync/atomic"

// Value is an atomic, versioned holder for a single value.
type Value[T any] struct {
	value   atomic.Pointer[T]
	version atomic.Uint64
}

// New creates a Value holding initial at version 1.
func New[T any](initial T) *Value[T] {
	v := &Value[T]{}
	v.value.Store(&initial)
	v.version.Store(1)
	return v
}

// Get returns the current value atomically.
func (v *Value[T]) Get() T {
	return *v.value.Load()
}

// Set stores a new value and bumps the version.
func (v *Value[T]) Set(value T) {
	v.value.Store(&value)
	v.version.Add(1)
}

// Update applies fn with compare-and-swap retries and returns the stored result.
func (v *Value[T]) Update(fn func(T) T) T {
	for {
		old := v.value.Load()
		next := fn(*old)
		if v.value.CompareAndSwap(old, &next) {
			v.version.Add(1)
			return next
		}
	}
}

// Version returns the number of writes plus one.
func (v *Value[T]) Version() uint64 {
	return v.version.Load()
}
