package asset

import (
	"sync/atomic"
)

// Handle is an eventually-available asset
// Loaders complete it from any goroutine; the simulation only polls it and treats
// "not yet" as a valid state, never blocking on it
type Handle[T any] struct {
	value atomic.Pointer[T]
	err   atomic.Pointer[error]
}

// NewHandle creates a pending handle
func NewHandle[T any]() *Handle[T] {
	return &Handle[T]{}
}

// Loaded creates an already-resolved handle
func Loaded[T any](v T) *Handle[T] {
	h := &Handle[T]{}
	h.value.Store(&v)
	return h
}

// Resolve completes the handle; only the first completion wins
func (h *Handle[T]) Resolve(v T) bool {
	if h.err.Load() != nil {
		return false
	}
	return h.value.CompareAndSwap(nil, &v)
}

// Fail marks the handle as permanently unavailable
func (h *Handle[T]) Fail(err error) bool {
	if h.value.Load() != nil {
		return false
	}
	return h.err.CompareAndSwap(nil, &err)
}

// Get returns the value and whether it is available
// Safe on a nil handle
func (h *Handle[T]) Get() (T, bool) {
	var zero T
	if h == nil {
		return zero, false
	}
	p := h.value.Load()
	if p == nil {
		return zero, false
	}
	return *p, true
}

// Ready reports whether the value is available
func (h *Handle[T]) Ready() bool {
	return h != nil && h.value.Load() != nil
}

// Err returns the load failure, if any
func (h *Handle[T]) Err() error {
	if h == nil {
		return nil
	}
	if p := h.err.Load(); p != nil {
		return *p
	}
	return nil
}

// AllReady reports whether every handle is resolved
func AllReady[T any](handles ...*Handle[T]) bool {
	for _, h := range handles {
		if !h.Ready() {
			return false
		}
	}
	return true
}
