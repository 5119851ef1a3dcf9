package handle

import (
	"sync/atomic"
)

// Shared is a reference-counted cell holding an immutable value of type T.
// The count starts at one for the constructing owner. Acquire adds an owner,
// Release removes one; the value is detached when the last owner releases.
//
// Shared preserves deterministic-release semantics for callers that rely on
// explicit freeing, even though the runtime would reclaim the value anyway.
type Shared[T any] struct {
	refs  atomic.Int64
	value atomic.Pointer[T]
}

// NewShared wraps v in a cell with a reference count of one.
func NewShared[T any](v *T) *Shared[T] {
	s := &Shared[T]{}
	s.refs.Store(1)
	s.value.Store(v)
	return s
}

// Acquire registers an additional owner and returns the same cell.
// Returns nil if the cell is nil or already fully released.
func (s *Shared[T]) Acquire() *Shared[T] {
	if s == nil {
		return nil
	}
	for {
		n := s.refs.Load()
		if n <= 0 {
			return nil
		}
		if s.refs.CompareAndSwap(n, n+1) {
			return s
		}
	}
}

// Get returns the held value, or nil after the final Release. The returned
// pointer is a borrowed reference: it must not be retained past the owner's
// release.
func (s *Shared[T]) Get() *T {
	if s == nil {
		return nil
	}
	return s.value.Load()
}

// Release removes one owner. It reports true when this call detached the
// value (the count reached zero). Releasing a nil or already-detached cell is
// a no-op.
func (s *Shared[T]) Release() bool {
	if s == nil {
		return false
	}
	for {
		n := s.refs.Load()
		if n <= 0 {
			return false
		}
		if s.refs.CompareAndSwap(n, n-1) {
			if n == 1 {
				s.value.Store(nil)
				return true
			}
			return false
		}
	}
}

// Refs reports the current owner count. Intended for tests.
func (s *Shared[T]) Refs() int64 {
	if s == nil {
		return 0
	}
	return s.refs.Load()
}
