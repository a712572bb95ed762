package pointer

import (
	"sync/atomic"

	"github.com/AndreiMuntea/xpf/xpferr"
)

// sharedCtrl is the control block shared by every alias of a Shared[T]
// value. It is deliberately non-generic: storing the payload as any lets
// two differently-instantiated Shared[T] and Shared[U] values -- say
// Shared[Animal] and Shared[Dog] -- reference literally the same block
// across a downcast, which a generic control block could not do (Go does
// not unify distinct instantiations of the same generic type). Count and
// value live as fields of one struct, allocated once.
type sharedCtrl struct {
	count atomic.Int64
	value any
}

func newSharedCtrl(value any) *sharedCtrl {
	c := &sharedCtrl{value: value}
	c.count.Store(1)
	return c
}

// retain increments the strong count. Called whenever a new alias is
// created (clone, copy-downcast on success).
func (c *sharedCtrl) retain() {
	c.count.Add(1)
}

// release decrements the strong count, dropping the payload reference when
// it reaches zero. The Add itself is the acquire-release boundary: Go's
// atomic operations are sequentially consistent, so every mutation made by
// any alias prior to the decrement that brings the count to zero
// happens-before the drop below.
func (c *sharedCtrl) release() {
	if c.count.Add(-1) == 0 {
		c.value = nil
	}
}

// Shared is shared ownership of a value of type T, or of some subtype U
// stored behind the T interface, via an atomically maintained strong
// count. The zero value is empty. Shared is safe for concurrent use by
// multiple goroutines: Clone, Deref, StrongCount, and Reset may all be
// called concurrently from different aliases.
type Shared[T any] struct {
	ctrl *sharedCtrl
}

// NewShared constructs a Shared[T] with strong count 1, taking ownership
// of value.
func NewShared[T any](value T) Shared[T] {
	return Shared[T]{ctrl: newSharedCtrl(value)}
}

// IsEmpty reports whether s currently references anything.
func (s *Shared[T]) IsEmpty() bool {
	return s.ctrl == nil
}

// StrongCount returns the number of live aliases of s's payload, or 0 if s
// is empty.
func (s *Shared[T]) StrongCount() int64 {
	if s.ctrl == nil {
		return 0
	}
	return s.ctrl.count.Load()
}

// Clone returns a new alias of s's payload, incrementing the strong count.
// Cloning an empty Shared returns another empty Shared.
func (s *Shared[T]) Clone() Shared[T] {
	if s.ctrl == nil {
		return Shared[T]{}
	}
	s.ctrl.retain()
	return Shared[T]{ctrl: s.ctrl}
}

// Deref returns the owned value. Calling Deref on an empty Shared is a
// programmer error and aborts the process.
func (s *Shared[T]) Deref() T {
	if s.ctrl == nil {
		xpferr.Fatal("pointer.Shared.Deref", xpferr.New(xpferr.ProgrammerError, "deref of empty Shared"))
	}
	v, _ := s.ctrl.value.(T)
	return v
}

// Reset releases this alias, decrementing the strong count, and leaves s
// empty. It is safe to call Reset on an already-empty Shared.
func (s *Shared[T]) Reset() {
	if s.ctrl == nil {
		return
	}
	s.ctrl.release()
	s.ctrl = nil
}

// DowncastSharedCopy yields a new Shared[U] alias of s's payload if its
// dynamic type is assignment-compatible with U, incrementing the strong
// count on success. On failure s is left unchanged and the returned
// Shared[U] is empty. This is the non-destructive copy form.
func DowncastSharedCopy[U any, T any](s *Shared[T]) Shared[U] {
	if s.ctrl == nil {
		return Shared[U]{}
	}
	if _, ok := s.ctrl.value.(U); ok {
		s.ctrl.retain()
		return Shared[U]{ctrl: s.ctrl}
	}
	return Shared[U]{}
}

// DowncastSharedMove consumes s, yielding a Shared[U] referencing the same
// control block if the dynamic type is assignment-compatible with U. On
// failure s is reset to empty and the returned Shared[U] is empty. This
// is the destructive move form: on success the strong count is unchanged
// -- ownership of the one alias s held simply transfers to the result.
func DowncastSharedMove[U any, T any](s *Shared[T]) Shared[U] {
	ctrl := s.ctrl
	s.ctrl = nil
	if ctrl == nil {
		return Shared[U]{}
	}
	if _, ok := ctrl.value.(U); ok {
		return Shared[U]{ctrl: ctrl}
	}
	ctrl.release()
	return Shared[U]{}
}
