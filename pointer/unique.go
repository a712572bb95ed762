// Package pointer implements the xpf smart pointers: Unique[T], a
// move-only exclusive owner, and Shared[T], an atomically reference
// counted owner whose strong count and payload reference share one control
// block (a payload boxed into that block's interface field is allocated
// separately). Neither type ever throws; a failed operation yields an empty
// pointer and the caller is required to test for it.
package pointer

import "github.com/AndreiMuntea/xpf/xpferr"

// Unique is a move-only exclusive owner of a value of type T, or of some
// subtype U stored behind the T interface. The zero value is empty.
//
// Unique is not safe for concurrent use by multiple goroutines against the
// same instance -- ownership is exclusive, so only the single owning
// goroutine should ever touch it.
type Unique[T any] struct {
	ptr *T
}

// NewUnique constructs a Unique[T] taking ownership of value.
func NewUnique[T any](value T) Unique[T] {
	v := value
	return Unique[T]{ptr: &v}
}

// IsEmpty reports whether u currently owns nothing.
func (u *Unique[T]) IsEmpty() bool {
	return u.ptr == nil
}

// Get returns the owned value's address without transferring ownership.
// It returns nil if u is empty.
func (u *Unique[T]) Get() *T {
	return u.ptr
}

// Deref returns the owned value. Calling Deref on an empty Unique is a
// programmer error and aborts the process.
func (u *Unique[T]) Deref() *T {
	if u.ptr == nil {
		xpferr.Fatal("pointer.Unique.Deref", xpferr.New(xpferr.ProgrammerError, "deref of empty Unique"))
	}
	return u.ptr
}

// Take releases ownership back to the caller as a raw pointer, resetting u
// to empty. Returns nil if u was already empty.
func (u *Unique[T]) Take() *T {
	p := u.ptr
	u.ptr = nil
	return p
}

// Reset drops the owned value, if any, leaving u empty.
func (u *Unique[T]) Reset() {
	u.ptr = nil
}

// Move transfers ownership from u to a new Unique[T], leaving u empty.
// This is the only sanctioned way to relocate a Unique -- copying the
// struct directly would leave two owners of the same pointer, so callers
// should always use Move instead of an assignment when transferring
// ownership.
func (u *Unique[T]) Move() Unique[T] {
	p := u.ptr
	u.ptr = nil
	return Unique[T]{ptr: p}
}

// DowncastUniqueMove consumes u and yields a Unique[U] if the dynamic type
// stored behind T is assignment-compatible with U; otherwise u is reset to
// empty and the returned Unique[U] is empty. This is the destructive form:
// u no longer owns anything after the call regardless of outcome.
//
// T is typically an interface (the base type); U is the narrower target
// type being downcast to. The type assertion is performed against the
// boxed dynamic value, which is the only way Go generics can express a
// runtime downcast across distinct type parameters.
func DowncastUniqueMove[U any, T any](u *Unique[T]) Unique[U] {
	p := u.ptr
	u.ptr = nil
	if p == nil {
		return Unique[U]{}
	}
	if casted, ok := any(*p).(U); ok {
		return Unique[U]{ptr: &casted}
	}
	return Unique[U]{}
}
