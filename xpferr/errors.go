// Package xpferr defines the error taxonomy shared by every xpf package.
//
// Errors are distinguished by Kind rather than by Go type, so callers match
// with errors.Is against the package-level sentinels instead of type
// switches. Nothing in this package panics except Fatal, which is reserved
// for bugs the caller cannot recover from (see fatal_default.go).
package xpferr

import "fmt"

// Kind classifies an *Error. Kinds are result codes, not exceptions: every
// non-fatal failure in xpf is returned, never thrown.
type Kind int

const (
	// ResourceUnavailable indicates an OS-level primitive (allocation,
	// signal, mutex) could not be created.
	ResourceUnavailable Kind = iota + 1
	// InvalidArg indicates a nil run/cancel function, or an unregister
	// call against an unknown listener id.
	InvalidArg
	// PoolNotRunning indicates Submit was called on a pool still in the
	// New state.
	PoolNotRunning
	// PoolRunningDown indicates Submit was called on a pool that has
	// begun or completed Rundown.
	PoolRunningDown
	// BusRunningDown indicates Register or Dispatch was called after
	// Bus.Rundown began.
	BusRunningDown
	// ProgrammerError marks a bug: release without a matching acquire,
	// dereference of an empty smart pointer, push of a nil node. Values
	// of this Kind are never returned to a caller — they are passed to
	// Fatal instead.
	ProgrammerError
)

// String renders k for diagnostics and %v formatting.
func (k Kind) String() string {
	switch k {
	case ResourceUnavailable:
		return "resource-unavailable"
	case InvalidArg:
		return "invalid-arg"
	case PoolNotRunning:
		return "pool-not-running"
	case PoolRunningDown:
		return "pool-running-down"
	case BusRunningDown:
		return "bus-running-down"
	case ProgrammerError:
		return "programmer-error"
	default:
		return "unknown"
	}
}

// Error is the concrete error type used throughout xpf. Op names the
// failing operation (e.g. "pool.Submit"); Err, if non-nil, is the
// underlying cause.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// Error implements error.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("xpf: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("xpf: %s: %s", e.Op, e.Kind)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind. This lets
// callers write errors.Is(err, xpferr.ErrPoolRunningDown) without caring
// about Op or the wrapped cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New constructs an *Error for op with no wrapped cause.
func New(kind Kind, op string) *Error {
	return &Error{Kind: kind, Op: op}
}

// Wrap constructs an *Error for op wrapping cause.
func Wrap(kind Kind, op string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Err: cause}
}

// Sentinel values for use with errors.Is. Each carries only a Kind — the
// Op recorded on the concrete error returned by a call still names the
// operation that failed.
var (
	ErrResourceUnavailable = &Error{Kind: ResourceUnavailable}
	ErrInvalidArg          = &Error{Kind: InvalidArg}
	ErrPoolNotRunning      = &Error{Kind: PoolNotRunning}
	ErrPoolRunningDown     = &Error{Kind: PoolRunningDown}
	ErrBusRunningDown      = &Error{Kind: BusRunningDown}
)
