// Package queue implements the xpf lock-free intake stack and the
// two-lock (Michael–Scott style) FIFO queue that sit beneath the worker
// pool.
package queue

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

type intakeNode[T any] struct {
	value T
	next  atomic.Pointer[intakeNode[T]]
}

// Intake is a lock-free, single-word-linearizable LIFO stack used as a
// work mailbox: Push is wait-free modulo CAS retry, FlushAll is a single
// atomic exchange. Intake owns the nodes it allocates internally; callers
// only ever see values, never nodes.
//
// The zero value is ready to use.
type Intake[T any] struct {
	_    cpu.CacheLinePad
	head atomic.Pointer[intakeNode[T]]
	_    cpu.CacheLinePad
}

// Push adds value to the intake. Safe for any number of concurrent
// pushers.
func (q *Intake[T]) Push(value T) {
	n := &intakeNode[T]{value: value}
	for {
		head := q.head.Load()
		n.next.Store(head)
		if q.head.CompareAndSwap(head, n) {
			return
		}
	}
}

// IsEmpty reports whether the intake currently holds nothing. The result
// is advisory under concurrent pushers: it is stale the instant another
// goroutine pushes.
func (q *Intake[T]) IsEmpty() bool {
	return q.head.Load() == nil
}

// FlushAll atomically detaches the entire chain and returns its values in
// LIFO order (most recently pushed first). Concurrent pushers racing with
// FlushAll either land in the returned chain or in whatever is pushed
// after the exchange -- never both, and never dropped.
func (q *Intake[T]) FlushAll() []T {
	head := q.head.Swap(nil)
	var out []T
	for n := head; n != nil; n = n.next.Load() {
		out = append(out, n.value)
	}
	return out
}
