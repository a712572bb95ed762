//go:build !xpf_kernel

package rundown

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/AndreiMuntea/xpf/xpferr"
)

// Barrier is a counter with an open/closed flag packed into a single
// atomic word (flag in the high bit, count in the rest), so Acquire,
// Release, and WaitForRelease are all race-free compare-and-swap loops
// with no mutex. WaitForRelease itself blocks on a channel close, the
// idiomatic-Go way to park a goroutine until an event fires.
//
// The zero value is not usable; construct one with New.
type Barrier struct {
	_         cpu.CacheLinePad
	word      atomic.Uint64
	_         cpu.CacheLinePad
	closeOnce sync.Once
	done      chan struct{}
}

// New constructs an open Barrier with a zero count.
func New() *Barrier {
	return &Barrier{done: make(chan struct{})}
}

// Acquire attempts to acquire the barrier. While open, this always
// succeeds and increments the count; Acquire may be called recursively by
// the same caller with no special handling -- this is not a lock. Once
// closed, Acquire always returns false and the count is left unchanged.
func (b *Barrier) Acquire() bool {
	for {
		cur := b.word.Load()
		if cur&closedBit != 0 {
			return false
		}
		if b.word.CompareAndSwap(cur, cur+1) {
			return true
		}
	}
}

// Release decrements the count. Calling Release without a matching
// successful Acquire is a programmer error and aborts the process -- the
// count must never go below zero.
func (b *Barrier) Release() {
	for {
		cur := b.word.Load()
		if cur&countMask == 0 {
			xpferr.Fatal("rundown.Barrier.Release", xpferr.New(xpferr.ProgrammerError, "release without a matching acquire"))
			return
		}
		next := cur - 1
		if b.word.CompareAndSwap(cur, next) {
			if next&closedBit != 0 && next&countMask == 0 {
				b.signalDrained()
			}
			return
		}
	}
}

// WaitForRelease closes the barrier -- permanently, for the lifetime of
// the instance -- then blocks until every previously successful Acquire
// has a matching Release. Once WaitForRelease has returned, Acquire
// returns false forever.
func (b *Barrier) WaitForRelease() {
	for {
		cur := b.word.Load()
		if cur&closedBit != 0 {
			break
		}
		next := cur | closedBit
		if b.word.CompareAndSwap(cur, next) {
			if next&countMask == 0 {
				b.signalDrained()
			}
			break
		}
	}
	<-b.done
}

func (b *Barrier) signalDrained() {
	b.closeOnce.Do(func() { close(b.done) })
}
