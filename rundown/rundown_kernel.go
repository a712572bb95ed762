//go:build xpf_kernel

package rundown

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/AndreiMuntea/xpf/xpferr"
)

// Barrier is the kernel-mode rendition of the rundown barrier: the same
// open/closed flag packed into a single atomic word as the default build,
// but WaitForRelease spins on that word instead of blocking on a channel.
// A Windows-kernel target has no goroutine scheduler to park a blocked
// channel receive on, so the wait is expressed the way the original
// RundownProtection does on that target: a spin that reloads the word
// until the count drains to zero, yielding the processor between reads.
//
// The zero value is not usable; construct one with New.
type Barrier struct {
	_    cpu.CacheLinePad
	word atomic.Uint64
	_    cpu.CacheLinePad
}

// New constructs an open Barrier with a zero count.
func New() *Barrier {
	return &Barrier{}
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
		if b.word.CompareAndSwap(cur, cur-1) {
			return
		}
	}
}

// WaitForRelease closes the barrier -- permanently, for the lifetime of
// the instance -- then spins until every previously successful Acquire
// has a matching Release. Once WaitForRelease has returned, Acquire
// returns false forever.
func (b *Barrier) WaitForRelease() {
	for {
		cur := b.word.Load()
		if cur&closedBit != 0 {
			break
		}
		if b.word.CompareAndSwap(cur, cur|closedBit) {
			break
		}
	}

	for b.word.Load()&countMask != 0 {
		runtime.Gosched()
	}
}
