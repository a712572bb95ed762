//go:build xpf_kernel

package signal

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Signal is the kernel-mode rendition of the waitable event: the same
// manual/auto-reset contract as the default build, but Wait spins on a
// plain atomic flag instead of parking on a channel, since a
// Windows-kernel target has no goroutine scheduler to block a channel
// receive on.
//
// The zero value is not usable; construct one with New. A Signal is safe
// for concurrent use by multiple goroutines.
type Signal struct {
	manualReset bool

	_         cpu.CacheLinePad
	signalled atomic.Bool // manual-reset: true while signalled
	token     atomic.Bool // auto-reset: true while a release is pending
	_         cpu.CacheLinePad
}

// New constructs a Signal. If manualReset is true, Set releases every
// current and future waiter until Reset is called; otherwise Set releases
// at most one waiter and Reset is a no-op.
func New(manualReset bool) *Signal {
	return &Signal{manualReset: manualReset}
}

// Set puts the signal into the signalled state. For a manual-reset signal
// this releases every waiter currently blocked in Wait, and every future
// Wait returns immediately until Reset is called. For an auto-reset signal
// this releases exactly one waiter (the next to call Wait, or one already
// blocked); additional calls to Set while no waiter has yet consumed the
// pending release are coalesced into that same single release.
func (s *Signal) Set() {
	if s.manualReset {
		s.signalled.Store(true)
		return
	}
	s.token.Store(true)
}

// Reset puts a manual-reset signal back into the not-signalled state. It
// is a no-op for an auto-reset signal, matching the source contract.
func (s *Signal) Reset() {
	if !s.manualReset {
		return
	}
	s.signalled.Store(false)
}

// Wait blocks until the signal is set. For auto-reset, the caller that
// returns from Wait is guaranteed to be the one that consumed the single
// pending release -- exactly one Wait call returns per Set call, with no
// ordering guarantee among competing waiters.
func (s *Signal) Wait() {
	if s.manualReset {
		for !s.signalled.Load() {
			runtime.Gosched()
		}
		return
	}

	for !s.token.CompareAndSwap(true, false) {
		runtime.Gosched()
	}
}
