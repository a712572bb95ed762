// Package rundown implements the xpf rundown barrier: a one-shot gate that
// blocks new acquisitions and waits for outstanding ones to drain. It is
// the primitive every other blocking component (pool, bus) uses to
// implement its own graceful shutdown.
//
// Barrier has two build-time implementations selected by the xpf_kernel
// build tag: the default, used for every user-mode target, blocks
// WaitForRelease on a channel close; the xpf_kernel variant spins on the
// same atomic word instead, since a condition-variable-style wait has no
// equivalent in a Windows-kernel environment without an OS scheduler
// underneath it. Both satisfy the same concurrency proof obligation: a
// successful Acquire followed by a concurrent WaitForRelease must still
// allow the matching Release to complete and eventually unblock the
// waiter.
package rundown

const (
	closedBit = uint64(1) << 63
	countMask = closedBit - 1
)

// Guard scopes an acquisition of a Barrier, guaranteeing release on all
// exit paths when used with defer. Construct with NewGuard.
type Guard struct {
	b        *Barrier
	acquired bool
}

// NewGuard attempts to acquire b, capturing whether the acquisition
// succeeded.
func NewGuard(b *Barrier) Guard {
	return Guard{b: b, acquired: b.Acquire()}
}

// IsRundownAcquired reports whether the guard's acquisition succeeded.
func (g *Guard) IsRundownAcquired() bool {
	return g.acquired
}

// Release releases the guard's acquisition, if it succeeded. It is safe
// to call Release more than once; only the first call has any effect.
func (g *Guard) Release() {
	if g.acquired {
		g.b.Release()
		g.acquired = false
	}
}
