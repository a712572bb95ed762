// Package signal implements a named waitable event with manual- and
// auto-reset modes, matching the contract of xpf's Signal primitive.
// Waits are uninterruptible and fairness among waiters is unspecified, as
// permitted by the source contract.
//
// Signal has two build-time implementations selected by the xpf_kernel
// build tag: the default, used for every user-mode target, parks waiters
// on a channel (closed-channel broadcast for manual-reset, a
// buffered-capacity-1 channel as a coalescing token for auto-reset); the
// xpf_kernel variant spins on plain atomics instead, since channel
// receives assume a goroutine scheduler a Windows-kernel target does not
// have underneath it.
package signal
