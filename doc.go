// Package xpf is a cross-platform concurrency substrate: ownership-aware
// smart pointers, a rundown barrier, lock-free and two-lock queues, a
// worker pool, and a typed event bus built on top of it.
//
// The library targets user-mode on POSIX-like and Windows-like hosts and
// a kernel-mode variant (the xpf_kernel build tag) on Windows-like hosts;
// it behaves identically across all three with respect to its public
// contracts. It is in-process only: there is no wire protocol, file
// format, or CLI at its boundary.
//
// Subpackages, leaves first:
//
//   - pointer: Unique[T] and Shared[T] smart pointers
//   - signal: manual- and auto-reset waitable events
//   - rundown: the rundown barrier and its scoped guard
//   - queue: the lock-free intake stack and the two-lock FIFO queue
//   - pool: the worker pool
//   - bus: the typed event bus
//   - xpferr: the shared error taxonomy
//
// Call Init once, early in process startup, before creating any Pool or
// Bus that should benefit from container-aware GOMAXPROCS/GOMEMLIMIT
// tuning; it is optional, idempotent, and safe to omit.
package xpf
