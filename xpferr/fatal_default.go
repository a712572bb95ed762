//go:build !xpf_kernel

package xpferr

// Fatal terminates the process for a ProgrammerError: release without a
// matching acquire, deref of an empty smart pointer, push of a nil node.
// These are bugs in the caller, not recoverable conditions, so Fatal never
// returns.
func Fatal(op string, cause error) {
	panic(Wrap(ProgrammerError, op, cause))
}
