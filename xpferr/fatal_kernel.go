//go:build xpf_kernel

package xpferr

import "runtime"

// Fatal terminates the process for a ProgrammerError. The kernel-mode build
// cannot unwind through panic/recover the way the user-mode runtime does,
// so it traps immediately instead, mirroring the original's
// XPLATFORM_ASSERT hard-stop on the Windows kernel target.
func Fatal(op string, cause error) {
	err := Wrap(ProgrammerError, op, cause)
	runtime.KeepAlive(err)
	*(*int)(nil) = 0
}
