// Package runtimetune derives container-aware defaults (GOMAXPROCS,
// GOMEMLIMIT, and the worker pool's default worker count) so that a xpf
// process behaves sanely under a cgroup CPU/memory limit rather than the
// host's full physical capacity.
package runtimetune

import (
	"runtime"
	"sync"

	"github.com/KimMachineGun/automemlimit/memlimit"
	"go.uber.org/automaxprocs/maxprocs"
)

var once sync.Once

// Tune right-sizes GOMAXPROCS and GOMEMLIMIT for the current cgroup, if
// any. It is idempotent and safe to call from multiple goroutines or
// multiple times across a process's lifetime; only the first call has any
// effect.
//
// Failures are intentionally swallowed: a process that cannot read its
// cgroup limits (e.g. not running in a container) should run with Go's
// ordinary defaults, not fail to start.
func Tune() {
	once.Do(func() {
		_, _ = maxprocs.Set()
		_, _ = memlimit.SetGoMemLimitWithOpts(
			memlimit.WithRatio(0.9),
			memlimit.WithProvider(memlimit.ApplyFallback(
				memlimit.FromCgroup,
				memlimit.FromSystem,
			)),
		)
	})
}

// DefaultWorkerCount returns the pool's default worker count: twice
// GOMAXPROCS, which after Tune reflects the cgroup's CPU quota rather than
// the host's physical core count.
func DefaultWorkerCount() int {
	n := 2 * runtime.GOMAXPROCS(0)
	if n < 1 {
		n = 1
	}
	return n
}
