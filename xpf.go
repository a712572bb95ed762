package xpf

import "github.com/AndreiMuntea/xpf/internal/runtimetune"

// Init performs process-wide, idempotent runtime tuning: it right-sizes
// GOMAXPROCS and GOMEMLIMIT for the host's cgroup, if any, so the default
// worker counts chosen by Pool and Bus reflect the container's actual CPU
// quota rather than the physical host's. It is the single init()/shutdown()
// pair this library expects -- Shutdown exists for symmetry with host entry
// points that expect one, but performs no work of its own: every Pool and
// Bus manages its own goroutines and is torn down independently via its
// own Rundown.
//
// Init is optional: a Pool or Bus created without ever calling Init still
// works correctly, just without the container-aware defaults.
func Init() {
	runtimetune.Tune()
}

// Shutdown is the counterpart to Init, provided for symmetry with host
// entry points that call an init/shutdown pair. It does nothing: there is
// no process-wide state for the library to release. Callers should
// instead call Rundown on every Pool and Bus they created.
func Shutdown() {}
