package pool

import "github.com/AndreiMuntea/xpf/internal/runtimetune"

// Func is a work-item callback: run_fn when the pool is Running at
// dispatch time, cancel_fn otherwise. arg is owned by the caller for the
// lifetime of the item.
type Func func(arg any)

// Diagnostics is an optional, off-by-default lifecycle hook. The core
// never logs; Diagnostics exists only so a host that wants lifecycle
// counters can get them without the pool doing any I/O of its own.
type Diagnostics interface {
	OnStarted()
	OnStopping()
	OnStopped()
	OnPanicRecovered(recovered any)
}

// Config configures a Pool. A nil Config, or a zero-valued field within
// one, uses the documented default.
type Config struct {
	// WorkerCount is the number of worker goroutines. Defaults to
	// internal/runtimetune.DefaultWorkerCount() (twice GOMAXPROCS).
	// Negative values panic at construction -- an impossible
	// configuration, not a runtime-reachable condition.
	WorkerCount int

	// MaxWorkPerWorker bounds how many items a worker drains from its own
	// FIFO per wake before yielding back to wait on its signal again.
	// Defaults to 4.
	MaxWorkPerWorker int

	// Diagnostics, if non-nil, receives lifecycle notifications. Defaults
	// to a no-op.
	Diagnostics Diagnostics
}

const defaultMaxWorkPerWorker = 4

type noopDiagnostics struct{}

func (noopDiagnostics) OnStarted()           {}
func (noopDiagnostics) OnStopping()          {}
func (noopDiagnostics) OnStopped()           {}
func (noopDiagnostics) OnPanicRecovered(any) {}

func resolveConfig(config *Config) Config {
	resolved := Config{
		WorkerCount:      runtimetune.DefaultWorkerCount(),
		MaxWorkPerWorker: defaultMaxWorkPerWorker,
		Diagnostics:      noopDiagnostics{},
	}

	if config != nil {
		if config.WorkerCount != 0 {
			resolved.WorkerCount = config.WorkerCount
		}
		if config.MaxWorkPerWorker != 0 {
			resolved.MaxWorkPerWorker = config.MaxWorkPerWorker
		}
		if config.Diagnostics != nil {
			resolved.Diagnostics = config.Diagnostics
		}
	}

	if resolved.WorkerCount < 1 {
		panic("pool: WorkerCount must be positive")
	}
	if resolved.MaxWorkPerWorker < 1 {
		panic("pool: MaxWorkPerWorker must be positive")
	}

	return resolved
}
