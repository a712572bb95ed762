// Package pool implements the xpf worker pool: a broker goroutine fans
// submitted work out to per-worker FIFOs, distinguishing completed from
// cancelled work per the pool's lifecycle state.
package pool

import (
	"github.com/AndreiMuntea/xpf/queue"
	"github.com/AndreiMuntea/xpf/rundown"
	"github.com/AndreiMuntea/xpf/signal"
	"github.com/AndreiMuntea/xpf/xpferr"
)

type workItem struct {
	run    Func
	cancel Func
	arg    any
}

type worker struct {
	fifo *queue.TwoLockQueue[workItem]
	sig  *signal.Signal
}

// Pool is a fixed-size goroutine pool fed by two intake queues -- one for
// external submitters, one for work submitted recursively from within a
// running work item -- so that worker-as-producer never contends with
// external producers on the same queue.
//
// A Pool is created in the New state, moved to Running by Start, to
// Stopping and then Stopped by Rundown. Construct with NewPool.
type Pool struct {
	config Config

	st *state

	intakeExternal queue.Intake[workItem]
	intakeInternal queue.Intake[workItem]
	notEmpty       *signal.Signal

	workers []*worker

	// submitGate gates pushes into the intake queues. It is open for the
	// whole Running lifetime; Rundown closes it via WaitForRelease, which
	// blocks until every Submit call that had already acquired it has
	// finished pushing -- closing the race between an in-flight Submit
	// and the broker's final drain pass (see submit, below).
	submitGate *rundown.Barrier

	// poolRundown is acquired by the broker and every worker for their
	// entire goroutine lifetime, and released when they exit. Rundown
	// waits on it to know the pool has fully stopped, and a second,
	// concurrent Rundown call waits on the same barrier rather than
	// repeating the shutdown protocol.
	poolRundown *rundown.Barrier

	brokerDone chan struct{}
}

// NewPool constructs a Pool in the New state. config may be nil, using
// the documented defaults. NewPool panics if config requests an
// impossible configuration (a negative worker count) -- see
// resolveConfig.
func NewPool(config *Config) *Pool {
	resolved := resolveConfig(config)

	p := &Pool{
		config:      resolved,
		st:          newState(),
		notEmpty:    signal.New(false),
		submitGate:  rundown.New(),
		poolRundown: rundown.New(),
		brokerDone:  make(chan struct{}),
	}

	p.workers = make([]*worker, resolved.WorkerCount)
	for i := range p.workers {
		p.workers[i] = &worker{
			fifo: queue.NewTwoLockQueue[workItem](),
			sig:  signal.New(false),
		}
	}

	return p
}

// Start transitions the pool from New to Running, launching the broker
// and worker goroutines. Calling Start more than once, or after Rundown
// has begun, returns an error and has no further effect.
func (p *Pool) Start() error {
	if !p.st.tryTransition(stateNew, stateRunning) {
		return xpferr.New(xpferr.PoolNotRunning, "pool.Start")
	}

	for _, w := range p.workers {
		p.poolRundown.Acquire()
		go p.runWorker(w)
	}

	p.poolRundown.Acquire()
	go p.runBroker()

	p.config.Diagnostics.OnStarted()
	return nil
}

// Submit enqueues a work item from an external caller. run and cancel must
// both be non-nil; Submit returns invalid-arg otherwise, without touching
// arg. Exactly one of run or cancel is eventually invoked with arg (never
// both, never neither): run if the pool is Running when the item reaches a
// worker, cancel otherwise -- including synchronously, within this call,
// if the pool is already Stopping or Stopped.
func (p *Pool) Submit(run, cancel Func, arg any) error {
	return p.submit(&p.intakeExternal, run, cancel, arg)
}

// SubmitFromWithinWork enqueues a work item submitted recursively by code
// running inside a work item's run function. It is identical to Submit
// except it uses the pool's internal intake queue, so it never contends
// with external Submit callers for the same queue.
func (p *Pool) SubmitFromWithinWork(run, cancel Func, arg any) error {
	return p.submit(&p.intakeInternal, run, cancel, arg)
}

func (p *Pool) submit(q *queue.Intake[workItem], run, cancel Func, arg any) error {
	if run == nil || cancel == nil {
		return xpferr.New(xpferr.InvalidArg, "pool.Submit")
	}

	switch p.st.load() {
	case stateNew:
		return xpferr.New(xpferr.PoolNotRunning, "pool.Submit")

	case stateStopping, stateStopped:
		cancel(arg)
		return xpferr.New(xpferr.PoolRunningDown, "pool.Submit")
	}

	guard := rundown.NewGuard(p.submitGate)
	if !guard.IsRundownAcquired() {
		cancel(arg)
		return xpferr.New(xpferr.PoolRunningDown, "pool.Submit")
	}
	defer guard.Release()

	q.Push(workItem{run: run, cancel: cancel, arg: arg})
	p.notEmpty.Set()
	return nil
}

// Rundown transitions the pool through Stopping to Stopped. The submit
// gate closes first so no further work is accepted; the broker and
// workers are woken and run their final drain pass, delivering every
// remaining item -- including anything still in the broker's local
// batch -- to its cancel function; Rundown blocks until every worker and
// the broker have exited.
//
// Rundown is idempotent: a concurrent or repeated call blocks until the
// first caller's shutdown completes, then returns.
func (p *Pool) Rundown() {
	if p.st.tryTransition(stateNew, stateStopped) {
		return
	}

	if p.st.tryTransition(stateRunning, stateStopping) {
		p.config.Diagnostics.OnStopping()
		p.shutdown()
		p.st.v.Store(uint32(stateStopped))
		p.config.Diagnostics.OnStopped()
		return
	}

	// Someone else is already running this pool down, or already has.
	p.poolRundown.WaitForRelease()
}

func (p *Pool) shutdown() {
	p.submitGate.WaitForRelease()

	p.notEmpty.Set()
	for _, w := range p.workers {
		w.sig.Set()
	}

	<-p.brokerDone

	// The broker has finished its final flush; every item it will ever
	// deliver is now in some worker's FIFO. Cancel whatever is still
	// queued there, so a worker busy in a long-running item does not hold
	// back the cancellation of the items behind it.
	for _, w := range p.workers {
		for {
			item, ok := w.fifo.Pop()
			if !ok {
				break
			}
			p.dispatch(item)
		}
	}

	// Wake every worker once more so each observes Stopping with nothing
	// left to arrive.
	for _, w := range p.workers {
		w.sig.Set()
	}

	p.poolRundown.WaitForRelease()
}
