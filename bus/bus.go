// Package bus implements the xpf typed event bus: a listener registry
// built on top of a worker pool, delivering events synchronously,
// asynchronously, or adaptively, with listener de-registration safe
// against concurrent dispatch.
package bus

import (
	"sync"

	"github.com/AndreiMuntea/xpf/internal/xid"
	"github.com/AndreiMuntea/xpf/pointer"
	"github.com/AndreiMuntea/xpf/pool"
	"github.com/AndreiMuntea/xpf/rundown"
	"github.com/AndreiMuntea/xpf/xpferr"
)

// Event is the payload delivered to listeners. ID is the type
// discriminator used for listener matching; listener implementations
// filter themselves by ID. Event types are expected to expose a
// package-level ID constant listeners can compare against.
type Event struct {
	ID      xid.ID
	Payload any
}

// Listener receives events the bus dispatches to it. A dispatch whose
// listener snapshot is taken after Unregister(listenerID) returns does not
// invoke the listener; a dispatch whose snapshot was taken earlier
// (including an Async dispatch still queued in the pool) may still invoke
// OnEvent after Unregister has returned. bus is a non-owning handle: a
// listener that wishes to
// re-dispatch must use it directly rather than store a strong reference
// back to the Bus.
type Listener interface {
	OnEvent(event Event, bus *Bus)
}

// DispatchPolicy selects how Dispatch delivers an event to listeners.
type DispatchPolicy int

const (
	// Sync invokes every matching listener on the calling goroutine.
	Sync DispatchPolicy = iota
	// Async enqueues a pool item that invokes listeners against the
	// snapshot taken at Dispatch time.
	Async
	// Auto lets the bus choose. This implementation always resolves Auto
	// to Async -- a single deterministic rule rather than a runtime
	// heuristic.
	Auto
)

// Config configures a Bus. A nil Config uses the documented defaults.
type Config struct {
	// Pool configures the bus's internal worker pool, used for Async (and
	// Auto) dispatch. Defaults as per pool.Config.
	Pool *pool.Config
}

type listenerRef struct {
	id     xid.ID
	shared pointer.Shared[Listener]
}

// Bus is a typed event bus. Construct with New; call Start before the
// first Dispatch and Rundown exactly once when done.
type Bus struct {
	p *pool.Pool

	mu        sync.RWMutex
	listeners map[xid.ID]pointer.Shared[Listener]

	// rundown gates Register and Dispatch exactly the way pool's
	// submitGate gates Submit: open for the bus's whole lifetime,
	// WaitForRelease in Rundown blocks until every in-flight Register or
	// Dispatch call has released it.
	rundown *rundown.Barrier
}

// New constructs a Bus with its own internal worker pool.
func New(config *Config) *Bus {
	var poolConfig *pool.Config
	if config != nil {
		poolConfig = config.Pool
	}

	return &Bus{
		p:         pool.NewPool(poolConfig),
		listeners: make(map[xid.ID]pointer.Shared[Listener]),
		rundown:   rundown.New(),
	}
}

// Start starts the bus's internal pool. It must be called before the
// first Dispatch with the Async or Auto policy.
func (b *Bus) Start() error {
	return b.p.Start()
}

// Register adds listener to the bus, returning a fresh listener id unique
// over the bus's lifetime. Register fails with bus-running-down if
// Rundown has begun.
func (b *Bus) Register(listener Listener) (xid.ID, error) {
	guard := rundown.NewGuard(b.rundown)
	if !guard.IsRundownAcquired() {
		return xid.Nil, xpferr.New(xpferr.BusRunningDown, "bus.Register")
	}
	defer guard.Release()

	id := xid.New()
	shared := pointer.NewShared[Listener](listener)

	b.mu.Lock()
	b.listeners[id] = shared
	b.mu.Unlock()

	return id, nil
}

// Unregister removes the listener with the given id. After Unregister
// returns, no dispatch whose snapshot was taken after this call may
// invoke that listener; a dispatch whose snapshot was already taken
// still holds its own Shared clone and completes normally.
// Unregister fails with invalid-arg if id is not currently registered.
func (b *Bus) Unregister(id xid.ID) error {
	b.mu.Lock()
	shared, ok := b.listeners[id]
	if ok {
		delete(b.listeners, id)
	}
	b.mu.Unlock()

	if !ok {
		return xpferr.New(xpferr.InvalidArg, "bus.Unregister")
	}
	shared.Reset()
	return nil
}

// Dispatch delivers event to every currently registered listener
// according to policy, against a snapshot of the listener set taken
// under lock. Dispatch fails with bus-running-down if Rundown has
// begun; the event's ownership is still released in that case, so the
// caller never leaks it.
func (b *Bus) Dispatch(event Event, policy DispatchPolicy) error {
	guard := rundown.NewGuard(b.rundown)
	if !guard.IsRundownAcquired() {
		return xpferr.New(xpferr.BusRunningDown, "bus.Dispatch")
	}

	snapshot := b.snapshot()

	switch b.resolvePolicy(policy) {
	case Sync:
		defer guard.Release()
		invokeAll(snapshot, event, b)
		return nil

	default: // Async
		err := b.p.Submit(
			func(any) {
				defer guard.Release()
				invokeAll(snapshot, event, b)
			},
			func(any) {
				defer guard.Release()
				releaseAll(snapshot)
			},
			nil,
		)
		if err != nil {
			guard.Release()
			releaseAll(snapshot)
			return err
		}
		return nil
	}
}

// resolvePolicy decides what Auto means: always async.
func (b *Bus) resolvePolicy(policy DispatchPolicy) DispatchPolicy {
	if policy == Auto {
		return Async
	}
	return policy
}

// Rundown closes the bus to further Register/Dispatch calls, waits for
// every in-flight call to finish, runs down the internal pool, and then
// clears the listener map.
func (b *Bus) Rundown() {
	b.rundown.WaitForRelease()
	b.p.Rundown()

	b.mu.Lock()
	for id, shared := range b.listeners {
		shared.Reset()
		delete(b.listeners, id)
	}
	b.mu.Unlock()
}

func (b *Bus) snapshot() []listenerRef {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]listenerRef, 0, len(b.listeners))
	for id, shared := range b.listeners {
		out = append(out, listenerRef{id: id, shared: shared.Clone()})
	}
	return out
}

func invokeAll(snapshot []listenerRef, event Event, bus *Bus) {
	for i := range snapshot {
		listener := snapshot[i].shared.Deref()
		listener.OnEvent(event, bus)
		snapshot[i].shared.Reset()
	}
}

func releaseAll(snapshot []listenerRef) {
	for i := range snapshot {
		snapshot[i].shared.Reset()
	}
}
