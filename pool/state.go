package pool

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// state is a lock-free state machine for the pool's lifecycle: a single
// padded atomic word, transitioned by compare-and-swap, with no mutex on
// the hot path.
type state struct {
	_ cpu.CacheLinePad
	v atomic.Uint32
	_ cpu.CacheLinePad
}

type stateValue uint32

const (
	stateNew stateValue = iota
	stateRunning
	stateStopping
	stateStopped
)

func (s stateValue) String() string {
	switch s {
	case stateNew:
		return "New"
	case stateRunning:
		return "Running"
	case stateStopping:
		return "Stopping"
	case stateStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

func newState() *state {
	s := &state{}
	s.v.Store(uint32(stateNew))
	return s
}

func (s *state) load() stateValue {
	return stateValue(s.v.Load())
}

func (s *state) tryTransition(from, to stateValue) bool {
	return s.v.CompareAndSwap(uint32(from), uint32(to))
}
