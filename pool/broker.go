package pool

func (p *Pool) runBroker() {
	defer p.poolRundown.Release()
	defer close(p.brokerDone)

	next := p.roundRobin()

	for {
		p.notEmpty.Wait()

		p.drainOnce(next)

		if p.st.load() != stateRunning {
			// One more pass: anything pushed by a Submit that had
			// already acquired submitGate before it closed is guaranteed
			// to be visible by now (submitGate.WaitForRelease, called
			// here as well as in Pool.shutdown, only returns after that
			// push completes).
			p.submitGate.WaitForRelease()
			p.drainOnce(next)
			return
		}
	}
}

// drainOnce flushes both intake queues once and distributes every item
// across the workers in round-robin order. It guards against starving
// one submitter by flushing external before internal and interleaving
// their items rather than draining one queue completely before the
// other.
func (p *Pool) drainOnce(next func() *worker) {
	external := p.intakeExternal.FlushAll()
	reverseInPlace(external) // FlushAll is LIFO; restore arrival order

	internal := p.intakeInternal.FlushAll()
	reverseInPlace(internal)

	for _, item := range interleave(external, internal) {
		w := next()
		w.fifo.Push(item)
		w.sig.Set()
	}
}

func (p *Pool) roundRobin() func() *worker {
	idx := 0
	return func() *worker {
		w := p.workers[idx%len(p.workers)]
		idx++
		return w
	}
}

func reverseInPlace[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func interleave[T any](a, b []T) []T {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make([]T, 0, len(a)+len(b))
	for len(a) > 0 || len(b) > 0 {
		if len(a) > 0 {
			out = append(out, a[0])
			a = a[1:]
		}
		if len(b) > 0 {
			out = append(out, b[0])
			b = b[1:]
		}
	}
	return out
}
