package pool

func (p *Pool) runWorker(w *worker) {
	defer p.poolRundown.Release()

	for {
		w.sig.Wait()

		n := 0
		for n < p.config.MaxWorkPerWorker {
			item, ok := w.fifo.Pop()
			if !ok {
				break
			}
			p.dispatch(item)
			n++
		}

		if !w.fifo.IsEmpty() {
			// Backlog remains beyond this wake's batch limit; keep
			// draining without waiting for the broker's next push.
			w.sig.Set()
			continue
		}

		if p.st.load() != stateRunning {
			select {
			case <-p.brokerDone:
				// The broker has finished its final pass and this
				// worker's FIFO is empty: nothing more can ever arrive.
				return
			default:
				// The broker may still be shutting down; wait for its
				// explicit post-shutdown wake.
			}
		}
	}
}

func (p *Pool) dispatch(item workItem) {
	defer func() {
		if r := recover(); r != nil {
			p.config.Diagnostics.OnPanicRecovered(r)
		}
	}()

	if p.st.load() == stateRunning {
		item.run(item.arg)
		return
	}
	item.cancel(item.arg)
}
