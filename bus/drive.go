package bus

import "sync"

// Drive dispatches every event in events against bus concurrently, using
// policy for each, and returns the per-event error in the same order.
// It mirrors the original test harness's pattern of driving a single bus
// with many concurrent dispatches under one policy at a time, used by
// this package's own tests to replay a concurrent multi-policy soak.
func Drive(bus *Bus, policy DispatchPolicy, events []Event) []error {
	errs := make([]error, len(events))

	var wg sync.WaitGroup
	wg.Add(len(events))
	for i, event := range events {
		go func(i int, event Event) {
			defer wg.Done()
			errs[i] = bus.Dispatch(event, policy)
		}(i, event)
	}
	wg.Wait()

	return errs
}
