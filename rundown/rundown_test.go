package rundown_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndreiMuntea/xpf/rundown"
	"github.com/AndreiMuntea/xpf/signal"
)

func TestBarrier_AcquireRecursive(t *testing.T) {
	b := rundown.New()

	for i := 0; i < 100; i++ {
		require.True(t, b.Acquire())
	}
	for i := 0; i < 100; i++ {
		b.Release()
	}
}

func TestBarrier_AcquireRecursiveViaGuard(t *testing.T) {
	b := rundown.New()

	guard1 := rundown.NewGuard(b)
	require.True(t, guard1.IsRundownAcquired())
	defer guard1.Release()

	guard2 := rundown.NewGuard(b)
	require.True(t, guard2.IsRundownAcquired())
	defer guard2.Release()
}

func TestBarrier_WaitForReleaseBlocksAcquisitions(t *testing.T) {
	b := rundown.New()
	isThreadAwake := signal.New(true)

	var runDownReleased bool
	var mu sync.Mutex

	for i := 0; i < 100; i++ {
		require.True(t, b.Acquire())
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		isThreadAwake.Set()
		b.WaitForRelease()
		mu.Lock()
		runDownReleased = true
		mu.Unlock()
	}()

	isThreadAwake.Wait()

	for i := 0; i < 100; i++ {
		assert.False(t, b.Acquire(), "acquisitions must be blocked once WaitForRelease has begun")
	}

	for i := 0; i < 100; i++ {
		mu.Lock()
		released := runDownReleased
		mu.Unlock()
		assert.False(t, released)
		b.Release()
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WaitForRelease should have returned once the count drained")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, runDownReleased)
}

func TestBarrier_WaitForReleaseWithNoAcquisitions(t *testing.T) {
	b := rundown.New()
	b.WaitForRelease()

	for i := 0; i < 100; i++ {
		assert.False(t, b.Acquire())
	}
}

func TestBarrier_ReleaseWithoutAcquireIsFatal(t *testing.T) {
	b := rundown.New()
	assert.Panics(t, func() { b.Release() })
}

func TestBarrier_ConcurrentAcquireReleaseDrainsToZero(t *testing.T) {
	b := rundown.New()
	const goroutines = 50

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			if b.Acquire() {
				defer b.Release()
				time.Sleep(time.Millisecond)
			}
		}()
	}
	wg.Wait()

	b.WaitForRelease()
	assert.False(t, b.Acquire())
}
