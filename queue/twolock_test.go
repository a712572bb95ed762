package queue_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndreiMuntea/xpf/queue"
)

func TestTwoLockQueue_FIFOOrder(t *testing.T) {
	q := queue.NewTwoLockQueue[int]()
	q.Push(1)
	q.Push(2)
	q.Push(3)

	v, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = q.Pop()
	require.True(t, ok)
	assert.Equal(t, 2, v)

	v, ok = q.Pop()
	require.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = q.Pop()
	assert.False(t, ok)
}

func TestTwoLockQueue_PopEmpty(t *testing.T) {
	q := queue.NewTwoLockQueue[int]()
	_, ok := q.Pop()
	assert.False(t, ok)
	assert.True(t, q.IsEmpty())
}

func TestTwoLockQueue_FlushAllReturnsFIFOOrderAndResets(t *testing.T) {
	q := queue.NewTwoLockQueue[int]()
	for i := 0; i < 10; i++ {
		q.Push(i)
	}

	got := q.FlushAll()
	for i, v := range got {
		assert.Equal(t, i, v)
	}

	assert.True(t, q.IsEmpty())
	_, ok := q.Pop()
	assert.False(t, ok)
}

// TestTwoLockQueue_StressPushThenPop stresses the queue with 10
// goroutines each running 10,000 iterations of push(x); pop(); the
// queue is empty at the end.
func TestTwoLockQueue_StressPushThenPop(t *testing.T) {
	const goroutines = 10
	const iterations = 10000

	q := queue.NewTwoLockQueue[int]()

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(g int) {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				x := g*iterations + i
				q.Push(x)

				var v int
				var ok bool
				for !ok {
					v, ok = q.Pop()
				}
				assert.True(t, v >= 0)
			}
		}(g)
	}
	wg.Wait()

	assert.True(t, q.IsEmpty())
	_, ok := q.Pop()
	assert.False(t, ok)
}
