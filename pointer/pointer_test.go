package pointer_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndreiMuntea/xpf/pointer"
)

type animal interface {
	Sound() string
}

type dog struct{ name string }

func (d *dog) Sound() string { return d.name + ": woof" }

type cat struct{}

func (c *cat) Sound() string { return "meow" }

func TestUnique_MoveEmptiesSource(t *testing.T) {
	u := pointer.NewUnique(42)
	require.False(t, u.IsEmpty())

	v := u.Move()
	assert.True(t, u.IsEmpty())
	assert.False(t, v.IsEmpty())
	assert.Equal(t, 42, *v.Deref())
}

func TestUnique_DerefEmptyPanics(t *testing.T) {
	var u pointer.Unique[int]
	assert.Panics(t, func() { u.Deref() })
}

func TestUnique_DowncastMoveSuccess(t *testing.T) {
	u := pointer.NewUnique[animal](&dog{name: "Rex"})

	downcast := pointer.DowncastUniqueMove[*dog](&u)
	assert.True(t, u.IsEmpty())
	require.False(t, downcast.IsEmpty())
	assert.Equal(t, "Rex: woof", (*downcast.Deref()).Sound())
}

func TestUnique_DowncastMoveFailureEmptiesSource(t *testing.T) {
	u := pointer.NewUnique[animal](&dog{name: "Rex"})

	downcast := pointer.DowncastUniqueMove[*cat](&u)
	assert.True(t, u.IsEmpty(), "source must be reset even on a failed move-downcast")
	assert.True(t, downcast.IsEmpty())
}

func TestShared_CloneSharesStrongCount(t *testing.T) {
	s1 := pointer.NewShared(42)
	assert.EqualValues(t, 1, s1.StrongCount())

	s2 := s1.Clone()
	assert.EqualValues(t, 2, s1.StrongCount())
	assert.EqualValues(t, 2, s2.StrongCount())

	s2.Reset()
	assert.EqualValues(t, 1, s1.StrongCount())

	s1.Reset()
	assert.EqualValues(t, 0, s1.StrongCount())
}

func TestShared_DerefEmptyPanics(t *testing.T) {
	var s pointer.Shared[int]
	assert.Panics(t, func() { s.Deref() })
}

func TestShared_DowncastCopyPreservesSourceOnSuccess(t *testing.T) {
	s := pointer.NewShared[animal](&dog{name: "Rex"})

	downcast := pointer.DowncastSharedCopy[*dog](&s)
	require.False(t, s.IsEmpty())
	require.False(t, downcast.IsEmpty())
	assert.EqualValues(t, 2, s.StrongCount())
	assert.Equal(t, "Rex: woof", downcast.Deref().Sound())
}

func TestShared_DowncastCopyFailureLeavesSourceUnchanged(t *testing.T) {
	s := pointer.NewShared[animal](&dog{name: "Rex"})

	downcast := pointer.DowncastSharedCopy[*cat](&s)
	assert.False(t, s.IsEmpty(), "source must be unchanged on a failed copy-downcast")
	assert.EqualValues(t, 1, s.StrongCount())
	assert.True(t, downcast.IsEmpty())
}

func TestShared_DowncastMoveFailureResetsSource(t *testing.T) {
	s := pointer.NewShared[animal](&dog{name: "Rex"})

	downcast := pointer.DowncastSharedMove[*cat](&s)
	assert.True(t, s.IsEmpty(), "source must be reset on a failed move-downcast")
	assert.True(t, downcast.IsEmpty())
}

func TestShared_ConcurrentCloneAndResetLeavesCountConsistent(t *testing.T) {
	const aliases = 200

	s := pointer.NewShared(0)
	clones := make([]pointer.Shared[int], aliases)

	var wg sync.WaitGroup
	for i := range clones {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			clones[i] = s.Clone()
		}(i)
	}
	wg.Wait()
	assert.EqualValues(t, aliases+1, s.StrongCount())

	for i := range clones {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			clones[i].Reset()
		}(i)
	}
	wg.Wait()

	s.Reset()
	assert.EqualValues(t, 0, s.StrongCount())
}
