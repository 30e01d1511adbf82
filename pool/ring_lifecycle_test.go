package pool_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ringstore/internal/tracked"
	"github.com/momentics/hioload-ringstore/pool"
)

// TestRingStore_DestructorAccounting checks every element pushed is destroyed
// exactly once over the store's lifetime, teardown included.
func TestRingStore_DestructorAccounting(t *testing.T) {
	l := tracked.NewLedger(nil)
	r := pool.MustNewRingStore[tracked.Item](3)

	r.Emplace(tracked.Construct(l, 1, 2))
	src := tracked.New(l, 8, 9)
	r.Push(src.Move())
	r.Emplace(tracked.Construct(l, 10, 11))

	// Full: the constructor must not run.
	assert.False(t, r.Emplace(tracked.Construct(l, 100, 100)))

	require.True(t, r.Pop())
	r.Emplace(tracked.Construct(l, 1, 3))

	// src was moved-from and still owned here.
	src.Destroy()

	require.NoError(t, r.Close())

	assert.True(t, l.Balanced(), "constructed=%d destroyed=%d", l.Constructed(), l.Destroyed())
	assert.Zero(t, l.Count(tracked.EventRedestroy))
	want := []int{3, tracked.MovedFrom, 17, 21, 4}
	if diff := cmp.Diff(want, l.DestroyedPayloads()); diff != "" {
		t.Errorf("destruction order mismatch (-want +got):\n%s", diff)
	}
}

// popper pops its owning store once from inside Destroy.
type popper struct {
	store     *pool.RingStore[popper]
	id        int
	destroyed *[]int
}

func (p *popper) Destroy() {
	*p.destroyed = append(*p.destroyed, p.id)
	if p.id == 0 {
		p.store.Pop()
	}
}

func TestRingStore_DestroyHookMayPop(t *testing.T) {
	var destroyed []int
	r := pool.MustNewRingStore[popper](3)
	for i := 0; i < 3; i++ {
		id := i
		r.Emplace(func(p *popper) { *p = popper{store: r, id: id, destroyed: &destroyed} })
	}

	require.True(t, r.Pop())
	assert.Equal(t, []int{0, 1}, destroyed)
	assert.Equal(t, 1, r.Len())

	r.Clear()
	assert.Equal(t, []int{0, 1, 2}, destroyed)
	assert.True(t, r.IsEmpty())
	assert.Equal(t, uint64(3), r.Stats().Popped)
}

func TestRingStore_PanickingEmplaceLeavesNoResidue(t *testing.T) {
	type pair struct{ a, b int }
	r := pool.MustNewRingStore[pair](2)

	assert.Panics(t, func() {
		r.Emplace(func(p *pair) {
			p.a = 99
			panic("constructor failed")
		})
	})
	assert.Equal(t, 0, r.Len())

	require.True(t, r.Emplace(nil))
	assert.Equal(t, pair{}, r.MustTop())
}

func TestRingStore_TopUsesClone(t *testing.T) {
	l := tracked.NewLedger(nil)
	r := pool.MustNewRingStore[tracked.Item](2)
	r.Emplace(tracked.Construct(l, 2, 3))

	c, err := r.Top()
	require.NoError(t, err)
	assert.Equal(t, 5, c.Payload())
	assert.Equal(t, 1, l.Count(tracked.EventCopy))

	c.Destroy()
	r.Clear()
	assert.True(t, l.Balanced())
}

func TestRingStore_ClearDestroysOldestFirst(t *testing.T) {
	l := tracked.NewLedger(nil)
	r := pool.MustNewRingStore[tracked.Item](4)
	for i := 0; i < 4; i++ {
		r.Emplace(tracked.Construct(l, i, 0))
	}
	r.Pop()
	r.Pop()
	r.Emplace(tracked.Construct(l, 4, 0))
	r.Emplace(tracked.Construct(l, 5, 0))

	r.Clear()
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, l.DestroyedPayloads())
	assert.True(t, l.Balanced())
}
