// File: pool/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity ring store over a typed slot arena.
// Elements are constructed into their slot on push and destroyed on pop;
// the store is single-owner and performs no internal locking.

package pool

import (
	"sync/atomic"

	"github.com/momentics/hioload-ringstore/api"
	"github.com/momentics/hioload-ringstore/internal/arena"
)

// Ensure compile-time interface compliance.
var (
	_ api.Store[any]  = (*RingStore[any])(nil)
	_ api.StatsSource = (*RingStore[any])(nil)
)

// noCopy lets `go vet` flag stores copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// RingStore is a FIFO of at most Cap() elements held in a fixed slot arena.
// A full store rejects pushes; it never evicts.
type RingStore[T any] struct {
	_ noCopy

	slots      *arena.Arena[T]
	capacity   int
	writeIndex int
	readIndex  int
	count      int
	closed     bool

	name      string
	pushed    atomic.Uint64
	dropped   atomic.Uint64
	popped    atomic.Uint64
	emptyPops atomic.Uint64
}

// NewRingStore allocates a store with exactly capacity slots.
func NewRingStore[T any](capacity int, opts ...StoreOption) (*RingStore[T], error) {
	if capacity < 1 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "ring store capacity must be at least 1").
			WithContext("capacity", capacity)
	}
	cfg := defaultStoreConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &RingStore[T]{
		slots:    arena.New[T](capacity),
		capacity: capacity,
		name:     cfg.name,
	}, nil
}

// MustNewRingStore is NewRingStore that panics on invalid capacity.
func MustNewRingStore[T any](capacity int, opts ...StoreOption) *RingStore[T] {
	r, err := NewRingStore[T](capacity, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Push copies item into the slot at the write index.
// Returns false, leaving the store untouched, if full or closed.
func (r *RingStore[T]) Push(item T) bool {
	return r.Emplace(func(slot *T) { *slot = item })
}

// Emplace builds the element directly in the slot at the write index.
// init is not called when the store is full or closed.
func (r *RingStore[T]) Emplace(init func(slot *T)) bool {
	if r.closed || r.count == r.capacity {
		r.dropped.Add(1)
		return false
	}
	r.slots.Construct(r.writeIndex, init)
	r.writeIndex = r.advance(r.writeIndex)
	r.count++
	r.pushed.Add(1)
	return true
}

// Pop destroys the oldest element. Returns false if empty.
// Indices move before the element's Destroy hook runs, so a hook that
// pushes or pops on this store sees consistent state.
func (r *RingStore[T]) Pop() bool {
	if r.count == 0 {
		r.emptyPops.Add(1)
		return false
	}
	i := r.readIndex
	r.readIndex = r.advance(i)
	r.count--
	r.popped.Add(1)
	r.slots.Destroy(i)
	return true
}

// Top returns a copy of the oldest element without removing it.
// Elements implementing api.Cloner are copied through Clone.
func (r *RingStore[T]) Top() (T, error) {
	var zero T
	if r.closed {
		return zero, api.ErrStoreClosed
	}
	if r.count == 0 {
		return zero, api.ErrStoreEmpty
	}
	front := r.slots.At(r.readIndex)
	if c, ok := any(front).(api.Cloner[T]); ok {
		return c.Clone(), nil
	}
	return *front, nil
}

// MustTop is Top for callers that already know the store is non-empty.
func (r *RingStore[T]) MustTop() T {
	v, err := r.Top()
	if err != nil {
		panic(err)
	}
	return v
}

// Clear destroys every live element, oldest first.
func (r *RingStore[T]) Clear() {
	for r.count > 0 {
		r.Pop()
	}
}

// Close clears the store and releases its slots. Further pushes are
// rejected. Calling Close more than once is a no-op.
func (r *RingStore[T]) Close() error {
	if r.closed {
		return nil
	}
	r.Clear()
	r.slots.Release()
	r.closed = true
	return nil
}

// IsEmpty reports whether no element is live.
func (r *RingStore[T]) IsEmpty() bool { return r.count == 0 }

// IsFull reports whether all slots are live.
func (r *RingStore[T]) IsFull() bool { return r.count == r.capacity }

// Len returns the number of live elements.
func (r *RingStore[T]) Len() int { return r.count }

// Cap returns the fixed slot count.
func (r *RingStore[T]) Cap() int { return r.capacity }

// Name returns the label used in stats and probes.
func (r *RingStore[T]) Name() string { return r.name }

// Stats returns push/pop accounting. Safe to call from any goroutine; Live
// is derived from the counters and may lag the owner by one operation.
func (r *RingStore[T]) Stats() api.StoreStats {
	popped := r.popped.Load()
	pushed := r.pushed.Load()
	// The two loads are not one snapshot; keep Live within [0, capacity].
	live := int64(pushed - popped)
	if live > int64(r.capacity) {
		live = int64(r.capacity)
	} else if live < 0 {
		live = 0
	}
	return api.StoreStats{
		Name:      r.name,
		Capacity:  r.capacity,
		Live:      live,
		Pushed:    pushed,
		Dropped:   r.dropped.Load(),
		Popped:    popped,
		EmptyPops: r.emptyPops.Load(),
	}
}

func (r *RingStore[T]) advance(i int) int {
	i++
	if i == r.capacity {
		return 0
	}
	return i
}
