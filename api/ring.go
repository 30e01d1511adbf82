// Package api
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity ring store contract.

package api

// Store is a fixed-capacity FIFO that owns its elements from push until pop.
// Implementations are single-owner and not safe for concurrent use.
type Store[T any] interface {
	// Push copies item into the next free slot; returns false if full.
	Push(item T) bool
	// Emplace builds an element directly in the next free slot; returns false if full.
	Emplace(init func(slot *T)) bool
	// Pop destroys the oldest element; returns false if empty.
	Pop() bool
	// Top returns a copy of the oldest element or ErrStoreEmpty.
	Top() (T, error)
	// Clear destroys every element, oldest first.
	Clear()
	// IsEmpty reports whether no element is live.
	IsEmpty() bool
	// IsFull reports whether every slot is live.
	IsFull() bool
	// Len returns the number of live elements.
	Len() int
	// Cap returns the fixed slot count.
	Cap() int
}
