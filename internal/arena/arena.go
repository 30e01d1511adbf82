// File: internal/arena/arena.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package arena

import (
	"fmt"

	"github.com/momentics/hioload-ringstore/api"
)

// slot holds one element and its liveness tag.
type slot[T any] struct {
	val  T
	live bool
}

// Arena is a fixed set of N slots allocated once.
// Misuse (double construct, double destroy, reading a vacant slot) panics:
// those are bookkeeping bugs in the owning container, not caller errors.
type Arena[T any] struct {
	slots []slot[T]
	live  int
}

// New allocates n vacant slots.
func New[T any](n int) *Arena[T] {
	if n < 1 {
		panic(fmt.Sprintf("arena: slot count must be positive, got %d", n))
	}
	return &Arena[T]{slots: make([]slot[T], n)}
}

// Construct builds an element in vacant slot i and returns its address.
// A nil init leaves the zero value as the element.
func (a *Arena[T]) Construct(i int, init func(*T)) *T {
	s := a.slot(i)
	if s.live {
		panic(fmt.Sprintf("arena: construct into live slot %d", i))
	}
	if init != nil {
		// A panicking init must not leave a partial value in a vacant slot.
		defer func() {
			if !s.live {
				var zero T
				s.val = zero
			}
		}()
		init(&s.val)
	}
	s.live = true
	a.live++
	return &s.val
}

// Destroy ends the element in slot i. The element is detached and the slot
// zeroed and marked vacant first; Destroy() then runs once, if implemented,
// on the detached value, so the hook may reuse the slot through its owner.
func (a *Arena[T]) Destroy(i int) {
	s := a.slot(i)
	if !s.live {
		panic(fmt.Sprintf("arena: destroy of vacant slot %d", i))
	}
	val := s.val
	var zero T
	s.val = zero
	s.live = false
	a.live--
	if d, ok := any(&val).(api.Destroyer); ok {
		d.Destroy()
	}
}

// At borrows the live element in slot i.
func (a *Arena[T]) At(i int) *T {
	s := a.slot(i)
	if !s.live {
		panic(fmt.Sprintf("arena: read of vacant slot %d", i))
	}
	return &s.val
}

// Live reports whether slot i holds an element.
func (a *Arena[T]) Live(i int) bool {
	return a.slot(i).live
}

// Len returns the slot count.
func (a *Arena[T]) Len() int {
	return len(a.slots)
}

// LiveCount returns the number of constructed elements.
func (a *Arena[T]) LiveCount() int {
	return a.live
}

// Release drops the backing allocation. Every slot must be vacant.
func (a *Arena[T]) Release() {
	if a.live != 0 {
		panic(fmt.Sprintf("arena: release with %d live slots", a.live))
	}
	a.slots = nil
}

// Released reports whether Release has been called.
func (a *Arena[T]) Released() bool {
	return a.slots == nil
}

func (a *Arena[T]) slot(i int) *slot[T] {
	if a.slots == nil {
		panic("arena: use after release")
	}
	return &a.slots[i]
}
