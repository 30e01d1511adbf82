// File: internal/tracked/item.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Instrumented element type. Every construction path and every destruction
// is recorded in a shared Ledger and logged, so container lifetimes can be
// audited: constructions must equal destructions once a store is closed.

package tracked

import (
	"sync"

	"go.uber.org/zap"

	"github.com/momentics/hioload-ringstore/api"
)

var (
	_ api.Destroyer    = (*Item)(nil)
	_ api.Cloner[Item] = (*Item)(nil)
)

// MovedFrom is the payload left behind in a moved-from Item.
const MovedFrom = -1

// Event names recorded in the Ledger.
const (
	EventDefault   = "default"
	EventWithArgs  = "args"
	EventCopy      = "copy"
	EventMove      = "move"
	EventDestroyed = "destroyed"
	EventRedestroy = "destroyed-again"
)

// Record is one ledger entry.
type Record struct {
	Event   string
	Payload int
}

// Ledger counts lifecycle events across Items that share it.
type Ledger struct {
	mu      sync.Mutex
	log     *zap.Logger
	records []Record
}

// NewLedger creates a ledger that also logs each event; nil logger is allowed.
func NewLedger(log *zap.Logger) *Ledger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Ledger{log: log}
}

func (l *Ledger) record(event string, payload int) {
	l.mu.Lock()
	l.records = append(l.records, Record{Event: event, Payload: payload})
	l.mu.Unlock()
	l.log.Info("item "+event, zap.Int("p", payload))
}

// Records returns a copy of all events in order.
func (l *Ledger) Records() []Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Count returns how many events of the given kind were recorded.
func (l *Ledger) Count(event string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, r := range l.records {
		if r.Event == event {
			n++
		}
	}
	return n
}

// Constructed is the number of Items brought to life by any path.
func (l *Ledger) Constructed() int {
	return l.Count(EventDefault) + l.Count(EventWithArgs) + l.Count(EventCopy) + l.Count(EventMove)
}

// Destroyed is the number of Destroy calls.
func (l *Ledger) Destroyed() int {
	return l.Count(EventDestroyed)
}

// Balanced reports whether every constructed Item was destroyed exactly once.
func (l *Ledger) Balanced() bool {
	return l.Constructed() == l.Destroyed() && l.Count(EventRedestroy) == 0
}

// DestroyedPayloads lists payloads in destruction order.
func (l *Ledger) DestroyedPayloads() []int {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []int
	for _, r := range l.records {
		if r.Event == EventDestroyed {
			out = append(out, r.Payload)
		}
	}
	return out
}

// Item is a value with an observable lifetime.
type Item struct {
	p      int
	ledger *Ledger
	dead   bool
}

// Default constructs an Item with payload 0.
func Default(l *Ledger) Item {
	l.record(EventDefault, 0)
	return Item{ledger: l}
}

// New constructs an Item whose payload is a+b.
func New(l *Ledger, a, b int) Item {
	it := Item{p: a + b, ledger: l}
	l.record(EventWithArgs, it.p)
	return it
}

// Construct builds an Item from a and b directly in dst.
func Construct(l *Ledger, a, b int) func(dst *Item) {
	return func(dst *Item) {
		dst.p = a + b
		dst.ledger = l
		dst.dead = false
		l.record(EventWithArgs, dst.p)
	}
}

// Payload returns the item's value.
func (it *Item) Payload() int { return it.p }

// Clone copy-constructs a new Item with the same payload.
func (it *Item) Clone() Item {
	c := Item{p: it.p, ledger: it.ledger}
	if it.ledger != nil {
		it.ledger.record(EventCopy, c.p)
	}
	return c
}

// Move transfers the payload into a new Item, leaving it at MovedFrom.
func (it *Item) Move() Item {
	m := Item{p: it.p, ledger: it.ledger}
	it.p = MovedFrom
	if it.ledger != nil {
		it.ledger.record(EventMove, m.p)
	}
	return m
}

// Destroy ends the item's lifetime. Later calls are recorded as
// EventRedestroy and unbalance the ledger.
func (it *Item) Destroy() {
	if it.ledger == nil {
		return
	}
	if it.dead {
		it.ledger.record(EventRedestroy, it.p)
		return
	}
	it.dead = true
	it.ledger.record(EventDestroyed, it.p)
}
