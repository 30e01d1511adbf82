// Package pool
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity element storage for hioload-ringstore.
// RingStore keeps up to N elements in a slot arena allocated once, constructs
// each element in place on push and destroys it on pop, Clear or Close.
// Pushing into a full store and popping an empty one are rejected no-ops
// reported through a false result; Top on an empty store returns
// api.ErrStoreEmpty.
//
// See ring.go for the index arithmetic and options.go for construction options.
package pool
