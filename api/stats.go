// Package api
// Author: momentics <momentics@gmail.com>
//
// Store accounting exposed to observers.

package api

// StoreStats aggregates push/pop accounting for a single store.
type StoreStats struct {
	Name      string
	Capacity  int
	Live      int64
	Pushed    uint64
	Dropped   uint64
	Popped    uint64
	EmptyPops uint64
}

// StatsSource is anything that can report StoreStats from any goroutine.
type StatsSource interface {
	Stats() StoreStats
}
