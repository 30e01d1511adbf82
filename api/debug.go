// Package api
// Author: momentics
//
// Live debug support for embedding applications.

package api

// Debug exposes runtime introspection.
type Debug interface {
	// DumpState emits a snapshot of registered probes.
	DumpState() map[string]any

	// RegisterProbe dynamically registers new debug probes.
	RegisterProbe(name string, fn func() any)
}
