// File: internal/arena/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Typed slot arena backing fixed-capacity containers. An Arena owns one
// allocation of N slots; each slot carries a liveness tag so elements are
// constructed into and destroyed out of their slot explicitly, and vacant
// memory is never read as an element.
package arena
