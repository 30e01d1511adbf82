// Package api
// Author: momentics <momentics@gmail.com>
//
// Element lifecycle hooks honoured by slot-owning containers.

package api

// Destroyer is implemented by element types that must release something when
// their owning container drops them. Destroy is called exactly once per element,
// after the element has left its slot; it may push to or pop from the owner.
type Destroyer interface {
	Destroy()
}

// Cloner is implemented by element types whose copies are not plain value copies.
type Cloner[T any] interface {
	Clone() T
}
