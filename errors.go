package hetero

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrNotDeclared is returned when a type indexed operation requests a
	// type and occurrence pairing that is not part of the aggregate's
	// declared type list.
	ErrNotDeclared errorkit.Error = "[hetero] type/occurrence is not declared"
	// ErrOutOfRange is returned when an element position cannot be served,
	// such as indexing past the end of a container, taking the front of an
	// empty one, or addressing a filtered element that does not exist.
	ErrOutOfRange errorkit.Error = "[hetero] position is out of range"
)
