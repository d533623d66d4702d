package heap

import "errors"

var (
	// ErrBadHandle indicates a handle that is out of bounds or whose slot is
	// not Some — reading it is a fatal invariant violation, never a
	// language-visible error (see value.Invariant).
	ErrBadHandle = errors.New("heap: handle out of bounds or not live")

	// ErrDetached indicates an operation precondition-checked
	// !detached(buf) found the buffer detached.
	ErrDetached = errors.New("heap: array buffer is detached")

	// ErrAlreadyInitialized indicates InitializeBinding (or similar
	// exactly-once operation) was called a second time on the same slot.
	ErrAlreadyInitialized = errors.New("heap: binding already initialized")
)
