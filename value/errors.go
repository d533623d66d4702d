// Package value implements the tagged Value union, PropertyKey variants, and
// the small-string immediate representation that back every ECMAScript
// binding and property slot in the runtime.
package value

import "fmt"

// Kind classifies a failure so callers can branch on intent rather than on
// message text, mirroring how registry errors are classified by ErrKind in
// the teacher codebase this runtime is descended from.
type Kind int

const (
	// KindTypeError corresponds to a thrown TypeError.
	KindTypeError Kind = iota
	// KindRangeError corresponds to a thrown RangeError.
	KindRangeError
	// KindReferenceError corresponds to a thrown ReferenceError.
	KindReferenceError
	// KindSyntaxError corresponds to a thrown SyntaxError (surfaced by the
	// external parser; the core only ever constructs the error object).
	KindSyntaxError
	// KindURIError corresponds to a thrown URIError.
	KindURIError
	// KindInvariant marks a violated internal invariant: an evicted heap
	// slot read, a double-initialized binding, a detached-buffer
	// precondition failure asserted false by the caller. These are fatal
	// conditions per the language core's contract, never user-visible.
	KindInvariant
)

func (k Kind) String() string {
	switch k {
	case KindTypeError:
		return "TypeError"
	case KindRangeError:
		return "RangeError"
	case KindReferenceError:
		return "ReferenceError"
	case KindSyntaxError:
		return "SyntaxError"
	case KindURIError:
		return "URIError"
	case KindInvariant:
		return "InternalInvariantViolation"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", int(k))
	}
}

// Error is a thrown-completion value: a Kind plus the message that would be
// set on the constructed error object's `.message` property, and an optional
// wrapped cause. It implements the standard error interface so it can travel
// through ordinary Go error-handling while still carrying a language-visible
// Kind for the interpreter to reify into a real error object.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Msg + ": " + e.Err.Error()
	}
	return e.Kind.String() + ": " + e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// NewTypeError constructs a TypeError-kind Error with a formatted message.
func NewTypeError(format string, args ...any) *Error {
	return &Error{Kind: KindTypeError, Msg: fmt.Sprintf(format, args...)}
}

// NewRangeError constructs a RangeError-kind Error with a formatted message.
func NewRangeError(format string, args ...any) *Error {
	return &Error{Kind: KindRangeError, Msg: fmt.Sprintf(format, args...)}
}

// NewReferenceError constructs a ReferenceError-kind Error with a formatted message.
func NewReferenceError(format string, args ...any) *Error {
	return &Error{Kind: KindReferenceError, Msg: fmt.Sprintf(format, args...)}
}

// NewURIError constructs a URIError-kind Error with a formatted message.
func NewURIError(format string, args ...any) *Error {
	return &Error{Kind: KindURIError, Msg: fmt.Sprintf(format, args...)}
}

// Invariant panics with a KindInvariant Error. Callers use this for
// conditions the spec says must never occur on a correct caller: reading a
// detached buffer the caller asserted non-detached, dereferencing a swept
// heap slot, double-initializing a binding. These are implementation bugs,
// not language-visible behavior, so they panic rather than return JsResult.
func Invariant(format string, args ...any) {
	panic(&Error{Kind: KindInvariant, Msg: fmt.Sprintf(format, args...)})
}

// Retry is the allocation-retry signal a try_* operation returns when it
// cannot complete without allocating. It is never wrapped in Error and never
// crosses into language-visible JsResult; callers promote to the full
// (GcScope-taking) form on seeing it.
type Retry struct{}

func (Retry) Error() string { return "operation requires a GcScope to allocate" }

// TryResult is the result of a try_* internal method: either the operation's
// value, or a signal that it needs to retry in a GcScope.
type TryResult[T any] struct {
	value    T
	needsGC  bool
}

// Continue wraps a completed try_* result.
func Continue[T any](v T) TryResult[T] { return TryResult[T]{value: v} }

// Break signals that the try_* operation cannot proceed without allocating.
func Break[T any]() TryResult[T] { return TryResult[T]{needsGC: true} }

// NeedsGC reports whether the caller must retry this operation with a GcScope.
func (r TryResult[T]) NeedsGC() bool { return r.needsGC }

// Value returns the completed result. Panics if NeedsGC is true; callers
// must check NeedsGC first.
func (r TryResult[T]) Value() T {
	if r.needsGC {
		Invariant("TryResult.Value called on a Break result")
	}
	return r.value
}
