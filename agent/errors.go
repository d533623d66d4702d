package agent

import "github.com/ovmjs/corevm/value"

// ErrKind generalizes the teacher's pkg/types/api.go Error/ErrKind pattern
// (there: ErrKindNotFound/ErrKindCorrupt/... tagging a registry-operation
// failure) onto the two failure channels spec §7 names: thrown-completion
// error kinds mirroring value.Kind, plus one agent-internal kind
// (ErrKindInvariant) that never crosses into a JsResult.
type ErrKind = value.Kind

const (
	ErrKindTypeError      = value.KindTypeError
	ErrKindRangeError     = value.KindRangeError
	ErrKindReferenceError = value.KindReferenceError
	ErrKindSyntaxError    = value.KindSyntaxError
	ErrKindURIError       = value.KindURIError
	// ErrKindInvariant marks a violated internal invariant — see
	// value.Invariant, which panics rather than returning this as an error
	// value. Kept here only so agent-level call sites can name it in log
	// fields without importing value directly.
	ErrKindInvariant = value.KindInvariant
)

// Error is a convenience alias so agent's exported API surface (logging,
// HostHooks callbacks) can speak in terms of one error type without every
// caller reaching into package value.
type Error = value.Error
