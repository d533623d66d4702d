package object

import (
	"github.com/ovmjs/corevm/heap"
	"github.com/ovmjs/corevm/value"
)

// GetFn, SetFn, HasFn and GetProtoFn are the internal-method signatures the
// ordinary algorithms recurse through when walking a prototype chain. The
// top-level dispatcher (package exotic) passes its own Get/Set/HasProperty/
// GetPrototypeOf as these callbacks, so that if a prototype turns out to be
// an exotic object (a Module Namespace used as someone's [[Prototype]], for
// instance) the walk calls its real override rather than assuming ordinary
// semantics all the way up — the "table of function pointers keyed by kind"
// model from spec §9, without object depending on exotic.
type (
	GetFn      func(h *heap.Heap, scope heap.GcScope, obj value.Value, key value.PropertyKey, receiver value.Value) (value.Value, error)
	SetFn      func(h *heap.Heap, scope heap.GcScope, obj value.Value, key value.PropertyKey, v value.Value, receiver value.Value) (bool, error)
	HasFn      func(h *heap.Heap, scope heap.GcScope, obj value.Value, key value.PropertyKey) (bool, error)
	GetProtoFn func(h *heap.Heap, obj value.Value) value.Value
)

// Invoker calls a function Value with a this-binding and arguments, the hook
// accessor get/set descriptors need. This core implements no bytecode
// interpreter (spec.md's budget scopes that out), so a caller with no
// Invoker gets a TypeError rather than a panic — invoking an accessor is a
// legitimate language operation this core simply doesn't execute, not an
// internal invariant violation.
type Invoker interface {
	Call(h *heap.Heap, scope heap.GcScope, fn value.Value, thisArg value.Value, args []value.Value) (value.Value, error)
}

// OrdinaryDataOf returns the OrdinaryObjectData every object kind either is
// or embeds, the shared "upgrade store" spec §3 calls ObjectIndex. Panics
// (an Invariant) for a non-object Value or an unrecognized kind — callers
// must check IsObject() first.
func OrdinaryDataOf(h *heap.Heap, v value.Value) *heap.OrdinaryObjectData {
	switch v.ObjectKind() {
	case value.KindOrdinary:
		return h.GetOrdinary(value.OrdinaryHandle(v.ObjectHandle()))
	case value.KindArray:
		return h.GetArray(value.ArrayHandle(v.ObjectHandle())).Ordinary
	case value.KindArrayBuffer:
		return h.GetArrayBuffer(value.ArrayBufferHandle(v.ObjectHandle())).Ordinary
	case value.KindArrayIterator:
		return h.GetArrayIterator(value.ArrayIteratorHandle(v.ObjectHandle())).Ordinary
	case value.KindModuleNamespace:
		return h.GetModuleNamespace(value.ModuleHandle(v.ObjectHandle())).Ordinary
	default:
		value.Invariant("object: no OrdinaryObjectData for kind %d", v.ObjectKind())
		return nil
	}
}
