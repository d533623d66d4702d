// Package exotic implements the two exotic object families spec §4.3
// singles out — Module Namespace and ArrayBuffer, plus Array Iterator's
// next() — and the top-level internal-method dispatcher every other
// package calls instead of object's ordinary-only functions: Get, Set,
// HasProperty, GetOwnProperty, DefineOwnProperty, Delete, OwnPropertyKeys,
// GetPrototypeOf, SetPrototypeOf, IsExtensible, PreventExtensions. Each
// checks for a kind needing exotic behavior and otherwise falls through to
// package object, the "tagged union + match on kind" model from spec §9
// rather than an inheritance hierarchy.
package exotic

import (
	"github.com/ovmjs/corevm/heap"
	"github.com/ovmjs/corevm/object"
	"github.com/ovmjs/corevm/value"
)

// Invoker calls a function Value with a this-binding and arguments — the
// hook accessor get/set descriptors and the Array Iterator's target access
// need. Re-exported from package object so callers of this package's Get/
// Set never need to import object directly.
type Invoker = object.Invoker

// ordinaryGet/ordinaryHasProperty/ordinaryGetOwnProperty/ordinaryDelete
// adapt package object's ordinary algorithms to recurse back through this
// package's own Get/HasProperty/GetOwnProperty/Delete for prototype-chain
// walks, so that an exotic object standing in as someone's [[Prototype]]
// (a Module Namespace, in practice) gets its real override invoked rather
// than the ordinary-only one.

func ordinaryGet(h *heap.Heap, scope heap.GcScope, obj value.Value, key value.PropertyKey, receiver value.Value, inv Invoker) (value.Value, error) {
	return object.Get(h, scope, obj, key, receiver, getFn(inv), inv)
}

func ordinaryHasProperty(h *heap.Heap, scope heap.GcScope, obj value.Value, key value.PropertyKey, inv Invoker) (bool, error) {
	return object.HasProperty(h, scope, obj, key, hasFn(inv))
}

func ordinaryGetOwnProperty(h *heap.Heap, obj value.Value, key value.PropertyKey) (heap.PropertyDescriptor, bool, error) {
	d, ok := object.GetOwnProperty(h, obj, key)
	return d, ok, nil
}

func ordinarySet(h *heap.Heap, scope heap.GcScope, obj value.Value, key value.PropertyKey, v value.Value, receiver value.Value, inv Invoker) (bool, error) {
	return object.Set(h, scope, obj, key, v, receiver, setFn(inv), inv)
}

func ordinaryDelete(h *heap.Heap, obj value.Value, key value.PropertyKey) bool {
	return object.Delete(h, obj, key)
}

func getFn(inv Invoker) object.GetFn {
	return func(h *heap.Heap, scope heap.GcScope, obj value.Value, key value.PropertyKey, receiver value.Value) (value.Value, error) {
		return Get(h, scope, obj, key, receiver, inv)
	}
}

func hasFn(inv Invoker) object.HasFn {
	return func(h *heap.Heap, scope heap.GcScope, obj value.Value, key value.PropertyKey) (bool, error) {
		return HasProperty(h, scope, obj, key, inv)
	}
}

func setFn(inv Invoker) object.SetFn {
	return func(h *heap.Heap, scope heap.GcScope, obj value.Value, key value.PropertyKey, v value.Value, receiver value.Value) (bool, error) {
		return Set(h, scope, obj, key, v, receiver, inv)
	}
}

// isModuleNamespace reports whether obj is a Module Namespace exotic object.
// Array and ArrayBuffer exotic overrides (own-property shape for indices,
// detached-buffer index semantics) are out of this core's representative
// scope per spec §1 — both still exist as ordinary-backed heap kinds so
// their Get/Set route through the ordinary path below.
func isModuleNamespace(obj value.Value) bool {
	return obj.IsObject() && obj.ObjectKind() == value.KindModuleNamespace
}

// Get implements the top-level [[Get]] dispatch (spec §6's "Object
// operations from §4.3 in both try_* and full forms").
func Get(h *heap.Heap, scope heap.GcScope, obj value.Value, key value.PropertyKey, receiver value.Value, inv Invoker) (value.Value, error) {
	if isModuleNamespace(obj) {
		return namespaceGet(h, scope, obj, key, receiver, inv)
	}
	return ordinaryGet(h, scope, obj, key, receiver, inv)
}

// TryGet is Get's non-allocating form; a Module Namespace's export read may
// need to instantiate a target module's namespace lazily (an allocation), so
// it always defers to the full form — correct but conservative, matching
// spec §4.2's "the try_ form is an optimization", never a correctness
// requirement.
func TryGet(h *heap.Heap, obj value.Value, key value.PropertyKey, receiver value.Value) value.TryResult[value.Value] {
	if isModuleNamespace(obj) {
		return value.Break[value.Value]()
	}
	if desc, ok := object.GetOwnProperty(h, obj, key); ok && desc.IsData() {
		return value.Continue(desc.Value)
	}
	return value.Break[value.Value]()
}

// Set implements the top-level [[Set]] dispatch.
func Set(h *heap.Heap, scope heap.GcScope, obj value.Value, key value.PropertyKey, v value.Value, receiver value.Value, inv Invoker) (bool, error) {
	if isModuleNamespace(obj) {
		return namespaceSet(h, obj, key), nil
	}
	return ordinarySet(h, scope, obj, key, v, receiver, inv)
}

// HasProperty implements the top-level [[HasProperty]] dispatch.
func HasProperty(h *heap.Heap, scope heap.GcScope, obj value.Value, key value.PropertyKey, inv Invoker) (bool, error) {
	if isModuleNamespace(obj) {
		return namespaceHasProperty(h, scope, obj, key, inv)
	}
	return ordinaryHasProperty(h, scope, obj, key, inv)
}

// GetOwnProperty implements the top-level [[GetOwnProperty]] dispatch.
func GetOwnProperty(h *heap.Heap, scope heap.GcScope, obj value.Value, key value.PropertyKey, inv Invoker) (heap.PropertyDescriptor, bool, error) {
	if isModuleNamespace(obj) {
		return namespaceGetOwnProperty(h, scope, obj, key, inv)
	}
	return ordinaryGetOwnProperty(h, obj, key)
}

// DefineOwnProperty implements the top-level [[DefineOwnProperty]] dispatch.
func DefineOwnProperty(h *heap.Heap, scope heap.GcScope, obj value.Value, key value.PropertyKey, desc heap.PropertyDescriptor, inv Invoker) bool {
	if isModuleNamespace(obj) {
		return namespaceDefineOwnProperty(h, scope, obj, key, desc, inv)
	}
	return object.DefineOwnProperty(h, obj, key, desc)
}

// Delete implements the top-level [[Delete]] dispatch.
func Delete(h *heap.Heap, obj value.Value, key value.PropertyKey) bool {
	if isModuleNamespace(obj) {
		return namespaceDelete(h, obj, key)
	}
	return ordinaryDelete(h, obj, key)
}

// OwnPropertyKeys implements the top-level [[OwnPropertyKeys]] dispatch.
func OwnPropertyKeys(h *heap.Heap, obj value.Value) []value.PropertyKey {
	if isModuleNamespace(obj) {
		return namespaceOwnPropertyKeys(h, obj)
	}
	return object.OwnPropertyKeys(h, obj)
}

// GetPrototypeOf implements the top-level [[GetPrototypeOf]] dispatch. A
// Module Namespace always reports Null (spec §4.3.1): its backing record is
// built with a Null prototype and object.SetPrototypeOf refuses to change
// it, so this is a direct pass-through kept here for dispatch symmetry with
// the rest of the table.
func GetPrototypeOf(h *heap.Heap, obj value.Value) value.Value {
	return object.GetPrototypeOf(h, obj)
}

// SetPrototypeOf implements the top-level [[SetPrototypeOf]] dispatch.
func SetPrototypeOf(h *heap.Heap, obj value.Value, proto value.Value) bool {
	return object.SetPrototypeOf(h, obj, proto)
}

// IsExtensible implements the top-level [[IsExtensible]] dispatch. A Module
// Namespace object is constructed non-extensible and PreventExtensions is a
// one-way operation, so no override is needed beyond the ordinary path.
func IsExtensible(h *heap.Heap, obj value.Value) bool {
	return object.IsExtensible(h, obj)
}

// PreventExtensions implements the top-level [[PreventExtensions]] dispatch.
func PreventExtensions(h *heap.Heap, obj value.Value) bool {
	return object.PreventExtensions(h, obj)
}
