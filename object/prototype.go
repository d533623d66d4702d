package object

import (
	"github.com/ovmjs/corevm/heap"
	"github.com/ovmjs/corevm/value"
)

// TryGetPrototypeOf reads obj's [[Prototype]] without allocating — reading a
// struct field never needs the heap to grow, so this always completes.
func TryGetPrototypeOf(h *heap.Heap, obj value.Value) value.TryResult[value.Value] {
	return value.Continue(GetPrototypeOf(h, obj))
}

// GetPrototypeOf returns obj's [[Prototype]], or value.Null if unset/none.
// Ordinary OrdinaryGetPrototypeOf per ECMA-262 10.1.1; also correct for
// Module Namespace objects, which are constructed with Prototype pinned to
// Null and whose set_prototype_of override (see SetPrototypeOf) refuses to
// change it — so no separate exotic override is needed here.
func GetPrototypeOf(h *heap.Heap, obj value.Value) value.Value {
	d := OrdinaryDataOf(h, obj)
	if !d.HasPrototype() {
		return value.Null
	}
	return d.PrototypeValue()
}

// TrySetPrototypeOf attempts [[SetPrototypeOf]] without allocating; always
// completes since it only mutates an existing struct field.
func TrySetPrototypeOf(h *heap.Heap, obj value.Value, proto value.Value) value.TryResult[bool] {
	return value.Continue(SetPrototypeOf(h, obj, proto))
}

// SetPrototypeOf implements OrdinarySetPrototypeOf (ECMA-262 10.1.2),
// generalized with the spec §4.3.1 Module Namespace override folded in:
// a namespace's prototype is immutable once Null, so this rejects any
// proto other than Null for a module-namespace kind.
func SetPrototypeOf(h *heap.Heap, obj value.Value, proto value.Value) bool {
	d := OrdinaryDataOf(h, obj)

	if obj.ObjectKind() == value.KindModuleNamespace {
		return proto.IsNull()
	}

	current := value.Null
	if d.HasPrototype() {
		current = d.PrototypeValue()
	}
	if h.SameValue(proto, current) {
		return true
	}
	if !d.Extensible {
		return false
	}

	// cycle check: walk the candidate chain, reject if obj would become its
	// own ancestor.
	p := proto
	for p.IsObject() {
		if h.SameValue(p, obj) {
			return false
		}
		pd := OrdinaryDataOf(h, p)
		if !pd.Extensible {
			// a non-extensible object's reported prototype is immutable
			// along the chain too; if we've reached one, further identity
			// can't be proven otherwise, ECMA-262 allows stopping here.
			break
		}
		if !pd.HasPrototype() {
			break
		}
		p = pd.PrototypeValue()
	}

	d.SetPrototype(proto)
	return true
}

// IsExtensible implements [[IsExtensible]] (ECMA-262 10.1.3), also correct
// for Module Namespace objects (always non-extensible, enforced at
// construction time in package module).
func IsExtensible(h *heap.Heap, obj value.Value) bool {
	return OrdinaryDataOf(h, obj).Extensible
}

func TryIsExtensible(h *heap.Heap, obj value.Value) value.TryResult[bool] {
	return value.Continue(IsExtensible(h, obj))
}

// PreventExtensions implements [[PreventExtensions]] (ECMA-262 10.1.4):
// always succeeds, irreversibly.
func PreventExtensions(h *heap.Heap, obj value.Value) bool {
	OrdinaryDataOf(h, obj).Extensible = false
	return true
}

func TryPreventExtensions(h *heap.Heap, obj value.Value) value.TryResult[bool] {
	return value.Continue(PreventExtensions(h, obj))
}
