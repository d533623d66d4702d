package reference

import "github.com/ovmjs/corevm/heap"
import "github.com/ovmjs/corevm/value"

// PrimitivePrototypes resolves the prototype object a primitive value's
// property read/write routes through — Boolean.prototype, Number.prototype,
// String.prototype, Symbol.prototype, BigInt.prototype — per ECMA-262
// 10.2.1's "let O be ! ToObject(V)" step folded into GetValue/PutValue's
// fast path rather than materializing a wrapper object. Satisfied by the
// agent/Realm package, which owns the intrinsics table this core's object
// model (deliberately, per spec §1) does not.
type PrimitivePrototypes interface {
	PrototypeFor(v value.Value) (value.Value, bool)
}

// PrivateAccessor reads/writes a private field or invokes a private
// method/accessor, per ECMA-262 7.3.12/7.3.13 PrivateGet/PrivateSet — kept
// as an injected hook rather than this package reaching into heap's
// PropertyTable directly, so future private-method/accessor dispatch (not
// just private fields) can share this seam without a reference/ rewrite.
type PrivateAccessor interface {
	PrivateGet(h *heap.Heap, scope heap.GcScope, obj value.Value, key value.PropertyKey) (value.Value, error)
	PrivateSet(h *heap.Heap, scope heap.GcScope, obj value.Value, key value.PropertyKey, v value.Value) error
}

// Resolver bundles the object-model callbacks GetValue/PutValue need to
// reach property storage without importing package object/exotic directly
// (avoiding a reference -> object -> reference or reference -> exotic
// import cycle, since exotic's Get/Set dispatch already depends on enough
// of object's internals). The caller — typically the interpreter's
// execution-context glue, or agent's Realm wiring — passes its own
// exotic.Get/exotic.Set-backed closures.
type Resolver struct {
	Get     GetFn
	Set     SetFn
	Private PrivateAccessor
	Prims   PrimitivePrototypes
}

// GetValue implements ECMA-262 6.2.5.5 GetValue(V): dereferences a
// Reference Record, throwing ReferenceError for an unresolvable base,
// routing through PrivateGet for a private reference, through the
// environment's GetBindingValue for an environment-kind base, or through
// ordinary/exotic [[Get]] for a property reference — wrapping a primitive
// base in its wrapper prototype per PrimitivePrototypes first.
func GetValue(h *heap.Heap, scope heap.GcScope, r Reference, res Resolver) (value.Value, error) {
	if IsUnresolvableReference(r) {
		return value.Value{}, value.NewReferenceError("%s is not defined", r.Name)
	}

	if r.BaseKind == BaseEnvironment {
		return r.BaseEnv.GetBindingValue(r.Name, r.Strict)
	}

	base := r.BaseValue
	if IsPrivateReference(r) {
		return res.Private.PrivateGet(h, scope, base, referenceKey(r))
	}

	receiver := GetThisValue(r)
	if !base.IsObject() {
		proto, ok := res.Prims.PrototypeFor(base)
		if !ok {
			return value.Value{}, value.NewTypeError("cannot read properties of %v", base)
		}
		return res.Get(h, scope, proto, referenceKey(r), receiver)
	}
	return res.Get(h, scope, base, referenceKey(r), receiver)
}
