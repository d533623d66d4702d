package reference

import (
	"github.com/ovmjs/corevm/heap"
	"github.com/ovmjs/corevm/value"
)

// PutValue implements ECMA-262 6.2.5.6 PutValue(V, W): writes through a
// Reference Record. An unresolvable reference creates a global `var` binding
// in sloppy mode (via res's environment root, supplied through
// createGlobal) or throws ReferenceError in strict mode; an
// environment-kind base writes through SetMutableBinding; a private
// reference routes through PrivateSet; an ordinary property reference
// writes through [[Set]] (wrapping a primitive base in its prototype the
// same way GetValue does, since assigning to a primitive's property is a
// legal no-op in sloppy mode (a failed [[Set]] throws TypeError only when
// r.Strict is set) — ECMA-262 10.2.1's OrdinarySet
// receiver-mismatch path handles this without this package needing to
// special-case it further).
func PutValue(h *heap.Heap, scope heap.GcScope, r Reference, w value.Value, res Resolver, createGlobal Environment) error {
	if IsUnresolvableReference(r) {
		if r.Strict {
			return value.NewReferenceError("%s is not defined", r.Name)
		}
		if createGlobal == nil {
			value.Invariant("PutValue: unresolvable reference with no global environment to bind %q into", r.Name)
		}
		return createGlobal.SetMutableBinding(r.Name, w, false)
	}

	if r.BaseKind == BaseEnvironment {
		return r.BaseEnv.SetMutableBinding(r.Name, w, r.Strict)
	}

	base := r.BaseValue
	if IsPrivateReference(r) {
		return res.Private.PrivateSet(h, scope, base, referenceKey(r), w)
	}

	receiver := GetThisValue(r)
	target := base
	if !base.IsObject() {
		proto, ok := res.Prims.PrototypeFor(base)
		if !ok {
			if r.Strict {
				return value.NewTypeError("cannot set properties of %v", base)
			}
			return nil
		}
		target = proto
	}

	ok, err := res.Set(h, scope, target, referenceKey(r), w, receiver)
	if err != nil {
		return err
	}
	if !ok && r.Strict {
		return value.NewTypeError("cannot assign to read only property")
	}
	return nil
}
