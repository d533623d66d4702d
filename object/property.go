package object

import (
	"github.com/ovmjs/corevm/heap"
	"github.com/ovmjs/corevm/value"
)

// GetOwnProperty implements OrdinaryGetOwnProperty (ECMA-262 10.1.5): a
// direct property-table lookup, never walking the prototype chain.
func GetOwnProperty(h *heap.Heap, obj value.Value, key value.PropertyKey) (heap.PropertyDescriptor, bool) {
	return OrdinaryDataOf(h, obj).Properties.Get(key)
}

func TryGetOwnProperty(h *heap.Heap, obj value.Value, key value.PropertyKey) value.TryResult[ownPropertyResult] {
	desc, ok := GetOwnProperty(h, obj, key)
	return value.Continue(ownPropertyResult{desc: desc, ok: ok})
}

type ownPropertyResult struct {
	desc heap.PropertyDescriptor
	ok   bool
}

func (r ownPropertyResult) Get() (heap.PropertyDescriptor, bool) { return r.desc, r.ok }

// HasProperty implements OrdinaryHasProperty (ECMA-262 10.1.7): an own
// lookup, falling back to the prototype chain via has.
func HasProperty(h *heap.Heap, scope heap.GcScope, obj value.Value, key value.PropertyKey, has HasFn) (bool, error) {
	if _, ok := GetOwnProperty(h, obj, key); ok {
		return true, nil
	}
	proto := GetPrototypeOf(h, obj)
	if proto.IsNull() {
		return false, nil
	}
	return has(h, scope, proto, key)
}

// Get implements OrdinaryGet (ECMA-262 10.1.8): own lookup, accessor
// invocation, or prototype-chain delegation via get.
func Get(h *heap.Heap, scope heap.GcScope, obj value.Value, key value.PropertyKey, receiver value.Value, get GetFn, invoke Invoker) (value.Value, error) {
	desc, ok := GetOwnProperty(h, obj, key)
	if !ok {
		proto := GetPrototypeOf(h, obj)
		if proto.IsNull() {
			return value.Undefined, nil
		}
		return get(h, scope, proto, key, receiver)
	}
	if desc.IsAccessor() {
		if !desc.HasGet || desc.Get.IsUndefined() {
			return value.Undefined, nil
		}
		if invoke == nil {
			return value.Value{}, value.NewTypeError("cannot invoke accessor getter: no function invocation host hook configured")
		}
		return invoke.Call(h, scope, desc.Get, receiver, nil)
	}
	return desc.Value, nil
}

// Set implements OrdinarySet (ECMA-262 10.1.9) via OrdinarySetWithOwnDescriptor:
// own accessor invokes its setter; own writable data property (or a missing
// own property, delegated through the prototype chain and finally created
// on receiver) is written directly when receiver == obj.
func Set(h *heap.Heap, scope heap.GcScope, obj value.Value, key value.PropertyKey, v value.Value, receiver value.Value, set SetFn, invoke Invoker) (bool, error) {
	desc, ok := GetOwnProperty(h, obj, key)
	if !ok {
		proto := GetPrototypeOf(h, obj)
		if !proto.IsNull() {
			return set(h, scope, proto, key, v, receiver)
		}
		desc = heap.PropertyDescriptor{Writable: true, Enumerable: true, Configurable: true}
	}

	if desc.IsAccessor() {
		if !desc.HasSet || desc.Set.IsUndefined() {
			return false, nil
		}
		if invoke == nil {
			return false, value.NewTypeError("cannot invoke accessor setter: no function invocation host hook configured")
		}
		if _, err := invoke.Call(h, scope, desc.Set, receiver, []value.Value{v}); err != nil {
			return false, err
		}
		return true, nil
	}

	if !desc.Writable {
		return false, nil
	}
	if !receiver.IsObject() {
		return false, nil
	}
	existing, hasOwn := GetOwnProperty(h, receiver, key)
	if hasOwn {
		if existing.IsAccessor() || !existing.Writable {
			return false, nil
		}
		existing.Value = v
		existing.HasValue = true
		OrdinaryDataOf(h, receiver).Properties.Set(key, existing)
		return true, nil
	}
	return DefineOwnProperty(h, receiver, key, heap.PropertyDescriptor{
		Value: v, HasValue: true, Writable: true, Enumerable: true, Configurable: true,
	}), nil
}

// Delete implements OrdinaryDelete (ECMA-262 10.1.10).
func Delete(h *heap.Heap, obj value.Value, key value.PropertyKey) bool {
	desc, ok := GetOwnProperty(h, obj, key)
	if !ok {
		return true
	}
	if !desc.Configurable {
		return false
	}
	OrdinaryDataOf(h, obj).Properties.Delete(key)
	return true
}

func TryDelete(h *heap.Heap, obj value.Value, key value.PropertyKey) value.TryResult[bool] {
	return value.Continue(Delete(h, obj, key))
}

// OwnPropertyKeys implements OrdinaryOwnPropertyKeys (ECMA-262 10.1.11): the
// property table already maintains 7.3.23 ordering (integers, then strings,
// then symbols, each by insertion order).
func OwnPropertyKeys(h *heap.Heap, obj value.Value) []value.PropertyKey {
	return OrdinaryDataOf(h, obj).Properties.OwnKeys()
}

func TryOwnPropertyKeys(h *heap.Heap, obj value.Value) value.TryResult[[]value.PropertyKey] {
	return value.Continue(OwnPropertyKeys(h, obj))
}

// DefineOwnProperty implements OrdinaryDefineOwnProperty (ECMA-262 10.1.6),
// delegating the descriptor-merge rules to ValidateAndApplyPropertyDescriptor.
func DefineOwnProperty(h *heap.Heap, obj value.Value, key value.PropertyKey, desc heap.PropertyDescriptor) bool {
	current, hasCurrent := GetOwnProperty(h, obj, key)
	extensible := IsExtensible(h, obj)
	applied, ok := ValidateAndApplyPropertyDescriptor(h, current, hasCurrent, extensible, desc)
	if !ok {
		return false
	}
	OrdinaryDataOf(h, obj).Properties.Set(key, applied)
	return true
}

func TryDefineOwnProperty(h *heap.Heap, obj value.Value, key value.PropertyKey, desc heap.PropertyDescriptor) value.TryResult[bool] {
	return value.Continue(DefineOwnProperty(h, obj, key, desc))
}

// ValidateAndApplyPropertyDescriptor implements ECMA-262 10.1.6.3: validates
// desc against the (possibly absent) current descriptor under the
// extensibility and configurability rules, and returns the descriptor that
// would result from applying it. ok is false iff the definition must be
// rejected; the returned descriptor is meaningless in that case.
func ValidateAndApplyPropertyDescriptor(h *heap.Heap, current heap.PropertyDescriptor, hasCurrent bool, extensible bool, desc heap.PropertyDescriptor) (heap.PropertyDescriptor, bool) {
	if !hasCurrent {
		if !extensible {
			return heap.PropertyDescriptor{}, false
		}
		return fillDefaults(desc), true
	}

	if desc.IsGeneric() && !desc.HasEnumerable && !desc.HasConfigurable {
		return current, true
	}

	if !current.Configurable {
		if desc.HasConfigurable && desc.Configurable {
			return heap.PropertyDescriptor{}, false
		}
		if desc.HasEnumerable && desc.Enumerable != current.Enumerable {
			return heap.PropertyDescriptor{}, false
		}
		if desc.IsAccessor() != current.IsAccessor() && !desc.IsGeneric() {
			return heap.PropertyDescriptor{}, false
		}
		if current.IsData() && !current.Writable {
			if desc.HasWritable && desc.Writable {
				return heap.PropertyDescriptor{}, false
			}
			if desc.HasValue && !h.SameValue(desc.Value, current.Value) {
				return heap.PropertyDescriptor{}, false
			}
		}
		if current.IsAccessor() {
			if desc.HasGet && !h.SameValue(desc.Get, current.Get) {
				return heap.PropertyDescriptor{}, false
			}
			if desc.HasSet && !h.SameValue(desc.Set, current.Set) {
				return heap.PropertyDescriptor{}, false
			}
		}
	}

	merged := current
	if desc.IsAccessor() && current.IsData() {
		merged = heap.PropertyDescriptor{Enumerable: current.Enumerable, Configurable: current.Configurable, HasEnumerable: true, HasConfigurable: true}
	} else if desc.IsData() && current.IsAccessor() {
		merged = heap.PropertyDescriptor{Enumerable: current.Enumerable, Configurable: current.Configurable, HasEnumerable: true, HasConfigurable: true}
	}
	if desc.HasValue {
		merged.Value, merged.HasValue = desc.Value, true
	}
	if desc.HasWritable {
		merged.Writable, merged.HasWritable = desc.Writable, true
	}
	if desc.HasGet {
		merged.Get, merged.HasGet = desc.Get, true
	}
	if desc.HasSet {
		merged.Set, merged.HasSet = desc.Set, true
	}
	if desc.HasEnumerable {
		merged.Enumerable, merged.HasEnumerable = desc.Enumerable, true
	}
	if desc.HasConfigurable {
		merged.Configurable, merged.HasConfigurable = desc.Configurable, true
	}
	return merged, true
}

// fillDefaults applies CreateDataProperty/CreateAccessorProperty-style
// defaults (ECMA-262 10.1.6.3 step 3's "every field absent from Desc
// defaults to false/undefined") when defining a brand-new property.
func fillDefaults(desc heap.PropertyDescriptor) heap.PropertyDescriptor {
	out := desc
	if desc.IsAccessor() {
		out.HasGet, out.HasSet = true, true
	} else {
		out.HasValue, out.HasWritable = true, true
	}
	out.HasEnumerable = true
	out.HasConfigurable = true
	return out
}
