package reference

import (
	"github.com/ovmjs/corevm/heap"
	"github.com/ovmjs/corevm/object"
	"github.com/ovmjs/corevm/value"
)

// DefaultPrivateAccessor implements PrivateAccessor directly on top of an
// object's ordinary property table, keyed by PrivateName — confirmed
// workable because heap.PropertyTable's lookup already special-cases
// value.PropertyKeyPrivateName alongside the ordinary string/symbol/integer
// key forms (heap/proptable.go's propKeyLookup). This core has no private
// method/accessor desugaring (no class bytecode to produce one, per spec
// §1's scope), so every private reference here is a private field: a plain
// data slot, never an accessor pair.
type DefaultPrivateAccessor struct{}

func (DefaultPrivateAccessor) PrivateGet(h *heap.Heap, scope heap.GcScope, obj value.Value, key value.PropertyKey) (value.Value, error) {
	if !obj.IsObject() {
		return value.Value{}, value.NewTypeError("cannot read a private field off a non-object")
	}
	data := object.OrdinaryDataOf(h, obj)
	desc, ok := data.Properties.Get(key)
	if !ok {
		return value.Value{}, value.NewTypeError("private field is not present on this object")
	}
	return desc.Value, nil
}

func (DefaultPrivateAccessor) PrivateSet(h *heap.Heap, scope heap.GcScope, obj value.Value, key value.PropertyKey, v value.Value) error {
	if !obj.IsObject() {
		return value.NewTypeError("cannot write a private field onto a non-object")
	}
	data := object.OrdinaryDataOf(h, obj)
	if _, ok := data.Properties.Get(key); !ok {
		return value.NewTypeError("private field is not present on this object")
	}
	data.Properties.Set(key, heap.PropertyDescriptor{
		Value: v, HasValue: true, Writable: true, Enumerable: false, Configurable: false,
	})
	return nil
}

// AddPrivateField installs a newly-declared private field slot on obj —
// the class-instantiation-time step (ECMA-262 PrivateFieldAdd) this core
// exposes directly since it builds no class bytecode of its own.
func AddPrivateField(h *heap.Heap, obj value.Value, key value.PropertyKey, v value.Value) error {
	if !obj.IsObject() {
		return value.NewTypeError("cannot add a private field to a non-object")
	}
	data := object.OrdinaryDataOf(h, obj)
	if _, ok := data.Properties.Get(key); ok {
		return value.NewTypeError("private field already declared on this object")
	}
	data.Properties.Set(key, heap.PropertyDescriptor{
		Value: v, HasValue: true, Writable: true, Enumerable: false, Configurable: false,
	})
	return nil
}
