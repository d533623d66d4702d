package exotic

import (
	"github.com/ovmjs/corevm/heap"
	"github.com/ovmjs/corevm/object"
	"github.com/ovmjs/corevm/value"
)

// NewArrayIterator allocates a fresh %ArrayIteratorPrototype% instance over
// target, per spec §4.3.3's {target, next_index, kind} heap record.
func NewArrayIterator(h *heap.Heap, target value.Value, kind heap.IterationKind) value.ArrayIteratorHandle {
	return h.AllocArrayIterator(&heap.ArrayIteratorHeapData{
		Target:    target,
		HasTarget: true,
		NextIndex: 0,
		Kind:      kind,
		Ordinary:  heap.NewOrdinaryObjectData(value.Null, false),
	})
}

// IterResult is the {value, done} pair CreateIterResultObject would wrap;
// returned directly here since this core builds no bytecode-level iterator
// result object (spec.md §1 excludes the interpreter loop this would feed).
type IterResult struct {
	Value value.Value
	Done  bool
}

// arrayLength reads the current length of an iterator's target, the "live"
// part of spec §4.3.3: the iterator re-reads this on every call rather than
// caching it at construction, so mutating the underlying array during
// iteration is observed exactly like %ArrayIteratorPrototype%.next().
func arrayLength(h *heap.Heap, target value.Value) uint32 {
	if !target.IsObject() || target.ObjectKind() != value.KindArray {
		return 0
	}
	return h.GetArray(value.ArrayHandle(target.ObjectHandle())).Length
}

// ArrayIteratorNext implements spec §4.3.3's next(): advances NextIndex;
// once past the target's current length, clears Target (permanently
// exhausting the iterator) and returns done=true. get resolves an indexed
// element off the target the way normal property access would (honoring
// holes/getters), needed for the Value and KeyAndValue iteration kinds.
func ArrayIteratorNext(h *heap.Heap, scope heap.GcScope, iter value.ArrayIteratorHandle, get GetFn) (IterResult, error) {
	data := h.GetArrayIterator(iter)
	if !data.HasTarget {
		return IterResult{Value: value.Undefined, Done: true}, nil
	}

	length := arrayLength(h, data.Target)
	if uint32(data.NextIndex) >= length {
		data.HasTarget = false
		return IterResult{Value: value.Undefined, Done: true}, nil
	}

	idx := data.NextIndex
	data.NextIndex++

	switch data.Kind {
	case heap.IterationKey:
		return IterResult{Value: value.SmallInteger(idx), Done: false}, nil
	case heap.IterationValue:
		v, err := get(h, scope, data.Target, value.IntegerKey(idx), data.Target)
		if err != nil {
			return IterResult{}, err
		}
		return IterResult{Value: v, Done: false}, nil
	default: // IterationKeyAndValue
		v, err := get(h, scope, data.Target, value.IntegerKey(idx), data.Target)
		if err != nil {
			return IterResult{}, err
		}
		pair := h.AllocArray(&heap.ArrayObjectData{
			Ordinary: heap.NewOrdinaryObjectData(value.Null, false),
			Length:   2,
		})
		pairVal := value.ObjectValue(value.KindArray, uint32(pair))
		object.DefineOwnProperty(h, pairVal, value.IntegerKey(0), heap.PropertyDescriptor{
			Value: value.SmallInteger(idx), HasValue: true, Writable: true, Enumerable: true, Configurable: true,
		})
		object.DefineOwnProperty(h, pairVal, value.IntegerKey(1), heap.PropertyDescriptor{
			Value: v, HasValue: true, Writable: true, Enumerable: true, Configurable: true,
		})
		return IterResult{Value: pairVal, Done: false}, nil
	}
}

// GetFn is the indexed-read hook ArrayIteratorNext uses to fetch the
// current element for Value/KeyAndValue iteration, re-exported from
// package object so callers of this package never need to import object
// directly just to build one.
type GetFn = object.GetFn

// BoundGet returns a GetFn that routes through this package's own Get
// dispatcher (so a Module Namespace standing in as an array-like target's
// prototype still gets its real override invoked), closed over inv for
// accessor invocation.
func BoundGet(inv Invoker) GetFn {
	return func(h *heap.Heap, scope heap.GcScope, obj value.Value, key value.PropertyKey, receiver value.Value) (value.Value, error) {
		return Get(h, scope, obj, key, receiver, inv)
	}
}

// IsExhausted reports whether iter has permanently finished (Target
// cleared), without advancing it — used by tests and by %ArrayIterator%
// introspection tooling.
func IsExhausted(h *heap.Heap, iter value.ArrayIteratorHandle) bool {
	return !h.GetArrayIterator(iter).HasTarget
}
