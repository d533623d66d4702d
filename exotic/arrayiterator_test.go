package exotic

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ovmjs/corevm/heap"
	"github.com/ovmjs/corevm/value"
)

func newTestArray(h *heap.Heap, scope heap.GcScope, elements ...value.Value) value.Value {
	ref := h.AllocArray(&heap.ArrayObjectData{
		Ordinary: heap.NewOrdinaryObjectData(value.Null, false),
		Length:   uint32(len(elements)),
	})
	arr := value.ObjectValue(value.KindArray, uint32(ref))
	for i, v := range elements {
		DefineOwnProperty(h, scope, arr, value.IntegerKey(int64(i)), heap.PropertyDescriptor{
			Value: v, HasValue: true, Writable: true, Enumerable: true, Configurable: true,
		}, nil)
	}
	return arr
}

func Test_ArrayIterator_KeyKind(t *testing.T) {
	h := heap.NewHeap()
	scope, end := h.EnterGC()
	defer end()
	arr := newTestArray(h, scope, value.SmallInteger(10), value.SmallInteger(20))
	iter := NewArrayIterator(h, arr, heap.IterationKey)

	r1, err := ArrayIteratorNext(h, scope, iter, BoundGet(nil))
	require.NoError(t, err)
	require.False(t, r1.Done)
	require.True(t, value.SameValue(value.SmallInteger(0), r1.Value))

	r2, err := ArrayIteratorNext(h, scope, iter, BoundGet(nil))
	require.NoError(t, err)
	require.False(t, r2.Done)
	require.True(t, value.SameValue(value.SmallInteger(1), r2.Value))

	r3, err := ArrayIteratorNext(h, scope, iter, BoundGet(nil))
	require.NoError(t, err)
	require.True(t, r3.Done)
	require.True(t, IsExhausted(h, iter))
}

func Test_ArrayIterator_ValueKind(t *testing.T) {
	h := heap.NewHeap()
	scope, end := h.EnterGC()
	defer end()
	arr := newTestArray(h, scope, value.SmallInteger(100))
	iter := NewArrayIterator(h, arr, heap.IterationValue)

	r, err := ArrayIteratorNext(h, scope, iter, BoundGet(nil))
	require.NoError(t, err)
	require.False(t, r.Done)
	require.True(t, value.SameValue(value.SmallInteger(100), r.Value))
}

func Test_ArrayIterator_ExhaustedDoesNotResumeAfterGrowth(t *testing.T) {
	h := heap.NewHeap()
	scope, end := h.EnterGC()
	defer end()
	arr := newTestArray(h, scope, value.SmallInteger(1))
	iter := NewArrayIterator(h, arr, heap.IterationKey)

	r1, err := ArrayIteratorNext(h, scope, iter, BoundGet(nil))
	require.NoError(t, err)
	require.False(t, r1.Done)

	r2, err := ArrayIteratorNext(h, scope, iter, BoundGet(nil))
	require.NoError(t, err)
	require.True(t, r2.Done)

	h.GetArray(value.ArrayHandle(arr.ObjectHandle())).Length = 2
	DefineOwnProperty(h, scope, arr, value.IntegerKey(1), heap.PropertyDescriptor{
		Value: value.SmallInteger(2), HasValue: true, Writable: true, Enumerable: true, Configurable: true,
	}, nil)

	r3, err := ArrayIteratorNext(h, scope, iter, BoundGet(nil))
	require.NoError(t, err)
	require.True(t, r3.Done, "once exhausted an iterator never resumes even if the target grows")
}
