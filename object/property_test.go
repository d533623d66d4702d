package object

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ovmjs/corevm/heap"
	"github.com/ovmjs/corevm/value"
)

func dataDesc(v value.Value) heap.PropertyDescriptor {
	return heap.PropertyDescriptor{Value: v, HasValue: true, Writable: true, Enumerable: true, Configurable: true}
}

func newOrdinary(h *heap.Heap, proto value.Value, hasProto bool) value.Value {
	ref := h.AllocOrdinary(heap.NewOrdinaryObjectData(proto, hasProto))
	return value.ObjectValue(value.KindOrdinary, uint32(ref))
}

// dispatchGet/dispatchSet/dispatchHas are the recursive callbacks object.Get/
// Set/HasProperty expect from the top-level dispatcher; for these ordinary-
// only tests, ordinary recursion is sufficient.
func dispatchGet(h *heap.Heap, scope heap.GcScope, obj value.Value, key value.PropertyKey, receiver value.Value) (value.Value, error) {
	return Get(h, scope, obj, key, receiver, dispatchGet, nil)
}
func dispatchSet(h *heap.Heap, scope heap.GcScope, obj value.Value, key value.PropertyKey, v value.Value, receiver value.Value) (bool, error) {
	return Set(h, scope, obj, key, v, receiver, dispatchSet, nil)
}
func dispatchHas(h *heap.Heap, scope heap.GcScope, obj value.Value, key value.PropertyKey) (bool, error) {
	return HasProperty(h, scope, obj, key, dispatchHas)
}

func Test_Get_OwnProperty(t *testing.T) {
	h := heap.NewHeap()
	obj := newOrdinary(h, value.Null, true)
	OrdinaryDataOf(h, obj).Properties.Set(value.IntegerKey(0), dataDesc(value.SmallInteger(42)))

	scope, end := h.EnterGC()
	defer end()

	v, err := Get(h, scope, obj, value.IntegerKey(0), obj, dispatchGet, nil)
	require.NoError(t, err)
	require.True(t, value.SameValue(v, value.SmallInteger(42)))
}

func Test_Get_WalksPrototypeChain(t *testing.T) {
	h := heap.NewHeap()
	proto := newOrdinary(h, value.Null, true)
	OrdinaryDataOf(h, proto).Properties.Set(value.IntegerKey(0), dataDesc(value.SmallInteger(7)))
	obj := newOrdinary(h, proto, true)

	scope, end := h.EnterGC()
	defer end()

	v, err := Get(h, scope, obj, value.IntegerKey(0), obj, dispatchGet, nil)
	require.NoError(t, err)
	require.True(t, value.SameValue(v, value.SmallInteger(7)))
}

func Test_Get_UndefinedWhenAbsent(t *testing.T) {
	h := heap.NewHeap()
	obj := newOrdinary(h, value.Null, true)

	scope, end := h.EnterGC()
	defer end()

	v, err := Get(h, scope, obj, value.IntegerKey(99), obj, dispatchGet, nil)
	require.NoError(t, err)
	require.True(t, v.IsUndefined())
}

func Test_Set_CreatesOwnPropertyWhenAbsent(t *testing.T) {
	h := heap.NewHeap()
	obj := newOrdinary(h, value.Null, true)

	scope, end := h.EnterGC()
	defer end()

	ok, err := Set(h, scope, obj, value.IntegerKey(0), value.SmallInteger(5), obj, dispatchSet, nil)
	require.NoError(t, err)
	require.True(t, ok)

	desc, found := GetOwnProperty(h, obj, value.IntegerKey(0))
	require.True(t, found)
	require.True(t, value.SameValue(desc.Value, value.SmallInteger(5)))
}

func Test_Set_RejectsNonWritable(t *testing.T) {
	h := heap.NewHeap()
	obj := newOrdinary(h, value.Null, true)
	OrdinaryDataOf(h, obj).Properties.Set(value.IntegerKey(0), heap.PropertyDescriptor{
		Value: value.SmallInteger(1), HasValue: true, Writable: false, HasWritable: true, Configurable: true, HasConfigurable: true,
	})

	scope, end := h.EnterGC()
	defer end()

	ok, err := Set(h, scope, obj, value.IntegerKey(0), value.SmallInteger(9), obj, dispatchSet, nil)
	require.NoError(t, err)
	require.False(t, ok)

	desc, _ := GetOwnProperty(h, obj, value.IntegerKey(0))
	require.True(t, value.SameValue(desc.Value, value.SmallInteger(1)))
}

func Test_HasProperty_OwnAndInherited(t *testing.T) {
	h := heap.NewHeap()
	proto := newOrdinary(h, value.Null, true)
	OrdinaryDataOf(h, proto).Properties.Set(value.IntegerKey(0), dataDesc(value.Undefined))
	obj := newOrdinary(h, proto, true)

	scope, end := h.EnterGC()
	defer end()

	has, err := HasProperty(h, scope, obj, value.IntegerKey(0), dispatchHas)
	require.NoError(t, err)
	require.True(t, has)

	has, err = HasProperty(h, scope, obj, value.IntegerKey(1), dispatchHas)
	require.NoError(t, err)
	require.False(t, has)
}

func Test_Delete_RejectsNonConfigurable(t *testing.T) {
	h := heap.NewHeap()
	obj := newOrdinary(h, value.Null, true)
	OrdinaryDataOf(h, obj).Properties.Set(value.IntegerKey(0), heap.PropertyDescriptor{
		Value: value.SmallInteger(1), HasValue: true, Configurable: false, HasConfigurable: true,
	})

	require.False(t, Delete(h, obj, value.IntegerKey(0)))
	require.True(t, Delete(h, obj, value.IntegerKey(99)), "deleting an absent key always succeeds")
}

func Test_DefineOwnProperty_RejectsNonExtensibleNewProperty(t *testing.T) {
	h := heap.NewHeap()
	obj := newOrdinary(h, value.Null, true)
	PreventExtensions(h, obj)

	ok := DefineOwnProperty(h, obj, value.IntegerKey(0), dataDesc(value.SmallInteger(1)))
	require.False(t, ok)
}

func Test_DefineOwnProperty_RejectsMakingNonConfigurableConfigurable(t *testing.T) {
	h := heap.NewHeap()
	obj := newOrdinary(h, value.Null, true)
	OrdinaryDataOf(h, obj).Properties.Set(value.IntegerKey(0), heap.PropertyDescriptor{
		Value: value.SmallInteger(1), HasValue: true, Configurable: false, HasConfigurable: true,
	})

	ok := DefineOwnProperty(h, obj, value.IntegerKey(0), heap.PropertyDescriptor{Configurable: true, HasConfigurable: true})
	require.False(t, ok)
}

func Test_GetPrototypeOf_SetPrototypeOf(t *testing.T) {
	h := heap.NewHeap()
	proto := newOrdinary(h, value.Null, true)
	obj := newOrdinary(h, value.Null, true)

	require.True(t, GetPrototypeOf(h, obj).IsNull())
	require.True(t, SetPrototypeOf(h, obj, proto))
	require.True(t, value.SameValue(GetPrototypeOf(h, obj), proto))
}

func Test_SetPrototypeOf_RejectsCycle(t *testing.T) {
	h := heap.NewHeap()
	a := newOrdinary(h, value.Null, true)
	b := newOrdinary(h, value.Null, true)
	require.True(t, SetPrototypeOf(h, b, a))

	// a -> b would create a cycle a -> b -> a
	require.False(t, SetPrototypeOf(h, a, b))
}

func Test_OwnPropertyKeys_Ordering(t *testing.T) {
	h := heap.NewHeap()
	obj := newOrdinary(h, value.Null, true)
	d := OrdinaryDataOf(h, obj)
	z, _ := value.NewSmallString("z")
	d.Properties.Set(value.SmallStringKey(z), dataDesc(value.Undefined))
	d.Properties.Set(value.IntegerKey(3), dataDesc(value.Undefined))
	d.Properties.Set(value.IntegerKey(1), dataDesc(value.Undefined))

	keys := OwnPropertyKeys(h, obj)
	require.Len(t, keys, 3)
	require.True(t, keys[0].IsInteger())
	require.Equal(t, int64(1), keys[0].Integer())
	require.Equal(t, int64(3), keys[1].Integer())
	require.True(t, keys[2].IsString())
}
