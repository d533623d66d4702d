package heap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ovmjs/corevm/value"
)

func dataDesc(v value.Value) PropertyDescriptor {
	return PropertyDescriptor{Value: v, HasValue: true, Writable: true, Enumerable: true, Configurable: true}
}

func Test_PropertyTable_SetGetDelete(t *testing.T) {
	pt := NewPropertyTable()
	key := value.IntegerKey(0)

	_, ok := pt.Get(key)
	require.False(t, ok)

	pt.Set(key, dataDesc(value.SmallInteger(1)))
	desc, ok := pt.Get(key)
	require.True(t, ok)
	require.True(t, value.SameValue(desc.Value, value.SmallInteger(1)))

	pt.Delete(key)
	_, ok = pt.Get(key)
	require.False(t, ok)
	require.Equal(t, 0, pt.Len())
}

func Test_PropertyTable_Redefine_PreservesInsertionOrder(t *testing.T) {
	pt := NewPropertyTable()
	a, ok := value.NewSmallString("a")
	require.True(t, ok)
	b, _ := value.NewSmallString("b")

	pt.Set(value.SmallStringKey(a), dataDesc(value.SmallInteger(1)))
	pt.Set(value.SmallStringKey(b), dataDesc(value.SmallInteger(2)))
	// redefining "a" must not move it after "b" in enumeration order
	pt.Set(value.SmallStringKey(a), dataDesc(value.SmallInteger(99)))

	keys := pt.OwnKeys()
	require.Len(t, keys, 2)
	require.True(t, keys[0].SmallStringValue().Equal(a))
	require.True(t, keys[1].SmallStringValue().Equal(b))
}

func Test_PropertyTable_OwnKeys_IntegerStringSymbolOrdering(t *testing.T) {
	pt := NewPropertyTable()
	zebra, _ := value.NewSmallString("zebra")
	apple, _ := value.NewSmallString("apple")

	pt.Set(value.SymbolKey(value.SymbolHandle(1)), dataDesc(value.Undefined))
	pt.Set(value.SmallStringKey(zebra), dataDesc(value.Undefined))
	pt.Set(value.IntegerKey(5), dataDesc(value.Undefined))
	pt.Set(value.SmallStringKey(apple), dataDesc(value.Undefined))
	pt.Set(value.IntegerKey(1), dataDesc(value.Undefined))

	keys := pt.OwnKeys()
	require.Len(t, keys, 5)
	// integers ascending first
	require.True(t, keys[0].IsInteger())
	require.Equal(t, int64(1), keys[0].Integer())
	require.True(t, keys[1].IsInteger())
	require.Equal(t, int64(5), keys[1].Integer())
	// then strings in insertion order (zebra before apple, since zebra was set first)
	require.True(t, keys[2].SmallStringValue().Equal(zebra))
	require.True(t, keys[3].SmallStringValue().Equal(apple))
	// then symbols
	require.True(t, keys[4].IsSymbol())
}

func Test_PropertyTable_SweepValues_RewritesKeysAndValues(t *testing.T) {
	pt := NewPropertyTable()
	pt.Set(value.StringKey(value.StringHandle(3)), PropertyDescriptor{
		Value: value.ObjectValue(value.KindOrdinary, 2), HasValue: true,
	})

	c := &CompactionSet{
		Strings:  CompactionMap{table: []uint32{tombstone, tombstone, tombstone, 0}},
		Ordinary: CompactionMap{table: []uint32{tombstone, tombstone, 0}},
	}
	pt.SweepValues(c)

	desc, ok := pt.Get(value.StringKey(value.StringHandle(0)))
	require.True(t, ok, "key handle must have been rewritten and the index rebuilt")
	require.Equal(t, uint32(0), desc.Value.ObjectHandle())
}

func Test_PropertyTable_MarkValues_PushesDescriptorContents(t *testing.T) {
	pt := NewPropertyTable()
	pt.Set(value.IntegerKey(0), PropertyDescriptor{
		Get: value.ObjectValue(value.KindOrdinary, 4), HasGet: true,
	})

	q := newMarkQueue()
	pt.MarkValues(q)

	require.True(t, isMarkedObject(q, value.KindOrdinary)(4))
}
