package heap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ovmjs/corevm/value"
)

func Test_BuildCompactionMap_DropsUnmarkedDensifiesSurvivors(t *testing.T) {
	vec := []*OrdinaryObjectData{
		NewOrdinaryObjectData(value.Null, true), // idx 0: survives
		NewOrdinaryObjectData(value.Null, true), // idx 1: garbage
		NewOrdinaryObjectData(value.Null, true), // idx 2: survives
		nil,                                     // idx 3: already empty
	}
	marked := func(idx uint32) bool { return idx == 0 || idx == 2 }

	out, m := buildCompactionMap(vec, marked)

	require.Len(t, out, 2)
	n0, ok0 := m.Map(0)
	require.True(t, ok0)
	require.Equal(t, uint32(0), n0)

	n2, ok2 := m.Map(2)
	require.True(t, ok2)
	require.Equal(t, uint32(1), n2)

	_, ok1 := m.Map(1)
	require.False(t, ok1)
	_, ok3 := m.Map(3)
	require.False(t, ok3)
}

func Test_CompactionMap_MapOutOfRange(t *testing.T) {
	var m CompactionMap
	_, ok := m.Map(0)
	require.False(t, ok)
}

func Test_CompactionSet_RewriteValue_Immediates(t *testing.T) {
	c := &CompactionSet{}
	v, ok := c.RewriteValue(value.SmallInteger(7))
	require.True(t, ok)
	require.True(t, value.SameValue(v, value.SmallInteger(7)))
}

func Test_CompactionSet_RewriteValue_DeadHandleFails(t *testing.T) {
	c := &CompactionSet{} // empty maps: everything tombstoned
	_, ok := c.RewriteValue(value.ObjectValue(value.KindOrdinary, 3))
	require.False(t, ok)
}

func Test_CompactionSet_RewriteValue_ObjectHandleMoves(t *testing.T) {
	c := &CompactionSet{Ordinary: CompactionMap{table: []uint32{tombstone, 0}}}
	v, ok := c.RewriteValue(value.ObjectValue(value.KindOrdinary, 1))
	require.True(t, ok)
	require.Equal(t, uint32(0), v.ObjectHandle())
}
