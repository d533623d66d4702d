package heap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_DataBlock_LenZeroAfterDetach(t *testing.T) {
	b := NewDataBlock(16)
	require.Equal(t, 16, b.Len())

	b.Detached = true
	require.Equal(t, 0, b.Len())
}

func Test_ArrayBufferHeapData_IsFixedLength(t *testing.T) {
	fixed := &ArrayBufferHeapData{MaxByteLength: NoMaxByteLength}
	require.True(t, fixed.IsFixedLength())

	resizable := &ArrayBufferHeapData{MaxByteLength: 1024}
	require.False(t, resizable.IsFixedLength())
}

func Test_ViewedField_AutoAndFixed(t *testing.T) {
	auto := Auto()
	require.True(t, auto.IsAuto())

	small := Fixed(42)
	require.False(t, small.IsAuto())
	require.Equal(t, uint64(42), small.Resolve())

	large := Fixed(1 << 40)
	require.False(t, large.IsAuto())
	require.Equal(t, uint64(1<<40), large.Resolve())
}
