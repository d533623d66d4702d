package exotic

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ovmjs/corevm/heap"
	"github.com/ovmjs/corevm/internal/bytesconv"
	"github.com/ovmjs/corevm/value"
)

func Test_AllocateArrayBuffer_Resizable(t *testing.T) {
	h := heap.NewHeap()
	buf, err := AllocateArrayBuffer(h, 10, true, 20)
	require.NoError(t, err)
	require.Equal(t, 10, ByteLength(h, buf))
	require.False(t, IsFixedLengthArrayBuffer(h, buf))
}

func Test_AllocateArrayBuffer_ExceedsMax(t *testing.T) {
	h := heap.NewHeap()
	_, err := AllocateArrayBuffer(h, 30, true, 20)
	require.Error(t, err)
	jsErr, ok := err.(*value.Error)
	require.True(t, ok)
	require.Equal(t, value.KindRangeError, jsErr.Kind)
}

func Test_DetachArrayBuffer_ThenReadIsPreconditionViolation(t *testing.T) {
	h := heap.NewHeap()
	buf, err := AllocateArrayBuffer(h, 8, false, 0)
	require.NoError(t, err)

	require.NoError(t, DetachArrayBuffer(h, buf, false, value.Undefined))
	require.True(t, IsDetachedBuffer(h, buf))

	require.Panics(t, func() {
		GetValueFromBuffer(h, buf, 0, bytesconv.Uint32, OrderingUnordered, true)
	})
}

func Test_DetachArrayBuffer_KeyMismatch(t *testing.T) {
	h := heap.NewHeap()
	buf, err := AllocateArrayBuffer(h, 8, false, 0)
	require.NoError(t, err)
	h.GetArrayBuffer(buf).DetachKey = value.SmallInteger(1)
	h.GetArrayBuffer(buf).HasDetachKey = true

	err = DetachArrayBuffer(h, buf, true, value.SmallInteger(2))
	require.Error(t, err)
	require.False(t, IsDetachedBuffer(h, buf))
}

func Test_CloneArrayBuffer_IsByteForByteCopyAndDistinctHandle(t *testing.T) {
	h := heap.NewHeap()
	src, err := AllocateArrayBuffer(h, 4, false, 0)
	require.NoError(t, err)
	SetValueInBuffer(h, src, 0, bytesconv.Uint32, float64(0x12345678), OrderingUnordered, true)

	scope, end := h.EnterGC()
	defer end()
	dst, err := CloneArrayBuffer(h, scope, src, 0, ByteLength(h, src))
	require.NoError(t, err)

	require.NotEqual(t, src, dst)
	require.Equal(t, ByteLength(h, src), ByteLength(h, dst))
	require.Equal(t, h.GetArrayBuffer(src).Block.Bytes, h.GetArrayBuffer(dst).Block.Bytes)
}

func Test_Endianness_RoundTrip(t *testing.T) {
	h := heap.NewHeap()
	buf, err := AllocateArrayBuffer(h, 4, false, 0)
	require.NoError(t, err)

	SetValueInBuffer(h, buf, 0, bytesconv.Uint32, float64(0x12345678), OrderingUnordered, true)

	le := GetValueFromBuffer(h, buf, 0, bytesconv.Uint32, OrderingUnordered, true)
	require.Equal(t, float64(0x12345678), le)

	be := GetValueFromBuffer(h, buf, 0, bytesconv.Uint32, OrderingUnordered, false)
	require.Equal(t, float64(0x78563412), be)
}

func Test_TransferArrayBuffer_DetachesSource(t *testing.T) {
	h := heap.NewHeap()
	src, err := AllocateArrayBuffer(h, 4, false, 0)
	require.NoError(t, err)
	SetValueInBuffer(h, src, 0, bytesconv.Uint32, float64(42), OrderingUnordered, true)

	scope, end := h.EnterGC()
	defer end()
	dst, err := TransferArrayBuffer(h, scope, src, true, false, 0)
	require.NoError(t, err)

	require.True(t, IsDetachedBuffer(h, src))
	require.Equal(t, float64(42), GetValueFromBuffer(h, dst, 0, bytesconv.Uint32, OrderingUnordered, true))
}

func Test_ResizeArrayBuffer_GrowZeroFills(t *testing.T) {
	h := heap.NewHeap()
	buf, err := AllocateArrayBuffer(h, 4, true, 16)
	require.NoError(t, err)
	SetValueInBuffer(h, buf, 0, bytesconv.Uint32, float64(99), OrderingUnordered, true)

	require.NoError(t, ResizeArrayBuffer(h, buf, 8))
	require.Equal(t, 8, ByteLength(h, buf))
	require.Equal(t, float64(99), GetValueFromBuffer(h, buf, 0, bytesconv.Uint32, OrderingUnordered, true))
	require.Equal(t, float64(0), GetValueFromBuffer(h, buf, 4, bytesconv.Uint32, OrderingUnordered, true))
}

func Test_ResizeArrayBuffer_RejectsFixedLength(t *testing.T) {
	h := heap.NewHeap()
	buf, err := AllocateArrayBuffer(h, 4, false, 0)
	require.NoError(t, err)
	require.Error(t, ResizeArrayBuffer(h, buf, 8))
}

func Test_GetModifySetValueInBuffer_ReadModifyWrite(t *testing.T) {
	h := heap.NewHeap()
	buf, err := AllocateArrayBuffer(h, 4, false, 0)
	require.NoError(t, err)
	SetValueInBuffer(h, buf, 0, bytesconv.Uint32, float64(5), OrderingUnordered, true)

	old := GetModifySetValueInBuffer(h, buf, 0, bytesconv.Uint32, OrderingSeqCst, true, func(v float64) float64 {
		return v + 1
	})
	require.Equal(t, float64(5), old)
	require.Equal(t, float64(6), GetValueFromBuffer(h, buf, 0, bytesconv.Uint32, OrderingUnordered, true))
}
