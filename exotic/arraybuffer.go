package exotic

import (
	"github.com/ovmjs/corevm/heap"
	"github.com/ovmjs/corevm/internal/bytesconv"
	"github.com/ovmjs/corevm/value"
)

// maxImplByteLength is the implementation limit spec §4.3.2 names:
// AllocateArrayBuffer throws RangeError above 2^32-1 bytes.
const maxImplByteLength = heap.MaxByteLength

// AllocateArrayBuffer implements spec §4.3.2's AllocateArrayBuffer. hasMax
// selects the resizable form (ECMA-262 25.1.3.1); maxByteLength is
// meaningless when hasMax is false.
func AllocateArrayBuffer(h *heap.Heap, byteLength uint64, hasMax bool, maxByteLength uint64) (value.ArrayBufferHandle, error) {
	if hasMax && byteLength > maxByteLength {
		return 0, value.NewRangeError("ArrayBuffer byteLength %d exceeds maxByteLength %d", byteLength, maxByteLength)
	}
	if byteLength > maxImplByteLength {
		return 0, value.NewRangeError("ArrayBuffer byteLength %d exceeds implementation limit", byteLength)
	}
	if hasMax && maxByteLength > maxImplByteLength {
		return 0, value.NewRangeError("ArrayBuffer maxByteLength %d exceeds implementation limit", maxByteLength)
	}

	max := heap.NoMaxByteLength
	if hasMax {
		max = uint32(maxByteLength)
	}
	data := &heap.ArrayBufferHeapData{
		Block:         heap.NewDataBlock(int(byteLength)),
		MaxByteLength: max,
		Ordinary:      heap.NewOrdinaryObjectData(value.Null, true),
	}
	return h.AllocArrayBuffer(data), nil
}

// IsDetachedBuffer reports whether buf's data block has been released
// (spec §4.3.2's precondition guard every buffer access must check).
func IsDetachedBuffer(h *heap.Heap, buf value.ArrayBufferHandle) bool {
	return h.GetArrayBuffer(buf).Block.Detached
}

// IsFixedLengthArrayBuffer implements the predicate named but not defined by
// spec.md's condensed §4.3.2, supplemented from original_source (nova's
// abstract_operations.rs): true iff the buffer was constructed without a
// max byte length option.
func IsFixedLengthArrayBuffer(h *heap.Heap, buf value.ArrayBufferHandle) bool {
	return h.GetArrayBuffer(buf).IsFixedLength()
}

// ByteLength returns buf's current byte length, 0 if detached.
func ByteLength(h *heap.Heap, buf value.ArrayBufferHandle) int {
	return h.GetArrayBuffer(buf).Block.Len()
}

// DetachArrayBuffer implements spec §4.3.2's DetachArrayBuffer. hasKey/key
// model the optional detach-key argument: per spec §9's open question, keys
// are opaque, identity-compared tokens (SameValue) with no observable
// structure.
func DetachArrayBuffer(h *heap.Heap, buf value.ArrayBufferHandle, hasKey bool, key value.Value) error {
	data := h.GetArrayBuffer(buf)
	if data.HasDetachKey || hasKey {
		stored := value.Undefined
		if data.HasDetachKey {
			stored = data.DetachKey
		}
		supplied := value.Undefined
		if hasKey {
			supplied = key
		}
		if !h.SameValue(stored, supplied) {
			return value.NewTypeError("ArrayBuffer detach key mismatch")
		}
	}
	data.Block = &heap.DataBlock{Detached: true}
	return nil
}

// CloneArrayBuffer implements spec §4.3.2's CloneArrayBuffer. Precondition:
// !IsDetachedBuffer(src). The copy is performed against the NoGcScope
// snapshot of src's bytes before AllocateArrayBuffer runs, so it tolerates
// the allocation having moved or reallocated src's own record in the
// meantime (the spec's "re-resolve the source handle after the allocation,
// or perform the copy in a NoGcScope" choice — this core takes the latter
// since copying is a plain byte-slice operation with no intermediate
// allocation of its own).
func CloneArrayBuffer(h *heap.Heap, scope heap.GcScope, src value.ArrayBufferHandle, offset, length int) (value.ArrayBufferHandle, error) {
	srcData := h.GetArrayBuffer(src)
	if srcData.Block.Detached {
		value.Invariant("CloneArrayBuffer: source buffer is detached")
	}
	snapshot := make([]byte, length)
	copy(snapshot, srcData.Block.Bytes[offset:offset+length])

	dst, err := AllocateArrayBuffer(h, uint64(length), false, 0)
	if err != nil {
		return 0, err
	}
	h.GetArrayBuffer(dst).Block.Bytes = snapshot
	return dst, nil
}

// TransferArrayBuffer implements ArrayBuffer.prototype.transfer()'s
// abstract operation (ECMA-262 25.1.5.1 ArrayBufferCopyAndDetach),
// supplemented from original_source — spec.md's condensed §4.3.2 omits it
// entirely. The source buffer is always left detached on success, whether
// or not newLength equals its prior length.
func TransferArrayBuffer(h *heap.Heap, scope heap.GcScope, src value.ArrayBufferHandle, toFixedLength bool, hasNewLength bool, newLength uint64) (value.ArrayBufferHandle, error) {
	srcData := h.GetArrayBuffer(src)
	if srcData.Block.Detached {
		return 0, value.NewTypeError("cannot transfer a detached ArrayBuffer")
	}
	if srcData.HasDetachKey {
		return 0, value.NewTypeError("cannot transfer an ArrayBuffer with a non-empty detach key")
	}

	length := uint64(srcData.Block.Len())
	if hasNewLength {
		length = newLength
	}

	var dst value.ArrayBufferHandle
	var err error
	if !toFixedLength && !srcData.IsFixedLength() {
		max := uint64(srcData.MaxByteLength)
		dst, err = AllocateArrayBuffer(h, length, true, max)
	} else {
		dst, err = AllocateArrayBuffer(h, length, false, 0)
	}
	if err != nil {
		return 0, err
	}

	dstData := h.GetArrayBuffer(dst)
	n := copy(dstData.Block.Bytes, srcData.Block.Bytes)
	_ = n

	srcData.Block = &heap.DataBlock{Detached: true}
	return dst, nil
}

// ResizeArrayBuffer implements ArrayBuffer.prototype.resize() for a
// resizable (non-fixed-length) buffer: grows in place up to MaxByteLength,
// or shrinks, zero-filling any newly exposed bytes on growth. Supplemented
// from original_source's Resize semantics; spec.md's condensed §4.3.2 names
// only the capacity-word sentinel, not the grow/shrink operation itself.
func ResizeArrayBuffer(h *heap.Heap, buf value.ArrayBufferHandle, newByteLength uint64) error {
	data := h.GetArrayBuffer(buf)
	if data.Block.Detached {
		return value.NewTypeError("cannot resize a detached ArrayBuffer")
	}
	if data.IsFixedLength() {
		return value.NewTypeError("cannot resize a fixed-length ArrayBuffer")
	}
	if newByteLength > uint64(data.MaxByteLength) {
		return value.NewRangeError("resize length %d exceeds maxByteLength %d", newByteLength, data.MaxByteLength)
	}
	grown := make([]byte, newByteLength)
	copy(grown, data.Block.Bytes)
	data.Block.Bytes = grown
	return nil
}

// Ordering names the ECMA-262 memory-model contract GetModifySetValueInBuffer
// is specified against (spec §4.3.2). Non-shared buffers collapse every
// ordering to a plain access; SharedArrayBuffer atomics are out of this
// core's scope (spec.md Non-goals).
type Ordering uint8

const (
	OrderingUnordered Ordering = iota
	OrderingSeqCst
	OrderingInit
)

// GetValueFromBuffer implements spec §4.3.2's GetValueFromBuffer<T>.
// Precondition: !IsDetachedBuffer(buf). littleEndian is a required argument
// with no default: this function has no host-endianness fallback, and
// callers pass the TypedArray's literal isLittleEndian argument.
func GetValueFromBuffer(h *heap.Heap, buf value.ArrayBufferHandle, byteIndex int, t bytesconv.ElementType, order Ordering, littleEndian bool) float64 {
	data := h.GetArrayBuffer(buf)
	if data.Block.Detached {
		value.Invariant("GetValueFromBuffer: buffer is detached")
	}
	return bytesconv.ReadNumeric(data.Block.Bytes, byteIndex, t, littleEndian)
}

// SetValueInBuffer implements spec §4.3.2's SetValueInBuffer<T>. NaN
// bit-patterns for float writes are whatever math.Float32/64bits produces
// for the input float64 — implementation-defined per spec, but consistent
// across every write/read pair.
func SetValueInBuffer(h *heap.Heap, buf value.ArrayBufferHandle, byteIndex int, t bytesconv.ElementType, v float64, order Ordering, littleEndian bool) {
	data := h.GetArrayBuffer(buf)
	if data.Block.Detached {
		value.Invariant("SetValueInBuffer: buffer is detached")
	}
	bytesconv.WriteNumeric(data.Block.Bytes, byteIndex, t, v, littleEndian)
}

// GetModifySetValueInBuffer implements spec §4.3.2's
// GetModifySetValueInBuffer: specified as an atomic read-modify-write for
// SharedArrayBuffer semantics. Per spec §9's open question this core stubs
// the shared case (Non-goals: "optimizing SharedArrayBuffer atomics") and
// always performs a plain read, apply modify, write — correct for
// non-shared buffers, and for shared ones under the single-threaded Agent
// model this runtime assumes (spec §5).
func GetModifySetValueInBuffer(h *heap.Heap, buf value.ArrayBufferHandle, byteIndex int, t bytesconv.ElementType, order Ordering, littleEndian bool, modify func(oldValue float64) float64) float64 {
	old := GetValueFromBuffer(h, buf, byteIndex, t, order, littleEndian)
	SetValueInBuffer(h, buf, byteIndex, t, modify(old), order, littleEndian)
	return old
}
