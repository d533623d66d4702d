package heap

import "github.com/ovmjs/corevm/value"

// MaxByteLength is the implementation limit on a single ArrayBuffer: the
// spec requires rejecting allocations above 2^32-1 bytes (§4.3.2).
const MaxByteLength = (1 << 32) - 1

// NoMaxByteLength is the capacity-word sentinel meaning "fixed-length, not
// resizable" (spec §3's ArrayBufferHeapData capacity word).
const NoMaxByteLength = ^uint32(0) // MAX sentinel

// DataBlock is a contiguous mutable byte buffer with a distinguished
// detached state. Detaching (exotic.DetachArrayBuffer) replaces the owning
// buffer's Block with a fresh DataBlock that has Detached set and no Bytes;
// it does not change the buffer's MaxByteLength capacity word.
type DataBlock struct {
	Bytes    []byte
	Detached bool
}

// NewDataBlock allocates a zeroed DataBlock of the given length.
func NewDataBlock(byteLength int) *DataBlock {
	return &DataBlock{Bytes: make([]byte, byteLength)}
}

// Len returns the current byte length, 0 if detached.
func (b *DataBlock) Len() int {
	if b.Detached {
		return 0
	}
	return len(b.Bytes)
}

// ArrayBufferHeapData is the per-kind heap record for ArrayBuffer and
// SharedArrayBuffer instances (spec §3/§4.3.2). MaxByteLength ==
// NoMaxByteLength means non-resizable fixed length; any other value is the
// resizable max byte length the buffer was constructed with.
type ArrayBufferHeapData struct {
	Block         *DataBlock
	MaxByteLength uint32
	DetachKey     value.Value
	HasDetachKey  bool
	Shared        bool
	Ordinary      *OrdinaryObjectData
}

// IsFixedLength reports whether the buffer was constructed without a max
// byte length option (spec §9's IsFixedLengthArrayBuffer, supplemented from
// original_source since spec.md's condensed §4.3.2 only names the sentinel,
// not the predicate).
func (d *ArrayBufferHeapData) IsFixedLength() bool {
	return d.MaxByteLength == NoMaxByteLength
}

func (d *ArrayBufferHeapData) MarkValues(q *MarkQueue) {
	d.Ordinary.MarkValues(q)
	if d.HasDetachKey {
		q.PushValue(d.DetachKey)
	}
}

func (d *ArrayBufferHeapData) SweepValues(c *CompactionSet) {
	d.Ordinary.SweepValues(c)
	if d.HasDetachKey {
		if nv, ok := c.RewriteValue(d.DetachKey); ok {
			d.DetachKey = nv
		}
	}
}

// byteFieldAuto / byteFieldOverflow are the two ViewedArrayBuffer sentinel
// values from spec §3: AUTO means "dynamically track buffer length", and
// overflow routes the real value through a side map keyed by the view's
// heap index, keeping the common case packed into 4 bytes.
const (
	byteFieldAuto     uint32 = ^uint32(0)
	byteFieldOverflow uint32 = ^uint32(0) - 1
)

// ViewedField packs ViewedArrayBufferByteLength/Offset per spec §3: most
// values fit directly; AUTO and overflow are named sentinels, with the
// overflow case resolved through a side table the caller owns (typed array
// heap data, out of this core's scope — see spec.md §1 exclusions).
type ViewedField struct {
	raw      uint32
	overflow uint64
}

// Auto returns a ViewedField in the AUTO state.
func Auto() ViewedField { return ViewedField{raw: byteFieldAuto} }

// Fixed returns a ViewedField holding n directly, or packed via the
// overflow side-value if n cannot fit in the 32-bit common-case field.
func Fixed(n uint64) ViewedField {
	if n < uint64(byteFieldOverflow) {
		return ViewedField{raw: uint32(n)}
	}
	return ViewedField{raw: byteFieldOverflow, overflow: n}
}

func (f ViewedField) IsAuto() bool { return f.raw == byteFieldAuto }

// Resolve returns the field's actual numeric value; callers must not call
// this when IsAuto() is true (AUTO has no fixed value, it tracks the
// buffer's current length dynamically).
func (f ViewedField) Resolve() uint64 {
	if f.raw == byteFieldOverflow {
		return f.overflow
	}
	return uint64(f.raw)
}
