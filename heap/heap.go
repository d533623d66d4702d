package heap

import (
	"github.com/ovmjs/corevm/internal/sizeclass"
	"github.com/ovmjs/corevm/value"
)

// allocThreshold is the default number of allocations between GC cycles;
// embedders adjust it via Heap.SetAllocThreshold per spec §4.2 ("the
// embedder chooses the threshold").
const allocThreshold = 4096

// RootProvider is registered by embedders (the Agent's realm table,
// intrinsics, and execution-context stack) to enumerate additional roots
// during the mark phase, beyond the scoped handles tracked by RootSet.
type RootProvider func(q *MarkQueue)

// Heap owns every per-kind vector of heap data (spec §3). An index into a
// vector is live iff its slot is non-nil. It is not safe for concurrent use
// from multiple goroutines — the Agent that embeds it is single-threaded by
// design (spec §5).
type Heap struct {
	Ordinary       []*OrdinaryObjectData
	Arrays         []*ArrayObjectData
	ArrayBuffers   []*ArrayBufferHeapData
	ArrayIterators []*ArrayIteratorHeapData
	ModuleNamespaces []*ModuleNamespaceHeapData
	Strings        []*StringData
	Numbers        []*NumberData
	BigInts        []*BigIntData
	Symbols        []*SymbolData

	allocCounter int
	threshold    int

	roots     *RootSet
	providers []RootProvider

	// stats from the most recently completed GC cycle, exposed through
	// LastGCStats.
	lastStats GCStats
}

// NewHeap returns an empty Heap ready for allocation.
func NewHeap() *Heap {
	return &Heap{
		threshold: allocThreshold,
		roots:     newRootSet(),
	}
}

// SetAllocThreshold overrides the allocation-pressure threshold that
// triggers an automatic GC check (see Heap.MaybeGC).
func (h *Heap) SetAllocThreshold(n int) { h.threshold = n }

// AddRootProvider registers a callback invoked during every mark phase to
// enumerate roots outside the scoped-handle discipline: the realm table,
// intrinsics, and execution-context stack (spec §4.2's root set (a) and
// (b)).
func (h *Heap) AddRootProvider(p RootProvider) { h.providers = append(h.providers, p) }

// bumpAlloc is the shared growth helper every AllocX method uses: append
// data, grow capacity in sizeclass-sized chunks rather than relying solely
// on Go's built-in amortized growth, and bump the allocation counter that
// drives automatic GC.
func bumpAlloc[T any](vec *[]T, class sizeclass.Class, data T) uint32 {
	if len(*vec) == cap(*vec) {
		next := sizeclass.NextCapacity(class, len(*vec)+1)
		grown := make([]T, len(*vec), next)
		copy(grown, *vec)
		*vec = grown
	}
	*vec = append(*vec, data)
	return uint32(len(*vec) - 1)
}

func (h *Heap) AllocOrdinary(d *OrdinaryObjectData) value.OrdinaryHandle {
	h.allocCounter++
	return value.OrdinaryHandle(bumpAlloc(&h.Ordinary, sizeclass.ClassHot, d))
}

func (h *Heap) AllocArray(d *ArrayObjectData) value.ArrayHandle {
	h.allocCounter++
	return value.ArrayHandle(bumpAlloc(&h.Arrays, sizeclass.ClassWarm, d))
}

func (h *Heap) AllocArrayBuffer(d *ArrayBufferHeapData) value.ArrayBufferHandle {
	h.allocCounter++
	return value.ArrayBufferHandle(bumpAlloc(&h.ArrayBuffers, sizeclass.ClassCold, d))
}

func (h *Heap) AllocArrayIterator(d *ArrayIteratorHeapData) value.ArrayIteratorHandle {
	h.allocCounter++
	return value.ArrayIteratorHandle(bumpAlloc(&h.ArrayIterators, sizeclass.ClassCold, d))
}

func (h *Heap) AllocModuleNamespace(d *ModuleNamespaceHeapData) value.ModuleHandle {
	h.allocCounter++
	return value.ModuleHandle(bumpAlloc(&h.ModuleNamespaces, sizeclass.ClassCold, d))
}

func (h *Heap) AllocString(d *StringData) value.StringHandle {
	h.allocCounter++
	return value.StringHandle(bumpAlloc(&h.Strings, sizeclass.ClassHot, d))
}

func (h *Heap) AllocNumber(d *NumberData) value.NumberHandle {
	h.allocCounter++
	return value.NumberHandle(bumpAlloc(&h.Numbers, sizeclass.ClassHot, d))
}

func (h *Heap) AllocBigInt(d *BigIntData) value.BigIntHandle {
	h.allocCounter++
	return value.BigIntHandle(bumpAlloc(&h.BigInts, sizeclass.ClassWarm, d))
}

func (h *Heap) AllocSymbol(d *SymbolData) value.SymbolHandle {
	h.allocCounter++
	return value.SymbolHandle(bumpAlloc(&h.Symbols, sizeclass.ClassWarm, d))
}

// GetOrdinary dereferences h, panicking (an Invariant, never a JsResult) if
// the handle is out of bounds or its slot has been swept. Mirrors spec
// §7's "reading from an evicted heap slot" fatal condition.
func (h *Heap) GetOrdinary(ref value.OrdinaryHandle) *OrdinaryObjectData {
	return mustGet(h.Ordinary, uint32(ref))
}
func (h *Heap) GetArray(ref value.ArrayHandle) *ArrayObjectData {
	return mustGet(h.Arrays, uint32(ref))
}
func (h *Heap) GetArrayBuffer(ref value.ArrayBufferHandle) *ArrayBufferHeapData {
	return mustGet(h.ArrayBuffers, uint32(ref))
}
func (h *Heap) GetArrayIterator(ref value.ArrayIteratorHandle) *ArrayIteratorHeapData {
	return mustGet(h.ArrayIterators, uint32(ref))
}
func (h *Heap) GetModuleNamespace(ref value.ModuleHandle) *ModuleNamespaceHeapData {
	return mustGet(h.ModuleNamespaces, uint32(ref))
}
func (h *Heap) GetString(ref value.StringHandle) *StringData { return mustGet(h.Strings, uint32(ref)) }
func (h *Heap) GetNumber(ref value.NumberHandle) *NumberData { return mustGet(h.Numbers, uint32(ref)) }
func (h *Heap) GetBigInt(ref value.BigIntHandle) *BigIntData { return mustGet(h.BigInts, uint32(ref)) }
func (h *Heap) GetSymbol(ref value.SymbolHandle) *SymbolData { return mustGet(h.Symbols, uint32(ref)) }

// SameValue implements ECMA-262 SameValue (spec §8) with heap-boxed
// Numbers, BigInts, and Strings resolved to their stored content before
// comparing. value.SameValue alone compares TagNumber/TagBigInt/TagString
// Values by handle identity, so two independently-allocated heap records
// holding equal content (e.g. two Number handles both boxing 1e300) would
// otherwise compare unequal, violating SameValue's agreement with ===.
// Symbols are still compared by handle: a Symbol is only ever SameValue as
// itself, never by content, so identity is the correct comparison there.
func (h *Heap) SameValue(x, y value.Value) bool {
	if x.Tag() == y.Tag() {
		switch x.Tag() {
		case value.TagNumber:
			return value.SameValueNumber(h.GetNumber(x.NumberHandle()).Value, h.GetNumber(y.NumberHandle()).Value)
		case value.TagBigInt:
			return sameBigInt(h.GetBigInt(x.BigIntHandle()), h.GetBigInt(y.BigIntHandle()))
		case value.TagString:
			return h.GetString(x.StringHandle()).AsString() == h.GetString(y.StringHandle()).AsString()
		}
	}
	return value.SameValue(x, y)
}

func sameBigInt(a, b *BigIntData) bool {
	az, bz := isZeroBigInt(a), isZeroBigInt(b)
	if az || bz {
		return az && bz
	}
	if a.Negative != b.Negative || len(a.Digits) != len(b.Digits) {
		return false
	}
	for i, d := range a.Digits {
		if d != b.Digits[i] {
			return false
		}
	}
	return true
}

func isZeroBigInt(d *BigIntData) bool {
	for _, digit := range d.Digits {
		if digit != 0 {
			return false
		}
	}
	return true
}

func mustGet[T any](vec []*T, idx uint32) *T {
	if int(idx) >= len(vec) || vec[idx] == nil {
		value.Invariant("heap: handle %d out of bounds or not live", idx)
	}
	return vec[idx]
}

// IsLive reports whether an object handle of the given kind currently names
// a live slot, without panicking — used by tests asserting post-sweep invariants.
func (h *Heap) IsLive(kind value.ObjectKind, idx uint32) bool {
	switch kind {
	case value.KindOrdinary:
		return int(idx) < len(h.Ordinary) && h.Ordinary[idx] != nil
	case value.KindArray:
		return int(idx) < len(h.Arrays) && h.Arrays[idx] != nil
	case value.KindArrayBuffer:
		return int(idx) < len(h.ArrayBuffers) && h.ArrayBuffers[idx] != nil
	case value.KindArrayIterator:
		return int(idx) < len(h.ArrayIterators) && h.ArrayIterators[idx] != nil
	case value.KindModuleNamespace:
		return int(idx) < len(h.ModuleNamespaces) && h.ModuleNamespaces[idx] != nil
	default:
		return false
	}
}

// AllocCount returns the number of allocations since the heap was created
// or last swept, the counter spec §4.2 calls alloc_counter.
func (h *Heap) AllocCount() int { return h.allocCounter }

// ShouldCollect reports whether allocation pressure has crossed the
// configured threshold (spec §4.2: "triggered by allocation pressure").
func (h *Heap) ShouldCollect() bool { return h.allocCounter >= h.threshold }
