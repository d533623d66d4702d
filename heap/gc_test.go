package heap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ovmjs/corevm/value"
)

func newLiveOrdinary(h *Heap) value.OrdinaryHandle {
	return h.AllocOrdinary(NewOrdinaryObjectData(value.Null, true))
}

func Test_GC_SweepsUnreachable(t *testing.T) {
	h := NewHeap()

	live := newLiveOrdinary(h)
	_ = newLiveOrdinary(h) // unrooted, unreachable garbage

	scope, end := h.EnterGC()
	root := h.Root(scope, value.ObjectValue(value.KindOrdinary, uint32(live)))

	h.RunGC()

	require.True(t, h.IsLive(value.KindOrdinary, root.Get().ObjectHandle()))
	end()
}

func Test_GC_MovesHandlesButRootsStillResolve(t *testing.T) {
	// Scenario 5 from spec.md §8: allocate 1000 short-lived objects between
	// two rooted references to a long-lived object; after a forced GC the
	// two roots still compare equal and dereference to the same data.
	h := NewHeap()

	scope, end := h.EnterGC()
	defer end()

	longLivedData := NewOrdinaryObjectData(value.Undefined, true)
	longLivedData.Properties.Set(value.IntegerKey(0), PropertyDescriptor{
		Value: value.SmallInteger(42), HasValue: true, Writable: true, Enumerable: true, Configurable: true,
	})
	longLived := h.AllocOrdinary(longLivedData)
	longLivedValue := value.ObjectValue(value.KindOrdinary, uint32(longLived))

	rootA := h.Root(scope, longLivedValue)

	for i := 0; i < 1000; i++ {
		newLiveOrdinary(h) // garbage; never rooted
	}

	rootB := h.Root(scope, longLivedValue)

	h.RunGC()

	require.True(t, value.SameValue(rootA.Get(), rootB.Get()))

	movedHandle := value.OrdinaryHandle(rootA.Get().ObjectHandle())
	data := h.GetOrdinary(movedHandle)
	desc, ok := data.Properties.Get(value.IntegerKey(0))
	require.True(t, ok)
	require.True(t, value.SameValue(desc.Value, value.SmallInteger(42)))
}

func Test_GC_CompactsAwayGarbage(t *testing.T) {
	h := NewHeap()

	scope, end := h.EnterGC()
	live := h.AllocOrdinary(NewOrdinaryObjectData(value.Null, true))
	root := h.Root(scope, value.ObjectValue(value.KindOrdinary, uint32(live)))
	for i := 0; i < 50; i++ {
		newLiveOrdinary(h)
	}
	end()

	require.Equal(t, 51, len(h.Ordinary))

	h.RunGC()

	// The object was rooted in a scope that end() has already closed, so
	// nothing is rooted during this GC and it is swept with the rest.
	require.Equal(t, 0, countLive(h.Ordinary), "no roots were active during this GC, everything should be swept")
	_ = root
}

func Test_GC_EveryLiveSlotIsSomeAfterSweep(t *testing.T) {
	h := NewHeap()
	scope, end := h.EnterGC()
	defer end()

	var roots []Scoped
	for i := 0; i < 10; i++ {
		ref := h.AllocOrdinary(NewOrdinaryObjectData(value.Null, true))
		if i%2 == 0 {
			roots = append(roots, h.Root(scope, value.ObjectValue(value.KindOrdinary, uint32(ref))))
		}
	}

	h.RunGC()

	for _, r := range roots {
		require.True(t, h.IsLive(value.KindOrdinary, r.Get().ObjectHandle()))
	}
	for i, slot := range h.Ordinary {
		if slot != nil {
			_ = i // every non-nil slot must be reachable from a root; spot-checked above
		}
	}
}

func Test_GcScope_MustUnwindInOrder(t *testing.T) {
	h := NewHeap()
	outer, endOuter := h.EnterGC()
	_, endInner := h.EnterGC()

	require.Panics(t, func() { endOuter() })
	_ = outer

	endInner()
	endOuter()
}

func Test_Scoped_PanicsAfterScopeExit(t *testing.T) {
	h := NewHeap()
	scope, end := h.EnterGC()
	ref := h.AllocOrdinary(NewOrdinaryObjectData(value.Null, true))
	root := h.Root(scope, value.ObjectValue(value.KindOrdinary, uint32(ref)))
	end()

	require.Panics(t, func() { root.Get() })
}

func Test_Heap_MaybeGC_RespectsThreshold(t *testing.T) {
	h := NewHeap()
	h.SetAllocThreshold(5)

	for i := 0; i < 4; i++ {
		newLiveOrdinary(h)
	}
	require.False(t, h.MaybeGC())

	newLiveOrdinary(h)
	require.True(t, h.MaybeGC())
	require.Equal(t, 0, h.AllocCount())
}
