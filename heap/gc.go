package heap

import "github.com/ovmjs/corevm/value"

// NoGcScope is held by an abstract operation that guarantees it will not
// allocate. Handles obtained while holding one are valid for the duration
// of the call that produced the token, never longer — an operation that
// discovers partway through that it needs to allocate must return a Break
// TryResult (see value.TryResult) instead of allocating, so the caller can
// retry with a GcScope.
//
// Go has no borrow checker to make "holding a stale handle across an
// allocation" a compile error (spec §9's design note); this type exists so
// the convention is at least visible in every function signature that
// cares. The heap.Heap Alloc* methods themselves take no scope argument, so
// NoGcScope-taking code refraining from allocation is a convention, not
// something the compiler enforces.
type NoGcScope struct {
	heap *Heap
}

// GcScope is held by an abstract operation that may allocate and therefore
// may trigger a GC. Any handle not explicitly rooted via Heap.Root before an
// allocating call is made is not guaranteed to remain valid afterward.
type GcScope struct {
	heap  *Heap
	frame *scopeFrame
}

// EnterNoGC returns a token for a region of code that the caller guarantees
// will not allocate.
func (h *Heap) EnterNoGC() NoGcScope {
	return NoGcScope{heap: h}
}

// EnterGC opens a new root scope and returns both the token and the
// function that must be called exactly once to close it (reverse-order
// unwind, spec §5). Typical use:
//
//	scope, end := heap.EnterGC()
//	defer end()
func (h *Heap) EnterGC() (GcScope, func()) {
	frame := h.roots.pushFrame()
	scope := GcScope{heap: h, frame: frame}
	return scope, func() { h.roots.popFrame(frame) }
}

// Heap returns the scope's owning Heap, for code that receives only a scope
// token but needs to make further heap calls.
func (s NoGcScope) Heap() *Heap { return s.heap }
func (s GcScope) Heap() *Heap   { return s.heap }

// Reborrow downgrades a GcScope to a NoGcScope for passing into a callee
// that is statically known not to allocate, without losing the ability to
// keep allocating in the caller afterward.
func (s GcScope) Reborrow() NoGcScope { return NoGcScope{heap: s.heap} }

// Root scopes v for the lifetime of the given GcScope, returning a Scoped
// handle that survives subsequent GCs triggered within that scope.
func (h *Heap) Root(scope GcScope, v value.Value) Scoped {
	return Scoped{slot: h.roots.root(scope.frame, v)}
}

// GCStats reports the outcome of one collection cycle.
type GCStats struct {
	Cycle            int
	OrdinaryBefore   int
	OrdinaryAfter    int
	ArraysBefore     int
	ArraysAfter      int
	StringsBefore    int
	StringsAfter     int
	TotalBefore      int
	TotalAfter       int
}

var gcCycleCount int

// RunGC performs one stop-the-world mark-sweep-compact cycle (spec §4.2).
// It is always safe to call — the caller need not hold any scope, since GC
// only ever reads existing roots, never creates new ones — but it
// invalidates every unrooted handle in the program, so embedders normally
// call it only from MaybeGC (between GcScope-guarded operations) or
// explicitly from tests.
func (h *Heap) RunGC() GCStats {
	gcCycleCount++

	before := GCStats{
		Cycle:          gcCycleCount,
		OrdinaryBefore: countLive(h.Ordinary),
		ArraysBefore:   countLive2(h.Arrays),
		StringsBefore:  countLive3(h.Strings),
	}
	before.TotalBefore = len(h.Ordinary) + len(h.Arrays) + len(h.ArrayBuffers) +
		len(h.ArrayIterators) + len(h.ModuleNamespaces) + len(h.Strings) +
		len(h.Numbers) + len(h.BigInts) + len(h.Symbols)

	q := h.mark()
	compactions := h.sweep(q)
	h.fixup(compactions)

	before.OrdinaryAfter = countLive(h.Ordinary)
	before.ArraysAfter = countLive2(h.Arrays)
	before.StringsAfter = countLive3(h.Strings)
	before.TotalAfter = len(h.Ordinary) + len(h.Arrays) + len(h.ArrayBuffers) +
		len(h.ArrayIterators) + len(h.ModuleNamespaces) + len(h.Strings) +
		len(h.Numbers) + len(h.BigInts) + len(h.Symbols)

	h.allocCounter = 0
	h.lastStats = before
	return before
}

// MaybeGC runs a collection iff allocation pressure has crossed the
// configured threshold, returning whether it did.
func (h *Heap) MaybeGC() bool {
	if !h.ShouldCollect() {
		return false
	}
	h.RunGC()
	return true
}

// LastGCStats returns the statistics from the most recently completed
// collection cycle.
func (h *Heap) LastGCStats() GCStats { return h.lastStats }

func countLive(vec []*OrdinaryObjectData) int {
	n := 0
	for _, v := range vec {
		if v != nil {
			n++
		}
	}
	return n
}
func countLive2(vec []*ArrayObjectData) int {
	n := 0
	for _, v := range vec {
		if v != nil {
			n++
		}
	}
	return n
}
func countLive3(vec []*StringData) int {
	n := 0
	for _, v := range vec {
		if v != nil {
			n++
		}
	}
	return n
}
