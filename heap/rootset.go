package heap

import "github.com/ovmjs/corevm/value"

// rootSlot is a single rooted handle: a stack-allocated root visible to the
// mark phase (spec §4.2's ScopedHandle). Its Value is rewritten in place by
// the compaction fix-up pass, which is what lets a Scoped handle survive a
// GC cycle while plain handles held across an allocating call do not.
type rootSlot struct {
	v     value.Value
	freed bool
}

// scopeFrame is one GcScope's root set: every handle explicitly scoped into
// it via Heap.Root. Frames nest like a call stack; a frame's slots are
// dropped (freed = true, no longer a root) when the frame is exited, the
// "implicitly scopes any temporary rooted handles... released in reverse
// acquisition order" rule from spec §5.
type scopeFrame struct {
	slots []*rootSlot
}

// RootSet is the Heap's stack of active GcScope frames, the moral
// equivalent of the teacher's dirty-range tracker: instead of byte ranges
// awaiting an msync flush, it tracks root slots awaiting a GC mark pass.
type RootSet struct {
	frames []*scopeFrame
}

func newRootSet() *RootSet {
	return &RootSet{}
}

// pushFrame begins a new scope, the Begin() half of the teacher's tx
// protocol.
func (r *RootSet) pushFrame() *scopeFrame {
	f := &scopeFrame{}
	r.frames = append(r.frames, f)
	return f
}

// popFrame ends the most recently pushed scope, freeing its root slots.
// Panics if frame is not the top of the stack — scopes must be exited in
// reverse acquisition order, matching native-code unwind discipline (spec
// §5's "Scoped resources").
func (r *RootSet) popFrame(frame *scopeFrame) {
	if len(r.frames) == 0 || r.frames[len(r.frames)-1] != frame {
		value.Invariant("heap: GcScope frames must be exited in reverse acquisition order")
	}
	for _, s := range frame.slots {
		s.freed = true
	}
	r.frames = r.frames[:len(r.frames)-1]
}

// root registers v as a GC root for the lifetime of frame.
func (r *RootSet) root(frame *scopeFrame, v value.Value) *rootSlot {
	s := &rootSlot{v: v}
	frame.slots = append(frame.slots, s)
	return s
}

// markRoots pushes every active root slot's value onto the mark queue.
func (r *RootSet) markRoots(q *MarkQueue) {
	for _, f := range r.frames {
		for _, s := range f.slots {
			if !s.freed {
				q.PushValue(s.v)
			}
		}
	}
}

// sweepRoots rewrites every active root slot's handle through the
// post-sweep compaction maps.
func (r *RootSet) sweepRoots(c *CompactionSet) {
	for _, f := range r.frames {
		for _, s := range f.slots {
			if s.freed {
				continue
			}
			if nv, ok := c.RewriteValue(s.v); ok {
				s.v = nv
			}
		}
	}
}

// Scoped is a rooted handle: a Value guaranteed to survive any number of GC
// cycles for as long as the GcScope it was rooted into remains open. Unlike
// a plain value.Value returned from an internal_* call, a Scoped handle may
// be held across subsequent allocating calls.
type Scoped struct {
	slot *rootSlot
}

// Get returns the handle's current (possibly GC-moved) Value. Panics if the
// owning scope has already been exited — a Scoped handle does not outlive
// its GcScope, matching the spec's "handles bound to this scope's lifetime
// are valid for its duration."
func (s Scoped) Get() value.Value {
	if s.slot.freed {
		value.Invariant("heap: Scoped handle used after its GcScope was exited")
	}
	return s.slot.v
}
