package heap

import "github.com/ovmjs/corevm/value"

// mark runs the mark phase to a fixed point: seed the queue from every root
// provider and every active root-set frame, then repeatedly drain each
// kind's bucket, marking its members' contents (which may enqueue more),
// until every bucket is empty (spec §4.2's "Work queues are drained until
// empty").
func (h *Heap) mark() *MarkQueue {
	q := newMarkQueue()

	for _, p := range h.providers {
		p(q)
	}
	h.roots.markRoots(q)

	for {
		progressed := false

		for _, idx := range q.drainOrdinary() {
			if d := h.Ordinary[idx]; d != nil {
				d.MarkValues(q)
				progressed = true
			}
		}
		for _, idx := range q.drainArrays() {
			if d := h.Arrays[idx]; d != nil {
				d.MarkValues(q)
				progressed = true
			}
		}
		for _, idx := range q.drainArrayBuffers() {
			if d := h.ArrayBuffers[idx]; d != nil {
				d.MarkValues(q)
				progressed = true
			}
		}
		for _, idx := range q.drainArrayIterators() {
			if d := h.ArrayIterators[idx]; d != nil {
				d.MarkValues(q)
				progressed = true
			}
		}
		for _, idx := range q.drainModules() {
			if d := h.ModuleNamespaces[idx]; d != nil {
				d.MarkValues(q)
				progressed = true
			}
		}
		if !progressed {
			break
		}
	}

	return q
}

// sweep builds the compaction map for every vector from the mark queue's
// `seen` set and compacts each vector in place, nulling and dropping
// unmarked slots (spec §4.2's sweep phase).
func (h *Heap) sweep(q *MarkQueue) *CompactionSet {
	c := &CompactionSet{}

	h.Ordinary, c.Ordinary = buildCompactionMap(h.Ordinary, isMarkedObject(q, value.KindOrdinary))
	h.Arrays, c.Arrays = buildCompactionMap(h.Arrays, isMarkedObject(q, value.KindArray))
	h.ArrayBuffers, c.ArrayBuffers = buildCompactionMap(h.ArrayBuffers, isMarkedObject(q, value.KindArrayBuffer))
	h.ArrayIterators, c.ArrayIterators = buildCompactionMap(h.ArrayIterators, isMarkedObject(q, value.KindArrayIterator))
	h.ModuleNamespaces, c.Modules = buildCompactionMap(h.ModuleNamespaces, isMarkedObject(q, value.KindModuleNamespace))
	h.Strings, c.Strings = buildCompactionMap(h.Strings, isMarkedTagged(q, stringTag))
	h.Numbers, c.Numbers = buildCompactionMap(h.Numbers, isMarkedTagged(q, numberTag))
	h.BigInts, c.BigInts = buildCompactionMap(h.BigInts, isMarkedTagged(q, bigintTag))
	h.Symbols, c.Symbols = buildCompactionMap(h.Symbols, isMarkedTagged(q, symbolTag))

	return c
}

// fixup rewrites every surviving record's contained handles (and the active
// root set) through the freshly built compaction maps (spec §4.2's
// "Fix-up").
func (h *Heap) fixup(c *CompactionSet) {
	for _, d := range h.Ordinary {
		d.SweepValues(c)
	}
	for _, d := range h.Arrays {
		d.SweepValues(c)
	}
	for _, d := range h.ArrayBuffers {
		d.SweepValues(c)
	}
	for _, d := range h.ArrayIterators {
		d.SweepValues(c)
	}
	for _, d := range h.ModuleNamespaces {
		d.SweepValues(c)
	}
	h.roots.sweepRoots(c)
}
