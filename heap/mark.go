package heap

import "github.com/ovmjs/corevm/value"

// MarkQueue is the per-kind work-queue set the mark phase drains (spec
// §4.2's "each per-kind data record implements mark_values(queues) that
// pushes every child handle to a per-kind work queue"). Marking-then-
// enqueueing (never recursing) is what lets cyclic graphs — prototype
// chains, the module graph, closures — terminate: a handle already in
// `seen` is never pushed twice.
type MarkQueue struct {
	seen map[seenKey]bool

	ordinary       []uint32
	arrays         []uint32
	arrayBuffers   []uint32
	arrayIterators []uint32
	modules        []uint32
	strings        []uint32
	numbers        []uint32
	bigints        []uint32
	symbols        []uint32
}

type seenKey struct {
	kind value.ObjectKind
	tag  value.Tag
	idx  uint32
}

func newMarkQueue() *MarkQueue {
	return &MarkQueue{seen: make(map[seenKey]bool)}
}

func (q *MarkQueue) pushOnce(k seenKey, bucket *[]uint32) {
	if q.seen[k] {
		return
	}
	q.seen[k] = true
	*bucket = append(*bucket, k.idx)
}

// PushValue enqueues every handle reachable from v (a no-op for immediates).
func (q *MarkQueue) PushValue(v value.Value) {
	switch v.Tag() {
	case value.TagString:
		q.PushString(v.StringHandle())
	case value.TagNumber:
		q.PushNumber(v.NumberHandle())
	case value.TagBigInt:
		q.PushBigInt(v.BigIntHandle())
	case value.TagSymbol:
		q.PushSymbol(v.SymbolHandle())
	case value.TagObject, value.TagArray, value.TagArrayBuffer, value.TagArrayIterator,
		value.TagModule, value.TagFunction, value.TagPromise:
		q.pushObject(v.ObjectKind(), v.ObjectHandle())
	}
}

func (q *MarkQueue) pushObject(kind value.ObjectKind, h uint32) {
	key := seenKey{kind: kind, tag: value.TagObject, idx: h}
	switch kind {
	case value.KindOrdinary:
		q.pushOnce(key, &q.ordinary)
	case value.KindArray:
		q.pushOnce(key, &q.arrays)
	case value.KindArrayBuffer:
		q.pushOnce(key, &q.arrayBuffers)
	case value.KindArrayIterator:
		q.pushOnce(key, &q.arrayIterators)
	case value.KindModuleNamespace:
		q.pushOnce(key, &q.modules)
	}
}

func (q *MarkQueue) PushString(h value.StringHandle) {
	q.pushOnce(seenKey{tag: value.TagString, idx: uint32(h)}, &q.strings)
}
func (q *MarkQueue) PushNumber(h value.NumberHandle) {
	q.pushOnce(seenKey{tag: value.TagNumber, idx: uint32(h)}, &q.numbers)
}
func (q *MarkQueue) PushBigInt(h value.BigIntHandle) {
	q.pushOnce(seenKey{tag: value.TagBigInt, idx: uint32(h)}, &q.bigints)
}
func (q *MarkQueue) PushSymbol(h value.SymbolHandle) {
	q.pushOnce(seenKey{tag: value.TagSymbol, idx: uint32(h)}, &q.symbols)
}

// drainOrdinary pops all currently-queued ordinary-object indices, letting
// the caller mark their contents (which may enqueue more). Returns nil once
// the queue for that kind is empty, terminating the worklist loop.
func (q *MarkQueue) drainOrdinary() []uint32 { return drain(&q.ordinary) }
func (q *MarkQueue) drainArrays() []uint32 { return drain(&q.arrays) }
func (q *MarkQueue) drainArrayBuffers() []uint32 { return drain(&q.arrayBuffers) }
func (q *MarkQueue) drainArrayIterators() []uint32 { return drain(&q.arrayIterators) }
func (q *MarkQueue) drainModules() []uint32 { return drain(&q.modules) }

func drain(bucket *[]uint32) []uint32 {
	if len(*bucket) == 0 {
		return nil
	}
	out := *bucket
	*bucket = nil
	return out
}

// isMarkedObject returns a predicate testing whether idx was marked for the
// given object kind, for use with buildCompactionMap.
func isMarkedObject(q *MarkQueue, kind value.ObjectKind) func(uint32) bool {
	return func(idx uint32) bool {
		return q.seen[seenKey{kind: kind, tag: value.TagObject, idx: idx}]
	}
}

// the four scalar tags used as markers for non-object vectors; these never
// collide with value.TagObject or with each other since seenKey keys on tag.
const (
	stringTag = value.TagString
	numberTag = value.TagNumber
	bigintTag = value.TagBigInt
	symbolTag = value.TagSymbol
)

func isMarkedTagged(q *MarkQueue, tag value.Tag) func(uint32) bool {
	return func(idx uint32) bool {
		return q.seen[seenKey{tag: tag, idx: idx}]
	}
}
