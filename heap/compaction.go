package heap

import "github.com/ovmjs/corevm/value"

// tombstone marks a slot that did not survive sweep; CompactionMap.Map
// returns (0, false) for any old index mapped to it.
const tombstone = ^uint32(0)

// CompactionMap is one vector's old-index -> new-index table, built during
// sweep (spec §4.2: "build a compaction map assigning each surviving slot a
// new dense index"). Indices not present (or explicitly tombstoned) did not
// survive.
type CompactionMap struct {
	table []uint32 // indexed by old index; tombstone if not live
}

// Map translates an old index to its post-compaction index.
func (m CompactionMap) Map(old uint32) (uint32, bool) {
	if m.table == nil || int(old) >= len(m.table) {
		return 0, false
	}
	n := m.table[old]
	if n == tombstone {
		return 0, false
	}
	return n, true
}

// CompactionSet bundles every vector's CompactionMap produced by one sweep,
// passed to every surviving record's SweepValues and to RootSet's fixup
// pass so every live handle in the heap is rewritten consistently.
type CompactionSet struct {
	Ordinary       CompactionMap
	Arrays         CompactionMap
	ArrayBuffers   CompactionMap
	ArrayIterators CompactionMap
	Modules        CompactionMap
	Strings        CompactionMap
	Numbers        CompactionMap
	BigInts        CompactionMap
	Symbols        CompactionMap
}

// mapFor returns the CompactionMap for a given object kind.
func (c *CompactionSet) mapFor(kind value.ObjectKind) CompactionMap {
	switch kind {
	case value.KindArray:
		return c.Arrays
	case value.KindArrayBuffer:
		return c.ArrayBuffers
	case value.KindArrayIterator:
		return c.ArrayIterators
	case value.KindModuleNamespace:
		return c.Modules
	default:
		return c.Ordinary
	}
}

// RewriteValue returns v with any heap handle it carries rewritten through
// the matching compaction map. Immediates pass through unchanged. If v names
// a handle that did not survive (a bug: it should have been marked reachable
// before sweep), the zero Value is returned and ok is false.
func (c *CompactionSet) RewriteValue(v value.Value) (value.Value, bool) {
	switch v.Tag() {
	case value.TagString:
		n, ok := c.Strings.Map(uint32(v.StringHandle()))
		if !ok {
			return value.Value{}, false
		}
		return v.Rehandle(n), true
	case value.TagNumber:
		n, ok := c.Numbers.Map(uint32(v.NumberHandle()))
		if !ok {
			return value.Value{}, false
		}
		return v.Rehandle(n), true
	case value.TagBigInt:
		n, ok := c.BigInts.Map(uint32(v.BigIntHandle()))
		if !ok {
			return value.Value{}, false
		}
		return v.Rehandle(n), true
	case value.TagSymbol:
		n, ok := c.Symbols.Map(uint32(v.SymbolHandle()))
		if !ok {
			return value.Value{}, false
		}
		return v.Rehandle(n), true
	case value.TagObject, value.TagArray, value.TagArrayBuffer, value.TagArrayIterator,
		value.TagModule, value.TagFunction, value.TagPromise:
		m := c.mapFor(v.ObjectKind())
		n, ok := m.Map(v.ObjectHandle())
		if !ok {
			return value.Value{}, false
		}
		return v.Rehandle(n), true
	default:
		return v, true
	}
}

// buildCompactionMap scans a vector's marked set (membership in `marked`)
// and returns the compacted slice plus the old->new map, in one pass —
// mirroring the teacher allocator's single-scan free-list rebuild.
func buildCompactionMap[T any](vec []*T, marked func(idx uint32) bool) ([]*T, CompactionMap) {
	table := make([]uint32, len(vec))
	out := make([]*T, 0, len(vec))
	for i, slot := range vec {
		if slot == nil || !marked(uint32(i)) {
			table[i] = tombstone
			continue
		}
		table[i] = uint32(len(out))
		out = append(out, slot)
	}
	return out, CompactionMap{table: table}
}
