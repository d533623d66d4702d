package heap

import "github.com/ovmjs/corevm/value"

// PropertyDescriptor mirrors the ECMA-262 Property Descriptor record. A
// descriptor is accessor iff Get or Set is present, data iff Value or
// Writable is present; HasValue/HasGet etc. distinguish "absent" from
// "present but undefined/false" the way a partial descriptor argument to
// DefineOwnProperty must.
type PropertyDescriptor struct {
	Value      value.Value
	Get        value.Value
	Set        value.Value
	Writable   bool
	Enumerable bool
	Configurable bool

	HasValue        bool
	HasGet          bool
	HasSet          bool
	HasWritable     bool
	HasEnumerable   bool
	HasConfigurable bool
}

// IsAccessor reports whether the descriptor describes an accessor property.
func (d PropertyDescriptor) IsAccessor() bool { return d.HasGet || d.HasSet }

// IsData reports whether the descriptor describes a data property.
func (d PropertyDescriptor) IsData() bool { return d.HasValue || d.HasWritable }

// IsGeneric reports a descriptor with neither data nor accessor fields —
// used by ValidateAndApplyPropertyDescriptor to preserve the existing kind.
func (d PropertyDescriptor) IsGeneric() bool { return !d.IsAccessor() && !d.IsData() }

// propEntry is one slot of a PropertyTable: the key plus its descriptor and
// the sequence number it was inserted at, by which OrdinaryOwnPropertyKeys
// orders string and symbol keys. Deletion only marks an entry not live; its
// position is never reused, and a re-added key is appended with a new
// sequence number.
type propEntry struct {
	key  value.PropertyKey
	desc PropertyDescriptor
	seq  int
	live bool
}

// PropertyTable is the ordered key->descriptor map backing every ordinary
// object (and the upgrade store exotic objects lazily allocate for
// user-assigned symbol properties). Ordering on enumeration follows
// ECMA-262 7.3.23: integer keys ascending, then strings in insertion order,
// then symbols in insertion order — mirrored here by recording an
// insertion sequence number per entry and an index for O(1) lookup,
// exactly the two-structure (map + ordered list) shape the teacher's
// hive/values.List and hive/index packages pair up for NK/VK lookups.
type PropertyTable struct {
	entries []propEntry
	index   map[propKeyLookup]int
	nextSeq int
}

// propKeyLookup is a comparable projection of a PropertyKey suitable as a Go
// map key (PropertyKey itself holds a SmallString array and is comparable,
// but normalizing through this type keeps the lookup map insulated from
// PropertyKey's internal layout changing).
type propKeyLookup struct {
	tag   value.PropertyKeyTag
	ival  int64
	sval  string
	hval  uint32
}

func lookupKeyFor(k value.PropertyKey) propKeyLookup {
	switch k.Tag() {
	case value.PropertyKeyInteger:
		return propKeyLookup{tag: k.Tag(), ival: k.Integer()}
	case value.PropertyKeySmallString:
		return propKeyLookup{tag: value.PropertyKeySmallString, sval: k.SmallStringValue().String()}
	case value.PropertyKeyString:
		return propKeyLookup{tag: value.PropertyKeyString, hval: uint32(k.StringHandle())}
	case value.PropertyKeySymbol:
		return propKeyLookup{tag: value.PropertyKeySymbol, hval: uint32(k.SymbolHandle())}
	default:
		return propKeyLookup{tag: value.PropertyKeyPrivateName, hval: uint32(k.PrivateNameHandle())}
	}
}

// NewPropertyTable returns an empty table.
func NewPropertyTable() *PropertyTable {
	return &PropertyTable{index: make(map[propKeyLookup]int)}
}

// Get returns the descriptor for key, if present and live.
func (t *PropertyTable) Get(key value.PropertyKey) (PropertyDescriptor, bool) {
	i, ok := t.index[lookupKeyFor(key)]
	if !ok || !t.entries[i].live {
		return PropertyDescriptor{}, false
	}
	return t.entries[i].desc, true
}

// Has reports whether key names a live entry.
func (t *PropertyTable) Has(key value.PropertyKey) bool {
	_, ok := t.Get(key)
	return ok
}

// Set inserts or overwrites key's descriptor. A fresh key is appended with
// the next insertion sequence number; overwriting an existing live key
// keeps its original sequence number (redefinition does not move a
// property's enumeration position, per spec).
func (t *PropertyTable) Set(key value.PropertyKey, desc PropertyDescriptor) {
	lk := lookupKeyFor(key)
	if i, ok := t.index[lk]; ok && t.entries[i].live {
		t.entries[i].desc = desc
		return
	}
	seq := t.nextSeq
	t.nextSeq++
	t.entries = append(t.entries, propEntry{key: key, desc: desc, seq: seq, live: true})
	t.index[lk] = len(t.entries) - 1
}

// Delete removes key. Safe to call on a key that is not present.
func (t *PropertyTable) Delete(key value.PropertyKey) {
	lk := lookupKeyFor(key)
	i, ok := t.index[lk]
	if !ok {
		return
	}
	t.entries[i].live = false
	delete(t.index, lk)
}

// Len returns the number of live entries.
func (t *PropertyTable) Len() int {
	n := 0
	for _, e := range t.entries {
		if e.live {
			n++
		}
	}
	return n
}

// OwnKeys returns the table's keys ordered per OrdinaryOwnPropertyKeys:
// integer keys ascending, then string keys, then symbol keys, each group in
// insertion order.
func (t *PropertyTable) OwnKeys() []value.PropertyKey {
	live := make([]propEntry, 0, len(t.entries))
	for _, e := range t.entries {
		if e.live {
			live = append(live, e)
		}
	}
	sortEntries(live)
	keys := make([]value.PropertyKey, len(live))
	for i, e := range live {
		keys[i] = e.key
	}
	return keys
}

func sortEntries(entries []propEntry) {
	// Insertion sort: property tables are small (object shapes rarely
	// exceed a few dozen keys) and this keeps the sort stable without
	// pulling in sort.Slice's reflection overhead on a hot path.
	for i := 1; i < len(entries); i++ {
		j := i
		for j > 0 && value.LessForOwnKeys(entries[j].key, entries[j].seq, entries[j-1].key, entries[j-1].seq) {
			entries[j], entries[j-1] = entries[j-1], entries[j]
			j--
		}
	}
}

// SweepValues rewrites every handle this table holds — in keys and in
// descriptor values/accessors — through the post-sweep compaction maps, and
// rebuilds the lookup index since heap-string/symbol key handles may have
// moved.
func (t *PropertyTable) SweepValues(c *CompactionSet) {
	for i := range t.entries {
		e := &t.entries[i]
		if !e.live {
			continue
		}
		e.key = rewriteKey(c, e.key)
		if e.desc.HasValue {
			if nv, ok := c.RewriteValue(e.desc.Value); ok {
				e.desc.Value = nv
			}
		}
		if e.desc.HasGet {
			if nv, ok := c.RewriteValue(e.desc.Get); ok {
				e.desc.Get = nv
			}
		}
		if e.desc.HasSet {
			if nv, ok := c.RewriteValue(e.desc.Set); ok {
				e.desc.Set = nv
			}
		}
	}
	t.index = make(map[propKeyLookup]int, len(t.entries))
	for i, e := range t.entries {
		if e.live {
			t.index[lookupKeyFor(e.key)] = i
		}
	}
}

func rewriteKey(c *CompactionSet, k value.PropertyKey) value.PropertyKey {
	switch k.Tag() {
	case value.PropertyKeyString:
		if n, ok := c.Strings.Map(uint32(k.StringHandle())); ok {
			return value.StringKey(value.StringHandle(n))
		}
	case value.PropertyKeySymbol:
		if n, ok := c.Symbols.Map(uint32(k.SymbolHandle())); ok {
			return value.SymbolKey(value.SymbolHandle(n))
		}
	}
	return k
}

// MarkValues pushes every Value this table's descriptors reference onto the
// GC work queue: property values, and accessor get/set functions.
func (t *PropertyTable) MarkValues(q *MarkQueue) {
	for _, e := range t.entries {
		if !e.live {
			continue
		}
		if e.key.IsString() && e.key.Tag() == value.PropertyKeyString {
			q.PushString(e.key.StringHandle())
		}
		if e.key.IsSymbol() {
			q.PushSymbol(e.key.SymbolHandle())
		}
		if e.desc.HasValue {
			q.PushValue(e.desc.Value)
		}
		if e.desc.HasGet {
			q.PushValue(e.desc.Get)
		}
		if e.desc.HasSet {
			q.PushValue(e.desc.Set)
		}
	}
}
