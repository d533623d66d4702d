package value

// PropertyKeyTag discriminates the variants of a PropertyKey.
type PropertyKeyTag uint8

const (
	PropertyKeyInteger PropertyKeyTag = iota
	PropertyKeySmallString
	PropertyKeyString
	PropertyKeySymbol
	PropertyKeyPrivateName
)

// StringHandle, SymbolHandle and PrivateNameHandle are heap indices into the
// string/symbol/private-name vectors. Defined here (rather than in heap) so
// PropertyKey has no import-cycle dependency on the heap package; heap
// imports value, not the reverse.
type StringHandle uint32
type SymbolHandle uint32
type PrivateNameHandle uint32

// PropertyKey names a property slot: an array index, a short or
// heap-allocated string, a symbol, or a private name. Ordering among keys of
// the same ordinary object follows ECMA-262 7.3.23 OrdinaryOwnPropertyKeys:
// integer keys ascending, then strings in insertion order, then symbols in
// insertion order. Integer-vs-string-vs-symbol ordering is total; within the
// integer class the payload decides, and strings and symbols compare by
// insertion sequence (see LessForOwnKeys).
type PropertyKey struct {
	tag         PropertyKeyTag
	integer     int64
	small       SmallString
	str         StringHandle
	sym         SymbolHandle
	private     PrivateNameHandle
}

// IntegerKey builds an integer-indexed PropertyKey. ECMA-262 restricts array
// indices to the range [0, 2^32-2]; this representation also accepts
// negative integers (used internally for non-index numeric property names
// like "-1", which are ordinary string keys, not array indices — callers
// must route those through StringKey instead).
func IntegerKey(n int64) PropertyKey {
	return PropertyKey{tag: PropertyKeyInteger, integer: n}
}

// SmallStringKey builds a PropertyKey backed by an immediate SmallString.
func SmallStringKey(s SmallString) PropertyKey {
	return PropertyKey{tag: PropertyKeySmallString, small: s}
}

// StringKey builds a PropertyKey backed by a heap-allocated string.
func StringKey(h StringHandle) PropertyKey {
	return PropertyKey{tag: PropertyKeyString, str: h}
}

// SymbolKey builds a PropertyKey backed by a heap-allocated symbol.
func SymbolKey(h SymbolHandle) PropertyKey {
	return PropertyKey{tag: PropertyKeySymbol, sym: h}
}

// PrivateNameKey builds a PropertyKey naming a private field/method. Private
// names are never returned from OwnPropertyKeys / enumeration; callers
// dispatching [[Get]]/[[Set]] check IsPrivateName first and route to
// PrivateGet/PrivateSet instead of the ordinary property path.
func PrivateNameKey(h PrivateNameHandle) PropertyKey {
	return PropertyKey{tag: PropertyKeyPrivateName, private: h}
}

func (k PropertyKey) Tag() PropertyKeyTag { return k.tag }

func (k PropertyKey) IsInteger() bool     { return k.tag == PropertyKeyInteger }
func (k PropertyKey) IsSmallString() bool { return k.tag == PropertyKeySmallString }
func (k PropertyKey) IsString() bool {
	return k.tag == PropertyKeyString || k.tag == PropertyKeySmallString
}
func (k PropertyKey) IsSymbol() bool      { return k.tag == PropertyKeySymbol }
func (k PropertyKey) IsPrivateName() bool { return k.tag == PropertyKeyPrivateName }

// Integer returns the integer payload; only meaningful when IsInteger().
func (k PropertyKey) Integer() int64 { return k.integer }

// SmallStringValue returns the SmallString payload; only meaningful when IsSmallString().
func (k PropertyKey) SmallStringValue() SmallString { return k.small }

// StringHandle returns the heap string handle; only meaningful when Tag() == PropertyKeyString.
func (k PropertyKey) StringHandle() StringHandle { return k.str }

// SymbolHandle returns the heap symbol handle; only meaningful when IsSymbol().
func (k PropertyKey) SymbolHandle() SymbolHandle { return k.sym }

// PrivateNameHandle returns the heap private-name handle; only meaningful when IsPrivateName().
func (k PropertyKey) PrivateNameHandle() PrivateNameHandle { return k.private }

// keyOrderClass groups a PropertyKey into the three OrdinaryOwnPropertyKeys
// buckets: 0 = integer index, 1 = string, 2 = symbol. Private names never
// appear in own-keys enumeration and sort last defensively.
func (k PropertyKey) keyOrderClass() int {
	switch {
	case k.tag == PropertyKeyInteger:
		return 0
	case k.tag == PropertyKeySmallString || k.tag == PropertyKeyString:
		return 1
	case k.tag == PropertyKeySymbol:
		return 2
	default:
		return 3
	}
}

// LessForOwnKeys reports whether k sorts before other under
// OrdinaryOwnPropertyKeys ordering, given each key's insertion sequence
// number (assigned by the property table when the key was first defined;
// meaningless for integer keys, which always sort by numeric value).
func LessForOwnKeys(k PropertyKey, kSeq int, other PropertyKey, otherSeq int) bool {
	kc, oc := k.keyOrderClass(), other.keyOrderClass()
	if kc != oc {
		return kc < oc
	}
	if kc == 0 {
		return k.integer < other.integer
	}
	return kSeq < otherSeq
}
