package agent

import (
	"github.com/ovmjs/corevm/heap"
	"github.com/ovmjs/corevm/value"
)

// Intrinsics is the minimal realm-owned prototype table this core needs to
// satisfy reference.PrimitivePrototypes: one ordinary object per primitive
// wrapper kind, allocated once per Realm. A full ECMA-262 intrinsics table
// (%Object.prototype%, %Array.prototype%, the ~150 well-known intrinsics)
// is outside this core's scope (spec §1 — no bytecode interpreter consumes
// them), but the wrapper-prototype seam is exactly what GetValue/PutValue
// need to route primitive property access through, so it is built for
// real rather than stubbed.
type Intrinsics struct {
	BooleanPrototype value.Value
	NumberPrototype  value.Value
	StringPrototype  value.Value
	SymbolPrototype  value.Value
	BigIntPrototype  value.Value
}

func newIntrinsics(h *heap.Heap) *Intrinsics {
	mk := func() value.Value {
		ref := h.AllocOrdinary(heap.NewOrdinaryObjectData(value.Null, true))
		return value.ObjectValue(value.KindOrdinary, uint32(ref))
	}
	return &Intrinsics{
		BooleanPrototype: mk(),
		NumberPrototype:  mk(),
		StringPrototype:  mk(),
		SymbolPrototype:  mk(),
		BigIntPrototype:  mk(),
	}
}

// PrototypeFor implements reference.PrimitivePrototypes: resolves the
// wrapper prototype a primitive Value's property access routes through, or
// false for Undefined/Null (properties on those always throw a TypeError,
// never resolve to a wrapper).
func (in *Intrinsics) PrototypeFor(v value.Value) (value.Value, bool) {
	switch {
	case v.IsBoolean():
		return in.BooleanPrototype, true
	case v.IsNumeric() && !v.IsBigInt():
		return in.NumberPrototype, true
	case v.IsBigInt():
		return in.BigIntPrototype, true
	case v.IsString():
		return in.StringPrototype, true
	case v.IsSymbol():
		return in.SymbolPrototype, true
	default:
		return value.Value{}, false
	}
}

// Realm is ECMA-262's Realm Record (8.2): in this core, the intrinsics
// table plus the global object/environment pair. One Agent may host several
// realms (spec §5 describes the single-Agent model this core assumes, but
// realms are still separable per spec.md's GLOSSARY entry); module records
// are not realm-scoped here since ResolveExport's caching is per-Record, not
// per-Realm.
type Realm struct {
	Intrinsics  *Intrinsics
	GlobalObj   value.Value
}

// NewRealm allocates GlobalObj as an ordinary, extensible, null-prototype
// object and builds this realm's Intrinsics table.
func NewRealm(h *heap.Heap) *Realm {
	ref := h.AllocOrdinary(heap.NewOrdinaryObjectData(value.Null, true))
	return &Realm{
		Intrinsics: newIntrinsics(h),
		GlobalObj:  value.ObjectValue(value.KindOrdinary, uint32(ref)),
	}
}
