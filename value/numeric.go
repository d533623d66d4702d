package value

import "math"

// SameValue implements the ECMA-262 SameValue abstract operation: like ===
// except NaN is equal to itself and +0/-0 are distinguished.
func SameValue(x, y Value) bool {
	if x.tag != y.tag {
		// SmallFloat/Number (heap) and SmallInteger can still be
		// numerically same-value across representation; the heap package's
		// wrapper normalizes before calling this when both sides are
		// numeric but differently tagged.
		if x.IsNumeric() && y.IsNumeric() && x.tag != TagNumber && y.tag != TagNumber {
			return sameValueNumber(x.AsNumericF64(), y.AsNumericF64())
		}
		return false
	}
	switch x.tag {
	case TagUndefined, TagNull:
		return true
	case TagBoolean:
		return x.integer == y.integer
	case TagSmallInteger:
		return x.integer == y.integer
	case TagSmallFloat:
		return sameValueNumber(x.float, y.float)
	case TagSmallString:
		return x.small.Equal(y.small)
	case TagString, TagSymbol, TagNumber, TagBigInt:
		return x.handle == y.handle
	default:
		if x.IsObject() {
			return x.kind == y.kind && x.handle == y.handle
		}
		return false
	}
}

func sameValueNumber(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	if a == 0 && b == 0 {
		return math.Signbit(a) == math.Signbit(b)
	}
	return a == b
}

// SameValueNumber exposes sameValueNumber's NaN/signed-zero-aware float
// comparison to package heap, which resolves heap-boxed TagNumber values to
// their stored float64 before calling it (see Heap.SameValue).
func SameValueNumber(a, b float64) bool {
	return sameValueNumber(a, b)
}

// SameValueZero implements SameValueZero: like SameValue but +0 and -0 are
// considered equal (used by Array.prototype.includes, Map/Set key equality).
func SameValueZero(x, y Value) bool {
	if x.IsNumeric() && y.IsNumeric() {
		a, aOK := numericF64(x)
		b, bOK := numericF64(y)
		if aOK && bOK {
			if math.IsNaN(a) && math.IsNaN(b) {
				return true
			}
			return a == b
		}
	}
	return SameValue(x, y)
}

// numericF64 extracts a float64 from an immediate numeric Value. Heap
// Numbers (tag TagNumber) are not resolvable here without a heap handle —
// package heap's Heap.SameValue resolves the stored float first and calls
// SameValueNumber on the result; there is no heap-aware SameValueZero
// equivalent yet since nothing in this core's scope needs it.
func numericF64(v Value) (float64, bool) {
	switch v.tag {
	case TagSmallInteger:
		return float64(v.integer), true
	case TagSmallFloat:
		return v.float, true
	default:
		return 0, false
	}
}

// StrictEquals implements the === operator's non-numeric-NaN, non-zero-sign
// semantics: the inverse of SameValue's two exceptions.
func StrictEquals(x, y Value) bool {
	if x.IsNumeric() && y.IsNumeric() {
		a, aOK := numericF64(x)
		b, bOK := numericF64(y)
		if aOK && bOK {
			return a == b // NaN!=NaN and +0==-0 fall out of plain float ==
		}
	}
	return SameValue(x, y)
}
