package heap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ovmjs/corevm/value"
)

func Test_Heap_SameValue_ResolvesBoxedNumbers(t *testing.T) {
	h := NewHeap()

	a := value.NumberValue(h.AllocNumber(&NumberData{Value: 1e300}))
	b := value.NumberValue(h.AllocNumber(&NumberData{Value: 1e300}))
	c := value.NumberValue(h.AllocNumber(&NumberData{Value: 2e300}))

	require.True(t, h.SameValue(a, b), "two independently boxed equal Numbers must compare SameValue")
	require.False(t, h.SameValue(a, c))

	require.False(t, value.SameValue(a, b), "plain value.SameValue still compares heap Numbers by handle identity")
}

func Test_Heap_SameValue_NaNAndSignedZero(t *testing.T) {
	h := NewHeap()

	nan1 := value.NumberValue(h.AllocNumber(&NumberData{Value: math.NaN()}))
	nan2 := value.NumberValue(h.AllocNumber(&NumberData{Value: math.NaN()}))
	require.True(t, h.SameValue(nan1, nan2), "SameValue treats NaN as equal to itself")

	posZero := value.NumberValue(h.AllocNumber(&NumberData{Value: 0}))
	negZero := value.NumberValue(h.AllocNumber(&NumberData{Value: math.Copysign(0, -1)}))
	require.False(t, h.SameValue(posZero, negZero), "SameValue distinguishes +0 from -0")
}

func Test_Heap_SameValue_ResolvesBoxedBigInts(t *testing.T) {
	h := NewHeap()

	a := value.BigIntValue(h.AllocBigInt(&BigIntData{Negative: false, Digits: []uint32{1, 2, 3}}))
	b := value.BigIntValue(h.AllocBigInt(&BigIntData{Negative: false, Digits: []uint32{1, 2, 3}}))
	neg := value.BigIntValue(h.AllocBigInt(&BigIntData{Negative: true, Digits: []uint32{1, 2, 3}}))

	require.True(t, h.SameValue(a, b), "two independently boxed equal BigInts must compare SameValue")
	require.False(t, h.SameValue(a, neg))

	posZero := value.BigIntValue(h.AllocBigInt(&BigIntData{Negative: false, Digits: []uint32{0}}))
	negZero := value.BigIntValue(h.AllocBigInt(&BigIntData{Negative: true, Digits: []uint32{0}}))
	require.True(t, h.SameValue(posZero, negZero), "0n and -0n are the same BigInt value")
}

func Test_Heap_SameValue_ResolvesBoxedStrings(t *testing.T) {
	h := NewHeap()

	a := value.StringValue(h.AllocString(&StringData{Bytes: []byte("a much longer identifier")}))
	b := value.StringValue(h.AllocString(&StringData{Bytes: []byte("a much longer identifier")}))
	c := value.StringValue(h.AllocString(&StringData{Bytes: []byte("a different identifier!!!")}))

	require.True(t, h.SameValue(a, b), "two independently boxed equal strings must compare SameValue")
	require.False(t, h.SameValue(a, c))
}

func Test_Heap_SameValue_SymbolsStillComparedByIdentity(t *testing.T) {
	h := NewHeap()

	a := value.SymbolValue(h.AllocSymbol(&SymbolData{Description: "x", HasDescription: true}))
	b := value.SymbolValue(h.AllocSymbol(&SymbolData{Description: "x", HasDescription: true}))

	require.False(t, h.SameValue(a, b), "two distinct Symbols with equal descriptions are never SameValue")
	require.True(t, h.SameValue(a, a))
}
