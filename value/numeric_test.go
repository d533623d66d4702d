package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_SameValue_NaN(t *testing.T) {
	nan := SmallFloat(math.NaN())
	require.True(t, SameValue(nan, nan))
	require.False(t, StrictEquals(nan, nan))
}

func Test_SameValue_SignedZero(t *testing.T) {
	posZero := SmallFloat(0)
	negZero := SmallFloat(math.Copysign(0, -1))

	require.False(t, SameValue(posZero, negZero))
	require.True(t, StrictEquals(posZero, negZero))
	require.True(t, SameValueZero(posZero, negZero))
}

func Test_SameValue_Reflexive(t *testing.T) {
	vals := []Value{
		Undefined, Null, True, False,
		SmallInteger(42), SmallFloat(3.5),
	}
	ss, _ := NewSmallString("x")
	vals = append(vals, SmallStringValue(ss))

	for _, v := range vals {
		require.True(t, SameValue(v, v))
	}
}

func Test_SameValue_Symmetric(t *testing.T) {
	a := SmallInteger(7)
	b := SmallInteger(7)
	require.Equal(t, SameValue(a, b), SameValue(b, a))
}

func Test_SameValue_ObjectHandleIdentity(t *testing.T) {
	a := ObjectValue(KindOrdinary, 1)
	b := ObjectValue(KindOrdinary, 1)
	c := ObjectValue(KindOrdinary, 2)

	require.True(t, SameValue(a, b))
	require.False(t, SameValue(a, c))
}
