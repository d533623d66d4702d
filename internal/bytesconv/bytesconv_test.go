package bytesconv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_RoundTrip_Uint32_Endianness(t *testing.T) {
	// Scenario 3 from spec.md §8: set 0x12345678 little-endian, read back
	// little-endian yields the same value; read big-endian yields the
	// byte-swapped value.
	buf := make([]byte, 4)
	WriteNumeric(buf, 0, Uint32, float64(0x12345678), true)

	require.Equal(t, float64(0x12345678), ReadNumeric(buf, 0, Uint32, true))
	require.Equal(t, float64(0x78563412), ReadNumeric(buf, 0, Uint32, false))
}

func Test_RoundTrip_Float64(t *testing.T) {
	buf := make([]byte, 8)
	WriteNumeric(buf, 0, Float64, 3.140000001, true)
	require.Equal(t, 3.140000001, ReadNumeric(buf, 0, Float64, true))
}

func Test_RoundTrip_Int8SignExtension(t *testing.T) {
	buf := make([]byte, 1)
	WriteNumeric(buf, 0, Int8, -1, true)
	require.Equal(t, float64(-1), ReadNumeric(buf, 0, Int8, true))
	require.Equal(t, float64(255), ReadNumeric(buf, 0, Uint8, true))
}

func Test_ElementType_Size(t *testing.T) {
	require.Equal(t, 1, Uint8.Size())
	require.Equal(t, 2, Int16.Size())
	require.Equal(t, 4, Float32.Size())
	require.Equal(t, 8, Float64.Size())
	require.Equal(t, 8, BigUint64.Size())
}

func Test_RawUint64_RoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	WriteRawUint64(buf, 0, 0xDEADBEEFCAFEBABE, false)
	require.Equal(t, uint64(0xDEADBEEFCAFEBABE), ReadRawUint64(buf, 0, false))
}
