package value

import (
	"fmt"

	"github.com/ovmjs/corevm/internal/strenc"
)

// smallStringSentinel marks unused trailing bytes of a SmallString. UTF-8
// never produces 0xFF, so the first sentinel byte unambiguously ends the
// string; no separate length field is needed.
const smallStringSentinel = 0xFF

// smallStringCap is the maximum byte length a SmallString can hold.
const smallStringCap = 7

// SmallString is the immediate (non-heap-allocated) representation of a
// string of at most 7 UTF-8 bytes. It is a value type: copying it copies the
// string, no heap handle involved, which is what lets the Value union carry
// short strings (property names like "length", "x", "next") inline.
type SmallString struct {
	bytes [smallStringCap]byte
}

// EmptySmallString is the canonical empty SmallString.
var EmptySmallString = SmallString{bytes: [smallStringCap]byte{
	smallStringSentinel, smallStringSentinel, smallStringSentinel,
	smallStringSentinel, smallStringSentinel, smallStringSentinel, smallStringSentinel,
}}

// NewSmallString attempts to build a SmallString from s. ok is false if s is
// longer than 7 UTF-8 bytes; the caller must heap-allocate instead.
func NewSmallString(s string) (ss SmallString, ok bool) {
	if len(s) > smallStringCap {
		return SmallString{}, false
	}
	ss = EmptySmallString
	copy(ss.bytes[:], s)
	return ss, true
}

// Len returns the byte length of the string, found by scanning for the first
// sentinel byte (mirrors nova's SmallString::len in small_string/lib.rs).
func (s SmallString) Len() int {
	for i, b := range s.bytes {
		if b == smallStringSentinel {
			return i
		}
	}
	return smallStringCap
}

// IsASCII reports whether the string is pure ASCII, the fast path for UTF-16
// index conversions.
func (s SmallString) IsASCII() bool {
	return strenc.IsASCII(s.String())
}

// Bytes returns the valid prefix of the backing array.
func (s SmallString) Bytes() []byte {
	n := s.Len()
	out := make([]byte, n)
	copy(out, s.bytes[:n])
	return out
}

// String returns the Go string value.
func (s SmallString) String() string {
	return string(s.bytes[:s.Len()])
}

// UTF16Len returns the length of the string in UTF-16 code units, as
// ECMAScript's `.length` requires.
func (s SmallString) UTF16Len() int {
	return strenc.UTF16Len(s.String())
}

// Equal reports whether two SmallStrings hold the same string, a plain
// array comparison since unused tail bytes are always the sentinel.
func (s SmallString) Equal(other SmallString) bool {
	return s.bytes == other.bytes
}

// Compare orders two SmallStrings by their decoded string value (byte-wise
// Go string comparison).
func (s SmallString) Compare(other SmallString) int {
	a, b := s.String(), other.String()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (s SmallString) GoString() string {
	return fmt.Sprintf("SmallString(%q)", s.String())
}
