package word

import (
	"encoding/binary"
	"math"
)

// Size is the width of one ABI word in bytes.
const Size = 32

func SafeMul(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if b != 0 && a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

func SafeAdd(a, b int) (int, bool) {
	if a < 0 || b < 0 || a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

// PaddedLen rounds n up to the next multiple of Size.
func PaddedLen(n int) int {
	return (n + Size - 1) / Size * Size
}

// Uint returns a word holding v big-endian.
func Uint(v uint64) []byte {
	w := make([]byte, Size)
	binary.BigEndian.PutUint64(w[Size-8:], v)
	return w
}

// PutUint writes v big-endian into the word at dst[:Size].
func PutUint(dst []byte, v uint64) {
	clear(dst[:Size-8])
	binary.BigEndian.PutUint64(dst[Size-8:Size], v)
}

// ReadInt reads an offset or length word. ok is false when the word does not
// fit a non-negative int, which callers treat as out of range.
func ReadInt(w []byte) (int, bool) {
	if len(w) < Size {
		return 0, false
	}
	for _, b := range w[:Size-8] {
		if b != 0 {
			return 0, false
		}
	}
	v := binary.BigEndian.Uint64(w[Size-8 : Size])
	if v > math.MaxInt32 {
		return 0, false
	}
	return int(v), true
}

// RightPad copies b into a zeroed slice of PaddedLen(len(b)) bytes.
func RightPad(b []byte) []byte {
	out := make([]byte, PaddedLen(len(b)))
	copy(out, b)
	return out
}

// IsZero reports whether every byte is zero.
func IsZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
