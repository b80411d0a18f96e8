package abi

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"

	"github.com/wippyai/walletcore/abi/internal/word"
	"github.com/wippyai/walletcore/errors"
)

// Encode serializes values as one head/tail block. Malformed values are
// rejected when they are constructed, so encoding has no error path. Values
// nested deeper than MaxDepth, such as a struct that contains itself by
// value, have no finite encoding: Encode panics with an *errors.Error of kind
// depth_exceeded for them.
func Encode(values ...Value) []byte {
	return encodeSequence(values, 0)
}

// EncodeParams encodes the values of a parameter list in order.
func EncodeParams(params ParamSet) []byte {
	return encodeSequence(params.Values(), 0)
}

// EncodeWord returns the 32-byte head word of an atomic value, or nil for
// values that are not atomic.
func EncodeWord(v Value) []byte {
	switch x := v.(type) {
	case *Uint:
		return math.U256Bytes(new(big.Int).Set(x.v))
	case *Int:
		return math.U256Bytes(new(big.Int).Set(x.v))
	case *Bool:
		if x.v {
			return word.Uint(1)
		}
		return word.Uint(0)
	case *Address:
		return common.LeftPadBytes(x.v[:], word.Size)
	case *FixedBytes:
		return common.RightPadBytes(x.v, word.Size)
	default:
		return nil
	}
}

// encodeSequence lays values out as head followed by tail. The first pass
// fills static heads and leaves a placeholder word per dynamic value while
// appending its payload to the tail; the second pass patches each
// placeholder with headLength + tail offset.
func encodeSequence(values []Value, depth int) []byte {
	type placeholder struct {
		pos     int
		tailOff int
	}

	head := make([]byte, 0, len(values)*word.Size)
	tail := getTail()
	defer putTail(tail)

	var pending []placeholder
	for _, v := range values {
		if IsDynamic(v) {
			pending = append(pending, placeholder{pos: len(head), tailOff: tail.Len()})
			head = append(head, make([]byte, word.Size)...)
			_, _ = tail.Write(encodeValue(v, depth))
			continue
		}
		head = append(head, encodeValue(v, depth)...)
	}

	headLen := len(head)
	for _, p := range pending {
		word.PutUint(head[p.pos:], uint64(headLen+p.tailOff))
	}

	return append(head, tail.Bytes()...)
}

// encodeValue returns the full encoding of one value: the inline bytes for
// static values, the tail payload for dynamic ones.
func encodeValue(v Value, depth int) []byte {
	if depth > MaxDepth {
		panic(errors.DepthExceeded(errors.PhaseEncode, []string{v.Type().String()}, MaxDepth))
	}
	switch x := v.(type) {
	case *Bytes:
		return lengthPrefixed(x.v)
	case *String:
		return lengthPrefixed([]byte(x.v))
	case *DynArray:
		out := word.Uint(uint64(len(x.elems)))
		return append(out, encodeSequence(x.elems, depth+1)...)
	case *FixedArray, *Tuple, *Struct:
		return encodeSequence(Members(v), depth+1)
	default:
		return EncodeWord(v)
	}
}

func lengthPrefixed(b []byte) []byte {
	out := word.Uint(uint64(len(b)))
	return append(out, word.RightPad(b)...)
}
