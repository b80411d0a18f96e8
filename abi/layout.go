package abi

import (
	"github.com/wippyai/walletcore/abi/internal/layout"
	"github.com/wippyai/walletcore/abi/internal/word"
	"github.com/wippyai/walletcore/errors"
)

type LayoutInfo = layout.Info

// Layout returns the head/tail placement of a type.
func Layout(t *Type) LayoutInfo {
	return layout.Calculate(t)
}

// IsDynamic reports whether v is placed in the tail and referenced by offset.
func IsDynamic(v Value) bool {
	return layout.IsDynamic(v.Type())
}

// StaticSize returns the bytes v occupies in its enclosing head: the full
// encoding for static values, one offset word for dynamic ones.
func StaticSize(v Value) int {
	return layout.StaticSize(v.Type())
}

// EncodedSize returns the length of v's own encoding without encoding it:
// the head words of a static value, the tail payload of a dynamic one.
func EncodedSize(v Value) int {
	return encodedSize(v, 0)
}

func encodedSize(v Value, depth int) int {
	if depth > MaxDepth {
		panic(errors.DepthExceeded(errors.PhaseEncode, []string{v.Type().String()}, MaxDepth))
	}
	if !IsDynamic(v) {
		return StaticSize(v)
	}
	switch x := v.(type) {
	case *Bytes:
		return word.Size + word.PaddedLen(len(x.v))
	case *String:
		return word.Size + word.PaddedLen(len(x.v))
	case *DynArray:
		return word.Size + sequenceSize(x.elems, depth+1)
	default:
		return sequenceSize(Members(v), depth+1)
	}
}

func sequenceSize(values []Value, depth int) int {
	total := 0
	for _, v := range values {
		if IsDynamic(v) {
			total += word.Size + encodedSize(v, depth)
		} else {
			total += StaticSize(v)
		}
	}
	return total
}
