package layout

import (
	"github.com/wippyai/walletcore/abi/internal/types"
	"github.com/wippyai/walletcore/abi/internal/word"
)

type Info struct {
	// StaticSize is the byte size of a static type, 0 for dynamic types.
	StaticSize int
	// HeadSize is what the type contributes to its enclosing head.
	HeadSize int
	Dynamic  bool
}

func Calculate(t *types.Type) Info {
	if IsDynamic(t) {
		return Info{Dynamic: true, HeadSize: word.Size}
	}
	size := StaticSize(t)
	return Info{StaticSize: size, HeadSize: size}
}

// IsDynamic reports whether t is encoded in the tail. Types nested deeper
// than word.MaxDepth are reported dynamic.
func IsDynamic(t *types.Type) bool {
	return isDynamic(t, 0)
}

func isDynamic(t *types.Type, depth int) bool {
	if t == nil || depth > word.MaxDepth {
		return true
	}
	switch t.Kind {
	case types.KindBytes, types.KindString, types.KindArray:
		return true
	case types.KindFixedArray:
		return isDynamic(t.Elem, depth+1)
	case types.KindTuple, types.KindStruct:
		for _, m := range t.Members() {
			if isDynamic(m, depth+1) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// StaticSize returns the encoded byte size of a static type. For dynamic
// types it returns the size of the head slot, one word.
func StaticSize(t *types.Type) int {
	if IsDynamic(t) {
		return word.Size
	}
	return staticSize(t)
}

func staticSize(t *types.Type) int {
	switch t.Kind {
	case types.KindFixedArray:
		n, ok := word.SafeMul(t.Length, staticSize(t.Elem))
		if !ok {
			return word.Size
		}
		return n
	case types.KindTuple, types.KindStruct:
		total := 0
		for _, m := range t.Members() {
			total += staticSize(m)
		}
		return total
	default:
		return word.Size
	}
}

// HeadSize sums the head contributions of a type sequence.
func HeadSize(ts []*types.Type) int {
	total := 0
	for _, t := range ts {
		total += Calculate(t).HeadSize
	}
	return total
}
