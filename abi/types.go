package abi

import (
	"github.com/wippyai/walletcore/abi/internal/types"
	"github.com/wippyai/walletcore/abi/internal/word"
)

type TypeKind = types.Kind

const (
	KindUint       = types.KindUint
	KindInt        = types.KindInt
	KindBool       = types.KindBool
	KindAddress    = types.KindAddress
	KindFixedBytes = types.KindFixedBytes
	KindBytes      = types.KindBytes
	KindString     = types.KindString
	KindFixedArray = types.KindFixedArray
	KindArray      = types.KindArray
	KindTuple      = types.KindTuple
	KindStruct     = types.KindStruct
)

type Type = types.Type
type StructDef = types.StructDef
type FieldDef = types.Field

// Resource limits applied by the parser, decoder and EIP-712 resolver.
const (
	MaxDepth       = word.MaxDepth
	MaxBytesLength = word.MaxBytesLength
	MaxArrayLength = word.MaxArrayLength
)

// WordSize is the width of one ABI word in bytes.
const WordSize = word.Size

func UintType(bits int) *Type {
	if bits <= 0 || bits > 256 || bits%8 != 0 {
		panic(invalidWidth("uint", bits))
	}
	return &Type{Kind: KindUint, Size: bits}
}

func IntType(bits int) *Type {
	if bits <= 0 || bits > 256 || bits%8 != 0 {
		panic(invalidWidth("int", bits))
	}
	return &Type{Kind: KindInt, Size: bits}
}

func BoolType() *Type    { return &Type{Kind: KindBool} }
func AddressType() *Type { return &Type{Kind: KindAddress} }
func BytesType() *Type   { return &Type{Kind: KindBytes} }
func StringType() *Type  { return &Type{Kind: KindString} }

func FixedBytesType(n int) *Type {
	if n <= 0 || n > 32 {
		panic(invalidWidth("bytes", n))
	}
	return &Type{Kind: KindFixedBytes, Size: n}
}

func ArrayType(elem *Type) *Type {
	return &Type{Kind: KindArray, Elem: elem}
}

func FixedArrayType(elem *Type, n int) *Type {
	if n < 0 || n > MaxArrayLength {
		panic(invalidWidth(elem.String()+"[]", n))
	}
	return &Type{Kind: KindFixedArray, Elem: elem, Length: n}
}

func TupleType(components ...*Type) *Type {
	return &Type{Kind: KindTuple, Components: components}
}

func StructType(def *StructDef) *Type {
	return types.StructType(def)
}
