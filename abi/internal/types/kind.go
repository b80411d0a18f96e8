package types

type Kind uint8

const (
	KindUint Kind = iota
	KindInt
	KindBool
	KindAddress
	KindFixedBytes
	KindBytes
	KindString
	KindFixedArray
	KindArray
	KindTuple
	KindStruct
)

var kindNames = [...]string{
	KindUint:       "uint",
	KindInt:        "int",
	KindBool:       "bool",
	KindAddress:    "address",
	KindFixedBytes: "fixed_bytes",
	KindBytes:      "bytes",
	KindString:     "string",
	KindFixedArray: "fixed_array",
	KindArray:      "array",
	KindTuple:      "tuple",
	KindStruct:     "struct",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsAtomic reports whether values of the kind occupy exactly one word.
func (k Kind) IsAtomic() bool {
	return k <= KindFixedBytes
}

// IsPrimitive reports whether the kind is a leaf (no member types).
// In EIP-712 terms these are the atomic types plus bytes and string.
func (k Kind) IsPrimitive() bool {
	return k <= KindString
}

// IsComposite reports whether the kind has member types.
func (k Kind) IsComposite() bool {
	return k >= KindFixedArray && k <= KindStruct
}
