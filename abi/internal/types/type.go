package types

import (
	"strconv"
	"strings"
)

// Type describes an ABI type.
//
// Size is the bit width for KindUint/KindInt and the byte count for
// KindFixedBytes. Length is the element count for KindFixedArray.
type Type struct {
	Elem       *Type
	Struct     *StructDef
	Components []*Type
	Kind       Kind
	Size       int
	Length     int
}

// StructDef is a named struct schema: ordered fields, no values.
type StructDef struct {
	Name   string
	Fields []Field
}

type Field struct {
	Type *Type
	Name string
}

// String returns the canonical type name, e.g. "uint256", "bytes10",
// "address[3]", "(uint8,string)" or the struct name.
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.Kind {
	case KindUint:
		return "uint" + strconv.Itoa(t.Size)
	case KindInt:
		return "int" + strconv.Itoa(t.Size)
	case KindBool:
		return "bool"
	case KindAddress:
		return "address"
	case KindFixedBytes:
		return "bytes" + strconv.Itoa(t.Size)
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindFixedArray:
		return t.Elem.String() + "[" + strconv.Itoa(t.Length) + "]"
	case KindArray:
		return t.Elem.String() + "[]"
	case KindTuple:
		return tupleName(t.Components)
	case KindStruct:
		if t.Struct == nil {
			return "<nil struct>"
		}
		return t.Struct.Name
	default:
		return "unknown"
	}
}

// Signature returns the type as it appears in a function signature: struct
// types are spelled out as their component tuple.
func (t *Type) Signature() string {
	if t == nil {
		return "<nil>"
	}
	return t.signature(0)
}

func (t *Type) signature(depth int) string {
	if depth > MaxSignatureDepth {
		return "..."
	}
	switch t.Kind {
	case KindFixedArray:
		return t.Elem.signature(depth+1) + "[" + strconv.Itoa(t.Length) + "]"
	case KindArray:
		return t.Elem.signature(depth+1) + "[]"
	case KindTuple, KindStruct:
		members := t.Members()
		parts := make([]string, len(members))
		for i, m := range members {
			parts[i] = m.signature(depth + 1)
		}
		return "(" + strings.Join(parts, ",") + ")"
	default:
		return t.String()
	}
}

// MaxSignatureDepth bounds signature rendering of self-referencing structs.
const MaxSignatureDepth = 64

// Members returns the member types of a tuple or struct, nil otherwise.
func (t *Type) Members() []*Type {
	switch t.Kind {
	case KindTuple:
		return t.Components
	case KindStruct:
		if t.Struct == nil {
			return nil
		}
		members := make([]*Type, len(t.Struct.Fields))
		for i, f := range t.Struct.Fields {
			members[i] = f.Type
		}
		return members
	default:
		return nil
	}
}

// Equal reports whether two types describe the same ABI type. Structs compare
// by name.
func (t *Type) Equal(o *Type) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case KindUint, KindInt, KindFixedBytes:
		return t.Size == o.Size
	case KindFixedArray:
		return t.Length == o.Length && t.Elem.Equal(o.Elem)
	case KindArray:
		return t.Elem.Equal(o.Elem)
	case KindTuple:
		if len(t.Components) != len(o.Components) {
			return false
		}
		for i := range t.Components {
			if !t.Components[i].Equal(o.Components[i]) {
				return false
			}
		}
		return true
	case KindStruct:
		if t.Struct == nil || o.Struct == nil {
			return t.Struct == o.Struct
		}
		return t.Struct.Name == o.Struct.Name
	default:
		return true
	}
}

func tupleName(components []*Type) string {
	parts := make([]string, len(components))
	for i, c := range components {
		parts[i] = c.String()
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// StructType wraps a StructDef as a Type.
func StructType(def *StructDef) *Type {
	return &Type{Kind: KindStruct, Struct: def}
}

// Field returns the first field with the given name.
func (d *StructDef) Field(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
