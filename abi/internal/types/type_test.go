package types //nolint:revive // package name is used by internal consumers

import "testing"

func TestTypeString(t *testing.T) {
	u8 := &Type{Kind: KindUint, Size: 8}
	str := &Type{Kind: KindString}
	person := &StructDef{Name: "Person", Fields: []Field{
		{Name: "name", Type: str},
		{Name: "wallet", Type: &Type{Kind: KindAddress}},
	}}

	tests := []struct {
		typ  *Type
		want string
		sig  string
	}{
		{u8, "uint8", "uint8"},
		{&Type{Kind: KindInt, Size: 256}, "int256", "int256"},
		{&Type{Kind: KindBool}, "bool", "bool"},
		{&Type{Kind: KindAddress}, "address", "address"},
		{&Type{Kind: KindFixedBytes, Size: 10}, "bytes10", "bytes10"},
		{&Type{Kind: KindBytes}, "bytes", "bytes"},
		{str, "string", "string"},
		{&Type{Kind: KindFixedArray, Elem: u8, Length: 3}, "uint8[3]", "uint8[3]"},
		{&Type{Kind: KindArray, Elem: u8}, "uint8[]", "uint8[]"},
		{&Type{Kind: KindTuple, Components: []*Type{u8, str}}, "(uint8,string)", "(uint8,string)"},
		{StructType(person), "Person", "(string,address)"},
		{&Type{Kind: KindArray, Elem: StructType(person)}, "Person[]", "(string,address)[]"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.typ.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
			if got := tc.typ.Signature(); got != tc.sig {
				t.Errorf("Signature() = %q, want %q", got, tc.sig)
			}
		})
	}
}

func TestTypeEqual(t *testing.T) {
	a := &Type{Kind: KindArray, Elem: &Type{Kind: KindUint, Size: 8}}
	b := &Type{Kind: KindArray, Elem: &Type{Kind: KindUint, Size: 8}}
	c := &Type{Kind: KindArray, Elem: &Type{Kind: KindUint, Size: 16}}

	if !a.Equal(b) {
		t.Error("identical array types should be equal")
	}
	if a.Equal(c) {
		t.Error("element width should matter")
	}
	if a.Equal(nil) {
		t.Error("nil should not equal non-nil")
	}

	s1 := StructType(&StructDef{Name: "A"})
	s2 := StructType(&StructDef{Name: "A"})
	if !s1.Equal(s2) {
		t.Error("structs compare by name")
	}
}

func TestStructDefField(t *testing.T) {
	def := &StructDef{Name: "Dup", Fields: []Field{
		{Name: "x", Type: &Type{Kind: KindUint, Size: 8}},
		{Name: "x", Type: &Type{Kind: KindBool}},
	}}

	f, ok := def.Field("x")
	if !ok || f.Type.Kind != KindUint {
		t.Errorf("Field(x) = %v, %v; want first match", f, ok)
	}
	if _, ok := def.Field("missing"); ok {
		t.Error("Field(missing) should not be found")
	}
}

func TestSelfReferenceSignatureTerminates(t *testing.T) {
	node := &StructDef{Name: "Node"}
	node.Fields = []Field{{Name: "children", Type: &Type{Kind: KindArray, Elem: StructType(node)}}}

	if got := StructType(node).String(); got != "Node" {
		t.Errorf("String() = %q, want Node", got)
	}
	if sig := StructType(node).Signature(); sig == "" {
		t.Error("Signature() should render something for recursive structs")
	}
}
