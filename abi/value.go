package abi

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/wippyai/walletcore/errors"
)

// Value is an ABI parameter value. The set of implementations is closed:
// *Uint, *Int, *Bool, *Address, *FixedBytes, *Bytes, *String, *FixedArray,
// *DynArray, *Tuple and *Struct.
//
// Constructors panic with an *errors.Error when called with arguments that
// contradict the declared type. Values are immutable except for
// (*FixedBytes).SetVal and (*DynArray).Append.
type Value interface {
	// Type returns the declared type. It must not be modified.
	Type() *Type
	// String renders the value: decimal integers, 0x-hex byte strings,
	// checksummed addresses, raw text.
	String() string

	value()
}

type Uint struct {
	typ *Type
	v   *big.Int
}

// NewUint returns a uint<bits> value. v must be non-negative and fit.
func NewUint(bits int, v *big.Int) *Uint {
	t := UintType(bits)
	if v == nil {
		v = new(big.Int)
	}
	if v.Sign() < 0 || v.BitLen() > bits {
		panic(errors.Overflow(errors.PhaseConstruct, nil, v, t.String()))
	}
	return &Uint{typ: t, v: new(big.Int).Set(v)}
}

func NewUint64(bits int, v uint64) *Uint {
	return NewUint(bits, new(big.Int).SetUint64(v))
}

func (u *Uint) Type() *Type    { return u.typ }
func (u *Uint) Big() *big.Int  { return new(big.Int).Set(u.v) }
func (u *Uint) String() string { return u.v.String() }
func (*Uint) value()           {}

type Int struct {
	typ *Type
	v   *big.Int
}

// NewInt returns an int<bits> value. v must lie in [-2^(bits-1), 2^(bits-1)).
func NewInt(bits int, v *big.Int) *Int {
	t := IntType(bits)
	if v == nil {
		v = new(big.Int)
	}
	if !fitsSigned(v, bits) {
		panic(errors.Overflow(errors.PhaseConstruct, nil, v, t.String()))
	}
	return &Int{typ: t, v: new(big.Int).Set(v)}
}

func NewInt64(bits int, v int64) *Int {
	return NewInt(bits, big.NewInt(v))
}

func (i *Int) Type() *Type    { return i.typ }
func (i *Int) Big() *big.Int  { return new(big.Int).Set(i.v) }
func (i *Int) String() string { return i.v.String() }
func (*Int) value()           {}

type Bool struct {
	typ *Type
	v   bool
}

func NewBool(v bool) *Bool {
	return &Bool{typ: BoolType(), v: v}
}

func (b *Bool) Type() *Type { return b.typ }
func (b *Bool) Val() bool   { return b.v }
func (b *Bool) String() string {
	if b.v {
		return "true"
	}
	return "false"
}
func (*Bool) value() {}

type Address struct {
	typ *Type
	v   common.Address
}

func NewAddress(v common.Address) *Address {
	return &Address{typ: AddressType(), v: v}
}

func (a *Address) Type() *Type         { return a.typ }
func (a *Address) Val() common.Address { return a.v }
func (a *Address) String() string      { return a.v.Hex() }
func (*Address) value()                {}

// FixedBytes is a bytes<N> value; its length is always N.
type FixedBytes struct {
	typ *Type
	v   []byte
}

// NewFixedBytes returns a bytes<n> value. len(v) must equal n.
func NewFixedBytes(n int, v []byte) *FixedBytes {
	t := FixedBytesType(n)
	if len(v) != n {
		panic(errors.LengthMismatch(errors.PhaseConstruct, nil, t.String(), n, len(v)))
	}
	return &FixedBytes{typ: t, v: append([]byte(nil), v...)}
}

// SetVal replaces the content, keeping the leftmost N bytes of v and
// right-padding with zeros when v is shorter.
func (f *FixedBytes) SetVal(v []byte) {
	n := f.typ.Size
	out := make([]byte, n)
	copy(out, v)
	f.v = out
}

func (f *FixedBytes) Type() *Type    { return f.typ }
func (f *FixedBytes) Val() []byte    { return append([]byte(nil), f.v...) }
func (f *FixedBytes) String() string { return hexutil.Encode(f.v) }
func (*FixedBytes) value()           {}

type Bytes struct {
	typ *Type
	v   []byte
}

func NewBytes(v []byte) *Bytes {
	return &Bytes{typ: BytesType(), v: append([]byte{}, v...)}
}

func (b *Bytes) Type() *Type    { return b.typ }
func (b *Bytes) Val() []byte    { return append([]byte{}, b.v...) }
func (b *Bytes) String() string { return hexutil.Encode(b.v) }
func (*Bytes) value()           {}

type String struct {
	typ *Type
	v   string
}

func NewString(v string) *String {
	return &String{typ: StringType(), v: v}
}

func (s *String) Type() *Type    { return s.typ }
func (s *String) Val() string    { return s.v }
func (s *String) String() string { return s.v }
func (*String) value()           {}

// FixedArray is a T[k] value holding exactly k elements of type T.
type FixedArray struct {
	typ   *Type
	elems []Value
}

// NewFixedArray returns a T[len(values)] value. Every value must have type elem.
func NewFixedArray(elem *Type, values ...Value) *FixedArray {
	mustMatch(elem, values)
	return &FixedArray{typ: FixedArrayType(elem, len(values)), elems: append([]Value(nil), values...)}
}

func (a *FixedArray) Type() *Type    { return a.typ }
func (a *FixedArray) Elems() []Value { return append([]Value(nil), a.elems...) }
func (a *FixedArray) Len() int       { return len(a.elems) }
func (a *FixedArray) String() string { return "[" + joinValues(a.elems) + "]" }
func (*FixedArray) value()           {}

// DynArray is a T[] value. The element type is fixed at construction.
type DynArray struct {
	typ   *Type
	elems []Value
}

// NewDynArray returns a T[] value. Every value must have type elem.
func NewDynArray(elem *Type, values ...Value) *DynArray {
	mustMatch(elem, values)
	return &DynArray{typ: ArrayType(elem), elems: append([]Value(nil), values...)}
}

// Append adds v, rejecting values whose type differs from the element type.
func (a *DynArray) Append(v Value) error {
	if v == nil || !v.Type().Equal(a.typ.Elem) {
		got := "<nil>"
		if v != nil {
			got = v.Type().String()
		}
		return errors.TypeMismatch(errors.PhaseConstruct, nil, got, a.typ.Elem.String())
	}
	a.elems = append(a.elems, v)
	return nil
}

func (a *DynArray) Type() *Type    { return a.typ }
func (a *DynArray) Elems() []Value { return append([]Value(nil), a.elems...) }
func (a *DynArray) Len() int       { return len(a.elems) }
func (a *DynArray) String() string { return "[" + joinValues(a.elems) + "]" }
func (*DynArray) value()           {}

type Tuple struct {
	typ   *Type
	elems []Value
}

func NewTuple(values ...Value) *Tuple {
	components := make([]*Type, len(values))
	for i, v := range values {
		if v == nil {
			panic(errors.InvalidInput(errors.PhaseConstruct, []string{"tuple"}, "nil component"))
		}
		components[i] = v.Type()
	}
	return &Tuple{typ: TupleType(components...), elems: append([]Value(nil), values...)}
}

func (t *Tuple) Type() *Type    { return t.typ }
func (t *Tuple) Elems() []Value { return append([]Value(nil), t.elems...) }
func (t *Tuple) String() string { return "(" + joinValues(t.elems) + ")" }
func (*Tuple) value()           {}

// Struct is a value of a named StructDef. Field values follow the order the
// fields are declared in the definition. An empty Struct (see EmptyStruct)
// carries no field values; it encodes as all-zero fields.
type Struct struct {
	typ    *Type
	fields ParamSet
}

// NewStruct returns a struct value with one value per declared field, in
// declaration order.
func NewStruct(def *StructDef, values ...Value) *Struct {
	if def == nil {
		panic(errors.InvalidInput(errors.PhaseConstruct, nil, "nil struct definition"))
	}
	if len(values) != len(def.Fields) {
		panic(errors.LengthMismatch(errors.PhaseConstruct, []string{def.Name}, def.Name, len(def.Fields), len(values)))
	}
	fields := make(ParamSet, len(values))
	for i, f := range def.Fields {
		v := values[i]
		if v == nil || !v.Type().Equal(f.Type) {
			got := "<nil>"
			if v != nil {
				got = v.Type().String()
			}
			panic(errors.TypeMismatch(errors.PhaseConstruct, []string{def.Name, f.Name}, got, f.Type.String()))
		}
		fields[i] = NamedValue{Name: f.Name, Value: v}
	}
	return &Struct{typ: StructType(def), fields: fields}
}

// EmptyStruct returns a struct value without field values.
func EmptyStruct(def *StructDef) *Struct {
	if def == nil {
		panic(errors.InvalidInput(errors.PhaseConstruct, nil, "nil struct definition"))
	}
	return &Struct{typ: StructType(def)}
}

func (s *Struct) Type() *Type      { return s.typ }
func (s *Struct) Def() *StructDef  { return s.typ.Struct }
func (s *Struct) Name() string     { return s.typ.Struct.Name }
func (s *Struct) IsEmpty() bool    { return len(s.fields) == 0 }
func (s *Struct) Fields() ParamSet { return append(ParamSet(nil), s.fields...) }
func (*Struct) value()             {}

// Get returns the first field value with the given name.
func (s *Struct) Get(name string) (Value, bool) {
	return s.fields.Get(name)
}

func (s *Struct) String() string {
	var b strings.Builder
	b.WriteString(s.Name())
	b.WriteByte('(')
	for i, f := range s.fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(f.Name)
		b.WriteByte('=')
		b.WriteString(f.Value.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Members returns the component values of a composite value in encoding
// order, nil for leaves. An empty struct yields the zero value of each field.
func Members(v Value) []Value {
	switch x := v.(type) {
	case *FixedArray:
		return x.elems
	case *DynArray:
		return x.elems
	case *Tuple:
		return x.elems
	case *Struct:
		if x.IsEmpty() {
			def := x.Def()
			zeros := make([]Value, len(def.Fields))
			for i, f := range def.Fields {
				zeros[i] = Zero(f.Type)
			}
			return zeros
		}
		return x.fields.Values()
	default:
		return nil
	}
}

// Zero returns the zero value of t. Structs are returned empty, dynamic
// arrays without elements.
func Zero(t *Type) Value {
	switch t.Kind {
	case KindUint:
		return NewUint(t.Size, nil)
	case KindInt:
		return NewInt(t.Size, nil)
	case KindBool:
		return NewBool(false)
	case KindAddress:
		return NewAddress(common.Address{})
	case KindFixedBytes:
		return NewFixedBytes(t.Size, make([]byte, t.Size))
	case KindBytes:
		return NewBytes(nil)
	case KindString:
		return NewString("")
	case KindFixedArray:
		elems := make([]Value, t.Length)
		for i := range elems {
			elems[i] = Zero(t.Elem)
		}
		return &FixedArray{typ: t, elems: elems}
	case KindArray:
		return &DynArray{typ: t}
	case KindTuple:
		elems := make([]Value, len(t.Components))
		for i, c := range t.Components {
			elems[i] = Zero(c)
		}
		return &Tuple{typ: t, elems: elems}
	case KindStruct:
		return EmptyStruct(t.Struct)
	default:
		panic(errors.Unsupported(errors.PhaseConstruct, t.String()))
	}
}

func mustMatch(elem *Type, values []Value) {
	if elem == nil {
		panic(errors.InvalidInput(errors.PhaseConstruct, nil, "nil element type"))
	}
	for _, v := range values {
		if v == nil || !v.Type().Equal(elem) {
			got := "<nil>"
			if v != nil {
				got = v.Type().String()
			}
			panic(errors.TypeMismatch(errors.PhaseConstruct, nil, got, elem.String()))
		}
	}
}

func fitsSigned(v *big.Int, bits int) bool {
	if v.Sign() >= 0 {
		return v.BitLen() < bits
	}
	// -2^(bits-1) is the smallest value: (-v - 1) must fit in bits-1 bits.
	m := new(big.Int).Neg(v)
	m.Sub(m, big.NewInt(1))
	return m.BitLen() < bits
}

func joinValues(values []Value) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	return strings.Join(parts, ",")
}
