package abi

import (
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/wippyai/walletcore/abi/internal/layout"
	"github.com/wippyai/walletcore/abi/internal/word"
	"github.com/wippyai/walletcore/errors"
)

// Decode parses one head/tail block into values of the given types.
//
// Decode never panics on malformed input. Truncated buffers, offsets outside
// the buffer, counts or lengths implying more data than is present and
// non-canonical words all return an *errors.Error with PhaseDecode; partial
// results are discarded.
func Decode(data []byte, ts []*Type) ([]Value, error) {
	values, err := newDecoder(data).decodeSequence(data, ts, 0, nil)
	if err != nil {
		Logger().Debug("abi decode failed",
			zap.Int("length", len(data)),
			zap.Int("types", len(ts)),
			zap.Error(err))
		return nil, err
	}
	return values, nil
}

// DecodeParams decodes data and names the values after the given fields.
func DecodeParams(data []byte, fields []FieldDef) (ParamSet, error) {
	ts := make([]*Type, len(fields))
	for i, f := range fields {
		ts[i] = f.Type
	}
	values, err := Decode(data, ts)
	if err != nil {
		return nil, err
	}
	out := make(ParamSet, len(values))
	for i, v := range values {
		out[i] = NamedValue{Name: fields[i].Name, Value: v}
	}
	return out, nil
}

// DecodeValue decodes a single value of the named type and renders it with
// Value.String.
func DecodeValue(data []byte, typeName string) (string, error) {
	t, err := ParseType(typeName)
	if err != nil {
		return "", err
	}
	values, err := Decode(data, []*Type{t})
	if err != nil {
		return "", err
	}
	return values[0].String(), nil
}

// DecodeArray decodes a single array of the named type and renders each
// element with Value.String.
func DecodeArray(data []byte, typeName string) ([]string, error) {
	t, err := ParseType(typeName)
	if err != nil {
		return nil, err
	}
	if t.Kind != KindArray && t.Kind != KindFixedArray {
		return nil, errors.TypeMismatch(errors.PhaseDecode, nil, t.String(), "array")
	}
	values, err := Decode(data, []*Type{t})
	if err != nil {
		return nil, err
	}
	elems := Members(values[0])
	out := make([]string, len(elems))
	for i, e := range elems {
		out[i] = e.String()
	}
	return out, nil
}

// decoder carries the work budget of one Decode call. Every decoded value
// and every payload word is charged against it, so offsets that alias the
// same tail cannot multiply the work beyond a fixed factor of the input size.
type decoder struct {
	budget int
}

func newDecoder(data []byte) *decoder {
	return &decoder{budget: decodeBudgetFactor*(len(data)/word.Size) + MaxDepth}
}

// decodeBudgetFactor bounds decoded words per input word. A canonical
// encoding charges at most one unit per input word.
const decodeBudgetFactor = 2

func (d *decoder) charge(units int, t *Type, path []string) error {
	if units > d.budget {
		return errors.New(errors.PhaseDecode, errors.KindOutOfBounds).
			Path(path...).
			AbiType(t.String()).
			Detail("decoded data exceeds input size").
			Build()
	}
	d.budget -= units
	return nil
}

// decodeSequence decodes ts laid out as a head/tail block starting at
// block[0]. Offsets read from the head are relative to block.
func (d *decoder) decodeSequence(block []byte, ts []*Type, depth int, path []string) ([]Value, error) {
	values := make([]Value, 0, len(ts))
	offset := 0
	for i, t := range ts {
		v, next, err := d.decodeAt(block, t, offset, depth, appendPath(path, "["+strconv.Itoa(i)+"]"))
		if err != nil {
			return nil, err
		}
		values = append(values, v)
		offset = next
	}
	return values, nil
}

// decodeElems decodes n elements of one type laid out as a head/tail block.
func (d *decoder) decodeElems(block []byte, elem *Type, n int, depth int, path []string) ([]Value, error) {
	values := make([]Value, 0, n)
	offset := 0
	for i := 0; i < n; i++ {
		v, next, err := d.decodeAt(block, elem, offset, depth, appendPath(path, "["+strconv.Itoa(i)+"]"))
		if err != nil {
			return nil, err
		}
		values = append(values, v)
		offset = next
	}
	return values, nil
}

// decodeAt decodes the value whose head slot starts at block[offset] and
// returns the cursor just past that slot.
func (d *decoder) decodeAt(block []byte, t *Type, offset int, depth int, path []string) (Value, int, error) {
	if depth > MaxDepth {
		return nil, 0, errors.DepthExceeded(errors.PhaseDecode, path, MaxDepth)
	}

	info := layout.Calculate(t)
	end, ok := word.SafeAdd(offset, info.HeadSize)
	if !ok || end > len(block) {
		return nil, 0, errors.OutOfBounds(errors.PhaseDecode, path, end, len(block))
	}

	if !info.Dynamic {
		v, err := d.decodeStatic(block[offset:end], t, depth, path)
		return v, end, err
	}

	ptr, ok := word.ReadInt(block[offset:end])
	if !ok || ptr > len(block) {
		return nil, 0, errors.New(errors.PhaseDecode, errors.KindOutOfBounds).
			Path(path...).
			AbiType(t.String()).
			Detail("offset outside buffer of %d bytes", len(block)).
			Build()
	}
	if err := d.charge(1, t, path); err != nil {
		return nil, 0, err
	}
	v, err := d.decodeDynamic(block[ptr:], t, depth, path)
	return v, end, err
}

func (d *decoder) decodeStatic(b []byte, t *Type, depth int, path []string) (Value, error) {
	switch t.Kind {
	case KindFixedArray:
		elems, err := d.decodeElems(b, t.Elem, t.Length, depth+1, path)
		if err != nil {
			return nil, err
		}
		return &FixedArray{typ: t, elems: elems}, nil
	case KindTuple, KindStruct:
		// a zero-sized composite consumes no input, so it pays for itself
		if len(t.Members()) == 0 {
			if err := d.charge(1, t, path); err != nil {
				return nil, err
			}
		}
		return d.decodeComposite(b, t, depth, path)
	default:
		if err := d.charge(1, t, path); err != nil {
			return nil, err
		}
		return decodeWord(b, t, path)
	}
}

// decodeDynamic decodes the payload a head offset points at.
func (d *decoder) decodeDynamic(b []byte, t *Type, depth int, path []string) (Value, error) {
	switch t.Kind {
	case KindBytes, KindString:
		payload, err := readLengthPrefixed(b, t, path)
		if err != nil {
			return nil, err
		}
		if err := d.charge(word.PaddedLen(len(payload))/word.Size, t, path); err != nil {
			return nil, err
		}
		if t.Kind == KindString {
			return &String{typ: t, v: string(payload)}, nil
		}
		return &Bytes{typ: t, v: payload}, nil

	case KindArray:
		count, ok := readCount(b)
		if !ok || count > MaxArrayLength {
			return nil, errors.New(errors.PhaseDecode, errors.KindOutOfBounds).
				Path(path...).
				AbiType(t.String()).
				Detail("invalid element count").
				Build()
		}
		need, ok := word.SafeMul(count, layout.Calculate(t.Elem).HeadSize)
		if !ok || need > len(b)-word.Size {
			return nil, errors.OutOfBounds(errors.PhaseDecode, path, need+word.Size, len(b))
		}
		elems, err := d.decodeElems(b[word.Size:], t.Elem, count, depth+1, path)
		if err != nil {
			return nil, err
		}
		return &DynArray{typ: t, elems: elems}, nil

	case KindFixedArray:
		elems, err := d.decodeElems(b, t.Elem, t.Length, depth+1, path)
		if err != nil {
			return nil, err
		}
		return &FixedArray{typ: t, elems: elems}, nil

	case KindTuple, KindStruct:
		return d.decodeComposite(b, t, depth, path)

	default:
		return nil, errors.Unsupported(errors.PhaseDecode, t.String())
	}
}

func (d *decoder) decodeComposite(block []byte, t *Type, depth int, path []string) (Value, error) {
	values, err := d.decodeSequence(block, t.Members(), depth+1, path)
	if err != nil {
		return nil, err
	}
	if t.Kind == KindTuple {
		return &Tuple{typ: t, elems: values}, nil
	}
	fields := make(ParamSet, len(values))
	for i, f := range t.Struct.Fields {
		fields[i] = NamedValue{Name: f.Name, Value: values[i]}
	}
	return &Struct{typ: t, fields: fields}, nil
}

func decodeWord(w []byte, t *Type, path []string) (Value, error) {
	if len(w) < word.Size {
		return nil, errors.OutOfBounds(errors.PhaseDecode, path, word.Size, len(w))
	}
	w = w[:word.Size]

	switch t.Kind {
	case KindUint:
		v := new(big.Int).SetBytes(w)
		if v.BitLen() > t.Size {
			return nil, errors.Overflow(errors.PhaseDecode, path, v, t.String())
		}
		return &Uint{typ: t, v: v}, nil

	case KindInt:
		v := signExtend(new(big.Int).SetBytes(w))
		if !fitsSigned(v, t.Size) {
			return nil, errors.Overflow(errors.PhaseDecode, path, v, t.String())
		}
		return &Int{typ: t, v: v}, nil

	case KindBool:
		if !word.IsZero(w[:word.Size-1]) || w[word.Size-1] > 1 {
			return nil, errors.InvalidData(errors.PhaseDecode, path, "invalid bool word")
		}
		return &Bool{typ: t, v: w[word.Size-1] == 1}, nil

	case KindAddress:
		if !word.IsZero(w[:word.Size-common.AddressLength]) {
			return nil, errors.InvalidData(errors.PhaseDecode, path, "address word has dirty high bytes")
		}
		return &Address{typ: t, v: common.BytesToAddress(w[word.Size-common.AddressLength:])}, nil

	case KindFixedBytes:
		if !word.IsZero(w[t.Size:]) {
			return nil, errors.InvalidData(errors.PhaseDecode, path, t.String()+" word has dirty padding")
		}
		return &FixedBytes{typ: t, v: append([]byte(nil), w[:t.Size]...)}, nil

	default:
		return nil, errors.Unsupported(errors.PhaseDecode, t.String())
	}
}

func readLengthPrefixed(b []byte, t *Type, path []string) ([]byte, error) {
	n, ok := readCount(b)
	if !ok || n > MaxBytesLength {
		return nil, errors.New(errors.PhaseDecode, errors.KindOutOfBounds).
			Path(path...).
			AbiType(t.String()).
			Detail("invalid length").
			Build()
	}
	padded := word.PaddedLen(n)
	if padded > len(b)-word.Size {
		return nil, errors.OutOfBounds(errors.PhaseDecode, path, word.Size+padded, len(b))
	}
	return append([]byte{}, b[word.Size:word.Size+n]...), nil
}

// signExtend reads a 256-bit word as two's complement.
func signExtend(x *big.Int) *big.Int {
	if x.Bit(255) == 1 {
		return x.Sub(x, tt256)
	}
	return x
}

var tt256 = new(big.Int).Lsh(big.NewInt(1), 256)

func readCount(b []byte) (int, bool) {
	if len(b) < word.Size {
		return 0, false
	}
	return word.ReadInt(b[:word.Size])
}

func appendPath(path []string, seg string) []string {
	out := make([]string, len(path), len(path)+1)
	copy(out, path)
	return append(out, seg)
}
