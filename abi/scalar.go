package abi

import (
	"bytes"
	"encoding/json"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"

	"github.com/wippyai/walletcore/errors"
)

// ParseScalar converts a JSON literal into a value of a primitive type
// (integers, bool, address, bytesN, bytes, string). A JSON null yields the
// zero value.
//
// Integers accept JSON numbers and decimal or 0x-hex strings; bool accepts
// true/false or their quoted forms; address and byte strings accept hex with
// or without the 0x prefix. A JSON number given for a non-integer type is
// parsed as its literal text.
func ParseScalar(t *Type, raw json.RawMessage, path ...string) (Value, error) {
	if !t.Kind.IsPrimitive() {
		return nil, errors.TypeMismatch(errors.PhaseParse, path, "scalar", t.String())
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return Zero(t), nil
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
				Path(path...).
				AbiType(t.String()).
				Cause(err).
				Detail("malformed JSON string").
				Build()
		}
		return ParseString(t, s, path...)
	case 't', 'f':
		if t.Kind != KindBool {
			return nil, errors.TypeMismatch(errors.PhaseParse, path, "JSON boolean", t.String())
		}
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, errors.InvalidInput(errors.PhaseParse, path, "malformed JSON boolean")
		}
		return NewBool(b), nil
	case '{', '[':
		return nil, errors.TypeMismatch(errors.PhaseParse, path, "JSON "+jsonShape(raw), t.String())
	default:
		if t.Kind != KindUint && t.Kind != KindInt {
			// numbers are read as their text for every other primitive
			return ParseString(t, string(raw), path...)
		}
		v, ok := parseNumber(string(raw))
		if !ok {
			return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
				Path(path...).
				AbiType(t.String()).
				Detail("not an integer: %s", raw).
				Build()
		}
		return integerValue(t, v, path)
	}
}

// ParseString converts the text form of a primitive value.
func ParseString(t *Type, s string, path ...string) (Value, error) {
	switch t.Kind {
	case KindUint, KindInt:
		v, ok := math.ParseBig256(strings.TrimSpace(s))
		if !ok {
			return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
				Path(path...).
				AbiType(t.String()).
				Detail("not an integer: %q", s).
				Build()
		}
		return integerValue(t, v, path)

	case KindBool:
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true", "1":
			return NewBool(true), nil
		case "false", "0", "":
			return NewBool(false), nil
		}
		return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
			Path(path...).
			AbiType(t.String()).
			Detail("not a boolean: %q", s).
			Build()

	case KindAddress:
		if !common.IsHexAddress(s) {
			return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
				Path(path...).
				AbiType(t.String()).
				Detail("not a hex address: %q", s).
				Build()
		}
		return NewAddress(common.HexToAddress(s)), nil

	case KindFixedBytes:
		b, err := decodeHex(s)
		if err != nil {
			return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
				Path(path...).
				AbiType(t.String()).
				Cause(err).
				Detail("invalid hex").
				Build()
		}
		if len(b) > t.Size {
			return nil, errors.Overflow(errors.PhaseParse, path, s, t.String())
		}
		v := Zero(t).(*FixedBytes)
		v.SetVal(b)
		return v, nil

	case KindBytes:
		b, err := decodeHex(s)
		if err != nil {
			return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
				Path(path...).
				AbiType(t.String()).
				Cause(err).
				Detail("invalid hex").
				Build()
		}
		return NewBytes(b), nil

	case KindString:
		return NewString(s), nil

	default:
		return nil, errors.TypeMismatch(errors.PhaseParse, path, "text", t.String())
	}
}

func integerValue(t *Type, v *big.Int, path []string) (Value, error) {
	if t.Kind == KindUint {
		if v.Sign() < 0 || v.BitLen() > t.Size {
			return nil, errors.Overflow(errors.PhaseParse, path, v, t.String())
		}
		return &Uint{typ: t, v: v}, nil
	}
	if !fitsSigned(v, t.Size) {
		return nil, errors.Overflow(errors.PhaseParse, path, v, t.String())
	}
	return &Int{typ: t, v: v}, nil
}

// parseNumber accepts JSON integer literals, including exponent forms that
// denote whole numbers (1e18).
func parseNumber(s string) (*big.Int, bool) {
	if v, ok := new(big.Int).SetString(s, 10); ok {
		return v, true
	}
	f, _, err := big.ParseFloat(s, 10, 512, big.ToNearestEven)
	if err != nil || !f.IsInt() {
		return nil, false
	}
	v, acc := f.Int(nil)
	if acc != big.Exact || v.BitLen() > 256 {
		return nil, false
	}
	return v, true
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	if len(s)%2 == 1 {
		s = "0x0" + s[2:]
	}
	return hexutil.Decode("0x" + s[2:])
}

func jsonShape(raw json.RawMessage) string {
	if len(raw) > 0 && raw[0] == '[' {
		return "array"
	}
	return "object"
}
