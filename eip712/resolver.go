package eip712

import (
	"bytes"
	"encoding/json"
	"strconv"

	"go.uber.org/zap"

	"github.com/wippyai/walletcore/abi"
	"github.com/wippyai/walletcore/errors"
)

// MakeStruct resolves typesJSON and builds a value of structType from
// valueJSON. Use Registry.MakeStruct to build several values against one
// set of declarations.
func MakeStruct(structType string, valueJSON, typesJSON []byte) (*abi.Struct, error) {
	reg, err := MakeTypes(typesJSON)
	if err != nil {
		return nil, err
	}
	return reg.MakeStruct(structType, valueJSON)
}

// MakeStruct builds a value of the named struct from a JSON object. Fields
// are read in declaration order; keys not declared in the struct are ignored.
func (r *Registry) MakeStruct(structType string, valueJSON []byte) (*abi.Struct, error) {
	def, ok := r.Lookup(structType)
	if !ok {
		return nil, errors.NotFound(errors.PhaseResolve, nil, structType)
	}
	s, err := buildStruct(def, valueJSON, 0, []string{structType})
	if err != nil {
		Logger().Debug("eip712 struct resolution failed",
			zap.String("type", structType),
			zap.Error(err))
		return nil, err
	}
	return s, nil
}

func buildStruct(def *abi.StructDef, raw []byte, depth int, path []string) (*abi.Struct, error) {
	if depth > abi.MaxDepth {
		return nil, errors.DepthExceeded(errors.PhaseResolve, path, abi.MaxDepth)
	}

	raw = bytes.TrimSpace(raw)
	if isNull(raw) {
		return abi.EmptyStruct(def), nil
	}
	if raw[0] != '{' {
		return nil, errors.TypeMismatch(errors.PhaseResolve, path, jsonKind(raw), def.Name)
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
			Path(path...).
			AbiType(def.Name).
			Cause(err).
			Detail("malformed JSON object").
			Build()
	}

	values := make([]abi.Value, len(def.Fields))
	for i, f := range def.Fields {
		v, err := buildValue(f.Type, obj[f.Name], depth+1, appendPath(path, f.Name))
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return abi.NewStruct(def, values...), nil
}

func buildValue(t *abi.Type, raw []byte, depth int, path []string) (abi.Value, error) {
	if depth > abi.MaxDepth {
		return nil, errors.DepthExceeded(errors.PhaseResolve, path, abi.MaxDepth)
	}

	switch t.Kind {
	case abi.KindStruct:
		s, err := buildStruct(t.Struct, raw, depth, path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case abi.KindArray, abi.KindFixedArray:
		return buildArray(t, raw, depth, path)
	case abi.KindTuple:
		return nil, errors.Unsupported(errors.PhaseResolve, t.String())
	default:
		return abi.ParseScalar(t, raw, path...)
	}
}

func buildArray(t *abi.Type, raw []byte, depth int, path []string) (abi.Value, error) {
	raw = bytes.TrimSpace(raw)
	if isNull(raw) {
		return abi.Zero(t), nil
	}
	if raw[0] != '[' {
		return nil, errors.TypeMismatch(errors.PhaseResolve, path, jsonKind(raw), t.String())
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
			Path(path...).
			AbiType(t.String()).
			Cause(err).
			Detail("malformed JSON array").
			Build()
	}
	if len(items) > abi.MaxArrayLength {
		return nil, errors.New(errors.PhaseResolve, errors.KindOutOfBounds).
			Path(path...).
			AbiType(t.String()).
			Detail("%d elements exceed limit %d", len(items), abi.MaxArrayLength).
			Build()
	}
	if t.Kind == abi.KindFixedArray && len(items) != t.Length {
		return nil, errors.LengthMismatch(errors.PhaseResolve, path, t.String(), t.Length, len(items))
	}

	elems := make([]abi.Value, len(items))
	for i, item := range items {
		v, err := buildValue(t.Elem, item, depth+1, appendPath(path, "["+strconv.Itoa(i)+"]"))
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	if t.Kind == abi.KindFixedArray {
		return abi.NewFixedArray(t.Elem, elems...), nil
	}
	return abi.NewDynArray(t.Elem, elems...), nil
}

func isNull(raw []byte) bool {
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

func jsonKind(raw []byte) string {
	switch raw[0] {
	case '{':
		return "JSON object"
	case '[':
		return "JSON array"
	case '"':
		return "JSON string"
	case 't', 'f':
		return "JSON boolean"
	default:
		return "JSON number"
	}
}

func appendPath(path []string, seg string) []string {
	out := make([]string, len(path), len(path)+1)
	copy(out, path)
	return append(out, seg)
}
