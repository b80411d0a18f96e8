package abi

import (
	"strconv"
	"strings"

	"github.com/wippyai/walletcore/errors"
)

// StructLookup resolves a struct name referenced from a type string.
type StructLookup func(name string) (*StructDef, bool)

// ParseType parses a canonical ABI type name such as "uint256", "bytes10",
// "address[3]", "string[]" or "(uint8,bytes)[]". Struct names are rejected;
// use ParseTypeWith to resolve them.
func ParseType(name string) (*Type, error) {
	return ParseTypeWith(name, nil)
}

// ParseTypeWith parses a type name, resolving bare identifiers that are not
// ABI keywords through lookup.
func ParseTypeWith(name string, lookup StructLookup) (*Type, error) {
	return parseType(strings.TrimSpace(name), lookup, 0)
}

// MustParseType is like ParseType but panics on error.
func MustParseType(name string) *Type {
	t, err := ParseType(name)
	if err != nil {
		panic(err)
	}
	return t
}

func parseType(name string, lookup StructLookup, depth int) (*Type, error) {
	if depth > MaxDepth {
		return nil, errors.DepthExceeded(errors.PhaseParse, []string{name}, MaxDepth)
	}
	if name == "" {
		return nil, errors.InvalidInput(errors.PhaseParse, nil, "empty type name")
	}

	if strings.HasSuffix(name, "]") {
		open := strings.LastIndexByte(name, '[')
		if open <= 0 {
			return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
				AbiType(name).
				Detail("unbalanced array brackets").
				Build()
		}
		elem, err := parseType(name[:open], lookup, depth+1)
		if err != nil {
			return nil, err
		}
		dim := name[open+1 : len(name)-1]
		if dim == "" {
			return ArrayType(elem), nil
		}
		n, err := strconv.Atoi(dim)
		if err != nil || n <= 0 || n > MaxArrayLength {
			return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
				AbiType(name).
				Detail("invalid array length %q", dim).
				Build()
		}
		return FixedArrayType(elem, n), nil
	}

	if strings.HasPrefix(name, "(") {
		if !strings.HasSuffix(name, ")") {
			return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
				AbiType(name).
				Detail("unbalanced parentheses").
				Build()
		}
		parts, err := splitComponents(name[1 : len(name)-1])
		if err != nil {
			return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
				AbiType(name).
				Cause(err).
				Detail("malformed tuple").
				Build()
		}
		components := make([]*Type, 0, len(parts))
		for _, p := range parts {
			c, err := parseType(strings.TrimSpace(p), lookup, depth+1)
			if err != nil {
				return nil, err
			}
			components = append(components, c)
		}
		return TupleType(components...), nil
	}

	return parseElementary(name, lookup)
}

func parseElementary(name string, lookup StructLookup) (*Type, error) {
	switch name {
	case "bool":
		return BoolType(), nil
	case "address":
		return AddressType(), nil
	case "string":
		return StringType(), nil
	case "bytes":
		return BytesType(), nil
	case "byte":
		return FixedBytesType(1), nil
	case "uint":
		return UintType(256), nil
	case "int":
		return IntType(256), nil
	}

	if rest, ok := strings.CutPrefix(name, "uint"); ok && isWidth(rest) {
		bits, _ := strconv.Atoi(rest)
		if bits <= 0 || bits > 256 || bits%8 != 0 {
			return nil, errors.Unsupported(errors.PhaseParse, name)
		}
		return UintType(bits), nil
	}
	if rest, ok := strings.CutPrefix(name, "int"); ok && isWidth(rest) {
		bits, _ := strconv.Atoi(rest)
		if bits <= 0 || bits > 256 || bits%8 != 0 {
			return nil, errors.Unsupported(errors.PhaseParse, name)
		}
		return IntType(bits), nil
	}
	if rest, ok := strings.CutPrefix(name, "bytes"); ok && isWidth(rest) {
		n, _ := strconv.Atoi(rest)
		if n <= 0 || n > 32 {
			return nil, errors.Unsupported(errors.PhaseParse, name)
		}
		return FixedBytesType(n), nil
	}
	if strings.HasPrefix(name, "fixed") || strings.HasPrefix(name, "ufixed") || name == "function" {
		return nil, errors.Unsupported(errors.PhaseParse, name)
	}

	if lookup != nil {
		if def, ok := lookup(name); ok {
			return StructType(def), nil
		}
	}
	return nil, errors.NotFound(errors.PhaseParse, nil, name)
}

// splitComponents splits a tuple body on top-level commas.
func splitComponents(body string) ([]string, error) {
	if strings.TrimSpace(body) == "" {
		return nil, nil
	}
	var parts []string
	level, start := 0, 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '(':
			level++
		case ')':
			level--
			if level < 0 {
				return nil, errors.InvalidInput(errors.PhaseParse, nil, "unexpected ')'")
			}
		case ',':
			if level == 0 {
				parts = append(parts, body[start:i])
				start = i + 1
			}
		}
	}
	if level != 0 {
		return nil, errors.InvalidInput(errors.PhaseParse, nil, "missing ')'")
	}
	return append(parts, body[start:]), nil
}

// isWidth accepts a decimal width without leading zeros.
func isWidth(s string) bool {
	if s == "" || s[0] == '0' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func invalidWidth(kind string, n int) *errors.Error {
	return errors.New(errors.PhaseConstruct, errors.KindInvalidInput).
		AbiType(kind).
		Value(n).
		Detail("invalid width %d", n).
		Build()
}
