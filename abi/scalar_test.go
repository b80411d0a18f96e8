package abi

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/wippyai/walletcore/errors"
)

func TestParseScalar(t *testing.T) {
	tests := []struct {
		name string
		typ  string
		raw  string
		want string
	}{
		{"number", "uint256", `42`, "42"},
		{"decimal string", "uint256", `"42"`, "42"},
		{"hex string", "uint256", `"0x2a"`, "42"},
		{"exponent", "uint256", `1e18`, "1000000000000000000"},
		{"negative", "int8", `-128`, "-128"},
		{"negative string", "int64", `"-5"`, "-5"},
		{"uint max", "uint8", `255`, "255"},
		{"bool", "bool", `true`, "true"},
		{"bool string", "bool", `"false"`, "false"},
		{"address lower", "address", `"0xcd2a3d9f938e13cd947ec05abc7fe734df8dd826"`, "0xCD2a3d9F938E13CD947Ec05AbC7FE734Df8DD826"},
		{"address no prefix", "address", `"cd2a3d9f938e13cd947ec05abc7fe734df8dd826"`, "0xCD2a3d9F938E13CD947Ec05AbC7FE734Df8DD826"},
		{"bytes4 short", "bytes4", `"0x0102"`, "0x01020000"},
		{"bytes4 exact", "bytes4", `"0x01020304"`, "0x01020304"},
		{"bytes odd", "bytes", `"abc"`, "0x0abc"},
		{"bytes empty", "bytes", `"0x"`, "0x"},
		{"string", "string", `"Hello, Bob!"`, "Hello, Bob!"},
		{"number for string", "string", `42`, "42"},
		{"number for bool", "bool", `1`, "true"},
		{"number for bytes", "bytes", `1234`, "0x1234"},
		{"number for bytes2", "bytes2", `12`, "0x1200"},
		{"null uint", "uint8", `null`, "0"},
		{"null string", "string", `null`, ""},
		{"null bytes2", "bytes2", ` null `, "0x0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseScalar(MustParseType(tt.typ), json.RawMessage(tt.raw))
			if err != nil {
				t.Fatalf("ParseScalar(%s, %s): %v", tt.typ, tt.raw, err)
			}
			if v.String() != tt.want {
				t.Errorf("ParseScalar(%s, %s) = %q, want %q", tt.typ, tt.raw, v.String(), tt.want)
			}
			if v.Type().String() != MustParseType(tt.typ).String() {
				t.Errorf("type = %s, want %s", v.Type(), tt.typ)
			}
		})
	}
}

func TestParseScalarErrors(t *testing.T) {
	tests := []struct {
		name string
		typ  string
		raw  string
		kind errors.Kind
	}{
		{"uint negative", "uint256", `-1`, errors.KindOverflow},
		{"uint8 overflow", "uint8", `256`, errors.KindOverflow},
		{"int8 overflow string", "int8", `"128"`, errors.KindOverflow},
		{"fraction", "uint8", `1.5`, errors.KindInvalidInput},
		{"not a number", "uint8", `"abc"`, errors.KindInvalidInput},
		{"number for address", "address", `42`, errors.KindInvalidInput},
		{"number 2 for bool", "bool", `2`, errors.KindInvalidInput},
		{"bool for uint", "uint8", `true`, errors.KindTypeMismatch},
		{"bad bool string", "bool", `"yes"`, errors.KindInvalidInput},
		{"bad address", "address", `"xyz"`, errors.KindInvalidInput},
		{"short address", "address", `"0x1234"`, errors.KindInvalidInput},
		{"bytes4 too long", "bytes4", `"0x0102030405"`, errors.KindOverflow},
		{"bad hex", "bytes", `"0xzz"`, errors.KindInvalidInput},
		{"object", "uint256", `{"a":1}`, errors.KindTypeMismatch},
		{"array", "string", `["a"]`, errors.KindTypeMismatch},
		{"composite type", "uint8[]", `[1]`, errors.KindTypeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScalar(MustParseType(tt.typ), json.RawMessage(tt.raw), "message", "field")
			if err == nil {
				t.Fatalf("ParseScalar(%s, %s) succeeded", tt.typ, tt.raw)
			}
			var e *errors.Error
			if !stderrors.As(err, &e) {
				t.Fatalf("error %T is not *errors.Error", err)
			}
			if e.Phase != errors.PhaseParse || e.Kind != tt.kind {
				t.Errorf("error = %v, want parse/%s", err, tt.kind)
			}
		})
	}
}

func TestParseScalarErrorCarriesPath(t *testing.T) {
	_, err := ParseScalar(UintType(8), json.RawMessage(`300`), "message", "amount")
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("error %T is not *errors.Error", err)
	}
	if len(e.Path) != 2 || e.Path[0] != "message" || e.Path[1] != "amount" {
		t.Errorf("Path = %v", e.Path)
	}
}
