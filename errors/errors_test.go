package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:   PhaseResolve,
				Kind:    KindNotFound,
				Path:    []string{"Mail", "from", "wallet"},
				AbiType: "Person",
				Detail:  "type is not declared",
			},
			contains: []string{"[resolve]", "not_found", "Mail.from.wallet", "Person", "type is not declared"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDecode,
				Kind:  KindOutOfBounds,
			},
			contains: []string{"[decode]", "out_of_bounds"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseSign,
				Kind:   KindInvalidInput,
				Detail: "bad key",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[sign]", "invalid_input", "bad key", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseEncode,
		Kind:  KindInvalidData,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseParse,
		Kind:  KindTypeMismatch,
		Path:  []string{"foo"},
	}

	if !err.Is(&Error{Phase: PhaseParse, Kind: KindTypeMismatch}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseDecode, Kind: KindTypeMismatch}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseParse, Kind: KindOutOfBounds}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseParse, Kind: KindTypeMismatch}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}

	var as *Error
	if !errors.As(error(err), &as) || as.Path[0] != "foo" {
		t.Error("errors.As should extract *Error")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseParse, KindTypeMismatch).
		Path("Mail", "contents").
		AbiType("string").
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "string", "number").
		Build()

	if err.Phase != PhaseParse {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseParse)
	}
	if err.Kind != KindTypeMismatch {
		t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
	}
	if len(err.Path) != 2 || err.Path[0] != "Mail" || err.Path[1] != "contents" {
		t.Errorf("Path = %v, want [Mail contents]", err.Path)
	}
	if err.AbiType != "string" {
		t.Errorf("AbiType = %v, want 'string'", err.AbiType)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected string, got number" {
		t.Errorf("Detail = %v, want 'expected string, got number'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		kind Kind
	}{
		{"TypeMismatch", TypeMismatch(PhaseParse, []string{"f"}, "object", "uint256[]"), KindTypeMismatch},
		{"FieldMissing", FieldMissing(PhaseResolve, []string{"root"}, "types"), KindFieldMissing},
		{"NotFound", NotFound(PhaseResolve, []string{"Mail"}, "Person"), KindNotFound},
		{"Unsupported", Unsupported(PhaseParse, "fixed128x18"), KindUnsupported},
		{"OutOfBounds", OutOfBounds(PhaseDecode, nil, 96, 64), KindOutOfBounds},
		{"Overflow", Overflow(PhaseParse, nil, 300, "uint8"), KindOverflow},
		{"LengthMismatch", LengthMismatch(PhaseConstruct, nil, "bytes4", 4, 3), KindLengthMismatch},
		{"DepthExceeded", DepthExceeded(PhaseDecode, nil, 64), KindDepthExceeded},
		{"InvalidData", InvalidData(PhaseDecode, nil, "bad bool"), KindInvalidData},
		{"InvalidInput", InvalidInput(PhaseHash, nil, "not an object"), KindInvalidInput},
		{"Wrap", Wrap(PhaseHash, KindInvalidInput, errors.New("x"), "wrapped"), KindInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.err.Kind, tt.kind)
			}
			if tt.err.Error() == "" {
				t.Error("empty message")
			}
		})
	}

	t.Run("OutOfBounds detail", func(t *testing.T) {
		err := OutOfBounds(PhaseDecode, []string{"arg[0]"}, 96, 64)
		if !strings.Contains(err.Detail, "96") || !strings.Contains(err.Detail, "64") {
			t.Errorf("Detail = %q, should contain sizes", err.Detail)
		}
		if err.Value != 96 {
			t.Errorf("Value = %v, want 96", err.Value)
		}
	})
}
