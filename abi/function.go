package abi

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/wippyai/walletcore/errors"
	"github.com/wippyai/walletcore/keccak"
)

// SelectorSize is the length of a function selector.
const SelectorSize = 4

// Function is a contract call: named inputs carrying values plus the output
// types used to decode the result.
type Function struct {
	Name    string
	Inputs  ParamSet
	Outputs []FieldDef
}

// NewFunction returns a function with positional, unnamed inputs.
func NewFunction(name string, inputs ...Value) *Function {
	f := &Function{Name: name}
	for _, v := range inputs {
		f.Inputs.Add("", v)
	}
	return f
}

// Returns appends output types.
func (f *Function) Returns(ts ...*Type) *Function {
	for _, t := range ts {
		f.Outputs = append(f.Outputs, FieldDef{Type: t})
	}
	return f
}

// Signature returns "name(type1,type2,...)" with tuples and structs spelled
// out as parenthesised component lists.
func (f *Function) Signature() string {
	return f.Name + f.Inputs.Signature()
}

// Signature renders "name(type1,type2,...)" for the given input types.
func Signature(name string, ts ...*Type) string {
	return name + typeList(ts)
}

// Selector returns the first four bytes of the Keccak-256 of the signature.
func (f *Function) Selector() [SelectorSize]byte {
	return keccak.Selector(f.Signature())
}

// EncodeCall returns selector ‖ encode(inputs).
func (f *Function) EncodeCall() []byte {
	sel := f.Selector()
	return append(sel[:], EncodeParams(f.Inputs)...)
}

// EncodeCallHex is EncodeCall rendered as 0x-prefixed hex.
func (f *Function) EncodeCallHex() string {
	return hexutil.Encode(f.EncodeCall())
}

// DecodeInput checks the selector of call data and decodes the arguments
// against the input types.
func (f *Function) DecodeInput(data []byte) (ParamSet, error) {
	if len(data) < SelectorSize {
		return nil, errors.OutOfBounds(errors.PhaseDecode, []string{f.Name}, SelectorSize, len(data))
	}
	sel := f.Selector()
	if !bytes.Equal(data[:SelectorSize], sel[:]) {
		return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Path(f.Name).
			Detail("selector %x does not match %x", data[:SelectorSize], sel).
			Build()
	}
	fields := make([]FieldDef, len(f.Inputs))
	for i, in := range f.Inputs {
		fields[i] = FieldDef{Name: in.Name, Type: in.Value.Type()}
	}
	return DecodeParams(data[SelectorSize:], fields)
}

// DecodeOutput decodes return data against the output types.
func (f *Function) DecodeOutput(data []byte) (ParamSet, error) {
	return DecodeParams(data, f.Outputs)
}
