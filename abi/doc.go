// Package abi provides Solidity ABI encoding and decoding of contract call
// parameters.
//
// Parameters are modelled as a closed set of Value types, each carrying its
// declared ABI Type:
//
//	Value        Type name        Placement
//	────────────────────────────────────────────
//	*Uint        uint8..uint256   head, 1 word
//	*Int         int8..int256     head, 1 word
//	*Bool        bool             head, 1 word
//	*Address     address          head, 1 word
//	*FixedBytes  bytes1..bytes32  head, 1 word
//	*Bytes       bytes            tail
//	*String      string           tail
//	*FixedArray  T[k]             head if T static, else tail
//	*DynArray    T[]              tail
//	*Tuple       (T1,...,Tn)      head if all Ti static, else tail
//	*Struct      Name             as the tuple of its fields
//
// # Head/Tail Layout
//
// A sequence of values is encoded as a head followed by a tail. Static values
// are inlined in the head; dynamic values leave a one-word byte offset in the
// head, measured from the start of the head, and place their payload in the
// tail:
//
//	bytes, string  length word ‖ content right-padded to 32 bytes
//	T[]            count word ‖ head/tail block of the elements
//	T[k], tuple    head/tail block of the members
//
// # Encoding Flow
//
//  1. Build values: NewUint, NewAddress, NewDynArray, ... or ParseScalar
//  2. Encode(values...) → []byte, or Function.EncodeCall() for call data
//
// # Decoding Flow
//
//  1. ParseType("(uint8,bytes)[]") → *Type
//  2. Decode(data, types) → []Value
//
// # Error Handling
//
// Constructors panic with *errors.Error on arguments that contradict the
// declared type; these are programming errors. Encode has no error path.
// Decode, ParseType and ParseScalar return *errors.Error values:
//
//	[decode] out_of_bounds at [0].[2]: need 128 bytes, have 96
//	[parse] overflow: ABI type uint8 - value 300 overflows uint8
//
// # Thread Safety
//
// All functions are safe for concurrent use. Values are immutable apart from
// FixedBytes.SetVal and DynArray.Append, which must not race with readers.
package abi
