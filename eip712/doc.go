// Package eip712 hashes and signs EIP-712 typed structured data.
//
// Typed data arrives as JSON:
//
//	{
//	  "types": {
//	    "EIP712Domain": [{"name": "name", "type": "string"}, ...],
//	    "Mail": [{"name": "from", "type": "Person"}, ...],
//	    "Person": [{"name": "name", "type": "string"}, ...]
//	  },
//	  "primaryType": "Mail",
//	  "domain": {...},
//	  "message": {...}
//	}
//
// # Resolution
//
// MakeTypes turns the "types" object into a Registry of abi.StructDef values
// in two passes. The first pass creates an empty definition for every
// declared name; the second parses each field type against those
// definitions and fills them in place. Struct references are pointers into
// the same registry, so self and mutual references need no declaration
// order. A struct may contain itself, directly or through other structs; a
// value of such a type ends where a JSON null or missing key leaves an empty
// struct.
//
// Registry.MakeStruct then builds an *abi.Struct from a JSON object, visiting
// fields in declaration order. A JSON null or a missing key yields the zero
// value of the field; for a struct field that is an empty struct.
//
// # Hashing
//
//	encodeType(S) = "S(T1 f1,...)" ‖ encodeType of each referenced struct,
//	                referenced structs sorted by name, each emitted once
//	hashStruct(s) = keccak256(keccak256(encodeType(S)) ‖ enc(f1) ‖ ...)
//	digest        = keccak256(0x19 ‖ 0x01 ‖ hashStruct(domain) ‖ hashStruct(message))
//
// enc is the 32-byte ABI word for atomic values, keccak256 of the content for
// bytes and string, keccak256 of the concatenated element encodings for
// arrays, and hashStruct for nested structs. A struct without field values
// hashes to 32 zero bytes.
//
// # Signing
//
// Signer abstracts the key holder. NewKeySigner signs with a secp256k1 key
// and returns r ‖ s ‖ v with v in {27, 28}; RecoverAddress inverts it.
package eip712
