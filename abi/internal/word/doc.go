// Package word provides 32-byte word helpers for ABI encoding/decoding.
//
// # Contents
//
//   - helpers.go: Word padding, offset/length reads, safe arithmetic
//   - limits.go: Resource limits shared by the decoder and resolver
//
// This package is internal to the abi package.
package word
