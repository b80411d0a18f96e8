// Package layout provides Solidity ABI head/tail layout calculations.
//
// This package decides whether a type is static (inlined in the head) or
// dynamic (referenced by offset from the head, payload in the tail), and
// computes the number of bytes a static type occupies.
//
// # Layout Rules
//
//   - Atomic types (uintN, intN, bool, address, bytesN): one 32-byte word
//   - bytes, string, T[]: always dynamic, one offset word in the head
//   - T[k], tuples, structs: dynamic iff any member is dynamic; otherwise
//     the sum of member sizes
//
// # Usage
//
//	info := layout.Calculate(t)
//	// info.Dynamic, info.HeadSize available
//
// This package is internal to the abi package.
package layout
