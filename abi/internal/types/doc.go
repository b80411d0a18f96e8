// Package types defines the ABI type descriptors shared by the codec.
//
// A Type is a small tree: scalars carry a bit or byte width, arrays carry an
// element type, tuples carry component types and structs point at a named
// StructDef. StructDefs may reference each other (and themselves through a
// dynamic array), so the tree is really a graph; walkers must not assume it
// is acyclic.
//
// # Key Types
//
//   - Kind: Type discriminator (uint, int, bool, address, bytesN, bytes,
//     string, fixed array, dynamic array, tuple, struct)
//   - Type: Descriptor with kind parameters
//   - StructDef: Named, ordered field list
//
// This package is internal to the abi package.
package types
