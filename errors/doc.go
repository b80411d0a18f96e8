// Package errors provides structured error types for the walletcore library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries rich context: field path, ABI type name, offending value
// and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseResolve, errors.KindNotFound).
//		Path("Mail", "from").
//		AbiType("Person").
//		Detail("type is not declared").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseParse, path, "object", "uint256[]")
//	err := errors.OutOfBounds(errors.PhaseDecode, path, 96, 64)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
