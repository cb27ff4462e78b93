// Package errors provides structured error types for linera-bridge.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the field path, Go/WIT type names and the cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseLower, errors.KindTypeMismatch).
//		Path("chain-ownership", "owners").
//		GoType("string").
//		WitType("list<tuple<multi-address, u64>>").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseLower, path, "string", "u64")
//	err := errors.OutOfBounds(errors.PhaseLift, path, 10, 5)
//
// Conversions between wire and domain types never return errors. A wire
// value that the schema cannot produce (a variant with no active case, an
// enum tag out of range) is reported by panicking with ContractViolation.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
