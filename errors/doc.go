// Package errors provides structured error types for the wasm-imports library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes context: the offending namespace/name pair, the
// entity kinds involved, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseBridge, errors.KindMismatch).
//		Found("memory").
//		Expected("function").
//		Detail("found memory, expected function").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NotFound(errors.PhaseBridge, "env", "foo")
//	err := errors.InvalidUTF8(errors.PhaseRegistry, "namespace", data)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
