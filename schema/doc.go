// Package schema declares the linera:app/base-runtime-api WIT interface
// as go.bytecodealliance.org/wit values.
//
// The contract and service namespaces compile against the same shapes,
// so one declaration serves both. The generator derives the wire types
// from these declarations, the abi package lays values out in guest
// memory by them, and the host package derives core function signatures
// from Funcs.
package schema
