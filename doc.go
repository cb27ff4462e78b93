// Package linerabridge marshals values across the boundary between a host
// application and a sandboxed WebAssembly guest that speaks the
// linera:app/base-runtime-api WIT interface.
//
// Two type universes meet at that boundary. The wire types are flat and
// ABI friendly: a 128-bit amount is a pair of u64 words, a 256-bit hash is
// four u64 words, a multi-address is a tagged union. The domain types in
// package base are the richer model the application works with.
//
// # Architecture Overview
//
//	linerabridge/                 Root package with Memory and Allocator interfaces
//	├── base/                     Domain model (hashes, amounts, ownership, http, log levels)
//	├── schema/                   WIT declarations of base-runtime-api
//	├── contract/wit/baseruntime/ Wire types and conversions, contract side (generated)
//	├── service/wit/baseruntime/  Wire types and conversions, service side (generated)
//	├── abi/                      Canonical ABI lowering and lifting of wire values
//	├── host/                     wazero host module implementing base-runtime-api
//	├── errors/                   Structured error types
//	├── internal/codegen/         Generator for the wire namespaces
//	└── cmd/                      witbridge-gen and linera-host binaries
//
// # Conversions
//
// Every wire type has a ToBase method and every domain type has a
// <Type>FromBase function in each wire namespace:
//
//	import contractapi "github.com/wippyai/linera-bridge/contract/wit/baseruntime"
//
//	wire := contractapi.AmountFromBase(base.AmountFromAttos(base.Uint128FromHalves(1, 0)))
//	amount := wire.ToBase()
//
// Conversions are pure and total. They never alias the input: slices and
// byte bodies are copied.
//
// # Namespaces
//
// The contract and service namespaces are generated from the same
// template by witbridge-gen, so the conversion logic exists once and is
// instantiated per namespace:
//
//	go generate ./contract/... ./service/...
package linerabridge
