// Package host exposes a domain-side Runtime to WebAssembly guests as the
// linera:app/base-runtime-api host module.
//
// Each host function lifts its parameters from the guest into wire values,
// converts them to the domain model through the namespace Bindings, calls
// the Runtime, converts the result back and lowers it into the guest:
//
//	guest core values ──lift──▶ wire ──ToBase──▶ domain ──▶ Runtime
//	guest memory      ◀─lower── wire ◀─FromBase── domain ◀──┘
//
// Core signatures are derived from package schema with the canonical ABI
// flattening rules. Results wider than one core value are written to a
// return pointer supplied by the guest; lists and strings inside results
// are allocated through the guest's exported cabi_realloc.
//
// A failure inside a host call (bad guest memory, an invalid discriminant,
// a Runtime error) panics, which wazero turns into a trap for the caller.
//
// # Usage
//
//	r := wazero.NewRuntime(ctx)
//	h, err := host.New(rt, contractapi.Bindings{}, host.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	if _, err := h.Instantiate(ctx, r); err != nil {
//	    return err
//	}
//	guest, err := r.Instantiate(ctx, wasmBytes)
package host
