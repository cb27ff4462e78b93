// Package codegen renders the wire namespace packages from package schema.
//
// Generation uses text/template + go/format. Each namespace gets four
// files:
//
//	types.go     wire types, one per named WIT type plus anonymous tuples
//	from_wit.go  wire -> domain, a ToBase method per wire type
//	to_wit.go    domain -> wire, a <Type>FromBase function per domain type
//	bindings.go  the Bindings value used by package host
//
// Type declarations are derived by walking the schema. Conversion bodies
// live in the embedded templates; enum mappings are expanded from the
// schema's case lists, so adding a case to the schema without adding the
// matching domain constant fails to compile.
package codegen
