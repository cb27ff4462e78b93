// Package abi lowers wire values into guest memory and lifts them back,
// following the Component Model canonical ABI.
//
// Values are described by go.bytecodealliance.org/wit types (see package
// schema) and held in plain Go values, usually the generated wire types.
// Go values map onto WIT types as follows:
//
//	WIT              Go
//	──────────────────────────────────────────────────────────
//	bool             bool
//	u8..u64, s8..s64 unsigned / signed integer kinds
//	f32, f64         float32, float64
//	char             rune
//	string           string
//	list<T>          []T ([]byte for list<u8>)
//	record           struct; fields matched by wit tag, then
//	                 case-insensitive name, then kebab-case
//	tuple            struct (fields by position) or array
//	option<T>        *T, nil is none
//	variant          struct of case pointers, exactly one non-nil;
//	                 a case without payload uses *struct{}
//	enum             unsigned integer
//
// # Layout
//
//	Type            Size    Alignment
//	──────────────────────────────────
//	bool, u8/s8     1       1
//	u16/s16         2       2
//	u32/s32/f32     4       4
//	char            4       4
//	u64/s64/f64     8       8
//	string, list    8       4 (ptr + len)
//	record/tuple    sum     max field align
//	variant         varies  max(discriminant, case align)
//	option<T>       1+size  max(1, T align)
//
// # Flattening
//
// Function parameters and results are passed as core values when they
// fit: up to MaxFlatParams values for parameters and MaxFlatResults for
// results. Larger results are stored in guest memory at a return pointer.
// Core values are carried as uint64 in the wazero stack encoding, so the
// payload of a joined variant slot needs no coercion beyond zero padding.
//
// Lists and strings are allocated through an Allocator, normally the
// guest's cabi_realloc.
package abi
