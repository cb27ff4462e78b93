package schema

import (
	"go.bytecodealliance.org/wit"
)

// Interface is the fully qualified WIT interface name.
const Interface = "linera:app/base-runtime-api"

// Named types in declaration order.
var (
	CryptoHash = record("crypto-hash",
		field("part1", wit.U64{}),
		field("part2", wit.U64{}),
		field("part3", wit.U64{}),
		field("part4", wit.U64{}),
	)

	Owner = record("owner",
		field("inner0", CryptoHash),
	)

	MultiAddress = named("multi-address", &wit.Variant{Cases: []wit.Case{
		{Name: "address32", Type: CryptoHash},
		{Name: "chain"},
	}})

	Amount = record("amount",
		field("inner0", tuple(wit.U64{}, wit.U64{})),
	)

	BlockHeight = record("block-height",
		field("inner0", wit.U64{}),
	)

	ChainID = record("chain-id",
		field("inner0", CryptoHash),
	)

	UserApplicationID = record("user-application-id",
		field("inner0", CryptoHash),
	)

	Timestamp = record("timestamp",
		field("inner0", wit.U64{}),
	)

	TimeDelta = record("time-delta",
		field("inner0", wit.U64{}),
	)

	TimeoutConfig = record("timeout-config",
		field("fast-round-duration", option(TimeDelta)),
		field("base-timeout", TimeDelta),
		field("timeout-increment", TimeDelta),
		field("fallback-duration", TimeDelta),
	)

	ChainOwnership = record("chain-ownership",
		field("super-owners", list(MultiAddress)),
		field("owners", list(tuple(MultiAddress, wit.U64{}))),
		field("multi-leader-rounds", wit.U32{}),
		field("open-multi-leader-rounds", wit.U32{}),
		field("timeout-config", TimeoutConfig),
	)

	HTTPMethod = enum("http-method",
		"get", "post", "put", "delete", "head", "options", "connect", "patch", "trace",
	)

	HTTPHeader = record("http-header",
		field("name", wit.String{}),
		field("value", wit.String{}),
	)

	HTTPRequest = record("http-request",
		field("method", HTTPMethod),
		field("url", wit.String{}),
		field("headers", list(HTTPHeader)),
		field("body", list(wit.U8{})),
	)

	HTTPResponse = record("http-response",
		field("status", wit.U16{}),
		field("headers", list(HTTPHeader)),
		field("body", list(wit.U8{})),
	)

	LogLevel = enum("log-level",
		"trace", "debug", "info", "warn", "error",
	)
)

var types = []*wit.TypeDef{
	CryptoHash,
	Owner,
	MultiAddress,
	Amount,
	BlockHeight,
	ChainID,
	UserApplicationID,
	Timestamp,
	TimeDelta,
	TimeoutConfig,
	ChainOwnership,
	HTTPMethod,
	HTTPHeader,
	HTTPRequest,
	HTTPResponse,
	LogLevel,
}

// Types returns the named types of the interface in declaration order.
func Types() []*wit.TypeDef {
	out := make([]*wit.TypeDef, len(types))
	copy(out, types)
	return out
}

// Lookup returns the named type called name.
func Lookup(name string) (*wit.TypeDef, bool) {
	for _, t := range types {
		if *t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// Name returns the declared name of t, or "" for anonymous and primitive types.
func Name(t wit.Type) string {
	if td, ok := t.(*wit.TypeDef); ok && td.Name != nil {
		return *td.Name
	}
	return ""
}

func named(name string, kind wit.TypeDefKind) *wit.TypeDef {
	return &wit.TypeDef{Name: &name, Kind: kind}
}

func record(name string, fields ...wit.Field) *wit.TypeDef {
	return named(name, &wit.Record{Fields: fields})
}

func field(name string, t wit.Type) wit.Field {
	return wit.Field{Name: name, Type: t}
}

func enum(name string, cases ...string) *wit.TypeDef {
	ec := make([]wit.EnumCase, len(cases))
	for i, c := range cases {
		ec[i] = wit.EnumCase{Name: c}
	}
	return named(name, &wit.Enum{Cases: ec})
}

func tuple(ts ...wit.Type) *wit.TypeDef {
	return &wit.TypeDef{Kind: &wit.Tuple{Types: ts}}
}

func list(t wit.Type) *wit.TypeDef {
	return &wit.TypeDef{Kind: &wit.List{Type: t}}
}

func option(t wit.Type) *wit.TypeDef {
	return &wit.TypeDef{Kind: &wit.Option{Type: t}}
}
