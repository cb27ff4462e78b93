package host

import (
	"context"

	"github.com/wippyai/linera-bridge/base"
)

// Runtime is the domain-side implementation behind the host functions.
// Methods are called from guest execution and may run concurrently when
// several guests share one host module.
type Runtime interface {
	ChainID(ctx context.Context) base.ChainID
	BlockHeight(ctx context.Context) base.BlockHeight
	ApplicationID(ctx context.Context) base.UserApplicationID
	SystemTimestamp(ctx context.Context) base.Timestamp
	ChainBalance(ctx context.Context) base.Amount
	OwnerBalance(ctx context.Context, owner base.MultiAddress) base.Amount
	ChainOwnership(ctx context.Context) base.ChainOwnership
	PerformHTTPRequest(ctx context.Context, req base.HTTPRequest) (base.HTTPResponse, error)
}

// Bindings converts between one wire namespace and the domain model.
// The generated baseruntime packages implement it.
type Bindings interface {
	// Interface returns the WIT interface name, used as the host module name.
	Interface() string
	// Namespace returns "contract" or "service".
	Namespace() string
	// FromBase converts a domain value to its wire value.
	FromBase(v any) (any, bool)
	// ToBase converts a wire value to its domain value.
	ToBase(v any) (any, bool)
	// Zero returns a pointer to a zero wire value of the named WIT type.
	Zero(name string) (any, bool)
}
