package host

import (
	"context"
	"testing"

	"github.com/wippyai/linera-bridge/base"
)

func TestStaticRuntime(t *testing.T) {
	ctx := context.Background()
	owner := base.Address32{Hash: testHash(4)}
	rt := &StaticRuntime{Balance: base.AmountFromTokens(2)}

	if !rt.OwnerBalance(ctx, owner).IsZero() {
		t.Error("unknown owner must have zero balance")
	}
	rt.SetOwnerBalance(owner, base.AmountFromTokens(1))
	if got := rt.OwnerBalance(ctx, owner); got != base.AmountFromTokens(1) {
		t.Errorf("OwnerBalance = %v", got)
	}
	if !rt.OwnerBalance(ctx, base.ChainAddress{}).IsZero() {
		t.Error("chain address balance is tracked separately")
	}
	if rt.ChainBalance(ctx) != base.AmountFromTokens(2) {
		t.Error("ChainBalance")
	}

	if _, err := rt.PerformHTTPRequest(ctx, base.HTTPRequest{URL: "https://nowhere"}); err == nil {
		t.Error("expected error without a recorded response")
	}
}
