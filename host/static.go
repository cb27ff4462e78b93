package host

import (
	"context"
	"sync"

	"github.com/wippyai/linera-bridge/base"
	"github.com/wippyai/linera-bridge/errors"
)

// StaticRuntime answers every query from fixed values. It is meant for
// tests and the linera-host command.
type StaticRuntime struct {
	Chain       base.ChainID
	Height      base.BlockHeight
	Application base.UserApplicationID
	Now         base.Timestamp
	Balance     base.Amount
	Ownership   base.ChainOwnership

	mu        sync.RWMutex
	balances  map[base.MultiAddress]base.Amount
	responses map[string]base.HTTPResponse
}

var _ Runtime = (*StaticRuntime)(nil)

// SetOwnerBalance records the balance returned for owner.
func (r *StaticRuntime) SetOwnerBalance(owner base.MultiAddress, amount base.Amount) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.balances == nil {
		r.balances = make(map[base.MultiAddress]base.Amount)
	}
	r.balances[owner] = amount
}

// SetResponse records the response returned for requests to url.
func (r *StaticRuntime) SetResponse(url string, resp base.HTTPResponse) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.responses == nil {
		r.responses = make(map[string]base.HTTPResponse)
	}
	r.responses[url] = resp
}

func (r *StaticRuntime) ChainID(context.Context) base.ChainID { return r.Chain }

func (r *StaticRuntime) BlockHeight(context.Context) base.BlockHeight { return r.Height }

func (r *StaticRuntime) ApplicationID(context.Context) base.UserApplicationID { return r.Application }

func (r *StaticRuntime) SystemTimestamp(context.Context) base.Timestamp { return r.Now }

func (r *StaticRuntime) ChainBalance(context.Context) base.Amount { return r.Balance }

// OwnerBalance returns the recorded balance, or zero for unknown owners.
func (r *StaticRuntime) OwnerBalance(_ context.Context, owner base.MultiAddress) base.Amount {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.balances[owner]
}

func (r *StaticRuntime) ChainOwnership(context.Context) base.ChainOwnership { return r.Ownership }

// PerformHTTPRequest returns the response recorded for the request URL.
func (r *StaticRuntime) PerformHTTPRequest(_ context.Context, req base.HTTPRequest) (base.HTTPResponse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	resp, ok := r.responses[req.URL]
	if !ok {
		return base.HTTPResponse{}, errors.NotFound(errors.PhaseHost, "response for", req.URL)
	}
	return resp, nil
}
