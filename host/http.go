package host

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"slices"

	"github.com/wippyai/linera-bridge/base"
	"github.com/wippyai/linera-bridge/errors"
)

// MaxResponseBody caps the response body HTTPRuntime hands to a guest.
const MaxResponseBody = 16 << 20

// HTTPRuntime serves PerformHTTPRequest over a real HTTP client and
// delegates every other query to the embedded Runtime.
type HTTPRuntime struct {
	Runtime
	Client *http.Client
}

// NewHTTPRuntime wraps rt. A nil client means http.DefaultClient.
func NewHTTPRuntime(rt Runtime, client *http.Client) *HTTPRuntime {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPRuntime{Runtime: rt, Client: client}
}

// PerformHTTPRequest sends req and returns the response with headers
// sorted by name. Values of a repeated header keep their order.
func (r *HTTPRuntime) PerformHTTPRequest(ctx context.Context, req base.HTTPRequest) (base.HTTPResponse, error) {
	hreq, err := http.NewRequestWithContext(ctx, req.Method.String(), req.URL, bytes.NewReader(req.Body))
	if err != nil {
		return base.HTTPResponse{}, errors.Wrap(errors.PhaseHost, errors.KindInvalidInput, err, "build http request")
	}
	for _, h := range req.Headers {
		hreq.Header.Add(h.Name, h.Value)
	}

	resp, err := r.Client.Do(hreq)
	if err != nil {
		return base.HTTPResponse{}, errors.Wrap(errors.PhaseHost, errors.KindInvalidData, err, "http request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBody+1))
	if err != nil {
		return base.HTTPResponse{}, errors.Wrap(errors.PhaseHost, errors.KindInvalidData, err, "read http response")
	}
	if len(body) > MaxResponseBody {
		return base.HTTPResponse{}, errors.New(errors.PhaseHost, errors.KindOutOfBounds).
			Detail("response body exceeds %d bytes", MaxResponseBody).
			Build()
	}

	names := make([]string, 0, len(resp.Header))
	for name := range resp.Header {
		names = append(names, name)
	}
	slices.Sort(names)

	var headers []base.HTTPHeader
	for _, name := range names {
		for _, v := range resp.Header[name] {
			headers = append(headers, base.NewHTTPHeader(name, v))
		}
	}

	return base.HTTPResponse{
		Status:  uint16(resp.StatusCode),
		Headers: headers,
		Body:    body,
	}, nil
}
