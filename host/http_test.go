package host

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/wippyai/linera-bridge/base"
)

func TestHTTPRuntime(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("X-Method", r.Method)
		w.Header().Set("X-Echo", r.Header.Get("X-Token"))
		w.Header().Add("Set-Cookie", "a=1")
		w.Header().Add("Set-Cookie", "b=2")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write(append([]byte("echo:"), body...))
	}))
	defer srv.Close()

	rt := NewHTTPRuntime(&StaticRuntime{Height: 3}, srv.Client())
	resp, err := rt.PerformHTTPRequest(context.Background(), base.HTTPRequest{
		Method:  base.MethodPut,
		URL:     srv.URL + "/x",
		Headers: []base.HTTPHeader{base.NewHTTPHeader("X-Token", "secret")},
		Body:    []byte("payload"),
	})
	if err != nil {
		t.Fatalf("PerformHTTPRequest: %v", err)
	}

	if resp.Status != http.StatusAccepted {
		t.Errorf("Status = %d", resp.Status)
	}
	if string(resp.Body) != "echo:payload" {
		t.Errorf("Body = %q", resp.Body)
	}
	if v, _ := resp.Header("x-method"); v != "PUT" {
		t.Errorf("X-Method = %q", v)
	}
	if v, _ := resp.Header("x-echo"); v != "secret" {
		t.Errorf("X-Echo = %q", v)
	}

	var names []string
	var cookies []string
	for _, h := range resp.Headers {
		names = append(names, h.Name)
		if h.Name == "Set-Cookie" {
			cookies = append(cookies, h.Value)
		}
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("headers not sorted: %v", names)
			break
		}
	}
	if strings.Join(cookies, ",") != "a=1,b=2" {
		t.Errorf("Set-Cookie = %v", cookies)
	}

	// Other queries go to the wrapped runtime.
	if rt.BlockHeight(context.Background()) != 3 {
		t.Error("BlockHeight not delegated")
	}
}

func TestHTTPRuntimeErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	rt := NewHTTPRuntime(&StaticRuntime{}, nil)
	if rt.Client != http.DefaultClient {
		t.Error("nil client must default to http.DefaultClient")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := rt.PerformHTTPRequest(ctx, base.HTTPRequest{Method: base.MethodGet, URL: srv.URL}); err == nil {
		t.Error("expected timeout error")
	}

	if _, err := rt.PerformHTTPRequest(context.Background(), base.HTTPRequest{URL: "://bad"}); err == nil {
		t.Error("expected error for malformed url")
	}
}
