package base

import "testing"

func TestHTTPMethod_Names(t *testing.T) {
	seen := make(map[string]bool)
	for m := HTTPMethod(0); int(m) < HTTPMethodCount; m++ {
		name := m.String()
		if name == "" || seen[name] {
			t.Errorf("method %d has empty or duplicate name %q", m, name)
		}
		seen[name] = true

		parsed, ok := ParseHTTPMethod(name)
		if !ok || parsed != m {
			t.Errorf("ParseHTTPMethod(%q) = %v, %v", name, parsed, ok)
		}
	}

	if _, ok := ParseHTTPMethod("BREW"); ok {
		t.Error("unknown method parsed")
	}
	if m, ok := ParseHTTPMethod("patch"); !ok || m != MethodPatch {
		t.Error("lowercase method not parsed")
	}
	if HTTPMethod(200).String() != "HTTPMethod(200)" {
		t.Errorf("out of range String() = %q", HTTPMethod(200).String())
	}
}

func TestHTTPResponse_Header(t *testing.T) {
	r := HTTPResponse{Headers: []HTTPHeader{
		NewHTTPHeader("Content-Type", "text/plain"),
		NewHTTPHeader("X-A", "1"),
		NewHTTPHeader("x-a", "2"),
	}}

	if v, ok := r.Header("content-type"); !ok || v != "text/plain" {
		t.Errorf("Header(content-type) = %q, %v", v, ok)
	}
	if v, _ := r.Header("X-A"); v != "1" {
		t.Errorf("first match not returned: %q", v)
	}
	if _, ok := r.Header("missing"); ok {
		t.Error("missing header found")
	}
}
