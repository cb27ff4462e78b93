package base

import (
	"strconv"
	"strings"
)

// HTTPMethod is an HTTP request method.
type HTTPMethod uint8

const (
	MethodGet HTTPMethod = iota
	MethodPost
	MethodPut
	MethodDelete
	MethodHead
	MethodOptions
	MethodConnect
	MethodPatch
	MethodTrace
)

// HTTPMethodCount is the number of HTTPMethod values.
const HTTPMethodCount = int(MethodTrace) + 1

var methodNames = [HTTPMethodCount]string{
	MethodGet:     "GET",
	MethodPost:    "POST",
	MethodPut:     "PUT",
	MethodDelete:  "DELETE",
	MethodHead:    "HEAD",
	MethodOptions: "OPTIONS",
	MethodConnect: "CONNECT",
	MethodPatch:   "PATCH",
	MethodTrace:   "TRACE",
}

func (m HTTPMethod) String() string {
	if int(m) < len(methodNames) {
		return methodNames[m]
	}
	return "HTTPMethod(" + strconv.Itoa(int(m)) + ")"
}

// ParseHTTPMethod parses a method name case-insensitively.
func ParseHTTPMethod(s string) (HTTPMethod, bool) {
	for i, name := range methodNames {
		if strings.EqualFold(s, name) {
			return HTTPMethod(i), true
		}
	}
	return 0, false
}

// HTTPHeader is a single header name/value pair.
type HTTPHeader struct {
	Name  string
	Value string
}

// NewHTTPHeader builds a header.
func NewHTTPHeader(name, value string) HTTPHeader {
	return HTTPHeader{Name: name, Value: value}
}

// HTTPRequest is an outgoing HTTP request.
type HTTPRequest struct {
	Method  HTTPMethod
	URL     string
	Headers []HTTPHeader
	Body    []byte
}

// HTTPResponse is the response to an HTTPRequest.
type HTTPResponse struct {
	Status  uint16
	Headers []HTTPHeader
	Body    []byte
}

// Header returns the value of the first header named name, compared
// case-insensitively.
func (r HTTPResponse) Header(name string) (string, bool) {
	for _, h := range r.Headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value, true
		}
	}
	return "", false
}
