package schema

import "go.bytecodealliance.org/wit"

// Param is a named function parameter.
type Param struct {
	Name string
	Type wit.Type
}

// Func is a function of the interface. Results holds zero or one type.
type Func struct {
	Name    string
	Params  []Param
	Results []wit.Type
}

var funcs = []Func{
	{Name: "get-chain-id", Results: []wit.Type{ChainID}},
	{Name: "get-block-height", Results: []wit.Type{BlockHeight}},
	{Name: "get-application-id", Results: []wit.Type{UserApplicationID}},
	{Name: "read-system-timestamp", Results: []wit.Type{Timestamp}},
	{Name: "read-chain-balance", Results: []wit.Type{Amount}},
	{
		Name:    "read-owner-balance",
		Params:  []Param{{Name: "owner", Type: MultiAddress}},
		Results: []wit.Type{Amount},
	},
	{Name: "read-chain-ownership", Results: []wit.Type{ChainOwnership}},
	{
		Name: "log",
		Params: []Param{
			{Name: "message", Type: wit.String{}},
			{Name: "level", Type: LogLevel},
		},
	},
	{
		Name:    "perform-http-request",
		Params:  []Param{{Name: "request", Type: HTTPRequest}},
		Results: []wit.Type{HTTPResponse},
	},
}

// Funcs returns the functions of the interface in declaration order.
func Funcs() []Func {
	out := make([]Func, len(funcs))
	copy(out, funcs)
	return out
}

// LookupFunc returns the function called name.
func LookupFunc(name string) (Func, bool) {
	for _, f := range funcs {
		if f.Name == name {
			return f, true
		}
	}
	return Func{}, false
}
