package codegen

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/wippyai/linera-bridge/errors"
)

func generate(t *testing.T, namespace string) map[string][]byte {
	t.Helper()
	files, err := Generate(Options{Namespace: namespace})
	if err != nil {
		t.Fatalf("Generate(%s): %v", namespace, err)
	}
	return files
}

func declared(t *testing.T, name string, src []byte) map[string]bool {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), name, src, 0)
	if err != nil {
		t.Fatalf("parse %s: %v", name, err)
	}
	out := make(map[string]bool)
	for _, d := range f.Decls {
		switch d := d.(type) {
		case *ast.FuncDecl:
			if d.Recv != nil {
				recv := d.Recv.List[0].Type
				if id, ok := recv.(*ast.Ident); ok {
					out[id.Name+"."+d.Name.Name] = true
				}
				continue
			}
			out[d.Name.Name] = true
		case *ast.GenDecl:
			for _, s := range d.Specs {
				switch s := s.(type) {
				case *ast.TypeSpec:
					out[s.Name.Name] = true
				case *ast.ValueSpec:
					for _, n := range s.Names {
						out[n.Name] = true
					}
				}
			}
		}
	}
	return out
}

func TestGenerateFiles(t *testing.T) {
	files := generate(t, "contract")
	if len(files) != len(Files) {
		t.Fatalf("got %d files, want %d", len(files), len(Files))
	}
	for _, name := range Files {
		src, ok := files[name]
		if !ok {
			t.Fatalf("missing %s", name)
		}
		if !bytes.HasPrefix(src, []byte("// Code generated by witbridge-gen. DO NOT EDIT.\n")) {
			t.Errorf("%s: missing generated header", name)
		}
		declared(t, name, src)
	}
}

func TestGenerateDeclarations(t *testing.T) {
	files := generate(t, "contract")

	types := declared(t, "types.go", files["types.go"])
	for _, want := range []string{
		"CryptoHash", "Owner", "MultiAddress", "MultiAddressTag", "MultiAddressAddress32",
		"MultiAddressChain", "MultiAddress.Tag", "Amount", "ChainOwnership",
		"TupleMultiAddressU64", "HTTPMethod", "HTTPMethodCount", "HTTPMethodTrace",
		"LogLevel", "LogLevelCount", "LogLevelError", "UserApplicationID",
	} {
		if !types[want] {
			t.Errorf("types.go does not declare %s", want)
		}
	}

	from := declared(t, "from_wit.go", files["from_wit.go"])
	to := declared(t, "to_wit.go", files["to_wit.go"])
	for _, name := range []string{
		"CryptoHash", "Owner", "MultiAddress", "Amount", "BlockHeight", "ChainID",
		"UserApplicationID", "Timestamp", "TimeDelta", "TimeoutConfig", "ChainOwnership",
		"HTTPMethod", "HTTPHeader", "HTTPRequest", "HTTPResponse", "LogLevel",
	} {
		if !from[name+".ToBase"] {
			t.Errorf("from_wit.go: missing %s.ToBase", name)
		}
		if !to[name+"FromBase"] {
			t.Errorf("to_wit.go: missing %sFromBase", name)
		}
	}
}

func TestGenerateShapes(t *testing.T) {
	types := string(generate(t, "contract")["types.go"])
	for _, want := range []string{
		"Inner0 [2]uint64 `wit:\"inner0\"`",
		"FastRoundDuration *TimeDelta `wit:\"fast-round-duration\"`",
		"Body    []byte       `wit:\"body\"`",
		"Chain     *struct{}   `wit:\"chain\"`",
		"Owners                []TupleMultiAddressU64 `wit:\"owners\"`",
		"const HTTPMethodCount = 9",
		"const LogLevelCount = 5",
	} {
		if !strings.Contains(types, want) {
			t.Errorf("types.go does not contain %q", want)
		}
	}
}

func TestGenerateEnumSwitches(t *testing.T) {
	files := generate(t, "contract")
	from := string(files["from_wit.go"])
	to := string(files["to_wit.go"])
	for _, c := range []string{"Get", "Post", "Put", "Delete", "Head", "Options", "Connect", "Patch", "Trace"} {
		if !strings.Contains(from, "case HTTPMethod"+c+":\n\t\treturn base.Method"+c) {
			t.Errorf("from_wit.go: no arm for %s", c)
		}
		if !strings.Contains(to, "case base.Method"+c+":\n\t\treturn HTTPMethod"+c) {
			t.Errorf("to_wit.go: no arm for %s", c)
		}
	}
	if strings.Contains(from, "default:") || strings.Contains(to, "default:") {
		t.Error("enum switches must not have a default arm")
	}
}

func TestGenerateNamespacesDiffer(t *testing.T) {
	contract := generate(t, "contract")
	service := generate(t, "service")
	for _, name := range Files {
		c := string(contract[name])
		s := string(service[name])
		if name == "bindings.go" {
			c = strings.Replace(c, `"contract"`, `"service"`, 1)
		}
		if c != s {
			t.Errorf("%s: namespaces differ beyond the namespace name", name)
		}
	}
	if !strings.Contains(string(service["bindings.go"]), `return "service"`) {
		t.Error("service bindings do not report their namespace")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := generate(t, "contract")
	b := generate(t, "contract")
	for _, name := range Files {
		if !bytes.Equal(a[name], b[name]) {
			t.Errorf("%s: output differs between runs", name)
		}
	}
}

func TestGenerateOptions(t *testing.T) {
	files, err := Generate(Options{Namespace: "contract", Package: "wire", Interface: "example:pkg/api"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, name := range Files {
		if !bytes.Contains(files[name], []byte("package wire\n")) {
			t.Errorf("%s: package option ignored", name)
		}
	}
	if !bytes.Contains(files["bindings.go"], []byte(`"example:pkg/api"`)) {
		t.Error("interface option ignored")
	}

	_, err = Generate(Options{})
	if err == nil {
		t.Fatal("expected error without namespace")
	}
	e, ok := err.(*errors.Error)
	if !ok || e.Kind != errors.KindInvalidInput {
		t.Errorf("got %v, want invalid_input", err)
	}
}
