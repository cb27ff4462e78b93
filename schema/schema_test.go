package schema

import (
	"strings"
	"testing"

	"go.bytecodealliance.org/wit"
)

func TestTypes_UniqueNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, td := range Types() {
		name := Name(td)
		if name == "" {
			t.Fatalf("anonymous type in Types(): %s", TypeString(td))
		}
		if seen[name] {
			t.Errorf("duplicate type %q", name)
		}
		seen[name] = true

		got, ok := Lookup(name)
		if !ok || got != td {
			t.Errorf("Lookup(%q) did not return the declared type", name)
		}
	}
	if _, ok := Lookup("no-such-type"); ok {
		t.Error("Lookup found an undeclared type")
	}
}

func TestTypes_ReferencesDeclaredFirst(t *testing.T) {
	declared := make(map[*wit.TypeDef]bool)
	var check func(owner string, t2 wit.Type)
	check = func(owner string, t2 wit.Type) {
		td, ok := t2.(*wit.TypeDef)
		if !ok {
			return
		}
		if td.Name != nil {
			if !declared[td] {
				t.Errorf("%s references %s before its declaration", owner, *td.Name)
			}
			return
		}
		switch k := td.Kind.(type) {
		case *wit.List:
			check(owner, k.Type)
		case *wit.Option:
			check(owner, k.Type)
		case *wit.Tuple:
			for _, e := range k.Types {
				check(owner, e)
			}
		}
	}

	for _, td := range Types() {
		switch k := td.Kind.(type) {
		case *wit.Record:
			for _, f := range k.Fields {
				check(*td.Name, f.Type)
			}
		case *wit.Variant:
			for _, c := range k.Cases {
				check(*td.Name, c.Type)
			}
		}
		declared[td] = true
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  wit.Type
		want string
	}{
		{wit.U64{}, "u64"},
		{wit.String{}, "string"},
		{CryptoHash, "crypto-hash"},
		{list(tuple(MultiAddress, wit.U64{})), "list<tuple<multi-address, u64>>"},
		{option(TimeDelta), "option<time-delta>"},
		{list(wit.U8{}), "list<u8>"},
	}

	for _, tt := range tests {
		if got := TypeString(tt.typ); got != tt.want {
			t.Errorf("TypeString() = %q, want %q", got, tt.want)
		}
	}
}

func TestDeclaration(t *testing.T) {
	tests := []struct {
		td       *wit.TypeDef
		contains []string
	}{
		{Amount, []string{"record amount {", "inner0: tuple<u64, u64>,"}},
		{MultiAddress, []string{"variant multi-address {", "address32(crypto-hash),", "chain,"}},
		{LogLevel, []string{"enum log-level {", "trace,", "error,"}},
		{TimeoutConfig, []string{"fast-round-duration: option<time-delta>,"}},
	}

	for _, tt := range tests {
		decl := Declaration(tt.td)
		for _, s := range tt.contains {
			if !strings.Contains(decl, s) {
				t.Errorf("Declaration(%s) = %q, missing %q", Name(tt.td), decl, s)
			}
		}
	}
}

func TestFuncs(t *testing.T) {
	f, ok := LookupFunc("read-owner-balance")
	if !ok {
		t.Fatal("read-owner-balance not declared")
	}
	if got := f.Signature(); got != "read-owner-balance: func(owner: multi-address) -> amount" {
		t.Errorf("Signature() = %q", got)
	}

	for _, f := range Funcs() {
		if len(f.Results) > 1 {
			t.Errorf("%s has %d results", f.Name, len(f.Results))
		}
	}
	if _, ok := LookupFunc("missing"); ok {
		t.Error("LookupFunc found an undeclared function")
	}
}
