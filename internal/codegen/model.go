package codegen

import (
	"fmt"
	"strings"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/linera-bridge/errors"
	"github.com/wippyai/linera-bridge/schema"
)

// domainTypes lists, per WIT type, the domain types that lower into it.
var domainTypes = map[string][]string{
	"crypto-hash":         {"base.CryptoHash"},
	"owner":               {"base.Owner"},
	"multi-address":       {"base.Address32", "base.ChainAddress"},
	"amount":              {"base.Amount"},
	"block-height":        {"base.BlockHeight"},
	"chain-id":            {"base.ChainID"},
	"user-application-id": {"base.UserApplicationID"},
	"timestamp":           {"base.Timestamp"},
	"time-delta":          {"base.TimeDelta"},
	"timeout-config":      {"base.TimeoutConfig"},
	"chain-ownership":     {"base.ChainOwnership"},
	"http-method":         {"base.HTTPMethod"},
	"http-header":         {"base.HTTPHeader"},
	"http-request":        {"base.HTTPRequest"},
	"http-response":       {"base.HTTPResponse"},
	"log-level":           {"base.Level"},
}

type fieldDecl struct {
	Name string
	Type string
	Tag  string
}

type caseDecl struct {
	Name string
	Wit  string
	Type string // empty for a unit case
}

type typeDecl struct {
	Kind   string // record, variant, enum or tuple
	Name   string
	Wit    string
	Fields []fieldDecl
	Cases  []caseDecl
	Domain []string
}

type model struct {
	Package   string
	Namespace string
	Interface string

	// Decls holds every declaration of types.go in emission order.
	Decls []*typeDecl
	// Named holds the named WIT types in schema order.
	Named []*typeDecl

	byWit   map[string]*typeDecl
	pending []*typeDecl
}

func buildModel(opts Options) (*model, error) {
	m := &model{
		Package:   opts.Package,
		Namespace: opts.Namespace,
		Interface: opts.Interface,
		byWit:     make(map[string]*typeDecl),
	}

	for _, td := range schema.Types() {
		d, err := m.declare(td)
		if err != nil {
			return nil, err
		}
		m.Decls = append(m.Decls, d)
		m.Decls = append(m.Decls, m.pending...)
		m.pending = nil
		m.Named = append(m.Named, d)
		m.byWit[d.Wit] = d
	}
	return m, nil
}

func (m *model) declare(td *wit.TypeDef) (*typeDecl, error) {
	name := schema.Name(td)
	d := &typeDecl{Name: goName(name), Wit: name, Domain: domainTypes[name]}
	if len(d.Domain) == 0 {
		return nil, errors.NotFound(errors.PhaseGenerate, "domain type for", name)
	}

	switch k := td.Kind.(type) {
	case *wit.Record:
		d.Kind = "record"
		for _, f := range k.Fields {
			gt, err := m.goType(f.Type)
			if err != nil {
				return nil, err
			}
			d.Fields = append(d.Fields, fieldDecl{Name: goName(f.Name), Type: gt, Tag: f.Name})
		}
	case *wit.Variant:
		d.Kind = "variant"
		for _, c := range k.Cases {
			cd := caseDecl{Name: goName(c.Name), Wit: c.Name}
			if c.Type != nil {
				gt, err := m.goType(c.Type)
				if err != nil {
					return nil, err
				}
				cd.Type = gt
			}
			d.Cases = append(d.Cases, cd)
		}
	case *wit.Enum:
		d.Kind = "enum"
		for _, c := range k.Cases {
			d.Cases = append(d.Cases, caseDecl{Name: goName(c.Name), Wit: c.Name})
		}
	default:
		return nil, errors.Unsupported(errors.PhaseGenerate, fmt.Sprintf("named type %s of kind %T", name, k))
	}
	return d, nil
}

// goType returns the Go spelling of a WIT type reference, declaring
// anonymous tuple structs as they are encountered.
func (m *model) goType(t wit.Type) (string, error) {
	switch v := t.(type) {
	case wit.Bool:
		return "bool", nil
	case wit.U8:
		return "uint8", nil
	case wit.S8:
		return "int8", nil
	case wit.U16:
		return "uint16", nil
	case wit.S16:
		return "int16", nil
	case wit.U32:
		return "uint32", nil
	case wit.S32:
		return "int32", nil
	case wit.U64:
		return "uint64", nil
	case wit.S64:
		return "int64", nil
	case wit.F32:
		return "float32", nil
	case wit.F64:
		return "float64", nil
	case wit.Char:
		return "rune", nil
	case wit.String:
		return "string", nil
	case *wit.TypeDef:
		if v.Name != nil {
			return goName(*v.Name), nil
		}
		return m.anonymous(v)
	}
	return "", errors.Unsupported(errors.PhaseGenerate, fmt.Sprintf("type %T", t))
}

func (m *model) anonymous(td *wit.TypeDef) (string, error) {
	switch k := td.Kind.(type) {
	case *wit.List:
		if _, ok := k.Type.(wit.U8); ok {
			return "[]byte", nil
		}
		elem, err := m.goType(k.Type)
		if err != nil {
			return "", err
		}
		return "[]" + elem, nil
	case *wit.Option:
		elem, err := m.goType(k.Type)
		if err != nil {
			return "", err
		}
		return "*" + elem, nil
	case *wit.Tuple:
		return m.tuple(td, k)
	}
	return "", errors.Unsupported(errors.PhaseGenerate, schema.TypeString(td))
}

// tuple maps a homogeneous tuple of primitives to an array and anything
// else to a struct with positional fields F0..Fn.
func (m *model) tuple(td *wit.TypeDef, k *wit.Tuple) (string, error) {
	if len(k.Types) == 0 {
		return "", errors.Unsupported(errors.PhaseGenerate, "empty tuple")
	}

	elems := make([]string, len(k.Types))
	homogeneous := true
	for i, e := range k.Types {
		gt, err := m.goType(e)
		if err != nil {
			return "", err
		}
		elems[i] = gt
		if _, named := e.(*wit.TypeDef); named || gt != elems[0] {
			homogeneous = false
		}
	}
	if homogeneous {
		return fmt.Sprintf("[%d]%s", len(elems), elems[0]), nil
	}

	var name strings.Builder
	name.WriteString("Tuple")
	for _, e := range k.Types {
		name.WriteString(goName(schema.TypeString(e)))
	}
	for _, d := range m.pending {
		if d.Name == name.String() {
			return d.Name, nil
		}
	}
	for _, d := range m.Decls {
		if d.Name == name.String() {
			return d.Name, nil
		}
	}

	d := &typeDecl{Kind: "tuple", Name: name.String(), Wit: schema.TypeString(td)}
	for i, gt := range elems {
		d.Fields = append(d.Fields, fieldDecl{Name: fmt.Sprintf("F%d", i), Type: gt})
	}
	m.pending = append(m.pending, d)
	return d.Name, nil
}

// enum returns the declaration of the named WIT enum.
func (m *model) enum(witName string) (*typeDecl, error) {
	d, ok := m.byWit[witName]
	if !ok || d.Kind != "enum" {
		return nil, errors.NotFound(errors.PhaseGenerate, "enum", witName)
	}
	return d, nil
}
