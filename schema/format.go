package schema

import (
	"fmt"
	"strings"

	"go.bytecodealliance.org/wit"
)

// TypeString renders a type reference in WIT syntax, e.g.
// "list<tuple<multi-address, u64>>". Named types render as their name.
func TypeString(t wit.Type) string {
	switch v := t.(type) {
	case nil:
		return "_"
	case wit.Bool:
		return "bool"
	case wit.U8:
		return "u8"
	case wit.S8:
		return "s8"
	case wit.U16:
		return "u16"
	case wit.S16:
		return "s16"
	case wit.U32:
		return "u32"
	case wit.S32:
		return "s32"
	case wit.U64:
		return "u64"
	case wit.S64:
		return "s64"
	case wit.F32:
		return "f32"
	case wit.F64:
		return "f64"
	case wit.Char:
		return "char"
	case wit.String:
		return "string"
	case *wit.TypeDef:
		if v.Name != nil {
			return *v.Name
		}
		switch k := v.Kind.(type) {
		case *wit.List:
			return "list<" + TypeString(k.Type) + ">"
		case *wit.Option:
			return "option<" + TypeString(k.Type) + ">"
		case *wit.Tuple:
			parts := make([]string, len(k.Types))
			for i, e := range k.Types {
				parts[i] = TypeString(e)
			}
			return "tuple<" + strings.Join(parts, ", ") + ">"
		case wit.Type:
			return TypeString(k)
		}
	}
	return fmt.Sprintf("%T", t)
}

// Declaration renders the WIT declaration of a named type.
func Declaration(td *wit.TypeDef) string {
	var b strings.Builder
	name := Name(td)

	switch k := td.Kind.(type) {
	case *wit.Record:
		fmt.Fprintf(&b, "record %s {\n", name)
		for _, f := range k.Fields {
			fmt.Fprintf(&b, "    %s: %s,\n", f.Name, TypeString(f.Type))
		}
		b.WriteString("}")
	case *wit.Variant:
		fmt.Fprintf(&b, "variant %s {\n", name)
		for _, c := range k.Cases {
			if c.Type == nil {
				fmt.Fprintf(&b, "    %s,\n", c.Name)
			} else {
				fmt.Fprintf(&b, "    %s(%s),\n", c.Name, TypeString(c.Type))
			}
		}
		b.WriteString("}")
	case *wit.Enum:
		fmt.Fprintf(&b, "enum %s {\n", name)
		for _, c := range k.Cases {
			fmt.Fprintf(&b, "    %s,\n", c.Name)
		}
		b.WriteString("}")
	case wit.Type:
		fmt.Fprintf(&b, "type %s = %s", name, TypeString(k))
	default:
		fmt.Fprintf(&b, "type %s = %T", name, k)
	}
	return b.String()
}

// Signature renders a function in WIT syntax.
func (f Func) Signature() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Name + ": " + TypeString(p.Type)
	}
	s := f.Name + ": func(" + strings.Join(params, ", ") + ")"
	if len(f.Results) > 0 {
		s += " -> " + TypeString(f.Results[0])
	}
	return s
}
