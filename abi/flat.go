package abi

import "go.bytecodealliance.org/wit"

// FlatType is a core wasm value type.
type FlatType uint8

const (
	I32 FlatType = iota
	I64
	F32
	F64
)

func (f FlatType) String() string {
	switch f {
	case I32:
		return "i32"
	case I64:
		return "i64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	}
	return "invalid"
}

// Flatten returns the core value types t is passed as.
func Flatten(t wit.Type) []FlatType {
	switch typ := t.(type) {
	case nil:
		return nil
	case wit.Bool, wit.U8, wit.S8, wit.U16, wit.S16, wit.U32, wit.S32, wit.Char:
		return []FlatType{I32}
	case wit.U64, wit.S64:
		return []FlatType{I64}
	case wit.F32:
		return []FlatType{F32}
	case wit.F64:
		return []FlatType{F64}
	case wit.String:
		return []FlatType{I32, I32}
	case *wit.TypeDef:
		switch kind := typ.Kind.(type) {
		case *wit.Record:
			var out []FlatType
			for _, f := range kind.Fields {
				out = append(out, Flatten(f.Type)...)
			}
			return out
		case *wit.Tuple:
			var out []FlatType
			for _, e := range kind.Types {
				out = append(out, Flatten(e)...)
			}
			return out
		case *wit.List:
			return []FlatType{I32, I32}
		case *wit.Enum:
			return []FlatType{I32}
		case *wit.Option:
			return flattenTagged([]wit.Type{nil, kind.Type})
		case *wit.Variant:
			payloads := make([]wit.Type, len(kind.Cases))
			for i, c := range kind.Cases {
				payloads[i] = c.Type
			}
			return flattenTagged(payloads)
		case wit.Type:
			return Flatten(kind)
		}
	}
	return nil
}

// flattenTagged joins the payload slots of every case position by position
// after a leading i32 discriminant.
func flattenTagged(payloads []wit.Type) []FlatType {
	var joined []FlatType
	for _, p := range payloads {
		for i, ft := range Flatten(p) {
			if i < len(joined) {
				joined[i] = Join(joined[i], ft)
			} else {
				joined = append(joined, ft)
			}
		}
	}
	return append([]FlatType{I32}, joined...)
}

// Join returns the slot type able to carry both a and b.
func Join(a, b FlatType) FlatType {
	switch {
	case a == b:
		return a
	case (a == I32 && b == F32) || (a == F32 && b == I32):
		return I32
	}
	return I64
}
