package abi

import (
	"math"
	"reflect"
	"strconv"
	"unicode/utf8"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/linera-bridge/errors"
	"github.com/wippyai/linera-bridge/schema"
)

// Decoder reads Go values out of guest memory and core value sequences.
// Strings and byte lists are always copied out of guest memory.
type Decoder struct {
	calc *Calculator
}

func NewDecoder() *Decoder {
	return &Decoder{calc: NewCalculator()}
}

// NewDecoderWithCalculator shares a layout cache with other codecs.
func NewDecoderWithCalculator(c *Calculator) *Decoder {
	return &Decoder{calc: c}
}

// Load reads a value of type t at addr into the value out points to.
func (d *Decoder) Load(t wit.Type, addr uint32, mem Memory, out any) error {
	v, err := target(out)
	if err != nil {
		return err
	}
	return d.load(t, addr, mem, v, nil)
}

// Lift reads a value of type t from the head of flat into the value out
// points to and reports how many core values it consumed.
func (d *Decoder) Lift(t wit.Type, flat []uint64, mem Memory, out any) (int, error) {
	v, err := target(out)
	if err != nil {
		return 0, err
	}
	return d.lift(t, flat, mem, v, nil)
}

func target(out any) (reflect.Value, error) {
	v := reflect.ValueOf(out)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return reflect.Value{}, errors.NilPointer(errors.PhaseLift, nil, typeName(v))
	}
	return v.Elem(), nil
}

func (d *Decoder) load(t wit.Type, addr uint32, mem Memory, v reflect.Value, path []string) error {
	switch typ := t.(type) {
	case wit.Bool:
		b, err := mem.ReadU8(addr)
		if err != nil {
			return err
		}
		return setScalar(t, v, uint64(b), path)

	case wit.U8, wit.S8:
		b, err := mem.ReadU8(addr)
		if err != nil {
			return err
		}
		return setScalar(t, v, uint64(b), path)

	case wit.U16, wit.S16:
		x, err := mem.ReadU16(addr)
		if err != nil {
			return err
		}
		return setScalar(t, v, uint64(x), path)

	case wit.U32, wit.S32, wit.F32, wit.Char:
		x, err := mem.ReadU32(addr)
		if err != nil {
			return err
		}
		return setScalar(t, v, uint64(x), path)

	case wit.U64, wit.S64, wit.F64:
		x, err := mem.ReadU64(addr)
		if err != nil {
			return err
		}
		return setScalar(t, v, x, path)

	case wit.String:
		ptr, n, err := readPair(mem, addr)
		if err != nil {
			return err
		}
		return d.loadString(ptr, n, mem, v, path)

	case *wit.TypeDef:
		return d.loadTypeDef(typ, addr, mem, v, path)
	}
	return errors.Unsupported(errors.PhaseLift, schema.TypeString(t))
}

func (d *Decoder) loadTypeDef(t *wit.TypeDef, addr uint32, mem Memory, v reflect.Value, path []string) error {
	switch kind := t.Kind.(type) {
	case *wit.Record:
		if v.Kind() != reflect.Struct {
			return errors.TypeMismatch(errors.PhaseLift, path, typeName(v), schema.TypeString(t))
		}
		info := d.calc.Layout(t)
		for i, f := range kind.Fields {
			idx, ok := findField(v.Type(), f.Name)
			if !ok {
				return errors.FieldMissing(errors.PhaseLift, path, f.Name)
			}
			if err := d.load(f.Type, addr+info.FieldOffs[i], mem, v.Field(idx), childPath(path, f.Name)); err != nil {
				return err
			}
		}
		return nil

	case *wit.Tuple:
		info := d.calc.Layout(t)
		for i, et := range kind.Types {
			ev, ok := tupleElem(v, i)
			if !ok {
				return errors.TypeMismatch(errors.PhaseLift, path, typeName(v), schema.TypeString(t))
			}
			if err := d.load(et, addr+info.FieldOffs[i], mem, ev, childPath(path, strconv.Itoa(i))); err != nil {
				return err
			}
		}
		return nil

	case *wit.List:
		ptr, n, err := readPair(mem, addr)
		if err != nil {
			return err
		}
		return d.loadList(kind, ptr, n, mem, v, path)

	case *wit.Option:
		disc, err := mem.ReadU8(addr)
		if err != nil {
			return err
		}
		return d.setOption(kind, uint32(disc), v, path, func(inner reflect.Value) error {
			return d.load(kind.Type, addr+d.calc.Layout(t).PayloadOff, mem, inner, path)
		})

	case *wit.Variant:
		disc, err := readDisc(mem, addr, DiscriminantSize(len(kind.Cases)))
		if err != nil {
			return err
		}
		return d.setVariant(kind, disc, v, path, func(c wit.Case, inner reflect.Value) error {
			return d.load(c.Type, addr+d.calc.Layout(t).PayloadOff, mem, inner, childPath(path, c.Name))
		})

	case *wit.Enum:
		disc, err := readDisc(mem, addr, DiscriminantSize(len(kind.Cases)))
		if err != nil {
			return err
		}
		return setEnum(kind, t, disc, v, path)

	case wit.Type:
		return d.load(kind, addr, mem, v, path)
	}
	return errors.Unsupported(errors.PhaseLift, schema.TypeString(t))
}

func (d *Decoder) loadString(ptr, n uint32, mem Memory, v reflect.Value, path []string) error {
	if v.Kind() != reflect.String {
		return errors.TypeMismatch(errors.PhaseLift, path, typeName(v), "string")
	}
	if n > MaxStringSize {
		return errors.New(errors.PhaseLift, errors.KindOutOfBounds).
			Path(path...).
			Detail("string length %d exceeds maximum %d", n, MaxStringSize).
			Build()
	}
	if n == 0 {
		v.SetString("")
		return nil
	}
	data, err := mem.Read(ptr, n)
	if err != nil {
		return err
	}
	if !utf8.Valid(data) {
		return errors.InvalidUTF8(errors.PhaseLift, path, data)
	}
	v.SetString(string(data))
	return nil
}

// loadList leaves v nil for an empty list.
func (d *Decoder) loadList(l *wit.List, ptr, n uint32, mem Memory, v reflect.Value, path []string) error {
	if v.Kind() != reflect.Slice {
		return errors.TypeMismatch(errors.PhaseLift, path, typeName(v), "list<"+schema.TypeString(l.Type)+">")
	}
	if n > MaxListLength {
		return errors.New(errors.PhaseLift, errors.KindOutOfBounds).
			Path(path...).
			Detail("list length %d exceeds maximum %d", n, MaxListLength).
			Build()
	}
	if n == 0 {
		v.Set(reflect.Zero(v.Type()))
		return nil
	}

	if _, isByte := l.Type.(wit.U8); isByte && v.Type().Elem().Kind() == reflect.Uint8 {
		data, err := mem.Read(ptr, n)
		if err != nil {
			return err
		}
		v.SetBytes(append([]byte(nil), data...))
		return nil
	}

	elem := d.calc.Layout(l.Type)
	if _, ok := safeMulU32(n, elem.Size); !ok {
		return errors.New(errors.PhaseLift, errors.KindOutOfBounds).
			Path(path...).
			Detail("list data size overflow: %d * %d", n, elem.Size).
			Build()
	}

	s := reflect.MakeSlice(v.Type(), int(n), int(n))
	for i := uint32(0); i < n; i++ {
		if err := d.load(l.Type, ptr+i*elem.Size, mem, s.Index(int(i)), childPath(path, "["+strconv.Itoa(int(i))+"]")); err != nil {
			return err
		}
	}
	v.Set(s)
	return nil
}

func (d *Decoder) lift(t wit.Type, flat []uint64, mem Memory, v reflect.Value, path []string) (int, error) {
	want := len(Flatten(t))
	if len(flat) < want {
		return 0, errors.New(errors.PhaseLift, errors.KindOutOfBounds).
			Path(path...).
			Detail("need %d core values for %s, have %d", want, schema.TypeString(t), len(flat)).
			Build()
	}

	switch typ := t.(type) {
	case wit.Bool, wit.U8, wit.S8, wit.U16, wit.S16, wit.U32, wit.S32, wit.F32, wit.Char:
		return 1, setScalar(t, v, uint64(uint32(flat[0])), path)

	case wit.U64, wit.S64, wit.F64:
		return 1, setScalar(t, v, flat[0], path)

	case wit.String:
		return 2, d.loadString(uint32(flat[0]), uint32(flat[1]), mem, v, path)

	case *wit.TypeDef:
		return want, d.liftTypeDef(typ, flat, mem, v, path)
	}
	return 0, errors.Unsupported(errors.PhaseLift, schema.TypeString(t))
}

func (d *Decoder) liftTypeDef(t *wit.TypeDef, flat []uint64, mem Memory, v reflect.Value, path []string) error {
	switch kind := t.Kind.(type) {
	case *wit.Record:
		if v.Kind() != reflect.Struct {
			return errors.TypeMismatch(errors.PhaseLift, path, typeName(v), schema.TypeString(t))
		}
		off := 0
		for _, f := range kind.Fields {
			idx, ok := findField(v.Type(), f.Name)
			if !ok {
				return errors.FieldMissing(errors.PhaseLift, path, f.Name)
			}
			n, err := d.lift(f.Type, flat[off:], mem, v.Field(idx), childPath(path, f.Name))
			if err != nil {
				return err
			}
			off += n
		}
		return nil

	case *wit.Tuple:
		off := 0
		for i, et := range kind.Types {
			ev, ok := tupleElem(v, i)
			if !ok {
				return errors.TypeMismatch(errors.PhaseLift, path, typeName(v), schema.TypeString(t))
			}
			n, err := d.lift(et, flat[off:], mem, ev, childPath(path, strconv.Itoa(i)))
			if err != nil {
				return err
			}
			off += n
		}
		return nil

	case *wit.List:
		return d.loadList(kind, uint32(flat[0]), uint32(flat[1]), mem, v, path)

	case *wit.Enum:
		return setEnum(kind, t, uint32(flat[0]), v, path)

	case *wit.Option:
		return d.setOption(kind, uint32(flat[0]), v, path, func(inner reflect.Value) error {
			_, err := d.lift(kind.Type, flat[1:], mem, inner, path)
			return err
		})

	case *wit.Variant:
		return d.setVariant(kind, uint32(flat[0]), v, path, func(c wit.Case, inner reflect.Value) error {
			_, err := d.lift(c.Type, flat[1:], mem, inner, childPath(path, c.Name))
			return err
		})

	case wit.Type:
		_, err := d.lift(kind, flat, mem, v, path)
		return err
	}
	return errors.Unsupported(errors.PhaseLift, schema.TypeString(t))
}

func (d *Decoder) setOption(kind *wit.Option, disc uint32, v reflect.Value, path []string, payload func(reflect.Value) error) error {
	if v.Kind() != reflect.Pointer {
		return errors.TypeMismatch(errors.PhaseLift, path, typeName(v), "option<"+schema.TypeString(kind.Type)+">")
	}
	switch disc {
	case 0:
		v.Set(reflect.Zero(v.Type()))
		return nil
	case 1:
		inner := reflect.New(v.Type().Elem())
		if err := payload(inner.Elem()); err != nil {
			return err
		}
		v.Set(inner)
		return nil
	}
	return errors.InvalidDiscriminant(errors.PhaseLift, path, disc, 1)
}

// setVariant clears every case field of v and sets only the one selected
// by disc.
func (d *Decoder) setVariant(kind *wit.Variant, disc uint32, v reflect.Value, path []string, payload func(wit.Case, reflect.Value) error) error {
	if v.Kind() != reflect.Struct {
		return errors.TypeMismatch(errors.PhaseLift, path, typeName(v), "variant struct")
	}
	if disc >= uint32(len(kind.Cases)) {
		return errors.InvalidDiscriminant(errors.PhaseLift, path, disc, uint32(len(kind.Cases)-1))
	}

	c := kind.Cases[disc]
	idx, ok := findField(v.Type(), c.Name)
	if !ok {
		return errors.FieldMissing(errors.PhaseLift, path, c.Name)
	}
	f := v.Field(idx)
	if f.Kind() != reflect.Pointer {
		return errors.TypeMismatch(errors.PhaseLift, childPath(path, c.Name), typeName(f), "pointer")
	}

	inner := reflect.New(f.Type().Elem())
	if c.Type != nil {
		if err := payload(c, inner.Elem()); err != nil {
			return err
		}
	}
	v.Set(reflect.Zero(v.Type()))
	f.Set(inner)
	return nil
}

func setEnum(kind *wit.Enum, t wit.Type, disc uint32, v reflect.Value, path []string) error {
	if disc >= uint32(len(kind.Cases)) {
		return errors.InvalidEnum(errors.PhaseLift, path, disc, schema.TypeString(t))
	}
	if !isUnsigned(v.Kind()) {
		return errors.TypeMismatch(errors.PhaseLift, path, typeName(v), schema.TypeString(t))
	}
	v.SetUint(uint64(disc))
	return nil
}

// setScalar stores the bit pattern x of a primitive into v.
func setScalar(t wit.Type, v reflect.Value, x uint64, path []string) error {
	mismatch := func() error {
		return errors.TypeMismatch(errors.PhaseLift, path, typeName(v), schema.TypeString(t))
	}

	switch t.(type) {
	case wit.Bool:
		if v.Kind() != reflect.Bool {
			return mismatch()
		}
		v.SetBool(x != 0)
		return nil
	case wit.U8, wit.U16, wit.U32, wit.U64:
		if !isUnsigned(v.Kind()) {
			return mismatch()
		}
		x = truncate(t, x)
		if v.OverflowUint(x) {
			return mismatch()
		}
		v.SetUint(x)
		return nil
	case wit.S8, wit.S16, wit.S32, wit.S64:
		if !isSigned(v.Kind()) {
			return mismatch()
		}
		var n int64
		switch t.(type) {
		case wit.S8:
			n = int64(int8(x))
		case wit.S16:
			n = int64(int16(x))
		case wit.S32:
			n = int64(int32(x))
		default:
			n = int64(x)
		}
		if v.OverflowInt(n) {
			return mismatch()
		}
		v.SetInt(n)
		return nil
	case wit.F32:
		if v.Kind() != reflect.Float32 {
			return mismatch()
		}
		v.SetFloat(float64(math.Float32frombits(uint32(x))))
		return nil
	case wit.F64:
		if v.Kind() != reflect.Float64 {
			return mismatch()
		}
		v.SetFloat(math.Float64frombits(x))
		return nil
	case wit.Char:
		if v.Kind() != reflect.Int32 {
			return mismatch()
		}
		r := rune(uint32(x))
		if !validChar(r) {
			return errors.InvalidData(errors.PhaseLift, path, "invalid Unicode scalar value: 0x"+strconv.FormatUint(x, 16))
		}
		v.SetInt(int64(r))
		return nil
	}
	return mismatch()
}

func truncate(t wit.Type, x uint64) uint64 {
	switch t.(type) {
	case wit.U8:
		return uint64(uint8(x))
	case wit.U16:
		return uint64(uint16(x))
	case wit.U32:
		return uint64(uint32(x))
	}
	return x
}

func readPair(mem Memory, addr uint32) (uint32, uint32, error) {
	ptr, err := mem.ReadU32(addr)
	if err != nil {
		return 0, 0, err
	}
	n, err := mem.ReadU32(addr + 4)
	if err != nil {
		return 0, 0, err
	}
	return ptr, n, nil
}

func readDisc(mem Memory, addr, size uint32) (uint32, error) {
	switch size {
	case 1:
		b, err := mem.ReadU8(addr)
		return uint32(b), err
	case 2:
		h, err := mem.ReadU16(addr)
		return uint32(h), err
	}
	return mem.ReadU32(addr)
}
