package abi

import (
	"math"
	"reflect"
	"strconv"

	"go.bytecodealliance.org/wit"
	"go.uber.org/zap"

	"github.com/wippyai/linera-bridge/errors"
	"github.com/wippyai/linera-bridge/schema"
)

// Encoder writes Go values into guest memory and core value sequences.
type Encoder struct {
	calc *Calculator
}

func NewEncoder() *Encoder {
	return &Encoder{calc: NewCalculator()}
}

// NewEncoderWithCalculator shares a layout cache with other codecs.
func NewEncoderWithCalculator(c *Calculator) *Encoder {
	return &Encoder{calc: c}
}

// Store writes value at addr using the memory layout of t. Lists and
// strings inside value are allocated through alloc.
func (e *Encoder) Store(t wit.Type, value any, addr uint32, mem Memory, alloc Allocator) error {
	return e.store(t, reflect.ValueOf(value), addr, mem, alloc, nil)
}

// Lower flattens value into core values.
func (e *Encoder) Lower(t wit.Type, value any, mem Memory, alloc Allocator) ([]uint64, error) {
	flat := make([]uint64, 0, len(Flatten(t)))
	if err := e.lower(t, reflect.ValueOf(value), mem, alloc, &flat, nil); err != nil {
		return nil, err
	}
	return flat, nil
}

func (e *Encoder) store(t wit.Type, v reflect.Value, addr uint32, mem Memory, alloc Allocator, path []string) error {
	switch typ := t.(type) {
	case wit.Bool:
		if v.Kind() != reflect.Bool {
			return errors.TypeMismatch(errors.PhaseLower, path, typeName(v), "bool")
		}
		var b uint8
		if v.Bool() {
			b = 1
		}
		return mem.WriteU8(addr, b)

	case wit.U8, wit.S8:
		x, err := scalarBits(t, v, path)
		if err != nil {
			return err
		}
		return mem.WriteU8(addr, uint8(x))

	case wit.U16, wit.S16:
		x, err := scalarBits(t, v, path)
		if err != nil {
			return err
		}
		return mem.WriteU16(addr, uint16(x))

	case wit.U32, wit.S32, wit.F32, wit.Char:
		x, err := scalarBits(t, v, path)
		if err != nil {
			return err
		}
		return mem.WriteU32(addr, uint32(x))

	case wit.U64, wit.S64, wit.F64:
		x, err := scalarBits(t, v, path)
		if err != nil {
			return err
		}
		return mem.WriteU64(addr, x)

	case wit.String:
		if v.Kind() != reflect.String {
			return errors.TypeMismatch(errors.PhaseLower, path, typeName(v), "string")
		}
		ptr, n, err := e.storeBytes([]byte(v.String()), 1, alloc, mem, path)
		if err != nil {
			return err
		}
		return writePair(mem, addr, ptr, n)

	case *wit.TypeDef:
		return e.storeTypeDef(typ, v, addr, mem, alloc, path)
	}
	return errors.Unsupported(errors.PhaseLower, schema.TypeString(t))
}

func (e *Encoder) storeTypeDef(t *wit.TypeDef, v reflect.Value, addr uint32, mem Memory, alloc Allocator, path []string) error {
	switch kind := t.Kind.(type) {
	case *wit.Record:
		if v.Kind() != reflect.Struct {
			return errors.TypeMismatch(errors.PhaseLower, path, typeName(v), schema.TypeString(t))
		}
		info := e.calc.Layout(t)
		for i, f := range kind.Fields {
			idx, ok := findField(v.Type(), f.Name)
			if !ok {
				return errors.FieldMissing(errors.PhaseLower, path, f.Name)
			}
			if err := e.store(f.Type, v.Field(idx), addr+info.FieldOffs[i], mem, alloc, childPath(path, f.Name)); err != nil {
				return err
			}
		}
		return nil

	case *wit.Tuple:
		info := e.calc.Layout(t)
		for i, et := range kind.Types {
			ev, ok := tupleElem(v, i)
			if !ok {
				return errors.TypeMismatch(errors.PhaseLower, path, typeName(v), schema.TypeString(t))
			}
			if err := e.store(et, ev, addr+info.FieldOffs[i], mem, alloc, childPath(path, strconv.Itoa(i))); err != nil {
				return err
			}
		}
		return nil

	case *wit.List:
		ptr, n, err := e.storeList(kind, v, mem, alloc, path)
		if err != nil {
			return err
		}
		return writePair(mem, addr, ptr, n)

	case *wit.Option:
		if v.Kind() != reflect.Pointer {
			return errors.TypeMismatch(errors.PhaseLower, path, typeName(v), schema.TypeString(t))
		}
		if v.IsNil() {
			return mem.WriteU8(addr, 0)
		}
		if err := mem.WriteU8(addr, 1); err != nil {
			return err
		}
		return e.store(kind.Type, v.Elem(), addr+e.calc.Layout(t).PayloadOff, mem, alloc, path)

	case *wit.Variant:
		disc, payload, err := activeCase(kind, v, path)
		if err != nil {
			return err
		}
		if err := writeDisc(mem, addr, DiscriminantSize(len(kind.Cases)), disc); err != nil {
			return err
		}
		c := kind.Cases[disc]
		if c.Type == nil {
			return nil
		}
		return e.store(c.Type, payload, addr+e.calc.Layout(t).PayloadOff, mem, alloc, childPath(path, c.Name))

	case *wit.Enum:
		disc, err := enumValue(kind, t, v, path)
		if err != nil {
			return err
		}
		return writeDisc(mem, addr, DiscriminantSize(len(kind.Cases)), disc)

	case wit.Type:
		return e.store(kind, v, addr, mem, alloc, path)
	}
	return errors.Unsupported(errors.PhaseLower, schema.TypeString(t))
}

func (e *Encoder) storeList(l *wit.List, v reflect.Value, mem Memory, alloc Allocator, path []string) (uint32, uint32, error) {
	if v.Kind() != reflect.Slice {
		return 0, 0, errors.TypeMismatch(errors.PhaseLower, path, typeName(v), "list<"+schema.TypeString(l.Type)+">")
	}
	if _, isByte := l.Type.(wit.U8); isByte && v.Type().Elem().Kind() == reflect.Uint8 {
		return e.storeBytes(v.Bytes(), 1, alloc, mem, path)
	}

	if v.Len() > MaxListLength {
		return 0, 0, errors.New(errors.PhaseLower, errors.KindOutOfBounds).
			Path(path...).
			Detail("list length %d exceeds maximum %d", v.Len(), MaxListLength).
			Build()
	}
	length := uint32(v.Len())
	if length == 0 {
		return 0, 0, nil
	}

	elem := e.calc.Layout(l.Type)
	size, ok := safeMulU32(length, elem.Size)
	if !ok || size > MaxAlloc {
		return 0, 0, errors.New(errors.PhaseLower, errors.KindOutOfBounds).
			Path(path...).
			Detail("list data size overflow: %d * %d", length, elem.Size).
			Build()
	}
	ptr, err := alloc.Alloc(size, elem.Align)
	if err != nil {
		return 0, 0, errors.AllocationFailed(errors.PhaseLower, size, elem.Align)
	}
	Logger().Debug("allocated list", zap.Uint32("ptr", ptr), zap.Uint32("len", length), zap.Uint32("size", size))

	for i := uint32(0); i < length; i++ {
		if err := e.store(l.Type, v.Index(int(i)), ptr+i*elem.Size, mem, alloc, childPath(path, "["+strconv.Itoa(int(i))+"]")); err != nil {
			return 0, 0, err
		}
	}
	return ptr, length, nil
}

// storeBytes copies data into a fresh guest allocation. Empty data is
// passed as a null pointer.
func (e *Encoder) storeBytes(data []byte, align uint32, alloc Allocator, mem Memory, path []string) (uint32, uint32, error) {
	if len(data) > MaxStringSize {
		return 0, 0, errors.New(errors.PhaseLower, errors.KindOutOfBounds).
			Path(path...).
			Detail("byte length %d exceeds maximum %d", len(data), MaxStringSize).
			Build()
	}
	if len(data) == 0 {
		return 0, 0, nil
	}
	n := uint32(len(data))
	ptr, err := alloc.Alloc(n, align)
	if err != nil {
		return 0, 0, errors.AllocationFailed(errors.PhaseLower, n, align)
	}
	if err := mem.Write(ptr, data); err != nil {
		return 0, 0, err
	}
	return ptr, n, nil
}

func (e *Encoder) lower(t wit.Type, v reflect.Value, mem Memory, alloc Allocator, flat *[]uint64, path []string) error {
	switch typ := t.(type) {
	case wit.Bool:
		if v.Kind() != reflect.Bool {
			return errors.TypeMismatch(errors.PhaseLower, path, typeName(v), "bool")
		}
		var b uint64
		if v.Bool() {
			b = 1
		}
		*flat = append(*flat, b)
		return nil

	case wit.U8, wit.S8, wit.U16, wit.S16, wit.U32, wit.S32, wit.F32, wit.Char:
		x, err := scalarBits(t, v, path)
		if err != nil {
			return err
		}
		*flat = append(*flat, uint64(uint32(x)))
		return nil

	case wit.U64, wit.S64, wit.F64:
		x, err := scalarBits(t, v, path)
		if err != nil {
			return err
		}
		*flat = append(*flat, x)
		return nil

	case wit.String:
		if v.Kind() != reflect.String {
			return errors.TypeMismatch(errors.PhaseLower, path, typeName(v), "string")
		}
		ptr, n, err := e.storeBytes([]byte(v.String()), 1, alloc, mem, path)
		if err != nil {
			return err
		}
		*flat = append(*flat, uint64(ptr), uint64(n))
		return nil

	case *wit.TypeDef:
		return e.lowerTypeDef(typ, v, mem, alloc, flat, path)
	}
	return errors.Unsupported(errors.PhaseLower, schema.TypeString(t))
}

func (e *Encoder) lowerTypeDef(t *wit.TypeDef, v reflect.Value, mem Memory, alloc Allocator, flat *[]uint64, path []string) error {
	switch kind := t.Kind.(type) {
	case *wit.Record:
		if v.Kind() != reflect.Struct {
			return errors.TypeMismatch(errors.PhaseLower, path, typeName(v), schema.TypeString(t))
		}
		for _, f := range kind.Fields {
			idx, ok := findField(v.Type(), f.Name)
			if !ok {
				return errors.FieldMissing(errors.PhaseLower, path, f.Name)
			}
			if err := e.lower(f.Type, v.Field(idx), mem, alloc, flat, childPath(path, f.Name)); err != nil {
				return err
			}
		}
		return nil

	case *wit.Tuple:
		for i, et := range kind.Types {
			ev, ok := tupleElem(v, i)
			if !ok {
				return errors.TypeMismatch(errors.PhaseLower, path, typeName(v), schema.TypeString(t))
			}
			if err := e.lower(et, ev, mem, alloc, flat, childPath(path, strconv.Itoa(i))); err != nil {
				return err
			}
		}
		return nil

	case *wit.List:
		ptr, n, err := e.storeList(kind, v, mem, alloc, path)
		if err != nil {
			return err
		}
		*flat = append(*flat, uint64(ptr), uint64(n))
		return nil

	case *wit.Enum:
		disc, err := enumValue(kind, t, v, path)
		if err != nil {
			return err
		}
		*flat = append(*flat, uint64(disc))
		return nil

	case *wit.Option:
		if v.Kind() != reflect.Pointer {
			return errors.TypeMismatch(errors.PhaseLower, path, typeName(v), schema.TypeString(t))
		}
		start := len(*flat)
		if v.IsNil() {
			*flat = append(*flat, 0)
		} else {
			*flat = append(*flat, 1)
			if err := e.lower(kind.Type, v.Elem(), mem, alloc, flat, path); err != nil {
				return err
			}
		}
		padFlat(flat, start, len(Flatten(t)))
		return nil

	case *wit.Variant:
		disc, payload, err := activeCase(kind, v, path)
		if err != nil {
			return err
		}
		start := len(*flat)
		*flat = append(*flat, uint64(disc))
		if c := kind.Cases[disc]; c.Type != nil {
			if err := e.lower(c.Type, payload, mem, alloc, flat, childPath(path, c.Name)); err != nil {
				return err
			}
		}
		padFlat(flat, start, len(Flatten(t)))
		return nil

	case wit.Type:
		return e.lower(kind, v, mem, alloc, flat, path)
	}
	return errors.Unsupported(errors.PhaseLower, schema.TypeString(t))
}

// scalarBits returns the little-endian bit pattern of a numeric or char value.
func scalarBits(t wit.Type, v reflect.Value, path []string) (uint64, error) {
	mismatch := func() error {
		return errors.TypeMismatch(errors.PhaseLower, path, typeName(v), schema.TypeString(t))
	}

	switch t.(type) {
	case wit.U8, wit.U16, wit.U32, wit.U64:
		if !isUnsigned(v.Kind()) {
			return 0, mismatch()
		}
		return v.Uint(), nil
	case wit.S8, wit.S16, wit.S32, wit.S64:
		if !isSigned(v.Kind()) {
			return 0, mismatch()
		}
		return uint64(v.Int()), nil
	case wit.F32:
		if v.Kind() != reflect.Float32 {
			return 0, mismatch()
		}
		return uint64(canonicalF32(math.Float32bits(float32(v.Float())))), nil
	case wit.F64:
		if v.Kind() != reflect.Float64 {
			return 0, mismatch()
		}
		return canonicalF64(math.Float64bits(v.Float())), nil
	case wit.Char:
		if v.Kind() != reflect.Int32 {
			return 0, mismatch()
		}
		r := rune(v.Int())
		if !validChar(r) {
			return 0, errors.InvalidData(errors.PhaseLower, path, "invalid Unicode scalar value: 0x"+strconv.FormatInt(int64(r), 16))
		}
		return uint64(r), nil
	}
	return 0, mismatch()
}

// activeCase returns the index and payload of the single non-nil case field.
func activeCase(kind *wit.Variant, v reflect.Value, path []string) (uint32, reflect.Value, error) {
	if v.Kind() != reflect.Struct {
		return 0, reflect.Value{}, errors.TypeMismatch(errors.PhaseLower, path, typeName(v), "variant struct")
	}

	disc := -1
	var payload reflect.Value
	for i, c := range kind.Cases {
		idx, ok := findField(v.Type(), c.Name)
		if !ok {
			return 0, reflect.Value{}, errors.FieldMissing(errors.PhaseLower, path, c.Name)
		}
		f := v.Field(idx)
		if f.Kind() != reflect.Pointer {
			return 0, reflect.Value{}, errors.TypeMismatch(errors.PhaseLower, childPath(path, c.Name), typeName(f), "pointer")
		}
		if f.IsNil() {
			continue
		}
		if disc >= 0 {
			return 0, reflect.Value{}, errors.New(errors.PhaseLower, errors.KindInvalidVariant).
				Path(path...).
				Detail("cases %s and %s are both set", kind.Cases[disc].Name, c.Name).
				Build()
		}
		disc, payload = i, f.Elem()
	}

	if disc < 0 {
		return 0, reflect.Value{}, errors.New(errors.PhaseLower, errors.KindInvalidVariant).
			Path(path...).
			Detail("no case is set").
			Build()
	}
	return uint32(disc), payload, nil
}

func enumValue(kind *wit.Enum, t wit.Type, v reflect.Value, path []string) (uint32, error) {
	if !isUnsigned(v.Kind()) {
		return 0, errors.TypeMismatch(errors.PhaseLower, path, typeName(v), schema.TypeString(t))
	}
	if x := v.Uint(); x >= uint64(len(kind.Cases)) {
		return 0, errors.InvalidEnum(errors.PhaseLower, path, x, schema.TypeString(t))
	}
	return uint32(v.Uint()), nil
}

func padFlat(flat *[]uint64, start, want int) {
	for len(*flat)-start < want {
		*flat = append(*flat, 0)
	}
}

func writePair(mem Memory, addr, ptr, n uint32) error {
	if err := mem.WriteU32(addr, ptr); err != nil {
		return err
	}
	return mem.WriteU32(addr+4, n)
}

func writeDisc(mem Memory, addr, size, disc uint32) error {
	switch size {
	case 1:
		return mem.WriteU8(addr, uint8(disc))
	case 2:
		return mem.WriteU16(addr, uint16(disc))
	}
	return mem.WriteU32(addr, disc)
}
