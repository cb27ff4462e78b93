package abi

import (
	"sync"

	"go.bytecodealliance.org/wit"
)

// Info is the memory layout of a WIT type.
type Info struct {
	Size  uint32
	Align uint32
	// FieldOffs holds the offset of each record field or tuple element.
	FieldOffs []uint32
	// PayloadOff is the payload offset of a variant or option.
	PayloadOff uint32
}

// Calculator computes and caches layouts. It is safe for concurrent use.
type Calculator struct {
	mu    sync.Mutex
	cache map[*wit.TypeDef]Info
}

func NewCalculator() *Calculator {
	return &Calculator{cache: make(map[*wit.TypeDef]Info)}
}

// Layout returns the size, alignment and inner offsets of t.
func (c *Calculator) Layout(t wit.Type) Info {
	switch typ := t.(type) {
	case wit.U8, wit.S8, wit.Bool:
		return Info{Size: 1, Align: 1}
	case wit.U16, wit.S16:
		return Info{Size: 2, Align: 2}
	case wit.U32, wit.S32, wit.F32, wit.Char:
		return Info{Size: 4, Align: 4}
	case wit.U64, wit.S64, wit.F64:
		return Info{Size: 8, Align: 8}
	case wit.String:
		return Info{Size: 8, Align: 4}
	case *wit.TypeDef:
		return c.typeDef(typ)
	}
	return Info{Size: 0, Align: 1}
}

func (c *Calculator) typeDef(t *wit.TypeDef) Info {
	c.mu.Lock()
	cached, ok := c.cache[t]
	c.mu.Unlock()
	if ok {
		return cached
	}

	var info Info
	switch kind := t.Kind.(type) {
	case *wit.Record:
		types := make([]wit.Type, len(kind.Fields))
		for i, f := range kind.Fields {
			types[i] = f.Type
		}
		info = c.sequence(types)
	case *wit.Tuple:
		info = c.sequence(kind.Types)
	case *wit.Variant:
		payloads := make([]wit.Type, len(kind.Cases))
		for i, cs := range kind.Cases {
			payloads[i] = cs.Type
		}
		info = c.tagged(DiscriminantSize(len(kind.Cases)), payloads)
	case *wit.Option:
		info = c.tagged(1, []wit.Type{nil, kind.Type})
	case *wit.Enum:
		size := DiscriminantSize(len(kind.Cases))
		info = Info{Size: size, Align: size}
	case *wit.List:
		info = Info{Size: 8, Align: 4}
	case wit.Type:
		info = c.Layout(kind)
	default:
		info = Info{Size: 0, Align: 1}
	}

	c.mu.Lock()
	c.cache[t] = info
	c.mu.Unlock()
	return info
}

// sequence lays out records and tuples: each element at its own alignment,
// the whole padded to the largest alignment.
func (c *Calculator) sequence(types []wit.Type) Info {
	if len(types) == 0 {
		return Info{Size: 0, Align: 1}
	}

	offs := make([]uint32, len(types))
	maxAlign := uint32(1)
	offset := uint32(0)
	for i, t := range types {
		l := c.Layout(t)
		offset = AlignTo(offset, l.Align)
		offs[i] = offset
		maxAlign = max(maxAlign, l.Align)
		offset += l.Size
	}

	return Info{
		Size:      AlignTo(offset, maxAlign),
		Align:     maxAlign,
		FieldOffs: offs,
	}
}

// tagged lays out variants and options: a discriminant followed by the
// largest payload at the largest alignment. Nil payloads take no space.
func (c *Calculator) tagged(discSize uint32, payloads []wit.Type) Info {
	maxAlign := discSize
	maxSize := uint32(0)
	for _, p := range payloads {
		if p == nil {
			continue
		}
		l := c.Layout(p)
		maxAlign = max(maxAlign, l.Align)
		maxSize = max(maxSize, l.Size)
	}

	payloadOff := AlignTo(discSize, maxAlign)
	return Info{
		Size:       AlignTo(payloadOff+maxSize, maxAlign),
		Align:      maxAlign,
		PayloadOff: payloadOff,
	}
}
