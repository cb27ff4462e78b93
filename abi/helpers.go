package abi

import (
	"math"
	"reflect"

	linerabridge "github.com/wippyai/linera-bridge"
)

type (
	Memory    = linerabridge.Memory
	Allocator = linerabridge.Allocator
)

// Canonical ABI limits for flat encoding.
const (
	MaxFlatParams  = 16
	MaxFlatResults = 1
)

// Safety limits for guest-controlled lengths.
const (
	MaxStringSize = 1 << 30
	MaxListLength = 1 << 27
	MaxAlloc      = 1 << 30
)

// AlignTo rounds offset up to a multiple of align.
func AlignTo(offset, align uint32) uint32 {
	if align == 0 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}

// DiscriminantSize is 1 byte for up to 256 cases, 2 for up to 65536, else 4.
func DiscriminantSize(numCases int) uint32 {
	switch {
	case numCases <= 1<<8:
		return 1
	case numCases <= 1<<16:
		return 2
	}
	return 4
}

func safeMulU32(a, b uint32) (uint32, bool) {
	if b != 0 && a > math.MaxUint32/b {
		return 0, false
	}
	return a * b, true
}

func typeName(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}
	return v.Type().String()
}

func canonicalF32(bits uint32) uint32 {
	if f := math.Float32frombits(bits); f != f {
		return 0x7fc00000
	}
	return bits
}

func canonicalF64(bits uint64) uint64 {
	if f := math.Float64frombits(bits); f != f {
		return 0x7ff8000000000000
	}
	return bits
}

// validChar rejects surrogates and values past the last Unicode scalar.
func validChar(r rune) bool {
	return r >= 0 && r < 0x110000 && (r < 0xD800 || r > 0xDFFF)
}

func childPath(path []string, elem string) []string {
	return append(append(make([]string, 0, len(path)+1), path...), elem)
}
