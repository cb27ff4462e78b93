package host

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	linerabridge "github.com/wippyai/linera-bridge"
	"github.com/wippyai/linera-bridge/errors"
)

// reallocExport is the allocator every guest with list or string results
// must export.
const reallocExport = "cabi_realloc"

// scratchModule is a core module whose only content is one exported page
// of memory named "memory".
var scratchModule = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00,
	0x05, 0x03, 0x01, 0x00, 0x01,
	0x07, 0x0a, 0x01, 0x06, 'm', 'e', 'm', 'o', 'r', 'y', 0x02, 0x00,
}

// NewScratchMemory instantiates a memory-only module in r and returns its
// one page of memory. It lets values be stored and lowered outside any
// guest, for inspection and tests.
func NewScratchMemory(ctx context.Context, r wazero.Runtime) (linerabridge.Memory, error) {
	mod, err := r.InstantiateWithConfig(ctx, scratchModule, wazero.NewModuleConfig().WithName(""))
	if err != nil {
		return nil, errors.Instantiation(err)
	}
	return WrapMemory(mod.Memory()), nil
}

// WrapMemory adapts a wazero memory to linerabridge.Memory.
func WrapMemory(mem api.Memory) linerabridge.Memory {
	if mem == nil {
		return nil
	}
	return &memoryWrapper{mem: mem}
}

type memoryWrapper struct {
	mem api.Memory
}

func outOfBounds(op string, offset uint32, length int) error {
	return errors.New(errors.PhaseHost, errors.KindOutOfBounds).
		Detail("memory %s out of bounds: offset=%d, length=%d", op, offset, length).
		Build()
}

func (m *memoryWrapper) Read(offset uint32, length uint32) ([]byte, error) {
	data, ok := m.mem.Read(offset, length)
	if !ok {
		return nil, outOfBounds("read", offset, int(length))
	}
	return data, nil
}

func (m *memoryWrapper) Write(offset uint32, data []byte) error {
	if !m.mem.Write(offset, data) {
		return outOfBounds("write", offset, len(data))
	}
	return nil
}

func (m *memoryWrapper) ReadU8(offset uint32) (uint8, error) {
	v, ok := m.mem.ReadByte(offset)
	if !ok {
		return 0, outOfBounds("read", offset, 1)
	}
	return v, nil
}

func (m *memoryWrapper) ReadU16(offset uint32) (uint16, error) {
	v, ok := m.mem.ReadUint16Le(offset)
	if !ok {
		return 0, outOfBounds("read", offset, 2)
	}
	return v, nil
}

func (m *memoryWrapper) ReadU32(offset uint32) (uint32, error) {
	v, ok := m.mem.ReadUint32Le(offset)
	if !ok {
		return 0, outOfBounds("read", offset, 4)
	}
	return v, nil
}

func (m *memoryWrapper) ReadU64(offset uint32) (uint64, error) {
	v, ok := m.mem.ReadUint64Le(offset)
	if !ok {
		return 0, outOfBounds("read", offset, 8)
	}
	return v, nil
}

func (m *memoryWrapper) WriteU8(offset uint32, value uint8) error {
	if !m.mem.WriteByte(offset, value) {
		return outOfBounds("write", offset, 1)
	}
	return nil
}

func (m *memoryWrapper) WriteU16(offset uint32, value uint16) error {
	if !m.mem.WriteUint16Le(offset, value) {
		return outOfBounds("write", offset, 2)
	}
	return nil
}

func (m *memoryWrapper) WriteU32(offset uint32, value uint32) error {
	if !m.mem.WriteUint32Le(offset, value) {
		return outOfBounds("write", offset, 4)
	}
	return nil
}

func (m *memoryWrapper) WriteU64(offset uint32, value uint64) error {
	if !m.mem.WriteUint64Le(offset, value) {
		return outOfBounds("write", offset, 8)
	}
	return nil
}

// WrapAllocator adapts a guest's cabi_realloc export to
// linerabridge.Allocator. A nil function yields an allocator whose Alloc
// always fails.
func WrapAllocator(ctx context.Context, fn api.Function) linerabridge.Allocator {
	return &allocator{ctx: ctx, fn: fn}
}

type allocator struct {
	ctx context.Context
	fn  api.Function
}

func (a *allocator) Alloc(size, align uint32) (uint32, error) {
	if a.fn == nil {
		return 0, errors.NotFound(errors.PhaseHost, "guest export", reallocExport)
	}
	results, err := a.fn.Call(a.ctx, 0, 0, uint64(align), uint64(size))
	if err != nil {
		return 0, errors.Wrap(errors.PhaseHost, errors.KindAllocation, err, "cabi_realloc trapped")
	}
	if len(results) == 0 {
		return 0, errors.AllocationFailed(errors.PhaseHost, size, align)
	}
	return uint32(results[0]), nil
}

func (a *allocator) Free(ptr, size, align uint32) {
	if a.fn == nil {
		return
	}
	_, _ = a.fn.Call(a.ctx, uint64(ptr), uint64(size), uint64(align), 0)
}
