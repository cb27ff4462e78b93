package abi

import (
	"testing"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/linera-bridge/schema"
)

func TestLayoutSchemaTypes(t *testing.T) {
	tests := []struct {
		name  string
		typ   wit.Type
		size  uint32
		align uint32
	}{
		{"crypto-hash", schema.CryptoHash, 32, 8},
		{"owner", schema.Owner, 32, 8},
		{"multi-address", schema.MultiAddress, 40, 8},
		{"amount", schema.Amount, 16, 8},
		{"block-height", schema.BlockHeight, 8, 8},
		{"timeout-config", schema.TimeoutConfig, 40, 8},
		{"chain-ownership", schema.ChainOwnership, 64, 8},
		{"http-method", schema.HTTPMethod, 1, 1},
		{"http-header", schema.HTTPHeader, 16, 4},
		{"http-request", schema.HTTPRequest, 28, 4},
		{"http-response", schema.HTTPResponse, 20, 4},
		{"log-level", schema.LogLevel, 1, 1},
		{"string", wit.String{}, 8, 4},
		{"bool", wit.Bool{}, 1, 1},
	}

	calc := NewCalculator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := calc.Layout(tt.typ)
			if info.Size != tt.size || info.Align != tt.align {
				t.Errorf("got size=%d align=%d, want size=%d align=%d", info.Size, info.Align, tt.size, tt.align)
			}
		})
	}
}

func TestLayoutOffsets(t *testing.T) {
	calc := NewCalculator()

	own := calc.Layout(schema.ChainOwnership)
	want := []uint32{0, 8, 16, 20, 24}
	if len(own.FieldOffs) != len(want) {
		t.Fatalf("got %d offsets, want %d", len(own.FieldOffs), len(want))
	}
	for i, off := range want {
		if own.FieldOffs[i] != off {
			t.Errorf("chain-ownership field %d at %d, want %d", i, own.FieldOffs[i], off)
		}
	}

	req := calc.Layout(schema.HTTPRequest)
	for i, off := range []uint32{0, 4, 12, 20} {
		if req.FieldOffs[i] != off {
			t.Errorf("http-request field %d at %d, want %d", i, req.FieldOffs[i], off)
		}
	}

	if got := calc.Layout(schema.MultiAddress).PayloadOff; got != 8 {
		t.Errorf("multi-address payload at %d, want 8", got)
	}

	opt := &wit.TypeDef{Kind: &wit.Option{Type: wit.U32{}}}
	if got := calc.Layout(opt); got.Size != 8 || got.Align != 4 || got.PayloadOff != 4 {
		t.Errorf("option<u32> = %+v", got)
	}
}

func TestLayoutCached(t *testing.T) {
	calc := NewCalculator()
	a := calc.Layout(schema.ChainOwnership)
	b := calc.Layout(schema.ChainOwnership)
	if a.Size != b.Size || &a.FieldOffs[0] != &b.FieldOffs[0] {
		t.Error("layout not served from cache")
	}
}

func TestAlignTo(t *testing.T) {
	tests := []struct {
		offset, align, want uint32
	}{
		{0, 4, 0},
		{1, 4, 4},
		{4, 4, 4},
		{5, 8, 8},
		{7, 0, 7},
		{3, 1, 3},
	}
	for _, tt := range tests {
		if got := AlignTo(tt.offset, tt.align); got != tt.want {
			t.Errorf("AlignTo(%d, %d) = %d, want %d", tt.offset, tt.align, got, tt.want)
		}
	}
}

func TestDiscriminantSize(t *testing.T) {
	tests := []struct {
		cases int
		want  uint32
	}{
		{2, 1},
		{256, 1},
		{257, 2},
		{65536, 2},
		{65537, 4},
	}
	for _, tt := range tests {
		if got := DiscriminantSize(tt.cases); got != tt.want {
			t.Errorf("DiscriminantSize(%d) = %d, want %d", tt.cases, got, tt.want)
		}
	}
}
