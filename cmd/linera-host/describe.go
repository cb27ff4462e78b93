package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.bytecodealliance.org/wit"

	linerabridge "github.com/wippyai/linera-bridge"
	"github.com/wippyai/linera-bridge/abi"
	"github.com/wippyai/linera-bridge/base"
	"github.com/wippyai/linera-bridge/host"
	"github.com/wippyai/linera-bridge/schema"
)

// samples holds one representative domain value per named type.
var samples = map[string]any{
	"crypto-hash":         sampleHash,
	"owner":               base.Owner{Hash: sampleHash},
	"multi-address":       base.Address32{Hash: sampleHash},
	"amount":              base.AmountFromTokens(3),
	"block-height":        base.BlockHeight(7),
	"chain-id":            base.ChainID{Hash: sampleHash},
	"user-application-id": base.UserApplicationID{Hash: sampleHash},
	"timestamp":           base.TimestampFromMicros(1_700_000_000_000_000),
	"time-delta":          base.TimeDeltaFromMicros(1_500_000),
	"timeout-config":      base.DefaultTimeoutConfig(),
	"chain-ownership":     base.SingleOwner(base.Address32{Hash: sampleHash}),
	"http-method":         base.MethodPost,
	"http-header":         base.NewHTTPHeader("Content-Type", "text/plain"),
	"http-request": base.HTTPRequest{
		Method:  base.MethodGet,
		URL:     "https://example.com",
		Headers: []base.HTTPHeader{base.NewHTTPHeader("Accept", "*/*")},
	},
	"http-response": base.HTTPResponse{Status: 200, Body: []byte("ok")},
	"log-level":     base.LevelInfo,
}

var sampleHash = base.CryptoHashFromWords([4]uint64{1, 2, 3, 4})

// typeReport is everything the browser shows for one named type.
type typeReport struct {
	Name        string
	Declaration string
	Layout      abi.Info
	Flat        []abi.FlatType
	Sample      string
	Lowered     []uint64
	Stored      []byte
	Err         error
}

// funcReport describes one host function.
type funcReport struct {
	Signature string
	Core      string
}

// inspector encodes sample values into a scratch memory.
type inspector struct {
	bindings host.Bindings
	calc     *abi.Calculator
	enc      *abi.Encoder
	r        wazero.Runtime
	mem      linerabridge.Memory
}

func newInspector(ctx context.Context, b host.Bindings) (*inspector, error) {
	r := wazero.NewRuntime(ctx)
	mem, err := host.NewScratchMemory(ctx, r)
	if err != nil {
		_ = r.Close(ctx)
		return nil, err
	}
	calc := abi.NewCalculator()
	return &inspector{
		bindings: b,
		calc:     calc,
		enc:      abi.NewEncoderWithCalculator(calc),
		r:        r,
		mem:      mem,
	}, nil
}

func (in *inspector) Close(ctx context.Context) error {
	return in.r.Close(ctx)
}

func (in *inspector) describe(td *wit.TypeDef) typeReport {
	name := schema.Name(td)
	rep := typeReport{
		Name:        name,
		Declaration: schema.Declaration(td),
		Layout:      in.calc.Layout(td),
		Flat:        abi.Flatten(td),
	}

	sample, ok := samples[name]
	if !ok {
		rep.Err = fmt.Errorf("no sample for %s", name)
		return rep
	}
	rep.Sample = fmt.Sprintf("%+v", sample)

	wire, ok := in.bindings.FromBase(sample)
	if !ok {
		rep.Err = fmt.Errorf("%s: no conversion for %T", name, sample)
		return rep
	}

	// The record lives at 0; lists are allocated above it.
	alloc := &bumpAllocator{next: 1024}
	if rep.Lowered, rep.Err = in.enc.Lower(td, wire, in.mem, alloc); rep.Err != nil {
		return rep
	}
	if rep.Err = in.enc.Store(td, wire, 0, in.mem, alloc); rep.Err != nil {
		return rep
	}
	stored, err := in.mem.Read(0, rep.Layout.Size)
	if err != nil {
		rep.Err = err
		return rep
	}
	rep.Stored = append([]byte(nil), stored...)
	return rep
}

func (in *inspector) functions() ([]funcReport, error) {
	h, err := host.New(&host.StaticRuntime{}, in.bindings)
	if err != nil {
		return nil, err
	}
	var out []funcReport
	for _, f := range h.Functions() {
		out = append(out, funcReport{
			Signature: f.Def.Signature(),
			Core:      coreSignature(f),
		})
	}
	return out, nil
}

func coreSignature(f *host.Function) string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = api.ValueTypeName(p)
	}
	if f.RetPtr {
		params[len(params)-1] = "retptr"
	}
	s := "(" + strings.Join(params, " ") + ")"
	if len(f.Results) > 0 {
		results := make([]string, len(f.Results))
		for i, r := range f.Results {
			results[i] = api.ValueTypeName(r)
		}
		s += " -> " + strings.Join(results, " ")
	}
	return s
}

func (r typeReport) layoutString() string {
	s := fmt.Sprintf("size %d, align %d", r.Layout.Size, r.Layout.Align)
	if len(r.Layout.FieldOffs) > 0 {
		s += fmt.Sprintf(", offsets %v", r.Layout.FieldOffs)
	}
	return s
}

func (r typeReport) flatString() string {
	parts := make([]string, len(r.Flat))
	for i, ft := range r.Flat {
		parts[i] = ft.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (r typeReport) storedString() string {
	return hex.EncodeToString(r.Stored)
}

// printTable writes the interface as two plain tables. It is the
// non-terminal fallback of the interactive browser.
func printTable(w io.Writer, b host.Bindings) error {
	ctx := context.Background()
	in, err := newInspector(ctx, b)
	if err != nil {
		return err
	}
	defer in.Close(ctx)

	types := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("TYPE", "SIZE", "ALIGN", "FLAT", "STORED")
	for _, td := range schema.Types() {
		rep := in.describe(td)
		stored := rep.storedString()
		if rep.Err != nil {
			stored = "error: " + rep.Err.Error()
		}
		types.Row(rep.Name,
			fmt.Sprint(rep.Layout.Size),
			fmt.Sprint(rep.Layout.Align),
			rep.flatString(),
			stored)
	}

	funcs, err := in.functions()
	if err != nil {
		return err
	}
	ft := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("FUNCTION", "CORE")
	for _, f := range funcs {
		ft.Row(f.Signature, f.Core)
	}

	fmt.Fprintf(w, "Interface %s (%s namespace)\n\n", b.Interface(), b.Namespace())
	fmt.Fprintln(w, types.Render())
	fmt.Fprintln(w)
	fmt.Fprintln(w, ft.Render())
	return nil
}

type bumpAllocator struct {
	next uint32
}

func (a *bumpAllocator) Alloc(size, align uint32) (uint32, error) {
	ptr := abi.AlignTo(a.next, align)
	a.next = ptr + size
	return ptr, nil
}

func (a *bumpAllocator) Free(uint32, uint32, uint32) {}
