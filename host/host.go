package host

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.bytecodealliance.org/wit"
	"go.uber.org/zap"

	linerabridge "github.com/wippyai/linera-bridge"
	"github.com/wippyai/linera-bridge/abi"
	"github.com/wippyai/linera-bridge/base"
	"github.com/wippyai/linera-bridge/errors"
	"github.com/wippyai/linera-bridge/schema"
)

// Option configures a Host.
type Option func(*Host)

// WithLogger sets the logger that receives guest log calls and host
// diagnostics. The default is the package Logger.
func WithLogger(l *zap.Logger) Option {
	return func(h *Host) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithHTTPTimeout bounds each perform-http-request call. Zero disables
// the bound.
func WithHTTPTimeout(d time.Duration) Option {
	return func(h *Host) {
		h.httpTimeout = d
	}
}

// Function is one host function with its derived core signature.
type Function struct {
	Name    string
	Def     schema.Func
	Params  []api.ValueType
	Results []api.ValueType
	// RetPtr is set when the result is written to a guest-supplied pointer
	// passed as the last parameter.
	RetPtr bool

	call func(ctx context.Context, args []any) (any, error)
}

// Host implements the base runtime interface for guests.
type Host struct {
	rt          Runtime
	bindings    Bindings
	enc         *abi.Encoder
	dec         *abi.Decoder
	logger      *zap.Logger
	httpTimeout time.Duration
	funcs       []*Function
}

// New builds a Host serving rt through the wire types of bindings.
func New(rt Runtime, bindings Bindings, opts ...Option) (*Host, error) {
	if rt == nil {
		return nil, errors.InvalidInput(errors.PhaseHost, "runtime cannot be nil")
	}
	if bindings == nil {
		return nil, errors.InvalidInput(errors.PhaseHost, "bindings cannot be nil")
	}

	calc := abi.NewCalculator()
	h := &Host{
		rt:       rt,
		bindings: bindings,
		enc:      abi.NewEncoderWithCalculator(calc),
		dec:      abi.NewDecoderWithCalculator(calc),
		logger:   Logger(),
	}
	for _, opt := range opts {
		opt(h)
	}

	impls := h.impls()
	for _, f := range schema.Funcs() {
		call, ok := impls[f.Name]
		if !ok {
			return nil, errors.Registration(errors.PhaseHost, bindings.Interface(), f.Name,
				errors.NotFound(errors.PhaseHost, "implementation of", f.Name))
		}
		fn, err := newFunction(f, call)
		if err != nil {
			return nil, errors.Registration(errors.PhaseHost, bindings.Interface(), f.Name, err)
		}
		h.funcs = append(h.funcs, fn)
	}
	return h, nil
}

// Functions returns the host functions in schema order.
func (h *Host) Functions() []*Function {
	return h.funcs
}

// Instantiate registers the host module in r under the bindings' interface
// name. Guests must be instantiated afterwards.
func (h *Host) Instantiate(ctx context.Context, r wazero.Runtime) (api.Module, error) {
	builder := r.NewHostModuleBuilder(h.bindings.Interface())
	for _, f := range h.funcs {
		builder.NewFunctionBuilder().
			WithGoModuleFunction(h.handler(f), f.Params, f.Results).
			WithName(f.Name).
			Export(f.Name)
	}

	mod, err := builder.Instantiate(ctx)
	if err != nil {
		return nil, errors.Instantiation(err)
	}
	h.logger.Debug("host module instantiated",
		zap.String("module", h.bindings.Interface()),
		zap.String("namespace", h.bindings.Namespace()),
		zap.Int("functions", len(h.funcs)))
	return mod, nil
}

func newFunction(f schema.Func, call func(context.Context, []any) (any, error)) (*Function, error) {
	fn := &Function{Name: f.Name, Def: f, call: call}

	var params []abi.FlatType
	for _, p := range f.Params {
		params = append(params, abi.Flatten(p.Type)...)
	}
	if len(params) > abi.MaxFlatParams {
		return nil, errors.Unsupported(errors.PhaseHost, "parameters passed through memory")
	}
	fn.Params = valueTypes(params)

	if len(f.Results) > 0 {
		results := abi.Flatten(f.Results[0])
		if len(results) > abi.MaxFlatResults {
			fn.RetPtr = true
			fn.Params = append(fn.Params, api.ValueTypeI32)
		} else {
			fn.Results = valueTypes(results)
		}
	}
	return fn, nil
}

// usesMemory reports whether a call may touch guest memory. Parameters are
// counted conservatively since any of them may be a string.
func (f *Function) usesMemory() bool {
	return f.RetPtr || len(f.Def.Params) > 0
}

func valueTypes(flat []abi.FlatType) []api.ValueType {
	out := make([]api.ValueType, len(flat))
	for i, ft := range flat {
		switch ft {
		case abi.I32:
			out[i] = api.ValueTypeI32
		case abi.I64:
			out[i] = api.ValueTypeI64
		case abi.F32:
			out[i] = api.ValueTypeF32
		case abi.F64:
			out[i] = api.ValueTypeF64
		}
	}
	return out
}

func (h *Host) handler(f *Function) api.GoModuleFunc {
	return func(ctx context.Context, mod api.Module, stack []uint64) {
		if err := h.Call(ctx, f, WrapMemory(mod.Memory()), WrapAllocator(ctx, mod.ExportedFunction(reallocExport)), stack); err != nil {
			h.logger.Error("host call failed", zap.String("func", f.Name), zap.Error(err))
			panic(err)
		}
	}
}

// Call runs f against guest memory. stack holds the core parameters on
// entry and the core results on return, as in a wazero host call.
func (h *Host) Call(ctx context.Context, f *Function, mem linerabridge.Memory, alloc linerabridge.Allocator, stack []uint64) error {
	if mem == nil && f.usesMemory() {
		return errors.NotFound(errors.PhaseHost, "guest export", "memory")
	}
	args, next, err := h.liftParams(f, stack, mem)
	if err != nil {
		return err
	}

	result, err := f.call(ctx, args)
	if err != nil {
		return errors.New(errors.PhaseHost, errors.KindInvalidData).
			Path(f.Name).
			Cause(err).
			Detail("runtime call failed").
			Build()
	}
	if len(f.Def.Results) == 0 {
		return nil
	}
	return h.lowerResult(f, result, stack, next, mem, alloc)
}

func (h *Host) liftParams(f *Function, stack []uint64, mem linerabridge.Memory) ([]any, int, error) {
	args := make([]any, len(f.Def.Params))
	off := 0
	for i, p := range f.Def.Params {
		if off > len(stack) {
			return nil, 0, errors.OutOfBounds(errors.PhaseLift, []string{f.Name, p.Name}, off, len(stack))
		}
		v, n, err := h.liftParam(p.Type, stack[off:], mem)
		if err != nil {
			return nil, 0, err
		}
		args[i] = v
		off += n
	}
	return args, off, nil
}

func (h *Host) liftParam(t wit.Type, flat []uint64, mem linerabridge.Memory) (any, int, error) {
	name := schema.Name(t)
	if name == "" {
		// Primitive parameters carry no wire type of their own.
		if _, ok := t.(wit.String); !ok {
			return nil, 0, errors.Unsupported(errors.PhaseLift, "anonymous parameter "+schema.TypeString(t))
		}
		var s string
		n, err := h.dec.Lift(t, flat, mem, &s)
		return s, n, err
	}

	ptr, ok := h.bindings.Zero(name)
	if !ok {
		return nil, 0, errors.NotFound(errors.PhaseLift, "wire type", name)
	}
	n, err := h.dec.Lift(t, flat, mem, ptr)
	if err != nil {
		return nil, 0, err
	}
	domain, ok := h.bindings.ToBase(reflect.ValueOf(ptr).Elem().Interface())
	if !ok {
		return nil, 0, errors.NotFound(errors.PhaseConvert, "conversion for", name)
	}
	return domain, n, nil
}

func (h *Host) lowerResult(f *Function, result any, stack []uint64, next int, mem linerabridge.Memory, alloc linerabridge.Allocator) error {
	t := f.Def.Results[0]
	wire, ok := h.bindings.FromBase(result)
	if !ok {
		return errors.New(errors.PhaseConvert, errors.KindTypeMismatch).
			Path(f.Name).
			GoType(fmt.Sprintf("%T", result)).
			WitType(schema.TypeString(t)).
			Build()
	}

	if f.RetPtr {
		if next >= len(stack) {
			return errors.OutOfBounds(errors.PhaseLower, []string{f.Name, "retptr"}, next, len(stack))
		}
		return h.enc.Store(t, wire, uint32(stack[next]), mem, alloc)
	}

	flat, err := h.enc.Lower(t, wire, mem, alloc)
	if err != nil {
		return err
	}
	copy(stack, flat)
	return nil
}

// impls maps each interface function onto the Runtime. Arguments arrive as
// domain values in parameter order.
func (h *Host) impls() map[string]func(context.Context, []any) (any, error) {
	return map[string]func(context.Context, []any) (any, error){
		"get-chain-id": func(ctx context.Context, _ []any) (any, error) {
			return h.rt.ChainID(ctx), nil
		},
		"get-block-height": func(ctx context.Context, _ []any) (any, error) {
			return h.rt.BlockHeight(ctx), nil
		},
		"get-application-id": func(ctx context.Context, _ []any) (any, error) {
			return h.rt.ApplicationID(ctx), nil
		},
		"read-system-timestamp": func(ctx context.Context, _ []any) (any, error) {
			return h.rt.SystemTimestamp(ctx), nil
		},
		"read-chain-balance": func(ctx context.Context, _ []any) (any, error) {
			return h.rt.ChainBalance(ctx), nil
		},
		"read-owner-balance": func(ctx context.Context, args []any) (any, error) {
			owner, ok := args[0].(base.MultiAddress)
			if !ok {
				return nil, errors.TypeMismatch(errors.PhaseHost, []string{"owner"}, fmt.Sprintf("%T", args[0]), "multi-address")
			}
			return h.rt.OwnerBalance(ctx, owner), nil
		},
		"read-chain-ownership": func(ctx context.Context, _ []any) (any, error) {
			return h.rt.ChainOwnership(ctx), nil
		},
		"log": func(ctx context.Context, args []any) (any, error) {
			msg, ok := args[0].(string)
			if !ok {
				return nil, errors.TypeMismatch(errors.PhaseHost, []string{"message"}, fmt.Sprintf("%T", args[0]), "string")
			}
			level, ok := args[1].(base.Level)
			if !ok {
				return nil, errors.TypeMismatch(errors.PhaseHost, []string{"level"}, fmt.Sprintf("%T", args[1]), "log-level")
			}
			h.logger.Log(level.ZapLevel(), msg,
				zap.String("namespace", h.bindings.Namespace()),
				zap.Stringer("guest_level", level))
			return nil, nil
		},
		"perform-http-request": func(ctx context.Context, args []any) (any, error) {
			req, ok := args[0].(base.HTTPRequest)
			if !ok {
				return nil, errors.TypeMismatch(errors.PhaseHost, []string{"request"}, fmt.Sprintf("%T", args[0]), "http-request")
			}
			if h.httpTimeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, h.httpTimeout)
				defer cancel()
			}
			h.logger.Debug("http request",
				zap.Stringer("method", req.Method),
				zap.String("url", req.URL),
				zap.Int("body", len(req.Body)))
			return h.rt.PerformHTTPRequest(ctx, req)
		},
	}
}
