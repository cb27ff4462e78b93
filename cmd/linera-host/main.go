package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tetratelabs/wazero"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/linera-bridge/abi"
	"github.com/wippyai/linera-bridge/base"
	contractapi "github.com/wippyai/linera-bridge/contract/wit/baseruntime"
	"github.com/wippyai/linera-bridge/host"
	serviceapi "github.com/wippyai/linera-bridge/service/wit/baseruntime"
)

type config struct {
	wasm      string
	fn        string
	namespace string
	chain     string
	height    uint64
	timestamp uint64
	balance   uint64
	http      bool
}

func main() {
	var (
		cfg         config
		list        = flag.Bool("list", false, "List the interface and exit")
		interactive = flag.Bool("i", false, "Interactive interface browser")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.StringVar(&cfg.wasm, "wasm", "", "Path to core guest wasm file")
	flag.StringVar(&cfg.fn, "func", "", "Nullary guest export to call")
	flag.StringVar(&cfg.namespace, "namespace", "contract", "Wire namespace: contract or service")
	flag.StringVar(&cfg.chain, "chain", "", "Chain id as 64 hex digits")
	flag.Uint64Var(&cfg.height, "height", 0, "Block height reported to the guest")
	flag.Uint64Var(&cfg.timestamp, "timestamp", 0, "System timestamp in microseconds")
	flag.Uint64Var(&cfg.balance, "balance", 0, "Chain balance in whole tokens")
	flag.BoolVar(&cfg.http, "http", false, "Serve perform-http-request over the network")
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		logger, _ = zap.NewDevelopment()
	}
	defer func() { _ = logger.Sync() }()
	host.SetLogger(logger)
	abi.SetLogger(logger)

	bindings, err := bindingsFor(cfg.namespace)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *list || (*interactive && !term.IsTerminal(int(os.Stdout.Fd()))) {
		if err := printTable(os.Stdout, bindings); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *interactive {
		if err := runInteractive(bindings); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if cfg.wasm == "" || cfg.fn == "" {
		fmt.Fprintln(os.Stderr, "Usage: linera-host -wasm <file.wasm> -func <name> [-namespace contract|service]")
		fmt.Fprintln(os.Stderr, "       linera-host -list [-namespace contract|service]")
		fmt.Fprintln(os.Stderr, "       linera-host -i  (interactive interface browser)")
		os.Exit(1)
	}

	if err := run(context.Background(), cfg, bindings, logger, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func bindingsFor(namespace string) (host.Bindings, error) {
	switch namespace {
	case "contract":
		return contractapi.Bindings{}, nil
	case "service":
		return serviceapi.Bindings{}, nil
	default:
		return nil, fmt.Errorf("unknown namespace %q (want contract or service)", namespace)
	}
}

func staticRuntime(cfg config) (*host.StaticRuntime, error) {
	rt := &host.StaticRuntime{
		Height:  base.BlockHeight(cfg.height),
		Now:     base.TimestampFromMicros(cfg.timestamp),
		Balance: base.AmountFromTokens(cfg.balance),
	}
	if cfg.chain != "" {
		h, err := base.ParseCryptoHash(cfg.chain)
		if err != nil {
			return nil, fmt.Errorf("chain: %w", err)
		}
		rt.Chain = base.ChainID{Hash: h}
	}
	rt.Ownership = base.SingleOwner(base.ChainAddress{})
	return rt, nil
}

func run(ctx context.Context, cfg config, bindings host.Bindings, logger *zap.Logger, out io.Writer) error {
	data, err := os.ReadFile(cfg.wasm)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	static, err := staticRuntime(cfg)
	if err != nil {
		return err
	}
	var rt host.Runtime = static
	if cfg.http {
		rt = host.NewHTTPRuntime(static, nil)
	}

	h, err := host.New(rt, bindings, host.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("host: %w", err)
	}

	r := wazero.NewRuntime(ctx)
	defer r.Close(ctx)

	if _, err := h.Instantiate(ctx, r); err != nil {
		return fmt.Errorf("instantiate host: %w", err)
	}
	guest, err := r.Instantiate(ctx, data)
	if err != nil {
		return fmt.Errorf("instantiate guest: %w", err)
	}

	fn := guest.ExportedFunction(cfg.fn)
	if fn == nil {
		return fmt.Errorf("guest has no export %q", cfg.fn)
	}
	if n := len(fn.Definition().ParamTypes()); n != 0 {
		return fmt.Errorf("export %q takes %d parameters, want none", cfg.fn, n)
	}

	fmt.Fprintf(out, "Calling %s (%s namespace)...\n", cfg.fn, bindings.Namespace())
	results, err := fn.Call(ctx)
	if err != nil {
		return fmt.Errorf("call: %w", err)
	}
	fmt.Fprintf(out, "Result: %v\n", results)
	return nil
}
