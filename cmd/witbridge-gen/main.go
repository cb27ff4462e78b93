// Command witbridge-gen writes the generated files of one wire namespace.
//
//	witbridge-gen -namespace contract -out contract/wit/baseruntime
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/wippyai/linera-bridge/internal/codegen"
)

func main() {
	var (
		namespace = flag.String("namespace", "", "Namespace to generate (contract or service)")
		out       = flag.String("out", ".", "Output directory")
		pkg       = flag.String("package", "baseruntime", "Go package name")
		verbose   = flag.Bool("v", false, "Log each written file")
	)
	flag.Parse()

	if *namespace != "contract" && *namespace != "service" {
		fmt.Fprintln(os.Stderr, "Usage: witbridge-gen -namespace contract|service [-out dir] [-package name]")
		os.Exit(1)
	}

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger = l
	}
	defer func() { _ = logger.Sync() }()

	if err := run(*namespace, *pkg, *out, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(namespace, pkg, out string, logger *zap.Logger) error {
	files, err := codegen.Generate(codegen.Options{
		Package:   pkg,
		Namespace: namespace,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for _, name := range codegen.Files {
		path := filepath.Join(out, name)
		if err := os.WriteFile(path, files[name], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		logger.Info("wrote", zap.String("path", path))
	}
	return nil
}
