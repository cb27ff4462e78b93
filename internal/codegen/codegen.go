package codegen

import (
	"bytes"
	"embed"
	"go/format"
	"text/template"

	"go.uber.org/zap"

	"github.com/wippyai/linera-bridge/errors"
	"github.com/wippyai/linera-bridge/schema"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Files lists the generated files in the order Generate renders them.
var Files = []string{"types.go", "from_wit.go", "to_wit.go", "bindings.go"}

// Options configures one generated namespace.
type Options struct {
	// Package is the Go package name. Defaults to "baseruntime".
	Package string
	// Namespace is the application side, "contract" or "service".
	Namespace string
	// Interface is the WIT interface name. Defaults to schema.Interface.
	Interface string
	// Logger receives progress messages. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Generate renders the wire namespace described by opts, keyed by file name.
func Generate(opts Options) (map[string][]byte, error) {
	if opts.Namespace == "" {
		return nil, errors.InvalidInput(errors.PhaseGenerate, "namespace is required")
	}
	if opts.Package == "" {
		opts.Package = "baseruntime"
	}
	if opts.Interface == "" {
		opts.Interface = schema.Interface
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	m, err := buildModel(opts)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New("").Funcs(template.FuncMap{
		"enum":       m.enum,
		"lowerFirst": lowerFirst,
	}).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, errors.Wrap(errors.PhaseGenerate, errors.KindInvalidData, err, "parse templates")
	}

	out := make(map[string][]byte, len(Files))
	for _, name := range Files {
		var buf bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buf, name+".tmpl", m); err != nil {
			return nil, errors.Wrap(errors.PhaseGenerate, errors.KindInvalidData, err, "render "+name)
		}
		src, err := format.Source(buf.Bytes())
		if err != nil {
			return nil, errors.New(errors.PhaseGenerate, errors.KindInvalidData).
				Path(name).
				Cause(err).
				Detail("generated code does not parse").
				Build()
		}
		out[name] = src
		logger.Debug("rendered file",
			zap.String("namespace", opts.Namespace),
			zap.String("file", name),
			zap.Int("bytes", len(src)))
	}
	return out, nil
}
