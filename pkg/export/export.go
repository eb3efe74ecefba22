// Package export wires the full pipeline: load a definition, lint its
// conditional references, normalize identifiers, compile the artifact, and
// package the output files.
package export

import (
	"context"
	"fmt"

	"github.com/goliatone/go-quoteform/pkg/compile"
	"github.com/goliatone/go-quoteform/pkg/definition"
	"github.com/goliatone/go-quoteform/pkg/form"
	"github.com/goliatone/go-quoteform/pkg/normalize"
	"go.uber.org/zap"
)

// Option configures an Exporter.
type Option func(*Exporter)

// WithLoader overrides the definition loader.
func WithLoader(loader *definition.Loader) Option {
	return func(e *Exporter) {
		if loader != nil {
			e.loader = loader
		}
	}
}

// WithCompiler overrides the artifact compiler.
func WithCompiler(compiler *compile.Compiler) Option {
	return func(e *Exporter) {
		if compiler != nil {
			e.compiler = compiler
		}
	}
}

// WithCompileOptions builds the compiler from options instead of the default
// embedded templates. Ignored when WithCompiler is also supplied.
func WithCompileOptions(options ...compile.Option) Option {
	return func(e *Exporter) {
		e.compileOptions = options
	}
}

// WithRegistry overrides the packager registry.
func WithRegistry(registry *compile.Registry) Option {
	return func(e *Exporter) {
		if registry != nil {
			e.registry = registry
		}
	}
}

// WithDefaultFormat sets the packager used when a request names none.
func WithDefaultFormat(name string) Option {
	return func(e *Exporter) {
		if name != "" {
			e.defaultFormat = name
		}
	}
}

// WithNormalization toggles identifier normalization. It is on by default;
// callers that already manage stable identifiers can switch it off.
func WithNormalization(enabled bool) Option {
	return func(e *Exporter) {
		e.normalize = enabled
	}
}

// WithLogger sets the logger used to surface lint findings.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Exporter) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// Exporter runs definitions through lint, normalize, compile, and package
// stages.
type Exporter struct {
	loader         *definition.Loader
	compiler       *compile.Compiler
	compileOptions []compile.Option
	registry       *compile.Registry
	defaultFormat  string
	normalize      bool
	logger         *zap.Logger
}

// New constructs an Exporter with defaults applied.
func New(options ...Option) (*Exporter, error) {
	e := &Exporter{
		loader:        definition.NewLoader(),
		registry:      compile.NewRegistry(),
		defaultFormat: "split",
		normalize:     true,
		logger:        zap.NewNop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	if e.compiler == nil {
		compiler, err := compile.New(e.compileOptions...)
		if err != nil {
			return nil, fmt.Errorf("export: build compiler: %w", err)
		}
		e.compiler = compiler
	}
	return e, nil
}

// Request names the definition to export and the output format.
type Request struct {
	// Source locates the definition. Ignored when Definition is set.
	Source definition.Source

	// Definition bypasses the loader stage.
	Definition *form.FormDefinition

	// Format names a registered packager. Empty means the exporter default.
	Format string
}

// Result carries every intermediate product of an export so callers can
// persist the normalized definition and surface lint findings alongside the
// output files.
type Result struct {
	Definition form.FormDefinition
	IDMap      normalize.IDMap
	Issues     []normalize.Issue
	Artifact   compile.Artifact
	Files      []compile.File
}

// Export runs the full pipeline for req.
func (e *Exporter) Export(ctx context.Context, req Request) (Result, error) {
	def, err := e.resolveDefinition(ctx, req)
	if err != nil {
		return Result{}, err
	}

	issues := normalize.Lint(def)
	for _, issue := range issues {
		e.logger.Warn("definition lint finding",
			zap.String("entity", issue.Entity),
			zap.String("condition", issue.ConditionID),
			zap.String("message", issue.Message),
		)
	}

	var idMap normalize.IDMap
	if e.normalize {
		def, idMap = normalize.Normalize(def)
	}

	artifact, err := e.compiler.Compile(ctx, def)
	if err != nil {
		return Result{}, fmt.Errorf("export: compile: %w", err)
	}

	format := req.Format
	if format == "" {
		format = e.defaultFormat
	}
	packager, err := e.registry.Get(format)
	if err != nil {
		return Result{}, fmt.Errorf("export: %w", err)
	}

	return Result{
		Definition: def,
		IDMap:      idMap,
		Issues:     issues,
		Artifact:   artifact,
		Files:      packager.Package(artifact),
	}, nil
}

func (e *Exporter) resolveDefinition(ctx context.Context, req Request) (form.FormDefinition, error) {
	if req.Definition != nil {
		return req.Definition.Clone(), nil
	}
	if req.Source == nil {
		return form.FormDefinition{}, fmt.Errorf("export: request needs a source or definition")
	}
	def, err := e.loader.Load(ctx, req.Source)
	if err != nil {
		return form.FormDefinition{}, fmt.Errorf("export: load definition: %w", err)
	}
	return def, nil
}
