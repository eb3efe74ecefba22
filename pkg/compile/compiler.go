// Package compile turns a normalized form definition into a standalone
// markup/stylesheet/behavior bundle. Compilation is a pure text transform:
// no network, no collaborators, and byte-identical output for identical
// input.
package compile

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"sort"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-quoteform/pkg/form"
	"github.com/goliatone/go-quoteform/pkg/template"
	"github.com/goliatone/go-quoteform/pkg/template/gotemplate"
)

// Option customises the compiler.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer template.TemplateRenderer
	themeSelector    theme.ThemeSelector
	themeName        string
	themeVariant     string
}

// WithTemplatesFS supplies an alternate artifact template bundle.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads artifact templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template engine.
func WithTemplateRenderer(renderer template.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithThemeSelector resolves a go-theme selection whose tokens become CSS
// custom properties in the generated stylesheet. FormSettings colors always
// win over theme tokens.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(cfg *config) {
		cfg.themeSelector = selector
		cfg.themeName = name
		cfg.themeVariant = variant
	}
}

// Compiler renders the embedded artifact templates against a normalized
// definition.
type Compiler struct {
	templates template.TemplateRenderer
	selector  theme.ThemeSelector
	themeName string
	variant   string
}

// New constructs a Compiler applying any provided options.
func New(options ...Option) (*Compiler, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("compile: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Compiler{
		templates: renderer,
		selector:  cfg.themeSelector,
		themeName: cfg.themeName,
		variant:   cfg.themeVariant,
	}, nil
}

// Compile renders the three artifact blobs for a normalized definition. The
// definition is expected to carry stable ids already; callers normalize
// first. Compiling the same definition twice yields byte-identical output.
func (c *Compiler) Compile(ctx context.Context, def form.FormDefinition) (Artifact, error) {
	if ctx == nil {
		return Artifact{}, fmt.Errorf("compile: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Artifact{}, err
	}
	if c.templates == nil {
		return Artifact{}, fmt.Errorf("compile: template renderer is nil")
	}

	cssVars, err := c.cssVariables(def.Settings)
	if err != nil {
		return Artifact{}, err
	}

	definitionJSON, err := json.Marshal(def)
	if err != nil {
		return Artifact{}, fmt.Errorf("compile: encode definition: %w", err)
	}

	data := map[string]any{
		"form":            def,
		"definition_json": string(definitionJSON),
		"css_vars":        cssVars,
	}

	markup, err := c.templates.RenderTemplate("templates/markup.tmpl", data)
	if err != nil {
		return Artifact{}, fmt.Errorf("compile: render markup: %w", err)
	}
	stylesheet, err := c.templates.RenderTemplate("templates/stylesheet.tmpl", data)
	if err != nil {
		return Artifact{}, fmt.Errorf("compile: render stylesheet: %w", err)
	}
	behavior, err := c.templates.RenderTemplate("templates/behavior.tmpl", data)
	if err != nil {
		return Artifact{}, fmt.Errorf("compile: render behavior: %w", err)
	}

	return Artifact{
		Markup:     markup,
		Stylesheet: stylesheet,
		Behavior:   behavior,
	}, nil
}

type cssVariable struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// cssVariables merges theme tokens (base, then variant) with the settings
// colors and returns them in sorted order so output stays deterministic.
func (c *Compiler) cssVariables(settings form.FormSettings) ([]cssVariable, error) {
	vars := make(map[string]string)

	if c.selector != nil {
		selection, err := c.selector.Select(c.themeName, c.variant)
		if err != nil {
			return nil, fmt.Errorf("compile: resolve theme: %w", err)
		}
		if selection != nil && selection.Manifest != nil {
			for key, value := range selection.Manifest.Tokens {
				vars["--"+key] = value
			}
			if variant, ok := selection.Manifest.Variants[c.variant]; ok {
				for key, value := range variant.Tokens {
					vars["--"+key] = value
				}
			}
		}
	}

	if settings.BackgroundColor != "" {
		vars["--qf-background"] = settings.BackgroundColor
	}
	if settings.ButtonColor != "" {
		vars["--qf-button"] = settings.ButtonColor
	}

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]cssVariable, 0, len(names))
	for _, name := range names {
		out = append(out, cssVariable{Name: name, Value: vars[name]})
	}
	return out, nil
}
