package quoteform

import (
	"context"

	"github.com/goliatone/go-quoteform/pkg/compile"
	"github.com/goliatone/go-quoteform/pkg/definition"
	"github.com/goliatone/go-quoteform/pkg/export"
	"github.com/goliatone/go-quoteform/pkg/form"
	"github.com/goliatone/go-quoteform/pkg/normalize"
	"github.com/goliatone/go-quoteform/pkg/redirect"
	"github.com/goliatone/go-quoteform/pkg/session"
	"github.com/goliatone/go-quoteform/pkg/visibility"
	theme "github.com/goliatone/go-theme"
)

// FormDefinition is the authoring model for a quote form.
type FormDefinition = form.FormDefinition

// Question is a single form question.
type Question = form.Question

// Option is a choice a question offers.
type Option = form.Option

// Condition gates the visibility of a question or success page.
type Condition = form.Condition

// SuccessPage is a conditional post-submission destination.
type SuccessPage = form.SuccessPage

// Answers maps question ids to collected values.
type Answers = form.Answers

// Artifact is a compiled form: markup, stylesheet, and behavior text.
type Artifact = compile.Artifact

// File is a named output file produced by a packager.
type File = compile.File

// Result carries every intermediate product of an export.
type Result = export.Result

// NewExporter exposes the export pipeline constructor from the top-level
// module.
func NewExporter(options ...export.Option) (*export.Exporter, error) {
	return export.New(options...)
}

// Export loads the definition from source and runs the full pipeline,
// returning the packaged output files. It is the simplest entry point for
// callers that just want the artifact on disk.
func Export(ctx context.Context, source definition.Source, format string, options ...export.Option) ([]File, error) {
	exporter, err := export.New(options...)
	if err != nil {
		return nil, err
	}
	result, err := exporter.Export(ctx, export.Request{Source: source, Format: format})
	if err != nil {
		return nil, err
	}
	return result.Files, nil
}

// ExportDefinition runs the pipeline on a pre-loaded definition, bypassing
// the loader stage.
func ExportDefinition(ctx context.Context, def FormDefinition, format string, options ...export.Option) ([]File, error) {
	exporter, err := export.New(options...)
	if err != nil {
		return nil, err
	}
	result, err := exporter.Export(ctx, export.Request{Definition: &def, Format: format})
	if err != nil {
		return nil, err
	}
	return result.Files, nil
}

// WithThemeSelector passes a go-theme selector through to the compiler so
// theme tokens become CSS custom properties in the stylesheet.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) compile.Option {
	return compile.WithThemeSelector(selector, name, variant)
}

// NewSession starts an interactive walk over def.
func NewSession(def FormDefinition, options ...session.Option) *session.Session {
	return session.New(def, options...)
}

// Normalize rewrites positional identifiers across def and returns the old to
// new id mapping.
func Normalize(def FormDefinition) (FormDefinition, normalize.IDMap) {
	return normalize.Normalize(def)
}

// Lint reports conditional references that can never match.
func Lint(def FormDefinition) []normalize.Issue {
	return normalize.Lint(def)
}

// ResolveRedirect picks the destination URL for a completed submission.
func ResolveRedirect(def FormDefinition, answers Answers) string {
	return redirect.ForForm(def, answers)
}

// QuestionVisible reports whether a question shows for the given answers.
func QuestionVisible(q Question, answers Answers, questions []Question) bool {
	return visibility.Question(q, answers, questions)
}
