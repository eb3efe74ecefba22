// Package template defines the engine-agnostic rendering seam the artifact
// compiler builds on, mirroring the github.com/goliatone/go-template engine
// contract.
package template

import "io"

// TemplateRenderer is the surface the compiler needs from a template engine.
// The default implementation lives in the gotemplate subpackage; tests can
// substitute a stub.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
