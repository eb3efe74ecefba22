package compile

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the built-in artifact templates so callers can extend
// or partially override them.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
