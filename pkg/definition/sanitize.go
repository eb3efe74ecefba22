package definition

import (
	"strings"
	"sync"

	"github.com/goliatone/go-quoteform/pkg/form"
	"github.com/microcosm-cc/bluemonday"
)

var (
	iconPolicyOnce sync.Once
	iconPolicy     *bluemonday.Policy
)

// SanitizeIcons scrubs every option icon in place. Icons are either URLs or
// inline decorative SVG markup supplied by the author; inline markup passes
// through a strict allow-list policy and URLs are restricted to safe schemes.
func SanitizeIcons(def *form.FormDefinition) {
	if def == nil {
		return
	}
	for qi := range def.Questions {
		for oi := range def.Questions[qi].Options {
			icon := &def.Questions[qi].Options[oi].Icon
			*icon = sanitizeIcon(*icon)
		}
	}
}

func sanitizeIcon(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if strings.Contains(trimmed, "<") {
		return strings.TrimSpace(iconSanitizer().Sanitize(trimmed))
	}
	return sanitizeIconURL(trimmed)
}

func sanitizeIconURL(raw string) string {
	lowered := strings.ToLower(raw)
	switch {
	case strings.HasPrefix(lowered, "http://"),
		strings.HasPrefix(lowered, "https://"),
		strings.HasPrefix(lowered, "data:image/"),
		strings.HasPrefix(lowered, "/"):
		return raw
	default:
		return ""
	}
}

func iconSanitizer() *bluemonday.Policy {
	iconPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		elements := []string{
			"svg", "g", "path", "circle", "rect", "line", "polyline", "polygon",
			"ellipse", "title", "desc", "defs", "use",
		}
		policy.AllowElements(elements...)

		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "stroke-linecap", "stroke-linejoin", "aria-hidden",
			"role", "focusable", "class",
		).OnElements("svg")

		for _, el := range []string{"path", "circle", "rect", "line", "polyline", "polygon", "ellipse"} {
			policy.AllowAttrs(
				"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
				"points", "rx", "ry", "fill", "stroke", "stroke-width",
				"stroke-linecap", "stroke-linejoin", "class",
			).OnElements(el)
		}

		policy.AllowAttrs("id").OnElements("defs", "g")

		iconPolicy = policy
	})
	return iconPolicy
}
