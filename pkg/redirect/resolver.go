// Package redirect picks the post-submission destination by walking the
// ordered success pages. The same walk runs inside the compiled artifact's
// script; given identical inputs both must resolve identically.
package redirect

import (
	"github.com/goliatone/go-quoteform/pkg/form"
	"github.com/goliatone/go-quoteform/pkg/visibility"
)

// Resolve returns the URL of the first success page whose condition set
// matches under the relaxed evaluator, or fallback when none do. Pages are
// evaluated strictly in order; a later page never shadows an earlier match.
func Resolve(pages []form.SuccessPage, answers form.Answers, questions []form.Question, fallback string) string {
	for _, page := range pages {
		if visibility.Page(page, answers, questions) {
			return page.URL
		}
	}
	return fallback
}

// ForForm resolves the destination for a completed form, falling back to the
// settings' submit URL.
func ForForm(def form.FormDefinition, answers form.Answers) string {
	return Resolve(def.Settings.SuccessPages, answers, def.Questions, def.Settings.SubmitURL)
}
