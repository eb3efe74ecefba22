package quoteform

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-quoteform/pkg/testsupport"
)

func TestExportDefinition_EndToEnd(t *testing.T) {
	t.Parallel()

	files, err := ExportDefinition(context.Background(), testsupport.QuoteDefinition(), "split")
	if err != nil {
		t.Fatalf("ExportDefinition() = %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("expected 3 files, got %d", len(files))
	}

	var markup string
	for _, f := range files {
		if f.Name == "index.html" {
			markup = f.Content
		}
	}
	if !strings.Contains(markup, "data-question=") {
		t.Fatal("markup missing question blocks")
	}
}

func TestRootConveniences(t *testing.T) {
	t.Parallel()

	def := testsupport.QuoteDefinition()

	normalized, idMap := Normalize(def)
	if normalized.Questions[0].ID != "q_1" || idMap["q_property"] != "q_1" {
		t.Fatalf("Normalize() ids: %q, map %v", normalized.Questions[0].ID, idMap)
	}

	if issues := Lint(def); len(issues) != 0 {
		t.Fatalf("Lint() on the clean fixture = %v", issues)
	}

	url := ResolveRedirect(def, Answers{"q_property": "q_property_opt_house"})
	if url != "https://example.com/thanks/house" {
		t.Fatalf("ResolveRedirect() = %q", url)
	}

	sess := NewSession(def)
	if current, ok := sess.Current(); !ok || current.ID != "q_property" {
		t.Fatalf("NewSession() current = %v, %v", current, ok)
	}

	if !QuestionVisible(def.Questions[0], Answers{}, def.Questions) {
		t.Fatal("unconditional question must be visible")
	}
	if QuestionVisible(def.Questions[1], Answers{}, def.Questions) {
		t.Fatal("conditional question must hide without its trigger answer")
	}
}
