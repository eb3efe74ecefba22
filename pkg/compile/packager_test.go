package compile

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleArtifact() Artifact {
	return Artifact{
		Markup: "<!doctype html>\n<html><head>" +
			`<link rel="stylesheet" href="styles.css">` +
			"</head><body>" +
			`<script src="form.js"></script>` +
			"</body></html>",
		Stylesheet: ":root { --qf-button: #2563eb; }\n",
		Behavior:   "var DEFINITION = {};\n",
	}
}

func TestSplitPackager(t *testing.T) {
	t.Parallel()

	files := SplitPackager{}.Package(sampleArtifact())

	want := []string{"index.html", "styles.css", "form.js"}
	got := make([]string, len(files))
	for i, f := range files {
		got[i] = f.Name
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("file names mismatch (-want +got):\n%s", diff)
	}
	if files[1].Content != sampleArtifact().Stylesheet {
		t.Fatal("stylesheet content altered by split packaging")
	}
}

func TestInlinePackager(t *testing.T) {
	t.Parallel()

	artifact := sampleArtifact()
	files := InlinePackager{}.Package(artifact)

	if len(files) != 1 || files[0].Name != "index.html" {
		t.Fatalf("expected a single index.html, got %v", files)
	}
	document := files[0].Content

	if strings.Contains(document, `href="styles.css"`) {
		t.Fatal("stylesheet link not inlined")
	}
	if strings.Contains(document, `src="form.js"`) {
		t.Fatal("script reference not inlined")
	}
	if !strings.Contains(document, artifact.Stylesheet) {
		t.Fatal("stylesheet body missing from inlined document")
	}
	if !strings.Contains(document, artifact.Behavior) {
		t.Fatal("behavior body missing from inlined document")
	}
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	if diff := cmp.Diff([]string{"inline", "split"}, registry.List()); diff != "" {
		t.Fatalf("builtin packagers mismatch (-want +got):\n%s", diff)
	}

	if _, err := registry.Get("split"); err != nil {
		t.Fatalf("Get(split) = %v", err)
	}
	if _, err := registry.Get("zip"); err == nil {
		t.Fatal("expected error for unknown packager")
	}
	if err := registry.Register(SplitPackager{}); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatal("expected nil packager to fail")
	}
}
