package definition

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoader_FromBytes(t *testing.T) {
	t.Parallel()

	loader := NewLoader()
	def, err := loader.Load(context.Background(), SourceFromBytes([]byte(jsonDefinition)))
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if def.Title != "Quote" {
		t.Fatalf("title = %q", def.Title)
	}
}

func TestLoader_FromFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"forms/quote.yaml": &fstest.MapFile{Data: []byte(yamlDefinition)},
	}
	loader := NewLoader(WithFS(fsys))

	def, err := loader.Load(context.Background(), SourceFromFS("forms/quote.yaml"))
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if len(def.Questions) != 1 {
		t.Fatalf("questions = %d, want 1", len(def.Questions))
	}

	if _, err := NewLoader().Load(context.Background(), SourceFromFS("forms/quote.yaml")); err == nil {
		t.Fatal("expected error when no fs.FS is configured")
	}
}

func TestLoader_FromURL(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/missing") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(jsonDefinition))
	}))
	t.Cleanup(server.Close)

	loader := NewLoader(WithHTTPClient(server.Client()))

	def, err := loader.Load(context.Background(), SourceFromURL(server.URL+"/quote.json"))
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if def.Title != "Quote" {
		t.Fatalf("title = %q", def.Title)
	}

	if _, err := loader.Load(context.Background(), SourceFromURL(server.URL+"/missing")); err == nil {
		t.Fatal("expected error for non-2xx response")
	}

	if _, err := NewLoader().Load(context.Background(), SourceFromURL(server.URL)); err == nil {
		t.Fatal("expected error when http support is disabled")
	}
}

func TestLoader_NilSource(t *testing.T) {
	t.Parallel()

	if _, err := NewLoader().Load(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil source")
	}
}
