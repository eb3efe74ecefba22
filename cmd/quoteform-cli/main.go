package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-quoteform/pkg/definition"
	"github.com/goliatone/go-quoteform/pkg/export"
	"github.com/goliatone/go-quoteform/pkg/preview"
	"go.uber.org/zap"
)

func main() {
	source := flag.String("source", "form.json", "definition path or URL (JSON or YAML)")
	output := flag.String("output", "dist", "output directory")
	format := flag.String("format", "split", "packaging format: split or inline")
	runPreview := flag.Bool("preview", false, "walk the form interactively instead of exporting")
	lintOnly := flag.Bool("lint", false, "report lint findings and exit")
	flag.Parse()

	ctx := context.Background()

	src := parseSource(*source)
	if src == nil {
		log.Fatalf("invalid source: %q", *source)
	}

	loader := definition.NewLoader(definition.WithHTTPClient(http.DefaultClient))
	def, err := loader.Load(ctx, src)
	if err != nil {
		log.Fatalf("Failed to load definition: %v", err)
	}

	if *runPreview {
		result, err := preview.NewRunner().Run(ctx, def)
		if err != nil {
			log.Fatalf("Preview failed: %v", err)
		}
		fmt.Printf("Redirect: %s\n", result.RedirectURL)
		return
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	exporter, err := export.New(export.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to build exporter: %v", err)
	}

	result, err := exporter.Export(ctx, export.Request{Definition: &def, Format: *format})
	if err != nil {
		log.Fatalf("Failed to export form: %v", err)
	}

	if *lintOnly {
		for _, issue := range result.Issues {
			fmt.Println(issue.String())
		}
		if len(result.Issues) > 0 {
			os.Exit(1)
		}
		return
	}

	if err := os.MkdirAll(*output, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}
	for _, file := range result.Files {
		path := filepath.Join(*output, file.Name)
		if err := os.WriteFile(path, []byte(file.Content), 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		fmt.Printf("Wrote %s\n", path)
	}
}

func parseSource(raw string) definition.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return definition.SourceFromURL(path)
	}
	return definition.SourceFromFile(path)
}
