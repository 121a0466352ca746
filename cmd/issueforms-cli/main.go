package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	issueforms "github.com/shubham-kshetre/issueforms"
	"github.com/shubham-kshetre/issueforms/pkg/form"
	"github.com/shubham-kshetre/issueforms/pkg/render"
	"github.com/shubham-kshetre/issueforms/pkg/renderers/tui"
)

func main() {
	renderer := flag.String("renderer", "html", "renderer to use (html, markdown, tui)")
	output := flag.String("output", "", "output file (stdout if empty)")
	source := flag.String("source", "", "template path or URL (embedded feature request template if empty)")
	values := flag.String("values", "", "JSON object of prefill values keyed by field id")
	errorsPayload := flag.String("errors", "", "JSON object of validation messages keyed by field id")
	flag.Parse()

	ctx := context.Background()

	tpl, err := loadTemplate(ctx, *source)
	if err != nil {
		log.Fatalf("Failed to load template: %v", err)
	}

	opts := render.Options{}
	if *values != "" {
		if err := json.Unmarshal([]byte(*values), &opts.Values); err != nil {
			log.Fatalf("Failed to parse -values: %v", err)
		}
	}
	if *errorsPayload != "" {
		var payload map[string][]string
		if err := json.Unmarshal([]byte(*errorsPayload), &payload); err != nil {
			log.Fatalf("Failed to parse -errors: %v", err)
		}
		mapping := render.MapErrorPayload(tpl, payload)
		opts.Errors = mapping.Fields
		for _, message := range mapping.Form {
			log.Printf("form error: %s", message)
		}
	}

	var rendered []byte
	if *renderer == "tui" {
		rendered, err = issueforms.Fill(ctx, tpl, opts, tui.WithOutputFormat(tui.OutputFormatMarkdown))
	} else {
		rendered, err = issueforms.Render(ctx, tpl, *renderer, opts)
	}
	if err != nil {
		log.Fatalf("Failed to render template: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, rendered, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Output written to %s\n", *output)
	} else {
		fmt.Println(string(rendered))
	}
}

func loadTemplate(ctx context.Context, raw string) (form.Template, error) {
	path := strings.TrimSpace(raw)
	if path == "" {
		return form.FeatureRequest()
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return issueforms.Load(ctx, form.SourceFromURL(path), form.WithHTTPFallback(30*time.Second))
	}
	return issueforms.Load(ctx, form.SourceFromFile(path))
}
