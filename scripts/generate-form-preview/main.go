// Command generate-form-preview renders the embedded feature-request template
// to a static HTML file for visual review.
package main

import (
	"context"
	"fmt"
	"os"

	issueforms "github.com/shubham-kshetre/issueforms"
	"github.com/shubham-kshetre/issueforms/pkg/form"
	"github.com/shubham-kshetre/issueforms/pkg/render"
)

func main() {
	ctx := context.Background()

	const outputPath = "feature-request-preview.html"

	out, err := issueforms.Render(ctx, form.MustFeatureRequest(), "html", render.Options{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to render preview: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated form preview (%d bytes) -> %s\n", len(out), outputPath)
}
