package render

import (
	"context"

	"github.com/shubham-kshetre/issueforms/pkg/form"
)

// Renderer converts a template into a byte representation (HTML preview,
// markdown submission body, interactive session output).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, tpl form.Template, options Options) ([]byte, error)
}

// Options describe per-request data that renderers can use to customise their
// output without mutating the template.
type Options struct {
	// Values pre-populates rendered controls keyed by block id.
	Values map[string]string

	// Errors surfaces validation feedback keyed by block id so renderers can
	// show inline messages next to the offending field.
	Errors map[string][]string
}
