// Package markdown renders a filled template the way the host platform turns
// a form submission into an issue body: one "### Label" section per field.
package markdown

import (
	"context"
	"strings"

	"github.com/shubham-kshetre/issueforms/pkg/form"
	"github.com/shubham-kshetre/issueforms/pkg/render"
)

// NoResponse is the marker the host platform emits for empty optional fields.
const NoResponse = "_No response_"

// Renderer produces the submission markdown body.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the markdown renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return "markdown"
}

func (r *Renderer) ContentType() string {
	return "text/markdown; charset=utf-8"
}

// Render walks the body in order, emitting one section per input field.
// Markdown blocks are display-only and never appear in the submission body.
func (r *Renderer) Render(ctx context.Context, tpl form.Template, opts render.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var b strings.Builder
	for _, block := range tpl.Body {
		if !block.IsField() {
			continue
		}

		label := block.Attributes.Label
		if label == "" {
			label = block.ID
		}

		b.WriteString("### ")
		b.WriteString(label)
		b.WriteString("\n\n")

		value := strings.TrimSpace(opts.Values[block.ID])
		if value == "" {
			value = NoResponse
		}
		b.WriteString(value)
		b.WriteString("\n\n")
	}

	return []byte(strings.TrimRight(b.String(), "\n") + "\n"), nil
}
