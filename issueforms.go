// Package issueforms is the top-level facade for working with declarative
// issue-form templates: loading, parsing, linting, rendering, and filling.
package issueforms

import (
	"context"
	"fmt"
	"io/fs"

	internalloader "github.com/shubham-kshetre/issueforms/internal/loader"
	"github.com/shubham-kshetre/issueforms/pkg/form"
	"github.com/shubham-kshetre/issueforms/pkg/lint"
	"github.com/shubham-kshetre/issueforms/pkg/render"
	"github.com/shubham-kshetre/issueforms/pkg/renderers/html"
	"github.com/shubham-kshetre/issueforms/pkg/renderers/markdown"
	"github.com/shubham-kshetre/issueforms/pkg/renderers/tui"
	"github.com/shubham-kshetre/issueforms/pkg/submission"
)

// Template, Block, and friends are re-exported so quick-start callers only
// need the root import.
type (
	Template = form.Template
	Block    = form.Block
	Source   = form.Source
)

// NewLoader constructs a loader using the internal implementation while
// keeping the concrete type hidden from consumers.
func NewLoader(options ...form.LoaderOption) form.Loader {
	cfg := form.NewLoaderOptions(options...)
	return internalloader.New(cfg)
}

// Load fetches and parses a template from the supplied source.
func Load(ctx context.Context, src form.Source, options ...form.LoaderOption) (form.Template, error) {
	doc, err := NewLoader(options...).Load(ctx, src)
	if err != nil {
		return form.Template{}, err
	}
	return form.Parse(doc)
}

// LoadDir parses every YAML template under the supplied filesystem, typically
// an issue-template directory.
func LoadDir(fsys fs.FS) ([]form.Template, error) {
	return internalloader.LoadDir(fsys)
}

// ParseTemplate decodes raw template YAML. The source string is used in error
// messages and recorded on the result.
func ParseTemplate(data []byte, source string) (form.Template, error) {
	return form.ParseBytes(data, source)
}

// Lint runs the authoring-time validation rules against a template.
func Lint(tpl form.Template) lint.Result {
	return lint.Template(tpl)
}

// DefaultRegistry returns a registry pre-populated with the markdown and html
// renderers. The tui renderer is excluded because it requires a terminal;
// register it explicitly when running interactively.
func DefaultRegistry() (*render.Registry, error) {
	registry := render.NewRegistry()
	registry.MustRegister(markdown.New())

	htmlRenderer, err := html.New()
	if err != nil {
		return nil, fmt.Errorf("issueforms: construct html renderer: %w", err)
	}
	registry.MustRegister(htmlRenderer)

	return registry, nil
}

// Render looks up the named renderer in a default registry and renders the
// template with it.
func Render(ctx context.Context, tpl form.Template, rendererName string, opts render.Options) ([]byte, error) {
	registry, err := DefaultRegistry()
	if err != nil {
		return nil, err
	}
	renderer, err := registry.Get(rendererName)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, tpl, opts)
}

// Fill runs an interactive terminal session for the template and returns the
// collected submission. Values in opts seed the prompts as defaults.
func Fill(ctx context.Context, tpl form.Template, opts render.Options, options ...tui.Option) ([]byte, error) {
	renderer, err := tui.New(options...)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, tpl, opts)
}

// ValidateSubmission checks submitted values against the template's declared
// constraints.
func ValidateSubmission(tpl form.Template, sub submission.Submission) []submission.Problem {
	return submission.Validate(tpl, sub)
}
