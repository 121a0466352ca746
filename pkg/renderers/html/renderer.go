// Package html renders a static HTML preview of an issue-form template so
// authors can inspect a form without pushing it to the host platform.
package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	theme "github.com/goliatone/go-theme"

	"github.com/shubham-kshetre/issueforms/pkg/form"
	"github.com/shubham-kshetre/issueforms/pkg/render"
	rendertemplate "github.com/shubham-kshetre/issueforms/pkg/render/template"
)

// Option configures the renderer before construction.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.Renderer
	themeConfig      *theme.RendererConfig
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.Renderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithThemeConfig passes a resolved go-theme configuration whose CSS vars and
// tokens are exposed to the form template.
func WithThemeConfig(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		c.themeConfig = cfg
	}
}

// Renderer produces the HTML preview.
type Renderer struct {
	templates rendertemplate.Renderer
	theme     *theme.RendererConfig
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the html renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := rendertemplate.NewEngine(
			rendertemplate.WithFS(cfg.templateFS),
			rendertemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, theme: cfg.themeConfig}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render executes the form template against a precomputed view context.
func (r *Renderer) Render(ctx context.Context, tpl form.Template, opts render.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	result, err := r.templates.RenderTemplate("templates/form.tmpl", map[string]any{
		"name":        tpl.Name,
		"description": tpl.Description,
		"blocks":      blockContexts(tpl, opts),
		"theme":       themeContext(r.theme),
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func blockContexts(tpl form.Template, opts render.Options) []map[string]any {
	out := make([]map[string]any, 0, len(tpl.Body))
	for _, block := range tpl.Body {
		if block.Type == form.BlockTypeMarkdown {
			out = append(out, map[string]any{
				"kind":       string(block.Type),
				"value_html": sanitizeHelperText(block.Attributes.Value),
			})
			continue
		}

		entry := map[string]any{
			"kind":             string(block.Type),
			"id":               block.ID,
			"label":            block.Attributes.Label,
			"description_html": sanitizeHelperText(block.Attributes.Description),
			"placeholder":      block.Attributes.Placeholder,
			"value":            opts.Values[block.ID],
			"required":         block.Required(),
			"errors":           opts.Errors[block.ID],
		}

		if block.Type == form.BlockTypeDropdown {
			selected := opts.Values[block.ID]
			if selected == "" {
				if def := block.Attributes.Default; def != nil && *def >= 0 && *def < len(block.Attributes.Options) {
					selected = block.Attributes.Options[*def]
				}
			}
			options := make([]map[string]any, 0, len(block.Attributes.Options))
			for _, option := range block.Attributes.Options {
				options = append(options, map[string]any{
					"value":    option,
					"selected": option == selected,
				})
			}
			entry["options"] = options
		}

		out = append(out, entry)
	}
	return out
}

func themeContext(cfg *theme.RendererConfig) map[string]any {
	if cfg == nil {
		return map[string]any{}
	}
	return map[string]any{
		"name":           cfg.Theme,
		"variant":        cfg.Variant,
		"tokens":         cfg.Tokens,
		"css_vars_style": cssVarsStyle(cfg.CSSVars),
	}
}
