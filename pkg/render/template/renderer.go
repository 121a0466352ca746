package template

// Renderer mirrors the github.com/goliatone/go-template engine contract,
// providing the seam HTML renderers rely on so tests can swap in fakes.
type Renderer interface {
	RenderTemplate(name string, data map[string]any) (string, error)
	RenderString(templateContent string, data map[string]any) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
}
