package form

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes a template document into the canonical Template structure.
// Decoding is strict: unknown keys anywhere in the document are rejected so
// authoring typos surface before the host platform silently drops them.
func Parse(doc Document) (Template, error) {
	return ParseBytes(doc.Raw(), doc.Location())
}

// ParseBytes decodes raw YAML into a Template. The source argument is only
// used to annotate errors and the resulting Template.
func ParseBytes(data []byte, source string) (Template, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Template{}, fmt.Errorf("form: parse %s: document is empty", displaySource(source))
	}

	var tpl Template
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&tpl); err != nil {
		return Template{}, fmt.Errorf("form: parse %s: %w", displaySource(source), err)
	}

	normalizeTemplate(&tpl, source)
	return tpl, nil
}

func normalizeTemplate(tpl *Template, source string) {
	tpl.Source = source
	for i := range tpl.Body {
		block := &tpl.Body[i]
		block.ID = strings.TrimSpace(block.ID)
		if len(block.Attributes.Options) > 0 {
			block.Attributes.Options = append([]string(nil), block.Attributes.Options...)
		}
	}
	if len(tpl.Labels) > 0 {
		tpl.Labels = append([]string(nil), tpl.Labels...)
	}
	if len(tpl.Assignees) > 0 {
		tpl.Assignees = append([]string(nil), tpl.Assignees...)
	}
}

func displaySource(source string) string {
	if strings.TrimSpace(source) == "" {
		return "template"
	}
	return source
}
