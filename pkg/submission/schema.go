package submission

import (
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/shubham-kshetre/issueforms/pkg/form"
)

// Schema builds a JSON Schema describing a valid submission payload for the
// supplied template: one string property per field, enum constraints for
// dropdowns, and a required list mirroring the template's validations.
// Unknown properties are rejected so stray ids surface during validation.
func Schema(tpl form.Template) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	schema.Title = tpl.Name
	schema.Description = tpl.Description
	schema.AdditionalProperties = openapi3.AdditionalProperties{Has: openapi3.BoolPtr(false)}

	for _, block := range tpl.Body {
		if !block.IsField() || block.ID == "" {
			continue
		}

		prop := openapi3.NewStringSchema()
		prop.Title = block.Attributes.Label
		prop.Description = block.Attributes.Description

		if block.Type == form.BlockTypeDropdown {
			prop.Enum = make([]any, 0, len(block.Attributes.Options))
			for _, option := range block.Attributes.Options {
				prop.Enum = append(prop.Enum, option)
			}
		}

		if block.Required() {
			prop.MinLength = 1
			schema.Required = append(schema.Required, block.ID)
		}

		schema = schema.WithProperty(block.ID, prop)
	}

	return schema
}

// SchemaJSON serialises the submission schema for consumption outside Go
// (documentation pipelines, client-side validators).
func SchemaJSON(tpl form.Template) ([]byte, error) {
	data, err := json.MarshalIndent(Schema(tpl), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("submission: marshal schema for %q: %w", tpl.Name, err)
	}
	return data, nil
}

// ValidateJSON decodes a JSON submission payload and validates it against the
// template's generated schema.
func ValidateJSON(tpl form.Template, payload []byte) error {
	var values map[string]any
	if err := json.Unmarshal(payload, &values); err != nil {
		return fmt.Errorf("submission: decode payload: %w", err)
	}
	if err := Schema(tpl).VisitJSON(values); err != nil {
		return fmt.Errorf("submission: payload does not satisfy template %q: %w", tpl.Name, err)
	}
	return nil
}
