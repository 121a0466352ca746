package form

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Marshal serialises a Template back to YAML. Attribute ordering follows the
// canonical struct layout, so parse → Marshal → parse yields a structurally
// equal Template even when the input used different key order or whitespace.
func Marshal(tpl Template) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(tpl); err != nil {
		return nil, fmt.Errorf("form: marshal template %q: %w", tpl.Name, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("form: marshal template %q: %w", tpl.Name, err)
	}
	return buf.Bytes(), nil
}
