package form_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/shubham-kshetre/issueforms/pkg/form"
)

func TestParseBytes_Minimal(t *testing.T) {
	raw := []byte(`
name: Bug Report
description: File a bug
body:
  - type: markdown
    attributes:
      value: Thanks for reporting!
  - type: input
    id: summary
    attributes:
      label: Summary
      placeholder: One line summary
    validations:
      required: true
`)

	tpl, err := form.ParseBytes(raw, "bug.yml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if tpl.Name != "Bug Report" {
		t.Fatalf("name mismatch: %q", tpl.Name)
	}
	if tpl.Source != "bug.yml" {
		t.Fatalf("source mismatch: %q", tpl.Source)
	}
	if got := len(tpl.Body); got != 2 {
		t.Fatalf("expected 2 blocks, got %d", got)
	}
	if tpl.Body[0].Type != form.BlockTypeMarkdown || tpl.Body[0].ID != "" {
		t.Fatalf("first block should be an id-less markdown block: %#v", tpl.Body[0])
	}
	if !tpl.Body[1].Required() {
		t.Fatalf("summary should be required")
	}
}

func TestParseBytes_Errors(t *testing.T) {
	cases := map[string]string{
		"empty document": "",
		"whitespace":     "   \n\t",
		"unknown key": `
name: X
description: Y
bodyy:
  - type: input
`,
		"unknown attribute": `
name: X
description: Y
body:
  - type: input
    id: a
    attributes:
      labell: broken
`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := form.ParseBytes([]byte(raw), "broken.yml"); err == nil {
				t.Fatalf("expected parse error")
			}
		})
	}
}

func TestFeatureRequest_Scenario(t *testing.T) {
	tpl := form.MustFeatureRequest()

	if got := len(tpl.Body); got != 15 {
		t.Fatalf("expected 15 body blocks, got %d", got)
	}

	first := tpl.Body[0]
	if first.Type != form.BlockTypeMarkdown {
		t.Fatalf("first block should be markdown, got %q", first.Type)
	}
	if first.ID != "" {
		t.Fatalf("first block should carry no id, got %q", first.ID)
	}
	if first.Validations != nil {
		t.Fatalf("first block should carry no validations")
	}

	if got := len(tpl.Fields()); got != 14 {
		t.Fatalf("expected 14 fields, got %d", got)
	}

	var dropdowns []form.Block
	for _, block := range tpl.Body {
		if block.Type == form.BlockTypeDropdown {
			dropdowns = append(dropdowns, block)
		}
	}
	if len(dropdowns) != 1 {
		t.Fatalf("expected exactly one dropdown, got %d", len(dropdowns))
	}
	if dropdowns[0].ID != "priority" {
		t.Fatalf("dropdown should be priority, got %q", dropdowns[0].ID)
	}

	wantOptions := []string{"low", "medium", "high", "critical"}
	if diff := cmp.Diff(wantOptions, dropdowns[0].Attributes.Options); diff != "" {
		t.Fatalf("priority options mismatch (-want +got):\n%s", diff)
	}

	wantRequired := []string{
		"title", "description", "use_case", "current_behavior",
		"proposed_behavior", "benefits", "priority", "environment",
	}
	if diff := cmp.Diff(wantRequired, tpl.RequiredIDs()); diff != "" {
		t.Fatalf("required ids mismatch (-want +got):\n%s", diff)
	}
}

func TestFeatureRequest_RequiredFieldsCarryHelperText(t *testing.T) {
	tpl := form.MustFeatureRequest()

	for _, block := range tpl.Body {
		if !block.Required() {
			continue
		}
		if strings.TrimSpace(block.Attributes.Description) == "" {
			t.Fatalf("required field %q is missing a description", block.ID)
		}
		if block.Type == form.BlockTypeDropdown {
			// Dropdowns restrict input via options instead of ghost text.
			continue
		}
		if strings.TrimSpace(block.Attributes.Placeholder) == "" {
			t.Fatalf("required field %q is missing a placeholder", block.ID)
		}
	}
}

func TestFeatureRequest_UniqueIDs(t *testing.T) {
	tpl := form.MustFeatureRequest()

	seen := make(map[string]struct{})
	for _, block := range tpl.Body {
		if block.ID == "" {
			continue
		}
		if _, exists := seen[block.ID]; exists {
			t.Fatalf("duplicate id %q", block.ID)
		}
		seen[block.ID] = struct{}{}
	}
}

func TestTemplate_FieldLookup(t *testing.T) {
	tpl := form.MustFeatureRequest()

	block, ok := tpl.Field("priority")
	if !ok {
		t.Fatalf("priority field not found")
	}
	if block.Type != form.BlockTypeDropdown {
		t.Fatalf("priority should be a dropdown, got %q", block.Type)
	}

	if _, ok := tpl.Field("nope"); ok {
		t.Fatalf("lookup of unknown id should fail")
	}
	if _, ok := tpl.Field(""); ok {
		t.Fatalf("lookup of empty id should fail")
	}
}
