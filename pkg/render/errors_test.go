package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/shubham-kshetre/issueforms/pkg/form"
	"github.com/shubham-kshetre/issueforms/pkg/render"
)

func errorsTemplate() form.Template {
	return form.Template{
		Name:        "Feature Request",
		Description: "Suggest a new feature",
		Body: []form.Block{
			{Type: form.BlockTypeInput, ID: "title", Attributes: form.Attributes{Label: "Feature title"}},
			{Type: form.BlockTypeDropdown, ID: "priority", Attributes: form.Attributes{
				Label:   "Priority",
				Options: []string{"low", "high"},
			}},
		},
	}
}

func TestMapErrorPayload(t *testing.T) {
	mapping := render.MapErrorPayload(errorsTemplate(), map[string][]string{
		"title":    {"must not be empty", " must not be empty "},
		"priority": {"must be one of the listed options"},
		"severity": {"unknown field message"},
		"form":     {"submission rejected"},
	})

	wantFields := map[string][]string{
		"title":    {"must not be empty"},
		"priority": {"must be one of the listed options"},
	}
	if diff := cmp.Diff(wantFields, mapping.Fields); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}

	if len(mapping.Form) != 2 {
		t.Fatalf("expected unknown keys to fall back to form-level, got %v", mapping.Form)
	}
}

func TestMapErrorPayload_FieldIDShadowingFormLevelKey(t *testing.T) {
	tpl := form.Template{
		Name:        "Feature Request",
		Description: "Suggest a new feature",
		Body: []form.Block{
			{Type: form.BlockTypeInput, ID: "form", Attributes: form.Attributes{Label: "Form name"}},
		},
	}

	mapping := render.MapErrorPayload(tpl, map[string][]string{
		"form": {"must not be empty"},
		"base": {"submission rejected"},
	})

	wantFields := map[string][]string{
		"form": {"must not be empty"},
	}
	if diff := cmp.Diff(wantFields, mapping.Fields); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"submission rejected"}, mapping.Form); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}
}

func TestMapErrorPayload_Empty(t *testing.T) {
	mapping := render.MapErrorPayload(errorsTemplate(), nil)
	if mapping.Fields != nil || mapping.Form != nil {
		t.Fatalf("expected empty mapping, got %+v", mapping)
	}
}

func TestMergeFormErrors(t *testing.T) {
	got := render.MergeFormErrors(
		[]string{"submission rejected", " "},
		"try again later",
		"submission rejected",
	)
	want := []string{"submission rejected", "try again later"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("merged errors mismatch (-want +got):\n%s", diff)
	}
}
