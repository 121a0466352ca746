// Package lint performs authoring-time validation of issue-form templates.
// It checks the structural invariants the host platform enforces before a
// template renders: unique ids, mandated labels, non-empty dropdown options,
// and display-only markdown blocks.
package lint

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shubham-kshetre/issueforms/pkg/form"
)

// Issue represents a validation error with optional location metadata.
type Issue struct {
	Path    string `json:"path,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Result captures validation outcomes for a single template.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Template runs every lint rule against the supplied template and returns the
// collected issues. A template with no issues reports Valid.
func Template(tpl form.Template) Result {
	var issues []Issue

	if strings.TrimSpace(tpl.Name) == "" {
		issues = append(issues, Issue{Path: "name", Message: "template name is required"})
	}
	if strings.TrimSpace(tpl.Description) == "" {
		issues = append(issues, Issue{Path: "description", Message: "template description is required"})
	}
	if len(tpl.Body) == 0 {
		issues = append(issues, Issue{Path: "body", Message: "template body is empty"})
	}

	seen := make(map[string]int)
	for idx, block := range tpl.Body {
		path := fmt.Sprintf("body[%d]", idx)
		issues = append(issues, lintBlock(path, block)...)

		if block.ID == "" {
			continue
		}
		if prev, exists := seen[block.ID]; exists {
			issues = append(issues, Issue{
				Path:    path,
				Field:   block.ID,
				Message: fmt.Sprintf("duplicate id %q (already used by body[%d])", block.ID, prev),
			})
			continue
		}
		seen[block.ID] = idx
	}

	return Result{Valid: len(issues) == 0, Issues: issues}
}

func lintBlock(path string, block form.Block) []Issue {
	var issues []Issue

	if !form.IsKnownBlockType(block.Type) {
		issues = append(issues, Issue{
			Path:    path,
			Field:   block.ID,
			Message: fmt.Sprintf("unsupported block type %q (supported: %s)", block.Type, supportedTypes()),
		})
		return issues
	}

	if block.ID != "" && !idPattern.MatchString(block.ID) {
		issues = append(issues, Issue{
			Path:    path,
			Field:   block.ID,
			Message: fmt.Sprintf("id %q contains characters outside [A-Za-z0-9_-]", block.ID),
		})
	}

	switch block.Type {
	case form.BlockTypeMarkdown:
		issues = append(issues, lintMarkdown(path, block)...)
	case form.BlockTypeDropdown:
		issues = append(issues, lintDropdown(path, block)...)
	default:
		issues = append(issues, lintTextField(path, block)...)
	}

	return issues
}

func lintMarkdown(path string, block form.Block) []Issue {
	var issues []Issue
	if strings.TrimSpace(block.Attributes.Value) == "" {
		issues = append(issues, Issue{Path: path, Message: "markdown block requires attributes.value"})
	}
	if block.ID != "" {
		issues = append(issues, Issue{Path: path, Field: block.ID, Message: "markdown block must not carry an id"})
	}
	if block.Validations != nil {
		issues = append(issues, Issue{Path: path, Message: "markdown block must not carry validations"})
	}
	if block.Attributes.Placeholder != "" {
		issues = append(issues, Issue{Path: path, Message: "markdown block must not carry a placeholder"})
	}
	return issues
}

func lintDropdown(path string, block form.Block) []Issue {
	issues := requireLabel(path, block)

	options := block.Attributes.Options
	if len(options) == 0 {
		issues = append(issues, Issue{Path: path, Field: block.ID, Message: "dropdown requires a non-empty options list"})
		return issues
	}

	seen := make(map[string]struct{}, len(options))
	for i, option := range options {
		trimmed := strings.TrimSpace(option)
		if trimmed == "" {
			issues = append(issues, Issue{
				Path:    path,
				Field:   block.ID,
				Message: fmt.Sprintf("dropdown option %d is empty", i),
			})
			continue
		}
		if _, exists := seen[trimmed]; exists {
			issues = append(issues, Issue{
				Path:    path,
				Field:   block.ID,
				Message: fmt.Sprintf("dropdown option %q appears more than once", trimmed),
			})
			continue
		}
		seen[trimmed] = struct{}{}
	}

	if def := block.Attributes.Default; def != nil {
		if *def < 0 || *def >= len(options) {
			issues = append(issues, Issue{
				Path:    path,
				Field:   block.ID,
				Message: fmt.Sprintf("dropdown default %d is out of range (0..%d)", *def, len(options)-1),
			})
		}
	}

	if block.Attributes.Placeholder != "" {
		issues = append(issues, Issue{Path: path, Field: block.ID, Message: "dropdown must not carry a placeholder"})
	}

	return issues
}

func lintTextField(path string, block form.Block) []Issue {
	issues := requireLabel(path, block)
	if len(block.Attributes.Options) > 0 {
		issues = append(issues, Issue{
			Path:    path,
			Field:   block.ID,
			Message: fmt.Sprintf("%s block must not carry options", block.Type),
		})
	}
	return issues
}

func requireLabel(path string, block form.Block) []Issue {
	if strings.TrimSpace(block.Attributes.Label) != "" {
		return nil
	}
	return []Issue{{
		Path:    path,
		Field:   block.ID,
		Message: fmt.Sprintf("%s block requires attributes.label", block.Type),
	}}
}

func supportedTypes() string {
	known := form.KnownBlockTypes()
	parts := make([]string, len(known))
	for i, t := range known {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}
