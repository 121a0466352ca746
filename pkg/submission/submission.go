// Package submission models the values a user enters into a rendered form
// and validates them against the template that produced the form.
package submission

import (
	"fmt"
	"strings"

	"github.com/shubham-kshetre/issueforms/pkg/form"
)

// Submission holds user-entered values keyed by block id.
type Submission struct {
	Values map[string]string `json:"values"`
}

// New returns an empty submission ready to collect values.
func New() Submission {
	return Submission{Values: make(map[string]string)}
}

// Set records a value for the supplied block id.
func (s *Submission) Set(id, value string) {
	if s.Values == nil {
		s.Values = make(map[string]string)
	}
	s.Values[id] = value
}

// Get returns the value recorded for the supplied block id.
func (s Submission) Get(id string) (string, bool) {
	value, ok := s.Values[id]
	return value, ok
}

// Problem describes a single submission validation failure.
type Problem struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (p Problem) Error() string {
	if p.Field == "" {
		return p.Message
	}
	return p.Field + ": " + p.Message
}

// Validate checks the submission against the template: required blocks must
// hold non-empty values, dropdown values must come from the declared options,
// and values must not reference unknown ids.
func Validate(tpl form.Template, sub Submission) []Problem {
	var problems []Problem

	for _, block := range tpl.Body {
		if !block.IsField() || block.ID == "" {
			continue
		}
		value := strings.TrimSpace(sub.Values[block.ID])

		if value == "" {
			if block.Required() {
				problems = append(problems, Problem{Field: block.ID, Message: "a value is required"})
			}
			continue
		}

		if block.Type == form.BlockTypeDropdown && !containsOption(block.Attributes.Options, value) {
			problems = append(problems, Problem{
				Field:   block.ID,
				Message: fmt.Sprintf("value %q is not one of the declared options", value),
			})
		}
	}

	for id := range sub.Values {
		if _, ok := tpl.Field(id); !ok {
			problems = append(problems, Problem{
				Field:   id,
				Message: "value does not correspond to any field in the template",
			})
		}
	}

	return problems
}

func containsOption(options []string, value string) bool {
	for _, option := range options {
		if strings.TrimSpace(option) == value {
			return true
		}
	}
	return false
}
