package submission_test

import (
	"strings"
	"testing"

	"github.com/shubham-kshetre/issueforms/pkg/form"
	"github.com/shubham-kshetre/issueforms/pkg/submission"
)

func completeSubmission() submission.Submission {
	sub := submission.New()
	sub.Set("title", "Add dark mode")
	sub.Set("description", "A dark color scheme for the UI")
	sub.Set("use_case", "Working at night without eye strain")
	sub.Set("current_behavior", "Only a light theme exists")
	sub.Set("proposed_behavior", "A toggle switches the palette")
	sub.Set("benefits", "Better accessibility")
	sub.Set("priority", "high")
	sub.Set("environment", "macOS 14.4, version 1.2.3")
	return sub
}

func TestValidate_Complete(t *testing.T) {
	tpl := form.MustFeatureRequest()
	if problems := submission.Validate(tpl, completeSubmission()); len(problems) != 0 {
		t.Fatalf("expected no problems, got %#v", problems)
	}
}

func TestValidate_MissingRequired(t *testing.T) {
	tpl := form.MustFeatureRequest()
	sub := completeSubmission()
	delete(sub.Values, "priority")
	sub.Set("benefits", "   ")

	problems := submission.Validate(tpl, sub)
	if len(problems) != 2 {
		t.Fatalf("expected 2 problems, got %#v", problems)
	}
	if !hasProblem(problems, "priority", "a value is required") {
		t.Fatalf("missing priority problem: %#v", problems)
	}
	if !hasProblem(problems, "benefits", "a value is required") {
		t.Fatalf("missing benefits problem: %#v", problems)
	}
}

func TestValidate_DropdownValueOutsideOptions(t *testing.T) {
	tpl := form.MustFeatureRequest()
	sub := completeSubmission()
	sub.Set("priority", "urgent")

	problems := submission.Validate(tpl, sub)
	if !hasProblem(problems, "priority", "not one of the declared options") {
		t.Fatalf("expected dropdown membership problem, got %#v", problems)
	}
}

func TestValidate_UnknownID(t *testing.T) {
	tpl := form.MustFeatureRequest()
	sub := completeSubmission()
	sub.Set("severity", "high")

	problems := submission.Validate(tpl, sub)
	if !hasProblem(problems, "severity", "does not correspond to any field") {
		t.Fatalf("expected unknown id problem, got %#v", problems)
	}
}

func hasProblem(problems []submission.Problem, field, fragment string) bool {
	for _, problem := range problems {
		if problem.Field == field && strings.Contains(problem.Message, fragment) {
			return true
		}
	}
	return false
}
