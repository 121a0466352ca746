// Package tui drives an interactive fill of an issue-form template in the
// terminal, mirroring the guided form the host platform renders in a browser.
package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shubham-kshetre/issueforms/pkg/form"
	"github.com/shubham-kshetre/issueforms/pkg/render"
	markdownrenderer "github.com/shubham-kshetre/issueforms/pkg/renderers/markdown"
	"github.com/shubham-kshetre/issueforms/pkg/submission"
)

// Renderer implements render.Renderer for terminal-driven sessions.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		driver:       newSurveyDriver(),
		outputFormat: OutputFormatJSON,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.driver == nil {
		r.driver = newSurveyDriver()
	}

	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	if r.outputFormat == OutputFormatMarkdown {
		return "text/markdown; charset=utf-8"
	}
	return "application/json"
}

// Render walks the template body in order, prompting for each field and
// echoing markdown blocks as informational text. Required fields re-prompt
// until the answer satisfies validation.
func (r *Renderer) Render(ctx context.Context, tpl form.Template, opts render.Options) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	sub := submission.New()
	for id, value := range opts.Values {
		sub.Set(id, value)
	}

	for _, block := range tpl.Body {
		if err := r.promptBlock(ctx, block, &sub); err != nil {
			return nil, err
		}
	}

	if problems := submission.Validate(tpl, sub); len(problems) > 0 {
		messages := make([]string, len(problems))
		for i, problem := range problems {
			messages[i] = problem.Error()
		}
		return nil, fmt.Errorf("tui: submission invalid: %s", strings.Join(messages, "; "))
	}

	confirmed, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: "Submit responses?",
		Default: true,
	})
	if err != nil {
		return nil, err
	}
	if !confirmed {
		return nil, ErrAborted
	}

	return r.serialize(ctx, tpl, sub)
}

func (r *Renderer) promptBlock(ctx context.Context, block form.Block, sub *submission.Submission) error {
	switch block.Type {
	case form.BlockTypeMarkdown:
		return r.driver.Info(ctx, strings.TrimSpace(block.Attributes.Value))
	case form.BlockTypeInput:
		return r.promptText(ctx, block, sub, false)
	case form.BlockTypeTextarea:
		return r.promptText(ctx, block, sub, true)
	case form.BlockTypeDropdown:
		return r.promptDropdown(ctx, block, sub)
	default:
		return fmt.Errorf("tui: unsupported block type %q", block.Type)
	}
}

func (r *Renderer) promptText(ctx context.Context, block form.Block, sub *submission.Submission, multiline bool) error {
	label := displayLabel(block)
	help := helpText(block)
	defaultVal, _ := sub.Get(block.ID)
	if defaultVal == "" {
		defaultVal = block.Attributes.Value
	}

	for {
		var (
			response string
			err      error
		)
		if multiline {
			response, err = r.driver.TextArea(ctx, TextAreaConfig{
				Message: label,
				Default: defaultVal,
				Help:    help,
			})
		} else {
			response, err = r.driver.Input(ctx, InputConfig{
				Message: label,
				Default: defaultVal,
				Help:    help,
			})
		}
		if err != nil {
			return err
		}

		if block.Required() && strings.TrimSpace(response) == "" {
			if err := r.driver.Info(ctx, fmt.Sprintf("%s is required", label)); err != nil {
				return err
			}
			continue
		}

		sub.Set(block.ID, response)
		return nil
	}
}

// dropdownSkipLabel is the extra choice optional dropdowns offer so they can
// stay unanswered, the way the host platform leaves them empty.
const dropdownSkipLabel = "(none)"

func (r *Renderer) promptDropdown(ctx context.Context, block form.Block, sub *submission.Submission) error {
	label := displayLabel(block)
	options := block.Attributes.Options

	skippable := !block.Required()
	choices := options
	if skippable {
		choices = append([]string{dropdownSkipLabel}, options...)
	}

	defaultIdx := -1
	if current, ok := sub.Get(block.ID); ok {
		defaultIdx = indexOf(options, current)
	}
	if defaultIdx < 0 && block.Attributes.Default != nil {
		defaultIdx = *block.Attributes.Default
	}
	if skippable {
		if defaultIdx >= 0 {
			defaultIdx++
		} else {
			defaultIdx = 0
		}
	}

	for {
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      label,
			Options:      choices,
			DefaultIndex: defaultIdx,
			Help:         helpText(block),
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(choices) {
			if err := r.driver.Info(ctx, fmt.Sprintf("Invalid %s selection", label)); err != nil {
				return err
			}
			continue
		}

		if skippable {
			if idx == 0 {
				sub.Set(block.ID, "")
				return nil
			}
			idx--
		}

		sub.Set(block.ID, options[idx])
		return nil
	}
}

func (r *Renderer) serialize(ctx context.Context, tpl form.Template, sub submission.Submission) ([]byte, error) {
	if r.outputFormat == OutputFormatMarkdown {
		return markdownrenderer.New().Render(ctx, tpl, render.Options{Values: sub.Values})
	}
	return json.Marshal(sub.Values)
}

func displayLabel(block form.Block) string {
	if block.Attributes.Label != "" {
		return block.Attributes.Label
	}
	return block.ID
}

func helpText(block form.Block) string {
	if block.Attributes.Description != "" {
		return block.Attributes.Description
	}
	return block.Attributes.Placeholder
}
