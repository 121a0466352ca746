package form

import "strings"

// BlockType is the fixed enum of block variants a template body may contain.
type BlockType string

const (
	BlockTypeMarkdown BlockType = "markdown"
	BlockTypeInput    BlockType = "input"
	BlockTypeTextarea BlockType = "textarea"
	BlockTypeDropdown BlockType = "dropdown"
)

// KnownBlockTypes returns the supported block type identifiers in a stable
// order. Lint rules and renderers use it to reject anything outside the set.
func KnownBlockTypes() []BlockType {
	return []BlockType{
		BlockTypeMarkdown,
		BlockTypeInput,
		BlockTypeTextarea,
		BlockTypeDropdown,
	}
}

// IsKnownBlockType reports whether the supplied type is part of the supported
// set.
func IsKnownBlockType(t BlockType) bool {
	switch t {
	case BlockTypeMarkdown, BlockTypeInput, BlockTypeTextarea, BlockTypeDropdown:
		return true
	default:
		return false
	}
}

// Template is the top-level issue-form document: descriptive metadata plus an
// ordered body of blocks. Struct fields are annotated so templates round-trip
// through YAML without losing attribute placement.
type Template struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Title       string   `json:"title,omitempty" yaml:"title,omitempty"`
	Labels      []string `json:"labels,omitempty" yaml:"labels,omitempty"`
	Assignees   []string `json:"assignees,omitempty" yaml:"assignees,omitempty"`
	Body        []Block  `json:"body" yaml:"body"`

	// Source records where the template was parsed from. It never serialises.
	Source string `json:"-" yaml:"-"`
}

// Block is one entry in the template body: either a display-only markdown
// block or an input field correlated to submissions by its id.
type Block struct {
	Type        BlockType    `json:"type" yaml:"type"`
	ID          string       `json:"id,omitempty" yaml:"id,omitempty"`
	Attributes  Attributes   `json:"attributes" yaml:"attributes"`
	Validations *Validations `json:"validations,omitempty" yaml:"validations,omitempty"`
}

// Attributes carries the per-block presentation metadata. Which keys apply
// depends on the block type: markdown uses Value, dropdowns use Options, and
// text inputs use Label/Description/Placeholder.
type Attributes struct {
	Label       string   `json:"label,omitempty" yaml:"label,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Value       string   `json:"value,omitempty" yaml:"value,omitempty"`
	Placeholder string   `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Render      string   `json:"render,omitempty" yaml:"render,omitempty"`
	Multiple    bool     `json:"multiple,omitempty" yaml:"multiple,omitempty"`
	Options     []string `json:"options,omitempty" yaml:"options,omitempty"`
	Default     *int     `json:"default,omitempty" yaml:"default,omitempty"`
}

// Validations holds the submission constraints the host enforces for a block.
type Validations struct {
	Required bool `json:"required" yaml:"required"`
}

// Required reports whether the block must be answered before the host accepts
// a submission.
func (b Block) Required() bool {
	return b.Validations != nil && b.Validations.Required
}

// IsField reports whether the block collects input (anything but markdown).
func (b Block) IsField() bool {
	return b.Type != BlockTypeMarkdown
}

// Fields returns the input-collecting blocks in body order.
func (t Template) Fields() []Block {
	if len(t.Body) == 0 {
		return nil
	}
	out := make([]Block, 0, len(t.Body))
	for _, block := range t.Body {
		if block.IsField() {
			out = append(out, block)
		}
	}
	return out
}

// Field looks up a block by id. Markdown blocks never match since they carry
// no id.
func (t Template) Field(id string) (Block, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Block{}, false
	}
	for _, block := range t.Body {
		if block.ID == id {
			return block, true
		}
	}
	return Block{}, false
}

// RequiredIDs returns the ids of blocks flagged required, in body order.
func (t Template) RequiredIDs() []string {
	var out []string
	for _, block := range t.Body {
		if block.Required() && block.ID != "" {
			out = append(out, block.ID)
		}
	}
	return out
}
