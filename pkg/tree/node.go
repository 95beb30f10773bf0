package tree

import (
	"github.com/goliatone/go-fieldset/pkg/controls"
	"github.com/goliatone/go-fieldset/pkg/model"
)

// Node kinds understood by Build.
const (
	KindFieldset = "fieldset"
	KindInput    = "input"
	KindTextArea = "textarea"
	KindSelect   = "select"
	KindCheckbox = "checkbox"
	KindButton   = "button"
)

// Node is the declarative description of one element. Type carries the
// element-specific flavour: the free-form tag of a fieldset, the input kind
// of an input, or the button type.
type Node struct {
	Kind        string                 `json:"kind" yaml:"kind"`
	Name        string                 `json:"name,omitempty" yaml:"name,omitempty"`
	Type        string                 `json:"type,omitempty" yaml:"type,omitempty"`
	Label       string                 `json:"label,omitempty" yaml:"label,omitempty"`
	Description string                 `json:"description,omitempty" yaml:"description,omitempty"`
	Placeholder string                 `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Orientation string                 `json:"orientation,omitempty" yaml:"orientation,omitempty"`
	Unwind      bool                   `json:"unwind,omitempty" yaml:"unwind,omitempty"`
	Required    bool                   `json:"required,omitempty" yaml:"required,omitempty"`
	Disabled    bool                   `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	ReadOnly    bool                   `json:"readOnly,omitempty" yaml:"readOnly,omitempty"`
	Sanitize    bool                   `json:"sanitize,omitempty" yaml:"sanitize,omitempty"`
	Default     any                    `json:"default,omitempty" yaml:"default,omitempty"`
	Value       any                    `json:"value,omitempty" yaml:"value,omitempty"`
	Options     []controls.Choice      `json:"options,omitempty" yaml:"options,omitempty"`
	Validations []model.ValidationRule `json:"validations,omitempty" yaml:"validations,omitempty"`
	Children    []Node                 `json:"children,omitempty" yaml:"children,omitempty"`
}
