package controls

import (
	"github.com/goliatone/go-fieldset/pkg/fieldset"
	"github.com/goliatone/go-fieldset/pkg/model"
)

// Select picks a single value from an ordered list of choices.
type Select struct {
	common
	editable

	choices      []Choice
	selected     int
	defaultValue string
}

// NewSelect constructs a select. Without WithDefault nothing is selected.
func NewSelect(name string, options ...Option) *Select {
	cfg := newSettings(options)
	sel := &Select{
		common:   common{name: name, label: cfg.label, description: cfg.description, disabled: cfg.disabled},
		editable: editable{required: cfg.required, readOnly: cfg.readOnly},
		choices:  append([]Choice(nil), cfg.choices...),
		selected: -1,
	}
	if cfg.defaultVal != nil {
		sel.defaultValue = stringify(cfg.defaultVal)
	}
	sel.selected = sel.indexOf(sel.defaultValue)
	return sel
}

// Choices returns a copy of the selectable entries.
func (s *Select) Choices() []Choice {
	return append([]Choice(nil), s.choices...)
}

// SelectedIndex returns the selected position or -1.
func (s *Select) SelectedIndex() int { return s.selected }

// Value returns the selected choice value, or nil without a selection.
func (s *Select) Value() any {
	if s.selected < 0 {
		return nil
	}
	return s.choices[s.selected].Value
}

// SetValue selects the choice matching v. Unknown values clear the selection.
func (s *Select) SetValue(v any) {
	s.selected = s.indexOf(stringify(v))
}

// DefaultValue returns the value selected on reset.
func (s *Select) DefaultValue() any { return s.defaultValue }

// Empty reports whether nothing is selected.
func (s *Select) Empty() bool { return s.selected < 0 }

// Validate fails when a required select has no selection.
func (s *Select) Validate() error {
	if s.required && s.selected < 0 {
		return model.ErrRequired
	}
	return nil
}

// CheckValidity reports whether the select satisfies its constraints.
func (s *Select) CheckValidity() bool {
	return s.disabled || s.Validate() == nil
}

// Choose selects the choice at index i and dispatches change.
func (s *Select) Choose(i int) {
	if i < 0 || i >= len(s.choices) {
		return
	}
	s.Change(s.choices[i].Value)
}

// Change writes v and dispatches change unless the select is disabled or
// read-only.
func (s *Select) Change(v any) {
	if s.disabled || s.readOnly {
		return
	}
	s.SetValue(v)
	s.emit(fieldset.EventChange, s)
}

func (s *Select) indexOf(value string) int {
	if value == "" {
		return -1
	}
	for i, choice := range s.choices {
		if choice.Value == value {
			return i
		}
	}
	return -1
}
