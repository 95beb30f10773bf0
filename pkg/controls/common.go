package controls

import (
	"github.com/goliatone/go-fieldset/pkg/fieldset"
)

// common holds the state every control shares.
type common struct {
	fieldset.Dispatcher

	name        string
	label       string
	description string
	disabled    bool
	focused     bool
}

func (c *common) Name() string { return c.name }

// Label returns the configured label, falling back to the name.
func (c *common) Label() string {
	if c.label != "" {
		return c.label
	}
	return c.name
}

// Description returns the help text, usually markdown.
func (c *common) Description() string { return c.description }

func (c *common) Disabled() bool { return c.disabled }

func (c *common) SetDisabled(state bool) {
	c.disabled = state
	if state {
		c.focused = false
	}
}

// Focus focuses the control unless it is disabled.
func (c *common) Focus() {
	if c.disabled {
		return
	}
	c.focused = true
}

// Blur drops focus.
func (c *common) Blur() { c.focused = false }

// Focused reports whether the control holds focus.
func (c *common) Focused() bool { return c.focused }

func (c *common) emit(kind string, target any) {
	c.Dispatch(fieldset.Event{Type: kind, Target: target})
}

// editable adds the states of controls that accept user data.
type editable struct {
	required bool
	readOnly bool
}

func (e *editable) Required() bool         { return e.required }
func (e *editable) SetRequired(state bool) { e.required = state }
func (e *editable) ReadOnly() bool         { return e.readOnly }
func (e *editable) SetReadOnly(state bool) { e.readOnly = state }
