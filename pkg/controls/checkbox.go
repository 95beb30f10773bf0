package controls

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-fieldset/pkg/fieldset"
	"github.com/goliatone/go-fieldset/pkg/model"
)

// Checkbox is a boolean control. It reports true while checked and is empty
// otherwise, so unchecked boxes are left out of aggregated records.
type Checkbox struct {
	common
	editable

	checked        bool
	defaultChecked bool
}

// NewCheckbox constructs a checkbox. WithDefault accepts a bool or a
// bool-like string.
func NewCheckbox(name string, options ...Option) *Checkbox {
	cfg := newSettings(options)
	cb := &Checkbox{
		common:   common{name: name, label: cfg.label, description: cfg.description, disabled: cfg.disabled},
		editable: editable{required: cfg.required, readOnly: cfg.readOnly},
	}
	cb.defaultChecked = truthy(cfg.defaultVal)
	cb.checked = cb.defaultChecked
	return cb
}

// Checked reports the checked state.
func (cb *Checkbox) Checked() bool { return cb.checked }

// SetChecked writes the checked state without dispatching events.
func (cb *Checkbox) SetChecked(state bool) { cb.checked = state }

// DefaultChecked returns the state restored on reset.
func (cb *Checkbox) DefaultChecked() bool { return cb.defaultChecked }

// Value returns true while checked and nil otherwise.
func (cb *Checkbox) Value() any {
	if !cb.checked {
		return nil
	}
	return true
}

// SetValue checks the box for truthy values.
func (cb *Checkbox) SetValue(v any) { cb.checked = truthy(v) }

// DefaultValue mirrors DefaultChecked.
func (cb *Checkbox) DefaultValue() any { return cb.defaultChecked }

// Empty reports whether the box is unchecked.
func (cb *Checkbox) Empty() bool { return !cb.checked }

// Validate fails when a required box is unchecked.
func (cb *Checkbox) Validate() error {
	if cb.required && !cb.checked {
		return model.ErrRequired
	}
	return nil
}

// CheckValidity reports whether the checkbox satisfies its constraints.
func (cb *Checkbox) CheckValidity() bool {
	return cb.disabled || cb.Validate() == nil
}

// Toggle flips the state and dispatches change.
func (cb *Checkbox) Toggle() {
	cb.Change(!cb.checked)
}

// Change writes v and dispatches change unless the box is disabled or
// read-only.
func (cb *Checkbox) Change(v any) {
	if cb.disabled || cb.readOnly {
		return
	}
	cb.SetValue(v)
	cb.emit(fieldset.EventChange, cb)
}

func truthy(v any) bool {
	switch typed := v.(type) {
	case bool:
		return typed
	case string:
		trimmed := strings.TrimSpace(typed)
		if strings.EqualFold(trimmed, "on") || strings.EqualFold(trimmed, "yes") {
			return true
		}
		parsed, err := strconv.ParseBool(trimmed)
		return err == nil && parsed
	case int:
		return typed != 0
	case float64:
		return typed != 0
	default:
		return false
	}
}
