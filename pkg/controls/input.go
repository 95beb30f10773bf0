package controls

import (
	"errors"
	"fmt"
	"html"
	"net/mail"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-fieldset/pkg/fieldset"
	"github.com/goliatone/go-fieldset/pkg/model"
)

// Input is a single value text control. Number inputs report float64 values;
// every other kind reports strings.
type Input struct {
	common
	editable

	kind         Kind
	placeholder  string
	value        string
	defaultValue string
	rules        []model.ValidationRule
	sanitizer    *bluemonday.Policy
}

// NewInput constructs a text input named name.
func NewInput(name string, options ...Option) *Input {
	cfg := newSettings(options)
	in := &Input{
		common:      common{name: name, label: cfg.label, description: cfg.description, disabled: cfg.disabled},
		editable:    editable{required: cfg.required, readOnly: cfg.readOnly},
		kind:        KindText,
		placeholder: cfg.placeholder,
		rules:       cfg.rules,
		sanitizer:   cfg.sanitizer,
	}
	if cfg.kind != "" {
		in.kind = cfg.kind
	}
	if cfg.defaultVal != nil {
		in.defaultValue = in.clean(stringify(cfg.defaultVal))
	}
	in.value = in.defaultValue
	return in
}

// Kind reports the input flavour.
func (in *Input) Kind() Kind { return in.kind }

// Placeholder returns the placeholder hint.
func (in *Input) Placeholder() string { return in.placeholder }

// Text returns the raw text content.
func (in *Input) Text() string { return in.value }

// Value returns nil when the input is blank or a number input does not parse.
func (in *Input) Value() any {
	if in.value == "" {
		return nil
	}
	if in.kind == KindNumber {
		v, err := strconv.ParseFloat(strings.TrimSpace(in.value), 64)
		if err != nil {
			return nil
		}
		return v
	}
	return in.value
}

// SetValue writes v without dispatching events. Nil clears the input.
func (in *Input) SetValue(v any) {
	in.value = in.clean(stringify(v))
}

// DefaultValue returns the value restored on reset.
func (in *Input) DefaultValue() any { return in.defaultValue }

// Empty reports whether the input holds no text.
func (in *Input) Empty() bool { return in.value == "" }

// Validate returns the first constraint the current value violates.
func (in *Input) Validate() error {
	return in.ValidateText(in.value)
}

// ValidateText checks text against the input constraints without storing it.
func (in *Input) ValidateText(text string) error {
	rules := model.CompileRules(in.required, in.rules)
	if err := rules.ValidateString(text); err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}
	switch in.kind {
	case KindNumber:
		v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return errors.New("not a number")
		}
		return rules.ValidateNumber(v)
	case KindEmail:
		if _, err := mail.ParseAddress(text); err != nil {
			return errors.New("not an email address")
		}
	}
	return nil
}

// CheckValidity reports whether the input satisfies its constraints.
// Disabled inputs are barred from validation and always valid.
func (in *Input) CheckValidity() bool {
	if in.disabled {
		return true
	}
	return in.Validate() == nil
}

// Type simulates user typing: it replaces the text and dispatches keyup.
// Disabled and read-only inputs ignore it.
func (in *Input) Type(text string) {
	if in.disabled || in.readOnly {
		return
	}
	in.value = in.clean(text)
	in.emit(fieldset.EventKeyUp, in)
}

// Change simulates a committed edit and dispatches change.
func (in *Input) Change(v any) {
	if in.disabled || in.readOnly {
		return
	}
	in.SetValue(v)
	in.emit(fieldset.EventChange, in)
}

func (in *Input) clean(text string) string {
	if in.sanitizer == nil || in.kind == KindPassword {
		return text
	}
	return html.UnescapeString(in.sanitizer.Sanitize(text))
}

func stringify(v any) string {
	switch typed := v.(type) {
	case nil:
		return ""
	case string:
		return typed
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(typed), 'f', -1, 32)
	case fmt.Stringer:
		return typed.String()
	default:
		return fmt.Sprint(typed)
	}
}
