package controls

import (
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-fieldset/pkg/model"
)

// Kind selects the input flavour of an Input or Button.
type Kind string

const (
	KindText     Kind = "text"
	KindEmail    Kind = "email"
	KindPassword Kind = "password"
	KindNumber   Kind = "number"
	KindTextArea Kind = "textarea"
	KindHidden   Kind = "hidden"

	KindSubmit Kind = "submit"
	KindButton Kind = "button"
	KindReset  Kind = "reset"
)

// Choice is a selectable entry of a Select.
type Choice struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Option configures a control at construction. Options that do not apply to
// the constructed control are ignored.
type Option func(*settings)

type settings struct {
	label       string
	description string
	placeholder string
	kind        Kind
	required    bool
	disabled    bool
	readOnly    bool
	defaultVal  any
	rules       []model.ValidationRule
	sanitizer   *bluemonday.Policy
	choices     []Choice
	onClick     func()
}

func newSettings(options []Option) settings {
	var cfg settings
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// WithLabel sets the human readable label used by hosts.
func WithLabel(label string) Option {
	return func(s *settings) {
		s.label = label
	}
}

// WithDescription sets the help text shown next to the control.
func WithDescription(text string) Option {
	return func(s *settings) {
		s.description = text
	}
}

// WithPlaceholder sets the input placeholder.
func WithPlaceholder(placeholder string) Option {
	return func(s *settings) {
		s.placeholder = placeholder
	}
}

// WithKind overrides the control kind.
func WithKind(kind Kind) Option {
	return func(s *settings) {
		if kind != "" {
			s.kind = kind
		}
	}
}

// WithRequired marks the control as required.
func WithRequired(state bool) Option {
	return func(s *settings) {
		s.required = state
	}
}

// WithDisabled marks the control as disabled.
func WithDisabled(state bool) Option {
	return func(s *settings) {
		s.disabled = state
	}
}

// WithReadOnly marks the control as read-only.
func WithReadOnly(state bool) Option {
	return func(s *settings) {
		s.readOnly = state
	}
}

// WithDefault sets the initial value, which reset restores.
func WithDefault(value any) Option {
	return func(s *settings) {
		s.defaultVal = value
	}
}

// WithRules attaches validation constraints.
func WithRules(rules ...model.ValidationRule) Option {
	return func(s *settings) {
		s.rules = append(s.rules, rules...)
	}
}

// WithSanitizer cleans every text write through policy.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(s *settings) {
		if policy != nil {
			s.sanitizer = policy
		}
	}
}

// WithChoices sets the entries of a Select.
func WithChoices(choices ...Choice) Option {
	return func(s *settings) {
		s.choices = append(s.choices, choices...)
	}
}

// WithOnClick registers the Button activation handler.
func WithOnClick(fn func()) Option {
	return func(s *settings) {
		if fn != nil {
			s.onClick = fn
		}
	}
}
