package controls

// Button is an action control. It carries no user data, so it always reports
// itself empty and never contributes to an aggregated record.
type Button struct {
	common

	kind    Kind
	onClick func()
}

// NewButton constructs a button. The default kind is submit.
func NewButton(name string, options ...Option) *Button {
	cfg := newSettings(options)
	btn := &Button{
		common:  common{name: name, label: cfg.label, description: cfg.description, disabled: cfg.disabled},
		kind:    KindSubmit,
		onClick: cfg.onClick,
	}
	if cfg.kind != "" {
		btn.kind = cfg.kind
	}
	return btn
}

// Kind reports the button type.
func (b *Button) Kind() Kind { return b.kind }

// Empty is always true.
func (b *Button) Empty() bool { return true }

// Click runs the activation handler unless the button is disabled. It reports
// whether the handler ran.
func (b *Button) Click() bool {
	if b.disabled || b.onClick == nil {
		return false
	}
	b.onClick()
	return true
}
