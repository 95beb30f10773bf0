package fieldset

// Option configures a Fieldset during New.
type Option func(*config)

type config struct {
	reflector Reflector
	children  []any
	attrs     []func(*Fieldset)
}

// WithReflector installs the host callback notified on every attribute write.
func WithReflector(reflect Reflector) Option {
	return func(cfg *config) {
		if reflect != nil {
			cfg.reflector = reflect
		}
	}
}

// WithChildren appends children in the given order. Nil children are ignored.
func WithChildren(children ...any) Option {
	return func(cfg *config) {
		for _, child := range children {
			if child != nil {
				cfg.children = append(cfg.children, child)
			}
		}
	}
}

// WithName sets the name attribute.
func WithName(name string) Option {
	return attrOption(func(f *Fieldset) { f.SetName(name) })
}

// WithType sets the type attribute.
func WithType(typ string) Option {
	return attrOption(func(f *Fieldset) { f.SetType(typ) })
}

// WithOrientation sets the orientation attribute.
func WithOrientation(orientation string) Option {
	return attrOption(func(f *Fieldset) { f.SetOrientation(orientation) })
}

// WithUnwind marks the fieldset as transparent to its parent.
func WithUnwind(state bool) Option {
	return attrOption(func(f *Fieldset) { f.SetUnwind(state) })
}

// WithRequired sets and propagates the required state.
func WithRequired(state bool) Option {
	return attrOption(func(f *Fieldset) { f.SetRequired(state) })
}

// WithDisabled sets and propagates the disabled state.
func WithDisabled(state bool) Option {
	return attrOption(func(f *Fieldset) { f.SetDisabled(state) })
}

// WithReadOnly sets and propagates the read-only state.
func WithReadOnly(state bool) Option {
	return attrOption(func(f *Fieldset) { f.SetReadOnly(state) })
}

func attrOption(apply func(*Fieldset)) Option {
	return func(cfg *config) {
		cfg.attrs = append(cfg.attrs, apply)
	}
}
