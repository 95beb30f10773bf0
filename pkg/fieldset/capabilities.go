package fieldset

// Namer exposes the key a child contributes under in an aggregated record.
type Namer interface {
	Name() string
}

// Valuer exposes a child's current value. A nil result means "no value" and
// is never written into an aggregated record.
type Valuer interface {
	Value() any
}

// ValueSetter accepts a value written down from a parent.
type ValueSetter interface {
	SetValue(value any)
}

// Emptier reports whether a child currently holds no user data.
type Emptier interface {
	Empty() bool
}

// Unwinder marks children whose record is merged flat into the parent.
type Unwinder interface {
	Unwind() bool
}

// Focuser receives focus delegated by a parent.
type Focuser interface {
	Focus()
}

// Validator reports whether a child satisfies its own constraints.
type Validator interface {
	CheckValidity() bool
}

// Resetter restores a child to its initial state.
type Resetter interface {
	Reset()
}

// ValueDefaulter exposes the value a child returns to on reset when it does
// not implement Resetter.
type ValueDefaulter interface {
	DefaultValue() any
}

// CheckedSetter is implemented by checkable children.
type CheckedSetter interface {
	SetChecked(checked bool)
}

// CheckedDefaulter exposes the checked state restored on reset.
type CheckedDefaulter interface {
	DefaultChecked() bool
}

// RequiredSetter receives the required state propagated by a parent.
type RequiredSetter interface {
	SetRequired(required bool)
}

// Disabler reports the disabled state of a child.
type Disabler interface {
	Disabled() bool
}

// DisabledSetter receives the disabled state propagated by a parent.
type DisabledSetter interface {
	SetDisabled(disabled bool)
}

// ReadOnlier reports the read-only state of a child.
type ReadOnlier interface {
	ReadOnly() bool
}

// ReadOnlySetter receives the read-only state propagated by a parent.
type ReadOnlySetter interface {
	SetReadOnly(readOnly bool)
}

// Notifier is implemented by children that raise change events. The returned
// function removes the subscription.
type Notifier interface {
	Subscribe(listener Listener) (unsubscribe func())
}

func isEmpty(child any) bool {
	e, ok := child.(Emptier)
	return ok && e.Empty()
}

func isUnwind(child any) bool {
	u, ok := child.(Unwinder)
	return ok && u.Unwind()
}

func isDisabled(child any) bool {
	d, ok := child.(Disabler)
	return ok && d.Disabled()
}

func isReadOnly(child any) bool {
	r, ok := child.(ReadOnlier)
	return ok && r.ReadOnly()
}

func nameOf(child any) string {
	if n, ok := child.(Namer); ok {
		return n.Name()
	}
	return ""
}

func valueOf(child any) any {
	if v, ok := child.(Valuer); ok {
		return v.Value()
	}
	return nil
}
