package fieldset

// Fieldset is the composite field controller. The zero value is an empty
// column fieldset; use New to attach a reflector.
type Fieldset struct {
	Dispatcher

	attrs    *Attributes
	children Children
}

// State is a snapshot of every reflected property, suitable for hosts that
// serialise the controller.
type State struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Orientation string `json:"orientation"`
	Unwind      bool   `json:"unwind"`
	Required    bool   `json:"required"`
	Disabled    bool   `json:"disabled"`
	ReadOnly    bool   `json:"readOnly"`
	Empty       bool   `json:"empty"`
	Invalid     bool   `json:"invalid"`
}

// New constructs a Fieldset. Children are attached before state options are
// applied so construction-time states reach them.
func New(options ...Option) *Fieldset {
	cfg := &config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	f := &Fieldset{
		attrs: NewAttributes(cfg.reflector),
	}
	for _, child := range cfg.children {
		f.Append(child)
	}
	for _, apply := range cfg.attrs {
		apply(f)
	}
	return f
}

// Attributes exposes the reflected attribute store. A zero Fieldset gets an
// empty store without a reflector on first use.
func (f *Fieldset) Attributes() *Attributes {
	if f.attrs == nil {
		f.attrs = NewAttributes(nil)
	}
	return f.attrs
}

// Children exposes the ordered child registry.
func (f *Fieldset) Children() *Children {
	return &f.children
}

// Append attaches child at the end of the child list.
func (f *Fieldset) Append(child any) {
	f.Insert(f.children.Len(), child)
}

// Insert attaches child at index i. Out of range indexes append. Children
// implementing Notifier are subscribed so their events drive HandleChange
// and bubble to the fieldset's own listeners.
func (f *Fieldset) Insert(i int, child any) {
	if child == nil {
		return
	}
	e := entry{child: child}
	if n, ok := child.(Notifier); ok {
		e.unsubscribe = n.Subscribe(f.handleEvent)
	}
	f.children.insert(i, e)
}

// Remove detaches child. It reports false when child is not attached.
func (f *Fieldset) Remove(child any) bool {
	idx := f.children.IndexOf(child)
	if idx < 0 {
		return false
	}
	f.RemoveAt(idx)
	return true
}

// RemoveAt detaches the child at index i and returns it, or nil when i is out
// of range.
func (f *Fieldset) RemoveAt(i int) any {
	if i < 0 || i >= f.children.Len() {
		return nil
	}
	e := f.children.remove(i)
	if e.unsubscribe != nil {
		e.unsubscribe()
	}
	return e.child
}

// Name returns the key used by an ancestor aggregation.
func (f *Fieldset) Name() string {
	value, _ := f.Attributes().Get(AttrName)
	return value
}

// SetName updates the name attribute.
func (f *Fieldset) SetName(name string) {
	f.Attributes().Set(AttrName, name)
}

// Type returns the free-form type tag.
func (f *Fieldset) Type() string {
	value, _ := f.Attributes().Get(AttrType)
	return value
}

// SetType updates the type attribute.
func (f *Fieldset) SetType(typ string) {
	f.Attributes().Set(AttrType, typ)
}

// Orientation returns the layout hint, "column" unless set.
func (f *Fieldset) Orientation() string {
	if value, _ := f.Attributes().Get(AttrOrientation); value != "" {
		return value
	}
	return DefaultOrientation
}

// SetOrientation updates the orientation attribute.
func (f *Fieldset) SetOrientation(orientation string) {
	f.Attributes().Set(AttrOrientation, orientation)
}

// Unwind reports whether the fieldset merges flat into its parent.
func (f *Fieldset) Unwind() bool {
	return f.Attributes().Has(AttrUnwind)
}

// SetUnwind toggles the unwind attribute.
func (f *Fieldset) SetUnwind(state bool) {
	f.Attributes().Toggle(AttrUnwind, state)
}

// Required reports the required attribute.
func (f *Fieldset) Required() bool {
	return f.Attributes().Has(AttrRequired)
}

// SetRequired reflects state and propagates it to every child accepting it.
func (f *Fieldset) SetRequired(state bool) {
	f.Attributes().Toggle(AttrRequired, state)
	for child := range f.children.All() {
		if c, ok := child.(RequiredSetter); ok {
			c.SetRequired(state)
		}
	}
}

// ReadOnly reports the readonly attribute.
func (f *Fieldset) ReadOnly() bool {
	return f.Attributes().Has(AttrReadOnly)
}

// SetReadOnly reflects state and propagates it to every child accepting it.
func (f *Fieldset) SetReadOnly(state bool) {
	f.Attributes().Toggle(AttrReadOnly, state)
	for child := range f.children.All() {
		if c, ok := child.(ReadOnlySetter); ok {
			c.SetReadOnly(state)
		}
	}
}

// Disabled reports the disabled attribute.
func (f *Fieldset) Disabled() bool {
	return f.Attributes().Has(AttrDisabled)
}

// SetDisabled reflects state and propagates it to every child accepting it.
func (f *Fieldset) SetDisabled(state bool) {
	f.Attributes().Toggle(AttrDisabled, state)
	for child := range f.children.All() {
		if c, ok := child.(DisabledSetter); ok {
			c.SetDisabled(state)
		}
	}
}

// Empty reports whether every child is empty. A fieldset without children is
// empty; a child that cannot report emptiness counts as non-empty.
func (f *Fieldset) Empty() bool {
	for child := range f.children.All() {
		if !isEmpty(child) {
			return false
		}
	}
	return true
}

// Value synthesises a record from the non-empty children. The result is
// always a map[string]any.
func (f *Fieldset) Value() any {
	return f.Values()
}

// Values is the typed form of Value.
func (f *Fieldset) Values() map[string]any {
	record := make(map[string]any)
	for child := range f.children.All() {
		if isEmpty(child) {
			continue
		}
		if isUnwind(child) {
			mergeValues(record, child)
		} else {
			addValue(record, child)
		}
	}
	return record
}

// SetValue distributes value to the children: unwind children receive value
// as a whole, named children receive the entry stored under their name.
// Entries that are absent from the record leave the child untouched.
func (f *Fieldset) SetValue(value any) {
	record, isRecord := value.(map[string]any)
	for child := range f.children.All() {
		setter, ok := child.(ValueSetter)
		if !ok {
			continue
		}
		if isUnwind(child) {
			setter.SetValue(value)
			continue
		}
		if !isRecord {
			continue
		}
		if entry, present := record[nameOf(child)]; present {
			setter.SetValue(entry)
		}
	}
}

// CheckValidity reports false as soon as a child reports itself invalid.
func (f *Fieldset) CheckValidity() bool {
	for child := range f.children.All() {
		if v, ok := child.(Validator); ok && !v.CheckValidity() {
			return false
		}
	}
	return true
}

// Invalid reports the derived invalid attribute as of the last change cycle.
func (f *Fieldset) Invalid() bool {
	return f.Attributes().Has(AttrInvalid)
}

// Focus moves focus to the first focusable child that is neither disabled
// nor read-only.
func (f *Fieldset) Focus() {
	for child := range f.children.All() {
		focuser, ok := child.(Focuser)
		if !ok || isDisabled(child) || isReadOnly(child) {
			continue
		}
		focuser.Focus()
		return
	}
}

// Reset restores every child to its initial state, then recomputes the
// derived display states once.
func (f *Fieldset) Reset() {
	for child := range f.children.All() {
		if r, ok := child.(Resetter); ok {
			r.Reset()
			continue
		}
		if setter, ok := child.(ValueSetter); ok {
			var def any
			if d, ok := child.(ValueDefaulter); ok {
				def = d.DefaultValue()
			}
			setter.SetValue(def)
		}
		if setter, ok := child.(CheckedSetter); ok {
			var def bool
			if d, ok := child.(CheckedDefaulter); ok {
				def = d.DefaultChecked()
			}
			setter.SetChecked(def)
		}
	}
	f.HandleChange()
}

// HandleChange recomputes the empty and invalid attributes. It runs on every
// keyup or change event raised by a descendant.
func (f *Fieldset) HandleChange() {
	empty := f.Empty()
	f.Attributes().Toggle(AttrEmpty, empty)
	f.Attributes().Toggle(AttrInvalid, !empty && !f.CheckValidity())
}

// State snapshots the reflected properties.
func (f *Fieldset) State() State {
	return State{
		Name:        f.Name(),
		Type:        f.Type(),
		Orientation: f.Orientation(),
		Unwind:      f.Unwind(),
		Required:    f.Required(),
		Disabled:    f.Disabled(),
		ReadOnly:    f.ReadOnly(),
		Empty:       f.Attributes().Has(AttrEmpty),
		Invalid:     f.Attributes().Has(AttrInvalid),
	}
}

func (f *Fieldset) handleEvent(evt Event) {
	if triggersChange(evt) {
		f.HandleChange()
	}
	f.Dispatch(evt)
}

func mergeValues(record map[string]any, child any) {
	values, ok := valueOf(child).(map[string]any)
	if !ok {
		return
	}
	for name, value := range values {
		if value != nil {
			record[name] = value
		}
	}
}

func addValue(record map[string]any, child any) {
	name := nameOf(child)
	if name == "" {
		return
	}
	if value := valueOf(child); value != nil {
		record[name] = value
	}
}

var (
	_ Namer          = (*Fieldset)(nil)
	_ Valuer         = (*Fieldset)(nil)
	_ ValueSetter    = (*Fieldset)(nil)
	_ Emptier        = (*Fieldset)(nil)
	_ Unwinder       = (*Fieldset)(nil)
	_ Focuser        = (*Fieldset)(nil)
	_ Validator      = (*Fieldset)(nil)
	_ Resetter       = (*Fieldset)(nil)
	_ RequiredSetter = (*Fieldset)(nil)
	_ DisabledSetter = (*Fieldset)(nil)
	_ Disabler       = (*Fieldset)(nil)
	_ ReadOnlySetter = (*Fieldset)(nil)
	_ ReadOnlier     = (*Fieldset)(nil)
	_ Notifier       = (*Fieldset)(nil)
)
