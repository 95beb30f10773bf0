package fieldset

// Attribute names reflected by a Fieldset.
const (
	AttrName        = "name"
	AttrType        = "type"
	AttrOrientation = "orientation"
	AttrUnwind      = "unwind"
	AttrRequired    = "required"
	AttrReadOnly    = "readonly"
	AttrDisabled    = "disabled"
	AttrEmpty       = "empty"
	AttrInvalid     = "invalid"
)

// DefaultOrientation is reported when no orientation attribute is set.
const DefaultOrientation = "column"

// Reflector observes attribute mutations. present is false when the
// attribute was removed, in which case value is empty.
type Reflector func(name, value string, present bool)

// Attributes is an ordered string attribute store. Boolean attributes are
// keyed by presence, mirroring markup semantics.
type Attributes struct {
	names     []string
	values    map[string]string
	reflector Reflector
}

// NewAttributes returns an empty store that reports mutations to reflect.
func NewAttributes(reflect Reflector) *Attributes {
	return &Attributes{
		values:    make(map[string]string),
		reflector: reflect,
	}
}

// Get returns the attribute value and whether it is present.
func (a *Attributes) Get(name string) (string, bool) {
	if a == nil {
		return "", false
	}
	value, ok := a.values[name]
	return value, ok
}

// Has reports attribute presence.
func (a *Attributes) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Set stores value under name, keeping first-insertion order.
func (a *Attributes) Set(name, value string) {
	if a.values == nil {
		a.values = make(map[string]string)
	}
	if _, exists := a.values[name]; !exists {
		a.names = append(a.names, name)
	}
	a.values[name] = value
	a.reflect(name, value, true)
}

// Remove deletes the attribute. Removing an absent attribute still notifies
// the reflector so hosts observe every write.
func (a *Attributes) Remove(name string) {
	if _, exists := a.values[name]; exists {
		delete(a.values, name)
		for i, existing := range a.names {
			if existing == name {
				a.names = append(a.names[:i], a.names[i+1:]...)
				break
			}
		}
	}
	a.reflect(name, "", false)
}

// Toggle sets the attribute to the empty string when state is true and
// removes it otherwise.
func (a *Attributes) Toggle(name string, state bool) {
	if state {
		a.Set(name, "")
		return
	}
	a.Remove(name)
}

// Names lists present attributes in insertion order.
func (a *Attributes) Names() []string {
	if a == nil || len(a.names) == 0 {
		return nil
	}
	return append([]string(nil), a.names...)
}

// Map returns a copy of the present attributes.
func (a *Attributes) Map() map[string]string {
	if a == nil || len(a.values) == 0 {
		return nil
	}
	out := make(map[string]string, len(a.values))
	for name, value := range a.values {
		out[name] = value
	}
	return out
}

func (a *Attributes) reflect(name, value string, present bool) {
	if a.reflector != nil {
		a.reflector(name, value, present)
	}
}
