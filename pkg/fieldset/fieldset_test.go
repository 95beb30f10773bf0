package fieldset

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// echoField stores whatever is written to it and reports it back.
type echoField struct {
	Dispatcher
	name   string
	value  any
	empty  bool
	unwind bool
	writes int
}

func (e *echoField) Name() string { return e.name }
func (e *echoField) Value() any   { return e.value }
func (e *echoField) SetValue(v any) {
	e.value = v
	e.writes++
}
func (e *echoField) Empty() bool  { return e.empty }
func (e *echoField) Unwind() bool { return e.unwind }

// inert exposes no capabilities at all.
type inert struct{ label string }

type validityField struct {
	empty bool
	valid bool
	calls int
}

func (v *validityField) Empty() bool { return v.empty }
func (v *validityField) CheckValidity() bool {
	v.calls++
	return v.valid
}

type stateField struct {
	required bool
	disabled bool
	readOnly bool
}

func (s *stateField) SetRequired(state bool) { s.required = state }
func (s *stateField) SetDisabled(state bool) { s.disabled = state }
func (s *stateField) SetReadOnly(state bool) { s.readOnly = state }

type focusField struct {
	disabled bool
	readOnly bool
	focused  int
}

func (f *focusField) Focus()         { f.focused++ }
func (f *focusField) Disabled() bool { return f.disabled }
func (f *focusField) ReadOnly() bool { return f.readOnly }

type nativeField struct {
	value          any
	defaultValue   any
	checked        bool
	defaultChecked bool
}

func (n *nativeField) SetValue(v any)        { n.value = v }
func (n *nativeField) DefaultValue() any     { return n.defaultValue }
func (n *nativeField) SetChecked(state bool) { n.checked = state }
func (n *nativeField) DefaultChecked() bool  { return n.defaultChecked }
func (n *nativeField) Empty() bool           { return n.value == nil && !n.checked }

type resettable struct {
	resets int
	value  any
}

func (r *resettable) Reset()         { r.resets++ }
func (r *resettable) SetValue(v any) { r.value = v }

func TestFieldset_NoChildren(t *testing.T) {
	f := New()

	if !f.Empty() {
		t.Fatalf("expected empty fieldset without children")
	}
	if !f.CheckValidity() {
		t.Fatalf("expected vacuous validity")
	}
	if diff := cmp.Diff(map[string]any{}, f.Values()); diff != "" {
		t.Fatalf("value mismatch (-want +got):\n%s", diff)
	}

	f.Focus()
	f.Reset()
	if !f.Attributes().Has(AttrEmpty) {
		t.Fatalf("expected reset to reflect empty attribute")
	}
	if f.Attributes().Has(AttrInvalid) {
		t.Fatalf("did not expect invalid attribute")
	}
}

func TestFieldset_ZeroValue(t *testing.T) {
	var f Fieldset

	f.HandleChange()
	f.SetName("profile")
	f.SetRequired(true)
	f.Append(&resettable{})

	want := State{
		Name:        "profile",
		Orientation: DefaultOrientation,
		Required:    true,
		Empty:       true,
	}
	if diff := cmp.Diff(want, f.State()); diff != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldset_ValueRoundTrip(t *testing.T) {
	a := &echoField{name: "a"}
	b := &echoField{name: "b"}
	f := New(WithChildren(a, b))

	f.SetValue(map[string]any{"a": 1, "b": 2})

	if diff := cmp.Diff(map[string]any{"a": 1, "b": 2}, f.Value()); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldset_ValueRead(t *testing.T) {
	cases := []struct {
		name     string
		children []any
		want     map[string]any
	}{
		{
			name: "unwind flatten",
			children: []any{
				&echoField{unwind: true, value: map[string]any{"x": 1}},
				&echoField{name: "y", value: 2},
			},
			want: map[string]any{"x": 1, "y": 2},
		},
		{
			name: "unwind collision last wins",
			children: []any{
				&echoField{unwind: true, value: map[string]any{"k": 1}},
				&echoField{unwind: true, value: map[string]any{"k": 2}},
			},
			want: map[string]any{"k": 2},
		},
		{
			name: "named child overwritten by later unwind",
			children: []any{
				&echoField{name: "k", value: "plain"},
				&echoField{unwind: true, value: map[string]any{"k": "merged"}},
			},
			want: map[string]any{"k": "merged"},
		},
		{
			name: "nil entries skipped during merge",
			children: []any{
				&echoField{name: "k", value: "kept"},
				&echoField{unwind: true, value: map[string]any{"k": nil, "z": 3}},
			},
			want: map[string]any{"k": "kept", "z": 3},
		},
		{
			name: "non record unwind value ignored",
			children: []any{
				&echoField{unwind: true, value: "scalar"},
				&echoField{name: "y", value: 2},
			},
			want: map[string]any{"y": 2},
		},
		{
			name: "empty children skipped",
			children: []any{
				&echoField{name: "a", value: "x", empty: true},
				&echoField{unwind: true, empty: true, value: map[string]any{"b": 1}},
				&echoField{name: "c", value: "y"},
			},
			want: map[string]any{"c": "y"},
		},
		{
			name: "unnamed and valueless children skipped",
			children: []any{
				&echoField{value: "anonymous"},
				&echoField{name: "nil"},
				&inert{label: "button"},
			},
			want: map[string]any{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := New(WithChildren(tc.children...))
			if diff := cmp.Diff(tc.want, f.Values()); diff != "" {
				t.Fatalf("value mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFieldset_SetValue(t *testing.T) {
	named := &echoField{name: "a", value: "before"}
	missing := &echoField{name: "m", value: "untouched"}
	unwind := &echoField{unwind: true}
	plain := &inert{}
	f := New(WithChildren(named, missing, unwind, plain))

	record := map[string]any{"a": "after", "z": 9}
	f.SetValue(record)

	if named.value != "after" {
		t.Fatalf("expected named child to receive its entry, got %v", named.value)
	}
	if missing.value != "untouched" || missing.writes != 0 {
		t.Fatalf("expected absent entry to leave child untouched, got %v (writes=%d)", missing.value, missing.writes)
	}
	if diff := cmp.Diff(record, unwind.value); diff != "" {
		t.Fatalf("unwind child should receive the whole record (-want +got):\n%s", diff)
	}
}

func TestFieldset_SetValueNilEntryIsDelivered(t *testing.T) {
	child := &echoField{name: "a", value: "before"}
	f := New(WithChildren(child))

	f.SetValue(map[string]any{"a": nil})

	if child.writes != 1 || child.value != nil {
		t.Fatalf("expected explicit nil entry to be written, got %v (writes=%d)", child.value, child.writes)
	}
}

func TestFieldset_SetValueNonRecord(t *testing.T) {
	named := &echoField{name: "a", value: "before"}
	unwind := &echoField{unwind: true}
	f := New(WithChildren(named, unwind))

	f.SetValue("scalar")

	if named.writes != 0 {
		t.Fatalf("expected non-record write to skip named child")
	}
	if unwind.value != "scalar" {
		t.Fatalf("expected unwind child to receive raw value, got %v", unwind.value)
	}
}

func TestFieldset_Empty(t *testing.T) {
	cases := []struct {
		name     string
		children []any
		want     bool
	}{
		{name: "all empty", children: []any{&echoField{empty: true}, &validityField{empty: true}}, want: true},
		{name: "one filled", children: []any{&echoField{empty: true}, &echoField{}}, want: false},
		{name: "child without capability counts as filled", children: []any{&inert{}}, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := New(WithChildren(tc.children...)).Empty(); got != tc.want {
				t.Fatalf("expected empty=%v, got %v", tc.want, got)
			}
		})
	}
}

func TestFieldset_CheckValidityShortCircuits(t *testing.T) {
	first := &validityField{valid: true}
	failing := &validityField{valid: false}
	after := &validityField{valid: true}
	f := New(WithChildren(first, &inert{}, failing, after))

	if f.CheckValidity() {
		t.Fatalf("expected invalid fieldset")
	}
	if after.calls != 0 {
		t.Fatalf("expected validation to stop at first invalid child")
	}
}

func TestFieldset_Propagation(t *testing.T) {
	target := &stateField{}
	nested := New(WithChildren(&stateField{}))
	f := New(WithChildren(target, &inert{}, nested))

	f.SetRequired(true)
	f.SetDisabled(true)
	f.SetReadOnly(true)

	if !target.required || !target.disabled || !target.readOnly {
		t.Fatalf("expected states to propagate, got %+v", *target)
	}
	if !nested.Required() || !nested.Disabled() || !nested.ReadOnly() {
		t.Fatalf("expected nested fieldset to receive states, got %+v", nested.State())
	}
	inner := nested.Children().At(0).(*stateField)
	if !inner.required {
		t.Fatalf("expected propagation to continue through nested fieldset")
	}

	f.SetRequired(false)
	if target.required || f.Required() || f.Attributes().Has(AttrRequired) {
		t.Fatalf("expected required to clear")
	}
}

func TestFieldset_FocusDelegation(t *testing.T) {
	a := &focusField{disabled: true}
	b := &focusField{readOnly: true}
	c := &focusField{}
	d := &focusField{}
	f := New(WithChildren(&inert{}, a, b, c, d))

	f.Focus()

	if a.focused != 0 || b.focused != 0 {
		t.Fatalf("expected disabled and read-only children to be skipped")
	}
	if c.focused != 1 {
		t.Fatalf("expected first eligible child to receive focus")
	}
	if d.focused != 0 {
		t.Fatalf("expected focus scan to stop at first match")
	}
}

func TestFieldset_Reset(t *testing.T) {
	native := &nativeField{value: "typed", defaultValue: "initial", checked: false, defaultChecked: true}
	custom := &resettable{value: "kept"}
	bare := &echoField{name: "bare", value: "x"}

	var emptyWrites int
	f := New(
		WithChildren(native, custom, bare),
		WithReflector(func(name, _ string, _ bool) {
			if name == AttrEmpty {
				emptyWrites++
			}
		}),
	)

	f.Reset()

	if native.value != "initial" || !native.checked {
		t.Fatalf("expected defaults restored, got %+v", *native)
	}
	if custom.resets != 1 || custom.value != "kept" {
		t.Fatalf("expected Reset to be preferred over value defaults, got %+v", *custom)
	}
	if bare.value != nil {
		t.Fatalf("expected value without default to be cleared, got %v", bare.value)
	}
	if emptyWrites != 1 {
		t.Fatalf("expected a single recomputation after reset, got %d", emptyWrites)
	}
}

func TestFieldset_HandleChange(t *testing.T) {
	t.Run("invalid only when non-empty", func(t *testing.T) {
		child := &validityField{empty: true, valid: false}
		f := New(WithChildren(child))

		f.HandleChange()
		if !f.Attributes().Has(AttrEmpty) || f.Invalid() {
			t.Fatalf("expected empty without invalid, got %+v", f.State())
		}

		child.empty = false
		f.HandleChange()
		if f.Attributes().Has(AttrEmpty) || !f.Invalid() {
			t.Fatalf("expected invalid once filled, got %+v", f.State())
		}

		child.valid = true
		f.HandleChange()
		if f.Invalid() {
			t.Fatalf("expected invalid to clear")
		}
	})

	t.Run("events from descendants bubble", func(t *testing.T) {
		leaf := &echoField{name: "leaf", value: "v", empty: true}
		inner := New(WithName("inner"), WithChildren(leaf))
		outer := New(WithChildren(inner))

		var seen []Event
		outer.Subscribe(func(evt Event) { seen = append(seen, evt) })

		leaf.Dispatch(Event{Type: EventKeyUp, Target: leaf})

		if !inner.State().Empty || !outer.State().Empty {
			t.Fatalf("expected both levels to recompute, got inner=%+v outer=%+v", inner.State(), outer.State())
		}
		if len(seen) != 1 {
			t.Fatalf("expected bubbled event, got %d", len(seen))
		}
		if seen[0].Target != leaf {
			t.Fatalf("expected target to be preserved while bubbling")
		}
	})

	t.Run("unrelated events bubble without recompute", func(t *testing.T) {
		leaf := &echoField{name: "leaf", value: "v"}
		f := New(WithChildren(leaf))
		var bubbled int
		f.Subscribe(func(Event) { bubbled++ })

		leaf.Dispatch(Event{Type: "focus", Target: leaf})

		if f.Attributes().Has(AttrEmpty) || len(f.Attributes().Names()) != 0 {
			t.Fatalf("did not expect attribute writes, got %v", f.Attributes().Names())
		}
		if bubbled != 1 {
			t.Fatalf("expected event to bubble once, got %d", bubbled)
		}
	})

	t.Run("removed children stop driving recomputation", func(t *testing.T) {
		leaf := &echoField{name: "leaf", value: "v"}
		f := New(WithChildren(leaf))
		if !f.Remove(leaf) {
			t.Fatalf("expected child to be removed")
		}

		leaf.Dispatch(Event{Type: EventChange, Target: leaf})

		if f.Attributes().Has(AttrEmpty) {
			t.Fatalf("did not expect detached child to trigger change handling")
		}
	})
}

func TestFieldset_Attributes(t *testing.T) {
	type write struct {
		Name    string
		Value   string
		Present bool
	}
	var writes []write
	f := New(
		WithName("address"),
		WithType("group"),
		WithUnwind(true),
		WithReflector(func(name, value string, present bool) {
			writes = append(writes, write{name, value, present})
		}),
	)

	if f.Orientation() != DefaultOrientation {
		t.Fatalf("expected default orientation, got %q", f.Orientation())
	}
	f.SetOrientation("row")
	f.SetUnwind(false)

	want := State{Name: "address", Type: "group", Orientation: "row"}
	if diff := cmp.Diff(want, f.State()); diff != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}

	wantWrites := []write{
		{AttrName, "address", true},
		{AttrType, "group", true},
		{AttrUnwind, "", true},
		{AttrOrientation, "row", true},
		{AttrUnwind, "", false},
	}
	if diff := cmp.Diff(wantWrites, writes); diff != "" {
		t.Fatalf("reflected writes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{AttrName, AttrType, AttrOrientation}, f.Attributes().Names()); diff != "" {
		t.Fatalf("attribute order mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldset_ConstructionStateReachesChildren(t *testing.T) {
	child := &stateField{}
	New(WithRequired(true), WithChildren(child))

	if !child.required {
		t.Fatalf("expected construction-time required to propagate")
	}
}

func TestFieldset_NestedUnwindFieldset(t *testing.T) {
	street := &echoField{name: "street"}
	city := &echoField{name: "city"}
	address := New(WithUnwind(true), WithChildren(street, city))
	email := &echoField{name: "email"}
	form := New(WithChildren(email, address))

	form.SetValue(map[string]any{"email": "a@b.c", "street": "Main", "city": "Oslo"})

	want := map[string]any{"email": "a@b.c", "street": "Main", "city": "Oslo"}
	if diff := cmp.Diff(want, form.Values()); diff != "" {
		t.Fatalf("nested unwind mismatch (-want +got):\n%s", diff)
	}
}

func TestChildren_InsertAndRemove(t *testing.T) {
	first := &inert{label: "first"}
	second := &inert{label: "second"}
	head := &inert{label: "head"}
	f := New(WithChildren(first, second))
	f.Insert(0, head)
	f.Insert(99, nil)

	if diff := cmp.Diff([]any{head, first, second}, f.Children().Slice(), cmp.AllowUnexported(inert{})); diff != "" {
		t.Fatalf("children mismatch (-want +got):\n%s", diff)
	}
	if got := f.RemoveAt(1); got != first {
		t.Fatalf("expected RemoveAt to return removed child")
	}
	if f.Remove(first) {
		t.Fatalf("did not expect removal of detached child")
	}
	if f.Children().At(5) != nil || f.RemoveAt(-1) != nil {
		t.Fatalf("expected out of range access to be a no-op")
	}
	if f.Children().Len() != 2 {
		t.Fatalf("expected two children, got %d", f.Children().Len())
	}
}

func TestChildren_IncomparableChild(t *testing.T) {
	type record map[string]any
	f := New(WithChildren(record{"a": 1}))

	if f.Remove(record{"a": 1}) {
		t.Fatalf("expected incomparable children to be removable only by index")
	}
	if f.RemoveAt(0) == nil {
		t.Fatalf("expected RemoveAt to detach incomparable child")
	}

	type boxed struct{ payload any }
	f = New(WithChildren(boxed{payload: []string{"a"}}, boxed{payload: "b"}))

	if f.Remove(boxed{payload: []string{"a"}}) {
		t.Fatalf("expected a boxed slice to be removable only by index")
	}
	if !f.Remove(boxed{payload: "b"}) {
		t.Fatalf("expected a comparable boxed value to be removed")
	}
	if f.Children().Len() != 1 {
		t.Fatalf("expected one child left, got %d", f.Children().Len())
	}
}
