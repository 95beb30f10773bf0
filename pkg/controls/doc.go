// Package controls provides concrete child fields for fieldset trees. Each
// control behaves like its native form counterpart: programmatic writes
// (SetValue, SetChecked) are silent, while the user-simulation methods (Type,
// Change, Toggle) update the value and dispatch keyup or change events that
// an enclosing fieldset.Fieldset listens to.
//
// Controls only implement the capabilities their native counterpart has. A
// Button, for example, accepts the disabled state but not required or
// read-only, so a parent fieldset skips it when propagating those states.
package controls
