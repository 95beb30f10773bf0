// Package fieldset implements a composite form field that aggregates an
// ordered set of child fields into a single name/value contract.
//
// A Fieldset reads a combined record from its children, writes a record back
// to them, mirrors the required/disabled/read-only states onto every child
// that accepts them, and folds emptiness and validity across the set.
// Children are plain Go values; the controller discovers what each child can
// do through the small capability interfaces declared in capabilities.go
// (Namer, Valuer, ValueSetter, Emptier, Unwinder, Focuser, Validator,
// Resetter, ...). A child lacking a capability is skipped for the matching
// operation and never produces an error.
//
// Children marked with Unwind are transparent: when the parent writes, they
// receive the parent's entire record, and when the parent reads, their record
// is merged flat into the parent's result (later children win on key
// collisions).
//
// The derived display states "empty" and "invalid" are recomputed whenever a
// descendant dispatches a keyup or change Event and are mirrored onto the
// fieldset Attributes. Hosts observe attribute changes by installing a
// Reflector with WithReflector.
//
// A Fieldset is single-threaded: every method runs synchronously and re-reads
// the live child list, so callers must not use it from multiple goroutines.
package fieldset
