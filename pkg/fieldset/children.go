package fieldset

import (
	"iter"
	"reflect"
	"slices"
)

// Children is the ordered child registry of a Fieldset. Insertion order is
// document order; every fold walks it front to back.
type Children struct {
	entries []entry
}

type entry struct {
	child       any
	unsubscribe func()
}

// Len reports the number of children.
func (c *Children) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// At returns the child at index i, or nil when i is out of range.
func (c *Children) At(i int) any {
	if c == nil || i < 0 || i >= len(c.entries) {
		return nil
	}
	return c.entries[i].child
}

// All iterates children in document order.
func (c *Children) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		if c == nil {
			return
		}
		for _, e := range c.entries {
			if !yield(e.child) {
				return
			}
		}
	}
}

// Slice returns a copy of the children.
func (c *Children) Slice() []any {
	if c == nil || len(c.entries) == 0 {
		return nil
	}
	out := make([]any, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.child
	}
	return out
}

// IndexOf returns the position of child or -1. Children holding incomparable
// values can only be addressed by index.
func (c *Children) IndexOf(child any) int {
	if c == nil || child == nil || !reflect.ValueOf(child).Comparable() {
		return -1
	}
	for i, e := range c.entries {
		if reflect.TypeOf(e.child) != reflect.TypeOf(child) || !reflect.ValueOf(e.child).Comparable() {
			continue
		}
		if e.child == child {
			return i
		}
	}
	return -1
}

func (c *Children) insert(i int, e entry) {
	if i < 0 || i > len(c.entries) {
		i = len(c.entries)
	}
	c.entries = slices.Insert(c.entries, i, e)
}

func (c *Children) remove(i int) entry {
	e := c.entries[i]
	c.entries = slices.Delete(c.entries, i, i+1)
	return e
}
