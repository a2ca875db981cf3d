package value

import (
	"fmt"
	"iter"
)

// NamedList is an ordered list where any position may additionally carry a
// name. A name is an alias for its position, not a separate slot: the
// positional and the named view read the same stored value.
//
// Names may repeat across positions. Lookups by name resolve to the last
// position holding that name.
type NamedList struct {
	values []Value
	names  []string // "" marks an unnamed position
}

// NewNamedList returns a named list holding vs as unnamed positions.
func NewNamedList(vs ...Value) *NamedList {
	nl := &NamedList{}
	for _, v := range vs {
		nl.Append(v)
	}
	return nl
}

// Append adds an unnamed position.
func (nl *NamedList) Append(v Value) {
	nl.values = append(nl.values, v)
	nl.names = append(nl.names, "")
}

// AppendNamed adds a position carrying name.
func (nl *NamedList) AppendNamed(name string, v Value) error {
	if name == "" {
		return fmt.Errorf("namedlist: empty name for position %d", len(nl.values))
	}
	nl.values = append(nl.values, v)
	nl.names = append(nl.names, name)
	return nil
}

// SetName attaches name to the position at index, replacing any previous
// name of that position.
func (nl *NamedList) SetName(name string, index int) error {
	if name == "" {
		return fmt.Errorf("namedlist: empty name for position %d", index)
	}
	if index < 0 || index >= len(nl.values) {
		return fmt.Errorf("namedlist: index %d out of range [0, %d)", index, len(nl.values))
	}
	nl.names[index] = name
	return nil
}

// Len returns the number of positions.
func (nl *NamedList) Len() int {
	if nl == nil {
		return 0
	}
	return len(nl.values)
}

// At returns the value at position i.
func (nl *NamedList) At(i int) Value { return nl.values[i] }

// Name returns the name carried by position i, if any.
func (nl *NamedList) Name(i int) (string, bool) {
	n := nl.names[i]
	return n, n != ""
}

// Get returns the value of the last position named name.
func (nl *NamedList) Get(name string) (Value, bool) {
	if nl == nil || name == "" {
		return Value{}, false
	}
	for i := len(nl.names) - 1; i >= 0; i-- {
		if nl.names[i] == name {
			return nl.values[i], true
		}
	}
	return Value{}, false
}

// Values iterates the positional view.
func (nl *NamedList) Values() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		if nl == nil {
			return
		}
		for _, v := range nl.values {
			if !yield(v) {
				return
			}
		}
	}
}

// AllItems iterates every position in order as (name, value), with an empty
// name for unnamed positions.
func (nl *NamedList) AllItems() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if nl == nil {
			return
		}
		for i, v := range nl.values {
			if !yield(nl.names[i], v) {
				return
			}
		}
	}
}

// Items iterates the named view: one entry per distinct name, ordered by the
// name's first appearance and carrying the value Get would return.
func (nl *NamedList) Items() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for k, v := range nl.namedMapping().All() {
			if !yield(k, v) {
				return
			}
		}
	}
}

func (nl *NamedList) namedMapping() *Mapping {
	m := NewMapping()
	if nl == nil {
		return m
	}
	for i, name := range nl.names {
		if name != "" {
			m.Set(name, nl.values[i])
		}
	}
	return m
}

// PlainStrings returns a copy with every Path turned into a String.
func (nl *NamedList) PlainStrings() *NamedList {
	out := &NamedList{
		values: make([]Value, nl.Len()),
		names:  make([]string, nl.Len()),
	}
	for i := 0; i < nl.Len(); i++ {
		out.values[i] = nl.values[i].PlainStrings()
		out.names[i] = nl.names[i]
	}
	return out
}
