package value

import (
	"fmt"
	"iter"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindPath
	KindSequence
	KindMapping
	KindNamedList
	KindForeign
)

var kindNames = [...]string{
	KindNull:      "null",
	KindBool:      "bool",
	KindInt:       "int",
	KindFloat:     "float",
	KindString:    "string",
	KindPath:      "path",
	KindSequence:  "sequence",
	KindMapping:   "mapping",
	KindNamedList: "namedlist",
	KindForeign:   "foreign",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Value is a closed tagged union over the shapes a workflow host hands to
// the encoders. The zero Value is Null.
type Value struct {
	kind    Kind
	b       bool
	i       int64
	f       float64
	s       string
	seq     []Value
	m       *Mapping
	nl      *NamedList
	foreign any
}

func Null() Value { return Value{} }

func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

func Int(i int64) Value { return Value{kind: KindInt, i: i} }

func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

func String(s string) Value { return Value{kind: KindString, s: s} }

// Path is a filesystem path. Encoders quote it exactly like a String.
func Path(p string) Value { return Value{kind: KindPath, s: p} }

func Seq(vs ...Value) Value { return Value{kind: KindSequence, seq: vs} }

// Foreign wraps a value of a type outside the closed set. It can only be
// encoded through a Coercer.
func Foreign(x any) Value { return Value{kind: KindForeign, foreign: x} }

// Strings builds a Sequence of String values.
func Strings(ss ...string) Value {
	vs := make([]Value, len(ss))
	for i, s := range ss {
		vs[i] = String(s)
	}
	return Seq(vs...)
}

// Map wraps m as a Value. A nil mapping is treated as empty.
func Map(m *Mapping) Value {
	if m == nil {
		m = NewMapping()
	}
	return Value{kind: KindMapping, m: m}
}

// List wraps nl as a Value. A nil named list is treated as empty.
func List(nl *NamedList) Value {
	if nl == nil {
		nl = NewNamedList()
	}
	return Value{kind: KindNamedList, nl: nl}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) AsBool() bool { return v.b }

func (v Value) AsInt() int64 { return v.i }

func (v Value) AsFloat() float64 { return v.f }

// AsString returns the text of a String or Path value.
func (v Value) AsString() string { return v.s }

// AsSeq returns the elements of a Sequence value.
func (v Value) AsSeq() []Value { return v.seq }

// AsMapping returns the mapping of a Mapping value, or nil.
func (v Value) AsMapping() *Mapping { return v.m }

// AsNamedList returns the named list of a NamedList value, or nil.
func (v Value) AsNamedList() *NamedList { return v.nl }

// AsForeign returns the raw payload of a Foreign value.
func (v Value) AsForeign() any { return v.foreign }

// Elements iterates the positional members of sequence-like values: the
// elements of a Sequence, the positions of a NamedList and the keys of a
// Mapping. Other kinds yield nothing.
func (v Value) Elements() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		switch v.kind {
		case KindSequence:
			for _, e := range v.seq {
				if !yield(e) {
					return
				}
			}
		case KindNamedList:
			for e := range v.nl.Values() {
				if !yield(e) {
					return
				}
			}
		case KindMapping:
			for k := range v.m.All() {
				if !yield(String(k)) {
					return
				}
			}
		}
	}
}

// PlainStrings returns a copy of v where every Path is replaced by the
// equivalent String, recursing into containers.
func (v Value) PlainStrings() Value {
	switch v.kind {
	case KindPath:
		return String(v.s)
	case KindSequence:
		out := make([]Value, len(v.seq))
		for i, e := range v.seq {
			out[i] = e.PlainStrings()
		}
		return Seq(out...)
	case KindMapping:
		out := NewMapping()
		for k, e := range v.m.All() {
			out.Set(k, e.PlainStrings())
		}
		return Map(out)
	case KindNamedList:
		return List(v.nl.PlainStrings())
	}
	return v
}

// String renders v the way the host prints it; see Text.
func (v Value) String() string { return Text(v) }
