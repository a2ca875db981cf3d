package shellenc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/specialistvlad/stepliteral/internal/value"
)

const target = "bash"

// ErrEmptyKey is returned for a mapping entry whose key is empty, which no
// bash array can hold.
var ErrEmptyKey = errors.New("empty key cannot be a bash array subscript")

// Encoder produces bash array literals. It is safe for concurrent use.
type Encoder struct {
	coerce value.Coercer
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithCoercer sets the fallback used for Foreign values.
func WithCoercer(c value.Coercer) Option {
	return func(e *Encoder) { e.coerce = c }
}

// New returns an Encoder.
func New(opts ...Option) *Encoder {
	e := &Encoder{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EncodeValue returns v as a double-quoted bash word. Containers are
// flattened to space-separated tokens.
func (e *Encoder) EncodeValue(v value.Value) (string, error) {
	s, err := e.flatten(v)
	if err != nil {
		return "", err
	}
	return Quote(s), nil
}

// EncodeList returns an indexed array literal.
func (e *Encoder) EncodeList(vs []value.Value) (string, error) {
	var b strings.Builder
	b.WriteByte('(')
	for i, v := range vs {
		s, err := e.EncodeValue(v)
		if err != nil {
			return "", fmt.Errorf("element %d: %w", i, err)
		}
		b.WriteByte(' ')
		b.WriteString(s)
	}
	b.WriteString(" )")
	return b.String(), nil
}

// DictToArray returns an associative array literal with one element per
// key, in insertion order. Values are stored as host text, so a nested list
// reads ['a', 'b'] on the bash side.
func (e *Encoder) DictToArray(m *value.Mapping) (string, error) {
	var b strings.Builder
	b.WriteString("( ")
	for k, v := range m.All() {
		key, err := arrayKey(k)
		if err != nil {
			return "", err
		}
		text, err := e.text(v)
		if err != nil {
			return "", fmt.Errorf("key %q: %w", k, err)
		}
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(Quote(text))
		b.WriteByte(' ')
	}
	b.WriteByte(')')
	return b.String(), nil
}

// EncodeNamedList returns an associative array holding every position under
// its 0-based index and, for named positions, the same text again under the
// name. Nested lists are joined with spaces since arrays cannot nest.
func (e *Encoder) EncodeNamedList(nl *value.NamedList) (string, error) {
	var b strings.Builder
	b.WriteByte('(')
	i := 0
	for name, v := range nl.AllItems() {
		text, err := e.flatten(v)
		if err != nil {
			return "", fmt.Errorf("position %d: %w", i, err)
		}
		val := Quote(text)
		b.WriteString(" [" + strconv.Itoa(i) + "]=" + val)
		if name != "" {
			key, err := arrayKey(name)
			if err != nil {
				return "", err
			}
			b.WriteString(" " + key + "=" + val)
		}
		i++
	}
	b.WriteString(" )")
	return b.String(), nil
}

// resolve coerces every Foreign value inside v. A payload the coercer does
// not recognize is an UnsupportedValueError.
func (e *Encoder) resolve(v value.Value) (value.Value, error) {
	switch v.Kind() {
	case value.KindForeign:
		if e.coerce != nil {
			if c, ok := e.coerce(v.AsForeign()); ok && c.Kind() != value.KindForeign {
				return e.resolve(c)
			}
		}
		return value.Value{}, value.Unsupported(target, v)
	case value.KindSequence:
		out := make([]value.Value, len(v.AsSeq()))
		for i, elem := range v.AsSeq() {
			r, err := e.resolve(elem)
			if err != nil {
				return value.Value{}, fmt.Errorf("element %d: %w", i, err)
			}
			out[i] = r
		}
		return value.Seq(out...), nil
	case value.KindMapping:
		out := value.NewMapping()
		for k, elem := range v.AsMapping().All() {
			r, err := e.resolve(elem)
			if err != nil {
				return value.Value{}, fmt.Errorf("key %q: %w", k, err)
			}
			out.Set(k, r)
		}
		return value.Map(out), nil
	case value.KindNamedList:
		out := value.NewNamedList()
		i := 0
		for name, elem := range v.AsNamedList().AllItems() {
			r, err := e.resolve(elem)
			if err != nil {
				return value.Value{}, fmt.Errorf("position %d: %w", i, err)
			}
			if name == "" {
				out.Append(r)
			} else if err := out.AppendNamed(name, r); err != nil {
				return value.Value{}, err
			}
			i++
		}
		return value.List(out), nil
	}
	return v, nil
}

func (e *Encoder) text(v value.Value) (string, error) {
	r, err := e.resolve(v)
	if err != nil {
		return "", err
	}
	return value.Text(r), nil
}

func (e *Encoder) flatten(v value.Value) (string, error) {
	r, err := e.resolve(v)
	if err != nil {
		return "", err
	}
	switch r.Kind() {
	case value.KindSequence, value.KindNamedList, value.KindMapping:
		var tokens []string
		for elem := range r.Elements() {
			tokens = append(tokens, value.Text(elem))
		}
		return strings.Join(tokens, " "), nil
	}
	return value.Text(r), nil
}

// Quote wraps s in double quotes, escaping the characters bash still
// expands inside them.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\', '"', '$', '`':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// arrayKey renders an array subscript. Plain words are written bare and
// anything else is quoted. Bash rejects an empty subscript.
func arrayKey(k string) (string, error) {
	if k == "" {
		return "", ErrEmptyKey
	}
	if isPlainKey(k) {
		return "[" + k + "]", nil
	}
	return "[" + Quote(k) + "]", nil
}

func isPlainKey(k string) bool {
	if k == "" {
		return false
	}
	for i := 0; i < len(k); i++ {
		c := k[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '_', c == '.', c == '-', c == '+', c == ':', c == '/', c == '@':
		default:
			return false
		}
	}
	return true
}
