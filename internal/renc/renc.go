// Package renc encodes values as R source literals.
package renc

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/specialistvlad/stepliteral/internal/value"
)

const target = "R"

// Encoder produces R literals. It is safe for concurrent use.
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

// EncodeValue returns the R literal for v.
func (e *Encoder) EncodeValue(v value.Value) (string, error) {
	switch v.Kind() {
	case value.KindNull:
		return "NULL", nil
	case value.KindString, value.KindPath:
		if strings.ContainsRune(v.AsString(), 0) {
			return "", value.Unsupported(target, v)
		}
		return Quote(v.AsString()), nil
	case value.KindMapping:
		return e.EncodeDict(v.AsMapping())
	case value.KindBool:
		if v.AsBool() {
			return "TRUE", nil
		}
		return "FALSE", nil
	case value.KindInt:
		return strconv.FormatInt(v.AsInt(), 10), nil
	case value.KindFloat:
		return formatFloat(v.AsFloat()), nil
	case value.KindSequence:
		return e.EncodeList(v.AsSeq())
	case value.KindNamedList:
		return e.EncodeNamedList(v.AsNamedList())
	case value.KindForeign:
		if e.coerce != nil {
			if c, ok := e.coerce(v.AsForeign()); ok && c.Kind() != value.KindForeign {
				return e.EncodeValue(c)
			}
		}
	}
	return "", value.Unsupported(target, v)
}

// EncodeNumeric is EncodeValue except that null becomes a numeric NA, for
// slots R expects to be numeric.
func (e *Encoder) EncodeNumeric(v value.Value) (string, error) {
	if v.IsNull() {
		return "as.numeric(NA)", nil
	}
	return e.EncodeValue(v)
}

// EncodeList returns a c(...) vector.
func (e *Encoder) EncodeList(vs []value.Value) (string, error) {
	parts := make([]string, 0, len(vs))
	for i, v := range vs {
		s, err := e.EncodeValue(v)
		if err != nil {
			return "", fmt.Errorf("element %d: %w", i, err)
		}
		parts = append(parts, s)
	}
	return "c(" + strings.Join(parts, ", ") + ")", nil
}

// EncodeDict returns a list("key" = value, ...) in insertion order.
func (e *Encoder) EncodeDict(m *value.Mapping) (string, error) {
	parts := make([]string, 0, m.Len())
	for k, v := range m.All() {
		item, err := e.encodeItem(k, v)
		if err != nil {
			return "", err
		}
		parts = append(parts, item)
	}
	return "list(" + strings.Join(parts, ", ") + ")", nil
}

// EncodeNamedList returns a list holding every position in order, followed
// by one "name" = value entry per name. R lists are positionally indexed
// from 1, so positional access on both sides agrees.
func (e *Encoder) EncodeNamedList(nl *value.NamedList) (string, error) {
	parts := make([]string, 0, nl.Len())
	i := 0
	for v := range nl.Values() {
		s, err := e.EncodeValue(v)
		if err != nil {
			return "", fmt.Errorf("position %d: %w", i, err)
		}
		parts = append(parts, s)
		i++
	}
	for name, v := range nl.Items() {
		item, err := e.encodeItem(name, v)
		if err != nil {
			return "", err
		}
		parts = append(parts, item)
	}
	return "list(" + strings.Join(parts, ", ") + ")", nil
}

func (e *Encoder) encodeItem(key string, v value.Value) (string, error) {
	if strings.ContainsRune(key, 0) {
		return "", value.Unsupported(target, value.String(key))
	}
	s, err := e.EncodeValue(v)
	if err != nil {
		return "", fmt.Errorf("key %q: %w", key, err)
	}
	return Quote(key) + " = " + s, nil
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	case math.IsNaN(f):
		return "NaN"
	}
	return value.FormatFloat(f)
}

// Quote returns s as a double-quoted R string. R strings cannot hold a nul,
// so the encoders reject such strings before quoting.
func Quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\x%02x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
