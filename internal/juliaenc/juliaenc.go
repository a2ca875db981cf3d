// Package juliaenc encodes values as Julia source literals.
package juliaenc

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/specialistvlad/stepliteral/internal/value"
)

const target = "Julia"

// Encoder produces Julia literals. It is safe for concurrent use.
type Encoder struct {
	coerce value.Coercer
}

type Option func(*Encoder)

// WithCoercer sets the fallback used for Foreign values.
func WithCoercer(c value.Coercer) Option {
	return func(e *Encoder) { e.coerce = c }
}

func New(opts ...Option) *Encoder {
	e := &Encoder{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EncodeValue returns the Julia literal for v.
func (e *Encoder) EncodeValue(v value.Value) (string, error) {
	switch v.Kind() {
	case value.KindNull:
		return "nothing", nil
	case value.KindString, value.KindPath:
		return Quote(v.AsString()), nil
	case value.KindMapping:
		return e.EncodeDict(v.AsMapping())
	case value.KindBool:
		return strconv.FormatBool(v.AsBool()), nil
	case value.KindInt:
		return strconv.FormatInt(v.AsInt(), 10), nil
	case value.KindFloat:
		return formatFloat(v.AsFloat()), nil
	case value.KindSequence:
		return e.EncodeList(v.AsSeq())
	case value.KindNamedList:
		return e.EncodeNamedList(v.AsNamedList())
	case value.KindForeign:
		if e.coerce == nil {
			break
		}
		if c, ok := e.coerce(v.AsForeign()); ok && c.Kind() != value.KindForeign {
			return e.EncodeValue(c)
		}
	}
	return "", value.Unsupported(target, v)
}

// EncodeList returns a [...] vector.
func (e *Encoder) EncodeList(vs []value.Value) (string, error) {
	parts := make([]string, len(vs))
	for i, v := range vs {
		s, err := e.EncodeValue(v)
		if err != nil {
			return "", fmt.Errorf("element %d: %w", i, err)
		}
		parts[i] = s
	}
	return "[" + strings.Join(parts, ", ") + "]", nil
}

// EncodeDict returns a Dict("key" => value, ...) in insertion order.
func (e *Encoder) EncodeDict(m *value.Mapping) (string, error) {
	var parts []string
	for k, v := range m.All() {
		pair, err := e.encodePair(Quote(k), v)
		if err != nil {
			return "", fmt.Errorf("key %q: %w", k, err)
		}
		parts = append(parts, pair)
	}
	return "Dict(" + strings.Join(parts, ", ") + ")", nil
}

// EncodeNamedList returns a single Dict keyed both by 1-based position and
// by name. A named value therefore appears twice, once under each key, so
// that nl[1] and nl["name"] both work in Julia.
func (e *Encoder) EncodeNamedList(nl *value.NamedList) (string, error) {
	var parts []string
	i := 1
	for v := range nl.Values() {
		pair, err := e.encodePair(strconv.Itoa(i), v)
		if err != nil {
			return "", fmt.Errorf("position %d: %w", i, err)
		}
		parts = append(parts, pair)
		i++
	}
	for name, v := range nl.Items() {
		pair, err := e.encodePair(Quote(name), v)
		if err != nil {
			return "", fmt.Errorf("name %q: %w", name, err)
		}
		parts = append(parts, pair)
	}
	return "Dict(" + strings.Join(parts, ", ") + ")", nil
}

func (e *Encoder) encodePair(key string, v value.Value) (string, error) {
	s, err := e.EncodeValue(v)
	if err != nil {
		return "", err
	}
	return key + " => " + s, nil
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

// Quote returns s as a double-quoted Julia string. Dollar signs are escaped
// so the literal is never interpolated.
func Quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\', '"', '$':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\x%02x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
