package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Text renders v the way the workflow host prints a value: strings and
// paths verbatim, None/True/False for null and booleans, and list or dict
// displays for containers. Shell arrays can only hold strings, so this is
// the text the shell encoder stores.
func Text(v Value) string {
	var b strings.Builder
	writeText(&b, v, false)
	return b.String()
}

// Repr is like Text but quotes strings, as inside a container display.
func Repr(v Value) string {
	var b strings.Builder
	writeText(&b, v, true)
	return b.String()
}

func writeText(b *strings.Builder, v Value, quoted bool) {
	switch v.kind {
	case KindNull:
		b.WriteString("None")
	case KindBool:
		if v.b {
			b.WriteString("True")
		} else {
			b.WriteString("False")
		}
	case KindInt:
		b.WriteString(strconv.FormatInt(v.i, 10))
	case KindFloat:
		b.WriteString(FormatFloat(v.f))
	case KindString, KindPath:
		if quoted {
			b.WriteString(QuoteRepr(v.s))
		} else {
			b.WriteString(v.s)
		}
	case KindSequence, KindNamedList:
		b.WriteByte('[')
		i := 0
		for e := range v.Elements() {
			if i > 0 {
				b.WriteString(", ")
			}
			writeText(b, e, true)
			i++
		}
		b.WriteByte(']')
	case KindMapping:
		b.WriteByte('{')
		i := 0
		for k, e := range v.m.All() {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(QuoteRepr(k))
			b.WriteString(": ")
			writeText(b, e, true)
			i++
		}
		b.WriteByte('}')
	default:
		fmt.Fprint(b, v.foreign)
	}
}

// FormatFloat returns the shortest decimal text that round-trips f. Integral
// values keep a ".0" suffix and exponent notation is used below 1e-4 and
// from 1e16 upwards. Non-finite values render as inf, -inf and nan.
func FormatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	_, expText, _ := strings.Cut(s, "e")
	exp, _ := strconv.Atoi(expText)
	if exp < -4 || exp >= 16 {
		return s
	}
	s = strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// QuoteRepr quotes s with single quotes, switching to double quotes when s
// contains a single quote but no double quote.
func QuoteRepr(s string) string {
	q := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}
	var b strings.Builder
	b.WriteByte(q)
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == rune(q):
			b.WriteByte('\\')
			b.WriteByte(q)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case unicode.IsPrint(r):
			b.WriteRune(r)
		case r < 0x100:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r < 0x10000:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			fmt.Fprintf(&b, `\U%08x`, r)
		}
	}
	b.WriteByte(q)
	return b.String()
}
