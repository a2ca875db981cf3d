package value

import (
	"encoding/json"
	"maps"
	"math"
	"math/big"
	"reflect"
	"slices"
)

// Coercer converts a foreign scalar into a regular Value. It reports false
// when it does not recognize x.
type Coercer func(x any) (Value, bool)

// Chain returns a Coercer trying each coercer in order.
func Chain(coercers ...Coercer) Coercer {
	return func(x any) (Value, bool) {
		for _, c := range coercers {
			if c == nil {
				continue
			}
			if v, ok := c(x); ok {
				return v, true
			}
		}
		return Value{}, false
	}
}

// CoerceNative recognizes Go numeric and boolean kinds that the closed set
// does not name directly: sized integers, float32, named types built on
// them, json.Number and math/big numbers.
func CoerceNative(x any) (Value, bool) {
	switch n := x.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return Int(i), true
		}
		if f, err := n.Float64(); err == nil {
			return Float(f), true
		}
		return Value{}, false
	case *big.Int:
		if n == nil {
			return Value{}, false
		}
		if n.IsInt64() {
			return Int(n.Int64()), true
		}
		f, _ := new(big.Float).SetInt(n).Float64()
		return Float(f), true
	case *big.Float:
		if n == nil {
			return Value{}, false
		}
		if n.IsInt() {
			if i, acc := n.Int64(); acc == big.Exact {
				return Int(i), true
			}
		}
		f, _ := n.Float64()
		return Float(f), true
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Float(float64(u)), true
		}
		return Int(int64(u)), true
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), true
	}
	return Value{}, false
}

// CoerceGo recognizes plain Go data carried as Foreign: strings, slices,
// string-keyed maps and the kinds FromGo knows. Payloads FromGo leaves
// Foreign are declined; nested ones are left for the encoder to coerce
// element by element.
func CoerceGo(x any) (Value, bool) {
	v := FromGo(x)
	if v.kind == KindForeign {
		return Value{}, false
	}
	return v, true
}

// FromGo converts plain Go data into a Value. Maps are emitted in sorted key
// order since Go maps carry none. Types it does not know become Foreign.
func FromGo(x any) Value {
	switch t := x.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case bool:
		return Bool(t)
	case int:
		return Int(int64(t))
	case int64:
		return Int(t)
	case float64:
		return Float(t)
	case string:
		return String(t)
	case []string:
		return Strings(t...)
	case []any:
		vs := make([]Value, len(t))
		for i, e := range t {
			vs[i] = FromGo(e)
		}
		return Seq(vs...)
	case map[string]any:
		m := NewMapping()
		for _, k := range slices.Sorted(maps.Keys(t)) {
			m.Set(k, FromGo(t[k]))
		}
		return Map(m)
	case *Mapping:
		return Map(t)
	case *NamedList:
		return List(t)
	}
	return Foreign(x)
}
