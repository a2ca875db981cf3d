package value

import (
	"errors"
	"fmt"
)

// ErrUnsupportedValue is matched by every UnsupportedValueError.
var ErrUnsupportedValue = errors.New("unsupported value")

// UnsupportedValueError reports a value that an encoder cannot express in
// its target language, even after coercion.
type UnsupportedValueError struct {
	Target string
	Kind   Kind
	Value  any
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("unsupported value for conversion into %s: %v (%s)", e.Target, e.Value, e.Kind)
}

// Is reports whether target is ErrUnsupportedValue.
func (e *UnsupportedValueError) Is(target error) bool {
	return target == ErrUnsupportedValue
}

// Unsupported builds the error for v.
func Unsupported(target string, v Value) error {
	var raw any = Text(v)
	if v.kind == KindForeign {
		raw = v.foreign
	}
	return &UnsupportedValueError{Target: target, Kind: v.kind, Value: raw}
}
