package config

import (
	"context"

	"github.com/specialistvlad/stepliteral/internal/value"
)

// Loader is the interface for a format-specific step loader.
type Loader interface {
	// Load reads step definitions from the given files or directories,
	// translates them into the format-agnostic model, and returns a
	// matching Converter.
	Load(ctx context.Context, paths ...string) (*Model, Converter, error)
}

// Converter knows the loader's native value types. Encoders fall back to it
// for values they received as value.Foreign.
type Converter interface {
	Coerce(x any) (value.Value, bool)
}
