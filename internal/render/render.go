// Package render assembles a whole step object into the preamble of a
// script in one of the supported languages.
package render

import (
	"fmt"
	"slices"
	"strings"

	"github.com/specialistvlad/stepliteral/internal/juliaenc"
	"github.com/specialistvlad/stepliteral/internal/renc"
	"github.com/specialistvlad/stepliteral/internal/shellenc"
	"github.com/specialistvlad/stepliteral/internal/stepobject"
	"github.com/specialistvlad/stepliteral/internal/value"
)

// Target is a script language.
type Target string

const (
	Bash  Target = "bash"
	R     Target = "r"
	Julia Target = "julia"
)

// Targets lists every supported target.
var Targets = []Target{Bash, R, Julia}

// ParseTarget resolves a target name, case-insensitively.
func ParseTarget(s string) (Target, error) {
	t := Target(strings.ToLower(s))
	if !slices.Contains(Targets, t) {
		return "", fmt.Errorf("unknown target %q: must be one of bash, r, julia", s)
	}
	return t, nil
}

// Options controls naming and classification. Zero fields fall back to the
// step object defaults.
type Options struct {
	Prefix     string
	NamedLists []string
	Dicts      []string
	Coercer    value.Coercer
}

func (o Options) withDefaults() Options {
	if o.Prefix == "" {
		o.Prefix = shellenc.DefaultPrefix
	}
	if o.NamedLists == nil {
		o.NamedLists = stepobject.NamedListAttrs
	}
	if o.Dicts == nil {
		o.Dicts = stepobject.DictAttrs
	}
	return o
}

// Render encodes obj for target.
func Render(target Target, obj shellenc.Object, opts Options) (string, error) {
	opts = opts.withDefaults()
	switch target {
	case Bash:
		enc := shellenc.NewObjectEncoder(opts.NamedLists, opts.Dicts, opts.Prefix, shellenc.WithCoercer(opts.Coercer))
		return enc.Encode(obj)
	case R:
		return assign(obj, opts, " <- ", renc.New(renc.WithCoercer(opts.Coercer)))
	case Julia:
		return assign(obj, opts, " = ", juliaenc.New(juliaenc.WithCoercer(opts.Coercer)))
	}
	return "", fmt.Errorf("unknown target %q", target)
}

// literalEncoder is the operation set shared by the R and Julia encoders.
type literalEncoder interface {
	EncodeValue(value.Value) (string, error)
	EncodeDict(*value.Mapping) (string, error)
	EncodeNamedList(*value.NamedList) (string, error)
}

// assign writes one assignment per attribute, named like the bash arrays.
func assign(obj shellenc.Object, opts Options, op string, enc literalEncoder) (string, error) {
	var lines []string
	for name, v := range obj.Attributes() {
		var (
			lit string
			err error
		)
		switch {
		case slices.Contains(opts.NamedLists, name) && v.Kind() == value.KindNamedList:
			lit, err = enc.EncodeNamedList(v.AsNamedList())
		case slices.Contains(opts.Dicts, name) && v.Kind() == value.KindMapping:
			lit, err = enc.EncodeDict(v.AsMapping())
		default:
			lit, err = enc.EncodeValue(v)
		}
		if err != nil {
			return "", fmt.Errorf("attribute %q: %w", name, err)
		}
		lines = append(lines, varName(opts.Prefix, name)+op+lit)
	}
	return strings.Join(lines, "\n"), nil
}

func varName(prefix, attr string) string {
	return prefix + "_" + strings.ToLower(strings.Trim(attr, "_"))
}
