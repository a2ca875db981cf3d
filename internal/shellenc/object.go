package shellenc

import (
	"fmt"
	"iter"
	"strings"

	"github.com/specialistvlad/stepliteral/internal/value"
)

// DefaultPrefix names the arrays when no prefix is configured.
const DefaultPrefix = "snakemake"

// Object is the read side of a workflow host object: its attributes in
// declaration order.
type Object interface {
	Attributes() iter.Seq2[string, value.Value]
}

// ObjectEncoder turns a host object into a set of declare -A statements.
// Attributes classified as named lists or dicts each get their own array
// named prefix_attr; every other attribute lands in the catch-all array
// named prefix, which is declared last.
type ObjectEncoder struct {
	enc        *Encoder
	namedLists map[string]bool
	dicts      map[string]bool
	prefix     string
}

// NewObjectEncoder returns an ObjectEncoder for the given classification.
// An empty prefix selects DefaultPrefix.
func NewObjectEncoder(namedLists, dicts []string, prefix string, opts ...Option) *ObjectEncoder {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	o := &ObjectEncoder{
		enc:        New(opts...),
		namedLists: make(map[string]bool, len(namedLists)),
		dicts:      make(map[string]bool, len(dicts)),
		prefix:     prefix,
	}
	for _, n := range namedLists {
		o.namedLists[n] = true
	}
	for _, d := range dicts {
		o.dicts[d] = true
	}
	return o
}

// Prefix returns the array name prefix in use.
func (o *ObjectEncoder) Prefix() string { return o.prefix }

// Encode renders obj. It fails when a classified attribute holds a value of
// the wrong shape; null is accepted as empty.
func (o *ObjectEncoder) Encode(obj Object) (string, error) {
	var arrays []string
	rest := value.NewMapping()

	for name, v := range obj.Attributes() {
		switch {
		case o.namedLists[name]:
			nl, err := asNamedList(name, v)
			if err != nil {
				return "", err
			}
			lit, err := o.enc.EncodeNamedList(nl)
			if err != nil {
				return "", fmt.Errorf("attribute %q: %w", name, err)
			}
			arrays = append(arrays, o.VarName(name)+"="+lit)
		case o.dicts[name]:
			m, err := asMapping(name, v)
			if err != nil {
				return "", err
			}
			lit, err := o.enc.DictToArray(m)
			if err != nil {
				return "", fmt.Errorf("attribute %q: %w", name, err)
			}
			arrays = append(arrays, o.VarName(name)+"="+lit)
		default:
			rest.Set(name, v)
		}
	}
	lit, err := o.enc.DictToArray(rest)
	if err != nil {
		return "", err
	}
	arrays = append(arrays, o.prefix+"="+lit)

	for i, a := range arrays {
		arrays[i] = "declare -A " + a
	}
	return strings.Join(arrays, "\n"), nil
}

// VarName returns the array name used for attribute name.
func (o *ObjectEncoder) VarName(name string) string {
	return o.prefix + "_" + strings.ToLower(strings.Trim(name, "_"))
}

func asNamedList(name string, v value.Value) (*value.NamedList, error) {
	switch v.Kind() {
	case value.KindNamedList:
		return v.AsNamedList(), nil
	case value.KindNull:
		return value.NewNamedList(), nil
	case value.KindSequence:
		return value.NewNamedList(v.AsSeq()...), nil
	}
	return nil, fmt.Errorf("attribute %q: expected a named list, got %s", name, v.Kind())
}

func asMapping(name string, v value.Value) (*value.Mapping, error) {
	switch v.Kind() {
	case value.KindMapping:
		return v.AsMapping(), nil
	case value.KindNull:
		return value.NewMapping(), nil
	}
	return nil, fmt.Errorf("attribute %q: expected a mapping, got %s", name, v.Kind())
}
