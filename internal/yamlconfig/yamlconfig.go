// Package yamlconfig reads workflow config files into ordered values.
// Mapping keys keep their document order, which a decode into Go maps
// would lose.
package yamlconfig

import (
	"errors"
	"fmt"
	"os"

	"github.com/specialistvlad/stepliteral/internal/value"
	"gopkg.in/yaml.v3"
)

// LoadFile reads and decodes the config file at path.
func LoadFile(path string) (*value.Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	m, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}
	return m, nil
}

// Decode parses a YAML document whose root must be a mapping. An empty
// document yields an empty mapping.
func Decode(data []byte) (*value.Mapping, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return value.NewMapping(), nil
	}
	v, err := nodeToValue(doc.Content[0])
	if err != nil {
		return nil, err
	}
	switch v.Kind() {
	case value.KindMapping:
		return v.AsMapping(), nil
	case value.KindNull:
		return value.NewMapping(), nil
	}
	return nil, fmt.Errorf("config root must be a mapping, got %s", v.Kind())
}

func nodeToValue(n *yaml.Node) (value.Value, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return nodeToValue(n.Alias)
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return value.Null(), nil
		}
		return nodeToValue(n.Content[0])
	case yaml.SequenceNode:
		elems := make([]value.Value, 0, len(n.Content))
		for i, c := range n.Content {
			v, err := nodeToValue(c)
			if err != nil {
				return value.Value{}, fmt.Errorf("line %d, item %d: %w", c.Line, i, err)
			}
			elems = append(elems, v)
		}
		return value.Seq(elems...), nil
	case yaml.MappingNode:
		m := value.NewMapping()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, vn := n.Content[i], n.Content[i+1]
			if k.ShortTag() == "!!merge" {
				if err := mergeInto(m, vn); err != nil {
					return value.Value{}, err
				}
				continue
			}
			v, err := nodeToValue(vn)
			if err != nil {
				return value.Value{}, fmt.Errorf("key %q: %w", k.Value, err)
			}
			m.Set(k.Value, v)
		}
		return value.Map(m), nil
	case yaml.ScalarNode:
		return scalarToValue(n)
	}
	return value.Value{}, fmt.Errorf("line %d: unexpected YAML node kind %d", n.Line, n.Kind)
}

// mergeInto applies a << merge key. Keys already present win.
func mergeInto(m *value.Mapping, n *yaml.Node) error {
	sources := []*yaml.Node{n}
	if n.Kind == yaml.SequenceNode {
		sources = n.Content
	}
	for _, src := range sources {
		v, err := nodeToValue(src)
		if err != nil {
			return err
		}
		if v.Kind() != value.KindMapping {
			return fmt.Errorf("line %d: merge source must be a mapping", src.Line)
		}
		for k, mv := range v.AsMapping().All() {
			if _, exists := m.Get(k); !exists {
				m.Set(k, mv)
			}
		}
	}
	return nil
}

var errUnknownTag = errors.New("unsupported scalar tag")

func scalarToValue(n *yaml.Node) (value.Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return value.Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return value.Value{}, err
		}
		return value.Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			// Out of int64 range; keep the magnitude as a float.
			var f float64
			if ferr := n.Decode(&f); ferr != nil {
				return value.Value{}, err
			}
			return value.Float(f), nil
		}
		return value.Int(i), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return value.Value{}, err
		}
		return value.Float(f), nil
	case "!!str", "!!binary", "!!timestamp":
		return value.String(n.Value), nil
	}
	return value.Value{}, fmt.Errorf("line %d: %w %s", n.Line, errUnknownTag, n.ShortTag())
}
