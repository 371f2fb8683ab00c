package chroma

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Decode reads a color from a YAML node: a CSS string, or a mapping with
// either h/s/l or r/g/b keys and an optional a. Mapped RGB channels are
// 0..255, HSL channels follow HSLA.
func Decode(n *yaml.Node) (Color, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
		c, err := ParseCSS(n.Value)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return c, nil
	case yaml.MappingNode:
		var m map[string]float64
		if err := n.Decode(&m); err != nil {
			return nil, err
		}
		a, ok := m["a"]
		if !ok {
			a = 1
		}
		if _, isHSL := m["h"]; isHSL || hasAny(m, "s", "l") {
			return NewHSLA(m["h"], m["s"], m["l"], a), nil
		}
		if hasAny(m, "r", "g", "b") {
			return NewRGBA(m["r"], m["g"], m["b"], a), nil
		}
		return nil, fmt.Errorf("line %d: %w: mapping needs h/s/l or r/g/b", n.Line, ErrSyntax)
	case yaml.AliasNode:
		return Decode(n.Alias)
	}
	return nil, fmt.Errorf("line %d: %w: expected string or mapping", n.Line, ErrSyntax)
}

func hasAny(m map[string]float64, keys ...string) bool {
	for _, k := range keys {
		if _, ok := m[k]; ok {
			return true
		}
	}
	return false
}

// Value wraps a Color for struct fields that go through YAML. A zero Value
// marshals as null and is transparent.
type Value struct {
	Color Color
}

func (v *Value) UnmarshalYAML(n *yaml.Node) error {
	c, err := Decode(n)
	if err != nil {
		return err
	}
	v.Color = c
	return nil
}

func (v Value) MarshalYAML() (any, error) {
	if v.Color == nil {
		return nil, nil
	}
	return v.Color.CSS(), nil
}

func (c HSLA) MarshalYAML() (any, error) { return c.CSS(), nil }

func (c *HSLA) UnmarshalYAML(n *yaml.Node) error {
	x, err := Decode(n)
	if err != nil {
		return err
	}
	if x == nil {
		*c = Transparent
		return nil
	}
	*c = x.ToHSLA()
	return nil
}

func (c RGBA) MarshalYAML() (any, error) { return c.CSS(), nil }

func (c *RGBA) UnmarshalYAML(n *yaml.Node) error {
	x, err := Decode(n)
	if err != nil {
		return err
	}
	if x == nil {
		*c = RGBA{}
		return nil
	}
	*c = x.ToRGBA()
	return nil
}
