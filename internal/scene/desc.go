// Package scene decodes layout trees from YAML or TOML descriptions and
// builds engine nodes from them.
package scene

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Desc describes one node and its children.
type Desc struct {
	ID string `yaml:"id" toml:"id"`

	Width     Dim `yaml:"width" toml:"width"`
	Height    Dim `yaml:"height" toml:"height"`
	MaxWidth  Dim `yaml:"max_width" toml:"max_width"`
	MaxHeight Dim `yaml:"max_height" toml:"max_height"`
	Left      Dim `yaml:"left" toml:"left"`
	Top       Dim `yaml:"top" toml:"top"`

	Padding Edges `yaml:"padding" toml:"padding"`
	Margin  Edges `yaml:"margin" toml:"margin"`

	Layout   string `yaml:"layout" toml:"layout"`
	Controls string `yaml:"controls" toml:"controls"` // x, y, xy or none
	Spacing  []Dim  `yaml:"spacing" toml:"spacing"`   // [x, y]

	Fit       string   `yaml:"fit" toml:"fit"` // width, height or both
	FitAmount *float64 `yaml:"fit_amount" toml:"fit_amount"`

	Center        bool   `yaml:"center" toml:"center"`
	ScaleChildren bool   `yaml:"scale_children" toml:"scale_children"`
	IgnoreLayout  bool   `yaml:"ignore_layout" toml:"ignore_layout"`
	Clip          string `yaml:"clip" toml:"clip"`
	Scrollbars    string `yaml:"scrollbars" toml:"scrollbars"` // vertical, horizontal or both

	// Scroll is the initial scroll offset. It only applies when the node
	// is created; afterwards the offset is engine state.
	Scroll []float64 `yaml:"scroll" toml:"scroll"`

	Children []Desc `yaml:"children" toml:"children"`
}

// Dim is a dimension string such as "120", "120px", "50%", "50%+4" or
// "max". Bare numbers decode as pixels.
type Dim string

func (d *Dim) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: dimension must be a scalar", n.Line)
	}
	*d = Dim(n.Value)
	return nil
}

func (d *Dim) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		*d = Dim(v)
	case int64:
		*d = Dim(strconv.FormatInt(v, 10))
	case float64:
		*d = Dim(strconv.FormatFloat(v, 'g', -1, 64))
	default:
		return fmt.Errorf("dimension must be a string or number, got %T", v)
	}
	return nil
}

// Edges is one dimension for every side, or four in the order left,
// right, top, bottom.
type Edges []Dim

func (e *Edges) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		*e = Edges{Dim(n.Value)}
		return nil
	case yaml.SequenceNode:
		var list []Dim
		if err := n.Decode(&list); err != nil {
			return err
		}
		*e = list
		return nil
	default:
		return fmt.Errorf("line %d: edges must be a dimension or a list", n.Line)
	}
}

func (e *Edges) UnmarshalTOML(v any) error {
	list, ok := v.([]any)
	if !ok {
		list = []any{v}
	}
	out := make(Edges, len(list))
	for i, item := range list {
		if err := out[i].UnmarshalTOML(item); err != nil {
			return err
		}
	}
	*e = out
	return nil
}
