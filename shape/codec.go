package shape

import (
	"errors"
	"fmt"
	"os"

	"crayon/canvas"
	"crayon/chroma"

	"gopkg.in/yaml.v3"
)

// ErrNoType is returned when a scene node lacks its type tag.
var ErrNoType = errors.New("shape: node has no type")

// Scene is a scene file: an optional logical size plus the nodes to draw.
// A file holding a bare list of nodes decodes to a Scene with zero size.
type Scene struct {
	Width      int     `yaml:"width,omitempty"`
	Height     int     `yaml:"height,omitempty"`
	ScaleRatio float64 `yaml:"scaleRatio,omitempty"`
	Shapes     []Node  `yaml:"-"`
}

// styleWire is how Style appears next to a node's own fields.
type styleWire struct {
	Fill        chroma.Value    `yaml:"fill"`
	Stroke      chroma.Value    `yaml:"stroke"`
	StrokeWidth *float64        `yaml:"strokeWidth"`
	Cap         canvas.LineCap  `yaml:"lineCap"`
	Join        canvas.LineJoin `yaml:"lineJoin"`
	Dash        []float64       `yaml:"dash"`
	DashOffset  float64         `yaml:"dashOffset"`
}

// Decode reads a node list from YAML or JSON. The document is either a
// sequence of nodes or a scene mapping with a shapes key.
func Decode(data []byte) ([]Node, error) {
	sc, err := DecodeScene(data)
	if err != nil {
		return nil, err
	}
	return sc.Shapes, nil
}

// DecodeFile is DecodeScene on the contents of path.
func DecodeFile(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, err
	}
	sc, err := DecodeScene(data)
	if err != nil {
		return Scene{}, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

func DecodeScene(data []byte) (Scene, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Scene{}, err
	}
	if len(doc.Content) == 0 {
		return Scene{}, nil
	}
	root := resolve(doc.Content[0])
	switch root.Kind {
	case yaml.SequenceNode:
		nodes, err := decodeNodes(root)
		return Scene{Shapes: nodes}, err
	case yaml.MappingNode:
		var sc Scene
		if err := root.Decode(&sc); err != nil {
			return Scene{}, err
		}
		if v := field(root, "shapes"); v != nil {
			nodes, err := decodeNodes(v)
			if err != nil {
				return Scene{}, err
			}
			sc.Shapes = nodes
		}
		return sc, nil
	}
	return Scene{}, fmt.Errorf("shape: line %d: expected a node list or a scene", root.Line)
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

// field returns the value node under key in a mapping, or nil.
func field(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return resolve(m.Content[i+1])
		}
	}
	return nil
}

func decodeNodes(seq *yaml.Node) ([]Node, error) {
	if seq.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("shape: line %d: expected a list of nodes", seq.Line)
	}
	nodes := make([]Node, 0, len(seq.Content))
	for _, item := range seq.Content {
		n, err := decodeNode(resolve(item))
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func decodeNode(n *yaml.Node) (Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("shape: line %d: expected a node mapping", n.Line)
	}
	tag := field(n, "type")
	if tag == nil || tag.Value == "" {
		return nil, fmt.Errorf("shape: line %d: %w", n.Line, ErrNoType)
	}
	switch tag.Value {
	case TypeEllipse:
		return decodeStyled(n, Ellipse{}, func(v *Ellipse) *Style { return &v.Style })
	case TypeRect:
		return decodeStyled(n, Rect{}, func(v *Rect) *Style { return &v.Style })
	case TypeTriangle:
		return decodeStyled(n, Triangle{}, func(v *Triangle) *Style { return &v.Style })
	case TypePolygon:
		return decodeStyled(n, Polygon{Closed: true}, func(v *Polygon) *Style { return &v.Style })
	case TypeLine:
		return decodeStyled(n, Line{}, func(v *Line) *Style { return &v.Style })
	case TypeArc:
		return decodeStyled(n, Arc{}, func(v *Arc) *Style { return &v.Style })
	case TypeBezier:
		return decodeStyled(n, Bezier{}, func(v *Bezier) *Style { return &v.Style })
	case TypeBackground:
		return decodeStyled(n, Background{}, func(v *Background) *Style { return &v.Style })
	case TypeText:
		return decodeStyled(n, Text{FontScale: 1}, func(v *Text) *Style { return &v.Style })
	case TypeClear:
		return Clear{}, nil
	case TypeNoop:
		return Noop{}, nil
	case TypeGroup:
		g := NewGroup()
		if err := n.Decode(&g); err != nil {
			return nil, err
		}
		if v := field(n, "shapes"); v != nil {
			shapes, err := decodeNodes(v)
			if err != nil {
				return nil, err
			}
			g.Shapes = shapes
		}
		return g, nil
	case TypeTransform:
		t := Transform{Xform: Xform{Scale: ActualSize}}
		if err := n.Decode(&t); err != nil {
			return nil, err
		}
		if v := field(n, "shape"); v != nil {
			child, err := decodeNode(v)
			if err != nil {
				return nil, err
			}
			t.Shape = child
		}
		return t, nil
	}
	return Unknown{Tag: tag.Value, Raw: n}, nil
}

// decodeStyled decodes the node's own fields into v and its style keys into
// the Style that style points at.
func decodeStyled[T Node](n *yaml.Node, v T, style func(*T) *Style) (Node, error) {
	if err := n.Decode(&v); err != nil {
		return nil, err
	}
	st, err := decodeStyle(n)
	if err != nil {
		return nil, err
	}
	*style(&v) = st
	return v, nil
}

func decodeStyle(n *yaml.Node) (Style, error) {
	var w styleWire
	if err := n.Decode(&w); err != nil {
		return Style{}, err
	}
	st := Style{
		Fill:       w.Fill.Color,
		Stroke:     w.Stroke.Color,
		Cap:        w.Cap,
		Join:       w.Join,
		Dash:       w.Dash,
		DashOffset: w.DashOffset,
	}
	st.StrokeWidth = DefaultStyle.StrokeWidth
	if w.StrokeWidth != nil {
		st.StrokeWidth = *w.StrokeWidth
	}
	switch st.Cap {
	case "", canvas.CapButt, canvas.CapRound, canvas.CapSquare:
	default:
		return Style{}, fmt.Errorf("shape: line %d: unknown line cap %q", n.Line, st.Cap)
	}
	switch st.Join {
	case "", canvas.JoinMiter, canvas.JoinRound, canvas.JoinBevel:
	default:
		return Style{}, fmt.Errorf("shape: line %d: unknown line join %q", n.Line, st.Join)
	}
	return st, nil
}

// Encode writes nodes as a YAML sequence.
func Encode(nodes ...Node) ([]byte, error) {
	seq, err := encodeNodes(nodes)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(seq)
}

// EncodeScene writes a scene mapping with its shapes.
func EncodeScene(sc Scene) ([]byte, error) {
	var m yaml.Node
	if err := m.Encode(sc); err != nil {
		return nil, err
	}
	seq, err := encodeNodes(sc.Shapes)
	if err != nil {
		return nil, err
	}
	m.Content = append(m.Content, scalar("shapes"), seq)
	return yaml.Marshal(&m)
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func encodeNodes(nodes []Node) (*yaml.Node, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, n := range nodes {
		if n == nil {
			continue
		}
		item, err := encodeNode(n)
		if err != nil {
			return nil, err
		}
		seq.Content = append(seq.Content, item)
	}
	return seq, nil
}

func encodeNode(n Node) (*yaml.Node, error) {
	if u, ok := n.(Unknown); ok && u.Raw != nil {
		return u.Raw, nil
	}
	m := &yaml.Node{Kind: yaml.MappingNode}
	m.Content = append(m.Content, scalar("type"), scalar(n.Type()))
	if _, ok := n.(Unknown); ok {
		return m, nil
	}
	var body yaml.Node
	if err := body.Encode(n); err != nil {
		return nil, err
	}
	m.Content = append(m.Content, body.Content...)

	switch v := n.(type) {
	case Group:
		seq, err := encodeNodes(v.Shapes)
		if err != nil {
			return nil, err
		}
		m.Content = append(m.Content, scalar("shapes"), seq)
	case Transform:
		if v.Shape != nil {
			child, err := encodeNode(v.Shape)
			if err != nil {
				return nil, err
			}
			m.Content = append(m.Content, scalar("shape"), child)
		}
	}
	if st, ok := styleOf(n); ok {
		kv, err := encodeStyle(st)
		if err != nil {
			return nil, err
		}
		m.Content = append(m.Content, kv...)
	}
	return m, nil
}

func styleOf(n Node) (Style, bool) {
	switch v := n.(type) {
	case Ellipse:
		return v.Style, true
	case Rect:
		return v.Style, true
	case Triangle:
		return v.Style, true
	case Polygon:
		return v.Style, true
	case Line:
		return v.Style, true
	case Arc:
		return v.Style, true
	case Bezier:
		return v.Style, true
	case Background:
		return v.Style, true
	case Text:
		return v.Style, true
	}
	return Style{}, false
}

// encodeStyle emits only the keys that differ from DefaultStyle.
func encodeStyle(st Style) ([]*yaml.Node, error) {
	var kv []*yaml.Node
	add := func(key string, v any) error {
		var val yaml.Node
		if err := val.Encode(v); err != nil {
			return err
		}
		kv = append(kv, scalar(key), &val)
		return nil
	}
	if st.Fill != nil {
		if err := add("fill", st.Fill.CSS()); err != nil {
			return nil, err
		}
	}
	if st.Stroke != nil {
		if err := add("stroke", st.Stroke.CSS()); err != nil {
			return nil, err
		}
	}
	if st.StrokeWidth != DefaultStyle.StrokeWidth {
		if err := add("strokeWidth", st.StrokeWidth); err != nil {
			return nil, err
		}
	}
	if st.Cap != "" {
		if err := add("lineCap", string(st.Cap)); err != nil {
			return nil, err
		}
	}
	if st.Join != "" {
		if err := add("lineJoin", string(st.Join)); err != nil {
			return nil, err
		}
	}
	if len(st.Dash) > 0 {
		if err := add("dash", st.Dash); err != nil {
			return nil, err
		}
		if err := add("dashOffset", st.DashOffset); err != nil {
			return nil, err
		}
	}
	return kv, nil
}
