// Package shape describes scenes as plain values and renders them onto a
// canvas.Surface.
//
// A scene is a list of Nodes. Drawable nodes carry a Style; Group and
// Transform nest other nodes under a translate/rotate/scale. Coordinates are
// cartesian (origin at the center, Y up) when the surface was set up with
// canvas.SetupCartesian. Angles in nodes are degrees.
//
// Nodes are values: edit them with the Pos, Size and Radius lenses, which
// return the same node when nothing changes.
package shape

import (
	"crayon/canvas"
	"crayon/chroma"
	"crayon/lens"
	"crayon/vec2"

	"gopkg.in/yaml.v3"
)

const (
	TypeEllipse    = "ellipse"
	TypeRect       = "rect"
	TypeTriangle   = "triangle"
	TypePolygon    = "polygon"
	TypeLine       = "line"
	TypeArc        = "arc"
	TypeBezier     = "bezier"
	TypeGroup      = "group"
	TypeTransform  = "transform"
	TypeBackground = "background"
	TypeClear      = "clear"
	TypeNoop       = "noop"
	TypeText       = "text"
)

// Node is one scene element. Type is the tag used in scene files.
type Node interface {
	Type() string
}

// Style controls painting. A nil color is transparent, and transparent
// colors are never painted.
type Style struct {
	Fill        chroma.Color
	Stroke      chroma.Color
	StrokeWidth float64
	Cap         canvas.LineCap
	Join        canvas.LineJoin
	Dash        []float64
	DashOffset  float64
}

// DefaultStyle paints nothing and strokes 1 unit wide.
var DefaultStyle = Style{StrokeWidth: 1}

// Filled is DefaultStyle with a fill color.
func Filled(c chroma.Color) Style {
	st := DefaultStyle
	st.Fill = c
	return st
}

// Stroked is DefaultStyle with a stroke color and width.
func Stroked(c chroma.Color, width float64) Style {
	st := DefaultStyle
	st.Stroke = c
	st.StrokeWidth = width
	return st
}

// WithStroke returns st with its stroke replaced.
func (st Style) WithStroke(c chroma.Color, width float64) Style {
	st.Stroke = c
	st.StrokeWidth = width
	return st
}

func (st Style) strokeStyle() canvas.StrokeStyle {
	cs := canvas.StrokeStyle{
		Width:      st.StrokeWidth,
		Cap:        st.Cap,
		Join:       st.Join,
		Dash:       st.Dash,
		DashOffset: st.DashOffset,
	}
	if cs.Cap == "" {
		cs.Cap = canvas.CapButt
	}
	if cs.Join == "" {
		cs.Join = canvas.JoinMiter
	}
	return cs
}

// Xform is the transform part of Group and Transform nodes: translate, then
// rotate (degrees, counterclockwise), then scale. A zero Scale means 1:1.
type Xform struct {
	Translate vec2.Vec `yaml:"translate"`
	Scale     vec2.Vec `yaml:"scale"`
	Rotate    float64  `yaml:"rotate"`
}

// ActualSize is the identity scale.
var ActualSize = vec2.V(1, 1)

type Ellipse struct {
	Pos    vec2.Vec `yaml:"pos"`
	Radius vec2.Vec `yaml:"radius"`
	Style  `yaml:"-"`
}

// Rect is centered on Pos.
type Rect struct {
	Pos   vec2.Vec `yaml:"pos"`
	Size  vec2.Vec `yaml:"size"`
	Style `yaml:"-"`
}

type Triangle struct {
	Pos0  vec2.Vec `yaml:"pos0"`
	Pos1  vec2.Vec `yaml:"pos1"`
	Pos2  vec2.Vec `yaml:"pos2"`
	Style `yaml:"-"`
}

// Polygon is filled only when Closed.
type Polygon struct {
	Points []vec2.Vec `yaml:"points"`
	Closed bool       `yaml:"isClosed"`
	Style  `yaml:"-"`
}

type Line struct {
	Pos0  vec2.Vec `yaml:"pos0"`
	Pos1  vec2.Vec `yaml:"pos1"`
	Style `yaml:"-"`
}

// Arc is part of a circle between two angles in radians, measured the way
// Canvas2D measures them. It is filled only when Closed.
type Arc struct {
	Pos           vec2.Vec `yaml:"pos"`
	Radius        float64  `yaml:"radius"`
	StartAngle    float64  `yaml:"startAngle"`
	EndAngle      float64  `yaml:"endAngle"`
	Anticlockwise bool     `yaml:"anticlockwise"`
	Closed        bool     `yaml:"isClosed"`
	Style         `yaml:"-"`
}

// BPoint is a bezier end point with its control point.
type BPoint struct {
	Pos vec2.Vec `yaml:"pos"`
	Ctl vec2.Vec `yaml:"ctl"`
}

// Bezier is a cubic curve from Bez0.Pos to Bez1.Pos.
type Bezier struct {
	Bez0   BPoint `yaml:"bez0"`
	Bez1   BPoint `yaml:"bez1"`
	Closed bool   `yaml:"isClosed"`
	Style  `yaml:"-"`
}

// Group draws its shapes, in order, under one transform.
type Group struct {
	Shapes []Node `yaml:"-"`
	Xform  `yaml:",inline"`
}

// Transform draws a single shape under a transform.
type Transform struct {
	Shape Node `yaml:"-"`
	Xform `yaml:",inline"`
}

// Background fills the whole surface with Style.Fill.
type Background struct {
	Style `yaml:"-"`
}

// Clear erases the whole surface.
type Clear struct{}

type Noop struct{}

// Text is a line of bitmap text centered horizontally on Pos, with Pos.Y on
// the baseline. Only Style.Fill is used. FontScale is the size of one font
// pixel; zero means 1.
type Text struct {
	Pos       vec2.Vec `yaml:"pos"`
	Text      string   `yaml:"text"`
	FontScale float64  `yaml:"fontScale,omitempty"`
	Style     `yaml:"-"`
}

// Unknown keeps a node whose tag is not recognized. Rendering ignores it.
type Unknown struct {
	Tag string
	Raw *yaml.Node
}

func (Ellipse) Type() string    { return TypeEllipse }
func (Rect) Type() string       { return TypeRect }
func (Triangle) Type() string   { return TypeTriangle }
func (Polygon) Type() string    { return TypePolygon }
func (Line) Type() string       { return TypeLine }
func (Arc) Type() string        { return TypeArc }
func (Bezier) Type() string     { return TypeBezier }
func (Group) Type() string      { return TypeGroup }
func (Transform) Type() string  { return TypeTransform }
func (Background) Type() string { return TypeBackground }
func (Clear) Type() string      { return TypeClear }
func (Noop) Type() string       { return TypeNoop }
func (Text) Type() string       { return TypeText }
func (u Unknown) Type() string  { return u.Tag }

// NewEllipse builds an ellipse with radii radius.X and radius.Y.
func NewEllipse(pos, radius vec2.Vec, st Style) Ellipse {
	return Ellipse{Pos: pos, Radius: radius, Style: st}
}

func NewRect(pos, size vec2.Vec, st Style) Rect {
	return Rect{Pos: pos, Size: size, Style: st}
}

func NewTriangle(pos0, pos1, pos2 vec2.Vec, st Style) Triangle {
	return Triangle{Pos0: pos0, Pos1: pos1, Pos2: pos2, Style: st}
}

// Eqtri is an equilateral triangle inscribed in the circle of radius around
// pos, with one corner pointing along +X.
func Eqtri(pos vec2.Vec, radius float64, st Style) Triangle {
	return NewTriangle(
		vec2.Circ(pos, radius, 0),
		vec2.Circ(pos, radius, 120),
		vec2.Circ(pos, radius, -120),
		st,
	)
}

// NewTransform wraps a shape. A zero scale means 1:1.
func NewTransform(n Node, translate, scale vec2.Vec, rotate float64) Transform {
	if scale == vec2.Origin {
		scale = ActualSize
	}
	return Transform{Shape: n, Xform: Xform{Translate: translate, Scale: scale, Rotate: rotate}}
}

// NewGroup groups shapes under the identity transform.
func NewGroup(shapes ...Node) Group {
	return Group{Shapes: shapes, Xform: Xform{Scale: ActualSize}}
}

func BPointAt(pos, ctl vec2.Vec) BPoint { return BPoint{Pos: pos, Ctl: ctl} }

func NewBackground(c chroma.Color) Background { return Background{Style: Filled(c)} }

func NewText(pos vec2.Vec, text string, c chroma.Color) Text {
	return Text{Pos: pos, Text: text, FontScale: 1, Style: Filled(c)}
}

func getPos(n Node) vec2.Vec {
	switch v := n.(type) {
	case Ellipse:
		return v.Pos
	case Rect:
		return v.Pos
	case Arc:
		return v.Pos
	case Text:
		return v.Pos
	case Group:
		return v.Translate
	case Transform:
		return v.Translate
	}
	return vec2.Origin
}

func setPos(n Node, p vec2.Vec) Node {
	switch v := n.(type) {
	case Ellipse:
		v.Pos = p
		return v
	case Rect:
		v.Pos = p
		return v
	case Arc:
		v.Pos = p
		return v
	case Text:
		v.Pos = p
		return v
	case Group:
		v.Translate = p
		return v
	case Transform:
		v.Translate = p
		return v
	}
	return n
}

func getSize(n Node) vec2.Vec {
	switch v := n.(type) {
	case Rect:
		return v.Size
	case Group:
		return v.Scale
	case Transform:
		return v.Scale
	}
	return vec2.Origin
}

func setSize(n Node, s vec2.Vec) Node {
	switch v := n.(type) {
	case Rect:
		v.Size = s
		return v
	case Group:
		v.Scale = s
		return v
	case Transform:
		v.Scale = s
		return v
	}
	return n
}

func getRadius(n Node) vec2.Vec {
	if e, ok := n.(Ellipse); ok {
		return e.Radius
	}
	return vec2.Origin
}

func getExtent(n Node) vec2.Vec {
	if _, ok := n.(Ellipse); ok {
		return getRadius(n)
	}
	return getSize(n)
}

func setExtent(n Node, v vec2.Vec) Node {
	if _, ok := n.(Ellipse); ok {
		return setRadius(n, v)
	}
	return setSize(n, v)
}

func setRadius(n Node, r vec2.Vec) Node {
	if e, ok := n.(Ellipse); ok {
		e.Radius = r
		return e
	}
	return n
}

var (
	// Pos is the position of an Ellipse, Rect, Arc or Text, and the
	// translation of a Group or Transform. Other nodes read as the origin
	// and are returned untouched by Set.
	Pos = lens.New(getPos, setPos)
	// Size is the size of a Rect and the scale of a Group or Transform.
	Size = lens.New(getSize, setSize)
	// Radius is the radii of an Ellipse.
	Radius = lens.New(getRadius, setRadius)

	// Extent is the radii of an Ellipse and the Size of anything else.
	Extent = lens.New(getExtent, setExtent)

	// Move offsets Pos by a vector.
	Move = Pos.Over(vec2.Add)
	// Grow multiplies Extent component-wise.
	Grow = lens.Cursor(Extent.Get, Extent.Set, func(cur, k vec2.Vec) vec2.Vec {
		return vec2.V(cur.X*k.X, cur.Y*k.Y)
	})
)
