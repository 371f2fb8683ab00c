// Package vec2 is simple 2D vector math. Just the basics.
package vec2

import (
	"fmt"
	"math"

	"crayon/lens"
	"crayon/mathx"

	"gopkg.in/yaml.v3"
)

// Precision used by Circ to snap results, so that points on the axes come
// out as exact values.
const Precision = 100000000

// Vec is a 2D point or direction.
type Vec struct {
	X, Y float64
}

// Origin is the zero vector.
var Origin = Vec{}

func V(x, y float64) Vec { return Vec{X: x, Y: y} }

func (v Vec) String() string { return fmt.Sprintf("(%g, %g)", v.X, v.Y) }

func IsSame(a, b Vec) bool { return a.X == b.X && a.Y == b.Y }

func GetX(v Vec) float64 { return v.X }
func GetY(v Vec) float64 { return v.Y }

var (
	SetX = lens.NewSetter(GetX, func(v Vec, x float64) Vec { return Vec{X: x, Y: v.Y} })
	SetY = lens.NewSetter(GetY, func(v Vec, y float64) Vec { return Vec{X: v.X, Y: y} })
)

// SetXY updates both fields. The input is returned if nothing changes.
func SetXY(v Vec, x, y float64) Vec {
	if v.X == x && v.Y == y {
		return v
	}
	return Vec{X: x, Y: y}
}

func Add(a, b Vec) Vec { return Vec{a.X + b.X, a.Y + b.Y} }
func Sub(a, b Vec) Vec { return Vec{a.X - b.X, a.Y - b.Y} }

func Mult(v Vec, s float64) Vec  { return Vec{v.X * s, v.Y * s} }
func Scale(v Vec, s float64) Vec { return Mult(v, s) }

// Inv returns the inverse of a vector.
func Inv(v Vec) Vec { return Mult(v, -1) }

func MultX(v Vec, s float64) Vec { return Vec{v.X * s, v.Y} }
func MultY(v Vec, s float64) Vec { return Vec{v.X, v.Y * s} }
func Div(v Vec, s float64) Vec   { return Vec{v.X / s, v.Y / s} }

func DistSq(a, b Vec) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Dist is the euclidean distance between two points.
func Dist(a, b Vec) float64 { return math.Sqrt(DistSq(a, b)) }

func Lerp(a, b Vec, t float64) Vec {
	return Vec{mathx.Lerp(a.X, b.X, t), mathx.Lerp(a.Y, b.Y, t)}
}

func MagSq(v Vec) float64 { return v.X*v.X + v.Y*v.Y }

// Mag is the length of a vector.
func Mag(v Vec) float64 { return math.Sqrt(MagSq(v)) }

func Dot(a, b Vec) float64 { return a.X*b.X + a.Y*b.Y }

// Norm scales v to unit length. The zero vector stays zero.
func Norm(v Vec) Vec {
	m := Mag(v)
	if m == 0 {
		return Vec{}
	}
	return Div(v, m)
}

// Rotation is the angle of v in degrees, measured from the positive X axis.
func Rotation(v Vec) float64 { return mathx.RadToDeg(math.Atan2(v.Y, v.X)) }

// Rotate turns v about the origin by deg degrees, counterclockwise in a
// Y-up space.
func Rotate(v Vec, deg float64) Vec {
	rad := mathx.DegToRad(deg)
	s, c := math.Sincos(rad)
	return Vec{
		X: mathx.Round(v.X*c-v.Y*s, Precision),
		Y: mathx.Round(v.X*s+v.Y*c, Precision),
	}
}

// RotateAbout turns v about center by deg degrees.
func RotateAbout(v, center Vec, deg float64) Vec {
	return Add(center, Rotate(Sub(v, center), deg))
}

// Circ returns the point at deg degrees on the circle around center.
func Circ(center Vec, radius, deg float64) Vec {
	rad := mathx.DegToRad(deg)
	return Vec{
		X: mathx.Round(center.X+radius*math.Cos(rad), Precision),
		Y: mathx.Round(center.Y+radius*math.Sin(rad), Precision),
	}
}

// Centroid is the mean of the vertices: the center by shape, not by mass.
func Centroid(points []Vec) Vec {
	if len(points) == 0 {
		return Origin
	}
	var sum Vec
	for _, p := range points {
		sum.X += p.X
		sum.Y += p.Y
	}
	return Mult(sum, 1/float64(len(points)))
}

// Slope of the line through a and b. Vertical lines give ±Inf.
func Slope(a, b Vec) float64 { return (b.Y - a.Y) / (b.X - a.X) }

// MarshalYAML encodes v as a flow sequence: [x, y].
func (v Vec) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, f := range []float64{v.X, v.Y} {
		var item yaml.Node
		if err := item.Encode(f); err != nil {
			return nil, err
		}
		n.Content = append(n.Content, &item)
	}
	return n, nil
}

// UnmarshalYAML accepts [x, y] or {x: .., y: ..}.
func (v *Vec) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.SequenceNode:
		var xy []float64
		if err := n.Decode(&xy); err != nil {
			return err
		}
		if len(xy) != 2 {
			return fmt.Errorf("vec2: line %d: want 2 components, got %d", n.Line, len(xy))
		}
		v.X, v.Y = xy[0], xy[1]
		return nil
	case yaml.MappingNode:
		var xy struct {
			X float64 `yaml:"x"`
			Y float64 `yaml:"y"`
		}
		if err := n.Decode(&xy); err != nil {
			return err
		}
		v.X, v.Y = xy.X, xy.Y
		return nil
	default:
		return fmt.Errorf("vec2: line %d: expected sequence or mapping", n.Line)
	}
}
