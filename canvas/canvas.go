// Package canvas is a small Canvas2D-style drawing surface plus the thin
// primitive wrappers the shape renderer is built on.
//
// A Surface keeps a current transform, a save/restore stack and a path.
// Path coordinates are mapped through the transform as they are added, so
// backends only ever see device-space geometry. Three backends ship here: a
// raster surface drawing into an *image.RGBA, an SVG document writer, and a
// Recorder that logs every call.
package canvas

import (
	"errors"
	"image"

	"crayon/chroma"
)

// ErrNoImage is returned when an image cannot be decoded.
var ErrNoImage = errors.New("canvas: no image")

type LineCap string

const (
	CapButt   LineCap = "butt"
	CapRound  LineCap = "round"
	CapSquare LineCap = "square"
)

type LineJoin string

const (
	JoinMiter LineJoin = "miter"
	JoinRound LineJoin = "round"
	JoinBevel LineJoin = "bevel"
)

// StrokeStyle holds the line settings applied by Stroke. Width is in user
// units and scales with the current transform.
type StrokeStyle struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	Dash       []float64
	DashOffset float64
}

// DefaultStroke is a 1 unit butt/miter line.
var DefaultStroke = StrokeStyle{Width: 1, Cap: CapButt, Join: JoinMiter}

func (st StrokeStyle) withDefaults() StrokeStyle {
	if st.Width <= 0 {
		st.Width = 1
	}
	if st.Cap == "" {
		st.Cap = CapButt
	}
	if st.Join == "" {
		st.Join = JoinMiter
	}
	return st
}

// Surface is the drawing target.
//
// Size is in device pixels; ScaleRatio is device pixels per logical pixel.
// Angles are radians.
type Surface interface {
	Size() (w, h int)
	ScaleRatio() float64

	Save()
	Restore()
	Matrix() Matrix
	SetTransform(m Matrix)
	ResetTransform()
	Translate(x, y float64)
	Scale(x, y float64)
	Rotate(rad float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64)
	Arc(x, y, r, start, end float64, anticlockwise bool)
	Ellipse(x, y, rx, ry float64)
	Rect(x, y, w, h float64)
	ClosePath()

	Fill(c chroma.Color)
	Stroke(c chroma.Color, st StrokeStyle)
	ClearRect(x, y, w, h float64)
	DrawImage(img image.Image, x, y, w, h float64)
}

// LogicalSize is the surface size in logical (pre-ratio) units.
func LogicalSize(s Surface) (w, h float64) {
	dw, dh := s.Size()
	r := ratio(s)
	return float64(dw) / r, float64(dh) / r
}

func ratio(s Surface) float64 {
	r := s.ScaleRatio()
	if r <= 0 {
		return 1
	}
	return r
}
