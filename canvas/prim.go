package canvas

import (
	"image"

	"crayon/chroma"
	"crayon/mathx"
	"crayon/vec2"
)

// The helpers below each start a fresh path. Fill and Stroke paint it.

// Rect adds a rectangle centered on (x, y).
func Rect(s Surface, x, y, w, h float64) {
	s.BeginPath()
	s.Rect(x-w/2, y-h/2, w, h)
}

func Ellipse(s Surface, x, y, rx, ry float64) {
	s.BeginPath()
	s.Ellipse(x, y, rx, ry)
}

// Polygon traces pts in order, closing the outline when closed is set.
func Polygon(s Surface, closed bool, pts ...vec2.Vec) {
	s.BeginPath()
	for i, p := range pts {
		if i == 0 {
			s.MoveTo(p.X, p.Y)
			continue
		}
		s.LineTo(p.X, p.Y)
	}
	if closed && len(pts) > 0 {
		s.ClosePath()
	}
}

func Triangle(s Surface, a, b, c vec2.Vec) { Polygon(s, true, a, b, c) }

func Quad(s Surface, a, b, c, d vec2.Vec) { Polygon(s, true, a, b, c, d) }

func Pentagon(s Surface, a, b, c, d, e vec2.Vec) { Polygon(s, true, a, b, c, d, e) }

func Hexagon(s Surface, a, b, c, d, e, f vec2.Vec) { Polygon(s, true, a, b, c, d, e, f) }

func Line(s Surface, a, b vec2.Vec) { Polygon(s, false, a, b) }

// Bezier draws a cubic curve from p0 to p1 with control points c0 and c1.
func Bezier(s Surface, p0, c0, c1, p1 vec2.Vec, closed bool) {
	s.BeginPath()
	s.MoveTo(p0.X, p0.Y)
	s.BezierCurveTo(c0.X, c0.Y, c1.X, c1.Y, p1.X, p1.Y)
	if closed {
		s.ClosePath()
	}
}

// Arc draws part of a circle; angles are radians.
func Arc(s Surface, x, y, r, start, end float64, anticlockwise, closed bool) {
	s.BeginPath()
	s.Arc(x, y, r, start, end, anticlockwise)
	if closed {
		s.ClosePath()
	}
}

// Clear erases a rectangle centered on (x, y).
func Clear(s Surface, x, y, w, h float64) {
	s.ClearRect(x-w/2, y-h/2, w, h)
}

// Image draws img at its natural size centered on (x, y). The picture stays
// upright even when the transform flips the Y axis.
func Image(s Surface, img image.Image, x, y float64) {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	if Det(s.Matrix()) < 0 {
		s.Save()
		s.Translate(x, y)
		s.Scale(1, -1)
		s.DrawImage(img, -w/2, -h/2, w, h)
		s.Restore()
		return
	}
	s.DrawImage(img, x-w/2, y-h/2, w, h)
}

func Fill(s Surface, c chroma.Color) { s.Fill(c) }

func Stroke(s Surface, c chroma.Color, width float64, cap LineCap, join LineJoin) {
	s.Stroke(c, StrokeStyle{Width: width, Cap: cap, Join: join})
}

func DashStroke(s Surface, c chroma.Color, segments []float64, offset, width float64, cap LineCap, join LineJoin) {
	s.Stroke(c, StrokeStyle{Width: width, Cap: cap, Join: join, Dash: segments, DashOffset: offset})
}

// TransformCartesian puts the origin at the center of a w x h (device
// pixel) surface with Y pointing up, scaled by scaleRatio.
func TransformCartesian(s Surface, w, h, scaleRatio float64) {
	s.SetTransform(Matrix{XX: scaleRatio, YY: -scaleRatio, X0: w / 2, Y0: h / 2})
}

// EventCartesian converts device-pixel event coordinates on s into the
// logical cartesian space set up by TransformCartesian.
func EventCartesian(x, y float64, s Surface) vec2.Vec {
	w, h := LogicalSize(s)
	r := ratio(s)
	return vec2.V(x/r-w/2, h/2-y/r)
}

// Options configure Setup.
type Options struct {
	// Width and Height are logical sizes. They are ignored when Target is
	// set; the target's bounds divided by ScaleRatio are used instead.
	Width, Height int
	// ScaleRatio is device pixels per logical pixel. Zero means 1.
	ScaleRatio float64
	// Smooth selects bilinear image scaling over nearest neighbor.
	Smooth bool
	Target *image.RGBA
}

// Setup creates a raster surface of Width*ScaleRatio x Height*ScaleRatio
// device pixels, or wraps opts.Target.
func Setup(opts Options) *Raster {
	r := opts.ScaleRatio
	if r <= 0 {
		r = 1
	}
	img := opts.Target
	if img == nil {
		w := int(mathx.Round(float64(max(opts.Width, 0))*r, 1))
		h := int(mathx.Round(float64(max(opts.Height, 0))*r, 1))
		img = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	return NewRaster(img, r, opts.Smooth)
}

// SetupCartesian is Setup followed by TransformCartesian.
func SetupCartesian(opts Options) *Raster {
	s := Setup(opts)
	w, h := s.Size()
	TransformCartesian(s, float64(w), float64(h), s.ScaleRatio())
	return s
}
