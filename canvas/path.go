package canvas

import (
	"math"

	"crayon/mathx"

	"github.com/fogleman/gg"
)

type SegKind uint8

const (
	SegMove SegKind = iota
	SegLine
	SegCubic
	SegClose
)

// Seg is one device-space path segment. Move and Line use P[0]; Cubic uses
// P[0] and P[1] as control points and P[2] as the end point.
type Seg struct {
	Kind SegKind
	P    [3]Point
}

type Point struct {
	X, Y float64
}

// Path is an ordered list of device-space segments.
type Path []Seg

// pen carries the state every Surface shares: the transform stack and the
// current path. Backends embed it and add painting.
type pen struct {
	m     Matrix
	stack []Matrix
	path  Path

	cur, start Point
	hasCur     bool
	closed     bool
}

func newPen() pen { return pen{m: gg.Identity()} }

func (p *pen) Save() { p.stack = append(p.stack, p.m) }

// Restore pops the last saved transform. Unbalanced calls are ignored.
func (p *pen) Restore() {
	n := len(p.stack)
	if n == 0 {
		return
	}
	p.m = p.stack[n-1]
	p.stack = p.stack[:n-1]
}

func (p *pen) Matrix() Matrix         { return p.m }
func (p *pen) SetTransform(m Matrix)  { p.m = m }
func (p *pen) ResetTransform()        { p.m = gg.Identity() }
func (p *pen) Translate(x, y float64) { p.m = p.m.Translate(x, y) }
func (p *pen) Scale(x, y float64)     { p.m = p.m.Scale(x, y) }
func (p *pen) Rotate(rad float64)     { p.m = p.m.Rotate(rad) }

func (p *pen) project(x, y float64) Point {
	dx, dy := p.m.TransformPoint(x, y)
	return Point{dx, dy}
}

func (p *pen) BeginPath() {
	p.path = p.path[:0]
	p.hasCur = false
	p.closed = false
}

func (p *pen) MoveTo(x, y float64) {
	pt := p.project(x, y)
	p.path = append(p.path, Seg{Kind: SegMove, P: [3]Point{pt}})
	p.cur, p.start = pt, pt
	p.hasCur = true
	p.closed = false
}

// ensure starts a subpath at pt if there is no current point, or re-opens a
// subpath at the last start point after ClosePath.
func (p *pen) ensure(pt Point) {
	switch {
	case !p.hasCur:
		p.path = append(p.path, Seg{Kind: SegMove, P: [3]Point{pt}})
		p.cur, p.start = pt, pt
		p.hasCur = true
	case p.closed:
		p.path = append(p.path, Seg{Kind: SegMove, P: [3]Point{p.start}})
		p.cur = p.start
	}
	p.closed = false
}

func (p *pen) LineTo(x, y float64) {
	pt := p.project(x, y)
	p.ensure(pt)
	p.lineDevice(pt)
}

func (p *pen) lineDevice(pt Point) {
	p.path = append(p.path, Seg{Kind: SegLine, P: [3]Point{pt}})
	p.cur = pt
}

func (p *pen) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	c1 := p.project(cp1x, cp1y)
	p.ensure(c1)
	p.path = append(p.path, Seg{Kind: SegCubic, P: [3]Point{c1, p.project(cp2x, cp2y), p.project(x, y)}})
	p.cur = p.path[len(p.path)-1].P[2]
}

func (p *pen) ClosePath() {
	if !p.hasCur || p.closed {
		return
	}
	p.path = append(p.path, Seg{Kind: SegClose})
	p.cur = p.start
	p.closed = true
}

// Rect adds a closed rectangle subpath with its corner at (x, y).
func (p *pen) Rect(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.ClosePath()
}

// Arc adds a circular arc. It follows Canvas2D: a line joins the current
// point to the arc start, and a sweep of a full turn or more draws a circle.
func (p *pen) Arc(x, y, r, start, end float64, anticlockwise bool) {
	p.ellipticalArc(x, y, math.Abs(r), math.Abs(r), start, arcSweep(start, end, anticlockwise))
}

// Ellipse adds a full axis-aligned ellipse.
func (p *pen) Ellipse(x, y, rx, ry float64) {
	p.ellipticalArc(x, y, math.Abs(rx), math.Abs(ry), 0, mathx.TwoPi)
}

// arcSweep turns a start/end pair into a signed sweep in (-2π, 2π].
func arcSweep(start, end float64, anticlockwise bool) float64 {
	d := end - start
	if !anticlockwise {
		if d >= mathx.TwoPi {
			return mathx.TwoPi
		}
		d = math.Mod(d, mathx.TwoPi)
		if d < 0 {
			d += mathx.TwoPi
		}
		return d
	}
	if d <= -mathx.TwoPi {
		return -mathx.TwoPi
	}
	d = math.Mod(d, mathx.TwoPi)
	if d > 0 {
		d -= mathx.TwoPi
	}
	return d
}

// ellipticalArc approximates the arc with cubic béziers of at most a quarter
// turn each, built in user space and then mapped through the transform.
func (p *pen) ellipticalArc(cx, cy, rx, ry, start, sweep float64) {
	at := func(a float64) (float64, float64) {
		return cx + rx*math.Cos(a), cy + ry*math.Sin(a)
	}
	sx, sy := at(start)
	first := p.project(sx, sy)
	if !p.hasCur {
		p.path = append(p.path, Seg{Kind: SegMove, P: [3]Point{first}})
		p.cur, p.start = first, first
		p.hasCur = true
		p.closed = false
	} else {
		p.ensure(first)
		p.lineDevice(first)
	}
	if sweep == 0 {
		return
	}

	n := int(math.Ceil(math.Abs(sweep)/mathx.HalfPi - 1e-9))
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)
	a0 := start
	for i := 0; i < n; i++ {
		a1 := a0 + step
		sin0, cos0 := math.Sincos(a0)
		sin1, cos1 := math.Sincos(a1)
		c1 := p.project(cx+rx*(cos0-k*sin0), cy+ry*(sin0+k*cos0))
		c2 := p.project(cx+rx*(cos1+k*sin1), cy+ry*(sin1-k*cos1))
		ex, ey := at(a1)
		end := p.project(ex, ey)
		p.path = append(p.path, Seg{Kind: SegCubic, P: [3]Point{c1, c2, end}})
		p.cur = end
		a0 = a1
	}
}

// corners maps a user-space rectangle to its four device-space corners.
func (p *pen) corners(x, y, w, h float64) [4]Point {
	return [4]Point{
		p.project(x, y),
		p.project(x+w, y),
		p.project(x+w, y+h),
		p.project(x, y+h),
	}
}
