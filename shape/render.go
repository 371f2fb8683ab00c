package shape

import (
	"crayon/canvas"
	"crayon/chroma"
	"crayon/mathx"

	"go.uber.org/zap"
)

// Renderer draws nodes onto one surface.
type Renderer struct {
	s   canvas.Surface
	log *zap.Logger
}

// NewRenderer binds a renderer to s. A nil log uses zap's global logger.
func NewRenderer(s canvas.Surface, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.L()
	}
	return &Renderer{s: s, log: log.Named("shape")}
}

// Bind returns a function that renders nodes onto s in order.
func Bind(s canvas.Surface) func(nodes ...Node) {
	return NewRenderer(s, nil).RenderAll
}

// Surface returns the bound surface.
func (r *Renderer) Surface() canvas.Surface { return r.s }

// RenderAll draws nodes in order; later nodes paint over earlier ones.
func (r *Renderer) RenderAll(nodes ...Node) {
	for _, n := range nodes {
		r.Render(n)
	}
}

// Render draws a single node. Nil nodes and unknown types draw nothing.
func (r *Renderer) Render(n Node) {
	s := r.s
	switch v := n.(type) {
	case nil:
	case Noop:
	case Ellipse:
		canvas.Ellipse(s, v.Pos.X, v.Pos.Y, v.Radius.X, v.Radius.Y)
		r.paint(v.Style, true)
	case Rect:
		canvas.Rect(s, v.Pos.X, v.Pos.Y, v.Size.X, v.Size.Y)
		r.paint(v.Style, true)
	case Triangle:
		canvas.Triangle(s, v.Pos0, v.Pos1, v.Pos2)
		r.paint(v.Style, true)
	case Polygon:
		canvas.Polygon(s, v.Closed, v.Points...)
		r.stroke(v.Style)
		r.fill(v.Style, v.Closed)
	case Line:
		canvas.Line(s, v.Pos0, v.Pos1)
		r.paint(v.Style, false)
	case Arc:
		canvas.Arc(s, v.Pos.X, v.Pos.Y, v.Radius, v.StartAngle, v.EndAngle, v.Anticlockwise, v.Closed)
		r.paint(v.Style, v.Closed)
	case Bezier:
		canvas.Bezier(s, v.Bez0.Pos, v.Bez0.Ctl, v.Bez1.Ctl, v.Bez1.Pos, v.Closed)
		r.stroke(v.Style)
		r.fill(v.Style, v.Closed)
	case Group:
		s.Save()
		r.apply(v.Xform)
		r.RenderAll(v.Shapes...)
		s.Restore()
	case Transform:
		s.Save()
		r.apply(v.Xform)
		r.Render(v.Shape)
		s.Restore()
	case Background:
		if chroma.IsTransparent(v.Fill) {
			return
		}
		w, h := s.Size()
		s.Save()
		s.ResetTransform()
		s.BeginPath()
		s.Rect(0, 0, float64(w), float64(h))
		s.Fill(v.Fill)
		s.Restore()
	case Clear:
		w, h := s.Size()
		s.Save()
		s.ResetTransform()
		s.ClearRect(0, 0, float64(w), float64(h))
		s.Restore()
	case Text:
		r.text(v)
	default:
		r.log.Warn("unknown shape type", zap.String("type", n.Type()))
	}
}

// apply pushes translate, rotate and scale in that order, skipping the
// parts that are identity. A scale with a zero component is skipped.
func (r *Renderer) apply(x Xform) {
	if x.Translate.X != 0 || x.Translate.Y != 0 {
		r.s.Translate(x.Translate.X, x.Translate.Y)
	}
	if x.Rotate != 0 {
		r.s.Rotate(mathx.DegToRad(x.Rotate))
	}
	if x.Scale != ActualSize && x.Scale.X != 0 && x.Scale.Y != 0 {
		r.s.Scale(x.Scale.X, x.Scale.Y)
	}
}

// paint fills (when fill is set) and then strokes the current path.
func (r *Renderer) paint(st Style, fill bool) {
	r.fill(st, fill)
	r.stroke(st)
}

func (r *Renderer) fill(st Style, fill bool) {
	if fill && !chroma.IsTransparent(st.Fill) {
		r.s.Fill(st.Fill)
	}
}

func (r *Renderer) stroke(st Style) {
	if !chroma.IsTransparent(st.Stroke) && st.StrokeWidth > 0 {
		r.s.Stroke(st.Stroke, st.strokeStyle())
	}
}
