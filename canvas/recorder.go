package canvas

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"crayon/chroma"

	"go.uber.org/zap"
)

// Recorder logs every Surface call as a compact string, e.g.
// "translate(10, 20)" or "fill(hsla(0, 0%, 0%, 1))", and forwards the call
// to the wrapped surface.
type Recorder struct {
	next  Surface
	calls []string
	log   *zap.Logger
}

// NewRecorder wraps next. A nil next records onto a 100x100 surface that
// draws nothing.
func NewRecorder(next Surface) *Recorder {
	if next == nil {
		next = Null(100, 100, 1)
	}
	return &Recorder{next: next, log: zap.NewNop()}
}

// WithLogger also writes each call to log at debug level.
func (r *Recorder) WithLogger(log *zap.Logger) *Recorder {
	if log != nil {
		r.log = log.Named("trace")
	}
	return r
}

// Calls returns the calls recorded since the last Reset.
func (r *Recorder) Calls() []string { return r.calls }

func (r *Recorder) Reset() { r.calls = r.calls[:0] }

// Unwrap returns the wrapped surface.
func (r *Recorder) Unwrap() Surface { return r.next }

func (r *Recorder) rec(name string, args ...any) {
	parts := make([]string, len(args))
	for i, a := range args {
		switch v := a.(type) {
		case float64:
			parts[i] = strconv.FormatFloat(v, 'g', 6, 64)
		case chroma.Color:
			parts[i] = chroma.CSS(v)
		default:
			parts[i] = fmt.Sprint(v)
		}
	}
	call := name + "(" + strings.Join(parts, ", ") + ")"
	r.calls = append(r.calls, call)
	r.log.Debug(call)
}

func (r *Recorder) Size() (int, int)    { return r.next.Size() }
func (r *Recorder) ScaleRatio() float64 { return r.next.ScaleRatio() }
func (r *Recorder) Matrix() Matrix      { return r.next.Matrix() }

func (r *Recorder) Save()    { r.rec("save"); r.next.Save() }
func (r *Recorder) Restore() { r.rec("restore"); r.next.Restore() }

func (r *Recorder) SetTransform(m Matrix) {
	r.rec("setTransform", m.XX, m.YX, m.XY, m.YY, m.X0, m.Y0)
	r.next.SetTransform(m)
}

func (r *Recorder) ResetTransform() { r.rec("resetTransform"); r.next.ResetTransform() }

func (r *Recorder) Translate(x, y float64) { r.rec("translate", x, y); r.next.Translate(x, y) }
func (r *Recorder) Scale(x, y float64)     { r.rec("scale", x, y); r.next.Scale(x, y) }
func (r *Recorder) Rotate(rad float64)     { r.rec("rotate", rad); r.next.Rotate(rad) }

func (r *Recorder) BeginPath()          { r.rec("beginPath"); r.next.BeginPath() }
func (r *Recorder) MoveTo(x, y float64) { r.rec("moveTo", x, y); r.next.MoveTo(x, y) }
func (r *Recorder) LineTo(x, y float64) { r.rec("lineTo", x, y); r.next.LineTo(x, y) }
func (r *Recorder) ClosePath()          { r.rec("closePath"); r.next.ClosePath() }

func (r *Recorder) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	r.rec("bezierCurveTo", cp1x, cp1y, cp2x, cp2y, x, y)
	r.next.BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y)
}

func (r *Recorder) Arc(x, y, rad, start, end float64, anticlockwise bool) {
	r.rec("arc", x, y, rad, start, end, anticlockwise)
	r.next.Arc(x, y, rad, start, end, anticlockwise)
}

func (r *Recorder) Ellipse(x, y, rx, ry float64) {
	r.rec("ellipse", x, y, rx, ry)
	r.next.Ellipse(x, y, rx, ry)
}

func (r *Recorder) Rect(x, y, w, h float64) {
	r.rec("rect", x, y, w, h)
	r.next.Rect(x, y, w, h)
}

func (r *Recorder) Fill(c chroma.Color) { r.rec("fill", c); r.next.Fill(c) }

func (r *Recorder) Stroke(c chroma.Color, st StrokeStyle) {
	args := []any{c, st.Width, string(st.Cap), string(st.Join)}
	if len(st.Dash) > 0 {
		args = append(args, st.Dash, st.DashOffset)
	}
	r.rec("stroke", args...)
	r.next.Stroke(c, st)
}

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.rec("clearRect", x, y, w, h)
	r.next.ClearRect(x, y, w, h)
}

func (r *Recorder) DrawImage(img image.Image, x, y, w, h float64) {
	b := img.Bounds()
	r.rec("drawImage", fmt.Sprintf("%dx%d", b.Dx(), b.Dy()), x, y, w, h)
	r.next.DrawImage(img, x, y, w, h)
}

// nullSurface tracks transforms and paths but paints nothing.
type nullSurface struct {
	pen
	w, h  int
	ratio float64
}

// Null returns a surface that discards all painting.
func Null(w, h int, scaleRatio float64) Surface {
	if scaleRatio <= 0 {
		scaleRatio = 1
	}
	return &nullSurface{pen: newPen(), w: w, h: h, ratio: scaleRatio}
}

func (n *nullSurface) Size() (int, int)                                          { return n.w, n.h }
func (n *nullSurface) ScaleRatio() float64                                       { return n.ratio }
func (n *nullSurface) Fill(chroma.Color)                                         {}
func (n *nullSurface) Stroke(chroma.Color, StrokeStyle)                          {}
func (n *nullSurface) ClearRect(x, y, w, h float64)                              {}
func (n *nullSurface) DrawImage(image.Image, float64, float64, float64, float64) {}
