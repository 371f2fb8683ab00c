package canvas

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"
	"strconv"
	"strings"

	"crayon/chroma"
	"crayon/mathx"

	svg "github.com/ajstarks/svgo"
	"go.uber.org/zap"
)

// SVG writes every fill and stroke as a <path> element. Transforms are baked
// into the path data, so the document has no nested groups apart from the
// ones wrapping embedded images.
type SVG struct {
	pen

	w, h  int
	ratio float64
	buf   bytes.Buffer
	doc   *svg.SVG
	log   *zap.Logger
}

// NewSVG starts a w x h (device pixels) document.
func NewSVG(w, h int, scaleRatio float64, log *zap.Logger) *SVG {
	if scaleRatio <= 0 {
		scaleRatio = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &SVG{pen: newPen(), w: w, h: h, ratio: scaleRatio, log: log.Named("svg")}
	s.restart()
	return s
}

func (s *SVG) restart() {
	s.buf.Reset()
	s.doc = svg.New(&s.buf)
	s.doc.Start(s.w, s.h)
}

func (s *SVG) Size() (int, int)    { return s.w, s.h }
func (s *SVG) ScaleRatio() float64 { return s.ratio }

// WriteTo closes the document and writes it out. Drawing after WriteTo
// starts a fresh document.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	s.doc.End()
	n, err := w.Write(s.buf.Bytes())
	s.restart()
	return int64(n), err
}

func (s *SVG) Fill(c chroma.Color) {
	if chroma.IsTransparent(c) || len(s.path) == 0 {
		return
	}
	s.doc.Path(pathData(s.path), "fill:"+svgPaint(c)+";fill-opacity:"+svgNum(c.Alpha())+";stroke:none")
}

func (s *SVG) Stroke(c chroma.Color, st StrokeStyle) {
	if chroma.IsTransparent(c) || len(s.path) == 0 {
		return
	}
	st = st.withDefaults()
	k := LineScale(s.m)

	var b strings.Builder
	b.WriteString("fill:none;stroke:" + svgPaint(c))
	b.WriteString(";stroke-opacity:" + svgNum(c.Alpha()))
	b.WriteString(";stroke-width:" + svgNum(st.Width*k))
	b.WriteString(";stroke-linecap:" + string(st.Cap))
	b.WriteString(";stroke-linejoin:" + string(st.Join))
	if len(st.Dash) > 0 {
		parts := make([]string, len(st.Dash))
		for i, d := range st.Dash {
			parts[i] = svgNum(d * k)
		}
		b.WriteString(";stroke-dasharray:" + strings.Join(parts, ","))
		b.WriteString(";stroke-dashoffset:" + svgNum(st.DashOffset*k))
	}
	s.doc.Path(pathData(s.path), b.String())
}

// ClearRect restarts the document when the rectangle covers the whole
// canvas. Partial clears cannot be expressed by appending elements and are
// skipped.
func (s *SVG) ClearRect(x, y, w, h float64) {
	pts := s.corners(x, y, w, h)
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	if AxisAligned(s.m) && minX <= 0 && minY <= 0 && maxX >= float64(s.w) && maxY >= float64(s.h) {
		s.restart()
		return
	}
	s.log.Debug("partial clear skipped",
		zap.Float64("x", x), zap.Float64("y", y), zap.Float64("w", w), zap.Float64("h", h))
}

// DrawImage embeds img as a PNG data URI inside a transformed group.
func (s *SVG) DrawImage(img image.Image, x, y, w, h float64) {
	sb := img.Bounds()
	if sb.Empty() {
		return
	}
	var enc bytes.Buffer
	if err := png.Encode(&enc, img); err != nil {
		s.log.Warn("image encode failed", zap.Error(err))
		return
	}
	sx := w / float64(sb.Dx())
	sy := h / float64(sb.Dy())
	m := s.m
	s.doc.Gtransform(fmt.Sprintf("matrix(%s,%s,%s,%s,%s,%s)",
		svgNum(m.XX*sx), svgNum(m.YX*sx), svgNum(m.XY*sy), svgNum(m.YY*sy),
		svgNum(m.XX*x+m.XY*y+m.X0), svgNum(m.YX*x+m.YY*y+m.Y0)))
	s.doc.Image(0, 0, sb.Dx(), sb.Dy(), "data:image/png;base64,"+base64.StdEncoding.EncodeToString(enc.Bytes()))
	s.doc.Gend()
}

func pathData(p Path) string {
	var b strings.Builder
	for i, seg := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch seg.Kind {
		case SegMove:
			fmt.Fprintf(&b, "M%s %s", svgNum(seg.P[0].X), svgNum(seg.P[0].Y))
		case SegLine:
			fmt.Fprintf(&b, "L%s %s", svgNum(seg.P[0].X), svgNum(seg.P[0].Y))
		case SegCubic:
			fmt.Fprintf(&b, "C%s %s %s %s %s %s",
				svgNum(seg.P[0].X), svgNum(seg.P[0].Y),
				svgNum(seg.P[1].X), svgNum(seg.P[1].Y),
				svgNum(seg.P[2].X), svgNum(seg.P[2].Y))
		case SegClose:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

func svgPaint(c chroma.Color) string {
	x := c.ToRGBA()
	return fmt.Sprintf("rgb(%d,%d,%d)", x.R, x.G, x.B)
}

func svgNum(n float64) string {
	return strconv.FormatFloat(mathx.Round(n, 1000), 'f', -1, 64)
}
