package canvas

import (
	"image"
	"io"

	"crayon/chroma"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
)

// Raster draws into an *image.RGBA. Geometry is flattened to device space
// by the embedded pen; gg does the anti-aliased filling and stroking with an
// identity transform.
type Raster struct {
	pen

	img    *image.RGBA
	dc     *gg.Context
	ratio  float64
	smooth bool
}

// NewRaster wraps img. The caller keeps ownership of the pixels, so a window
// framebuffer can be drawn into directly.
func NewRaster(img *image.RGBA, scaleRatio float64, smooth bool) *Raster {
	if scaleRatio <= 0 {
		scaleRatio = 1
	}
	return &Raster{
		pen:    newPen(),
		img:    img,
		dc:     gg.NewContextForRGBA(img),
		ratio:  scaleRatio,
		smooth: smooth,
	}
}

func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

func (r *Raster) ScaleRatio() float64 { return r.ratio }

// Image returns the pixels drawn so far.
func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) EncodePNG(w io.Writer) error { return r.dc.EncodePNG(w) }

// trace loads the current path into gg.
func (r *Raster) trace() {
	r.dc.ClearPath()
	for _, s := range r.path {
		switch s.Kind {
		case SegMove:
			r.dc.MoveTo(s.P[0].X, s.P[0].Y)
		case SegLine:
			r.dc.LineTo(s.P[0].X, s.P[0].Y)
		case SegCubic:
			r.dc.CubicTo(s.P[0].X, s.P[0].Y, s.P[1].X, s.P[1].Y, s.P[2].X, s.P[2].Y)
		case SegClose:
			r.dc.ClosePath()
		}
	}
}

func (r *Raster) Fill(c chroma.Color) {
	if chroma.IsTransparent(c) || len(r.path) == 0 {
		return
	}
	r.trace()
	r.dc.SetColor(c)
	r.dc.Fill()
}

func (r *Raster) Stroke(c chroma.Color, st StrokeStyle) {
	if chroma.IsTransparent(c) || len(r.path) == 0 {
		return
	}
	st = st.withDefaults()
	k := LineScale(r.m)

	r.trace()
	r.dc.SetColor(c)
	r.dc.SetLineWidth(st.Width * k)
	switch st.Cap {
	case CapRound:
		r.dc.SetLineCap(gg.LineCapRound)
	case CapSquare:
		r.dc.SetLineCap(gg.LineCapSquare)
	default:
		r.dc.SetLineCap(gg.LineCapButt)
	}
	// gg has no miter joiner; bevel is the closest match.
	if st.Join == JoinRound {
		r.dc.SetLineJoin(gg.LineJoinRound)
	} else {
		r.dc.SetLineJoin(gg.LineJoinBevel)
	}
	if len(st.Dash) > 0 {
		dash := make([]float64, len(st.Dash))
		for i, d := range st.Dash {
			dash[i] = d * k
		}
		r.dc.SetDash(dash...)
		r.dc.SetDashOffset(st.DashOffset * k)
	}
	r.dc.Stroke()
	r.dc.SetDash()
	r.dc.SetDashOffset(0)
}

// ClearRect resets the covered pixels to transparent black and leaves the
// rest of the surface alone. Partly covered edge pixels keep the uncovered
// share of their (premultiplied) value.
func (r *Raster) ClearRect(x, y, w, h float64) {
	b := r.img.Bounds()
	if b.Empty() {
		return
	}
	pts := r.corners(x, y, w, h)
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
	mask := image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	for row := 0; row < b.Dy(); row++ {
		for col, cov := range mask.Pix[row*mask.Stride : row*mask.Stride+b.Dx()] {
			if cov == 0 {
				continue
			}
			i := r.img.PixOffset(b.Min.X+col, b.Min.Y+row)
			keep := 255 - uint32(cov)
			px := r.img.Pix[i : i+4 : i+4]
			for j := range px {
				px[j] = uint8((uint32(px[j])*keep + 127) / 255)
			}
		}
	}
}

// DrawImage maps img onto the user-space rectangle (x, y, w, h).
func (r *Raster) DrawImage(img image.Image, x, y, w, h float64) {
	sb := img.Bounds()
	if sb.Empty() {
		return
	}
	interp := xdraw.Interpolator(xdraw.NearestNeighbor)
	if r.smooth {
		interp = xdraw.BiLinear
	}
	interp.Transform(r.img, imageAffine(r.m, sb, x, y, w, h), img, sb, xdraw.Over, nil)
}

// imageAffine maps source pixel coordinates of an image with bounds sb into
// device space, given the user-space destination rectangle.
func imageAffine(m Matrix, sb image.Rectangle, x, y, w, h float64) f64.Aff3 {
	sx := w / float64(sb.Dx())
	sy := h / float64(sb.Dy())
	ox := x - float64(sb.Min.X)*sx
	oy := y - float64(sb.Min.Y)*sy
	return f64.Aff3{
		m.XX * sx, m.XY * sy, m.XX*ox + m.XY*oy + m.X0,
		m.YX * sx, m.YY * sy, m.YX*ox + m.YY*oy + m.Y0,
	}
}
