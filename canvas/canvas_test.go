package canvas

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"crayon/chroma"
	"crayon/vec2"

	"github.com/fogleman/gg"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = chroma.HSL(0, 1, 0.5)

// isRed allows for a little anti-aliasing slack.
func isRed(c color.RGBA) bool {
	return c.R >= 250 && c.G <= 5 && c.B <= 5 && c.A >= 250
}

func TestMatrix(t *testing.T) {
	m := gg.Identity().Translate(10, 20).Scale(2, -2)
	x, y := m.TransformPoint(1, 1)
	assert.Equal(t, []float64{12, 18}, []float64{x, y})
	assert.Equal(t, -4.0, Det(m))
	assert.Equal(t, 2.0, LineScale(m))
	assert.True(t, AxisAligned(m))

	ix, iy := Invert(m).TransformPoint(x, y)
	assert.InDelta(t, 1, ix, 1e-12)
	assert.InDelta(t, 1, iy, 1e-12)

	r := gg.Identity().Rotate(math.Pi / 2)
	x, y = r.TransformPoint(1, 0)
	assert.InDelta(t, 0, x, 1e-12)
	assert.InDelta(t, 1, y, 1e-12)
	assert.False(t, AxisAligned(r))
	assert.Equal(t, gg.Identity(), Invert(Matrix{}))
}

func TestPenUsesCanvasOrder(t *testing.T) {
	n := Null(10, 10, 1)
	n.Translate(10, 20)
	n.Scale(2, -2)
	n.Rotate(math.Pi / 2)
	x, y := n.Matrix().TransformPoint(1, 0)
	assert.InDelta(t, 10, x, 1e-12)
	assert.InDelta(t, 18, y, 1e-12)
}

func TestArcSweep(t *testing.T) {
	tcs := []struct {
		name          string
		start, end    float64
		anticlockwise bool
		want          float64
	}{
		{name: "quarter", start: 0, end: math.Pi / 2, want: math.Pi / 2},
		{name: "wrapped", start: math.Pi, end: 0, want: math.Pi},
		{name: "full", start: 0, end: 2 * math.Pi, want: 2 * math.Pi},
		{name: "beyond full", start: 1, end: 9, want: 2 * math.Pi},
		{name: "anticlockwise", start: 0, end: math.Pi / 2, anticlockwise: true, want: -3 * math.Pi / 2},
		{name: "anticlockwise full", start: 0, end: -7, anticlockwise: true, want: -2 * math.Pi},
		{name: "empty", start: 1, end: 1, want: 0},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := arcSweep(tc.start, tc.end, tc.anticlockwise); math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("arcSweep(%v, %v, %v) = %v; want %v", tc.start, tc.end, tc.anticlockwise, got, tc.want)
			}
		})
	}
}

func kinds(p Path) []SegKind {
	out := make([]SegKind, len(p))
	for i, s := range p {
		out[i] = s.Kind
	}
	return out
}

func TestPenPath(t *testing.T) {
	n := Null(10, 10, 1).(*nullSurface)

	Rect(n, 0, 0, 4, 2)
	assert.Equal(t, []SegKind{SegMove, SegLine, SegLine, SegLine, SegClose}, kinds(n.path))
	assert.Equal(t, Point{-2, -1}, n.path[0].P[0])

	Ellipse(n, 0, 0, 3, 1)
	require.Len(t, n.path, 5)
	assert.Equal(t, SegMove, n.path[0].Kind)
	end := n.path[4].P[2]
	assert.InDelta(t, 3, end.X, 1e-9)
	assert.InDelta(t, 0, end.Y, 1e-9)

	// A line after closePath reopens at the subpath start.
	n.BeginPath()
	n.MoveTo(1, 1)
	n.LineTo(2, 1)
	n.ClosePath()
	n.LineTo(5, 5)
	assert.Equal(t, []SegKind{SegMove, SegLine, SegClose, SegMove, SegLine}, kinds(n.path))
	assert.Equal(t, Point{1, 1}, n.path[3].P[0])

	// An arc joins the current point with a line.
	n.BeginPath()
	n.MoveTo(0, 0)
	n.Arc(0, 0, 1, 0, math.Pi, false)
	assert.Equal(t, []SegKind{SegMove, SegLine, SegCubic, SegCubic}, kinds(n.path))
}

func TestSaveRestore(t *testing.T) {
	n := Null(10, 10, 1)
	n.Translate(5, 5)
	n.Save()
	n.Scale(2, 2)
	n.Rotate(1)
	n.Restore()
	n.Restore() // unbalanced restore is ignored
	assert.Equal(t, gg.Translate(5, 5), n.Matrix())
	n.ResetTransform()
	assert.Equal(t, gg.Identity(), n.Matrix())
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(nil)
	Rect(r, 0, 0, 10, 20)
	Fill(r, red)
	Stroke(r, chroma.Black, 2, CapRound, JoinBevel)
	DashStroke(r, chroma.Black, []float64{4, 2}, 1, 1, CapButt, JoinMiter)
	Arc(r, 0, 0, 5, 0, math.Pi, true, true)

	want := []string{
		"beginPath()",
		"rect(-5, -10, 10, 20)",
		"fill(hsla(0, 100%, 50%, 1))",
		"stroke(hsla(0, 0%, 0%, 1), 2, round, bevel)",
		"stroke(hsla(0, 0%, 0%, 1), 1, butt, miter, [4 2], 1)",
		"beginPath()",
		"arc(0, 0, 5, 0, 3.14159, true)",
		"closePath()",
	}
	if diff := cmp.Diff(want, r.Calls()); diff != "" {
		t.Fatalf("calls mismatch (-want +got):\n%s", diff)
	}
	r.Reset()
	assert.Empty(t, r.Calls())
}

func TestCartesian(t *testing.T) {
	s := SetupCartesian(Options{Width: 200, Height: 100, ScaleRatio: 2})
	w, h := s.Size()
	assert.Equal(t, []int{400, 200}, []int{w, h})
	assert.Equal(t, Matrix{XX: 2, YY: -2, X0: 200, Y0: 100}, s.Matrix())

	lw, lh := LogicalSize(s)
	assert.Equal(t, []float64{200, 100}, []float64{lw, lh})

	opts := cmpopts.EquateApprox(0, 1e-9)
	if diff := cmp.Diff(vec2.V(0, 0), EventCartesian(200, 100, s), opts); diff != "" {
		t.Fatalf("center event (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(vec2.V(-100, 50), EventCartesian(0, 0, s), opts); diff != "" {
		t.Fatalf("corner event (-want +got):\n%s", diff)
	}
}

func TestRasterFillClear(t *testing.T) {
	s := SetupCartesian(Options{Width: 10, Height: 10, ScaleRatio: 1})
	img := s.Image()

	Rect(s, 0, 0, 10, 10)
	Fill(s, red)
	assert.True(t, isRed(img.RGBAAt(5, 5)), "got %v", img.RGBAAt(5, 5))

	Fill(s, chroma.Transparent)
	assert.True(t, isRed(img.RGBAAt(5, 5)))

	Clear(s, 2.5, 0, 5, 10)
	assert.Zero(t, img.RGBAAt(7, 5).A, "right half cleared")
	assert.True(t, isRed(img.RGBAAt(2, 5)), "left half kept")
	assert.True(t, isRed(img.RGBAAt(0, 0)), "corner kept")
	assert.True(t, isRed(img.RGBAAt(4, 9)), "edge column kept")
	assert.Zero(t, img.RGBAAt(5, 0).A, "first cleared column")

	Clear(s, 0, 0, 10, 10)
	assert.Zero(t, img.RGBAAt(2, 5).A)
}

func TestRasterStroke(t *testing.T) {
	s := SetupCartesian(Options{Width: 10, Height: 10, ScaleRatio: 1})
	img := s.Image()

	Line(s, vec2.V(-5, 0), vec2.V(5, 0))
	Stroke(s, red, 2, CapButt, JoinMiter)
	assert.True(t, isRed(img.RGBAAt(3, 4)), "got %v", img.RGBAAt(3, 4))
	assert.True(t, isRed(img.RGBAAt(3, 5)), "got %v", img.RGBAAt(3, 5))
	assert.Zero(t, img.RGBAAt(3, 1).A)

	var buf bytes.Buffer
	require.NoError(t, s.EncodePNG(&buf))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 10, 10), decoded.Bounds())
}

func TestImageUpright(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	top := color.RGBA{255, 0, 0, 255}
	bottom := color.RGBA{0, 0, 255, 255}
	src.SetRGBA(0, 0, top)
	src.SetRGBA(1, 0, top)
	src.SetRGBA(0, 1, bottom)
	src.SetRGBA(1, 1, bottom)

	s := SetupCartesian(Options{Width: 2, Height: 2})
	Image(s, src, 0, 0)
	assert.Equal(t, top, s.Image().RGBAAt(0, 0))
	assert.Equal(t, bottom, s.Image().RGBAAt(1, 1))
	assert.Equal(t, Matrix{XX: 1, YY: -1, X0: 1, Y0: 1}, s.Matrix(), "transform restored")
}

func TestSVG(t *testing.T) {
	s := NewSVG(100, 100, 1, nil)
	TransformCartesian(s, 100, 100, 1)

	Rect(s, 0, 0, 10, 10)
	Fill(s, red)
	s.Scale(2, 2)
	Line(s, vec2.V(0, 0), vec2.V(10, 0))
	DashStroke(s, chroma.RGBA{R: 0, G: 0, B: 255, A: 0.5}, []float64{3, 1}, 0, 1.5, CapRound, JoinRound)

	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `d="M45 55 L55 55 L55 45 L45 45 Z"`)
	assert.Contains(t, out, "fill:rgb(255,0,0);fill-opacity:1;stroke:none")
	assert.Contains(t, out, `d="M50 50 L70 50"`)
	assert.Contains(t, out, "stroke:rgb(0,0,255);stroke-opacity:0.5;stroke-width:3")
	assert.Contains(t, out, "stroke-dasharray:6,2")
	assert.Contains(t, out, "</svg>")
}

func TestSVGClear(t *testing.T) {
	s := NewSVG(50, 50, 1, nil)
	TransformCartesian(s, 50, 50, 1)
	Rect(s, 0, 0, 10, 10)
	Fill(s, red)

	Clear(s, 0, 0, 10, 10)
	Clear(s, 0, 0, 50, 50)
	Ellipse(s, 0, 0, 5, 5)
	Fill(s, chroma.Black)

	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)
	out := buf.String()
	assert.NotContains(t, out, "rgb(255,0,0)", "full clear drops earlier paths")
	assert.Contains(t, out, "fill:rgb(0,0,0)")
	assert.Equal(t, 1, strings.Count(out, "<path"))
}

func TestSVGImage(t *testing.T) {
	s := NewSVG(20, 20, 1, nil)
	s.DrawImage(image.NewRGBA(image.Rect(0, 0, 4, 2)), 1, 2, 8, 2)

	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, `transform="matrix(2,0,0,1,1,2)"`)
	assert.Contains(t, out, "data:image/png;base64,")
}

func TestLoadImages(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i, name := range []string{"a.png", "b.png"} {
		p := filepath.Join(dir, name)
		f, err := os.Create(p)
		require.NoError(t, err)
		require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, i+1, 1))))
		require.NoError(t, f.Close())
		paths = append(paths, p)
	}

	imgs, err := LoadImages(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, imgs, 2)
	assert.Equal(t, 1, imgs[0].Bounds().Dx())
	assert.Equal(t, 2, imgs[1].Bounds().Dx())

	_, err = LoadImages(context.Background(), append(paths, filepath.Join(dir, "missing.png")))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("nope"), 0o644))
	_, err = LoadImage(bad)
	assert.ErrorIs(t, err, ErrNoImage)
}
