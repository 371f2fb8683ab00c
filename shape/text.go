package shape

import (
	"image/color"
	"math"

	"crayon/canvas"
	"crayon/chroma"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Font is the bitmap font used by Text nodes.
var Font tinyfont.Fonter = &proggy.TinySZ8pt7b

// pathDisplay turns every pixel tinyfont sets into a unit square on the
// current path, so glyphs follow the surface transform.
type pathDisplay struct {
	s canvas.Surface
	n int
}

var _ drivers.Displayer = (*pathDisplay)(nil)

func (d *pathDisplay) Size() (x, y int16) { return math.MaxInt16, math.MaxInt16 }

func (d *pathDisplay) SetPixel(x, y int16, _ color.RGBA) {
	d.s.Rect(float64(x), float64(y), 1, 1)
	d.n++
}

func (d *pathDisplay) Display() error { return nil }

// TextWidth is the width of s in font pixels.
func TextWidth(s string) int {
	_, outbox := tinyfont.LineWidth(Font, s)
	return int(outbox)
}

func (r *Renderer) text(t Text) {
	if t.Text == "" || chroma.IsTransparent(t.Fill) {
		return
	}
	k := t.FontScale
	if k <= 0 {
		k = 1
	}
	s := r.s
	s.Save()
	s.Translate(t.Pos.X, t.Pos.Y)
	// glyphs are laid out Y-down from the baseline
	if canvas.Det(s.Matrix()) < 0 {
		s.Scale(k, -k)
	} else {
		s.Scale(k, k)
	}
	s.BeginPath()
	d := &pathDisplay{s: s}
	tinyfont.WriteLine(d, Font, int16(-TextWidth(t.Text)/2), 0, t.Text, color.RGBA{})
	if d.n > 0 {
		s.Fill(t.Fill)
	}
	s.Restore()
}
