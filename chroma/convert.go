package chroma

import (
	"math"

	"crayon/mathx"
)

// HSLAToRGBA converts with the usual chroma/hue-sector formula.
func HSLAToRGBA(c HSLA) RGBA {
	s, l := clampUnit(c.S), clampUnit(c.L)
	chroma := (1 - math.Abs(2*l-1)) * s
	h := mathx.Degrees(c.H) / 60
	x := chroma * (1 - math.Abs(math.Mod(h, 2)-1))

	var r, g, b float64
	switch {
	case h < 1:
		r, g, b = chroma, x, 0
	case h < 2:
		r, g, b = x, chroma, 0
	case h < 3:
		r, g, b = 0, chroma, x
	case h < 4:
		r, g, b = 0, x, chroma
	case h < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	m := l - chroma/2
	return RGBAFromRatios(r+m, g+m, b+m, c.A)
}

// RGBAToHSLA is the inverse of HSLAToRGBA. Achromatic colors come back with
// hue and saturation 0.
func RGBAToHSLA(c RGBA) HSLA {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255
	hi := math.Max(math.Max(r, g), b)
	lo := math.Min(math.Min(r, g), b)
	delta := hi - lo
	l := (hi + lo) / 2

	if delta == 0 {
		return NewHSLA(0, 0, l, c.A)
	}

	var h float64
	switch hi {
	case r:
		h = math.Mod((g-b)/delta, 6)
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	s := delta / (1 - math.Abs(2*l-1))
	return NewHSLA(h*60, s, l, c.A)
}
