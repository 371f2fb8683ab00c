package chroma

import (
	"fmt"

	"crayon/lens"
	"crayon/mathx"
)

// HSLA is hue in degrees [0, 360) plus saturation, lightness and alpha in
// the unit interval.
type HSLA struct {
	H, S, L, A float64
}

var (
	Black       = HSLA{H: 0, S: 0, L: 0, A: 1}
	White       = HSLA{H: 0, S: 0, L: 1, A: 1}
	Transparent = HSLA{H: 0, S: 0, L: 0, A: 0}
)

// NewHSLA builds a valid color: hue wraps into [0, 360), the other channels
// are clamped.
func NewHSLA(h, s, l, a float64) HSLA {
	return HSLA{
		H: mathx.Degrees(h),
		S: clampUnit(s),
		L: clampUnit(l),
		A: clampUnit(a),
	}
}

// HSL is NewHSLA with full opacity.
func HSL(h, s, l float64) HSLA { return NewHSLA(h, s, l, 1) }

func (c HSLA) Alpha() float64 { return c.A }
func (c HSLA) ToHSLA() HSLA   { return c }
func (c HSLA) ToRGBA() RGBA   { return HSLAToRGBA(c) }

func (c HSLA) RGBA() (r, g, b, a uint32) {
	x := c.ToRGBA()
	return premultiply(x.R, x.G, x.B, x.A)
}

// CSS formats c as hsla(h, s%, l%, a).
func (c HSLA) CSS() string {
	return fmt.Sprintf("hsla(%s, %s%%, %s%%, %s)",
		num(c.H), num(clampUnit(c.S)*100), num(clampUnit(c.L)*100), num(clampUnit(c.A)))
}

func (c HSLA) String() string { return c.CSS() }

func GetH(c HSLA) float64 { return c.H }
func GetS(c HSLA) float64 { return c.S }
func GetL(c HSLA) float64 { return c.L }
func GetA(c HSLA) float64 { return c.A }

var (
	SetH = lens.NewSetter(GetH, func(c HSLA, h float64) HSLA { return NewHSLA(h, c.S, c.L, c.A) })
	SetS = lens.NewSetter(GetS, func(c HSLA, s float64) HSLA { return NewHSLA(c.H, s, c.L, c.A) })
	SetL = lens.NewSetter(GetL, func(c HSLA, l float64) HSLA { return NewHSLA(c.H, c.S, l, c.A) })
	SetA = lens.NewSetter(GetA, func(c HSLA, a float64) HSLA { return NewHSLA(c.H, c.S, c.L, a) })

	// ScaleS multiplies the current saturation.
	ScaleS = lens.Cursor(GetS, SetS, mathx.Mult)
	ScaleL = lens.Cursor(GetL, SetL, mathx.Mult)
	ScaleA = lens.Cursor(GetA, SetA, mathx.Mult)
)

// RotateH turns the hue along the color wheel by deg degrees.
func RotateH(c HSLA, deg float64) HSLA { return NewHSLA(c.H+deg, c.S, c.L, c.A) }

// Greyscale drops hue and saturation, keeping lightness.
func Greyscale(c HSLA) HSLA { return NewHSLA(0, 0, c.L, c.A) }

// Lerp interpolates every channel, hue included, linearly.
func Lerp(a, b HSLA, t float64) HSLA {
	return NewHSLA(
		mathx.Lerp(a.H, b.H, t),
		mathx.Lerp(a.S, b.S, t),
		mathx.Lerp(a.L, b.L, t),
		mathx.Lerp(a.A, b.A, t),
	)
}

func Complement(c HSLA) HSLA { return RotateH(c, 180) }

func Triadic(c HSLA) []HSLA {
	return []HSLA{c, RotateH(c, -120), RotateH(c, 120)}
}

func Tetradic(c HSLA) []HSLA {
	return []HSLA{c, RotateH(c, -90), RotateH(c, 90), RotateH(c, 180)}
}

// DefaultSpread is the analogous spread used by the demos.
const DefaultSpread = 180

// Analogous samples five colors spread evenly over a slice of the color wheel
// centered on c. A narrower spread gives more similar colors.
func Analogous(c HSLA, spread float64) []HSLA {
	slice := mathx.Fmod(spread, 360) / 4
	return []HSLA{
		RotateH(c, -2*slice),
		RotateH(c, -slice),
		c,
		RotateH(c, slice),
		RotateH(c, 2*slice),
	}
}

// Shades varies lightness around c, darkest first.
func Shades(c HSLA) []HSLA {
	return []HSLA{
		ScaleL(c, 0.4),
		ScaleL(c, 0.2),
		c,
		ScaleL(c, 1.2),
		ScaleL(c, 1.4),
	}
}
