package chroma

import (
	"fmt"
	"math"
	"strconv"

	"crayon/mathx"
)

// RGBA holds 8-bit color channels and a unit-interval alpha.
type RGBA struct {
	R, G, B uint8
	A       float64
}

// NewRGBA rounds and clamps channels into 0..255 and alpha into 0..1.
func NewRGBA(r, g, b, a float64) RGBA {
	return RGBA{R: byte255(r), G: byte255(g), B: byte255(b), A: clampUnit(a)}
}

// RGBAFromRatios takes unit-interval channels.
func RGBAFromRatios(r, g, b, a float64) RGBA {
	return RGBA{R: Scale255(r), G: Scale255(g), B: Scale255(b), A: clampUnit(a)}
}

// Scale255 maps a ratio in 0..1 to a rounded, clamped byte.
func Scale255(ratio float64) uint8 {
	return uint8(math.Round(mathx.Rescale(ratio, 0, 1, 0, 255, true)))
}

func (c RGBA) Alpha() float64 { return c.A }
func (c RGBA) ToRGBA() RGBA   { return c }
func (c RGBA) ToHSLA() HSLA   { return RGBAToHSLA(c) }

func (c RGBA) RGBA() (r, g, b, a uint32) { return premultiply(c.R, c.G, c.B, c.A) }

// CSS formats c as rgba(r, g, b, a).
func (c RGBA) CSS() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, num(clampUnit(c.A)))
}

func (c RGBA) String() string { return c.CSS() }

// NRGBA is the non-premultiplied form, for code that writes pixels directly.
func (c RGBA) NRGBA() (r, g, b, a uint8) { return c.R, c.G, c.B, Scale255(c.A) }

func byte255(n float64) uint8 { return uint8(mathx.Clamp(math.Round(n), 0, 255)) }

func clampUnit(n float64) float64 { return mathx.Clamp(n, 0, 1) }

// num prints a float without trailing zeros or float noise.
func num(n float64) string {
	return strconv.FormatFloat(mathx.Round(n, 1e6), 'f', -1, 64)
}
