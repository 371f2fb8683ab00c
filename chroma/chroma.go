// Package chroma is the color model: HSLA as the canonical working space,
// RGBA for output, CSS strings for serialization.
//
// Every color operation returns a new value. Setters are copy-on-write: they
// return their input when the channel already holds the requested value.
package chroma

import (
	"errors"
	"image/color"
)

// ErrSyntax is returned when a CSS color string cannot be parsed.
var ErrSyntax = errors.New("chroma: invalid color syntax")

// Color is implemented by HSLA and RGBA. Both also satisfy image/color.Color
// so they can be handed straight to raster backends.
type Color interface {
	color.Color
	Alpha() float64
	CSS() string
	ToRGBA() RGBA
	ToHSLA() HSLA
}

// Alpha reads the alpha channel of any color. A nil color has alpha 0.
func Alpha(c Color) float64 {
	if c == nil {
		return 0
	}
	return c.Alpha()
}

// IsTransparent reports whether c would paint nothing.
func IsTransparent(c Color) bool { return Alpha(c) == 0 }

// CSS serializes c, falling back to "transparent" for nil.
func CSS(c Color) string {
	if c == nil {
		return "transparent"
	}
	return c.CSS()
}

// premultiply converts 8-bit channels plus unit alpha into the 16-bit
// premultiplied form image/color expects.
func premultiply(r, g, b uint8, a float64) (uint32, uint32, uint32, uint32) {
	a16 := uint32(clampUnit(a)*0xffff + 0.5)
	mul := func(c uint8) uint32 { return uint32(c) * 0x101 * a16 / 0xffff }
	return mul(r), mul(g), mul(b), a16
}
