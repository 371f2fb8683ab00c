package canvas

import (
	"math"

	"github.com/fogleman/gg"
)

// Matrix is a 2D affine transform in Canvas2D setTransform order, with
// (a, b, c, d, e, f) stored as (XX, YX, XY, YY, X0, Y0):
//
//	x' = XX*x + XY*y + X0
//	y' = YX*x + YY*y + Y0
//
// Composition follows gg: m.Translate(x, y) applies the translation before m.
type Matrix = gg.Matrix

// Det is the determinant of m. It is negative when m mirrors.
func Det(m Matrix) float64 { return m.XX*m.YY - m.YX*m.XY }

// LineScale is the factor a line width grows by under m.
func LineScale(m Matrix) float64 { return math.Sqrt(math.Abs(Det(m))) }

// AxisAligned reports whether m neither rotates nor skews.
func AxisAligned(m Matrix) bool { return m.YX == 0 && m.XY == 0 }

// Invert returns the inverse transform. A singular matrix inverts to the
// identity.
func Invert(m Matrix) Matrix {
	det := Det(m)
	if det == 0 {
		return gg.Identity()
	}
	return Matrix{
		XX: m.YY / det,
		YX: -m.YX / det,
		XY: -m.XY / det,
		YY: m.XX / det,
		X0: (m.XY*m.Y0 - m.YY*m.X0) / det,
		Y0: (m.YX*m.X0 - m.XX*m.Y0) / det,
	}
}
