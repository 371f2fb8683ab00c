// Package grid lays out cell centers in cartesian space.
package grid

import (
	"math"

	"crayon/vec2"
)

func dims(size vec2.Vec, cols, rows int) (w, h float64, c, r int) {
	return math.Abs(size.X), math.Abs(size.Y), max(cols, 1), max(rows, 1)
}

// Pos is the center of cell i in a cols x rows grid of the given overall
// size, centered on origin. Cells count row-major starting at the top-left,
// with Y pointing up. Indexes past the last cell keep counting downward.
func Pos(i int, size vec2.Vec, cols, rows int, origin vec2.Vec) vec2.Vec {
	w, h, c, r := dims(size, cols, rows)
	cw, ch := w/float64(c), h/float64(r)
	col, row := i%c, i/c
	if col < 0 {
		col += c
		row--
	}
	return vec2.V(
		origin.X-w/2+cw*(float64(col)+0.5),
		origin.Y+h/2-ch*(float64(row)+0.5),
	)
}

// Grid lists every cell center, in the order Pos counts them.
func Grid(size vec2.Vec, cols, rows int, origin vec2.Vec) []vec2.Vec {
	_, _, c, r := dims(size, cols, rows)
	out := make([]vec2.Vec, 0, c*r)
	for i := 0; i < c*r; i++ {
		out = append(out, Pos(i, size, cols, rows, origin))
	}
	return out
}

// Cell is the width and height of one cell.
func Cell(size vec2.Vec, cols, rows int) vec2.Vec {
	w, h, c, r := dims(size, cols, rows)
	return vec2.V(w/float64(c), h/float64(r))
}
