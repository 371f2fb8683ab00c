package demo

import (
	"crayon/chroma"
	"crayon/mathx"
	"crayon/shape"
	"crayon/sketch"
	"crayon/vec2"
)

// Fade stacks translucent circles along the diagonal, from white down to
// black. The scene is built once in Setup.
func Fade() sketch.Options[[]shape.Node] {
	return sketch.Options[[]shape.Node]{
		Setup: func(*sketch.Context) []shape.Node {
			return mathx.RangeF(func(n float64) shape.Node {
				return shape.NewEllipse(
					vec2.V(n*70, n*70),
					vec2.V(100, 100),
					shape.Filled(chroma.NewHSLA(0, 0, n, 0.1)),
				)
			}, 1, 0, 0.05)
		},
		Draw: func(ctx *sketch.Context, nodes []shape.Node) {
			ctx.Render(shape.Clear{})
			ctx.Render(nodes...)
		},
	}
}
