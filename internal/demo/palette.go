package demo

import (
	"crayon/canvas"
	"crayon/chroma"
	"crayon/grid"
	"crayon/random"
	"crayon/shape"
	"crayon/sketch"
	"crayon/vec2"
)

// Drift is how far the hue turns each frame.
const Drift = 0.5

type PaletteState struct {
	Base   chroma.HSLA
	Paused bool
	rand   *random.Rand
}

type row struct {
	label  string
	colors func(chroma.HSLA) []chroma.HSLA
}

var rows = []row{
	{"complement", func(c chroma.HSLA) []chroma.HSLA { return []chroma.HSLA{c, chroma.Complement(c)} }},
	{"triadic", chroma.Triadic},
	{"tetradic", chroma.Tetradic},
	{"analogous", func(c chroma.HSLA) []chroma.HSLA { return chroma.Analogous(c, chroma.DefaultSpread) }},
	{"shades", chroma.Shades},
	{"grey", func(c chroma.HSLA) []chroma.HSLA {
		out := chroma.Shades(c)
		for i, s := range out {
			out[i] = chroma.Greyscale(s)
		}
		return out
	}},
}

// Palette lays out the harmonies of a slowly turning base hue, one row per
// harmony. Space pauses the drift, r picks a random hue and the wheel
// nudges it.
func Palette() sketch.Options[PaletteState] {
	return PaletteFrom(random.Default)
}

// PaletteFrom is Palette with its randomness drawn from r.
func PaletteFrom(r *random.Rand) sketch.Options[PaletteState] {
	return sketch.Options[PaletteState]{
		Setup: func(*sketch.Context) PaletteState {
			return PaletteState{Base: chroma.HSL(r.Float(0, 360), 0.6, 0.5), rand: r}
		},
		Handlers: map[sketch.EventKind]sketch.Handler[PaletteState]{
			sketch.KeyPress: func(s PaletteState, ev sketch.Event) PaletteState {
				switch ev.Rune {
				case ' ':
					s.Paused = !s.Paused
				case 'r':
					s.Base = chroma.SetH(s.Base, s.rand.Float(0, 360))
				}
				return s
			},
			sketch.Wheel: func(s PaletteState, ev sketch.Event) PaletteState {
				s.Base = chroma.RotateH(s.Base, ev.Delta.Y*5)
				return s
			},
		},
		Update: func(s PaletteState) PaletteState {
			if !s.Paused {
				s.Base = chroma.RotateH(s.Base, Drift)
			}
			return s
		},
		Draw: func(ctx *sketch.Context, s PaletteState) {
			ctx.Render(shape.NewBackground(chroma.White))
			ctx.Render(Swatches(ctx.Surface, s.Base)...)
		},
	}
}

// Swatches builds one row of squares per harmony of base, sized to fill the
// logical area of s.
func Swatches(s canvas.Surface, base chroma.HSLA) []shape.Node {
	const cols = 6
	w, h := canvas.LogicalSize(s)
	size := vec2.V(w*0.9, h*0.9)
	cell := grid.Cell(size, cols, len(rows))
	sw := vec2.Mult(cell, 0.8)
	nodes := make([]shape.Node, 0, cols*len(rows))
	for r, rw := range rows {
		label := grid.Pos(r*cols, size, cols, len(rows), vec2.Origin)
		nodes = append(nodes, shape.NewText(label, rw.label, chroma.Black))
		for i, c := range rw.colors(base) {
			pos := grid.Pos(r*cols+i+1, size, cols, len(rows), vec2.Origin)
			nodes = append(nodes, shape.NewRect(pos, sw, shape.Filled(c).WithStroke(chroma.Black, 1)))
		}
	}
	return nodes
}
