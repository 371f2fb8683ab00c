package demo

import (
	"crayon/chroma"
	"crayon/lens"
	"crayon/shape"
	"crayon/sketch"
	"crayon/vec2"
)

// DotSize is the size of a fresh dot; Shrink is how much it loses per frame.
const (
	DotSize = 10
	Shrink  = 0.1
)

type Dot struct {
	Pos  vec2.Vec
	Size float64
}

type TrailState struct {
	Down bool
	Dots []Dot
}

var setDown = lens.NewSetter(
	func(s TrailState) bool { return s.Down },
	func(s TrailState, down bool) TrailState { s.Down = down; return s },
)

func addDot(s TrailState, ev sketch.Event) TrailState {
	dots := make([]Dot, len(s.Dots), len(s.Dots)+1)
	copy(dots, s.Dots)
	s.Dots = append(dots, Dot{Pos: ev.Pos, Size: DotSize})
	return s
}

// Trail drops a dot wherever the pointer moves. Dots shrink every frame and
// vanish once they reach zero. Holding a button paints them red.
func Trail() sketch.Options[TrailState] {
	return sketch.Options[TrailState]{
		Setup: func(*sketch.Context) TrailState { return TrailState{} },
		Handlers: map[sketch.EventKind]sketch.Handler[TrailState]{
			sketch.MouseDown:  func(s TrailState, _ sketch.Event) TrailState { return setDown(s, true) },
			sketch.MouseUp:    func(s TrailState, _ sketch.Event) TrailState { return setDown(s, false) },
			sketch.MouseOut:   func(s TrailState, _ sketch.Event) TrailState { return setDown(s, false) },
			sketch.MouseMove:  addDot,
			sketch.TouchStart: addDot,
			sketch.TouchMove:  addDot,
		},
		Update: func(s TrailState) TrailState {
			dots := make([]Dot, 0, len(s.Dots))
			for _, d := range s.Dots {
				d.Size -= Shrink
				if d.Size > 0 {
					dots = append(dots, d)
				}
			}
			s.Dots = dots
			return s
		},
		Draw: func(ctx *sketch.Context, s TrailState) {
			fill := chroma.Color(chroma.Black)
			if s.Down {
				fill = chroma.HSL(0, 0.8, 0.5)
			}
			nodes := []shape.Node{shape.Clear{}}
			for _, d := range s.Dots {
				nodes = append(nodes, shape.NewEllipse(d.Pos, vec2.V(d.Size, d.Size), shape.Filled(fill)))
			}
			ctx.Render(nodes...)
		},
	}
}
