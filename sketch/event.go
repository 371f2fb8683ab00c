package sketch

import (
	"crayon/canvas"
	"crayon/hal"
	"crayon/vec2"
)

// EventKind names an input event the way browsers do.
type EventKind string

const (
	Click      EventKind = "click"
	MouseDown  EventKind = "mousedown"
	MouseUp    EventKind = "mouseup"
	MouseMove  EventKind = "mousemove"
	MouseOver  EventKind = "mouseover"
	MouseOut   EventKind = "mouseout"
	TouchStart EventKind = "touchstart"
	TouchEnd   EventKind = "touchend"
	TouchMove  EventKind = "touchmove"
	Wheel      EventKind = "wheel"
	KeyDown    EventKind = "keydown"
	KeyUp      EventKind = "keyup"
	KeyPress   EventKind = "keypress"
)

// Events lists every kind a handler can be bound to.
var Events = []EventKind{
	Click, MouseDown, MouseUp, MouseMove, MouseOver, MouseOut,
	TouchStart, TouchEnd, TouchMove, Wheel, KeyDown, KeyUp, KeyPress,
}

// Event is one input event. Pos is in the cartesian space of the sketch
// surface (origin at the center, Y up).
type Event struct {
	Kind   EventKind
	Pos    vec2.Vec
	Button int
	// Delta is the wheel offset.
	Delta vec2.Vec
	// Key is a DOM-style key name; for keypress it is the typed text.
	Key  string
	Rune rune
	// ID tells touches apart.
	ID int
}

// translator turns host events into sketch events.
type translator struct {
	s    canvas.Surface
	down bool
}

func (t *translator) pointer(ev hal.PointerEvent) []Event {
	e := Event{Pos: canvas.EventCartesian(ev.X, ev.Y, t.s), Button: ev.Button, ID: ev.ID}
	switch ev.Kind {
	case hal.PointerMove:
		e.Kind = MouseMove
	case hal.PointerDown:
		t.down = true
		e.Kind = MouseDown
	case hal.PointerUp:
		e.Kind = MouseUp
		if t.down {
			t.down = false
			click := e
			click.Kind = Click
			return []Event{e, click}
		}
	case hal.PointerWheel:
		e.Kind = Wheel
		e.Delta = vec2.V(ev.DX, ev.DY)
	case hal.PointerEnter:
		e.Kind = MouseOver
	case hal.PointerLeave:
		e.Kind = MouseOut
	case hal.TouchStart:
		e.Kind = TouchStart
	case hal.TouchMove:
		e.Kind = TouchMove
	case hal.TouchEnd:
		e.Kind = TouchEnd
	default:
		return nil
	}
	return []Event{e}
}

func (t *translator) key(ev hal.KeyEvent) Event {
	switch {
	case ev.Rune != 0:
		return Event{Kind: KeyPress, Key: string(ev.Rune), Rune: ev.Rune}
	case ev.Press:
		return Event{Kind: KeyDown, Key: ev.Key()}
	default:
		return Event{Kind: KeyUp, Key: ev.Key()}
	}
}
