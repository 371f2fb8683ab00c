//go:build !tinygo

package hal

// Host input devices buffer up to inputBuffer events between frames. Events
// arriving while the buffer is full are dropped.
const inputBuffer = 64

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, inputBuffer)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) emit(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}

type hostPointer struct {
	ch chan PointerEvent

	x, y   int
	inside bool
	seen   bool
}

func newHostPointer() *hostPointer {
	return &hostPointer{ch: make(chan PointerEvent, inputBuffer)}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }

func (p *hostPointer) emit(ev PointerEvent) {
	select {
	case p.ch <- ev:
	default:
	}
}

// moved reports a cursor position, emitting enter/leave when it crosses
// the w x h bounds and a move event when it changes inside them.
func (p *hostPointer) moved(x, y, w, h int) {
	inside := x >= 0 && y >= 0 && x < w && y < h
	changed := !p.seen || x != p.x || y != p.y
	at := PointerEvent{X: float64(x), Y: float64(y)}
	switch {
	case inside && !p.inside:
		at.Kind = PointerEnter
		p.emit(at)
	case !inside && p.inside:
		at.Kind = PointerLeave
		p.emit(at)
	}
	if inside && changed && p.seen {
		at.Kind = PointerMove
		p.emit(at)
	}
	p.x, p.y, p.inside, p.seen = x, y, inside, true
}
