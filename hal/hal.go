package hal

import (
	"errors"
	"image"
	"image/color"
	"strings"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// Framebuffer is an RGBA pixel buffer plus a "present" hook. Width and
// Height are device pixels.
type Framebuffer interface {
	Width() int
	Height() int
	Image() *image.RGBA
	Clear(c color.Color)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyDelete
	KeyHome
	KeyEnd
	KeyF1
	KeyF2
	KeyF3
	KeySpace
	KeyShift
	KeyControl
	KeyAlt
)

var keyNames = map[KeyCode]string{
	KeyUp:        "ArrowUp",
	KeyDown:      "ArrowDown",
	KeyLeft:      "ArrowLeft",
	KeyRight:     "ArrowRight",
	KeyEnter:     "Enter",
	KeyEscape:    "Escape",
	KeyBackspace: "Backspace",
	KeyTab:       "Tab",
	KeyDelete:    "Delete",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyF1:        "F1",
	KeyF2:        "F2",
	KeyF3:        "F3",
	KeySpace:     " ",
	KeyShift:     "Shift",
	KeyControl:   "Control",
	KeyAlt:       "Alt",
}

// String is the DOM-style key name, e.g. "ArrowUp".
func (k KeyCode) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return "Unidentified"
}

// KeyEvent is a keyboard event. Text input arrives as Press events with a
// Rune and KeyUnknown. Keys without a KeyCode carry their DOM key name in
// Name, e.g. "a" or "PageDown".
type KeyEvent struct {
	Code  KeyCode
	Name  string
	Press bool
	Rune  rune
}

// Key is the DOM key name of a press or release edge.
func (e KeyEvent) Key() string {
	if e.Code == KeyUnknown && e.Name != "" {
		return e.Name
	}
	return e.Code.String()
}

var domSymbols = map[string]string{
	"Backquote":      "`",
	"Backslash":      `\`,
	"BracketLeft":    "[",
	"BracketRight":   "]",
	"Comma":          ",",
	"Equal":          "=",
	"IntlBackslash":  `\`,
	"Minus":          "-",
	"Period":         ".",
	"Quote":          "'",
	"Semicolon":      ";",
	"Slash":          "/",
	"Space":          " ",
	"NumpadAdd":      "+",
	"NumpadDecimal":  ".",
	"NumpadDivide":   "/",
	"NumpadEnter":    "Enter",
	"NumpadEqual":    "=",
	"NumpadMultiply": "*",
	"NumpadSubtract": "-",
}

// DOMKey maps a physical key name such as "A", "Digit1" or "Slash" to the
// unshifted DOM key value. Left and right
// modifier variants map to "" because the generic modifier already reports
// the edge.
func DOMKey(name string) string {
	if s, ok := domSymbols[name]; ok {
		return s
	}
	switch {
	case len(name) == 1 && name[0] >= 'A' && name[0] <= 'Z':
		return strings.ToLower(name)
	case strings.HasPrefix(name, "Digit"):
		return strings.TrimPrefix(name, "Digit")
	case strings.HasPrefix(name, "Numpad") && len(name) == len("Numpad")+1:
		return strings.TrimPrefix(name, "Numpad")
	case strings.HasSuffix(name, "Left") && name != "ArrowLeft" && name != "BracketLeft",
		strings.HasSuffix(name, "Right") && name != "ArrowRight" && name != "BracketRight":
		return ""
	}
	return name
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

type PointerKind uint8

const (
	PointerMove PointerKind = iota + 1
	PointerDown
	PointerUp
	PointerWheel
	PointerEnter
	PointerLeave
	TouchStart
	TouchMove
	TouchEnd
)

// PointerEvent is a mouse or touch event. X and Y are device pixels from the
// top-left corner of the framebuffer.
type PointerEvent struct {
	Kind   PointerKind
	X, Y   float64
	Button int
	// DX and DY are wheel offsets.
	DX, DY float64
	// ID tells touches apart.
	ID int
}

// Pointer provides mouse and touch events.
type Pointer interface {
	Events() <-chan PointerEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
	// ScaleRatio is device pixels per logical pixel.
	ScaleRatio() float64
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
	Pointer() Pointer
}

// Time reports the frame clock.
type Time interface {
	// Frame counts host frames, starting at 1 on the first frame.
	Frame() uint64
	// Elapsed is the time since the first frame.
	Elapsed() time.Duration
}

// HAL is the only contact point between a sketch and the host.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
}
