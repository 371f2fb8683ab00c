//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var hostKeys = map[ebiten.Key]KeyCode{
	ebiten.KeyArrowUp:    KeyUp,
	ebiten.KeyArrowDown:  KeyDown,
	ebiten.KeyArrowLeft:  KeyLeft,
	ebiten.KeyArrowRight: KeyRight,
	ebiten.KeyEnter:      KeyEnter,
	ebiten.KeyEscape:     KeyEscape,
	ebiten.KeyBackspace:  KeyBackspace,
	ebiten.KeyTab:        KeyTab,
	ebiten.KeyDelete:     KeyDelete,
	ebiten.KeyHome:       KeyHome,
	ebiten.KeyEnd:        KeyEnd,
	ebiten.KeyF1:         KeyF1,
	ebiten.KeyF2:         KeyF2,
	ebiten.KeyF3:         KeyF3,
	ebiten.KeySpace:      KeySpace,
	ebiten.KeyShift:      KeyShift,
	ebiten.KeyControl:    KeyControl,
	ebiten.KeyAlt:        KeyAlt,
}

// poll emits press edges, then release edges, then the text typed this
// frame.
func (k *hostKeyboard) poll() {
	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		k.edge(key, true)
	}
	for _, key := range inpututil.AppendJustReleasedKeys(nil) {
		k.edge(key, false)
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		k.emit(KeyEvent{Press: true, Rune: r})
	}
}

func (k *hostKeyboard) edge(key ebiten.Key, press bool) {
	ev := KeyEvent{Code: hostKeys[key], Press: press}
	if ev.Code == KeyUnknown {
		if ev.Name = DOMKey(key.String()); ev.Name == "" {
			return
		}
	}
	k.emit(ev)
}
