//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var hostButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonMiddle,
	ebiten.MouseButtonRight,
}

func (p *hostPointer) poll(w, h int) {
	x, y := ebiten.CursorPosition()
	p.moved(x, y, w, h)

	for i, b := range hostButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			p.emit(PointerEvent{Kind: PointerDown, X: float64(x), Y: float64(y), Button: i})
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			p.emit(PointerEvent{Kind: PointerUp, X: float64(x), Y: float64(y), Button: i})
		}
	}
	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		p.emit(PointerEvent{Kind: PointerWheel, X: float64(x), Y: float64(y), DX: dx, DY: dy})
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		tx, ty := ebiten.TouchPosition(id)
		p.emit(PointerEvent{Kind: TouchStart, X: float64(tx), Y: float64(ty), ID: int(id)})
	}
	for _, id := range ebiten.AppendTouchIDs(nil) {
		if inpututil.TouchPressDuration(id) <= 1 {
			continue
		}
		tx, ty := ebiten.TouchPosition(id)
		px, py := inpututil.TouchPositionInPreviousTick(id)
		if tx != px || ty != py {
			p.emit(PointerEvent{Kind: TouchMove, X: float64(tx), Y: float64(ty), ID: int(id)})
		}
	}
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		tx, ty := inpututil.TouchPositionInPreviousTick(id)
		p.emit(PointerEvent{Kind: TouchEnd, X: float64(tx), Y: float64(ty), ID: int(id)})
	}
}
