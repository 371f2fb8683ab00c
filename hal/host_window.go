//go:build !tinygo && cgo

package hal

import (
	"crayon/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig configures RunWindow.
type WindowConfig struct {
	Config
	Title string
	TPS   int
}

// RunWindow opens a desktop window that shows the framebuffer and forwards
// keyboard and pointer input. The window is Width x Height logical pixels;
// the framebuffer holds Scale times as many device pixels. It blocks until
// the window closes or a step fails.
func RunWindow(cfg WindowConfig, newApp func(HAL) func() error) error {
	if cfg.Scale <= 0 {
		cfg.Scale = ebiten.Monitor().DeviceScaleFactor()
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	if cfg.Title == "" {
		cfg.Title = "crayon"
	}
	h := newHost(cfg.Config)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle(cfg.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(int(float64(h.fb.Width())/h.scale), int(float64(h.fb.Height())/h.scale))
	ebiten.SetTPS(cfg.TPS)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	g.h.ptr.poll(g.h.fb.Width(), g.h.fb.Height())
	g.h.t.step()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	w, h := fb.Width(), fb.Height()
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != w || g.fbImg.Bounds().Dy() != h {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(w, h)
		g.scratch = make([]byte, len(fb.img.Pix))
	}
	fb.snapshot(g.scratch)
	g.fbImg.WritePixels(g.scratch)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.Width(), g.h.fb.Height()
}
