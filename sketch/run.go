package sketch

import (
	"context"
	"fmt"
	"image"
	"time"

	"crayon/canvas"
	"crayon/chroma"
	"crayon/hal"
)

// RunConfig selects the host the sketch runs on.
type RunConfig struct {
	// Window opens a desktop window; otherwise the sketch runs headless.
	Window bool
	hal.WindowConfig
	// Hz, Ticks, Input and OnFrame only apply to headless runs.
	Hz      int
	Ticks   uint64
	Input   func(frame uint64) ([]hal.KeyEvent, []hal.PointerEvent)
	OnFrame func(frame uint64, img *image.RGBA) error
	// Smooth selects bilinear image scaling.
	Smooth bool
}

// App adapts a sketch to the hal runners. Each host frame feeds pending
// input to the sketch, calls Tick once and presents the framebuffer.
func App[S any](ctx context.Context, opts Options[S], smooth bool) func(hal.HAL) func() error {
	return func(h hal.HAL) func() error {
		fb := h.Display().Framebuffer()
		fb.Clear(chroma.Transparent)
		s := canvas.SetupCartesian(canvas.Options{
			Target:     fb.Image(),
			ScaleRatio: h.Display().ScaleRatio(),
			Smooth:     smooth,
		})
		sk, err := New(ctx, s, opts)
		if err != nil {
			return func() error { return err }
		}
		if l := h.Logger(); l != nil {
			l.WriteLineString(fmt.Sprintf("sketch started on a %dx%d framebuffer", fb.Width(), fb.Height()))
		}
		t := h.Time()
		sk.clock = func() (uint64, time.Duration) { return t.Frame(), t.Elapsed() }
		in := h.Input()
		return func() error {
			sk.pump(in)
			if err := sk.Tick(); err != nil {
				return err
			}
			return fb.Present()
		}
	}
}

// pump moves events waiting on the host channels into the queue.
func (sk *Sketch[S]) pump(in hal.Input) {
	var kbd <-chan hal.KeyEvent
	var ptr <-chan hal.PointerEvent
	if k := in.Keyboard(); k != nil {
		kbd = k.Events()
	}
	if p := in.Pointer(); p != nil {
		ptr = p.Events()
	}
	for {
		select {
		case ev := <-ptr:
			sk.Dispatch(sk.tr.pointer(ev)...)
		case ev := <-kbd:
			sk.Dispatch(sk.tr.key(ev))
		default:
			return
		}
	}
}

// Run starts the sketch on a window or headless host and blocks until it
// ends.
func Run[S any](ctx context.Context, opts Options[S], cfg RunConfig) error {
	if cfg.Log == nil {
		cfg.Log = opts.Log
	}
	app := App(ctx, opts, cfg.Smooth)
	if cfg.Window {
		return hal.RunWindow(cfg.WindowConfig, app)
	}
	return hal.RunHeadless(ctx, app, hal.HeadlessConfig{
		Config:  cfg.Config,
		Hz:      cfg.Hz,
		Ticks:   cfg.Ticks,
		Input:   cfg.Input,
		OnFrame: cfg.OnFrame,
	})
}
