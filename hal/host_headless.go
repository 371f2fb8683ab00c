//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"image"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Config
	Hz    int
	Ticks uint64

	// Input, when set, is asked before every step for the events to deliver
	// on that frame. Frames count from 1.
	Input func(frame uint64) ([]KeyEvent, []PointerEvent)
	// OnFrame, when set, sees the framebuffer after every step.
	OnFrame func(frame uint64, img *image.RGBA) error
}

// RunHeadless steps the app on a ticker without opening a window. It returns
// after cfg.Ticks frames (when set), on the first step or OnFrame error, or
// when ctx is done.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHost(cfg.Config)
	step := newApp(h)

	t := time.NewTicker(d)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}

		h.t.step()
		frame := h.t.Frame()
		if cfg.Input != nil {
			keys, ptrs := cfg.Input(frame)
			for _, ev := range keys {
				h.kbd.emit(ev)
			}
			for _, ev := range ptrs {
				h.ptr.emit(ev)
			}
		}
		if step != nil {
			if err := step(); err != nil {
				return err
			}
		}
		if cfg.OnFrame != nil {
			if err := cfg.OnFrame(frame, h.fb.img); err != nil {
				return fmt.Errorf("frame %d: %w", frame, err)
			}
		}
		if cfg.Ticks > 0 && frame >= cfg.Ticks {
			return nil
		}
	}
}
