//go:build !tinygo

package hal

import (
	"math"

	"go.uber.org/zap"
)

// Config sizes the host. Width and Height are logical pixels.
type Config struct {
	Width, Height int
	// Scale is device pixels per logical pixel. Zero means 1 for headless
	// runs and the monitor's device scale factor for windows.
	Scale float64
	Log   *zap.Logger
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = 320
	}
	if c.Height <= 0 {
		c.Height = 320
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Log == nil {
		c.Log = zap.NewNop()
	}
	return c
}

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	scale  float64
	kbd    *hostKeyboard
	ptr    *hostPointer
	t      *hostTime
}

// New returns a host HAL implementation.
func New(cfg Config) HAL { return newHost(cfg) }

func newHost(cfg Config) *hostHAL {
	cfg = cfg.withDefaults()
	w := int(math.Round(float64(cfg.Width) * cfg.Scale))
	h := int(math.Round(float64(cfg.Height) * cfg.Scale))
	return &hostHAL{
		logger: &hostLogger{log: cfg.Log.Named("hal")},
		fb:     newHostFramebuffer(w, h),
		scale:  cfg.Scale,
		kbd:    newHostKeyboard(),
		ptr:    newHostPointer(),
		t:      &hostTime{},
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb, scale: h.scale} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd, ptr: h.ptr} }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	fb    *hostFramebuffer
	scale float64
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }
func (d hostDisplay) ScaleRatio() float64      { return d.scale }

type hostInput struct {
	kbd *hostKeyboard
	ptr *hostPointer
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
func (in hostInput) Pointer() Pointer   { return in.ptr }

// hostLogger forwards lines to zap at info level.
type hostLogger struct {
	log *zap.Logger
}

func (l *hostLogger) WriteLineString(s string) { l.log.Info(s) }

func (l *hostLogger) WriteLineBytes(b []byte) { l.log.Info(string(b)) }
