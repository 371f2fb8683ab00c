//go:build !tinygo

package hal

import (
	"image"
	"image/color"
	"image/draw"
	"sync"
)

type hostFramebuffer struct {
	mu  sync.Mutex
	img *image.RGBA
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	return &hostFramebuffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (f *hostFramebuffer) Width() int         { return f.img.Rect.Dx() }
func (f *hostFramebuffer) Height() int        { return f.img.Rect.Dy() }
func (f *hostFramebuffer) Image() *image.RGBA { return f.img }
func (f *hostFramebuffer) Present() error     { return nil }

func (f *hostFramebuffer) Clear(c color.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	draw.Draw(f.img, f.img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// snapshot copies the pixels into dst, which must hold len(Pix) bytes.
func (f *hostFramebuffer) snapshot(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.img.Pix)
}
