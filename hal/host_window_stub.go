//go:build !tinygo && !cgo

package hal

import "fmt"

// WindowConfig configures RunWindow.
type WindowConfig struct {
	Config
	Title string
	TPS   int
}

func RunWindow(_ WindowConfig, _ func(h HAL) func() error) error {
	return fmt.Errorf("window mode requires cgo (build/run with CGO_ENABLED=1): %w", ErrNotImplemented)
}
