//go:build !tinygo && !cgo

package hal

// Without the window backend there is nothing to poll; headless runs feed
// input through HeadlessConfig.Input instead.

func (k *hostKeyboard) poll() {}

func (p *hostPointer) poll(w, h int) {}
