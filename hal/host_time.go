//go:build !tinygo

package hal

import (
	"sync/atomic"
	"time"
)

type hostTime struct {
	frame atomic.Uint64
	start time.Time
	now   atomic.Int64
}

func (t *hostTime) Frame() uint64 { return t.frame.Load() }

func (t *hostTime) Elapsed() time.Duration { return time.Duration(t.now.Load()) }

// step advances one frame. It is called from the host loop only.
func (t *hostTime) step() {
	now := time.Now()
	if t.start.IsZero() {
		t.start = now
	}
	t.now.Store(int64(now.Sub(t.start)))
	t.frame.Add(1)
}
