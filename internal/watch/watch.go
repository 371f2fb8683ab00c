// Package watch reports debounced changes to a set of files.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce batches the bursts of events an editor save produces.
const DefaultDebounce = 150 * time.Millisecond

// Watcher calls onChange once per file after its events have been quiet for
// the debounce interval. Files are watched through their parent directory,
// so a file replaced by rename-on-save keeps being tracked.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	files    map[string]struct{}
	dirs     map[string]struct{}
	pending  map[string]time.Time
	debounce time.Duration
	onChange func(path string)
	log      *zap.Logger
}

// New creates a watcher. A zero debounce uses DefaultDebounce.
func New(debounce time.Duration, log *zap.Logger, onChange func(path string)) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if log == nil {
		log = zap.NewNop()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	return &Watcher{
		watcher:  fw,
		files:    make(map[string]struct{}),
		dirs:     make(map[string]struct{}),
		pending:  make(map[string]time.Time),
		debounce: debounce,
		onChange: onChange,
		log:      log.Named("watch"),
	}, nil
}

// Add starts tracking path.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.files[abs] = struct{}{}
	if _, ok := w.dirs[dir]; ok {
		return nil
	}
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.dirs[dir] = struct{}{}
	w.log.Debug("watching", zap.String("dir", dir), zap.String("file", abs))
	return nil
}

// Run delivers changes until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	tick := time.NewTicker(max(w.debounce/4, 10*time.Millisecond))
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handle(ev, time.Now())
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				w.log.Warn("event overflow, rescanning all files")
				w.touchAll(time.Now())
				continue
			}
			w.log.Error("watch error", zap.Error(err))
		case now := <-tick.C:
			for _, path := range w.flush(now) {
				w.onChange(path)
			}
		}
	}
}

// Close stops the underlying watcher; Run returns afterwards.
func (w *Watcher) Close() error { return w.watcher.Close() }

func (w *Watcher) handle(ev fsnotify.Event, now time.Time) {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Rename) {
		return
	}
	path := filepath.Clean(ev.Name)
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.files[path]; !ok {
		return
	}
	w.pending[path] = now
	w.log.Debug("file event", zap.String("path", path), zap.String("op", ev.Op.String()))
}

func (w *Watcher) touchAll(now time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for f := range w.files {
		w.pending[f] = now
	}
}

// flush returns files whose last event is at least one debounce old.
func (w *Watcher) flush(now time.Time) []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	var ready []string
	for path, at := range w.pending {
		if now.Sub(at) >= w.debounce {
			ready = append(ready, path)
			delete(w.pending, path)
		}
	}
	return ready
}
