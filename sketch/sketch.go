// Package sketch runs the setup, update and draw loop of an interactive
// drawing.
//
// A sketch holds one state value of type S. Setup produces it; every event
// handler and every Update replaces it wholesale; Draw reads it.
package sketch

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
	"time"

	"crayon/canvas"
	"crayon/lens"
	"crayon/shape"

	"go.uber.org/zap"
)

// ErrNoDraw is returned by New when the options have no Draw function.
var ErrNoDraw = errors.New("sketch: no draw function")

// Handler folds an event into the state.
type Handler[S any] func(state S, ev Event) S

// Middleware rewrites options before the sketch starts.
type Middleware[S any] func(Options[S]) Options[S]

// Context is handed to Setup and Draw.
type Context struct {
	Surface canvas.Surface
	// Render draws scene nodes onto Surface.
	Render func(nodes ...shape.Node)
	Log    *zap.Logger
	// Frame counts ticks, starting at 1 on the first Draw.
	Frame   uint64
	Elapsed time.Duration
	// Images holds the preloaded images once they are ready.
	Images []image.Image
}

// Options describe a sketch.
type Options[S any] struct {
	Setup  func(*Context) S
	Update func(S) S
	Draw   func(*Context, S)
	// Handlers maps event kinds to handlers. Kinds without one are ignored.
	Handlers map[EventKind]Handler[S]
	// Middleware runs once, before anything else.
	Middleware Middleware[S]
	// Preload lists image files loaded in the background. Preloaded is
	// called with them, in order, on the first tick after they are ready.
	Preload   []string
	Preloaded func(S, []image.Image) S
	Log       *zap.Logger
}

// Chain composes middleware, applying them left to right.
func Chain[S any](ms ...Middleware[S]) Middleware[S] {
	return func(o Options[S]) Options[S] {
		for _, m := range ms {
			if m != nil {
				o = m(o)
			}
		}
		return o
	}
}

type preload struct {
	imgs []image.Image
	err  error
}

// Sketch is a running sketch.
type Sketch[S any] struct {
	opts  Options[S]
	ctx   *Context
	state S

	mu    sync.Mutex
	queue []Event

	loaded chan preload
	tr     translator
	clock  func() (uint64, time.Duration)
}

// New applies middleware, calls Setup once and starts preloading. ctx bounds
// the preload.
func New[S any](ctx context.Context, s canvas.Surface, opts Options[S]) (*Sketch[S], error) {
	if opts.Middleware != nil {
		opts = opts.Middleware(opts)
	}
	if opts.Draw == nil {
		return nil, ErrNoDraw
	}
	if opts.Update == nil {
		opts.Update = lens.Identity[S]
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("sketch")

	sk := &Sketch[S]{
		opts: opts,
		ctx: &Context{
			Surface: s,
			Render:  shape.NewRenderer(s, log).RenderAll,
			Log:     log,
		},
		tr: translator{s: s},
	}
	if opts.Setup != nil {
		sk.state = opts.Setup(sk.ctx)
	}
	if len(opts.Preload) > 0 {
		sk.loaded = make(chan preload, 1)
		go func() {
			imgs, err := canvas.LoadImages(ctx, opts.Preload)
			sk.loaded <- preload{imgs: imgs, err: err}
		}()
	}
	return sk, nil
}

// State returns the current state.
func (sk *Sketch[S]) State() S { return sk.state }

// Context returns the context handed to Draw.
func (sk *Sketch[S]) Context() *Context { return sk.ctx }

// Dispatch queues an event for the next Tick. It is safe to call from any
// goroutine.
func (sk *Sketch[S]) Dispatch(evs ...Event) {
	sk.mu.Lock()
	sk.queue = append(sk.queue, evs...)
	sk.mu.Unlock()
}

// Handle runs an event through its handler right away.
func (sk *Sketch[S]) Handle(ev Event) {
	if h := sk.opts.Handlers[ev.Kind]; h != nil {
		sk.state = h(sk.state, ev)
	}
}

// Tick drains queued events through the handlers, applies preloaded images
// when they are ready, then updates and draws. A failed preload is returned
// as an error.
func (sk *Sketch[S]) Tick() error {
	sk.mu.Lock()
	queue := sk.queue
	sk.queue = nil
	sk.mu.Unlock()
	for _, ev := range queue {
		sk.Handle(ev)
	}

	if sk.loaded != nil {
		select {
		case p := <-sk.loaded:
			sk.loaded = nil
			if p.err != nil {
				return fmt.Errorf("sketch: preload: %w", p.err)
			}
			sk.ctx.Images = p.imgs
			if sk.opts.Preloaded != nil {
				sk.state = sk.opts.Preloaded(sk.state, p.imgs)
			}
			sk.ctx.Log.Debug("images preloaded", zap.Int("count", len(p.imgs)))
		default:
		}
	}

	sk.state = sk.opts.Update(sk.state)
	if sk.clock != nil {
		sk.ctx.Frame, sk.ctx.Elapsed = sk.clock()
	} else {
		sk.ctx.Frame++
	}
	sk.opts.Draw(sk.ctx, sk.state)
	return nil
}

// Trace is middleware that logs every handled event at debug level.
func Trace[S any](log *zap.Logger) Middleware[S] {
	if log == nil {
		log = zap.NewNop()
	}
	return func(o Options[S]) Options[S] {
		hs := make(map[EventKind]Handler[S], len(o.Handlers))
		for kind, h := range o.Handlers {
			hs[kind] = func(s S, ev Event) S {
				log.Debug("event",
					zap.String("kind", string(ev.Kind)),
					zap.Float64("x", ev.Pos.X),
					zap.Float64("y", ev.Pos.Y),
					zap.String("key", ev.Key))
				return h(s, ev)
			}
		}
		o.Handlers = hs
		return o
	}
}
