// Package demo holds the sketches bundled with the crayon command.
package demo

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"crayon/internal/logging"
	"crayon/sketch"

	"go.uber.org/zap"
)

// ErrUnknown is returned by Run for a name that is not registered.
var ErrUnknown = errors.New("demo: unknown sketch")

// Demo is a runnable sketch.
type Demo struct {
	Name    string
	Summary string
	run     func(context.Context, sketch.RunConfig, *zap.Logger) error
}

// Run starts the demo. Every handled event is logged at debug level.
func (d Demo) Run(ctx context.Context, cfg sketch.RunConfig, log *zap.Logger) error {
	return d.run(ctx, cfg, logging.OrNop(log))
}

func entry[S any](name, summary string, opts func() sketch.Options[S]) Demo {
	return Demo{
		Name:    name,
		Summary: summary,
		run: func(ctx context.Context, cfg sketch.RunConfig, log *zap.Logger) error {
			o := opts()
			o.Log = log
			o.Middleware = sketch.Chain(o.Middleware, sketch.Trace[S](log.Named(name)))
			return sketch.Run(ctx, o, cfg)
		},
	}
}

var registry = map[string]Demo{}

func register(ds ...Demo) {
	for _, d := range ds {
		registry[d.Name] = d
	}
}

func init() {
	register(
		entry("trail", "drag to leave a trail of shrinking dots", Trail),
		entry("fade", "overlapping translucent circles", Fade),
		entry("palette", "color harmonies of a drifting hue", Palette),
	)
}

// Names lists the registered demos, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Lookup finds a demo by name.
func Lookup(name string) (Demo, bool) {
	d, ok := registry[name]
	return d, ok
}

// Run looks up name and runs it.
func Run(ctx context.Context, name string, cfg sketch.RunConfig, log *zap.Logger) error {
	d, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return d.Run(ctx, cfg, log)
}
