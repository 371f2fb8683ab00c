package main

import (
	"context"
	"errors"
	"sync/atomic"

	"crayon/chroma"
	"crayon/internal/watch"
	"crayon/shape"
	"crayon/sketch"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// liveScene is the scene most recently read from disk.
type liveScene struct {
	path   string
	latest atomic.Pointer[shape.Scene]
	log    *zap.Logger
	// onLoad runs after every successful reload.
	onLoad func(shape.Scene)
}

func (l *liveScene) load() error {
	sc, err := shape.DecodeFile(l.path)
	if err != nil {
		return err
	}
	l.latest.Store(&sc)
	if l.onLoad != nil {
		l.onLoad(sc)
	}
	return nil
}

// reload keeps the previous scene when the file does not parse, so a
// half-saved edit does not blank the preview.
func (l *liveScene) reload(string) {
	if err := l.load(); err != nil {
		l.log.Warn("reload failed", zap.Error(err))
		return
	}
	l.log.Info("reloaded", zap.String("scene", l.path), zap.Int("shapes", len(l.latest.Load().Shapes)))
}

// sketch draws whichever scene is current on every frame.
func (l *liveScene) sketch(bg chroma.Color) sketch.Options[*shape.Scene] {
	return sketch.Options[*shape.Scene]{
		Setup:  func(*sketch.Context) *shape.Scene { return l.latest.Load() },
		Update: func(*shape.Scene) *shape.Scene { return l.latest.Load() },
		Draw: func(ctx *sketch.Context, sc *shape.Scene) {
			ctx.Render(shape.Clear{})
			if bg != nil {
				ctx.Render(shape.NewBackground(bg))
			}
			if sc != nil {
				ctx.Render(sc.Shapes...)
			}
		},
		Log: l.log,
	}
}

func (c *cli) watchCmd() *cobra.Command {
	var (
		host   hostFlags
		outDir string
	)
	cmd := &cobra.Command{
		Use:   "watch [scene]",
		Short: "Preview a scene, reloading it when the file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bg, err := c.cfg.BackgroundColor()
			if err != nil {
				return err
			}
			rc, err := c.runConfig(host)
			if err != nil {
				return err
			}
			live := &liveScene{path: args[0], log: c.logger}
			if cmd.Flags().Changed("output") {
				o := renderOptions{
					format:     c.cfg.Render.Format,
					width:      c.cfg.Window.Width,
					height:     c.cfg.Window.Height,
					scale:      firstPositive(c.cfg.Window.Scale, 1),
					background: bg,
					smooth:     c.cfg.Render.Smooth,
				}
				live.onLoad = func(sc shape.Scene) {
					dst := outputPath(live.path, outDir, o.format)
					if err := writeScene(dst, sc, o, c.logger); err != nil {
						c.logger.Warn("render failed", zap.Error(err))
					}
				}
			}
			if err := live.load(); err != nil {
				return err
			}

			w, err := watch.New(watch.DefaultDebounce, c.logger, live.reload)
			if err != nil {
				return err
			}
			defer w.Close()
			if err := w.Add(live.path); err != nil {
				return err
			}
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			go func() {
				if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
					c.logger.Error("watcher stopped", zap.Error(err))
				}
			}()

			sc := live.latest.Load()
			if sc.Width > 0 && sc.Height > 0 {
				rc.Width, rc.Height = sc.Width, sc.Height
			}
			if sc.ScaleRatio > 0 {
				rc.Scale = sc.ScaleRatio
			}
			return sketch.Run(ctx, live.sketch(bg), rc)
		},
	}
	host.register(cmd)
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "Also render the scene into this directory on every change")
	return cmd
}
