// Command crayon renders shape scenes to PNG or SVG, previews them live and
// runs the bundled demo sketches.
package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"os/signal"
	"syscall"

	"crayon/canvas"
	"crayon/hal"
	"crayon/internal/config"
	"crayon/internal/logging"
	"crayon/sketch"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cli holds what the persistent flags resolve to.
type cli struct {
	configPath string
	logLevel   string
	dev        bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}
	root := &cobra.Command{
		Use:   "crayon",
		Short: "Draw shapes with code",
		Long: `crayon renders declarative shape scenes and runs interactive sketches.

Scenes are YAML or JSON lists of shape nodes (ellipse, rect, polygon, group,
transform, ...). Coordinates are cartesian: the origin sits at the center of
the surface and Y points up.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = c.logger.Sync() },
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", config.DefaultPath, "Config file")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	root.PersistentFlags().BoolVar(&c.dev, "dev", false, "Human-readable development logging")

	root.AddCommand(
		c.renderCmd(),
		c.watchCmd(),
		c.demoCmd(),
		c.versionCmd(),
	)
	return root
}

// setup loads the config and builds the logger before any subcommand runs.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.logLevel != "" {
		cfg.Logging.Level = c.logLevel
	}
	if c.dev {
		cfg.Logging.Development = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.logger = logger.With(zap.String("session", uuid.NewString()))
	c.logger.Debug("starting", zap.String("command", cmd.Name()), zap.String("config", c.configPath))
	return nil
}

// hostFlags are shared by the commands that run a sketch.
type hostFlags struct {
	headless bool
	ticks    uint64
	snapshot string
}

func (f *hostFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.BoolVar(&f.headless, "headless", false, "Run without a window")
	fl.Uint64Var(&f.ticks, "ticks", 0, "Stop after this many frames (0 = run until interrupted)")
	fl.StringVar(&f.snapshot, "snapshot", "", "Write the last frame of a headless run to this PNG file")
}

// runConfig maps the window settings and host flags onto a sketch host.
func (c *cli) runConfig(f hostFlags) (sketch.RunConfig, error) {
	w := c.cfg.Window
	rc := sketch.RunConfig{
		Window: !f.headless,
		WindowConfig: hal.WindowConfig{
			Config: hal.Config{Width: w.Width, Height: w.Height, Scale: w.Scale, Log: c.logger},
			Title:  w.Title,
			TPS:    w.TPS,
		},
		Hz:     w.TPS,
		Ticks:  f.ticks,
		Smooth: c.cfg.Render.Smooth,
	}
	if f.snapshot != "" {
		if !f.headless || f.ticks == 0 {
			return rc, errors.New("--snapshot needs --headless and --ticks")
		}
		rc.OnFrame = func(frame uint64, img *image.RGBA) error {
			if frame < f.ticks {
				return nil
			}
			return writePNG(f.snapshot, img)
		}
	}
	return rc, nil
}

func writePNG(path string, img *image.RGBA) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := canvas.NewRaster(img, 1, false).EncodePNG(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
