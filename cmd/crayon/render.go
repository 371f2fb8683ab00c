package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"crayon/canvas"
	"crayon/chroma"
	"crayon/internal/config"
	"crayon/shape"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// renderOptions are the sizes and paints used when a scene leaves them out.
type renderOptions struct {
	format        string
	width, height int
	scale         float64
	background    chroma.Color
	smooth        bool
	trace         bool
}

func firstPositive[T int | float64](vs ...T) T {
	for _, v := range vs {
		if v > 0 {
			return v
		}
	}
	return 0
}

// renderScene draws sc and writes the encoded image to w. The scene's own
// size wins over o.
func renderScene(w io.Writer, sc shape.Scene, o renderOptions, log *zap.Logger) error {
	width := firstPositive(sc.Width, o.width)
	height := firstPositive(sc.Height, o.height)
	ratio := firstPositive(sc.ScaleRatio, o.scale, 1)
	if width <= 0 || height <= 0 {
		return fmt.Errorf("render: invalid size %dx%d", width, height)
	}

	var (
		s   canvas.Surface
		out func(io.Writer) error
	)
	switch o.format {
	case config.FormatSVG:
		doc := canvas.NewSVG(
			int(math.Round(float64(width)*ratio)),
			int(math.Round(float64(height)*ratio)),
			ratio, log)
		s = doc
		out = func(w io.Writer) error {
			_, err := doc.WriteTo(w)
			return err
		}
	case config.FormatPNG:
		r := canvas.Setup(canvas.Options{Width: width, Height: height, ScaleRatio: ratio, Smooth: o.smooth})
		s = r
		out = r.EncodePNG
	default:
		return fmt.Errorf("render: unknown format %q", o.format)
	}

	dw, dh := s.Size()
	canvas.TransformCartesian(s, float64(dw), float64(dh), ratio)
	if o.trace {
		s = canvas.NewRecorder(s).WithLogger(log)
	}
	r := shape.NewRenderer(s, log)
	if o.background != nil {
		r.Render(shape.NewBackground(o.background))
	}
	r.RenderAll(sc.Shapes...)
	return out(w)
}

// outputPath maps a scene file to an image file in dir, or next to the scene
// when dir is empty.
func outputPath(scene, dir, format string) string {
	base := strings.TrimSuffix(filepath.Base(scene), filepath.Ext(scene)) + "." + format
	if dir == "" {
		dir = filepath.Dir(scene)
	}
	return filepath.Join(dir, base)
}

func renderFile(path, dst string, o renderOptions, log *zap.Logger) error {
	sc, err := shape.DecodeFile(path)
	if err != nil {
		return err
	}
	if err := writeScene(dst, sc, o, log); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	log.Info("rendered", zap.String("scene", path), zap.String("output", dst), zap.Int("shapes", len(sc.Shapes)))
	return nil
}

// writeScene renders sc into the file dst.
func writeScene(dst string, sc shape.Scene, o renderOptions, log *zap.Logger) error {
	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	if err := renderScene(f, sc, o, log); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// renderAll renders every scene with at most workers running at once. The
// first failure cancels scenes not yet started.
func renderAll(ctx context.Context, paths []string, dir string, workers int, o renderOptions, log *zap.Logger) error {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for _, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return renderFile(p, outputPath(p, dir, o.format), o, log)
		})
	}
	return g.Wait()
}

func (c *cli) renderCmd() *cobra.Command {
	var (
		outDir     string
		format     string
		background string
		width      int
		height     int
		scale      float64
		trace      bool
	)
	cmd := &cobra.Command{
		Use:   "render [scene...]",
		Short: "Render scene files to PNG or SVG",
		Long: `Renders each scene file to an image named after it.

A scene file holding a mapping may set width, height and scaleRatio; those
win over the flags and the config. Use -o - with a single scene to write the
image to stdout.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o := renderOptions{
				format: firstNonEmpty(format, c.cfg.Render.Format),
				width:  firstPositive(width, c.cfg.Window.Width),
				height: firstPositive(height, c.cfg.Window.Height),
				scale:  firstPositive(scale, c.cfg.Window.Scale, 1),
				smooth: c.cfg.Render.Smooth,
				trace:  trace,
			}
			bg, err := c.cfg.BackgroundColor()
			if background != "" {
				bg, err = chroma.ParseCSS(background)
			}
			if err != nil {
				return fmt.Errorf("invalid background: %w", err)
			}
			o.background = bg

			if outDir == "-" {
				if len(args) != 1 {
					return fmt.Errorf("-o - needs exactly one scene, got %d", len(args))
				}
				sc, err := shape.DecodeFile(args[0])
				if err != nil {
					return err
				}
				return renderScene(cmd.OutOrStdout(), sc, o, c.logger)
			}
			return renderAll(cmd.Context(), args, outDir, c.cfg.Render.Workers, o, c.logger)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&outDir, "output", "o", "", "Output directory (default: next to each scene, - for stdout)")
	f.StringVarP(&format, "format", "f", "", "Image format: png or svg (default from config)")
	f.StringVar(&background, "background", "", "Background CSS color (default from config)")
	f.IntVar(&width, "width", 0, "Logical width when the scene has none")
	f.IntVar(&height, "height", 0, "Logical height when the scene has none")
	f.Float64Var(&scale, "scale", 0, "Device pixels per logical pixel when the scene has none")
	f.BoolVar(&trace, "trace", false, "Log every drawing call at debug level")
	return cmd
}

func firstNonEmpty(vs ...string) string {
	for _, v := range vs {
		if v != "" {
			return v
		}
	}
	return ""
}
