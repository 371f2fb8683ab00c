package main

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"crayon/internal/demo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
window:
  width: 40
  height: 30
  scale: 1
  tps: 500
render:
  format: png
  workers: 2
logging:
  level: error
`

const testScene = `
width: 20
height: 10
scaleRatio: 2
shapes:
  - type: rect
    pos: [0, 0]
    size: [20, 10]
    fill: "#ff0000"
`

// execute runs the root command against a throwaway config.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "crayon.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(testConfig), 0o644))

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--config", cfg))
	err := root.Execute()
	return out.String(), err
}

func writeSceneFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	if !strings.HasPrefix(out, "crayon ") {
		t.Fatalf("version output = %q; want prefix %q", out, "crayon ")
	}
}

func TestRenderPNG(t *testing.T) {
	dir := t.TempDir()
	scene := writeSceneFile(t, dir, "box.yaml", testScene)
	outDir := filepath.Join(dir, "out")

	_, err := execute(t, "render", scene, "-o", outDir)
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(outDir, "box.png"))
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())

	c := color.NRGBAModel.Convert(img.At(20, 10)).(color.NRGBA)
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, c)
}

func TestRenderSVGToStdout(t *testing.T) {
	scene := writeSceneFile(t, t.TempDir(), "box.yaml", testScene)
	out, err := execute(t, "render", scene, "-f", "svg", "-o", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "<path")
}

func TestRenderManyUsesConfigSize(t *testing.T) {
	dir := t.TempDir()
	var scenes []string
	for _, name := range []string{"a.yaml", "b.json"} {
		scenes = append(scenes, writeSceneFile(t, dir, name, `[{"type": "ellipse", "pos": [0, 0], "radius": [5, 5], "fill": "#0000ff"}]`))
	}
	_, err := execute(t, append([]string{"render", "--background", "white"}, scenes...)...)
	require.NoError(t, err)

	for _, name := range []string{"a.png", "b.png"} {
		f, err := os.Open(filepath.Join(dir, name))
		require.NoError(t, err)
		img, err := png.Decode(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, 40, img.Bounds().Dx(), name)
		assert.Equal(t, 30, img.Bounds().Dy(), name)
		corner := color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA)
		assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, corner, name)
	}
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()
	bad := writeSceneFile(t, dir, "bad.yaml", "- {pos: [0, 0]}")
	good := writeSceneFile(t, dir, "good.yaml", testScene)

	tcs := []struct {
		name string
		args []string
	}{
		{"missing file", []string{"render", filepath.Join(dir, "nope.yaml")}},
		{"untyped node", []string{"render", bad}},
		{"bad format", []string{"render", good, "-f", "gif"}},
		{"bad background", []string{"render", good, "--background", "nope"}},
		{"stdout needs one scene", []string{"render", good, good, "-o", "-"}},
		{"no scenes", []string{"render"}},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := execute(t, tc.args...); err == nil {
				t.Fatalf("%v: got nil error", tc.args)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tcs := []struct {
		scene, dir, format, want string
	}{
		{"a/b/scene.yaml", "", "png", filepath.Join("a", "b", "scene.png")},
		{"scene.json", "out", "svg", filepath.Join("out", "scene.svg")},
		{"noext", "out", "png", filepath.Join("out", "noext.png")},
	}
	for _, tc := range tcs {
		if got := outputPath(tc.scene, tc.dir, tc.format); got != tc.want {
			t.Fatalf("outputPath(%q, %q, %q) = %q; want %q", tc.scene, tc.dir, tc.format, got, tc.want)
		}
	}
}

func TestWatchHeadless(t *testing.T) {
	dir := t.TempDir()
	scene := writeSceneFile(t, dir, "box.yaml", testScene)
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.MkdirAll(outDir, 0o755))

	_, err := execute(t, "watch", scene, "--headless", "--ticks", "3", "-o", outDir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(outDir, "box.png"))
}

func TestWatchBadScene(t *testing.T) {
	scene := writeSceneFile(t, t.TempDir(), "bad.yaml", "- {pos: [0, 0]}")
	_, err := execute(t, "watch", scene, "--headless", "--ticks", "1")
	require.Error(t, err)
}

func TestDemoList(t *testing.T) {
	out, err := execute(t, "demo", "--list")
	require.NoError(t, err)
	for _, name := range demo.Names() {
		assert.Contains(t, out, name)
	}
}

func TestDemoHeadless(t *testing.T) {
	_, err := execute(t, "demo", "fade", "--headless", "--ticks", "2")
	require.NoError(t, err)

	_, err = execute(t, "demo", "nope", "--headless", "--ticks", "1")
	assert.ErrorIs(t, err, demo.ErrUnknown)
}

func TestInvalidConfig(t *testing.T) {
	_, err := execute(t, "version", "--log-level", "loud")
	require.Error(t, err)
}

func TestDemoSnapshot(t *testing.T) {
	shot := filepath.Join(t.TempDir(), "fade.png")
	_, err := execute(t, "demo", "fade", "--headless", "--ticks", "2", "--snapshot", shot)
	require.NoError(t, err)

	f, err := os.Open(shot)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 30, img.Bounds().Dy())

	_, err = execute(t, "demo", "fade", "--snapshot", shot)
	assert.ErrorContains(t, err, "--snapshot needs --headless")
}
