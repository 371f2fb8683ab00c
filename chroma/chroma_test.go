package chroma

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewHSLA(t *testing.T) {
	tcs := []struct {
		name       string
		h, s, l, a float64
		want       HSLA
	}{
		{name: "plain", h: 200, s: 0.5, l: 0.4, a: 1, want: HSLA{200, 0.5, 0.4, 1}},
		{name: "negative hue", h: -30, s: 2, l: -1, a: 0.5, want: HSLA{330, 1, 0, 0.5}},
		{name: "wrapped hue", h: 720, s: 0, l: 1, a: 3, want: HSLA{0, 0, 1, 1}},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewHSLA(tc.h, tc.s, tc.l, tc.a); got != tc.want {
				t.Fatalf("NewHSLA(%v, %v, %v, %v) = %+v; want %+v", tc.h, tc.s, tc.l, tc.a, got, tc.want)
			}
		})
	}
}

func TestHSLAToRGBA(t *testing.T) {
	tcs := []struct {
		name string
		in   HSLA
		want RGBA
	}{
		{name: "red", in: HSL(0, 1, 0.5), want: RGBA{255, 0, 0, 1}},
		{name: "green", in: HSL(120, 1, 0.5), want: RGBA{0, 255, 0, 1}},
		{name: "navy", in: HSL(240, 1, 0.25), want: RGBA{0, 0, 128, 1}},
		{name: "steel", in: NewHSLA(200, 0.5, 0.4, 0.5), want: RGBA{51, 119, 153, 0.5}},
		{name: "white", in: White, want: RGBA{255, 255, 255, 1}},
		{name: "black", in: Black, want: RGBA{0, 0, 0, 1}},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := HSLAToRGBA(tc.in); got != tc.want {
				t.Fatalf("HSLAToRGBA(%v) = %+v; want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestRGBAToHSLA(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-3)

	if diff := cmp.Diff(HSLA{0, 1, 0.5, 1}, RGBAToHSLA(RGBA{255, 0, 0, 1}), approx); diff != "" {
		t.Fatalf("red mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(HSLA{240, 1, 0.5, 1}, RGBAToHSLA(RGBA{0, 0, 255, 1}), approx); diff != "" {
		t.Fatalf("blue mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(HSLA{200, 0.5, 0.4, 0.5}, RGBA{51, 119, 153, 0.5}.ToHSLA(), approx); diff != "" {
		t.Fatalf("steel mismatch (-want +got):\n%s", diff)
	}

	grey := RGBAToHSLA(RGBA{128, 128, 128, 1})
	assert.Zero(t, grey.H)
	assert.Zero(t, grey.S)
	assert.InDelta(t, 128.0/255, grey.L, 1e-9)
}

func TestCSS(t *testing.T) {
	assert.Equal(t, "hsla(200, 50%, 40%, 1)", HSL(200, 0.5, 0.4).CSS())
	assert.Equal(t, "hsla(0, 0%, 0%, 0)", Transparent.CSS())
	assert.Equal(t, "rgba(51, 119, 153, 0.5)", RGBA{51, 119, 153, 0.5}.CSS())
	assert.Equal(t, "transparent", CSS(nil))
	assert.Equal(t, "rgba(0, 0, 0, 1)", CSS(NewRGBA(-4, 0, 0.2, 9)))
}

func TestParseCSS(t *testing.T) {
	tcs := []struct {
		in   string
		want Color
	}{
		{in: "hsla(200, 50%, 40%, 1)", want: HSL(200, 0.5, 0.4)},
		{in: "hsl(120, 100%, 50%)", want: HSL(120, 1, 0.5)},
		{in: "rgba(255, 0, 128, 0.5)", want: RGBA{255, 0, 128, 0.5}},
		{in: "rgb(1, 2, 3)", want: RGBA{1, 2, 3, 1}},
		{in: "#f00", want: RGBA{255, 0, 0, 1}},
		{in: "#0080ff", want: RGBA{0, 128, 255, 1}},
		{in: "#00ff0000", want: RGBA{0, 255, 0, 0}},
		{in: " Transparent ", want: Transparent},
		{in: "white", want: White},
	}
	for _, tc := range tcs {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseCSS(tc.in)
			if err != nil {
				t.Fatalf("ParseCSS(%q) error: %v", tc.in, err)
			}
			if diff := cmp.Diff(tc.want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Fatalf("ParseCSS(%q) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}

	for _, bad := range []string{"bogus", "#12345", "rgb(1, 2)", "hsl(a, b, c)", "cmyk(1, 2, 3, 4)"} {
		_, err := ParseCSS(bad)
		if !errors.Is(err, ErrSyntax) {
			t.Fatalf("ParseCSS(%q) err = %v; want ErrSyntax", bad, err)
		}
	}
}

func TestRoundTripCSS(t *testing.T) {
	for _, c := range []Color{HSL(33, 0.25, 0.75), NewHSLA(300, 1, 0.5, 0.3), RGBA{10, 20, 30, 0.25}} {
		got, err := ParseCSS(c.CSS())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestSetters(t *testing.T) {
	c := HSL(90, 0.5, 0.5)
	assert.Equal(t, c, SetH(c, 90))
	assert.Equal(t, 270.0, SetH(c, -90).H)
	assert.Equal(t, 1.0, SetS(c, 7).S)
	assert.Equal(t, 0.25, ScaleS(c, 0.5).S)
	assert.Equal(t, 0.75, ScaleL(c, 1.5).L)
	assert.Equal(t, 0.5, ScaleA(c, 0.5).A)
	assert.Equal(t, 0.0, SetA(c, 0).A)
	assert.Equal(t, HSLA{0, 0, 0.5, 1}, Greyscale(c))
	assert.Equal(t, 0.5, Lerp(Black, White, 0.5).L)
	assert.Equal(t, 30.0, RotateH(c, -60).H)
}

func hues(cs []HSLA) []float64 {
	out := make([]float64, len(cs))
	for i, c := range cs {
		out[i] = c.H
	}
	return out
}

func TestPalettes(t *testing.T) {
	c := HSL(10, 1, 0.5)
	assert.Equal(t, 190.0, Complement(c).H)
	assert.Equal(t, []float64{10, 250, 130}, hues(Triadic(c)))
	assert.Equal(t, []float64{10, 280, 100, 190}, hues(Tetradic(c)))
	assert.Equal(t, []float64{280, 325, 10, 55, 100}, hues(Analogous(c, DefaultSpread)))
	assert.Equal(t, []float64{10, 10, 10, 10, 10}, hues(Analogous(c, 360)))

	shades := Shades(c)
	require.Len(t, shades, 5)
	for i, want := range []float64{0.2, 0.1, 0.5, 0.6, 0.7} {
		assert.InDelta(t, want, shades[i].L, 1e-9, "shade %d", i)
	}
}

func TestImageColor(t *testing.T) {
	r, g, b, a := HSL(0, 1, 0.5).RGBA()
	assert.Equal(t, []uint32{0xffff, 0, 0, 0xffff}, []uint32{r, g, b, a})

	r, _, _, a = RGBA{255, 0, 0, 0.5}.RGBA()
	assert.Equal(t, uint32(32768), r)
	assert.Equal(t, uint32(32768), a)

	assert.True(t, IsTransparent(nil))
	assert.True(t, IsTransparent(Transparent))
	assert.False(t, IsTransparent(RGBA{A: 0.01}))
}

func TestYAML(t *testing.T) {
	var doc struct {
		Fill   Value `yaml:"fill"`
		Stroke Value `yaml:"stroke"`
		Bg     HSLA  `yaml:"bg"`
		Tint   RGBA  `yaml:"tint"`
		None   Value `yaml:"none"`
	}
	src := `
fill: {h: 10, s: 1, l: 0.5}
stroke: {r: 255, g: 0, b: 0, a: 0.5}
bg: "#ffffff"
tint: hsl(0, 100%, 50%)
`
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))
	assert.Equal(t, HSL(10, 1, 0.5), doc.Fill.Color)
	assert.Equal(t, RGBA{255, 0, 0, 0.5}, doc.Stroke.Color)
	assert.Equal(t, White, doc.Bg)
	assert.Equal(t, RGBA{255, 0, 0, 1}, doc.Tint)
	assert.Nil(t, doc.None.Color)

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)

	var back struct {
		Fill Value `yaml:"fill"`
		None Value `yaml:"none"`
	}
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, doc.Fill.Color, back.Fill.Color)
	assert.Nil(t, back.None.Color)

	err = yaml.Unmarshal([]byte("fill: {q: 1}\n"), &doc)
	assert.ErrorIs(t, err, ErrSyntax)
}
