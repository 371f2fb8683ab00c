package chroma

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCSS reads the color notations CSS() produces, plus hsl()/rgb(),
// hex colors and a few keywords.
func ParseCSS(s string) (Color, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	switch in {
	case "", "transparent", "none":
		return Transparent, nil
	case "black":
		return Black, nil
	case "white":
		return White, nil
	}
	if strings.HasPrefix(in, "#") {
		return parseHex(in[1:], s)
	}

	name, args, ok := splitFunc(in)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	switch name {
	case "hsl", "hsla":
		if len(args) < 3 || len(args) > 4 {
			return nil, fmt.Errorf("%w: %q: %s takes 3 or 4 arguments", ErrSyntax, s, name)
		}
		v, err := parseArgs(args, []float64{1, 0.01, 0.01, 1})
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrSyntax, s, err)
		}
		return NewHSLA(v[0], v[1], v[2], v[3]), nil
	case "rgb", "rgba":
		if len(args) < 3 || len(args) > 4 {
			return nil, fmt.Errorf("%w: %q: %s takes 3 or 4 arguments", ErrSyntax, s, name)
		}
		v, err := parseArgs(args, []float64{1.0 / 255, 1.0 / 255, 1.0 / 255, 1})
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrSyntax, s, err)
		}
		return NewRGBA(v[0]*255, v[1]*255, v[2]*255, v[3]), nil
	}
	return nil, fmt.Errorf("%w: %q: unknown function %s", ErrSyntax, s, name)
}

// MustParseCSS panics on bad input. For literals in code.
func MustParseCSS(s string) Color {
	c, err := ParseCSS(s)
	if err != nil {
		panic(err)
	}
	return c
}

func splitFunc(in string) (string, []string, bool) {
	open := strings.IndexByte(in, '(')
	if open <= 0 || !strings.HasSuffix(in, ")") {
		return "", nil, false
	}
	name := strings.TrimSpace(in[:open])
	body := in[open+1 : len(in)-1]
	args := strings.FieldsFunc(body, func(r rune) bool { return r == ',' || r == ' ' || r == '/' })
	return name, args, true
}

// parseArgs converts arguments to numbers. A percentage is always a
// fraction of 1; a bare number is multiplied by bare[i]. Alpha defaults to 1.
func parseArgs(args []string, bare []float64) ([]float64, error) {
	out := []float64{0, 0, 0, 1}
	for i, a := range args {
		pct := strings.HasSuffix(a, "%")
		a = strings.TrimSuffix(strings.TrimSuffix(a, "%"), "deg")
		n, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, err
		}
		if pct {
			out[i] = n / 100
		} else {
			out[i] = n * bare[i]
		}
	}
	return out, nil
}

func parseHex(h, orig string) (Color, error) {
	switch len(h) {
	case 3, 4:
		var b strings.Builder
		for _, r := range h {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		h = b.String()
	case 6, 8:
	default:
		return nil, fmt.Errorf("%w: %q", ErrSyntax, orig)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrSyntax, orig)
	}
	a := 1.0
	if len(h) == 8 {
		a = float64(v&0xff) / 255
		v >>= 8
	}
	return RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: a}, nil
}
