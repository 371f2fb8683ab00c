// Package mathx holds the scalar helpers shared by the vector, color and
// shape packages: angle conversion, clamping, rescaling and interpolation.
package mathx

import "math"

const (
	TwoPi     = 2 * math.Pi
	Tau       = TwoPi
	HalfPi    = math.Pi / 2
	QuarterPi = math.Pi / 4

	RadToDegFactor = 180 / math.Pi
	DegToRadFactor = math.Pi / 180
)

func Clamp(n, min, max float64) float64 {
	return math.Min(math.Max(n, min), max)
}

// Ratio returns n as a fraction of the span between begin and end.
func Ratio(n, begin, end float64) float64 {
	return n / (end - begin)
}

// Mult is multiplication in function form, for use as a cursor update.
func Mult(n, x float64) float64 { return n * x }

// Rescale projects n from the range [a0, b0] onto [a1, b1]. When bounded is
// set the result is clamped to the target range.
func Rescale(n, a0, b0, a1, b1 float64, bounded bool) float64 {
	if b0 == a0 {
		return a1
	}
	n1 := a1 + (b1-a1)*((n-a0)/(b0-a0))
	if !bounded {
		return n1
	}
	lo, hi := a1, b1
	if lo > hi {
		lo, hi = hi, lo
	}
	return Clamp(n1, lo, hi)
}

// Fmod is a float modulo that keeps the fractional part of x and the sign of
// the dividend.
func Fmod(x, n float64) float64 {
	i := math.Floor(x)
	return math.Mod(i, n) + x - i
}

func Lerp(a, b, t float64) float64 {
	return (b-a)*t + a
}

// Degrees normalizes n into [0, 360). Negative degrees rotate the other way.
func Degrees(n float64) float64 {
	d := math.Mod(n, 360)
	if d < 0 {
		d += 360
	}
	return d
}

func RadToDeg(rad float64) float64 { return rad * RadToDegFactor }

// DegToRad converts after normalizing through Degrees, so the result is
// always in [0, 2π).
func DegToRad(deg float64) float64 { return Degrees(deg) * DegToRadFactor }

// Round rounds n to the nearest 1/factor. Factor is typically a power of 10.
func Round(n, factor float64) float64 {
	if factor == 0 {
		factor = 1
	}
	return math.Round(n*factor) / factor
}

// RangeF calls f for every value from begin to end inclusive, counting by
// step in whichever direction reaches end. The sign of step is ignored.
func RangeF[T any](f func(float64) T, begin, end, step float64) []T {
	step = math.Abs(step)
	if step == 0 {
		return []T{f(begin)}
	}
	n := int(math.Floor(math.Abs(end-begin)/step+1e-9)) + 1
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		d := float64(i) * step
		if begin > end {
			d = -d
		}
		out = append(out, f(begin+d))
	}
	return out
}

// Range lists numbers from begin to end inclusive, counting by step.
func Range(begin, end, step float64) []float64 {
	return RangeF(func(n float64) float64 { return n }, begin, end, step)
}
