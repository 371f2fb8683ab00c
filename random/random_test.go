package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cycle returns the given values in turn.
func cycle(vals ...float64) func() float64 {
	i := 0
	return func() float64 {
		v := vals[i%len(vals)]
		i++
		return v
	}
}

func TestFloatInt(t *testing.T) {
	r := New(cycle(0, 0.5, 0.999))
	assert.Equal(t, 10.0, r.Float(10, 20))
	assert.Equal(t, 15.0, r.Float(10, 20))
	assert.Equal(t, 19, r.Int(10, 20))
	assert.Equal(t, 0, r.Int(0, 5))
}

func TestChoice(t *testing.T) {
	r := New(cycle(0.99))
	v, ok := Choice(r, []string{"a", "b", "c"})
	require.True(t, ok)
	assert.Equal(t, "c", v, "the last element must be reachable")

	_, ok = Choice(r, []string(nil))
	assert.False(t, ok)
}

func TestShuffle(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6}
	got := Shuffle(Seeded(7), in)
	assert.ElementsMatch(t, in, got)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, in, "input must not be mutated")

	assert.Equal(t, Shuffle(Seeded(7), in), got, "same seed, same order")
}

func TestSample(t *testing.T) {
	in := []int{10, 20, 30, 40, 50}
	got := Sample(Seeded(3), in, 3)
	require.Len(t, got, 3)
	assert.IsIncreasing(t, got)
	assert.Subset(t, in, got)

	assert.Len(t, Sample(Default, in, 99), 5)
	assert.Empty(t, Sample(Default, in, -1))
}

func TestN(t *testing.T) {
	r := Seeded(1)
	fs := r.NFloat(50, -1, 1)
	require.Len(t, fs, 50)
	for _, f := range fs {
		assert.True(t, f >= -1 && f < 1, f)
	}
	vs := r.Vecs(10, 0, 2)
	require.Len(t, vs, 10)
	for _, v := range vs {
		assert.True(t, v.X >= 0 && v.X < 2 && v.Y >= 0 && v.Y < 2, v)
	}
	assert.Empty(t, r.NFloat(-2, 0, 1))
}
