package lens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y int
}

func getX(p *point) int { return p.X }

func setX(p *point, x int) *point {
	c := *p
	c.X = x
	return &c
}

func TestNewSetter(t *testing.T) {
	set := NewSetter(getX, setX)
	p := &point{X: 1, Y: 2}

	same := set(p, 1)
	assert.Same(t, p, same, "unchanged value must return the original")

	moved := set(p, 5)
	require.NotSame(t, p, moved)
	assert.Equal(t, 5, moved.X)
	assert.Equal(t, 2, moved.Y)
	assert.Equal(t, 1, p.X, "original must not be mutated")
}

func TestCursor(t *testing.T) {
	add := Cursor(getX, NewSetter(getX, setX), func(cur, n int) int { return cur + n })
	p := &point{X: 3}

	assert.Same(t, p, add(p, 0))
	assert.Equal(t, 10, add(p, 7).X)

	swap := Cursor[*point, int](getX, setX, nil)
	assert.Equal(t, 9, swap(p, 9).X)
}

func TestLensOver(t *testing.T) {
	l := New(getX, setX)
	double := l.Over(func(cur, k int) int { return cur * k })
	p := &point{X: 4}

	assert.Equal(t, 4, l.Get(p))
	assert.Equal(t, 12, double(p, 3).X)
	assert.Same(t, p, double(p, 1))
	assert.Same(t, p, l.Put(p, 4))
}

func TestSetKey(t *testing.T) {
	m := map[string]int{"a": 1}

	same := SetKey(m, "a", 1)
	same["marker"] = 0
	assert.Contains(t, m, "marker", "unchanged set must return the same map")
	delete(m, "marker")

	c := SetKey(m, "a", 2)
	assert.Equal(t, 2, c["a"])
	assert.Equal(t, 1, m["a"])

	added := SetKey(m, "b", 0)
	assert.Equal(t, map[string]int{"a": 1, "b": 0}, added)
	assert.NotContains(t, m, "b")
}

func TestMerge(t *testing.T) {
	a := map[string]any{"down": false, "n": 1}

	same := Merge(a, map[string]any{"down": false})
	same["marker"] = true
	assert.Contains(t, a, "marker")
	delete(a, "marker")

	merged := Merge(a, map[string]any{"down": true})
	assert.Equal(t, map[string]any{"down": true, "n": 1}, merged)
	assert.Equal(t, false, a["down"])

	assert.Equal(t, 7, Identity(7))
}
