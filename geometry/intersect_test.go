package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersect(t *testing.T) {
	t.Run("perpendicular", func(t *testing.T) {
		a := Segment{Point{0, 1}, Point{10, 1}}
		b := Segment{Point{3, -5}, Point{3, 5}}
		p, err := Intersect(a, b, Epsilon)
		require.NoError(t, err)
		assert.InDelta(t, 3, p.X, Epsilon)
		assert.InDelta(t, 1, p.Y, Epsilon)
	})

	t.Run("outside both segments", func(t *testing.T) {
		// The lines are infinite, so the meeting point doesn't need to lie on
		// either segment
		a := Segment{Point{0, 0}, Point{1, 1}}
		b := Segment{Point{10, 0}, Point{9, 1}}
		p, err := Intersect(a, b, Epsilon)
		require.NoError(t, err)
		assert.InDelta(t, 5, p.X, Epsilon)
		assert.InDelta(t, 5, p.Y, Epsilon)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := Segment{Point{-1, 6}, Point{11, -6}}
		b := Segment{Point{-1, -3}, Point{11, 3}}
		p, err := Intersect(a, b, Epsilon)
		require.NoError(t, err)
		q, err := Intersect(b, a, Epsilon)
		require.NoError(t, err)
		assert.InDelta(t, p.X, q.X, Epsilon)
		assert.InDelta(t, p.Y, q.Y, Epsilon)
		assert.InDelta(t, 5, p.X, Epsilon)
		assert.InDelta(t, 0, p.Y, Epsilon)
	})

	t.Run("parallel", func(t *testing.T) {
		a := Segment{Point{0, 0}, Point{1, 2}}
		b := Segment{Point{5, 0}, Point{6, 2}}
		_, err := Intersect(a, b, Epsilon)
		assert.ErrorIs(t, err, ErrParallel)
	})

	t.Run("same line", func(t *testing.T) {
		a := Segment{Point{0, 0}, Point{1, 1}}
		b := Segment{Point{2, 2}, Point{4, 4}}
		_, err := Intersect(a, b, Epsilon)
		assert.ErrorIs(t, err, ErrParallel)
	})
}

func TestIntersectionsSkipsParallelPairs(t *testing.T) {
	lines := []Segment{
		{Point{0, 0}, Point{10, 0}},
		{Point{0, 5}, Point{10, 5}},
		{Point{2, -1}, Point{2, 9}},
	}
	points := Intersections(lines, Epsilon)
	require.Len(t, points, 2)
	assert.InDelta(t, 2, points[0].X, Epsilon)
	assert.InDelta(t, 0, points[0].Y, Epsilon)
	assert.InDelta(t, 2, points[1].X, Epsilon)
	assert.InDelta(t, 5, points[1].Y, Epsilon)
}
