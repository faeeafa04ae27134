package region

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/lpvisu/geometry"
)

// The textbook system: x2 <= 6, x1 + 2x2 <= 15, x1 + x2 <= 10, x1 - x2 <= 2
func textbookRows() []Constraint {
	return []Constraint{
		Row(0, 1, 6),
		Row(1, 2, 15),
		Row(1, 1, 10),
		Row(1, -1, 2),
	}
}

func newTextbook(t *testing.T) *Region {
	t.Helper()
	r, err := New(textbookRows(), DefaultOptions())
	require.NoError(t, err)
	return r
}

// Every vertex must satisfy every row, and the outline must turn left at
// every corner.
func assertValidFeasible(t *testing.T, f Feasible, rows []Constraint, bounds Bounds) {
	t.Helper()
	for _, p := range f.Vertices {
		assert.True(t, bounds.Admits(p, geometry.Epsilon), "vertex %v is out of bounds", p)
		for _, row := range rows {
			assert.LessOrEqual(t, row.Slack(p), geometry.Epsilon, "vertex %v violates %v", p, row)
		}
	}

	outline := f.Outline()
	n := len(outline.Points)
	require.GreaterOrEqual(t, n, 3)
	for i := range outline.Points {
		o := outline.Points[i]
		a := outline.Points[geometry.CircularIndex(i+1, n)]
		b := outline.Points[geometry.CircularIndex(i+2, n)]
		assert.Greater(t, geometry.Cross(o, a, b), 0.0, "outline is not convex counterclockwise at %v", a)
	}
}

func assertHasVertex(t *testing.T, f Feasible, expected geometry.Point) {
	t.Helper()
	for _, p := range f.Outline().Points {
		if p.Near(expected, geometry.Epsilon) {
			return
		}
	}
	assert.Fail(t, "missing vertex", "%v is not a vertex of %v", expected, f.Outline().Points)
}

func assertSamePolygon(t *testing.T, expected, actual Feasible) {
	t.Helper()
	e, a := expected.Outline(), actual.Outline()
	require.Len(t, a.Points, len(e.Points))
	for i := range e.Points {
		assert.InDelta(t, e.Points[i].X, a.Points[i].X, geometry.Epsilon)
		assert.InDelta(t, e.Points[i].Y, a.Points[i].Y, geometry.Epsilon)
	}
}

func assertSegmentNear(t *testing.T, expected, actual geometry.Segment) {
	t.Helper()
	assert.True(t, expected.Start.Near(actual.Start, geometry.Epsilon) && expected.End.Near(actual.End, geometry.Epsilon),
		"expected %v, got %v", expected, actual)
}

// Compare two polygons by sampling a grid over their padded bounding box.
func validatePolygonsBySampling(t *testing.T, actual, expected geometry.Polygon) {
	t.Helper()
	box := actual.Bounds()
	for _, p := range expected.Points {
		box = box.Extend(p)
	}

	// Pad the bounding box by 10%
	xPadding := box.Width() * 0.1
	yPadding := box.Height() * 0.1
	box.MinX -= xPadding
	box.MinY -= yPadding
	box.MaxX += xPadding
	box.MaxY += yPadding

	step := math.Max(box.Width(), box.Height()) / 50

	for y := box.MinY; y <= box.MaxY; y += step {
		for x := box.MinX; x <= box.MaxX; x += step {
			p := geometry.Point{X: x, Y: y}
			// Skip samples right on an edge, either answer is fine there
			if expected.DistanceToBoundary(p) < step/10 {
				continue
			}
			if expected.ContainsPointByEvenOdd(p) {
				assert.True(t, actual.Contains(p, geometry.Epsilon), "point %v should be in the polygon", p)
			} else {
				assert.False(t, actual.Contains(p, geometry.Epsilon), "point %v should not be in the polygon", p)
			}
		}
	}
}
