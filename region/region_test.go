package region

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/lpvisu/geometry"
	"github.com/osuushi/lpvisu/internal/fixtures"
)

func TestNew(t *testing.T) {
	r := newTextbook(t)
	base := r.Base()

	assertValidFeasible(t, base, textbookRows(), DefaultBounds())
	for _, v := range []geometry.Point{{0, 0}, {2, 0}, {6, 4}, {5, 5}, {3, 6}, {0, 6}} {
		assertHasVertex(t, base, v)
	}
	assert.Len(t, base.Hull, 6)
	assert.InDelta(t, 25.5, base.Area(), geometry.Epsilon)
	assert.Equal(t, base, r.Active())
	assert.False(t, r.HasCuts())

	validatePolygonsBySampling(t, base.Outline(), fixtures.Load("textbook"))
}

func TestNewDerivesWindow(t *testing.T) {
	r := newTextbook(t)
	window := r.Window()
	assert.InDelta(t, -1, window.MinX, geometry.Epsilon)
	assert.InDelta(t, -1, window.MinY, geometry.Epsilon)
	assert.InDelta(t, 7.2, window.MaxX, geometry.Epsilon)
	assert.InDelta(t, 7.2, window.MaxY, geometry.Epsilon)

	// Four constraint lines, then x1 = 0 and x2 = 0
	lines := r.Lines()
	require.Len(t, lines, 6)
	assertSegmentNear(t, geometry.Segment{Start: geometry.Point{X: -1, Y: 6}, End: geometry.Point{X: 7.2, Y: 6}}, lines[0])
	assertSegmentNear(t, geometry.Segment{Start: geometry.Point{X: 0, Y: -1}, End: geometry.Point{X: 0, Y: 7.2}}, lines[4])
	assertSegmentNear(t, geometry.Segment{Start: geometry.Point{X: -1, Y: 0}, End: geometry.Point{X: 7.2, Y: 0}}, lines[5])
}

func TestNewExplicitWindow(t *testing.T) {
	opts := DefaultOptions()
	opts.X1Window = &Interval{-1, 7.7}
	r, err := New(textbookRows(), opts)
	require.NoError(t, err)

	window := r.Window()
	assert.Equal(t, -1.0, window.MinX)
	assert.Equal(t, 7.7, window.MaxX)
	// The other axis is still derived
	assert.InDelta(t, 7.2, window.MaxY, geometry.Epsilon)
}

func TestNewMalformed(t *testing.T) {
	cases := map[string]struct {
		rows []Constraint
		opts func(*Options)
	}{
		"zero row":          {rows: []Constraint{Row(0, 0, 1)}},
		"nan":               {rows: []Constraint{Row(math.NaN(), 1, 1)}},
		"infinite rhs":      {rows: []Constraint{Row(1, 1, math.Inf(1))}},
		"zero epsilon":      {rows: textbookRows(), opts: func(o *Options) { o.Epsilon = 0 }},
		"inverted bound":    {rows: textbookRows(), opts: func(o *Options) { o.Bounds.X1 = Bound{Lower: 3, Upper: 1} }},
		"empty window":      {rows: textbookRows(), opts: func(o *Options) { o.X2Window = &Interval{2, 2} }},
		"lower at infinity": {rows: textbookRows(), opts: func(o *Options) { o.Bounds.X2.Lower = math.Inf(1) }},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			opts := DefaultOptions()
			if c.opts != nil {
				c.opts(&opts)
			}
			_, err := New(c.rows, opts)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestRows(t *testing.T) {
	rows, err := Rows([][2]float64{{1, 2}, {3, 4}}, []float64{5, 6})
	require.NoError(t, err)
	assert.Equal(t, []Constraint{Row(1, 2, 5), Row(3, 4, 6)}, rows)

	_, err = Rows([][2]float64{{1, 2}}, []float64{5, 6})
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestDuplicateRows(t *testing.T) {
	// The same coefficients twice with different right-hand sides. Each row
	// keeps its own bound, so the tighter one wins.
	rows := append(textbookRows(), Row(1, 1, 8))
	r, err := New(rows, DefaultOptions())
	require.NoError(t, err)
	assertValidFeasible(t, r.Base(), rows, DefaultBounds())
	assertHasVertex(t, r.Base(), geometry.Point{X: 5, Y: 3})
	assertHasVertex(t, r.Base(), geometry.Point{X: 2, Y: 6})
}

func TestUnrenderable(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		// x1 + x2 <= -1 with x >= 0
		_, err := New([]Constraint{Row(1, 1, -1)}, DefaultOptions())
		assert.ErrorIs(t, err, ErrUnrenderable)
		assert.ErrorIs(t, err, geometry.ErrDegenerate)
	})

	t.Run("flat", func(t *testing.T) {
		// x2 <= 0 with x2 >= 0 leaves a half line
		_, err := New([]Constraint{Row(0, 1, 0), Row(1, 0, 4)}, DefaultOptions())
		assert.ErrorIs(t, err, ErrUnrenderable)
	})
}

func TestUpperBounds(t *testing.T) {
	// Upper bounds must be checked against the upper value
	opts := DefaultOptions()
	opts.Bounds = Bounds{X1: Bound{Lower: 0, Upper: 4}, X2: Bound{Lower: 1, Upper: 5}}
	r, err := New(textbookRows(), opts)
	require.NoError(t, err)

	base := r.Base()
	assertValidFeasible(t, base, textbookRows(), opts.Bounds)
	for _, v := range []geometry.Point{{0, 1}, {3, 1}, {4, 2}, {4, 5}, {0, 5}} {
		assertHasVertex(t, base, v)
	}
	assert.Len(t, base.Hull, 5)

	// One vertical and one horizontal line per finite bound
	assert.Len(t, r.Lines(), len(textbookRows())+4)
}

func TestClipToWindow(t *testing.T) {
	// x1 - x2 <= 2 alone is unbounded
	opts := DefaultOptions()
	opts.ClipToWindow = true
	opts.X1Window = &Interval{-1, 5}
	opts.X2Window = &Interval{-1, 5}
	r, err := New([]Constraint{Row(1, -1, 2)}, opts)
	require.NoError(t, err)

	base := r.Base()
	for _, v := range []geometry.Point{{0, 0}, {2, 0}, {5, 3}, {5, 5}, {0, 5}} {
		assertHasVertex(t, base, v)
	}
	assert.Len(t, base.Hull, 5)
}

func TestAddCuts(t *testing.T) {
	r := newTextbook(t)
	before := r.Base()

	require.NoError(t, r.AddCuts(Row(0, 1, 5)))
	assert.True(t, r.HasCuts())
	assert.Len(t, r.CutLines(), 1)
	assert.Equal(t, before, r.Base(), "the base polygon must not move")

	active := r.Active()
	rows := append(textbookRows(), Row(0, 1, 5))
	assertValidFeasible(t, active, rows, DefaultBounds())
	assert.LessOrEqual(t, active.Area(), before.Area()+geometry.Epsilon)
	validatePolygonsBySampling(t, active.Outline(), fixtures.Load("textbook_cut"))

	// Cuts accumulate
	require.NoError(t, r.AddCuts(Row(1, 0, 4), Row(-1, 0, 0)))
	assert.Len(t, r.Cuts(), 3)
	assert.Len(t, r.CutLines(), 3)
	assert.LessOrEqual(t, r.Active().Area(), active.Area()+geometry.Epsilon)
	assertHasVertex(t, r.Active(), geometry.Point{X: 4, Y: 2})
	assertHasVertex(t, r.Active(), geometry.Point{X: 4, Y: 5})
}

func TestAddCutsNeverGrowsArea(t *testing.T) {
	cuts := []Constraint{
		Row(1, 1, 9),
		Row(2, 1, 12),
		Row(-1, 3, 14),
		Row(1, 0, 100), // redundant
		Row(3, -1, 5),
	}
	r := newTextbook(t)
	area := r.Active().Area()
	for _, cut := range cuts {
		require.NoError(t, r.AddCuts(cut))
		next := r.Active().Area()
		assert.LessOrEqual(t, next, area+geometry.Epsilon, "cut %v grew the region", cut)
		area = next
	}
}

func TestAddCutsFailureKeepsState(t *testing.T) {
	r := newTextbook(t)
	require.NoError(t, r.AddCuts(Row(0, 1, 5)))
	active := r.Active()

	// x1 + x2 >= 20 leaves nothing
	err := r.AddCuts(Row(-1, -1, -20))
	assert.ErrorIs(t, err, ErrUnrenderable)
	assert.Len(t, r.Cuts(), 1)
	assert.Equal(t, active, r.Active())

	err = r.AddCuts(Row(0, 0, 1))
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Len(t, r.Cuts(), 1)
}

func TestResetCuts(t *testing.T) {
	r := newTextbook(t)
	before := r.Active()

	require.NoError(t, r.AddCuts(Row(0, 1, 5)))
	require.NoError(t, r.AddCuts(Row(1, 1, 7)))
	r.ResetCuts()

	assert.False(t, r.HasCuts())
	assert.Empty(t, r.CutLines())
	assertSamePolygon(t, before, r.Active())

	// Reset on a region without cuts is a no-op
	r.ResetCuts()
	assertSamePolygon(t, before, r.Active())
}

func TestSetWindow(t *testing.T) {
	r := newTextbook(t)
	require.NoError(t, r.AddCuts(Row(0, 1, 5)))
	base, active := r.Base(), r.Active()

	require.NoError(t, r.SetWindow(geometry.BBox{MinX: -2, MinY: -2, MaxX: 20, MaxY: 20}))
	for _, line := range r.Lines()[:4] {
		assert.Equal(t, -2.0, line.Start.X)
		assert.Equal(t, 20.0, line.End.X)
	}
	// A bounded polygon doesn't depend on the window
	assert.InDelta(t, base.Area(), r.Base().Area(), geometry.Epsilon)
	assert.InDelta(t, active.Area(), r.Active().Area(), geometry.Epsilon)

	err := r.SetWindow(geometry.BBox{MinX: 1, MinY: 0, MaxX: 0, MaxY: 1})
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Equal(t, -2.0, r.Window().MinX)
}

func TestIntegerPoints(t *testing.T) {
	r, err := New([]Constraint{Row(1, 1, 4)}, DefaultOptions())
	require.NoError(t, err)
	validatePolygonsBySampling(t, r.Base().Outline(), fixtures.Load("triangle"))
	assert.Len(t, r.IntegerPoints(r.Base()), 15)

	r = newTextbook(t)
	points := r.IntegerPoints(r.Base())
	for _, p := range points {
		assert.True(t, r.Feasible(p), "%v is not feasible", p)
	}
	// Every feasible lattice point of the box is listed
	count := 0
	for x := 0.0; x <= 7; x++ {
		for y := 0.0; y <= 7; y++ {
			if r.Feasible(geometry.Point{X: x, Y: y}) {
				count++
			}
		}
	}
	assert.Len(t, points, count)
}

func TestFeasible(t *testing.T) {
	r := newTextbook(t)
	assert.True(t, r.Feasible(geometry.Point{X: 1, Y: 1}))
	assert.False(t, r.Feasible(geometry.Point{X: -1, Y: 1}))
	assert.False(t, r.Feasible(geometry.Point{X: 5, Y: 5.5}))

	require.NoError(t, r.AddCuts(Row(0, 1, 5)))
	assert.False(t, r.Feasible(geometry.Point{X: 1, Y: 5.5}))
}
