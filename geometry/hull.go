package geometry

import (
	"sort"

	"github.com/pkg/errors"
)

// ConvexHull returns the indices of the hull vertices of points in
// counterclockwise order, starting from the lexicographically smallest point.
// This is Andrew's monotone chain. Collinear points on an edge are dropped, and
// so are duplicates (closer than eps on both axes).
//
// ErrDegenerate is returned when fewer than three distinct points remain or
// when every point lies on a single line.
func ConvexHull(points []Point, eps float64) ([]int, error) {
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		p, q := points[order[i]], points[order[j]]
		if p.X == q.X {
			return p.Y < q.Y
		}
		return p.X < q.X
	})

	// Drop near duplicates so that they can't count as distinct vertices
	distinct := order[:0:0]
	for _, idx := range order {
		if len(distinct) > 0 && points[distinct[len(distinct)-1]].Near(points[idx], eps) {
			continue
		}
		distinct = append(distinct, idx)
	}
	if len(distinct) < 3 {
		return nil, errors.Wrapf(ErrDegenerate, "%d distinct points", len(distinct))
	}

	// A turn smaller than this is treated as collinear
	turn := func(o, a, b int) float64 {
		return Cross(points[o], points[a], points[b])
	}
	collinear := func(o, a, b int) bool {
		oa := points[a].Sub(points[o]).Norm()
		ob := points[b].Sub(points[o]).Norm()
		return turn(o, a, b) <= eps*oa*ob
	}

	var lower []int
	for _, idx := range distinct {
		for len(lower) >= 2 && collinear(lower[len(lower)-2], lower[len(lower)-1], idx) {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, idx)
	}

	var upper []int
	for i := len(distinct) - 1; i >= 0; i-- {
		idx := distinct[i]
		for len(upper) >= 2 && collinear(upper[len(upper)-2], upper[len(upper)-1], idx) {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, idx)
	}

	// The last point of each chain is the first point of the other
	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	if len(hull) < 3 {
		return nil, errors.Wrap(ErrDegenerate, "points are collinear")
	}
	return hull, nil
}

// HullPolygon resolves hull indices into a polygon.
func HullPolygon(points []Point, hull []int) Polygon {
	poly := Polygon{Points: make([]Point, len(hull))}
	for i, idx := range hull {
		poly.Points[i] = points[idx]
	}
	return poly
}
