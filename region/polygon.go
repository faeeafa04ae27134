package region

import "github.com/osuushi/lpvisu/geometry"

// Feasible is a feasible polygon: every vertex candidate that passed the
// filter, and the hull traversal over them.
type Feasible struct {
	Vertices []geometry.Point
	Hull     []int
}

// Outline is the hull as a counterclockwise polygon.
func (f Feasible) Outline() geometry.Polygon {
	return geometry.HullPolygon(f.Vertices, f.Hull)
}

func (f Feasible) Area() float64 {
	return f.Outline().Area()
}

func (f Feasible) Bounds() geometry.BBox {
	return f.Outline().Bounds()
}

// Filter keeps the points that satisfy every row within eps and lie inside
// the variable bounds. Points closer than eps to an already kept point are
// dropped.
func Filter(points []geometry.Point, rows []Constraint, bounds Bounds, eps float64) []geometry.Point {
	var kept []geometry.Point
candidates:
	for _, p := range points {
		if !bounds.Admits(p, eps) {
			continue
		}
		for _, row := range rows {
			if !row.Satisfied(p, eps) {
				continue candidates
			}
		}
		for _, q := range kept {
			if q.Near(p, eps) {
				continue candidates
			}
		}
		kept = append(kept, p)
	}
	return kept
}

// ComputePolygon intersects every pair of lines, keeps the feasible points and
// computes their hull. The result matches ErrUnrenderable when the feasible
// points don't span a polygon.
func ComputePolygon(rows []Constraint, lines []geometry.Segment, bounds Bounds, eps float64) (Feasible, error) {
	vertices := Filter(geometry.Intersections(lines, eps), rows, bounds, eps)
	hull, err := geometry.ConvexHull(vertices, eps)
	if err != nil {
		return Feasible{}, unrenderable(err, "feasible polygon")
	}
	return Feasible{Vertices: vertices, Hull: hull}, nil
}
