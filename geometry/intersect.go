package geometry

import "math"

// Intersect computes where the infinite lines through a and b meet. The
// segments themselves are not clipped: the endpoints only give the direction
// and one point of each line.
//
// The first direction is rotated by 90°, which turns the problem into a scalar
// projection along the second line:
//
//	t = perp(da)·(a1 - b1) / perp(da)·db
//	p = b1 + t*db
//
// ErrParallel is returned when |perp(da)·db| < eps.
func Intersect(a, b Segment, eps float64) (Point, error) {
	da := a.Direction()
	db := b.Direction()
	perp := da.Perp()

	denom := perp.Dot(db)
	if math.Abs(denom) < eps {
		return Point{}, ErrParallel
	}

	t := perp.Dot(a.Start.Sub(b.Start)) / denom
	return b.Start.Add(db.Scale(t)), nil
}

// Intersections returns the intersection of every pair of lines, in pair
// order (i < j). Parallel pairs are skipped.
func Intersections(lines []Segment, eps float64) []Point {
	var points []Point
	for i := range lines {
		for j := i + 1; j < len(lines); j++ {
			p, err := Intersect(lines[i], lines[j], eps)
			if err != nil {
				continue
			}
			points = append(points, p)
		}
	}
	return points
}
