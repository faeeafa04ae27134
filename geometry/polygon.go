package geometry

import "math"

// Even-odd point in polygon. Points on the boundary may land on either side;
// use Contains when the boundary has to count as inside.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Crossing count of a ray cast from p to the right
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		if (vertex.Y > p.Y) == (nextVertex.Y > p.Y) {
			continue
		}
		// x of the edge at the height of p
		x := vertex.X + (p.Y-vertex.Y)*(nextVertex.X-vertex.X)/(nextVertex.Y-vertex.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

// Contains reports whether p is inside the polygon or within eps of its
// boundary.
func (poly Polygon) Contains(p Point, eps float64) bool {
	if len(poly.Points) == 0 {
		return false
	}
	if poly.DistanceToBoundary(p) <= eps {
		return true
	}
	return poly.ContainsPointByEvenOdd(p)
}

// DistanceToBoundary is the distance from p to the closest edge.
func (poly Polygon) DistanceToBoundary(p Point) float64 {
	best := math.Inf(1)
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		best = math.Min(best, Segment{vertex, nextVertex}.Distance(p))
	}
	return best
}

// Distance from p to the closed segment (not the infinite line).
func (s Segment) Distance(p Point) float64 {
	d := s.Direction()
	length2 := d.Dot(d)
	if length2 == 0 {
		return p.Sub(s.Start).Norm()
	}
	t := math.Max(0, math.Min(1, p.Sub(s.Start).Dot(d)/length2))
	return p.Sub(s.Start.Add(d.Scale(t))).Norm()
}

// Shoelace formula. Positive for counterclockwise polygons.
func (poly Polygon) SignedArea() float64 {
	var area float64
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		area += vertex.X*nextVertex.Y - nextVertex.X*vertex.Y
	}
	return area / 2
}

func (poly Polygon) Area() float64 {
	return math.Abs(poly.SignedArea())
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

func (poly Polygon) Bounds() BBox {
	b := EmptyBBox()
	for _, p := range poly.Points {
		b = b.Extend(p)
	}
	return b
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// LatticePoints enumerates the integer coordinate points of the polygon's
// bounding box that the polygon contains, with eps tolerance on the boundary.
// Points are ordered by x, then y.
func LatticePoints(poly Polygon, eps float64) []Point {
	if len(poly.Points) == 0 {
		return nil
	}
	b := poly.Bounds()
	var points []Point
	for x := math.Ceil(b.MinX - eps); x <= b.MaxX+eps; x++ {
		for y := math.Ceil(b.MinY - eps); y <= b.MaxY+eps; y++ {
			p := Point{x, y}
			if poly.Contains(p, eps) {
				points = append(points, p)
			}
		}
	}
	return points
}
