package geometry

import (
	"fmt"
	"math"
)

// Tolerance is used for the exact-ish comparisons of the kernel itself, such as
// merging duplicate vertices. Callers that deal with user supplied constraint
// systems pass their own epsilon.
const Tolerance = 1e-9

// Epsilon is the default feasibility and parallelism tolerance.
const Epsilon = 1e-6

// To compensate for imprecision in floats, equality is tolerance based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Scale(k float64) Point {
	return Point{p.X * k, p.Y * k}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Perp rotates the vector by 90° counterclockwise.
func (p Point) Perp() Point {
	return Point{-p.Y, p.X}
}

func (p Point) Norm() float64 {
	return math.Hypot(p.X, p.Y)
}

// Near reports whether two points are within eps of each other on both axes.
func (p Point) Near(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Cross product of OA and OB. Positive when O, A, B turn counterclockwise.
func Cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

func (s Segment) Direction() Point {
	return s.End.Sub(s.Start)
}

func (s Segment) String() string {
	return fmt.Sprintf("%v-%v", s.Start, s.End)
}

// Empty bounding box, ready to be grown with Extend.
func EmptyBBox() BBox {
	return BBox{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
}

func (b BBox) Extend(p Point) BBox {
	b.MinX = math.Min(b.MinX, p.X)
	b.MinY = math.Min(b.MinY, p.Y)
	b.MaxX = math.Max(b.MaxX, p.X)
	b.MaxY = math.Max(b.MaxY, p.Y)
	return b
}

func (b BBox) IsEmpty() bool {
	return !(b.MaxX >= b.MinX && b.MaxY >= b.MinY)
}

func (b BBox) Width() float64 {
	return b.MaxX - b.MinX
}

func (b BBox) Height() float64 {
	return b.MaxY - b.MinY
}

func (b BBox) Contains(p Point, eps float64) bool {
	return p.X >= b.MinX-eps && p.X <= b.MaxX+eps && p.Y >= b.MinY-eps && p.Y <= b.MaxY+eps
}

func (b BBox) String() string {
	return fmt.Sprintf("[%g, %g]x[%g, %g]", b.MinX, b.MaxX, b.MinY, b.MaxY)
}

// Clip cuts s down to the part inside b (Liang-Barsky). The second result is
// false when nothing of s lies inside.
func (b BBox) Clip(s Segment) (Segment, bool) {
	d := s.Direction()
	t0, t1 := 0.0, 1.0
	for _, edge := range [4][2]float64{
		{-d.X, s.Start.X - b.MinX},
		{d.X, b.MaxX - s.Start.X},
		{-d.Y, s.Start.Y - b.MinY},
		{d.Y, b.MaxY - s.Start.Y},
	} {
		p, q := edge[0], edge[1]
		if p == 0 {
			if q < 0 {
				return Segment{}, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			t0 = math.Max(t0, r)
		} else {
			t1 = math.Min(t1, r)
		}
		if t0 > t1 {
			return Segment{}, false
		}
	}
	return Segment{s.Start.Add(d.Scale(t0)), s.Start.Add(d.Scale(t1))}, true
}
