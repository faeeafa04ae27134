package geometry

type Point struct {
	X float64
	Y float64
}

// Segment is a pair of points. For boundary lines only the infinite line through
// Start and End matters; the endpoints are where that line leaves the window.
type Segment struct {
	Start Point
	End   Point
}

type Polygon struct {
	Points []Point
}

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}
