package region

import (
	"math"

	"github.com/osuushi/lpvisu/geometry"
)

// IsoLine is the line c[0]*x1 + c[1]*x2 = value across the window. When c[1]
// is negligible the line is vertical and spans the window's height instead of
// its width.
func IsoLine(c [2]float64, value float64, window geometry.BBox, eps float64) (geometry.Segment, error) {
	switch {
	case math.Abs(c[1]) > eps:
		return geometry.Segment{
			Start: geometry.Point{X: window.MinX, Y: (value - window.MinX*c[0]) / c[1]},
			End:   geometry.Point{X: window.MaxX, Y: (value - window.MaxX*c[0]) / c[1]},
		}, nil
	case math.Abs(c[0]) > eps:
		x := value / c[0]
		return geometry.Segment{
			Start: geometry.Point{X: x, Y: window.MinY},
			End:   geometry.Point{X: x, Y: window.MaxY},
		}, nil
	}
	return geometry.Segment{}, ErrZeroObjective
}

// Value of the objective at p.
func Value(c [2]float64, p geometry.Point) float64 {
	return c[0]*p.X + c[1]*p.Y
}
