package region

import "github.com/osuushi/lpvisu/geometry"

// DefaultWindow is used to place boundary lines before the rendering window is
// known.
var DefaultWindow = geometry.BBox{MinX: -1000, MinY: -1000, MaxX: 1000, MaxY: 1000}

// ComputeLines returns, for each constraint, the segment of its equality line
// that crosses the window. Lines with a nonzero x2 coefficient are evaluated at
// the left and right edges; vertical lines at the bottom and top edges.
func ComputeLines(rows []Constraint, window geometry.BBox) []geometry.Segment {
	lines := make([]geometry.Segment, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, boundaryLine(row, window))
	}
	return lines
}

func boundaryLine(row Constraint, window geometry.BBox) geometry.Segment {
	a1, a2, b := row.A[0], row.A[1], row.B
	if a2 != 0 {
		return geometry.Segment{
			Start: geometry.Point{X: window.MinX, Y: (b - window.MinX*a1) / a2},
			End:   geometry.Point{X: window.MaxX, Y: (b - window.MaxX*a1) / a2},
		}
	}
	x := b / a1
	return geometry.Segment{
		Start: geometry.Point{X: x, Y: window.MinY},
		End:   geometry.Point{X: x, Y: window.MaxY},
	}
}

// BoundLines returns one line per finite variable bound: x1 = lower, x1 =
// upper, x2 = lower, x2 = upper, in that order, each spanning the window.
func BoundLines(bounds Bounds, window geometry.BBox) []geometry.Segment {
	var lines []geometry.Segment
	vertical := func(x float64) {
		lines = append(lines, geometry.Segment{
			Start: geometry.Point{X: x, Y: window.MinY},
			End:   geometry.Point{X: x, Y: window.MaxY},
		})
	}
	horizontal := func(y float64) {
		lines = append(lines, geometry.Segment{
			Start: geometry.Point{X: window.MinX, Y: y},
			End:   geometry.Point{X: window.MaxX, Y: y},
		})
	}
	if bounds.X1.HasLower() {
		vertical(bounds.X1.Lower)
	}
	if bounds.X1.HasUpper() {
		vertical(bounds.X1.Upper)
	}
	if bounds.X2.HasLower() {
		horizontal(bounds.X2.Lower)
	}
	if bounds.X2.HasUpper() {
		horizontal(bounds.X2.Upper)
	}
	return lines
}

// WindowLines returns the four edges of the window: left, right, bottom, top.
func WindowLines(window geometry.BBox) []geometry.Segment {
	bl := geometry.Point{X: window.MinX, Y: window.MinY}
	br := geometry.Point{X: window.MaxX, Y: window.MinY}
	tl := geometry.Point{X: window.MinX, Y: window.MaxY}
	tr := geometry.Point{X: window.MaxX, Y: window.MaxY}
	return []geometry.Segment{{bl, tl}, {br, tr}, {bl, br}, {tl, tr}}
}
