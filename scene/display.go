package scene

import (
	"sort"

	"github.com/osuushi/lpvisu/geometry"
)

// Handle identifies a shape in a DisplayList. The zero Handle is never issued
// and stands for "nothing drawn".
type Handle int

type Kind int

const (
	// Open polyline through Points
	KindLine Kind = iota
	// Closed polygon through Points
	KindPolygon
	// Circle at Center with Radius, in problem units
	KindCircle
	// Text at Center
	KindText
)

// Layer orders shapes when rendering. Within a layer, older shapes are drawn
// first.
type Layer int

const (
	LayerGrid Layer = iota
	LayerAxes
	LayerBoundary
	LayerRegion
	LayerOverlay
	LayerMarker
	LayerPivot
)

// Role tags what a shape stands for, for logging and for tests.
type Role string

const (
	RoleGrid      Role = "grid"
	RoleAxis      Role = "axis"
	RoleLabel     Role = "label"
	RoleBoundary  Role = "boundary"
	RoleRegion    Role = "region"
	RoleBefore    Role = "before-cuts"
	RoleCutRegion Role = "cut-region"
	RoleCutLine   Role = "cut-line"
	RoleObjective Role = "objective"
	RoleInteger   Role = "integer"
	RolePivot     Role = "pivot"
	RoleTrail     Role = "trail"
)

type Shape struct {
	Kind   Kind
	Layer  Layer
	Role   Role
	Points []geometry.Point
	Center geometry.Point
	Radius float64
	Text   string
	// Text alignment relative to Center, in text widths and heights, like
	// gg's DrawStringAnchored.
	Anchor geometry.Point
	Style  Style
}

// DisplayList is a retained set of shapes keyed by handle. Backends only ever
// read it, so the same list renders to PNG, SVG or a terminal.
type DisplayList struct {
	last   Handle
	shapes map[Handle]Shape
}

func NewDisplayList() *DisplayList {
	return &DisplayList{shapes: make(map[Handle]Shape)}
}

func (l *DisplayList) Add(shape Shape) Handle {
	l.last++
	l.shapes[l.last] = shape
	return l.last
}

func (l *DisplayList) Get(h Handle) (Shape, bool) {
	shape, ok := l.shapes[h]
	return shape, ok
}

// Set replaces the shape behind an existing handle. It reports false for
// unknown handles.
func (l *DisplayList) Set(h Handle, shape Shape) bool {
	if _, ok := l.shapes[h]; !ok {
		return false
	}
	l.shapes[h] = shape
	return true
}

func (l *DisplayList) Remove(h Handle) bool {
	if _, ok := l.shapes[h]; !ok {
		return false
	}
	delete(l.shapes, h)
	return true
}

func (l *DisplayList) Len() int {
	return len(l.shapes)
}

// Clear drops every shape. Handles are not reused afterwards.
func (l *DisplayList) Clear() {
	l.shapes = make(map[Handle]Shape)
}

// Handles in drawing order: by layer, then by age.
func (l *DisplayList) Handles() []Handle {
	handles := make([]Handle, 0, len(l.shapes))
	for h := range l.shapes {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool {
		a, b := l.shapes[handles[i]], l.shapes[handles[j]]
		if a.Layer != b.Layer {
			return a.Layer < b.Layer
		}
		return handles[i] < handles[j]
	})
	return handles
}

// Shapes in drawing order.
func (l *DisplayList) Shapes() []Shape {
	handles := l.Handles()
	shapes := make([]Shape, len(handles))
	for i, h := range handles {
		shapes[i] = l.shapes[h]
	}
	return shapes
}

// Count returns how many shapes have the given role.
func (l *DisplayList) Count(role Role) int {
	n := 0
	for _, shape := range l.shapes {
		if shape.Role == role {
			n++
		}
	}
	return n
}
