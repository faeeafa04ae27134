package region

import (
	"math"

	"github.com/pkg/errors"

	"github.com/osuushi/lpvisu/geometry"
)

// Interval is one axis of the rendering window.
type Interval struct {
	Min, Max float64
}

type Options struct {
	Bounds Bounds

	// Rendering window. When an axis is nil it is derived from the feasible
	// polygon as (min(-1, 1.2*lo), max(1, 1.2*hi)).
	X1Window *Interval
	X2Window *Interval

	// Feasibility and parallelism tolerance.
	Epsilon float64

	// Add the window edges to the boundary lines, so that regions that are
	// unbounded still produce a polygon, clipped to the window.
	ClipToWindow bool
}

func DefaultOptions() Options {
	return Options{
		Bounds:  DefaultBounds(),
		Epsilon: geometry.Epsilon,
	}
}

// Region is the feasible region of a two-variable constraint system, plus an
// optional set of cuts layered on top of it. The polygons are recomputed
// eagerly on every mutation, so they always match the constraints, the cuts
// and the window currently in effect.
type Region struct {
	rows   []Constraint
	cuts   []Constraint
	bounds Bounds
	window geometry.BBox
	eps    float64
	clip   bool

	lines    []geometry.Segment
	cutLines []geometry.Segment
	base     Feasible
	active   Feasible
}

// New validates the constraint system and computes the base polygon.
func New(rows []Constraint, opts Options) (*Region, error) {
	if !(opts.Epsilon > 0) {
		return nil, malformedf("epsilon must be positive, got %g", opts.Epsilon)
	}
	for _, row := range rows {
		if err := row.validate(); err != nil {
			return nil, err
		}
	}
	if err := opts.Bounds.X1.validate("x1"); err != nil {
		return nil, err
	}
	if err := opts.Bounds.X2.validate("x2"); err != nil {
		return nil, err
	}

	r := &Region{
		rows:   append([]Constraint(nil), rows...),
		bounds: opts.Bounds,
		eps:    opts.Epsilon,
		clip:   opts.ClipToWindow,
	}

	// First pass on a wide window, just to find out how large the polygon is
	window := DefaultWindow
	if opts.X1Window == nil || opts.X2Window == nil {
		r.window = DefaultWindow
		if err := r.recompute(); err != nil {
			return nil, err
		}
		extent := r.base.Bounds()
		window = geometry.BBox{
			MinX: math.Min(-1, 1.2*extent.MinX),
			MinY: math.Min(-1, 1.2*extent.MinY),
			MaxX: math.Max(1, 1.2*extent.MaxX),
			MaxY: math.Max(1, 1.2*extent.MaxY),
		}
	}
	if opts.X1Window != nil {
		window.MinX, window.MaxX = opts.X1Window.Min, opts.X1Window.Max
	}
	if opts.X2Window != nil {
		window.MinY, window.MaxY = opts.X2Window.Min, opts.X2Window.Max
	}
	if err := r.SetWindow(window); err != nil {
		return nil, err
	}
	return r, nil
}

// SetWindow moves the rendering window and recomputes every boundary line and
// polygon. The region is left unchanged on error.
func (r *Region) SetWindow(window geometry.BBox) error {
	if !(window.MaxX > window.MinX && window.MaxY > window.MinY) {
		return malformedf("empty window %v", window)
	}
	previous := *r
	r.window = window
	if err := r.recompute(); err != nil {
		*r = previous
		return err
	}
	return nil
}

// AddCuts appends cuts to the cut set and recomputes the cut polygon over the
// base constraints and every cut so far. When the cuts leave nothing to draw,
// the error matches ErrUnrenderable and the region keeps its previous cuts.
func (r *Region) AddCuts(cuts ...Constraint) error {
	for _, cut := range cuts {
		if err := cut.validate(); err != nil {
			return err
		}
	}
	previous := *r
	r.cuts = append(append([]Constraint(nil), r.cuts...), cuts...)
	if err := r.recompute(); err != nil {
		*r = previous
		return errors.WithMessagef(err, "adding %d cuts", len(cuts))
	}
	return nil
}

// ResetCuts drops every cut. The active polygon is the base polygon again.
func (r *Region) ResetCuts() {
	r.cuts = nil
	r.cutLines = nil
	r.active = r.base
}

func (r *Region) recompute() error {
	bounds := r.filterBounds()

	lines := ComputeLines(r.rows, r.window)
	lines = append(lines, BoundLines(r.bounds, r.window)...)
	if r.clip {
		lines = append(lines, WindowLines(r.window)...)
	}
	base, err := ComputePolygon(r.rows, lines, bounds, r.eps)
	if err != nil {
		return err
	}

	active := base
	var cutLines []geometry.Segment
	if len(r.cuts) > 0 {
		// Cut lines never carry the variable bound lines, those are already in
		// the base set
		cutLines = ComputeLines(r.cuts, r.window)
		rows := append(append([]Constraint(nil), r.rows...), r.cuts...)
		all := append(append([]geometry.Segment(nil), lines...), cutLines...)
		active, err = ComputePolygon(rows, all, bounds, r.eps)
		if err != nil {
			return err
		}
	}

	r.lines, r.cutLines, r.base, r.active = lines, cutLines, base, active
	return nil
}

// With clipping on, the window acts as one more pair of bounds.
func (r *Region) filterBounds() Bounds {
	if !r.clip {
		return r.bounds
	}
	clamp := func(b Bound, lo, hi float64) Bound {
		return Bound{Lower: math.Max(b.Lower, lo), Upper: math.Min(b.Upper, hi)}
	}
	return Bounds{
		X1: clamp(r.bounds.X1, r.window.MinX, r.window.MaxX),
		X2: clamp(r.bounds.X2, r.window.MinY, r.window.MaxY),
	}
}

// Constraints returns a copy of the base constraint rows.
func (r *Region) Constraints() []Constraint {
	return append([]Constraint(nil), r.rows...)
}

// Cuts returns a copy of the cut rows, in the order they were added.
func (r *Region) Cuts() []Constraint {
	return append([]Constraint(nil), r.cuts...)
}

func (r *Region) HasCuts() bool {
	return len(r.cuts) > 0
}

// Lines are the base boundary lines: one per constraint, then the bound lines,
// then the window edges when clipping.
func (r *Region) Lines() []geometry.Segment {
	return append([]geometry.Segment(nil), r.lines...)
}

// CutLines are the boundary lines of the cuts, one per cut.
func (r *Region) CutLines() []geometry.Segment {
	return append([]geometry.Segment(nil), r.cutLines...)
}

// Base is the polygon of the constraint system without cuts.
func (r *Region) Base() Feasible {
	return r.base
}

// Active is the polygon with every cut applied. Without cuts it is Base.
func (r *Region) Active() Feasible {
	return r.active
}

func (r *Region) Window() geometry.BBox {
	return r.window
}

func (r *Region) Bounds() Bounds {
	return r.bounds
}

func (r *Region) Epsilon() float64 {
	return r.eps
}

// IntegerPoints returns the lattice points inside f, with the region's
// tolerance on the boundary.
func (r *Region) IntegerPoints(f Feasible) []geometry.Point {
	return geometry.LatticePoints(f.Outline(), r.eps)
}

// Feasible reports whether p satisfies the constraints, the cuts and the
// bounds.
func (r *Region) Feasible(p geometry.Point) bool {
	if !r.bounds.Admits(p, r.eps) {
		return false
	}
	for _, rows := range [][]Constraint{r.rows, r.cuts} {
		for _, row := range rows {
			if !row.Satisfied(p, r.eps) {
				return false
			}
		}
	}
	return true
}
