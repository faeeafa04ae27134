package scene

import (
	"io"
	"log"
	"math"
	"strconv"

	"github.com/pkg/errors"

	"github.com/osuushi/lpvisu/geometry"
	"github.com/osuushi/lpvisu/internal/dbg"
	"github.com/osuushi/lpvisu/region"
)

type Options struct {
	// Pixels per problem unit is Scale*DPI.
	Scale float64
	DPI   float64

	// Largest side of the picture in pixels. Larger windows are drawn with
	// fewer pixels per unit.
	MaxSize int

	// Radius of the pivot marker is 0.1*PivotScale problem units.
	PivotScale float64

	X1GridStep float64
	X2GridStep float64

	// Axis names.
	Variables [2]string

	// Draw the lattice points of the active polygon.
	Integers bool

	// Initial state, drawn by Draw.
	Pivot     *geometry.Point
	Objective *float64
	Cuts      []region.Constraint

	// Blocks DrawPivotInteractive. Defaults to waiting on stdin.
	Waiter Waiter

	// Called after every interactive step, before waiting, so that the
	// caller can put the current picture on screen.
	OnUpdate func(*Scene)

	Logger *log.Logger
}

func DefaultOptions() Options {
	return Options{
		Scale:      0.8,
		DPI:        100,
		MaxSize:    4096,
		PivotScale: 1,
		X1GridStep: 1,
		X2GridStep: 1,
		Variables:  [2]string{"x_1", "x_2"},
	}
}

// Scene draws a region and everything layered on it into a DisplayList. The
// scene owns the handles of the shapes it manages and repositions them in
// place, so redrawing never piles up duplicates.
type Scene struct {
	region *region.Region
	c      [2]float64
	opts   Options
	list   *DisplayList
	log    *log.Logger

	objective      Handle
	objectiveValue float64
	pivot          Handle
	trail          []Handle
	before         Handle
	cutRegion      Handle
	cutLines       []Handle
	integers       []Handle
}

// New prepares a scene for r with objective coefficients c. Initial cuts from
// opts are applied to r right away; nothing is drawn until Draw.
func New(r *region.Region, c [2]float64, opts Options) (*Scene, error) {
	defaults := DefaultOptions()
	if opts.Scale <= 0 {
		opts.Scale = defaults.Scale
	}
	if opts.DPI <= 0 {
		opts.DPI = defaults.DPI
	}
	if opts.MaxSize <= 0 {
		opts.MaxSize = defaults.MaxSize
	}
	if opts.PivotScale <= 0 {
		opts.PivotScale = defaults.PivotScale
	}
	if opts.X1GridStep <= 0 {
		opts.X1GridStep = defaults.X1GridStep
	}
	if opts.X2GridStep <= 0 {
		opts.X2GridStep = defaults.X2GridStep
	}
	if opts.Variables == [2]string{} {
		opts.Variables = defaults.Variables
	}
	if opts.Waiter == nil {
		opts.Waiter = StdinWaiter()
	}

	s := &Scene{
		region: r,
		c:      c,
		opts:   opts,
		list:   NewDisplayList(),
		log:    opts.Logger,
	}
	if s.log == nil {
		s.log = log.New(io.Discard, "", 0)
	}

	if len(opts.Cuts) > 0 {
		if err := r.AddCuts(opts.Cuts...); err != nil {
			return nil, errors.WithMessage(err, "initial cuts")
		}
	}
	return s, nil
}

func (s *Scene) Region() *region.Region {
	return s.region
}

func (s *Scene) Objective() [2]float64 {
	return s.c
}

func (s *Scene) Options() Options {
	return s.opts
}

// Shapes is the current picture in drawing order.
func (s *Scene) Shapes() []Shape {
	return s.list.Shapes()
}

// List is the display list backends render from.
func (s *Scene) List() *DisplayList {
	return s.list
}

// Draw rebuilds the whole picture: grid and axes, boundary lines, the feasible
// polygon, then the optional lattice points, objective line, pivot and cut
// overlay. Drawing again starts from scratch.
func (s *Scene) Draw() error {
	s.list.Clear()
	s.objective, s.pivot, s.before, s.cutRegion = 0, 0, 0, 0
	s.trail, s.cutLines, s.integers = nil, nil, nil

	s.drawFrame()
	s.drawEquationsAndPolygon()

	if s.opts.Integers {
		s.drawIntegers(s.region.Base())
	}
	if s.opts.Objective != nil {
		if err := s.DrawObjectiveFunction(*s.opts.Objective); err != nil {
			return err
		}
	}
	if s.opts.Pivot != nil {
		s.DrawPivot(*s.opts.Pivot)
	}
	if s.region.HasCuts() {
		s.drawCuts()
	}
	return nil
}

// DrawObjectiveFunction draws, or moves, the line c·x = value.
func (s *Scene) DrawObjectiveFunction(value float64) error {
	line, err := region.IsoLine(s.c, value, s.region.Window(), s.region.Epsilon())
	if err != nil {
		return err
	}
	s.objectiveValue = value
	s.objective = s.put(s.objective, Shape{
		Kind:   KindLine,
		Layer:  LayerOverlay,
		Role:   RoleObjective,
		Points: []geometry.Point{line.Start, line.End},
		Style:  objectiveStyle,
	})
	return nil
}

// RemoveObjectiveFunction removes the objective line if there is one.
func (s *Scene) RemoveObjectiveFunction() {
	s.remove(&s.objective)
}

// ObjectiveValue is the value of the drawn objective line.
func (s *Scene) ObjectiveValue() (float64, bool) {
	return s.objectiveValue, s.objective != 0
}

// DrawPivot draws the pivot marker at p, moving it if it already exists.
func (s *Scene) DrawPivot(p geometry.Point) {
	s.pivot = s.put(s.pivot, Shape{
		Kind:   KindCircle,
		Layer:  LayerPivot,
		Role:   RolePivot,
		Center: p,
		Radius: 0.1 * s.opts.PivotScale,
		Style:  pivotStyle,
	})
}

// RemovePivot removes the pivot marker and the trail behind it.
func (s *Scene) RemovePivot() {
	s.remove(&s.pivot)
	for i := range s.trail {
		s.remove(&s.trail[i])
	}
	s.trail = nil
}

// Pivot is the current pivot position.
func (s *Scene) Pivot() (geometry.Point, bool) {
	shape, ok := s.list.Get(s.pivot)
	return shape.Center, ok
}

// StepPivot moves the pivot to p and draws a segment from where it was. The
// first step only places the marker.
func (s *Scene) StepPivot(p geometry.Point) {
	if previous, ok := s.Pivot(); ok {
		s.trail = append(s.trail, s.add(Shape{
			Kind:   KindLine,
			Layer:  LayerMarker,
			Role:   RoleTrail,
			Points: []geometry.Point{previous, p},
			Style:  trailStyle,
		}))
	}
	s.DrawPivot(p)
}

// AddCuts adds cuts to the region and draws them. The first cuts fade the
// base polygon into a "before" layer; the cut polygon is drawn over it
// together with the boundary line of every cut. On error nothing changes.
func (s *Scene) AddCuts(cuts ...region.Constraint) error {
	if err := s.region.AddCuts(cuts...); err != nil {
		return err
	}
	s.drawCuts()
	return nil
}

// ResetCuts drops every cut and its overlay, and restores the lattice points
// of the base polygon.
func (s *Scene) ResetCuts() {
	s.region.ResetCuts()
	s.remove(&s.before)
	s.remove(&s.cutRegion)
	for i := range s.cutLines {
		s.remove(&s.cutLines[i])
	}
	s.cutLines = nil
	if s.opts.Integers {
		s.drawIntegers(s.region.Base())
	}
}

func (s *Scene) drawCuts() {
	if s.before == 0 {
		s.before = s.add(Shape{
			Kind:   KindPolygon,
			Layer:  LayerRegion,
			Role:   RoleBefore,
			Points: s.region.Base().Outline().Points,
			Style:  beforeStyle,
		})
	}

	s.cutRegion = s.put(s.cutRegion, Shape{
		Kind:   KindPolygon,
		Layer:  LayerRegion,
		Role:   RoleCutRegion,
		Points: s.region.Active().Outline().Points,
		Style:  regionStyle,
	})

	for i := range s.cutLines {
		s.remove(&s.cutLines[i])
	}
	s.cutLines = s.cutLines[:0]
	for _, line := range s.region.CutLines() {
		s.cutLines = append(s.cutLines, s.add(Shape{
			Kind:   KindLine,
			Layer:  LayerOverlay,
			Role:   RoleCutLine,
			Points: []geometry.Point{line.Start, line.End},
			Style:  cutLineStyle,
		}))
	}

	if s.opts.Integers {
		s.drawIntegers(s.region.Active())
	}
}

func (s *Scene) drawIntegers(f region.Feasible) {
	for i := range s.integers {
		s.remove(&s.integers[i])
	}
	s.integers = s.integers[:0]
	for _, p := range s.region.IntegerPoints(f) {
		s.integers = append(s.integers, s.add(Shape{
			Kind:   KindCircle,
			Layer:  LayerMarker,
			Role:   RoleInteger,
			Center: p,
			Radius: 0.075,
			Style:  integerStyle,
		}))
	}
}

func (s *Scene) drawEquationsAndPolygon() {
	for _, line := range s.region.Lines() {
		s.add(Shape{
			Kind:   KindLine,
			Layer:  LayerBoundary,
			Role:   RoleBoundary,
			Points: []geometry.Point{line.Start, line.End},
			Style:  boundaryStyle,
		})
	}
	s.add(Shape{
		Kind:   KindPolygon,
		Layer:  LayerRegion,
		Role:   RoleRegion,
		Points: s.region.Base().Outline().Points,
		Style:  regionStyle,
	})
}

// Grid lines at every step from the lower window edge, the two axes through
// the origin (or the window edge when the origin is outside), tick labels and
// the variable names.
func (s *Scene) drawFrame() {
	w := s.region.Window()
	fontSize := labelStyle.FontSize * s.opts.Scale

	originX := clamp(0, w.MinX, w.MaxX)
	originY := clamp(0, w.MinY, w.MaxY)

	for _, x := range ticks(w.MinX, w.MaxX, s.opts.X1GridStep) {
		s.add(Shape{Kind: KindLine, Layer: LayerGrid, Role: RoleGrid, Style: gridStyle,
			Points: []geometry.Point{{X: x, Y: w.MinY}, {X: x, Y: w.MaxY}}})
		s.add(Shape{Kind: KindText, Layer: LayerAxes, Role: RoleLabel, Style: Style{Fill: black, FontSize: fontSize},
			Center: geometry.Point{X: x, Y: originY}, Anchor: geometry.Point{X: 0.5, Y: 1.2}, Text: tickLabel(x)})
	}
	for _, y := range ticks(w.MinY, w.MaxY, s.opts.X2GridStep) {
		s.add(Shape{Kind: KindLine, Layer: LayerGrid, Role: RoleGrid, Style: gridStyle,
			Points: []geometry.Point{{X: w.MinX, Y: y}, {X: w.MaxX, Y: y}}})
		s.add(Shape{Kind: KindText, Layer: LayerAxes, Role: RoleLabel, Style: Style{Fill: black, FontSize: fontSize},
			Center: geometry.Point{X: originX, Y: y}, Anchor: geometry.Point{X: 1.2, Y: 0.5}, Text: tickLabel(y)})
	}

	s.add(Shape{Kind: KindLine, Layer: LayerAxes, Role: RoleAxis, Style: axisStyle,
		Points: []geometry.Point{{X: w.MinX, Y: originY}, {X: w.MaxX, Y: originY}}})
	s.add(Shape{Kind: KindLine, Layer: LayerAxes, Role: RoleAxis, Style: axisStyle,
		Points: []geometry.Point{{X: originX, Y: w.MinY}, {X: originX, Y: w.MaxY}}})

	nameSize := 14 * s.opts.Scale
	s.add(Shape{Kind: KindText, Layer: LayerAxes, Role: RoleLabel, Style: Style{Fill: black, FontSize: nameSize},
		Center: geometry.Point{X: w.MaxX, Y: originY}, Anchor: geometry.Point{X: 1, Y: -0.5}, Text: s.opts.Variables[0]})
	s.add(Shape{Kind: KindText, Layer: LayerAxes, Role: RoleLabel, Style: Style{Fill: black, FontSize: nameSize},
		Center: geometry.Point{X: originX, Y: w.MaxY}, Anchor: geometry.Point{X: -0.2, Y: 1}, Text: s.opts.Variables[1]})
}

// put adds shape, or replaces the shape behind h when h is live.
func (s *Scene) put(h Handle, shape Shape) Handle {
	if h != 0 && s.list.Set(h, shape) {
		s.log.Printf("move %s %s", shape.Role, dbg.Name(h))
		return h
	}
	return s.add(shape)
}

func (s *Scene) add(shape Shape) Handle {
	h := s.list.Add(shape)
	s.log.Printf("add %s %s", shape.Role, dbg.Name(h))
	return h
}

func (s *Scene) remove(h *Handle) {
	if *h == 0 {
		return
	}
	if shape, ok := s.list.Get(*h); ok {
		s.list.Remove(*h)
		s.log.Printf("remove %s %s", shape.Role, dbg.Name(*h))
	}
	*h = 0
}

// ticks behaves like arange(lo, hi, step).
func ticks(lo, hi, step float64) []float64 {
	var out []float64
	for i := 0; ; i++ {
		v := lo + float64(i)*step
		if v >= hi || geometry.Equal(v, hi) {
			break
		}
		out = append(out, v)
	}
	return out
}

func tickLabel(v float64) string {
	if geometry.Equal(v, 0) {
		v = 0
	}
	return strconv.FormatFloat(v, 'g', 4, 64)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
