// Package problem reads linear programs from YAML files and turns them into a
// region and the options of the scene that draws it.
package problem

import (
	"bytes"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/osuushi/lpvisu/geometry"
	"github.com/osuushi/lpvisu/region"
	"github.com/osuushi/lpvisu/scene"
)

// Problem mirrors the file format. Everything except A, b and c is optional.
//
//	A: [[0, 1], [1, 2], [1, 1], [1, -1]]
//	b: [6, 15, 10, 2]
//	c: [1, 1]
//	x1_bounds: [0, null]
//	obj: 8
type Problem struct {
	A [][2]float64 `yaml:"A"`
	B []float64    `yaml:"b"`
	C [2]float64   `yaml:"c"`

	// [lower, upper]; null is an infinity. Both default to [0, null].
	X1Bounds []*float64 `yaml:"x1_bounds"`
	X2Bounds []*float64 `yaml:"x2_bounds"`

	// Rendering window per axis, derived from the polygon when absent.
	X1GuiBounds *[2]float64 `yaml:"x1_gui_bounds"`
	X2GuiBounds *[2]float64 `yaml:"x2_gui_bounds"`
	X1GridStep  float64     `yaml:"x1_grid_step"`
	X2GridStep  float64     `yaml:"x2_grid_step"`
	Epsilon     float64     `yaml:"epsilon"`
	Clip        bool        `yaml:"clip"`

	ACuts [][2]float64 `yaml:"A_cuts"`
	BCuts []float64    `yaml:"b_cuts"`

	Integers   bool         `yaml:"integers"`
	Xk         *[2]float64  `yaml:"xk"`
	Obj        *float64     `yaml:"obj"`
	Scale      float64      `yaml:"scale"`
	PivotScale float64      `yaml:"pivot_scale"`
	Variables  []string     `yaml:"variables"`
	Trajectory [][2]float64 `yaml:"trajectory"`
}

// Load reads and validates a problem file.
func Load(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading problem")
	}
	p, err := Parse(data)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return p, nil
}

// Parse decodes a problem from YAML. Unknown keys are errors, so that a typo
// doesn't silently fall back to a default.
func Parse(data []byte) (*Problem, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Problem
	if err := dec.Decode(&p); err != nil {
		if err == io.EOF {
			return nil, errors.Wrap(region.ErrMalformed, "empty problem")
		}
		return nil, errors.Wrap(err, "decoding problem")
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Problem) validate() error {
	if len(p.A) != len(p.B) {
		return errors.Wrapf(region.ErrMalformed, "%d rows in A for %d values in b", len(p.A), len(p.B))
	}
	if len(p.ACuts) != len(p.BCuts) {
		return errors.Wrapf(region.ErrMalformed, "%d rows in A_cuts for %d values in b_cuts", len(p.ACuts), len(p.BCuts))
	}
	if p.X1Bounds != nil && len(p.X1Bounds) != 2 {
		return errors.Wrap(region.ErrMalformed, "x1_bounds needs a lower and an upper bound")
	}
	if p.X2Bounds != nil && len(p.X2Bounds) != 2 {
		return errors.Wrap(region.ErrMalformed, "x2_bounds needs a lower and an upper bound")
	}
	if p.Variables != nil && len(p.Variables) != 2 {
		return errors.Wrapf(region.ErrMalformed, "%d variable names for 2 variables", len(p.Variables))
	}
	return nil
}

// Rows are the constraint rows, without the cuts.
func (p *Problem) Rows() []region.Constraint {
	rows, _ := region.Rows(p.A, p.B)
	return rows
}

func (p *Problem) Cuts() []region.Constraint {
	rows, _ := region.Rows(p.ACuts, p.BCuts)
	return rows
}

func (p *Problem) Bounds() region.Bounds {
	return region.Bounds{X1: bound(p.X1Bounds), X2: bound(p.X2Bounds)}
}

func bound(b []*float64) region.Bound {
	if b == nil {
		return region.NonNegative()
	}
	out := region.Unbounded()
	if b[0] != nil {
		out.Lower = *b[0]
	}
	if b[1] != nil {
		out.Upper = *b[1]
	}
	return out
}

// Region builds the region of the base constraints. The cuts are left to the
// scene, which draws them over the base polygon.
func (p *Problem) Region() (*region.Region, error) {
	opts := region.DefaultOptions()
	opts.Bounds = p.Bounds()
	opts.ClipToWindow = p.Clip
	if p.Epsilon != 0 {
		opts.Epsilon = p.Epsilon
	}
	if p.X1GuiBounds != nil {
		opts.X1Window = &region.Interval{Min: p.X1GuiBounds[0], Max: p.X1GuiBounds[1]}
	}
	if p.X2GuiBounds != nil {
		opts.X2Window = &region.Interval{Min: p.X2GuiBounds[0], Max: p.X2GuiBounds[1]}
	}
	return region.New(p.Rows(), opts)
}

// SceneOptions carries the drawing parameters over to scene options. Zero
// values keep the scene defaults.
func (p *Problem) SceneOptions() scene.Options {
	opts := scene.DefaultOptions()
	if p.Scale != 0 {
		opts.Scale = p.Scale
	}
	if p.PivotScale != 0 {
		opts.PivotScale = p.PivotScale
	}
	if p.X1GridStep != 0 {
		opts.X1GridStep = p.X1GridStep
	}
	if p.X2GridStep != 0 {
		opts.X2GridStep = p.X2GridStep
	}
	if len(p.Variables) == 2 {
		opts.Variables = [2]string{p.Variables[0], p.Variables[1]}
	}
	opts.Integers = p.Integers
	if p.Xk != nil {
		opts.Pivot = &geometry.Point{X: p.Xk[0], Y: p.Xk[1]}
	}
	if p.Obj != nil {
		obj := *p.Obj
		opts.Objective = &obj
	}
	opts.Cuts = p.Cuts()
	return opts
}

// Path is the pivot trajectory, in order.
func (p *Problem) Path() []geometry.Point {
	points := make([]geometry.Point, len(p.Trajectory))
	for i, xy := range p.Trajectory {
		points[i] = geometry.Point{X: xy[0], Y: xy[1]}
	}
	return points
}

// Objective value at the pivot, if there is one.
func (p *Problem) PivotValue() (float64, bool) {
	if p.Xk == nil {
		return math.NaN(), false
	}
	return p.C[0]*p.Xk[0] + p.C[1]*p.Xk[1], true
}
