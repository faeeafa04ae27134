// Visualization of linear programs with two variables.
//
// This package draws the feasible region of a system of inequalities
// A x <= b with bounds on x1 and x2, then layers the objective line, the
// pivots of a simplex run and cutting planes on top of it. Pictures are kept
// as a display list and rendered to PNG, SVG, HTML or a terminal.
package lpvisu

import (
	"github.com/osuushi/lpvisu/geometry"
	"github.com/osuushi/lpvisu/region"
	"github.com/osuushi/lpvisu/scene"
)

type Point = geometry.Point
type Constraint = region.Constraint
type Bound = region.Bound
type Region = region.Region
type Scene = scene.Scene

type Options struct {
	Region region.Options
	Scene  scene.Options
}

func DefaultOptions() Options {
	return Options{
		Region: region.DefaultOptions(),
		Scene:  scene.DefaultOptions(),
	}
}

// Take the rows of A x <= b and the objective coefficients, and draw the
// initial picture.
//
// See region.New and scene.New for the errors.
func New(a [][2]float64, b []float64, c [2]float64, opts Options) (*Scene, error) {
	rows, err := region.Rows(a, b)
	if err != nil {
		return nil, err
	}
	r, err := region.New(rows, opts.Region)
	if err != nil {
		return nil, err
	}
	s, err := scene.New(r, c, opts.Scene)
	if err != nil {
		return nil, err
	}
	if err := s.Draw(); err != nil {
		return nil, err
	}
	return s, nil
}
