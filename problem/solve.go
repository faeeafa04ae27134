package problem

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/osuushi/lpvisu/geometry"
	"github.com/osuushi/lpvisu/region"
)

// Solution is an optimal vertex and the objective value there.
type Solution struct {
	X     geometry.Point
	Value float64
}

// Solve maximizes c·x over the constraints, the cuts and the bounds of p. The
// errors lp.ErrInfeasible and lp.ErrUnbounded come through wrapped.
func Solve(p *Problem) (Solution, error) {
	rows := append(p.Rows(), p.Cuts()...)
	return Maximize(p.C, rows, p.Bounds())
}

// A variable of the standard form program: x_i = offset + sign*y with y >= 0.
type column struct {
	variable int
	sign     float64
}

// Maximize solves max c·x subject to rows and bounds with gonum's simplex.
//
// The simplex works on min c'y, Ay = b, y >= 0. A variable with a finite lower
// bound is shifted onto it, a free variable is split in two, and every row,
// finite upper bounds included, gets its own slack.
func Maximize(c [2]float64, rows []region.Constraint, bounds region.Bounds) (Solution, error) {
	var offset [2]float64
	var columns []column
	for i, b := range []region.Bound{bounds.X1, bounds.X2} {
		if b.HasLower() {
			offset[i] = b.Lower
			columns = append(columns, column{i, 1})
		} else {
			columns = append(columns, column{i, 1}, column{i, -1})
		}
		if b.HasUpper() {
			a := [2]float64{}
			a[i] = 1
			rows = append(rows, region.Constraint{A: a, B: b.Upper})
		}
	}

	// A column that no row touches is either pinned at zero or unbounded
	used := columns[:0]
	for _, col := range columns {
		touched := false
		for _, row := range rows {
			if row.A[col.variable] != 0 {
				touched = true
				break
			}
		}
		if touched {
			used = append(used, col)
			continue
		}
		if col.sign*c[col.variable] > 0 {
			return Solution{}, errors.Wrapf(lp.ErrUnbounded, "x%d is unconstrained", col.variable+1)
		}
	}
	columns = used
	if len(rows) == 0 {
		return Solution{X: geometry.Point{X: offset[0], Y: offset[1]}, Value: c[0]*offset[0] + c[1]*offset[1]}, nil
	}

	width := len(columns) + len(rows)
	a := mat.NewDense(len(rows), width, nil)
	b := make([]float64, len(rows))
	cost := make([]float64, width)
	for j, col := range columns {
		cost[j] = -col.sign * c[col.variable]
	}
	for i, row := range rows {
		for j, col := range columns {
			a.Set(i, j, col.sign*row.A[col.variable])
		}
		a.Set(i, len(columns)+i, 1)
		b[i] = row.B - row.A[0]*offset[0] - row.A[1]*offset[1]
	}

	_, y, err := lp.Simplex(cost, a, b, 0, nil)
	if err != nil {
		return Solution{}, errors.Wrap(err, "simplex")
	}

	x := offset
	for j, col := range columns {
		x[col.variable] += col.sign * y[j]
	}
	for i := range x {
		if math.Abs(x[i]) < geometry.Tolerance {
			x[i] = 0
		}
	}
	return Solution{
		X:     geometry.Point{X: x[0], Y: x[1]},
		Value: c[0]*x[0] + c[1]*x[1],
	}, nil
}
