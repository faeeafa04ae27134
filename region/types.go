package region

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/osuushi/lpvisu/geometry"
)

// Constraint is one row of the system, A[0]*x1 + A[1]*x2 <= B. Coefficients
// and right-hand side are kept in the same record, so duplicate rows are
// harmless.
type Constraint struct {
	A [2]float64
	B float64
}

// Row builds a constraint from its coefficients and right-hand side.
func Row(a1, a2, b float64) Constraint {
	return Constraint{A: [2]float64{a1, a2}, B: b}
}

// Rows zips a coefficient matrix and a right-hand side vector.
func Rows(a [][2]float64, b []float64) ([]Constraint, error) {
	if len(a) != len(b) {
		return nil, malformedf("%d coefficient rows for %d right-hand sides", len(a), len(b))
	}
	rows := make([]Constraint, len(a))
	for i := range a {
		rows[i] = Constraint{A: a[i], B: b[i]}
	}
	return rows, nil
}

// Slack is A·p - B. A point satisfies the constraint when its slack is <= 0.
func (c Constraint) Slack(p geometry.Point) float64 {
	return c.A[0]*p.X + c.A[1]*p.Y - c.B
}

func (c Constraint) Satisfied(p geometry.Point, eps float64) bool {
	return c.Slack(p) <= eps
}

func (c Constraint) String() string {
	return fmt.Sprintf("%g*x1 + %g*x2 <= %g", c.A[0], c.A[1], c.B)
}

// Expression renders the left-hand side with the given variable names, e.g.
// "x1 + 2 x2" or "-x1 - 0.5 x2". Zero terms are left out.
func (c Constraint) Expression(names [2]string) string {
	var b strings.Builder
	for i, a := range c.A {
		if a == 0 {
			continue
		}
		switch {
		case b.Len() == 0 && a < 0:
			b.WriteString("-")
		case b.Len() > 0 && a < 0:
			b.WriteString(" - ")
		case b.Len() > 0:
			b.WriteString(" + ")
		}
		if m := math.Abs(a); m != 1 {
			b.WriteString(strconv.FormatFloat(m, 'g', -1, 64))
			b.WriteString(" ")
		}
		b.WriteString(names[i])
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

// Format renders the whole row, e.g. "x1 + 2 x2 <= 15".
func (c Constraint) Format(names [2]string) string {
	return c.Expression(names) + " <= " + strconv.FormatFloat(c.B, 'g', -1, 64)
}

func (c Constraint) validate() error {
	for _, v := range []float64{c.A[0], c.A[1], c.B} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return malformedf("non-finite value in %v", c)
		}
	}
	if c.A[0] == 0 && c.A[1] == 0 {
		return malformedf("all coefficients are zero in %v", c)
	}
	return nil
}

// Bound is the range of one variable. An absent bound is an infinity.
type Bound struct {
	Lower, Upper float64
}

// NonNegative is the default bound, x >= 0.
func NonNegative() Bound {
	return Bound{Lower: 0, Upper: math.Inf(1)}
}

func Unbounded() Bound {
	return Bound{Lower: math.Inf(-1), Upper: math.Inf(1)}
}

func (b Bound) HasLower() bool {
	return !math.IsInf(b.Lower, -1)
}

func (b Bound) HasUpper() bool {
	return !math.IsInf(b.Upper, 1)
}

// Admits reports whether v is inside the bound, with eps tolerance.
func (b Bound) Admits(v, eps float64) bool {
	if b.HasLower() && v < b.Lower-eps {
		return false
	}
	if b.HasUpper() && v > b.Upper+eps {
		return false
	}
	return true
}

func (b Bound) validate(name string) error {
	if math.IsNaN(b.Lower) || math.IsNaN(b.Upper) || math.IsInf(b.Lower, 1) || math.IsInf(b.Upper, -1) {
		return malformedf("invalid %s bound [%g, %g]", name, b.Lower, b.Upper)
	}
	if b.Lower > b.Upper {
		return malformedf("%s lower bound %g is above upper bound %g", name, b.Lower, b.Upper)
	}
	return nil
}

type Bounds struct {
	X1, X2 Bound
}

func DefaultBounds() Bounds {
	return Bounds{X1: NonNegative(), X2: NonNegative()}
}

func (b Bounds) Admits(p geometry.Point, eps float64) bool {
	return b.X1.Admits(p.X, eps) && b.X2.Admits(p.Y, eps)
}
