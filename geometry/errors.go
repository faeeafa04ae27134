package geometry

import "github.com/pkg/errors"

var (
	// ErrParallel is returned by Intersect for lines that never meet. Callers
	// sweeping many line pairs are expected to skip it.
	ErrParallel = errors.New("the two lines are parallel")

	// ErrDegenerate is returned by ConvexHull when the points do not span a
	// two-dimensional region.
	ErrDegenerate = errors.New("degenerate point set")
)
