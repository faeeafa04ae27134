package region

import "github.com/pkg/errors"

var (
	// ErrMalformed reports a constraint system or option set that can't be
	// turned into a region at all.
	ErrMalformed = errors.New("malformed constraint system")

	// ErrUnrenderable reports a feasible region that is empty or flat, so
	// there is no polygon to draw. It matches geometry.ErrDegenerate too.
	ErrUnrenderable = errors.New("unrenderable region")

	// ErrZeroObjective is returned when both objective coefficients are zero,
	// so there is no iso-line to draw.
	ErrZeroObjective = errors.New("objective coefficients are all zero")
)

func malformedf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformed, format, args...)
}

// unrenderableError matches both ErrUnrenderable and the hull failure that
// caused it.
type unrenderableError struct {
	cause error
	what  string
}

func (e *unrenderableError) Error() string {
	return ErrUnrenderable.Error() + ": " + e.what + ": " + e.cause.Error()
}

func (e *unrenderableError) Unwrap() []error {
	return []error{ErrUnrenderable, e.cause}
}

func unrenderable(cause error, what string) error {
	return &unrenderableError{cause: cause, what: what}
}
