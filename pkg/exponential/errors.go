package exponential

import "github.com/pkg/errors"

var (
	// ErrInvalidInput reports a construction call where the number of unknown
	// fields is not exactly one.
	ErrInvalidInput = errors.New("exactly one field must be left unknown")

	// ErrDomain reports a derivation that falls outside the function domain:
	// a logarithm of a non-positive ratio, a zero rate/time/decay constant
	// divisor, or a non-positive half-life.
	ErrDomain = errors.New("derivation outside the function domain")
)
