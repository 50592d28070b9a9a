package pmf

import "errors"

// Errors returned by PMF operations.
var (
	ErrEmpty         = errors.New("pmf: empty distribution")
	ErrZeroMass      = errors.New("pmf: distribution has no probability mass")
	ErrNegativePower = errors.New("pmf: negative power")
	ErrInvalidWindow = errors.New("pmf: window low bound exceeds high bound")
)
