package site

import (
	"errors"
	"fmt"
)

// Errors returned while building and validating tables.
var (
	ErrInvalidRange       = errors.New("site: charge range min exceeds max")
	ErrInvalidLabel       = errors.New("site: invalid charge label")
	ErrNoLabels           = errors.New("site: no charge labels")
	ErrDuplicateLabel     = errors.New("site: duplicate charge label")
	ErrNonContiguous      = errors.New("site: charge labels are not contiguous")
	ErrShape              = errors.New("site: probability count does not match charge range")
	ErrInvalidProbability = errors.New("site: probability must be finite and non-negative")
	ErrMixedRange         = errors.New("site: site charge range differs from table range")
	ErrRowSum             = errors.New("site: probabilities do not sum to 1")
	ErrUnknownPolicy      = errors.New("site: unknown normalization policy")
)

// RowError identifies the table row a validation failure belongs to.
type RowError struct {
	Index int     // position in Table.Sites
	ID    string  // Site.ID, for display
	Sum   float64 // probability sum, set for ErrRowSum
	Err   error
}

func (e *RowError) Error() string {
	if errors.Is(e.Err, ErrRowSum) {
		return fmt.Sprintf("site: row %d (%q): %v (sum %.6g)", e.Index, e.ID, e.Err, e.Sum)
	}
	return fmt.Sprintf("site: row %d (%q): %v", e.Index, e.ID, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
