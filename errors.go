package tabular

import "github.com/pkg/errors"

// The package distinguishes four failure classes: validation errors
// (malformed input or unsupported method names), lookup errors (unknown
// column), domain errors (no usable values, undefined result) and type
// errors (non-numeric or unorderable values where the computation needs
// them). Callers match against the sentinels below with errors.Is.
var (
	// Validation.
	ErrInvalidDataset  = errors.New("invalid dataset")
	ErrInvalidPipeline = errors.New("invalid pipeline")
	ErrUnknownMethod   = errors.New("unknown method")

	// Lookup.
	ErrColumnNotFound = errors.New("column not found")

	// Domain.
	ErrNoValues  = errors.New("no usable values")
	ErrUndefined = errors.New("undefined result")

	// Type.
	ErrNotNumeric    = errors.New("non-numeric value")
	ErrNotComparable = errors.New("values not mutually orderable")
)
