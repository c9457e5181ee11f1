package grid

import "errors"

// Errors returned by grid construction and I/O.
var (
	ErrInvalidDimensions = errors.New("grid: rows and cols must be > 0")
	ErrEmptyGrid         = errors.New("grid: empty grid")
	ErrRaggedRows        = errors.New("grid: rows have differing lengths")
	ErrFlatGrid          = errors.New("grid: zero dynamic range")
	ErrBadHeader         = errors.New("grid: malformed image header")
)
