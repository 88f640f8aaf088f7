package grid

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidDimensions indicates a bounding box with a non-positive width or height.
	ErrInvalidDimensions = errors.New("grid: bounding box width and height must be positive")
	// ErrNoSites indicates an attempt to fit a bounding box around zero sites.
	ErrNoSites = errors.New("grid: cannot fit a bounding box to an empty site set")
	// ErrOutOfBounds indicates a coordinate outside the bounding box.
	ErrOutOfBounds = errors.New("grid: coordinate outside bounding box")
)
