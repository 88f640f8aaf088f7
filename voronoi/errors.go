package voronoi

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/dvoronoi/grid"
)

var (
	// ErrNoSites is returned by Build when the bounds must be fitted to an empty site set.
	ErrNoSites = grid.ErrNoSites
	// ErrOptionViolation is returned by Build when an invalid Option was supplied.
	ErrOptionViolation = errors.New("voronoi: invalid option supplied")
)
