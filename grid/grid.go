package grid

import (
	"github.com/cockroachdb/errors"
)

// SiteOwner identifies a site within one tessellation run. Cells store the
// identifier rather than a reference to the site.
type SiteOwner uint32

// Cell is the ownership state of one grid coordinate.
type Cell struct {
	idx       GridIdx
	owner     SiteOwner
	owned     bool
	contested bool
}

// Idx returns the coordinate of the cell.
func (c Cell) Idx() GridIdx { return c.idx }

// Owner returns the owning site, if any.
func (c Cell) Owner() (SiteOwner, bool) { return c.owner, c.owned }

// Contested reports whether the cell is waiting for arbitration.
func (c Cell) Contested() bool { return c.contested }

// Contest is a cell taken away from Previous by a claim; the caller must
// arbitrate it and call Grid.Resolve.
type Contest struct {
	Idx      GridIdx
	Previous SiteOwner
}

// Grid stores one Cell per coordinate of its bounding box in row-major order.
type Grid struct {
	bounds BoundingBox
	cells  []Cell
}

// New allocates an empty grid covering b.
// Complexity: O(W×H) time and memory.
func New(b BoundingBox) *Grid {
	cells := make([]Cell, b.Len())
	i := 0
	for idx := range b.Coordinates() {
		cells[i].idx = idx
		i++
	}
	return &Grid{bounds: b, cells: cells}
}

// Bounds returns the grid domain.
func (g *Grid) Bounds() BoundingBox { return g.bounds }

// Cell returns a copy of the cell at idx, or ErrOutOfBounds.
func (g *Grid) Cell(idx GridIdx) (Cell, error) {
	if !g.bounds.Inside(idx) {
		return Cell{}, errors.Wrapf(ErrOutOfBounds, "%v not in %v", idx, g.bounds)
	}
	return g.cells[g.bounds.Index(idx)], nil
}

// Cells returns a row-major copy of every cell, in the order of
// BoundingBox.Coordinates.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Owned returns the number of cells that currently have an owner.
func (g *Grid) Owned() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].owned {
			n++
		}
	}
	return n
}

// at returns the cell at idx and panics if idx is outside the grid:
// callers hand the grid only coordinates they filtered with Inside.
func (g *Grid) at(idx GridIdx) *Cell {
	if !g.bounds.Inside(idx) {
		panic(errors.AssertionFailedf("grid: %v outside %v", idx, g.bounds))
	}
	return &g.cells[g.bounds.Index(idx)]
}

// ClaimCells attempts to claim every index for claimant, in input order.
// It returns the cells won outright and the cells taken away from another
// owner, which are now contested and unowned until Resolve is called.
// Repeated indices are harmless: a second visit hits rule 1 or rule 4.
// Panics if an index lies outside the grid.
// Complexity: O(len(indices)).
func (g *Grid) ClaimCells(indices []GridIdx, claimant SiteOwner) (claimed []GridIdx, contested []Contest) {
	for _, idx := range indices {
		c := g.at(idx)
		switch {
		case c.owned && c.owner == claimant:
			// already ours
		case !c.owned && !c.contested:
			c.owner, c.owned = claimant, true
			claimed = append(claimed, idx)
		case c.owned:
			contested = append(contested, Contest{Idx: idx, Previous: c.owner})
			c.owner, c.owned = 0, false
			c.contested = true
		default:
			// contested and unowned: pending arbitration
		}
	}
	return claimed, contested
}

// Resolve assigns idx to owner and clears its contested flag.
// Panics if idx is outside the grid.
func (g *Grid) Resolve(idx GridIdx, owner SiteOwner) {
	c := g.at(idx)
	c.owner, c.owned = owner, true
	c.contested = false
}

// Clear resets every cell to unowned and uncontested.
// Complexity: O(W×H).
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].owner, g.cells[i].owned, g.cells[i].contested = 0, false, false
	}
}
