package voronoi

import (
	"github.com/katalvlaran/dvoronoi/grid"
	"github.com/katalvlaran/dvoronoi/site"
)

// Project maps every cell through fn and returns the results in row-major
// order, aligned with Bounds().Coordinates(). For an unowned cell fn gets
// the zero site and ok == false.
// The tessellation is left untouched, so Project can be called repeatedly.
// Complexity: O(W×H).
func Project[S site.Site, T any](t *Tessellation[S], fn func(c grid.Cell, s S, ok bool) T) []T {
	cells := t.grid.Cells()
	out := make([]T, 0, len(cells))
	for _, c := range cells {
		var s S
		owner, ok := c.Owner()
		if ok {
			s = t.wrapper(owner).site
		}
		out = append(out, fn(c, s, ok))
	}
	return out
}

// Regions groups the owned cells by their site. Each slice is in row-major
// order; sites that own no cell are absent.
// Complexity: O(W×H).
func Regions[S interface {
	comparable
	site.Site
}](t *Tessellation[S]) map[S][]grid.Cell {
	out := make(map[S][]grid.Cell, len(t.sites))
	for _, c := range t.grid.Cells() {
		if owner, ok := c.Owner(); ok {
			s := t.wrapper(owner).site
			out[s] = append(out[s], c)
		}
	}
	return out
}

// RegionsByOwner returns the coordinates of each region indexed by
// SiteOwner, every slice in row-major order.
// Complexity: O(W×H).
func (t *Tessellation[S]) RegionsByOwner() [][]grid.GridIdx {
	out := make([][]grid.GridIdx, len(t.sites))
	for _, c := range t.grid.Cells() {
		if owner, ok := c.Owner(); ok {
			out[owner] = append(out[owner], c.Idx())
		}
	}
	return out
}

// RegionSizes returns the number of cells owned by each site, indexed by
// SiteOwner.
func (t *Tessellation[S]) RegionSizes() []int {
	out := make([]int, len(t.sites))
	for _, c := range t.grid.Cells() {
		if owner, ok := c.Owner(); ok {
			out[owner]++
		}
	}
	return out
}
