package voronoi

import (
	"slices"

	"github.com/katalvlaran/dvoronoi/grid"
)

// Components splits the region of owner into its 4-connected components.
// Components are ordered by their first cell in row-major order; cells
// within a component are in breadth-first order from that cell.
// An unknown owner or an empty region yields nil.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (t *Tessellation[S]) Components(owner SiteOwner) [][]grid.GridIdx {
	if int(owner) >= len(t.sites) {
		return nil
	}
	bounds := t.grid.Bounds()
	cells := t.grid.Cells()
	member := func(idx grid.GridIdx) bool {
		o, ok := cells[bounds.Index(idx)].Owner()
		return ok && o == owner
	}

	seen := make([]bool, len(cells))
	var comps [][]grid.GridIdx
	var nbuf []grid.GridIdx
	for i, c := range cells {
		if seen[i] || !member(c.Idx()) {
			continue
		}
		queue := []grid.GridIdx{c.Idx()}
		seen[i] = true
		for qi := 0; qi < len(queue); qi++ {
			nbuf = queue[qi].AppendNeighbors(nbuf[:0], bounds)
			for _, n := range nbuf {
				ni := bounds.Index(n)
				if !seen[ni] && member(n) {
					seen[ni] = true
					queue = append(queue, n)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// Adjacency returns, for every site owning at least one cell, the sorted
// owners of the regions that share a cell edge with its region.
// Complexity: O(W·H + k log k) for k adjacent pairs.
func (t *Tessellation[S]) Adjacency() map[SiteOwner][]SiteOwner {
	bounds := t.grid.Bounds()
	cells := t.grid.Cells()
	adj := make(map[SiteOwner][]SiteOwner)
	for _, c := range cells {
		a, ok := c.Owner()
		if !ok {
			continue
		}
		if _, present := adj[a]; !present {
			adj[a] = nil
		}
		// North and East cover every edge once.
		for _, d := range [...]grid.Direction{grid.North, grid.East} {
			n := c.Idx().Step(d)
			if !bounds.Inside(n) {
				continue
			}
			b, ok := cells[bounds.Index(n)].Owner()
			if !ok || b == a {
				continue
			}
			adj[a] = append(adj[a], b)
			adj[b] = append(adj[b], a)
		}
	}
	for owner, ns := range adj {
		slices.Sort(ns)
		adj[owner] = slices.Compact(ns)
	}
	return adj
}
