package voronoi

import (
	"github.com/katalvlaran/dvoronoi/grid"
	"github.com/katalvlaran/dvoronoi/site"
)

// SiteOwner identifies a site within one tessellation run.
type SiteOwner = grid.SiteOwner

// siteWrapper is the per-site round state.
type siteWrapper[S site.Site] struct {
	id   SiteOwner
	site S

	// newlyClaimed holds the cells gained in the last round: the frontier.
	newlyClaimed []grid.GridIdx
	// boundaryChain holds the candidates for the current round.
	boundaryChain []grid.GridIdx
}

// updateBoundaryChain replaces the boundary chain with the in-bounds
// neighbors of the frontier. It reads and writes only w, so wrappers can be
// updated concurrently.
func (w *siteWrapper[S]) updateBoundaryChain(b grid.BoundingBox) {
	w.boundaryChain = w.boundaryChain[:0]
	for _, idx := range w.newlyClaimed {
		w.boundaryChain = idx.AppendNeighbors(w.boundaryChain, b)
	}
}
