// Package voronoi computes discrete, weighted Voronoi tessellations of a
// finite integer grid with a round-based wavefront.
//
// What:
//
//   - Builder normalises a site set (sorted by coordinates, duplicate
//     coordinates removed), resolves the bounding box, drops sites outside
//     it and seeds every surviving site on its own cell.
//   - Tessellation grows every site's region one ring per round. Each site
//     claims the in-bounds neighbors of the cells it gained in the previous
//     round; a cell claimed away from another site is arbitrated by the
//     metric and goes to the strictly closer site.
//   - Project, Regions and the region-analysis methods read the result.
//
// Rounds:
//
//  1. Every site's boundary chain is rebuilt from its previous frontier.
//     This phase fans out over a worker pool and touches no shared state.
//  2. Sites then claim and arbitrate one after another, in ascending
//     SiteOwner order, so results are deterministic.
//
// Ties: when the contender and the previous owner are exactly equally
// distant, the previous owner keeps the cell. Every reachable cell therefore
// ends up owned.
//
// Complexity:
//
//   - Build: O(n log n + W×H) for n sites.
//   - Compute: O(R × W×H) worst case for R rounds, where R is bounded by the
//     grid diameter plus the number of ownership changes.
//
// Errors:
//
//   - ErrNoSites: no sites and no explicit bounds to fall back on.
//   - ErrOptionViolation: an invalid Option was supplied.
//
// A Tessellation is not safe for concurrent use.
package voronoi
