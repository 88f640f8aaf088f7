// Package grid models the finite integer domain of a discrete Voronoi
// tessellation and the per-cell ownership state competing sites fight over.
//
// What:
//
//   - BoundingBox is the addressable domain: an integer offset plus a
//     positive width and height. It translates coordinates to dense
//     row-major indices and enumerates every coordinate lazily.
//   - GridIdx is a coordinate pair that doubles as a site.Point.
//     Neighbors yields the four axis-aligned neighbors in the fixed order
//     North (y+1), East (x+1), South (y-1), West (x-1).
//   - Grid owns one Cell per coordinate and implements ClaimCells, the
//     claim/contest primitive of the wavefront algorithm.
//
// Claim rules (per index, in input order, no deduplication):
//
//  1. already owned by the claimant → no-op;
//  2. unowned and not contested     → claimed;
//  3. owned by another site         → owner cleared, cell contested,
//     reported with its previous owner;
//  4. unowned but contested         → no-op until Resolve.
//
// Complexity:
//
//   - New, Clear, Cells: O(W×H) time; O(W×H) memory for the grid.
//   - ClaimCells: O(k) for k indices.
//   - Index, TranslateIdx, Inside, Resolve: O(1).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height is not positive.
//   - ErrNoSites: FitToSites called with an empty set.
//   - ErrOutOfBounds: a coordinate outside the bounding box was queried.
//
// A Grid is not safe for concurrent mutation; the voronoi package keeps a
// single mutator at a time.
package grid
