// Package dvoronoi computes discrete, weighted Voronoi tessellations on
// integer grids: every cell of a finite grid goes to the site that wins it
// under a chosen distance metric.
//
// 🚀 What is dvoronoi?
//
//	A small, deterministic, pure-Go library that brings together:
//		• Sites: any type with grid coordinates and a weight
//		• Metrics: Euclidean, Manhattan, multiplicatively and additively
//		  weighted Euclidean, power distance
//		• Grids: bounding boxes, row-major cells, fixed N/E/S/W neighbors
//		• Tessellation: a round-based wavefront with metric arbitration
//		• Analysis: projections, regions per site, components, adjacency
//
// ✨ Why dvoronoi?
//
//   - Deterministic: identical input gives an identical ownership map
//   - Bring your own sites: implement Coordinates and Weight, nothing else
//   - Step or compute: watch the wavefront grow or jump to the fixpoint
//   - Parallel where it is safe: boundary expansion fans out over workers
//
// Subpackages:
//
//	site/          Point and Site capabilities, the stock Weighted site
//	grid/          BoundingBox, GridIdx, Cell, Grid and the claim primitive
//	metric/        distance metrics and the name registry
//	voronoi/       Builder, Tessellation, projections and region analysis
//	cmd/dvoronoi/  command line runner with a text report
//
// Quick ASCII example (two sites on a 5×1 strip, Euclidean):
//
//	0 . . . 1   →   0 0 0 1 1
//
// The tied midpoint stays with site 0, which reached it first.
//
//	go get github.com/katalvlaran/dvoronoi/voronoi
package dvoronoi
