// Package site defines the minimal capabilities the tessellation engine
// needs from its inputs.
//
// What:
//
//   - Point exposes integer grid coordinates.
//   - Site extends Point with a scalar weight.
//   - Weighted is the stock comparable Site implementation.
//
// Why:
//
//   - Callers keep their own site types (map markers, spawn points, cities)
//     and only implement two methods to feed them into voronoi.Builder.
//   - A comparable Site such as Weighted can key the map returned by
//     voronoi.Regions.
//
// Ordering:
//
//   - Compare orders points by X, then Y. The builder sorts with it before
//     removing duplicate coordinates.
package site
