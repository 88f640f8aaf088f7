// Package metric provides the pluggable distance strategies used to
// arbitrate cells claimed by two sites at once.
//
// Variants:
//
//   - Euclidean:                          √((sx-px)² + (sy-py)²)
//   - Manhattan:                          |sx-px| + |sy-py|
//   - MultiplicativelyWeightedEuclidean:  euclidean / weight
//   - AdditivelyWeightedEuclidean:        euclidean − weight
//   - PowerEuclidean:                     squared euclidean − weight²
//
// Distances are reported as float32 and compared only against distances of
// the same metric. All intermediate magnitudes are computed in float64 and
// narrowed once, after the weight term has been applied.
//
// Parse maps the names returned by Names back to a Metric, for
// configuration files and command lines.
package metric
