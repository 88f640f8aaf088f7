package metric

import (
	"math"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/golang/geo/r2"

	"github.com/katalvlaran/dvoronoi/site"
)

// ErrUnknownMetric is returned by Parse for a name no metric answers to.
var ErrUnknownMetric = errors.New("metric: unknown metric")

// Metric measures how far a point is from a site.
type Metric interface {
	// Distance returns the distance from s to p. Smaller is closer.
	Distance(s site.Site, p site.Point) float32
	// Name returns the canonical name accepted by Parse.
	Name() string
}

// Canonical metric names.
const (
	NameEuclidean      = "euclidean"
	NameManhattan      = "manhattan"
	NameMultiplicative = "multiplicative"
	NameAdditive       = "additive"
	NamePower          = "power"
)

var registry = []Metric{
	Euclidean{},
	Manhattan{},
	MultiplicativelyWeightedEuclidean{},
	AdditivelyWeightedEuclidean{},
	PowerEuclidean{},
}

// Names lists the canonical names of every metric.
func Names() []string {
	names := make([]string, len(registry))
	for i, m := range registry {
		names[i] = m.Name()
	}
	return names
}

// Parse returns the metric called name, ignoring case and surrounding space.
func Parse(name string) (Metric, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, m := range registry {
		if m.Name() == key {
			return m, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownMetric, "%q (want one of %s)", name, strings.Join(Names(), ", "))
}

// Default returns the Euclidean metric.
func Default() Metric { return Euclidean{} }

// delta returns p - s as a float64 vector.
func delta(s site.Site, p site.Point) r2.Point {
	sx, sy := s.Coordinates()
	px, py := p.Coordinates()
	return r2.Point{X: float64(px) - float64(sx), Y: float64(py) - float64(sy)}
}

// squared returns the squared Euclidean magnitude between s and p.
func squared(s site.Site, p site.Point) float64 {
	d := delta(s, p)
	return d.Dot(d)
}

// Euclidean is the straight-line distance.
type Euclidean struct{}

// Distance implements Metric.
func (Euclidean) Distance(s site.Site, p site.Point) float32 {
	return float32(delta(s, p).Norm())
}

// Name implements Metric.
func (Euclidean) Name() string { return NameEuclidean }

// Manhattan is the taxicab distance.
type Manhattan struct{}

// Distance implements Metric.
func (Manhattan) Distance(s site.Site, p site.Point) float32 {
	d := delta(s, p)
	return float32(math.Abs(d.X) + math.Abs(d.Y))
}

// Name implements Metric.
func (Manhattan) Name() string { return NameManhattan }

// MultiplicativelyWeightedEuclidean divides the Euclidean distance by the
// site weight: heavier sites reach further. A zero weight yields +Inf.
type MultiplicativelyWeightedEuclidean struct{}

// Distance implements Metric.
func (MultiplicativelyWeightedEuclidean) Distance(s site.Site, p site.Point) float32 {
	return float32(1 / float64(s.Weight()) * delta(s, p).Norm())
}

// Name implements Metric.
func (MultiplicativelyWeightedEuclidean) Name() string { return NameMultiplicative }

// AdditivelyWeightedEuclidean subtracts the site weight from the Euclidean
// distance.
type AdditivelyWeightedEuclidean struct{}

// Distance implements Metric.
func (AdditivelyWeightedEuclidean) Distance(s site.Site, p site.Point) float32 {
	return float32(delta(s, p).Norm() - float64(s.Weight()))
}

// Name implements Metric.
func (AdditivelyWeightedEuclidean) Name() string { return NameAdditive }

// PowerEuclidean is the power-diagram distance: squared Euclidean distance
// minus the squared weight. It is not square-rooted.
type PowerEuclidean struct{}

// Distance implements Metric.
func (PowerEuclidean) Distance(s site.Site, p site.Point) float32 {
	w := float64(s.Weight())
	return float32(squared(s, p) - w*w)
}

// Name implements Metric.
func (PowerEuclidean) Name() string { return NamePower }
