package voronoi

import (
	"slices"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/dvoronoi/grid"
	"github.com/katalvlaran/dvoronoi/metric"
	"github.com/katalvlaran/dvoronoi/site"
)

// Builder turns a raw site collection into a seeded Tessellation.
type Builder[S site.Site] struct {
	sites      []S
	duplicates int
	opts       Options
}

// NewBuilder copies sites, sorts them by (x, y) and removes sites sharing a
// coordinate, keeping the first one in input order. Duplicates are not an
// error. opts are applied on top of DefaultOptions.
// Complexity: O(n log n).
func NewBuilder[S site.Site](sites []S, opts ...Option) *Builder[S] {
	sorted := slices.Clone(sites)
	slices.SortStableFunc(sorted, func(a, b S) int { return site.Compare(a, b) })
	sorted = slices.CompactFunc(sorted, func(a, b S) bool { return site.SameCoordinates(a, b) })

	b := &Builder[S]{
		sites:      sorted,
		duplicates: len(sites) - len(sorted),
		opts:       DefaultOptions(),
	}
	return b.With(opts...)
}

// With applies further options.
func (b *Builder[S]) With(opts ...Option) *Builder[S] {
	for _, opt := range opts {
		opt(&b.opts)
	}
	return b
}

// Metric is shorthand for With(WithMetric(m)).
func (b *Builder[S]) Metric(m metric.Metric) *Builder[S] {
	return b.With(WithMetric(m))
}

// Bounds is shorthand for With(WithBounds(bb)).
func (b *Builder[S]) Bounds(bb grid.BoundingBox) *Builder[S] {
	return b.With(WithBounds(bb))
}

// Sites returns the deduplicated, sorted sites. Clipping happens in Build.
func (b *Builder[S]) Sites() []S {
	return slices.Clone(b.sites)
}

// Build resolves the bounds, drops sites outside them, assigns SiteOwner
// identities 0..n-1 in sorted order and seeds each site on its own cell.
// Returns ErrOptionViolation for invalid options and ErrNoSites when the
// bounds must be fitted to an empty site set.
// Complexity: O(n + W×H).
func (b *Builder[S]) Build() (*Tessellation[S], error) {
	o := b.opts
	if o.err != nil {
		return nil, o.err
	}

	var bounds grid.BoundingBox
	if o.Bounds != nil {
		bounds = *o.Bounds
	} else {
		fit, err := grid.FitToSites(b.sites)
		if err != nil {
			return nil, errors.Wrap(err, "voronoi: resolving bounds")
		}
		bounds = fit
	}

	t := &Tessellation[S]{
		grid:    grid.New(bounds),
		metric:  o.Metric,
		log:     o.Logger,
		workers: max(o.Workers, 1),
	}
	for _, s := range b.sites {
		if !bounds.Inside(grid.FromPoint(s)) {
			o.Logger.Debug("voronoi: site outside bounds dropped", zap.Stringer("at", grid.FromPoint(s)))
			continue
		}
		t.sites = append(t.sites, siteWrapper[S]{
			id:   SiteOwner(len(t.sites)),
			site: s,
		})
	}
	t.seed()

	t.log.Info("voronoi: tessellation built",
		zap.Int("sites", len(t.sites)),
		zap.Int("duplicates", b.duplicates),
		zap.Int("clipped", len(b.sites)-len(t.sites)),
		zap.Stringer("bounds", bounds),
		zap.String("metric", t.metric.Name()),
	)
	return t, nil
}
