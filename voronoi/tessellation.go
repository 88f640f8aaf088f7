package voronoi

import (
	"context"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dvoronoi/grid"
	"github.com/katalvlaran/dvoronoi/metric"
	"github.com/katalvlaran/dvoronoi/site"
)

// RoundStats summarises one call to Step.
type RoundStats struct {
	// Round is the 1-based index of the round since Build or Reset.
	Round int
	// Claimed counts cells won outright.
	Claimed int
	// Contested counts cells taken from another site and arbitrated.
	Contested int
	// Won counts contested cells that changed hands.
	Won int
}

// Tessellation owns the grid and the per-site round state of one run.
type Tessellation[S site.Site] struct {
	sites   []siteWrapper[S]
	grid    *grid.Grid
	metric  metric.Metric
	log     *zap.Logger
	workers int
	round   int
}

// seed claims every site's own cell. The builder guarantees unique
// coordinates inside the bounds, so any other outcome is a broken invariant.
func (t *Tessellation[S]) seed() {
	for i := range t.sites {
		w := &t.sites[i]
		idx := grid.FromPoint(w.site)
		claimed, contested := t.grid.ClaimCells([]grid.GridIdx{idx}, w.id)
		if len(claimed) != 1 || len(contested) != 0 {
			panic(errors.AssertionFailedf("voronoi: seed cell %v of site %d was already owned", idx, w.id))
		}
		w.newlyClaimed = append(w.newlyClaimed[:0], idx)
		w.boundaryChain = w.boundaryChain[:0]
	}
}

// Step runs exactly one round: every site expands its frontier by one ring,
// in ascending SiteOwner order, arbitrating cells it takes from other sites.
func (t *Tessellation[S]) Step() RoundStats {
	t.round++
	stats := RoundStats{Round: t.round}

	t.expandBoundaries()
	for i := range t.sites {
		w := &t.sites[i]
		claimed, contested := t.grid.ClaimCells(w.boundaryChain, w.id)
		w.newlyClaimed = append(w.newlyClaimed[:0], claimed...)
		won := t.arbitrate(w, contested)
		w.newlyClaimed = append(w.newlyClaimed, won...)

		stats.Claimed += len(claimed)
		stats.Contested += len(contested)
		stats.Won += len(won)
	}

	t.log.Debug("voronoi: round complete",
		zap.Int("round", stats.Round),
		zap.Int("claimed", stats.Claimed),
		zap.Int("contested", stats.Contested),
		zap.Int("won", stats.Won),
	)
	return stats
}

// expandBoundaries rebuilds every boundary chain. Sites are split into one
// contiguous chunk per worker; Wait is the barrier before any claim.
func (t *Tessellation[S]) expandBoundaries() {
	bounds := t.grid.Bounds()
	if t.workers <= 1 || len(t.sites) < 2 {
		for i := range t.sites {
			t.sites[i].updateBoundaryChain(bounds)
		}
		return
	}

	chunk := (len(t.sites) + t.workers - 1) / t.workers
	var g errgroup.Group
	for lo := 0; lo < len(t.sites); lo += chunk {
		part := t.sites[lo:min(lo+chunk, len(t.sites))]
		g.Go(func() error {
			for i := range part {
				part[i].updateBoundaryChain(bounds)
			}
			return nil
		})
	}
	_ = g.Wait()
}

// arbitrate settles the cells w took from other sites and returns those w
// keeps. The contender needs a strictly smaller distance; on a tie or a
// larger distance the previous owner is restored.
func (t *Tessellation[S]) arbitrate(w *siteWrapper[S], contested []grid.Contest) []grid.GridIdx {
	var won []grid.GridIdx
	for _, c := range contested {
		prev := t.wrapper(c.Previous)
		ours := t.metric.Distance(w.site, c.Idx)
		theirs := t.metric.Distance(prev.site, c.Idx)
		if ours < theirs {
			t.grid.Resolve(c.Idx, w.id)
			won = append(won, c.Idx)
			continue
		}
		t.grid.Resolve(c.Idx, c.Previous)
	}
	return won
}

// wrapper returns the state of owner. Cells only ever hold identities handed
// out by Build.
func (t *Tessellation[S]) wrapper(owner SiteOwner) *siteWrapper[S] {
	if int(owner) >= len(t.sites) {
		panic(errors.AssertionFailedf("voronoi: unknown site owner %d (%d sites)", owner, len(t.sites)))
	}
	return &t.sites[owner]
}

// pending returns the size of every frontier combined.
func (t *Tessellation[S]) pending() int {
	n := 0
	for i := range t.sites {
		n += len(t.sites[i].newlyClaimed)
	}
	return n
}

// Done reports whether the last round claimed nothing, i.e. the
// tessellation is at its fixpoint.
func (t *Tessellation[S]) Done() bool { return t.pending() == 0 }

// Round returns the number of rounds run since Build or Reset.
func (t *Tessellation[S]) Round() int { return t.round }

// Compute runs rounds until one claims no new cell and returns how many
// rounds it ran. Calling it again at the fixpoint runs zero rounds.
func (t *Tessellation[S]) Compute() int {
	n, _ := t.ComputeContext(context.Background())
	return n
}

// ComputeContext is Compute with a cancellation check before every round.
// On cancellation it returns the rounds completed so far and ctx.Err(); the
// tessellation stays consistent and can be resumed.
func (t *Tessellation[S]) ComputeContext(ctx context.Context) (int, error) {
	rounds := 0
	for !t.Done() {
		if err := ctx.Err(); err != nil {
			return rounds, err
		}
		t.Step()
		rounds++
	}
	if rounds > 0 {
		t.log.Info("voronoi: fixpoint reached",
			zap.Int("rounds", t.round),
			zap.Int("owned", t.grid.Owned()),
			zap.Int("cells", t.grid.Bounds().Len()),
		)
	}
	return rounds, nil
}

// Reset clears the grid and reseeds every site, returning the tessellation
// to the state Build produced.
func (t *Tessellation[S]) Reset() {
	t.grid.Clear()
	t.round = 0
	t.seed()
}

// Sites returns the surviving sites indexed by SiteOwner.
func (t *Tessellation[S]) Sites() []S {
	out := make([]S, len(t.sites))
	for i := range t.sites {
		out[i] = t.sites[i].site
	}
	return out
}

// Site returns the site identified by owner.
func (t *Tessellation[S]) Site(owner SiteOwner) (S, bool) {
	if int(owner) >= len(t.sites) {
		var zero S
		return zero, false
	}
	return t.sites[owner].site, true
}

// Bounds returns the grid domain.
func (t *Tessellation[S]) Bounds() grid.BoundingBox { return t.grid.Bounds() }

// Metric returns the arbitration metric.
func (t *Tessellation[S]) Metric() metric.Metric { return t.metric }

// OwnerAt returns the owner of the cell at idx. ok is false for unowned
// cells and for coordinates outside the bounds.
func (t *Tessellation[S]) OwnerAt(idx grid.GridIdx) (owner SiteOwner, ok bool) {
	c, err := t.grid.Cell(idx)
	if err != nil {
		return 0, false
	}
	return c.Owner()
}

// Cells returns a row-major copy of every cell.
func (t *Tessellation[S]) Cells() []grid.Cell { return t.grid.Cells() }
