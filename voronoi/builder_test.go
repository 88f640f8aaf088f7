package voronoi_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dvoronoi/grid"
	"github.com/katalvlaran/dvoronoi/metric"
	"github.com/katalvlaran/dvoronoi/site"
	"github.com/katalvlaran/dvoronoi/voronoi"
)

// TestBuilder_Dedup keeps the first site of every coordinate run.
func TestBuilder_Dedup(t *testing.T) {
	sites := []site.Weighted{site.New(1, 1, 1), site.New(1, 1, 2), site.New(2, 2, 1)}
	b := voronoi.NewBuilder(sites)
	require.Equal(t, []site.Weighted{site.New(1, 1, 1), site.New(2, 2, 1)}, b.Sites())

	tess, err := b.Build()
	require.NoError(t, err)
	require.Len(t, tess.Sites(), 2)
	require.Equal(t, grid.MustBoundingBox(1, 1, 2, 2), tess.Bounds())

	// input is not modified
	require.Equal(t, site.New(1, 1, 2), sites[1])
}

// TestBuilder_SortsByCoordinates assigns owners in (x, y) order.
func TestBuilder_SortsByCoordinates(t *testing.T) {
	sites := []site.Weighted{site.New(9, 11, 1), site.New(2, 4, 8), site.New(9, 4, 1), site.New(4, 9, 8)}
	tess, err := voronoi.NewBuilder(sites).Build()
	require.NoError(t, err)

	want := []site.Weighted{site.New(2, 4, 8), site.New(4, 9, 8), site.New(9, 4, 1), site.New(9, 11, 1)}
	require.Equal(t, want, tess.Sites())
	for i, s := range want {
		got, ok := tess.Site(voronoi.SiteOwner(i))
		require.True(t, ok)
		require.Equal(t, s, got)
	}
	_, ok := tess.Site(voronoi.SiteOwner(len(want)))
	require.False(t, ok)
}

// TestBuilder_Clipping drops sites outside explicit bounds.
func TestBuilder_Clipping(t *testing.T) {
	var sites []site.Weighted
	for i := 0; i < 6; i++ {
		sites = append(sites, site.New(i, i, float32(i)))
	}
	tess, err := voronoi.NewBuilder(sites).Bounds(grid.MustBoundingBox(2, 2, 3, 3)).Build()
	require.NoError(t, err)
	require.Equal(t, []site.Weighted{site.New(2, 2, 2), site.New(3, 3, 3), site.New(4, 4, 4)}, tess.Sites())
}

// TestBuilder_Seeded checks that each site owns exactly its own cell after Build.
func TestBuilder_Seeded(t *testing.T) {
	sites := []site.Weighted{site.New(0, 0, 1), site.New(3, 2, 1)}
	tess, err := voronoi.NewBuilder(sites).Build()
	require.NoError(t, err)

	require.Equal(t, []int{1, 1}, tess.RegionSizes())
	owner, ok := tess.OwnerAt(grid.GridIdx{X: 3, Y: 2})
	require.True(t, ok)
	require.Equal(t, voronoi.SiteOwner(1), owner)
	_, ok = tess.OwnerAt(grid.GridIdx{X: 1, Y: 1})
	require.False(t, ok)
	_, ok = tess.OwnerAt(grid.GridIdx{X: 10, Y: 10})
	require.False(t, ok)
	require.Zero(t, tess.Round())
	require.False(t, tess.Done())
}

// TestBuilder_Errors covers empty input and invalid options.
func TestBuilder_Errors(t *testing.T) {
	tests := []struct {
		name  string
		sites []site.Weighted
		opts  []voronoi.Option
		want  error
	}{
		{name: "no sites", want: voronoi.ErrNoSites},
		{name: "nil metric", sites: []site.Weighted{site.New(0, 0, 1)}, opts: []voronoi.Option{voronoi.WithMetric(nil)}, want: voronoi.ErrOptionViolation},
		{name: "negative workers", sites: []site.Weighted{site.New(0, 0, 1)}, opts: []voronoi.Option{voronoi.WithWorkers(-1)}, want: voronoi.ErrOptionViolation},
		{name: "empty bounds", sites: []site.Weighted{site.New(0, 0, 1)}, opts: []voronoi.Option{voronoi.WithBounds(grid.BoundingBox{})}, want: voronoi.ErrOptionViolation},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tess, err := voronoi.NewBuilder(tc.sites, tc.opts...).Build()
			require.Nil(t, tess)
			require.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

// TestBuilder_EmptyWithBounds accepts no sites when the bounds are explicit.
func TestBuilder_EmptyWithBounds(t *testing.T) {
	tess, err := voronoi.NewBuilder[site.Weighted](nil).Bounds(grid.MustBoundingBox(0, 0, 3, 3)).Build()
	require.NoError(t, err)
	require.Empty(t, tess.Sites())
	require.True(t, tess.Done())
	require.Zero(t, tess.Compute())
	require.Equal(t, 9, tess.Bounds().Len())
}

// TestBuilder_Metric stores the chosen metric.
func TestBuilder_Metric(t *testing.T) {
	tess, err := voronoi.NewBuilder([]site.Weighted{site.New(0, 0, 1)}).
		Metric(metric.Manhattan{}).
		Build()
	require.NoError(t, err)
	require.Equal(t, "manhattan", tess.Metric().Name())

	tess, err = voronoi.NewBuilder([]site.Weighted{site.New(0, 0, 1)}).Build()
	require.NoError(t, err)
	require.Equal(t, "euclidean", tess.Metric().Name())
}
