package grid_test

import (
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dvoronoi/grid"
	"github.com/katalvlaran/dvoronoi/site"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNewBoundingBox_Errors verifies that non-positive dimensions are rejected.
func TestNewBoundingBox_Errors(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
	}{
		{"ZeroWidth", 0, 3},
		{"ZeroHeight", 3, 0},
		{"NegativeWidth", -1, 3},
		{"NegativeBoth", -2, -2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.NewBoundingBox(0, 0, tc.width, tc.height)
			require.True(t, errors.Is(err, grid.ErrInvalidDimensions), "got %v", err)
		})
	}
	require.Panics(t, func() { grid.MustBoundingBox(0, 0, 0, 1) })
}

// TestFitToSites checks the tight fit and the empty-set precondition.
func TestFitToSites(t *testing.T) {
	_, err := grid.FitToSites([]site.Weighted{})
	require.True(t, errors.Is(err, grid.ErrNoSites))

	b, err := grid.FitToSites([]site.Weighted{
		site.New(3, -2, 1),
		site.New(-1, 4, 1),
		site.New(0, 0, 1),
	})
	require.NoError(t, err)
	x, y := b.Offset()
	w, h := b.Dimensions()
	require.Equal(t, [4]int{-1, -2, 5, 7}, [4]int{x, y, w, h})

	single, err := grid.FitToSites([]grid.GridIdx{{X: 7, Y: 7}})
	require.NoError(t, err)
	require.Equal(t, 1, single.Len())
	require.True(t, single.Inside(grid.GridIdx{X: 7, Y: 7}))
}

//----------------------------------------------------------------------------//
// Coordinate transforms
//----------------------------------------------------------------------------//

// TestInside probes both edges of each axis on a box with a negative offset.
func TestInside(t *testing.T) {
	b := grid.MustBoundingBox(-2, 1, 3, 2) // x ∈ [-2,1), y ∈ [1,3)

	inside := []grid.GridIdx{{-2, 1}, {0, 2}, {-1, 1}}
	for _, idx := range inside {
		require.True(t, b.Inside(idx), "%v should be inside %v", idx, b)
		require.True(t, idx.Inside(b))
	}
	outside := []grid.GridIdx{{-3, 1}, {1, 1}, {0, 0}, {0, 3}}
	for _, idx := range outside {
		require.False(t, b.Inside(idx), "%v should be outside %v", idx, b)
	}
}

// TestCoordinates_RowMajor checks order, count and restartability of the iterator.
func TestCoordinates_RowMajor(t *testing.T) {
	b := grid.MustBoundingBox(-1, 2, 3, 2)
	want := []grid.GridIdx{{-1, 2}, {0, 2}, {1, 2}, {-1, 3}, {0, 3}, {1, 3}}

	got := slices.Collect(b.Coordinates())
	require.Equal(t, want, got)
	require.Len(t, got, b.Len())

	// A second pass yields the same sequence.
	require.Equal(t, want, slices.Collect(b.Coordinates()))

	// Early exit stops the producer.
	var first []grid.GridIdx
	for idx := range b.Coordinates() {
		first = append(first, idx)
		if len(first) == 2 {
			break
		}
	}
	require.Equal(t, want[:2], first)
}

// TestIndex_RoundTrip verifies that Index matches iteration position and IdxAt inverts it.
func TestIndex_RoundTrip(t *testing.T) {
	b := grid.MustBoundingBox(5, -3, 4, 3)
	i := 0
	for idx := range b.Coordinates() {
		require.Equal(t, i, b.Index(idx))
		require.Equal(t, idx, b.IdxAt(i))
		x, y := b.TranslateIdx(idx)
		require.Equal(t, i, x+y*4)
		i++
	}
	require.Equal(t, 12, i)
	require.Equal(t, "[5,9)×[-3,0)", b.String())
}

//----------------------------------------------------------------------------//
// Neighbors
//----------------------------------------------------------------------------//

// TestNeighbors_Order checks the fixed N, E, S, W order and bounds filtering.
func TestNeighbors_Order(t *testing.T) {
	b := grid.MustBoundingBox(0, 0, 3, 3)
	cases := []struct {
		name string
		idx  grid.GridIdx
		want []grid.GridIdx
	}{
		{"Center", grid.GridIdx{1, 1}, []grid.GridIdx{{1, 2}, {2, 1}, {1, 0}, {0, 1}}},
		{"LowerLeft", grid.GridIdx{0, 0}, []grid.GridIdx{{0, 1}, {1, 0}}},
		{"UpperRight", grid.GridIdx{2, 2}, []grid.GridIdx{{2, 1}, {1, 2}}},
		{"EastEdge", grid.GridIdx{2, 1}, []grid.GridIdx{{2, 2}, {2, 0}, {1, 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, slices.Collect(tc.idx.Neighbors(b)))
			require.Equal(t, tc.want, tc.idx.AppendNeighbors(nil, b))
		})
	}

	single := grid.MustBoundingBox(0, 0, 1, 1)
	require.Empty(t, slices.Collect(grid.GridIdx{}.Neighbors(single)))
}

// TestDirection_Step checks the compass convention (north is y+1).
func TestDirection_Step(t *testing.T) {
	origin := grid.GridIdx{X: 0, Y: 0}
	require.Equal(t, grid.GridIdx{X: 0, Y: 1}, origin.Step(grid.North))
	require.Equal(t, grid.GridIdx{X: 1, Y: 0}, origin.Step(grid.East))
	require.Equal(t, grid.GridIdx{X: 0, Y: -1}, origin.Step(grid.South))
	require.Equal(t, grid.GridIdx{X: -1, Y: 0}, origin.Step(grid.West))
	require.Equal(t, "west", grid.West.String())
	require.Equal(t, "Direction(9)", grid.Direction(9).String())
}
