package voronoi_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dvoronoi/grid"
	"github.com/katalvlaran/dvoronoi/metric"
	"github.com/katalvlaran/dvoronoi/site"
	"github.com/katalvlaran/dvoronoi/voronoi"
)

// ExampleBuilder_Build tessellates a 6×4 grid between three sites and
// prints the owner of every cell, lowest row first.
func ExampleBuilder_Build() {
	sites := []site.Weighted{
		site.New(0, 0, 1),
		site.New(5, 0, 1),
		site.New(2, 3, 1),
	}
	tess, err := voronoi.NewBuilder(sites).
		Metric(metric.Manhattan{}).
		Bounds(grid.MustBoundingBox(0, 0, 6, 4)).
		Build()
	if err != nil {
		panic(err)
	}
	fmt.Println("rounds:", tess.Compute())

	owners := voronoi.Project(tess, func(c grid.Cell, _ site.Weighted, ok bool) string {
		o, _ := c.Owner()
		return fmt.Sprint(o)
	})
	for y := 0; y < 4; y++ {
		fmt.Println(strings.Join(owners[y*6:(y+1)*6], ""))
	}
	fmt.Println("sizes:", tess.RegionSizes())

	// Output:
	// rounds: 4
	// 000222
	// 001122
	// 011112
	// 111111
	// sizes: [6 12 6]
}

// ExampleTessellation_Step advances a two-site strip one round at a time.
func ExampleTessellation_Step() {
	tess, err := voronoi.NewBuilder([]site.Weighted{site.New(0, 0, 1), site.New(4, 0, 1)}).Build()
	if err != nil {
		panic(err)
	}
	for !tess.Done() {
		st := tess.Step()
		fmt.Printf("round %d: claimed=%d contested=%d won=%d\n", st.Round, st.Claimed, st.Contested, st.Won)
	}
	fmt.Println("sizes:", tess.RegionSizes())

	// Output:
	// round 1: claimed=2 contested=0 won=0
	// round 2: claimed=1 contested=1 won=0
	// round 3: claimed=0 contested=1 won=0
	// sizes: [3 2]
}
