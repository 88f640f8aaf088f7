package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/dvoronoi/site"
	"github.com/katalvlaran/dvoronoi/voronoi"
)

// regionStats summarises region sizes.
type regionStats struct {
	Mean, Median, StdDev float64
}

// summarize computes the statistics of sizes. An empty input yields zeros.
func summarize(sizes []int) (regionStats, error) {
	if len(sizes) == 0 {
		return regionStats{}, nil
	}
	data := make(stats.Float64Data, len(sizes))
	for i, n := range sizes {
		data[i] = float64(n)
	}

	var (
		rs  regionStats
		err error
	)
	if rs.Mean, err = stats.Mean(data); err != nil {
		return rs, errors.Wrap(err, "dvoronoi: mean")
	}
	if rs.Median, err = stats.Median(data); err != nil {
		return rs, errors.Wrap(err, "dvoronoi: median")
	}
	if rs.StdDev, err = stats.StandardDeviation(data); err != nil {
		return rs, errors.Wrap(err, "dvoronoi: stddev")
	}
	return rs, nil
}

// writeReport prints the run header, one row per site and the region-size
// statistics.
func writeReport(out io.Writer, tess *voronoi.Tessellation[site.Weighted]) error {
	sizes := tess.RegionSizes()
	rs, err := summarize(sizes)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "bounds\t%v\n", tess.Bounds())
	fmt.Fprintf(tw, "metric\t%s\n", tess.Metric().Name())
	fmt.Fprintf(tw, "rounds\t%d\n", tess.Round())
	fmt.Fprintf(tw, "sites\t%d\n", len(sizes))
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "owner\tx\ty\tweight\tcells\tcomponents")
	for i, s := range tess.Sites() {
		owner := voronoi.SiteOwner(i)
		fmt.Fprintf(tw, "%d\t%d\t%d\t%g\t%d\t%d\n",
			owner, s.X, s.Y, s.W, sizes[i], len(tess.Components(owner)))
	}
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "cells\tmean=%.2f\tmedian=%.2f\tstddev=%.2f\n", rs.Mean, rs.Median, rs.StdDev)
	return tw.Flush()
}
