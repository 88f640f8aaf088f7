package main

import (
	"math/rand"

	"github.com/katalvlaran/dvoronoi/site"
)

// generateSites draws n sites uniformly from [0,width)×[0,height) with
// weight 1. The same seed always yields the same sites.
func generateSites(seed int64, width, height, n int) []site.Weighted {
	r := rand.New(rand.NewSource(seed))
	sites := make([]site.Weighted, n)
	for i := range sites {
		sites[i] = site.New(r.Intn(width), r.Intn(height), 1)
	}
	return sites
}
