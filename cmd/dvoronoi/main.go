// Command dvoronoi tessellates a grid between random or configured sites
// and prints a per-region report.
//
// Usage:
//
//	dvoronoi --width 64 --height 48 --sites 16 --metric manhattan
//	dvoronoi --config run.yaml --steps 10
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
