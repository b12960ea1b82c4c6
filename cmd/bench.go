package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/achilleasa/go-bvh/bvh"
	"github.com/achilleasa/go-bvh/buildtree"
	"github.com/achilleasa/go-bvh/types"
)

// Bench runs the same point query across an increasing number of worker
// threads and renders a table comparing their wall-clock time.
func Bench(ctx *cli.Context) error {
	setupLogging(ctx)

	count := ctx.Int("count")
	queries := ctx.Int("queries")
	if count <= 0 || queries <= 0 {
		return fmt.Errorf("count and queries must both be positive")
	}

	rng := rand.New(rand.NewSource(ctx.Int64("seed")))
	prims := make([]bvh.BoundedVolume3, count)
	for i := 0; i < count; i++ {
		x := float32(i) * 2
		prims[i] = bvh.Triangle{
			P1: types.XYZ(x, 0, 0),
			P2: types.XYZ(x+1, 0, 0),
			P3: types.XYZ(x+0.5, 1, 0),
		}
	}
	tree := buildtree.Build3(prims)

	points := make([]types.Vec3, queries)
	for i := range points {
		points[i] = types.XYZ(rng.Float32()*float32(count)*2, rng.Float32(), 0)
	}

	maxThreads := runtime.NumCPU()
	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Threads", "Hits", "Time"})
	for threads := 1; threads <= maxThreads; threads *= 2 {
		opts := bvh.Options{NumThreads: threads, MinTraversalsPerThread: 64}
		start := time.Now()
		hits := bvh.IntersectPoints3(&tree, points, opts)
		elapsed := time.Since(start)
		table.Append([]string{fmt.Sprintf("%d", threads), fmt.Sprintf("%d", len(hits)), elapsed.String()})
	}
	table.SetFooter([]string{"", "", fmt.Sprintf("%d triangles / %d queries", count, queries)})
	table.Render()

	return nil
}
