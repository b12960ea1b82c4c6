package cmd

import (
	"fmt"
	"math/rand"

	"github.com/urfave/cli"

	"github.com/achilleasa/go-bvh/bvh"
	"github.com/achilleasa/go-bvh/buildtree"
	"github.com/achilleasa/go-bvh/types"
)

// Query builds a tree over a synthetic grid of triangles and reports how
// many random points fall inside a leaf.
func Query(ctx *cli.Context) error {
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

	hits := bvh.IntersectPoints3(&tree, points, bvh.DefaultOptions())
	logger.Noticef("built tree over %d triangles (%d levels), %d/%d queries hit a leaf", count, tree.Levels, len(hits), queries)
	return nil
}
