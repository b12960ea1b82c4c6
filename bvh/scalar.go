// Package bvh implements the primitives, implicit tree addressing and
// parallel traversal engine for querying a pre-built bounding volume
// hierarchy with points or rays. Tree construction is not part of this
// package; see buildtree for a convenience builder.
package bvh

import (
	"math"

	"github.com/achilleasa/go-bvh/types"
)

// min2f returns the smaller of two values using a plain comparison so that
// a NaN operand poisons the result.
func min2f(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// max2f returns the larger of two values using a plain comparison so that
// a NaN operand poisons the result.
func max2f(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func min3f(a, b, c float32) float32 {
	return min2f(min2f(a, b), c)
}

func max3f(a, b, c float32) float32 {
	return max2f(max2f(a, b), c)
}

func dist2sq(a, b types.Vec2) float32 {
	d := a.Sub(b)
	return d.Dot(d)
}

func dist3sq(a, b types.Vec3) float32 {
	d := a.Sub(b)
	return d.Dot(d)
}

func dist2(a, b types.Vec2) float32 {
	return float32(math.Sqrt(float64(dist2sq(a, b))))
}

func dist3(a, b types.Vec3) float32 {
	return float32(math.Sqrt(float64(dist3sq(a, b))))
}

// pow2 returns 1<<k. Used by the implicit tree addressing math in tree.go.
func pow2(k uint32) uint32 {
	return 1 << k
}
